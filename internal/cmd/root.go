// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ivbench/cli/internal/catalog"
	"github.com/ivbench/cli/internal/config"
	"github.com/ivbench/cli/internal/output"
)

var (
	// Global flags
	configFlag       string
	modelsDirFlag    string
	outputFormatFlag string
	verboseFlag      bool
	timestampsFlag   bool

	// Resolved configuration (loaded during PersistentPreRunE)
	toolConfig     *config.Config
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the ivbench CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ivbench",
		Short:         "I-V sweep configuration toolkit",
		Long:          `ivbench loads, validates and inspects sweep configuration files for I-V measurement benches.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to tool config file (env: IVBENCH_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&modelsDirFlag, "models-dir", "", "Directory of extra instrument model files (env: IVBENCH_MODELS_DIR)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "", "Output format: table, yaml, json (env: IVBENCH_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewShowCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewModelsCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	// Load tool configuration first so config values can inform logging setup
	loader := config.NewLoader()
	loadedConfig, err := loader.LoadWithDefaults(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - commands still work on defaults
	}
	toolConfig = loadedConfig

	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag:    configFlag,
		ModelsDirFlag: modelsDirFlag,
		OutputFlag:    outputFormatFlag,
		Config:        toolConfig,
	})
	if err != nil {
		return err
	}
	resolvedConfig = resolved

	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}

	// Resolve timestamps: flag (if explicitly set) > config > default (nil = true)
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if toolConfig != nil && toolConfig.Log.Timestamps != nil {
		logCfg.Timestamps = toolConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", resolvedConfig.ConfigPath.Value,
			"modelsDir", resolvedConfig.ModelsDir.Value,
			"output", resolvedConfig.Output.Value,
		)
	}

	return nil
}

// GetToolConfig returns the loaded tool configuration.
func GetToolConfig() *config.Config {
	return toolConfig
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() *config.ResolvedConfig {
	return resolvedConfig
}

// GetModelsDir returns the resolved extra models directory, empty when only
// the embedded catalog applies.
func GetModelsDir() string {
	if resolvedConfig != nil {
		return resolvedConfig.ModelsDir.Value
	}
	return modelsDirFlag
}

// GetOutputFormat returns the resolved output format value.
func GetOutputFormat() string {
	if resolvedConfig != nil {
		return resolvedConfig.Output.Value
	}
	return outputFormatFlag
}

// loadCatalog builds the instrument catalog from the embedded models plus the
// resolved extra models directory.
func loadCatalog() (*catalog.Catalog, error) {
	return catalog.Load(GetModelsDir())
}
