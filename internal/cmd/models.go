package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ivbench/cli/internal/catalog"
	ierrors "github.com/ivbench/cli/internal/errors"
	"github.com/ivbench/cli/internal/output"
)

// NewModelsCmd creates the models command.
func NewModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models [name]",
		Short: "List the instrument model catalog",
		Long: `List the instrument models the validator knows about.

Without arguments, prints one line per model. With a model name, prints that
model's full option sets. Lookup ignores case, spaces and punctuation, so
'keithley-2400' finds "Keithley 2400".

The catalog is built into the binary; extend or override it with model files
in --models-dir or the modelsDir config setting.

Examples:
  # List all known models
  ivbench models

  # Show the option sets of one model
  ivbench models "Keithley 2400" -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runModels,
	}
}

func runModels(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return showModel(cat, args[0])
	}

	format := output.ParseOutputFormat(GetOutputFormat())
	if format != output.FormatTable {
		return renderModels(cat, format)
	}

	tbl := output.NewTable("MODEL", "VENDOR", "KIND")
	for _, name := range cat.Names() {
		m, _ := cat.Model(name)
		tbl.Row(m.Name, m.Vendor, string(m.Kind))
	}
	output.Println(tbl.String())
	return nil
}

func showModel(cat *catalog.Catalog, name string) error {
	m, ok := cat.Model(name)
	if !ok {
		return &ierrors.DetailError{
			Type:    "not found",
			Message: "model is not in the instrument catalog",
			Field:   name,
			Hint:    "Run 'ivbench models' to list the known models",
			Cause:   ierrors.ErrNotFound,
		}
	}

	var s string
	var err error
	if output.ParseOutputFormat(GetOutputFormat()) == output.FormatJSON {
		s, err = output.RenderJSON(m)
	} else {
		s, err = output.RenderYAML(m)
	}
	if err != nil {
		return err
	}
	output.Print(s)
	return nil
}

func renderModels(cat *catalog.Catalog, format output.OutputFormat) error {
	models := make([]*catalog.Model, 0, cat.Len())
	for _, name := range cat.Names() {
		m, _ := cat.Model(name)
		models = append(models, m)
	}

	var s string
	var err error
	if format == output.FormatJSON {
		s, err = output.RenderJSON(models)
	} else {
		s, err = output.RenderYAML(models)
	}
	if err != nil {
		return err
	}
	output.Print(s)
	return nil
}
