package cmd

import (
	"os"

	"github.com/spf13/cobra"

	ierrors "github.com/ivbench/cli/internal/errors"
	"github.com/ivbench/cli/internal/output"
	"github.com/ivbench/cli/internal/sweep"
)

var initForceFlag bool

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a starter sweep configuration",
		Long: `Write a starter sweep configuration file.

The template describes a Keithley 2400 sourcemeter on GPIB0::24 and a
Keysight E4990A impedance analyzer on GPIB0::17, sweeping 0 to 5 V over 51
points with a fixed half-second delay. It passes 'ivbench vet' as written and
is meant to be edited, not used verbatim.

Arguments:
  file    Output path (default: sweep_config.json)

Examples:
  # Write sweep_config.json in the current directory
  ivbench init

  # Overwrite an existing file
  ivbench init my_sweep.json --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}

	cmd.Flags().BoolVarP(&initForceFlag, "force", "f", false,
		"Overwrite an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "sweep_config.json"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !initForceFlag {
		return &ierrors.DetailError{
			Type:     "invalid value",
			Message:  "file already exists",
			Location: path,
			Hint:     "Use --force to overwrite it",
			Cause:    ierrors.ErrInvalidValue,
		}
	}

	data, err := sweep.Marshal(TemplateConfig())
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	output.Println("Sweep configuration written to " + path)
	output.Println("Validate with: ivbench vet " + path)
	return nil
}

// TemplateConfig returns the starter configuration written by init. It round
// trips through Marshal and Load unchanged.
func TemplateConfig() *sweep.Config {
	return &sweep.Config{
		Sourcemeter: sweep.SourcemeterConfig{
			Model:                  "Keithley 2400",
			GPIBAddr:               "GPIB0::24::INSTR",
			Timeout:                5000,
			SourceMode:             sweep.SourceVoltage,
			SourceModeValidOptions: []sweep.SourceMode{sweep.SourceVoltage, sweep.SourceCurrent},
			SourceRange:            20,
			RemoteSense:            sweep.RemoteSenseOff,
			FormatElements:         []sweep.FormatElement{sweep.ElementVolt, sweep.ElementCurr},
			MeasureFunction:        sweep.MeasureDCCurrent,
			MeasureRange:           0.1,
			NPLC:                   1,
			FrontRear:              sweep.TerminalsFront,
		},
		Analyzer: sweep.AnalyzerConfig{
			Model:     "Keysight E4990A",
			GPIBAddr:  "GPIB0::17::INSTR",
			Timeout:   5000,
			Frequency: 1000,
			Mode:      sweep.AnalyzerVoltage,
		},
		Sweep: sweep.SweepConfig{
			StartVoltage:   0,
			StopVoltage:    5,
			NumberOfPoints: 51,
			Compliance:     0.1,
			SelectedDelay:  sweep.DelayTime,
			TimeDelay:      &sweep.TimeDelay{DelayValue: 0.5},
		},
	}
}
