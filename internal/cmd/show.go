package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ivbench/cli/internal/output"
	"github.com/ivbench/cli/internal/sweep"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Display a sweep configuration",
		Long: `Display a sweep configuration file.

The table format summarizes the instruments, the sweep parameters and the
effective inter-point delay. The yaml and json formats render the whole
document, valid-options companions included, and are suitable for piping.

Examples:
  # Summary table
  ivbench show sweep_config.json

  # Full document as YAML
  ivbench show sweep_config.json -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := sweep.LoadFile(args[0])
	if err != nil {
		return err
	}

	format := output.ParseOutputFormat(GetOutputFormat())
	switch format {
	case output.FormatJSON:
		s, err := output.RenderJSON(cfg)
		if err != nil {
			return err
		}
		output.Print(s)
	case output.FormatYAML:
		s, err := output.RenderYAML(cfg)
		if err != nil {
			return err
		}
		output.Print(s)
	default:
		return showTable(cfg)
	}
	return nil
}

func showTable(cfg *sweep.Config) error {
	sm := cfg.Sourcemeter
	an := cfg.Analyzer
	sw := cfg.Sweep

	tbl := output.NewTable("SECTION", "SETTING", "VALUE").
		Row("sourcemeter", "model", sm.Model).
		Row("", "gpib_addr", sm.GPIBAddr).
		Row("", "source_mode", string(sm.SourceMode)).
		Row("", "source_range", formatFloat(sm.SourceRange)).
		Row("", "measure_function", string(sm.MeasureFunction)).
		Row("", "measure_range", formatFloat(sm.MeasureRange)).
		Row("", "nplc", formatFloat(sm.NPLC)).
		Row("", "front_rear", string(sm.FrontRear)).
		Row("impedance_analyzer", "model", an.Model).
		Row("", "gpib_addr", an.GPIBAddr).
		Row("", "frequency", formatFloat(an.Frequency)+" Hz").
		Row("", "mode", string(an.Mode)).
		Row("sweep", "start_voltage", formatFloat(sw.StartVoltage)).
		Row("", "stop_voltage", formatFloat(sw.StopVoltage)).
		Row("", "number_of_points", strconv.Itoa(sw.NumberOfPoints)).
		Row("", "compliance", formatFloat(sw.Compliance))

	output.Println(tbl.String())

	delay, err := cfg.EffectiveDelay()
	if err != nil {
		return err
	}
	output.Println(describeDelay(delay))
	return nil
}

// describeDelay renders the active delay branch as a one-line summary.
func describeDelay(delay sweep.Delay) string {
	switch d := delay.(type) {
	case *sweep.TimeDelay:
		return fmt.Sprintf("Delay: fixed, %s s between points", formatFloat(d.DelayValue))
	case *sweep.StatisticsDelay:
		return fmt.Sprintf("Delay: wait until %s(%s) %s reference, sampled every %s s",
			d.Metric, d.StatisticFunction, d.Comparator, formatFloat(d.TimerInterval))
	default:
		return fmt.Sprintf("Delay: %s", delay.Kind())
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
