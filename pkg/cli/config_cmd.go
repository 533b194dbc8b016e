package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/getmockd/euid/pkg/cli/internal/output"
)

// ConfigValue is one effective setting and where it came from.
type ConfigValue struct {
	Value  any    `json:"value"`
	Source string `json:"source"`
}

// ConfigOutput represents JSON output format for the config command.
type ConfigOutput struct {
	Epoch     ConfigValue `json:"epoch"`
	Checksum  ConfigValue `json:"checksum"`
	LogLevel  ConfigValue `json:"logLevel"`
	LogFormat ConfigValue `json:"logFormat"`
}

func newConfigCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Display effective configuration",
		Long: `Display the effective configuration and the source of every value:
default, global, local, file, env or flag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := g.cfg
			epoch, err := cfg.EpochTime()
			if err != nil {
				return err
			}
			epochText := epoch.Format(timeLayout)
			if epoch.After(time.Now()) {
				output.Warn(cmd.ErrOrStderr(), "epoch %s is in the future; new will fail until then", epochText)
			}

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return output.JSON(out, ConfigOutput{
					Epoch:     ConfigValue{Value: epochText, Source: cfg.Sources["epoch"]},
					Checksum:  ConfigValue{Value: cfg.Checksum, Source: cfg.Sources["checksum"]},
					LogLevel:  ConfigValue{Value: cfg.LogLevel, Source: cfg.Sources["logLevel"]},
					LogFormat: ConfigValue{Value: cfg.LogFormat, Source: cfg.Sources["logFormat"]},
				})
			}

			w := output.Table(out)
			fmt.Fprintln(w, "KEY\tVALUE\tSOURCE")
			fmt.Fprintf(w, "epoch\t%s\t%s\n", epochText, cfg.Sources["epoch"])
			fmt.Fprintf(w, "checksum\t%t\t%s\n", cfg.Checksum, cfg.Sources["checksum"])
			fmt.Fprintf(w, "logLevel\t%s\t%s\n", cfg.LogLevel, cfg.Sources["logLevel"])
			fmt.Fprintf(w, "logFormat\t%s\t%s\n", cfg.LogFormat, cfg.Sources["logFormat"])
			return w.Flush()
		},
	}
}
