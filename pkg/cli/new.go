package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/euid/pkg/cli/internal/output"
	"github.com/getmockd/euid/pkg/euid"
)

func newNewCmd(g *globals) *cobra.Command {
	var (
		count      int
		ext        uint16
		extLen     uint8
		noChecksum bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate identifiers",
		Long: `Generate one or more identifiers from a single generator, so a batch is
strictly increasing.

--ext embeds an extension value using its bit length as the width; add
--ext-len to fix the width explicitly. A counter overflow within one
millisecond is reported as an error.`,
		Example: `  euid new
  euid new -n 5
  euid new --ext 200
  euid new --ext 3 --ext-len 4 --no-checksum
  euid new --epoch 2024-01-01T00:00:00Z --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return ErrInvalidCount
			}
			g.overrideChecksum(cmd, noChecksum)

			epoch, err := g.cfg.EpochTime()
			if err != nil {
				return err
			}
			gen := euid.NewGenerator(euid.WithEpoch(epoch), euid.WithLogger(g.logger))

			next := gen.New
			switch {
			case cmd.Flags().Changed("ext-len"):
				next = func() (euid.ID, error) { return gen.Generate(extLen, ext) }
			case cmd.Flags().Changed("ext"):
				next = func() (euid.ID, error) { return gen.NewWithExtension(ext) }
			}

			ids := make([]string, 0, count)
			for range count {
				id, err := next()
				if err != nil {
					return fmt.Errorf("generating identifier %d of %d: %w", len(ids)+1, count, err)
				}
				ids = append(ids, id.Encode(g.cfg.Checksum))
			}
			g.logger.Debug("generated identifiers", "count", count, "checksum", g.cfg.Checksum)

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return output.JSON(out, ids)
			}
			for _, s := range ids {
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of identifiers to generate")
	cmd.Flags().Uint16Var(&ext, "ext", 0, "Extension value to embed (at most 15 bits)")
	cmd.Flags().Uint8Var(&extLen, "ext-len", 0, "Extension width in bits, 0-15 (default: bit length of --ext)")
	cmd.Flags().BoolVar(&noChecksum, "no-checksum", false, "Encode without a checksum")
	return cmd
}
