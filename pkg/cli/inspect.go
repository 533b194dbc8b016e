package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cobra"

	"github.com/getmockd/euid/pkg/cli/internal/output"
	"github.com/getmockd/euid/pkg/euid"
)

// timeLayout is RFC 3339 with fixed millisecond precision.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// InspectOutput represents JSON output format for one identifier.
type InspectOutput struct {
	ID         string  `json:"id"`
	Timestamp  uint64  `json:"timestamp"`
	Time       string  `json:"time"`
	Extension  *uint16 `json:"extension"`
	ExtLen     uint8   `json:"extLen"`
	Payload    uint16  `json:"payload"`
	RandomHigh uint32  `json:"randomHigh"`
	RandomLow  uint32  `json:"randomLow"`
	Checksum   uint8   `json:"checksum"`
	Hex        string  `json:"hex"`
	UUID       string  `json:"uuid"`
}

func newInspectOutput(id euid.ID, epoch time.Time) InspectOutput {
	f := id.Fields()
	out := InspectOutput{
		ID:         id.String(),
		Timestamp:  f.Timestamp,
		Time:       id.Time(epoch).Format(timeLayout),
		ExtLen:     f.ExtLen,
		Payload:    f.Payload,
		RandomHigh: f.RandomHigh,
		RandomLow:  f.RandomLow,
		Checksum:   id.Checksum(),
		Hex:        hex.EncodeToString(id.Bytes()),
		UUID:       id.UUID().String(),
	}
	if ext, ok := id.Extension(); ok {
		out.Extension = &ext
	}
	return out
}

func newInspectCmd(g *globals) *cobra.Command {
	var where string

	cmd := &cobra.Command{
		Use:   "inspect ID...",
		Short: "Decode identifiers and show their fields",
		Long: `Decode each identifier and print its timestamp, time, extension, payload,
random fields, checksum and hex and UUID forms. Input is case-insensitive;
I and L read as 1 and O reads as 0.

The time is computed against --epoch, which must match the epoch the
identifier was generated with.

--where keeps only identifiers for which a boolean expression holds. It sees
id, timestamp, time, hasExtension, extension (-1 when absent), extLen,
payload, randomHigh, randomLow, checksum, hex and uuid.

With --json the output is always an array, one object per identifier shown,
even for a single identifier or when --where matches nothing.`,
		Example: `  euid inspect $(euid new)
  euid inspect --json $(euid new -n 3)
  euid inspect --where 'extension == 3' $(cat ids.txt)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			epoch, err := g.cfg.EpochTime()
			if err != nil {
				return err
			}

			var program *vm.Program
			if where != "" {
				if program, err = compileWhere(where); err != nil {
					return err
				}
			}

			results := make([]InspectOutput, 0, len(args))
			for _, arg := range args {
				id, err := euid.Parse(arg)
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
				r := newInspectOutput(id, epoch)
				if program != nil {
					ok, err := matchWhere(program, whereEnv(r, id.Time(epoch)))
					if err != nil {
						return fmt.Errorf("%s: %w", arg, err)
					}
					if !ok {
						continue
					}
				}
				results = append(results, r)
			}
			g.logger.Debug("inspected identifiers", "count", len(args), "matched", len(results))

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return output.JSON(out, results)
			}

			for i, r := range results {
				if i > 0 {
					fmt.Fprintln(out)
				}
				ext := "none"
				if r.Extension != nil {
					ext = strconv.FormatUint(uint64(*r.Extension), 10)
				}
				w := output.Table(out)
				fmt.Fprintf(w, "ID:\t%s\n", r.ID)
				fmt.Fprintf(w, "Timestamp:\t%d\n", r.Timestamp)
				fmt.Fprintf(w, "Time:\t%s\n", r.Time)
				fmt.Fprintf(w, "Extension:\t%s\n", ext)
				fmt.Fprintf(w, "ExtLen:\t%d\n", r.ExtLen)
				fmt.Fprintf(w, "Payload:\t%#04x\n", r.Payload)
				fmt.Fprintf(w, "RandomHigh:\t%#08x\n", r.RandomHigh)
				fmt.Fprintf(w, "RandomLow:\t%#08x\n", r.RandomLow)
				fmt.Fprintf(w, "Checksum:\t%d\n", r.Checksum)
				fmt.Fprintf(w, "Hex:\t%s\n", r.Hex)
				fmt.Fprintf(w, "UUID:\t%s\n", r.UUID)
				if err := w.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&where, "where", "", "Only show identifiers matching this expression")
	return cmd
}
