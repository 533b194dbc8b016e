package cli

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/euid/internal/uint128"
	"github.com/getmockd/euid/pkg/cli/internal/output"
	"github.com/getmockd/euid/pkg/euid"
)

// FromOutput represents JSON output format for the from command.
type FromOutput struct {
	ID  string `json:"id"`
	Hex string `json:"hex"`
}

// parseUint128 parses a decimal or 0x-prefixed hexadecimal integer.
func parseUint128(s string) (uint128.Uint128, error) {
	base := 10
	digits := s
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		base, digits = 16, rest
	}
	if digits == "" || strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return uint128.Uint128{}, fmt.Errorf("%q: %w", s, ErrInvalidInteger)
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return uint128.Uint128{}, fmt.Errorf("%q: %w", s, ErrInvalidInteger)
	}
	u, ok := uint128.FromBig(n)
	if !ok {
		return uint128.Uint128{}, fmt.Errorf("%q: %w", s, ErrIntegerRange)
	}
	return u, nil
}

func newFromCmd(g *globals) *cobra.Command {
	var noChecksum bool

	cmd := &cobra.Command{
		Use:   "from DECIMAL|0xHEX",
		Short: "Build an identifier from a 128-bit integer",
		Long: `Build an identifier from its 128-bit integer value and print the text form.
Any value is accepted; fields are not validated.`,
		Example: `  euid from 0
  euid from 0xffffffffffffffffffffffffffffffff
  euid from 340282366920938463463374607431768211455 --no-checksum`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g.overrideChecksum(cmd, noChecksum)

			u, err := parseUint128(args[0])
			if err != nil {
				return err
			}
			id := euid.FromLimbs(u.Hi, u.Lo)
			text := id.Encode(g.cfg.Checksum)

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return output.JSON(out, FromOutput{ID: text, Hex: hex.EncodeToString(id.Bytes())})
			}
			fmt.Fprintln(out, text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noChecksum, "no-checksum", false, "Encode without a checksum")
	return cmd
}
