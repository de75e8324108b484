package cmd

import (
	"strings"

	"github.com/jsphweid/chordparser/key"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newKeyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "key <key>",
		Short: "Describes a key",
		Long: `Prints a key's scale, degrees, step pattern, diatonic triads and relative key.
The key can be written as "C", "Cm", "D dorian" or "F# harmonic minor".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := key.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			a.logger.Debug("key parsed", zap.Stringer("key", k))
			v, err := keyView(k)
			if err != nil {
				return err
			}
			printKey(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
