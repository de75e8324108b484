package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/chordparser/chord"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTransposeCmd(a *app) *cobra.Command {
	var letters int
	var flats bool
	cmd := &cobra.Command{
		Use:   "transpose <semitones> <chord>...",
		Short: "Transposes chords",
		Long: `Transposes chords by a number of semitones. With --letters the interval is
exact and the spelling follows from it; otherwise roots are respelled with
sharps, or with flats when --flats is set or use_flats is configured.
Negative semitones must follow "--" so they are not read as flags.`,
		Example: `  chordparser transpose 2 Cmaj7 Am7
  chordparser transpose --flats -- -3 D/F#`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			semitones, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("semitones must be a number: %w", err)
			}
			exact := cmd.Flags().Changed("letters")
			useFlats := a.cfg.UseFlats
			if cmd.Flags().Changed("flats") {
				useFlats = flats
			}
			for _, notation := range args[1:] {
				c, err := chord.Parse(notation)
				if err != nil {
					return err
				}
				var moved chord.Chord
				if exact {
					moved, err = c.Transpose(semitones, letters)
				} else {
					moved, err = c.TransposeSimple(semitones, useFlats)
				}
				if err != nil {
					return err
				}
				a.logger.Debug("transposed", zap.String("from", c.String()), zap.String("to", moved.String()))
				fmt.Fprintln(cmd.OutOrStdout(), moved)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&letters, "letters", "l", 0, "letters to move the root by, for exact transposition")
	cmd.Flags().BoolVar(&flats, "flats", false, "spell black keys with flats")
	return cmd
}
