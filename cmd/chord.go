package cmd

import (
	"encoding/json"

	"github.com/jsphweid/chordparser/chord"
	"github.com/jsphweid/chordparser/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newChordCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "chord <notation>...",
		Short: "Describes chords",
		Long:  `Parses each chord and prints its canonical notation, quality, notes, degrees and intervals.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			views := make([]model.ChordView, 0, len(args))
			for _, notation := range args {
				c, err := chord.Parse(notation)
				if err != nil {
					a.logger.Debug("could not parse chord", zap.String("notation", notation), zap.Error(err))
					return err
				}
				views = append(views, chordView(c))
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}
			for _, v := range views {
				printChord(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}
