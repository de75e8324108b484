package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordparser/key"
	"github.com/jsphweid/chordparser/note"
	"github.com/jsphweid/chordparser/scale"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newScaleCmd(a *app) *cobra.Command {
	var degree, noteName string
	cmd := &cobra.Command{
		Use:   "scale <key>",
		Short: "Looks up notes and degrees in a scale",
		Long: `Prints the two-octave scale of a key. With --degree prints the note at a
scale degree such as b3; with --note prints the degree of a note.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := key.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			s, err := scale.New(k)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case degree != "":
				d, err := scale.ParseDegree(degree)
				if err != nil {
					return err
				}
				n, err := s.NoteFromDegree(d)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, n)
			case noteName != "":
				n, err := note.Parse(noteName)
				if err != nil {
					return err
				}
				d, err := s.DegreeFromNote(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, d)
			default:
				fmt.Fprintln(out, s)
				fmt.Fprintf(out, "  notes:   %s\n", strings.Join(noteNames(s.Notes()), " "))
				degrees := make([]string, 0, scale.Length)
				for _, d := range s.Degrees() {
					degrees = append(degrees, d.String())
				}
				fmt.Fprintf(out, "  degrees: %s\n", strings.Join(degrees, " "))
			}
			a.logger.Debug("scale looked up", zap.Stringer("scale", s))
			return nil
		},
	}
	cmd.Flags().StringVarP(&degree, "degree", "d", "", "scale degree to look up, such as 5 or b3")
	cmd.Flags().StringVarP(&noteName, "note", "n", "", "note to find the degree of")
	return cmd
}
