package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"streamfilter/internal/logging"
)

func newFilterCommand(rt *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "filter <file> <query>",
		Short: "Print the lines of file that contain query",
		Long: `Load file and print every line that contains query as a literal,
case-sensitive substring, in file order. When nothing matches a
"No lines found containing: <query>" line is printed instead.

Exit status is 1 when the file cannot be read and 2 for an empty query.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, log, closer, err := rt.session(logging.Stderr)
			if err != nil {
				return err
			}
			defer closer.Close()

			if _, err := svc.Load(args[0]); err != nil {
				return err
			}
			res, err := svc.Filter(args[1])
			if err != nil {
				return err
			}
			log.Debug().Str("component", "cmd").Int("matched", len(res.Lines)).Msg("filter done")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Text())
			return err
		},
	}
}
