package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"streamfilter/internal/console"
	"streamfilter/internal/logging"
)

func newConsoleCommand(rt *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run load and filter commands read from stdin",
		Long: `Read commands line by line: load <path>, filter <query>, reload, show,
result, status, help and quit. An interactive terminal gets a prompt with
line editing; piped input is processed until end of file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, log, closer, err := rt.session(logging.Stderr)
			if err != nil {
				return err
			}
			defer closer.Close()

			c := console.New(svc, cmd.OutOrStdout(), logging.Component(log, "console"))
			in := cmd.InOrStdin()
			if in == os.Stdin && console.IsTerminal() {
				rl, err := console.NewTerminal()
				if err != nil {
					return err
				}
				defer rl.Close()
				return c.Run(rl)
			}
			return c.Run(console.NewScanner(in))
		},
	}
}
