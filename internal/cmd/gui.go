package cmd

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"streamfilter/internal/gui"
	"streamfilter/internal/logging"
)

const appID = "io.streamfilter.desktop"

func newGUICommand(rt *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "gui [file]",
		Short: "Open the desktop window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, log, closer, err := rt.session(logging.Discard)
			if err != nil {
				return err
			}
			defer closer.Close()

			a := app.NewWithID(appID)
			size := fyne.NewSize(float32(rt.cfg.GUI.Width), float32(rt.cfg.GUI.Height))
			w := gui.NewWindow(a, svc, size, logging.Component(log, "gui"))
			if len(args) == 1 {
				w.LoadPath(args[0])
			}
			w.ShowAndRun()
			return nil
		},
	}
}
