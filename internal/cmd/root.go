package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"streamfilter/internal/config"
	"streamfilter/internal/domain"
	"streamfilter/internal/filter"
	"streamfilter/internal/lines"
	"streamfilter/internal/logging"
	"streamfilter/internal/service"
	"streamfilter/internal/tui"
)

// Exit codes returned by the process.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
)

type settings struct {
	cfgPath  string
	logLevel string
	cfg      *config.AppConfig
}

// NewRootCommand builds the command tree. The root command runs the
// terminal UI; subcommands provide the GUI, one-shot and console modes.
func NewRootCommand() *cobra.Command {
	rt := &settings{}
	root := &cobra.Command{
		Use:   "streamfilter [file]",
		Short: "Filter the lines of a text file by a substring",
		Long: `streamfilter loads a text file and shows the lines that contain a
literal, case-sensitive substring next to the original content.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, closer, err := rt.session(logging.Discard)
			if err != nil {
				return err
			}
			defer closer.Close()
			opts := tui.Options{Highlight: rt.cfg.TUI.Highlight}
			if len(args) == 1 {
				opts.InitialPath = args[0]
			}
			p := tea.NewProgram(tui.New(svc, opts), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	root.PersistentFlags().StringVarP(&rt.cfgPath, "config", "c", "", "config file (default is ./streamfilter.yaml, then $HOME/.config/streamfilter/config.yaml)")
	root.PersistentFlags().StringVar(&rt.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newFilterCommand(rt),
		newConsoleCommand(rt),
		newGUICommand(rt),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

func (rt *settings) init() error {
	_ = godotenv.Load()

	var err error
	if rt.cfgPath == "" {
		rt.cfg, _, err = config.LoadDefault()
	} else {
		rt.cfg, err = config.Load(rt.cfgPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if rt.logLevel != "" {
		rt.cfg.Log.Level = rt.logLevel
	}
	return nil
}

// session assembles a filter session from the configured components.
func (rt *settings) session(sink logging.Sink) (*service.Session, zerolog.Logger, io.Closer, error) {
	log, closer, err := logging.New(rt.cfg.Log, sink)
	if err != nil {
		return nil, log, nil, err
	}

	var sp domain.Splitter
	switch rt.cfg.Filter.Splitter {
	case "lines", "":
		sp = lines.NewSplitter()
	default:
		closer.Close()
		return nil, log, nil, fmt.Errorf("unknown splitter: %s", rt.cfg.Filter.Splitter)
	}

	var m domain.Matcher
	switch rt.cfg.Filter.Matcher {
	case "substring", "":
		m = filter.NewSubstringMatcher()
	default:
		closer.Close()
		return nil, log, nil, fmt.Errorf("unknown matcher: %s", rt.cfg.Filter.Matcher)
	}

	svc := service.NewSession(sp, m, logging.Component(log, "session"))
	return svc, log, closer, nil
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case domain.IsValidationError(err):
		return ExitValidation
	default:
		return ExitFailure
	}
}
