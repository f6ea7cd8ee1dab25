// Package console drives a filter session from line-oriented commands, the
// non-graphical form of the load and filter actions.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"streamfilter/internal/domain"
)

const help = `commands:
  load <path>     read a file and make it the current document
  reload          read the current document's file again
  filter <query>  show the lines containing query
  show            print the current document
  result          print the last filtered result
  status          print the session state
  help            print this message
  quit            leave the console`

// ErrQuit is returned by Exec when the user asks to leave.
var ErrQuit = errors.New("quit")

// LineReader yields one command line per call and io.EOF at the end.
// *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// Console executes commands against a session and writes replies to out.
type Console struct {
	service domain.FilterService
	out     io.Writer
	log     zerolog.Logger
}

func New(service domain.FilterService, out io.Writer, log zerolog.Logger) *Console {
	return &Console{service: service, out: out, log: log}
}

// Exec runs one command line. Session errors are returned to the caller;
// none of them end the console.
func (c *Console) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	name, arg, _ := strings.Cut(line, " ")
	switch strings.ToLower(name) {
	case "load", "open":
		doc, err := c.service.Load(arg)
		if err != nil {
			return err
		}
		c.printf("File loaded successfully! %s (%d lines)\n", doc.Path, len(doc.Lines))
	case "reload":
		doc, err := c.service.Reload()
		if err != nil {
			return err
		}
		c.printf("File reloaded: %s (%d lines)\n", doc.Path, len(doc.Lines))
	case "filter", "search":
		res, err := c.service.Filter(arg)
		if err != nil {
			return err
		}
		c.printf("%s\n", res.Text())
	case "show":
		doc, ok := c.service.Document()
		if !ok {
			return domain.ErrNoDocument
		}
		c.printf("%s", doc.Content)
		if doc.Content != "" && !strings.HasSuffix(doc.Content, "\n") {
			c.printf("\n")
		}
	case "result":
		res, ok := c.service.Result()
		if !ok {
			c.printf("(no result)\n")
			return nil
		}
		c.printf("%s\n", res.Text())
	case "status":
		doc, ok := c.service.Document()
		if !ok {
			c.printf("%s\n", c.service.State())
			return nil
		}
		c.printf("%s: %s (%d lines)\n", c.service.State(), doc.Path, len(doc.Lines))
	case "help", "?":
		c.printf("%s\n", help)
	case "quit", "exit":
		return ErrQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", name)
	}
	return nil
}

// Run reads commands until EOF, an interrupt or quit. Command errors are
// reported on out and the loop carries on.
func (c *Console) Run(in LineReader) error {
	for {
		line, err := in.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return err
		}
		err = c.Exec(line)
		switch {
		case err == nil:
		case errors.Is(err, ErrQuit):
			return nil
		case domain.IsValidationError(err):
			c.log.Debug().Err(err).Msg("command rejected")
			c.printf("warning: %v\n", err)
		default:
			c.log.Debug().Err(err).Msg("command failed")
			c.printf("error: %v\n", err)
		}
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// NewScanner adapts a plain reader, such as piped stdin, to LineReader.
func NewScanner(r io.Reader) LineReader {
	return &scanner{s: bufio.NewScanner(r)}
}

type scanner struct {
	s *bufio.Scanner
}

func (s *scanner) Readline() (string, error) {
	if s.s.Scan() {
		return s.s.Text(), nil
	}
	if err := s.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// NewTerminal returns a readline prompt on the process terminal. No history
// file is kept.
func NewTerminal() (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "streamfilter> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
}

// IsTerminal reports whether stdin and stdout are attached to a terminal.
func IsTerminal() bool { return readline.DefaultIsTerminal() }
