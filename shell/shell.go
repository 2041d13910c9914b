package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/brettbedarf/memfs"
	"github.com/brettbedarf/memfs/config"
	"github.com/brettbedarf/memfs/internal/util"
)

// Shell reads command lines, runs them against an [memfs.Operator] and
// writes the rendered results. It never interprets results beyond rendering.
type Shell struct {
	op          memfs.Operator
	cfg         *config.Config
	out         io.Writer
	styles      Styles
	interactive bool // print banner and prompt
}

type Option func(*Shell)

// WithInteractive enables the banner and prompt
func WithInteractive(interactive bool) Option {
	return func(s *Shell) { s.interactive = interactive }
}

func WithStyles(styles Styles) Option {
	return func(s *Shell) { s.styles = styles }
}

// New creates a Shell writing to out. A nil cfg uses defaults.
func New(op memfs.Operator, cfg *config.Config, out io.Writer, opts ...Option) *Shell {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	s := &Shell{
		op:     op,
		cfg:    cfg,
		out:    out,
		styles: PlainStyles(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Exec runs a single line. exit is true when the line asks to leave the
// shell. Blank lines yield an empty Result.
func (s *Shell) Exec(line string) (res Result, exit bool) {
	logger := util.GetLogger("Shell.Exec")

	cmd := Parse(line)
	switch cmd.Keyword {
	case "":
		return Result{}, false
	case ExitKeyword:
		if len(cmd.Args) == 0 {
			return Result{}, true
		}
	}

	res = dispatch(s.op, cmd)
	logger.Trace().Str("keyword", cmd.Keyword).Strs("args", cmd.Args).AnErr("outcome", res.Err).Msg("Command executed")
	return res, false
}

// Run reads lines from in until an exit command or EOF. Only read errors
// are returned; command outcomes are rendered to the output.
func (s *Shell) Run(in io.Reader) error {
	logger := util.GetLogger("Shell.Run")

	if s.interactive && s.cfg.Banner != "" {
		fmt.Fprintln(s.out, s.cfg.Banner)
	}

	reader := bufio.NewReader(in)

	cnt := 0
	for {
		s.prompt()
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Error().Err(err).Msg("Failed to read input")
			return fmt.Errorf("read input: %w", err)
		}
		if err != nil && line == "" {
			break
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		res, exit := s.Exec(line)
		if exit {
			logger.Debug().Int("commands", cnt).Msg("Exit requested")
			return nil
		}
		cnt++
		if res.Text != "" {
			fmt.Fprintln(s.out, s.styles.render(res, memfs.IsInformational(res.Err)))
		}
		if err != nil {
			// final line had no newline
			break
		}
	}

	if s.interactive {
		// leave the terminal on a fresh line after ^D
		fmt.Fprintln(s.out)
	}
	logger.Debug().Int("commands", cnt).Msg("Input closed")
	return nil
}

func (s *Shell) prompt() {
	if s.interactive {
		fmt.Fprint(s.out, s.cfg.Prompt)
	}
}
