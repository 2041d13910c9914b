package shell

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/brettbedarf/memfs"
)

// Result is the rendered outcome of one command
type Result struct {
	Text string
	Err  error // nil on success; an informational or failure outcome otherwise
}

type handlerFunc func(op memfs.Operator, name string, args []string) Result

type handler struct {
	usage string
	help  string
	nargs int // required arguments
	run   handlerFunc
}

// Keywords handled outside the handler table
const (
	ExitKeyword = "exit" // ends the read loop
	HelpKeyword = "help"
)

// handlers maps each keyword onto its implementation
var handlers = map[string]handler{
	"create": {
		usage: "create <file>", help: "create an empty file", nargs: 1,
		run: func(op memfs.Operator, name string, _ []string) Result {
			err := op.CreateFile(name)
			switch {
			case err == nil:
				return Result{Text: fmt.Sprintf("File '%s' created successfully.", name)}
			case errors.Is(err, memfs.ErrAlreadyExists):
				return failed(err, "Error: File '%s' already exists in the current directory.", name)
			}
			return unexpected(err)
		},
	},
	"read": {
		usage: "read <file>", help: "print a file's content", nargs: 1,
		run: func(op memfs.Operator, name string, _ []string) Result {
			content, err := op.ReadFile(name)
			switch {
			case err == nil:
				return Result{Text: fmt.Sprintf("Reading from in-memory file '%s':\n%s", name, content)}
			case errors.Is(err, memfs.ErrNotFound):
				return failed(err, "Error: File '%s' not found in memory.", name)
			}
			return unexpected(err)
		},
	},
	"write": {
		usage: "write <file> <content>", help: "replace a file's content with the rest of the line", nargs: 1,
		run: func(op memfs.Operator, name string, args []string) Result {
			err := op.WriteFile(name, args[1])
			switch {
			case err == nil:
				return Result{Text: fmt.Sprintf("File '%s' has been updated.", name)}
			case errors.Is(err, memfs.ErrNotFound):
				return failed(err, "Error: File '%s' not found.", name)
			}
			return unexpected(err)
		},
	},
	"delete": {
		usage: "delete <file>", help: "remove a file", nargs: 1,
		run: func(op memfs.Operator, name string, _ []string) Result {
			err := op.DeleteFile(name)
			switch {
			case err == nil:
				return Result{Text: fmt.Sprintf("File '%s' has been deleted.", name)}
			case errors.Is(err, memfs.ErrNotFound):
				return failed(err, "Error: File '%s' not found.", name)
			}
			return unexpected(err)
		},
	},
	"createDir": {
		usage: "createDir <dir>", help: "create a directory", nargs: 1,
		run: func(op memfs.Operator, name string, _ []string) Result {
			err := op.CreateDirectory(name)
			switch {
			case err == nil:
				return Result{Text: fmt.Sprintf("Directory '%s' created.", name)}
			case errors.Is(err, memfs.ErrAlreadyExists):
				return failed(err, "Error: Directory '%s' already exists.", name)
			}
			return unexpected(err)
		},
	},
	"cd": {
		usage: "cd <dir>", help: "enter a child directory", nargs: 1,
		run: func(op memfs.Operator, name string, _ []string) Result {
			err := op.ChangeDirectory(name)
			switch {
			case err == nil:
				return Result{Text: fmt.Sprintf("Changed to directory '%s'.", name)}
			case errors.Is(err, memfs.ErrNotFound):
				return failed(err, "Error: Directory '%s' not found.", name)
			}
			return unexpected(err)
		},
	},
	"parent": {
		usage: "parent", help: "move to the parent directory",
		run: func(op memfs.Operator, _ string, _ []string) Result {
			err := op.GoToParent()
			switch {
			case err == nil:
				return Result{Text: "Moved to parent directory."}
			case errors.Is(err, memfs.ErrAlreadyAtRoot):
				return failed(err, "Already at the root directory.")
			case errors.Is(err, memfs.ErrDanglingParent):
				return failed(err, "Error: Parent directory no longer exists.")
			}
			return unexpected(err)
		},
	},
	"root": {
		usage: "root", help: "move to the root directory",
		run: func(op memfs.Operator, _ string, _ []string) Result {
			op.GoToRoot()
			return Result{Text: "Moved to root directory."}
		},
	},
	"ls": {
		usage: "ls", help: "list the current directory, directories first",
		run: func(op memfs.Operator, _ string, _ []string) Result {
			l := op.List()
			lines := make([]string, 0, len(l.Dirs)+len(l.Files))
			for _, d := range l.Dirs {
				lines = append(lines, d+"/")
			}
			lines = append(lines, l.Files...)
			return Result{Text: strings.Join(lines, "\n")}
		},
	},
	"pwd": {
		usage: "pwd", help: "print the current directory",
		run: func(op memfs.Operator, _ string, _ []string) Result {
			return Result{Text: op.Pwd()}
		},
	},
}

// ErrInvalidCommand is the outcome of an unknown keyword or missing argument
var ErrInvalidCommand = errors.New("invalid command")

func failed(err error, format string, a ...any) Result {
	return Result{Text: fmt.Sprintf(format, a...), Err: err}
}

func unexpected(err error) Result {
	return Result{Text: "Error: " + err.Error(), Err: err}
}

// dispatch runs cmd against op
func dispatch(op memfs.Operator, cmd Command) Result {
	if cmd.Keyword == HelpKeyword {
		return Result{Text: helpText()}
	}
	h, ok := handlers[cmd.Keyword]
	if !ok {
		return Result{Text: "Invalid command.", Err: ErrInvalidCommand}
	}
	if len(cmd.Args) < h.nargs {
		return Result{Text: "Usage: " + h.usage, Err: ErrInvalidCommand}
	}
	return h.run(op, cmd.Arg(0), cmd.Args)
}

func helpText() string {
	keys := make([]string, 0, len(handlers))
	for k := range handlers {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString("Commands:")
	for _, k := range keys {
		h := handlers[k]
		fmt.Fprintf(&b, "\n  %-24s %s", h.usage, h.help)
	}
	fmt.Fprintf(&b, "\n  %-24s %s", HelpKeyword, "show this message")
	fmt.Fprintf(&b, "\n  %-24s %s", ExitKeyword, "leave the shell")
	return b.String()
}
