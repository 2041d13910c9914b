package shell

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/brettbedarf/memfs/config"
	"github.com/brettbedarf/memfs/filesystem"
	"github.com/brettbedarf/memfs/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, sh *Shell, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	sh.out = &out
	require.NoError(t, sh.Run(strings.NewReader(strings.Join(lines, "\n"))))
	return out.String()
}

func TestShell_Run_Transcript(t *testing.T) {
	t.Parallel()

	sh := New(filesystem.NewFS(nil), nil, nil)

	out := runScript(t, sh,
		"create notes",
		"create notes",
		"write notes hello   world",
		"read notes",
		"createDir notes",
		"cd notes",
		"pwd",
		"read notes",
		"parent",
		"parent",
		"ls",
		"bogus",
		"",
		"delete notes",
		"read notes",
		"exit",
		"create never",
	)

	want := strings.Join([]string{
		"File 'notes' created successfully.",
		"Error: File 'notes' already exists in the current directory.",
		"File 'notes' has been updated.",
		"Reading from in-memory file 'notes':",
		"hello   world",
		"Directory 'notes' created.",
		"Changed to directory 'notes'.",
		"/notes",
		"Error: File 'notes' not found in memory.",
		"Moved to parent directory.",
		"Already at the root directory.",
		"notes/",
		"notes",
		"Invalid command.",
		"File 'notes' has been deleted.",
		"Error: File 'notes' not found in memory.",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestShell_Run_StopsAtExitOnly(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewFS(nil)
	sh := New(fs, nil, nil)

	runScript(t, sh, "create a", "exit", "create b")

	assert.Equal(t, []string{"a"}, fs.List().Files, "lines after exit must not run")
}

func TestShell_Run_EOFWithoutExit(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewFS(nil)
	sh := New(fs, nil, nil)

	out := runScript(t, sh, "createDir d")

	assert.Equal(t, "Directory 'd' created.\n", out)
}

func TestShell_Run_Interactive(t *testing.T) {
	t.Parallel()

	cfg := config.NewDefaultConfig()
	cfg.Prompt = "> "
	cfg.Banner = "hi"
	sh := New(filesystem.NewFS(cfg), cfg, nil, WithInteractive(true))

	out := runScript(t, sh, "pwd", "exit")

	assert.Equal(t, "hi\n> /\n> ", out)
}

func TestShell_Run_InteractiveEOF(t *testing.T) {
	t.Parallel()

	cfg := config.NewDefaultConfig()
	cfg.Prompt = "$ "
	cfg.Banner = ""
	sh := New(filesystem.NewFS(cfg), cfg, nil, WithInteractive(true))

	out := runScript(t, sh)

	assert.Equal(t, "$ \n", out, "no banner when empty; newline after EOF")
}

func TestShell_Run_ReadError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("tty gone")
	sh := New(&mocks.MockOperator{}, nil, &bytes.Buffer{})

	err := sh.Run(iotest.ErrReader(readErr))

	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
}

func TestShell_Run_LongWriteLine(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewFS(nil)
	sh := New(fs, nil, nil)
	long := strings.Repeat("x", 200*1024)

	runScript(t, sh, "create big", "write big "+long)

	content, err := fs.ReadFile("big")
	require.NoError(t, err)
	assert.Equal(t, long, content)
}

func TestShell_Run_OverlongLine(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewFS(nil)
	sh := New(fs, nil, nil)
	long := strings.Repeat("x", 1<<20+1024)

	runScript(t, sh, "create a", "write a "+long, "create b", "exit")

	assert.Equal(t, []string{"a", "b"}, fs.List().Files, "session continues past a line over 1 MiB")
	content, err := fs.ReadFile("a")
	require.NoError(t, err)
	assert.Equal(t, long, content)
}

func TestShell_Run_CRLF(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewFS(nil)
	sh := New(fs, nil, nil)

	runScript(t, sh, "create a\r", "write a hi\r", "exit\r", "create b")

	assert.Equal(t, []string{"a"}, fs.List().Files)
	content, err := fs.ReadFile("a")
	require.NoError(t, err)
	assert.Equal(t, "hi", content)
}

func TestShell_Run_ExitWithArgs(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewFS(nil)
	sh := New(fs, nil, nil)

	out := runScript(t, sh, "exit now", "create b", "exit")

	assert.Equal(t, "Invalid command.\nFile 'b' created successfully.\n", out)
	assert.Equal(t, []string{"b"}, fs.List().Files)
}

func TestShell_Exec(t *testing.T) {
	t.Parallel()

	m := &mocks.MockOperator{}
	m.On("Pwd").Return("/")
	sh := New(m, nil, &bytes.Buffer{})

	res, exit := sh.Exec("pwd")
	assert.False(t, exit)
	assert.Equal(t, "/", res.Text)

	res, exit = sh.Exec("   ")
	assert.False(t, exit)
	assert.Equal(t, Result{}, res)

	_, exit = sh.Exec("  exit  ")
	assert.True(t, exit)

	res, exit = sh.Exec("exit now")
	assert.False(t, exit)
	assert.Equal(t, "Invalid command.", res.Text)
	assert.ErrorIs(t, res.Err, ErrInvalidCommand)

	m.AssertNumberOfCalls(t, "Pwd", 1)
}
