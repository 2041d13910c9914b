package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/brettbedarf/memfs"
	"github.com/brettbedarf/memfs/filesystem"
	"github.com/brettbedarf/memfs/internal/mocks"
	"github.com/brettbedarf/memfs/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
- name: docs
  children:
    - name: readme
      content: "hello docs"
    - name: drafts
      type: dir
- name: top
  content: "at root"
- name: empty
`

const seedJSON = `[
  {"name": "docs", "children": [
    {"name": "readme", "content": "hello docs"},
    {"name": "drafts", "type": "dir"}
  ]},
  {"name": "top", "content": "at root"},
  {"name": "empty"}
]`

func TestUnmarshal_FormatsAgree(t *testing.T) {
	t.Parallel()

	fromYAML, err := Unmarshal([]byte(seedYAML), ".yaml")
	require.NoError(t, err)
	fromJSON, err := Unmarshal([]byte(seedJSON), ".JSON")
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	require.Len(t, fromYAML, 3)
	assert.Nil(t, fromYAML[0].Type, "type is optional")
	assert.Equal(t, DirNodeType, *fromYAML[0].Children[1].Type)
	assert.Nil(t, fromYAML[2].Content)
}

func TestUnmarshal_Errors(t *testing.T) {
	t.Parallel()

	_, err := Unmarshal([]byte("[]"), ".toml")
	assert.ErrorContains(t, err, "unknown seed file extension")

	_, err = Unmarshal([]byte("{broken"), ".json")
	assert.ErrorContains(t, err, "failed to unmarshal seed file")

	_, err = Unmarshal([]byte("name: [unclosed"), ".yml")
	assert.ErrorContains(t, err, "failed to unmarshal seed file")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	nodes, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, nodes, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestApply_BuildsTree(t *testing.T) {
	t.Parallel()

	nodes, err := Unmarshal([]byte(seedYAML), ".yaml")
	require.NoError(t, err)
	fs := filesystem.NewFS(nil)

	st, err := Apply(fs, nodes)

	require.NoError(t, err)
	assert.Equal(t, Stats{Dirs: 2, Files: 3}, st)
	assert.Same(t, fs.Root(), fs.Current(), "apply must return to where it started")
	assert.Equal(t, memfs.Listing{Dirs: []string{"docs"}, Files: []string{"empty", "top"}}, fs.List())

	top, err := fs.ReadFile("top")
	require.NoError(t, err)
	assert.Equal(t, "at root", top)

	require.NoError(t, fs.ChangeDirectory("docs"))
	readme, err := fs.ReadFile("readme")
	require.NoError(t, err)
	assert.Equal(t, "hello docs", readme)
	assert.Equal(t, []string{"drafts"}, fs.List().Dirs)
}

func TestApply_Idempotent(t *testing.T) {
	t.Parallel()

	nodes, err := Unmarshal([]byte(seedJSON), ".json")
	require.NoError(t, err)
	fs := filesystem.NewFS(nil)

	_, err = Apply(fs, nodes)
	require.NoError(t, err)
	require.NoError(t, fs.WriteFile("top", "edited"))

	st, err := Apply(fs, nodes)

	require.NoError(t, err)
	assert.Equal(t, Stats{Skipped: 3}, st)
	top, _ := fs.ReadFile("top")
	assert.Equal(t, "edited", top, "existing files are never overwritten")
}

func TestApply_InvalidNodes(t *testing.T) {
	t.Parallel()

	bogus := NodeType("symlink")
	nodes := []NodeDTO{
		{Name: ""},
		{Name: "weird", Type: &bogus},
		{Name: "f", Type: util.Pointer(FileNodeType), Children: []NodeDTO{{Name: "x"}}},
		{Name: "d", Type: util.Pointer(DirNodeType), Content: util.Pointer("nope")},
		{Name: "ok"},
	}
	fs := filesystem.NewFS(nil)

	st, err := Apply(fs, nodes)

	require.Error(t, err)
	assert.ErrorContains(t, err, "empty name")
	assert.ErrorContains(t, err, `unknown type "symlink"`)
	assert.ErrorContains(t, err, "cannot have children")
	assert.ErrorContains(t, err, "cannot have content")
	assert.Equal(t, Stats{Files: 1}, st, "valid nodes are still applied")
	assert.Equal(t, []string{"ok"}, fs.List().Files)
}

func TestApply_PropagatesOperatorErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	m := &mocks.MockOperator{}
	m.On("CreateDirectory", "d").Return(nil)
	m.On("ChangeDirectory", "d").Return(nil)
	m.On("CreateFile", "f").Return(boom)
	m.On("GoToParent").Return(nil)

	nodes := []NodeDTO{{Name: "d", Children: []NodeDTO{{Name: "f"}}}}
	st, err := Apply(m, nodes)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Stats{Dirs: 1}, st)
	m.AssertExpectations(t)
}
