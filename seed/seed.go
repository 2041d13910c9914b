// Package seed pre-populates a tree from a declarative definition. Nodes are
// built only through [memfs.Operator], so seeding obeys the same rules as
// interactive use.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/memfs"
	"github.com/brettbedarf/memfs/internal/util"
	"gopkg.in/yaml.v3"
)

// Stats counts what Apply did
type Stats struct {
	Dirs    int // directories created
	Files   int // files created
	Skipped int // files that already existed
}

// Load reads a seed definition from a .json, .yaml or .yml file
func Load(path string) ([]NodeDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data, filepath.Ext(path))
}

// Unmarshal decodes a top-level list of nodes; ext selects the format
func Unmarshal(data []byte, ext string) ([]NodeDTO, error) {
	var nodes []NodeDTO
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &nodes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal seed file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &nodes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal seed file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown seed file extension: %q", ext)
	}
	return nodes, nil
}

// Apply creates nodes under the operator's current directory and returns
// there when done. Existing directories are merged into and existing files
// are skipped without overwriting. Invalid nodes are reported and skipped;
// the returned error joins every problem found.
//
// NOTE: Apply navigates with ChangeDirectory/GoToParent, so the operator must
// not be shared with concurrent navigation while seeding
func Apply(op memfs.Operator, nodes []NodeDTO) (Stats, error) {
	var st Stats
	errs := apply(op, nodes, &st)
	return st, errors.Join(errs...)
}

func apply(op memfs.Operator, nodes []NodeDTO, st *Stats) []error {
	logger := util.GetLogger("Seed.Apply")

	var errs []error
	for _, n := range nodes {
		if n.Name == "" {
			errs = append(errs, errors.New("node with empty name"))
			continue
		}
		inferred := FileNodeType
		if len(n.Children) > 0 {
			inferred = DirNodeType
		}

		switch typ := util.ValueOrDefault(n.Type, inferred); typ {
		case DirNodeType:
			errs = append(errs, applyDir(op, n, st)...)

		case FileNodeType:
			if len(n.Children) > 0 {
				errs = append(errs, fmt.Errorf("file %q: files cannot have children", n.Name))
				continue
			}
			if err := applyFile(op, n, st); err != nil {
				errs = append(errs, err)
			}

		default:
			logger.Warn().Str("type", string(typ)).Str("name", n.Name).Msg("Unknown node type")
			errs = append(errs, fmt.Errorf("node %q: unknown type %q", n.Name, typ))
		}
	}
	return errs
}

func applyDir(op memfs.Operator, n NodeDTO, st *Stats) []error {
	logger := util.GetLogger("Seed.Apply")

	if n.Content != nil {
		return []error{fmt.Errorf("directory %q: directories cannot have content", n.Name)}
	}
	switch err := op.CreateDirectory(n.Name); {
	case err == nil:
		st.Dirs++
	case errors.Is(err, memfs.ErrAlreadyExists):
		logger.Debug().Str("name", n.Name).Msg("Merging into existing directory")
	default:
		return []error{err}
	}
	if len(n.Children) == 0 {
		return nil
	}

	if err := op.ChangeDirectory(n.Name); err != nil {
		return []error{err}
	}
	errs := apply(op, n.Children, st)
	if err := op.GoToParent(); err != nil {
		errs = append(errs, fmt.Errorf("leaving %q: %w", n.Name, err))
	}
	return errs
}

func applyFile(op memfs.Operator, n NodeDTO, st *Stats) error {
	logger := util.GetLogger("Seed.Apply")

	switch err := op.CreateFile(n.Name); {
	case err == nil:
		st.Files++
	case errors.Is(err, memfs.ErrAlreadyExists):
		logger.Debug().Str("name", n.Name).Msg("File exists; skipping")
		st.Skipped++
		return nil
	default:
		return err
	}
	if n.Content == nil {
		return nil
	}
	return op.WriteFile(n.Name, *n.Content)
}
