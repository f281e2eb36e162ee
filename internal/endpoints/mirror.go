package endpoints

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/rpifan/rpifan/internal/controller"
	"github.com/rpifan/rpifan/internal/ui"
	"github.com/rpifan/rpifan/internal/util"
)

// Mirror keeps a copy of all endpoints in a directory on disk,
// updated after every tick
type Mirror struct {
	directory string
	tree      *Tree
}

func NewMirror(directory string, tree *Tree) *Mirror {
	return &Mirror{
		directory: directory,
		tree:      tree,
	}
}

func (m *Mirror) Path(name string) string {
	return filepath.Join(m.directory, name)
}

func (m *Mirror) OnTick(result controller.TickResult) {
	err := m.sync(map[string]string{
		StatusName: FormatStatus(result.Enabled, result.Sample),
	})
	if err != nil {
		ui.Warning("Unable to update mirror in %s: %v", m.directory, err)
	}
}

// Sync writes the current content of all endpoints
func (m *Mirror) Sync() error {
	return m.sync(nil)
}

func (m *Mirror) sync(known map[string]string) error {
	err := os.MkdirAll(m.directory, 0755)
	if err != nil {
		return err
	}

	var errs []error
	for _, name := range m.tree.Names() {
		endpoint, err := m.tree.Get(name)
		if err != nil {
			continue
		}
		content, ok := known[name]
		if !ok {
			content = string(endpoint.Content())
		}
		target := m.Path(name)
		if err := util.WriteFileAtomic(target, content); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := os.Chmod(target, endpoint.Mode()&0644); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Remove deletes the mirrored files
func (m *Mirror) Remove() error {
	var errs []error
	for _, name := range m.tree.Names() {
		err := os.Remove(m.Path(name))
		if err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
