// Package assets holds the static narrative text shown by the game: the
// introduction, instructions, logo, command help and the stranded-ship
// notice. Everything is embedded so a missing file is a build error, not a
// gameplay error.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

// Resource names understood by Load.
const (
	Intro        = "intro"
	Instructions = "instructions"
	Logo         = "logo"
	Commands     = "commands"
	Fatal        = "fatal"
)

// ErrUnknownResource is returned for names that have no embedded text.
var ErrUnknownResource = errors.New("assets: unknown resource")

//go:embed text/*.txt
var files embed.FS

// Store serves embedded resources. The zero value is ready to use.
type Store struct {
	fsys fs.FS
}

// New returns a store over the embedded text files.
func New() *Store {
	return &Store{fsys: files}
}

// NewFS returns a store over an arbitrary file system laid out like the
// embedded one (text/<name>.txt). Used to override assets from disk.
func NewFS(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Load returns the text of the named resource.
func (s *Store) Load(name string) (string, error) {
	fsys := s.fsys
	if fsys == nil {
		fsys = files
	}
	data, err := fs.ReadFile(fsys, "text/"+name+".txt")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w %q", ErrUnknownResource, name)
		}
		return "", fmt.Errorf("assets: cannot read %q: %w", name, err)
	}
	return string(data), nil
}

// Verify loads every resource the game needs and reports the first failure.
// Called once at startup; a failure there is fatal.
func (s *Store) Verify() error {
	for _, name := range []string{Intro, Instructions, Logo, Commands, Fatal} {
		if _, err := s.Load(name); err != nil {
			return err
		}
	}
	return nil
}
