// Package preset stores named adjustment parameter sets.
//
// A file-backed store keeps its presets in a YAML document and rewrites it
// after every change:
//
//	presets:
//	  - name: Warm film
//	    params:
//	      temperature: 40
//	      contrast: 0.15
//	      vignette:
//	        strength: 30
//	        radius: 60
package preset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/retouch"
)

// Errors returned by Store.
var (
	// ErrEmptyName is returned when a preset name is blank.
	ErrEmptyName = errors.New("preset: empty name")

	// ErrIndexOutOfRange is returned by Delete for a bad index.
	ErrIndexOutOfRange = errors.New("preset: index out of range")

	// ErrNotFound is returned by Get when no preset has the name.
	ErrNotFound = errors.New("preset: not found")
)

// Preset is a named parameter set.
type Preset struct {
	Name   string         `yaml:"name"`
	Params retouch.Params `yaml:"params"`
}

type document struct {
	Presets []Preset `yaml:"presets"`
}

// Store is an ordered list of presets. Names are unique ignoring case.
// Store is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	path    string
	presets []Preset
}

// NewMemory returns a store that is never written to disk.
func NewMemory() *Store {
	return &Store{}
}

// Open loads the store at path. A missing file yields an empty store that
// is created on the first change.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("preset: open: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("preset: parse %s: %w", path, err)
	}
	for _, p := range doc.Presets {
		name := normalize(p.Name)
		if name == "" {
			return nil, fmt.Errorf("preset: parse %s: %w", path, ErrEmptyName)
		}
		p.Name = name
		s.upsert(p)
	}
	return s, nil
}

// Path returns the backing file, or "" for a memory store.
func (s *Store) Path() string { return s.path }

// Save stores params under name. The name is trimmed and normalised to
// NFC; if a preset with the same name ignoring case exists it is replaced
// in place, keeping its position. It fails with ErrEmptyName for a blank
// name and with retouch.ErrInvalidParameter for invalid params.
func (s *Store) Save(name string, params retouch.Params) error {
	name = normalize(name)
	if name == "" {
		return ErrEmptyName
	}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("preset: save %q: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.snapshot()
	s.upsert(Preset{Name: name, Params: params})
	if err := s.flush(); err != nil {
		s.presets = prev
		return err
	}
	return nil
}

// List returns a copy of the presets in insertion order.
func (s *Store) List() []Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Len returns the number of presets.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.presets)
}

// Get returns the preset called name, ignoring case.
func (s *Store) Get(name string) (Preset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(normalize(name)); i >= 0 {
		return s.presets[i], nil
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Delete removes the preset at index i of List.
func (s *Store) Delete(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.presets) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s.presets))
	}
	prev := s.snapshot()
	s.presets = append(s.presets[:i], s.presets[i+1:]...)
	if err := s.flush(); err != nil {
		s.presets = prev
		return err
	}
	return nil
}

func (s *Store) upsert(p Preset) {
	if i := s.index(p.Name); i >= 0 {
		s.presets[i] = p
		return
	}
	s.presets = append(s.presets, p)
}

func (s *Store) index(name string) int {
	key := foldKey(name)
	for i, p := range s.presets {
		if foldKey(p.Name) == key {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []Preset {
	return append([]Preset(nil), s.presets...)
}

// flush writes the store to a temporary file in the same directory and
// renames it over the target.
func (s *Store) flush() error {
	if s.path == "" {
		return nil
	}
	data, err := yaml.Marshal(document{Presets: s.presets})
	if err != nil {
		return fmt.Errorf("preset: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("preset: write: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("preset: write: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("preset: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("preset: write: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("preset: write: %w", err)
	}
	return nil
}

func normalize(name string) string {
	return strings.TrimSpace(norm.NFC.String(name))
}

var folder = sync.Pool{New: func() any { c := cases.Fold(); return &c }}

// foldKey is the case-insensitive identity of a normalised name.
func foldKey(name string) string {
	c := folder.Get().(*cases.Caser)
	defer folder.Put(c)
	return norm.NFC.String(c.String(name))
}
