package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// extensions are the file suffixes a scenario may be stored under, in lookup order
var extensions = []string{".yaml", ".yml", ".json"}

// Manager loads scenarios from a directory and caches them by name
type Manager struct {
	dir   string
	cache map[string]*Scenario
}

// NewManager creates a manager for the scenarios in dir
func NewManager(dir string) (*Manager, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("scenario directory does not exist: %s", dir)
		}
		return nil, fmt.Errorf("failed to stat scenario directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scenario path is not a directory: %s", dir)
	}

	return &Manager{
		dir:   dir,
		cache: make(map[string]*Scenario),
	}, nil
}

// Dir returns the directory the manager reads from
func (m *Manager) Dir() string {
	return m.dir
}

// Load returns the scenario with the given name. The built-in demo is returned
// for DemoName unless the directory holds a file that overrides it.
func (m *Manager) Load(name string) (*Scenario, error) {
	name = trimExtension(name)

	if sc, ok := m.cache[name]; ok {
		return sc, nil
	}

	for _, ext := range extensions {
		path := filepath.Join(m.dir, name+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		sc, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		m.cache[name] = sc
		return sc, nil
	}

	if name == DemoName {
		return m.Default(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrScenarioNotFound, name)
}

// List returns information about every valid scenario in the directory.
// Files that fail to load are skipped.
func (m *Manager) List() ([]*Info, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var infos []*Info
	for _, entry := range entries {
		if entry.IsDir() || !hasExtension(entry.Name()) {
			continue
		}

		id := trimExtension(entry.Name())
		sc, err := m.Load(id)
		if err != nil {
			continue
		}

		infos = append(infos, &Info{
			Filename:    entry.Name(),
			ID:          id,
			Name:        sc.Name,
			Description: sc.Description,
			Steps:       len(sc.Steps),
			Entities:    len(sc.Entities()),
		})
	}

	return infos, nil
}

// Default returns the built-in demonstration scenario
func (m *Manager) Default() *Scenario {
	return Demo()
}

// Refresh drops every cached scenario so the next Load reads from disk
func (m *Manager) Refresh() {
	m.cache = make(map[string]*Scenario)
}

// LoadFile reads, decodes and validates a single scenario file
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	sc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	if err := Validate(sc); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return sc, nil
}

// Decode parses a YAML or JSON scenario document. Unknown fields are rejected.
func Decode(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	return &sc, nil
}

func hasExtension(filename string) bool {
	ext := filepath.Ext(filename)
	for _, known := range extensions {
		if ext == known {
			return true
		}
	}
	return false
}

func trimExtension(name string) string {
	if hasExtension(name) {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}
