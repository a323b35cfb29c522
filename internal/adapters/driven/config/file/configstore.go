// Package file stores configuration in a TOML file. Dotted keys map to
// TOML tables: "zotero.library_id" is the library_id entry of the
// [zotero] table.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/citelib/zotero-mcp/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore reads and writes a config.toml. Values are held as the
// nested maps TOML decodes to; key lookups walk the dots.
type ConfigStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]any
}

// NewConfigStore opens the store in configDir, creating the directory
// when needed. An empty configDir means ~/.zotmcp.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".zotmcp")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		path:   filepath.Join(configDir, "config.toml"),
		values: map[string]any{},
	}

	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// GetString returns the string stored under the dotted key.
func (s *ConfigStore) GetString(key string) string {
	value, ok := s.lookup(key)
	if !ok {
		return ""
	}
	str, _ := value.(string)
	return str
}

// GetBool returns the bool stored under the dotted key.
func (s *ConfigStore) GetBool(key string) bool {
	value, ok := s.lookup(key)
	if !ok {
		return false
	}
	b, _ := value.(bool)
	return b
}

// lookup walks the nested tables along the dotted key.
func (s *ConfigStore) lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	node := s.values
	segments := strings.Split(key, ".")
	for i, segment := range segments {
		value, ok := node[segment]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return value, true
		}
		node, ok = value.(map[string]any)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// Set stores value under the dotted key, creating intermediate tables
// as needed. Replacing a table with a scalar is rejected.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	node := s.values
	segments := strings.Split(key, ".")
	for _, segment := range segments[:len(segments)-1] {
		child, ok := node[segment]
		if !ok {
			table := map[string]any{}
			node[segment] = table
			node = table
			continue
		}
		table, ok := child.(map[string]any)
		if !ok {
			return fmt.Errorf("config: %q is not a table", segment)
		}
		node = table
	}

	leaf := segments[len(segments)-1]
	if _, ok := node[leaf].(map[string]any); ok {
		return fmt.Errorf("config: %q is a table", key)
	}
	node[leaf] = value
	return nil
}

// Save writes the configuration to the TOML file.
func (s *ConfigStore) Save() error {
	s.mu.RLock()
	data, err := toml.Marshal(s.values)
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	// The file may hold an API key.
	return os.WriteFile(s.path, data, 0600)
}

// Load re-reads the TOML file. A missing file leaves the store empty.
func (s *ConfigStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.mu.Lock()
			s.values = map[string]any{}
			s.mu.Unlock()
			return nil
		}
		return err
	}

	var values map[string]any
	if err := toml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("config: parsing %s: %w", s.path, err)
	}
	if values == nil {
		values = map[string]any{}
	}

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.path
}
