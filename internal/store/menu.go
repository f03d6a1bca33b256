package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Pangolin1100/class-order-system/internal/model"
)

// ConfigStore persists the shared MenuConfig as a JSON document.
type ConfigStore struct {
	path string
}

// NewConfigStore creates a ConfigStore backed by the file at path.
func NewConfigStore(path string) *ConfigStore {
	return &ConfigStore{path: path}
}

// Load reads the persisted menu. A missing, unreadable, or structurally
// invalid document falls back to the built-in default without surfacing an
// error, so the order-entry page never blocks on a bad menu file.
func (s *ConfigStore) Load() model.MenuConfig {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return model.DefaultMenu()
	}

	// Pointer fields distinguish "key absent or null" from "empty value";
	// both a missing key and a type mismatch reject the whole document.
	var doc struct {
		Meals  *map[string]string `json:"meals"`
		Drinks *[]string          `json:"drinks"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil || doc.Meals == nil || doc.Drinks == nil {
		return model.DefaultMenu()
	}

	return model.MenuConfig{Meals: *doc.Meals, Drinks: *doc.Drinks}
}

// Save overwrites the menu document with cfg. The document is kept
// human-editable: 4-space indent, meal codes in sorted order, and non-ASCII
// text written verbatim. Callers validate cfg before calling; only I/O and
// encoding failures surface.
func (s *ConfigStore) Save(cfg model.MenuConfig) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode menu config: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write menu config: %w", err)
	}
	return nil
}
