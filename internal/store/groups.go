package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fjacquet/budget-chat/internal/logging"
	"fjacquet/budget-chat/internal/matcher"
)

// groupConfig is one keyword group entry in the YAML file.
type groupConfig struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// groupsConfig is the structure of the groups YAML file.
type groupsConfig struct {
	Groups []groupConfig `yaml:"groups"`
}

// GroupStore loads keyword group overrides from a YAML file.
type GroupStore struct {
	path   string
	logger logging.Logger
}

// NewGroupStore creates a store for the given groups file path.
func NewGroupStore(path string, logger logging.Logger) *GroupStore {
	return &GroupStore{path: path, logger: logger}
}

// LoadGroups reads the keyword groups from the YAML file. A missing file is
// not an error: it yields nil and the caller falls back to the built-ins.
func (s *GroupStore) LoadGroups() ([]matcher.Group, error) {
	if s.path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, s.path).Debug("No groups file, using built-in keyword groups")
			return nil, nil
		}
		return nil, fmt.Errorf("error reading groups file: %w", err)
	}

	var cfg groupsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing groups file: %w", err)
	}

	groups := make([]matcher.Group, 0, len(cfg.Groups))
	for _, g := range cfg.Groups {
		if g.Label == "" {
			continue
		}
		groups = append(groups, matcher.Group{Label: g.Label, Keywords: g.Keywords})
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(groups)},
	).Debug("Loaded keyword groups")

	return groups, nil
}
