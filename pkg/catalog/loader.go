package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a catalog document. A single file may
// declare any mix of wrappers and templates.
type catalogFile struct {
	Wrappers  []WrapperConfig  `json:"wrappers,omitempty" yaml:"wrappers,omitempty"`
	Templates []TemplateConfig `json:"templates,omitempty" yaml:"templates,omitempty"`
}

// LoadFS walks root inside fsys and loads every catalog document it finds.
// JSON and YAML documents are both accepted, selected by file extension.
// Duplicate ids across documents are an error: catalogs merge, definitions
// never silently override each other.
func LoadFS(fsys fs.FS, root string) (*Store, error) {
	if fsys == nil {
		return nil, fmt.Errorf("catalog: filesystem is nil")
	}
	if root == "" {
		root = "."
	}

	store := NewStore()

	err := fs.WalkDir(fsys, root, func(entry string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(entry))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, entry)
		if err != nil {
			return fmt.Errorf("read %s: %w", entry, err)
		}

		var doc catalogFile
		if ext == ".json" {
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("parse %s: %w", entry, err)
			}
		} else {
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("parse %s: %w", entry, err)
			}
		}

		return store.merge(entry, doc)
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	return store, nil
}

func (s *Store) merge(source string, doc catalogFile) error {
	for _, wrapper := range doc.Wrappers {
		if wrapper.ID == "" {
			return fmt.Errorf("%s: wrapper id is required", source)
		}
		if wrapper.Markup == "" {
			return fmt.Errorf("%s: wrapper %q has no markup", source, wrapper.ID)
		}
		if _, exists := s.wrappers[wrapper.ID]; exists {
			return fmt.Errorf("%s: duplicate wrapper id %q", source, wrapper.ID)
		}
		s.wrappers[wrapper.ID] = wrapper
	}

	for _, template := range doc.Templates {
		if template.ID == "" {
			return fmt.Errorf("%s: template id is required", source)
		}
		if template.Content == "" {
			return fmt.Errorf("%s: template %q has no content", source, template.ID)
		}
		if _, exists := s.templates[template.ID]; exists {
			return fmt.Errorf("%s: duplicate template id %q", source, template.ID)
		}
		s.templates[template.ID] = template
	}

	return nil
}
