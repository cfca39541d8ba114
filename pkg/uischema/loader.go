package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a JSON or YAML copy document. source names the document in
// error messages.
func Parse(data []byte, source string) (*Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("uischema: file %s is empty", source)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = Document{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("uischema: parse %s: invalid JSON or YAML: %w", source, err)
		}
	}
	doc.Source = source

	fields := make(map[string]FieldCopy, len(doc.Fields))
	for key, cfg := range doc.Fields {
		name := strings.TrimSpace(key)
		if name == "" {
			return nil, fmt.Errorf("uischema: file %s defines a field with an empty name", source)
		}
		if _, exists := fields[name]; exists {
			return nil, fmt.Errorf("uischema: file %s defines field %q twice", source, name)
		}
		if cfg.Widget != "" && !cfg.Widget.Valid() {
			return nil, fmt.Errorf("uischema: file %s field %q uses unknown widget %q", source, name, cfg.Widget)
		}
		if cfg.Widget == WidgetRadio && len(cfg.Options) == 0 {
			return nil, fmt.Errorf("uischema: file %s radio field %q has no options", source, name)
		}
		fields[name] = cfg
	}
	doc.Fields = fields
	return &doc, nil
}

// LoadFS reads a copy document from fsys.
func LoadFS(fsys fs.FS, path string) (*Document, error) {
	if fsys == nil {
		return nil, fmt.Errorf("uischema: no filesystem for %s", path)
	}
	if !isCopyFile(path) {
		return nil, fmt.Errorf("uischema: %s is not a JSON or YAML file", path)
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("uischema: read %s: %w", path, err)
	}
	return Parse(data, path)
}

func isCopyFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
