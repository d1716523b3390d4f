package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type document struct {
	Conditions []ConditionRecord `yaml:"conditions"`
	Synonyms   SynonymTable      `yaml:"synonyms"`
}

// Parse decodes a YAML catalog document:
//
//	conditions:
//	  - name: Common Cold
//	    symptoms: [cough, fever]
//	    severity: mild
//	    ...
//	synonyms:
//	  fever: [high temperature]
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Conditions, doc.Synonyms)
}

func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}
