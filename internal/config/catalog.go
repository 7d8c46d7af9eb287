package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mtlprog/workforce/internal/domain"
)

// catalogFile is the on-disk shape of the reference type catalog:
//
//	reference_types:
//	  ORDER: [CREATE_INVOICE, ARRANGE_PICKUP]
//	  ENTITY: [ASSIGN_CUSTOMER_TO_SALES_PERSON]
type catalogFile struct {
	ReferenceTypes map[string][]string `yaml:"reference_types"`
}

// LoadCatalog reads a catalog from path. An empty path yields the built-in catalog.
func LoadCatalog(path string) (*domain.Catalog, error) {
	if path == "" {
		return domain.DefaultCatalog(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	catalog, err := ParseCatalog(content)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog decodes a YAML catalog document. Unknown keys are rejected.
func ParseCatalog(content []byte) (*domain.Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if len(file.ReferenceTypes) == 0 {
		return nil, fmt.Errorf("%w: catalog defines no reference types", domain.ErrValidation)
	}

	mapping := make(map[domain.ReferenceType][]domain.TaskType, len(file.ReferenceTypes))
	for refType, taskTypes := range file.ReferenceTypes {
		types := make([]domain.TaskType, len(taskTypes))
		for i, t := range taskTypes {
			types[i] = domain.TaskType(t)
		}
		mapping[domain.ReferenceType(refType)] = types
	}

	return domain.NewCatalog(mapping)
}

// MarshalCatalog encodes a catalog in the same YAML shape ParseCatalog reads.
func MarshalCatalog(catalog *domain.Catalog) ([]byte, error) {
	file := catalogFile{ReferenceTypes: make(map[string][]string)}
	for _, refType := range catalog.ReferenceTypes() {
		types := catalog.ApplicableTaskTypes(refType)
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = string(t)
		}
		file.ReferenceTypes[string(refType)] = names
	}

	out, err := yaml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return out, nil
}
