package resource

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk recipe catalog format:
//
//	generation: [oxygen]
//	combination: [water, diamond]
type catalogFile struct {
	Generation  []string `yaml:"generation"`
	Combination []string `yaml:"combination"`
}

// LoadCatalogs decodes a YAML recipe catalog into a generator and a combinator
func LoadCatalogs(r io.Reader) (*Generator, *Combinator, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	gen := NewGenerator()
	for _, name := range file.Generation {
		kind, err := ParseBasicResourceType(name)
		if err != nil {
			return nil, nil, fmt.Errorf("generation: %w", err)
		}
		if err := gen.AddRecipe(kind); err != nil {
			return nil, nil, err
		}
	}

	comb := NewCombinator()
	for _, name := range file.Combination {
		kind, err := ParseComplexResourceType(name)
		if err != nil {
			return nil, nil, fmt.Errorf("combination: %w", err)
		}
		if err := comb.AddRecipe(kind); err != nil {
			return nil, nil, err
		}
	}

	return gen, comb, nil
}

// LoadCatalogsFile opens path and decodes it with LoadCatalogs
func LoadCatalogsFile(path string) (*Generator, *Combinator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalogs(f)
}
