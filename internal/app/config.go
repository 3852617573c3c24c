package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/irfansharif/foldlock/internal/pattern"
)

// DesignSpec is one entry of a design file.
//
//	designs:
//	  - name: gift-box
//	    shape: box
//	    width: 5
//	    height: 3
//	    depth: 5
//	    thickness: 0.5
type DesignSpec struct {
	Name           string `yaml:"name"`
	pattern.Config `yaml:",inline"`
}

type designFile struct {
	Designs []DesignSpec `yaml:"designs"`
}

// Parse decodes a design file. Unknown keys and unknown shapes are errors.
// Unnamed designs are named after their shape and position.
func Parse(data []byte) ([]DesignSpec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f designFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding designs: %w", err)
	}
	for i := range f.Designs {
		if f.Designs[i].Name == "" {
			f.Designs[i].Name = fmt.Sprintf("%s-%d", f.Designs[i].Shape, i+1)
		}
	}
	return f.Designs, nil
}

// LoadFile reads and parses the design file at path.
func LoadFile(path string) ([]DesignSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	specs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}
