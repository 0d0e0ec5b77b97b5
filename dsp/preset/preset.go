// Package preset stores engine parameter sets as YAML documents.
//
// Restoring a preset goes through the same path as a live edit: the
// parameters are validated, handed to the engine and a full rebuild
// publishes the new snapshot.
package preset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-galois/dsp/engine"
)

// ErrNoName is returned when a preset has no name.
var ErrNoName = errors.New("preset: missing name")

// Preset is a named parameter set. Params only needs the keys that differ
// from the defaults.
type Preset struct {
	Name        string                     `yaml:"name"`
	Description string                     `yaml:"description,omitempty"`
	Params      map[engine.ParamID]float64 `yaml:"params"`
}

// FromParams captures every value of p.
func FromParams(name string, p engine.Params) Preset {
	return Preset{Name: name, Params: p.Values()}
}

// Resolve returns the defaults overlaid with the preset values.
func (p Preset) Resolve() (engine.Params, error) {
	params := engine.DefaultParams()
	if err := params.SetValues(p.Params); err != nil {
		return params, fmt.Errorf("preset %q: %w", p.Name, err)
	}

	return params, nil
}

// Validate checks the name and every value.
func (p Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNoName
	}

	_, err := p.Resolve()

	return err
}

// Apply validates p and hands the result to e, which rebuilds.
// Nothing is applied when any value is invalid.
func Apply(e *engine.Engine, p Preset) error {
	params, err := p.Resolve()
	if err != nil {
		return err
	}

	e.SetParams(params)

	return nil
}

// Load decodes and validates one preset. Unknown document fields are
// rejected.
func Load(r io.Reader) (Preset, error) {
	var p Preset

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("preset: decode: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Preset{}, err
	}

	return p, nil
}

// LoadFile reads a preset from path.
func LoadFile(path string) (Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Save encodes p as YAML.
func (p Preset) Save(w io.Writer) error {
	if err := p.Validate(); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("preset: encode: %w", err)
	}

	return enc.Close()
}

// SaveFile writes p to path.
func (p Preset) SaveFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preset: %w", err)
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return p.Save(f)
}
