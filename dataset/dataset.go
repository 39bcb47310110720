// SPDX-License-Identifier: MIT
// Package dataset: the YAML snapshot type and its conversions.

package dataset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/macroatom/blocks"
	"github.com/katalvlaran/macroatom/grid"
	"github.com/katalvlaran/macroatom/transprob"
)

// ErrNilDataset indicates a nil *Dataset argument to Save.
var ErrNilDataset = errors.New("dataset: nil dataset")

// snapshotPerm is the file mode for saved snapshots.
const snapshotPerm = 0o644

// Dataset is one complete engine input set. The YAML field names follow
// the domain's array names; Expected optionally pins the table Compute is
// supposed to produce under the snapshot's Normalize flag.
type Dataset struct {
	Name       string      `yaml:"name"`
	Coef       []float64   `yaml:"transition_probability_coef"`
	Beta       [][]float64 `yaml:"beta_sobolev"`
	JBlues     [][]float64 `yaml:"j_blues"`
	StimFactor [][]float64 `yaml:"stimulated_emission_factor"`
	Kinds      []int       `yaml:"transition_type"`
	LineIndex  []int       `yaml:"lines_idx"`
	BlockRefs  []int       `yaml:"block_references"`
	Normalize  bool        `yaml:"normalize"`
	Expected   [][]float64 `yaml:"expected,omitempty"`
}

// Load reads and decodes a snapshot file.
// Errors are wrapped with the path for diagnosis; no validation beyond
// YAML decoding happens here (see Inputs).
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var ds Dataset
	if err = yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}

	return &ds, nil
}

// Save encodes ds and writes it to path with mode 0644.
func Save(path string, ds *Dataset) error {
	if ds == nil {
		return ErrNilDataset
	}

	data, err := yaml.Marshal(ds)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err = os.WriteFile(path, data, snapshotPerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// Inputs converts the snapshot arrays into the engine's aggregate, building
// the three physical-line grids and copying the index arrays. Construction
// errors (empty or ragged tables) surface as grid sentinels; the full call
// contract is checked later by transprob.Compute.
func (ds *Dataset) Inputs() (transprob.Inputs, error) {
	beta, err := grid.NewFromRows(ds.Beta)
	if err != nil {
		return transprob.Inputs{}, fmt.Errorf("beta_sobolev: %w", err)
	}
	jblues, err := grid.NewFromRows(ds.JBlues)
	if err != nil {
		return transprob.Inputs{}, fmt.Errorf("j_blues: %w", err)
	}
	stim, err := grid.NewFromRows(ds.StimFactor)
	if err != nil {
		return transprob.Inputs{}, fmt.Errorf("stimulated_emission_factor: %w", err)
	}

	kinds := make([]transprob.Kind, len(ds.Kinds))
	for i, k := range ds.Kinds {
		kinds[i] = transprob.Kind(k)
	}

	return transprob.Inputs{
		Coef:       ds.Coef,
		Beta:       beta,
		JBlues:     jblues,
		StimFactor: stim,
		Kinds:      kinds,
		LineIndex:  ds.LineIndex,
		Blocks:     blocks.Refs(ds.BlockRefs),
	}, nil
}

// Options maps the snapshot's Normalize flag onto engine options.
func (ds *Dataset) Options() []transprob.Option {
	if ds.Normalize {
		return nil // engine default
	}

	return []transprob.Option{transprob.WithoutNormalization()}
}

// ExpectedGrid builds the pinned output table, or nil when the snapshot
// carries none.
func (ds *Dataset) ExpectedGrid() (*grid.Grid, error) {
	if ds.Expected == nil {
		return nil, nil
	}
	g, err := grid.NewFromRows(ds.Expected)
	if err != nil {
		return nil, fmt.Errorf("expected: %w", err)
	}

	return g, nil
}
