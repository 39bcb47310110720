// Package dataset persists complete engine input sets as YAML snapshots:
// every array transprob.Compute consumes, plus an optional expected output
// table, in one human-editable file.
//
// Snapshots exist for fixtures and runnable examples — the engine itself
// never reads files. Field names in the YAML mirror the domain's array
// names (transition_probability_coef, beta_sobolev, j_blues, ...), so a
// snapshot doubles as a readable record of one physical scenario.
//
// ⚙️ Usage:
//
//	ds, err := dataset.Load("testdata/worked_example.yaml")
//	in, err := ds.Inputs()            // grids + refs, construction-checked
//	out, _ := grid.New(len(ds.Coef), in.Beta.Cols())
//	err = transprob.Compute(in, out, ds.Options()...)
//
// Validation beyond array construction is deliberately left to
// transprob.Compute: the engine's staged validation is the single source
// of truth for the call contract.
package dataset
