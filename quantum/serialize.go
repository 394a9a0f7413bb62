// SPDX-License-Identifier: MIT

// Package quantum: lossless serialization and content hashing.
//
// States round-trip through a structured JSON form with decimal-string
// component encoding — {"real": "...", "imag": "..."} — so reloading
// never passes through float64 and loses precision. The same canonical
// bytes feed ContentHash: a BLAKE2b-256 digest rendered as 64 hex
// characters, stable under structural equality, which is what the audit
// hook chains over.

package quantum

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/katalvlaran/qentangle/qmath"
)

// componentForm is the decimal-string encoding of one amplitude.
type componentForm struct {
	Real string `json:"real"`
	Imag string `json:"imag"`
}

// stateVectorForm is the wire form of a StateVector.
type stateVectorForm struct {
	Dimension  int             `json:"dimension"`
	Components []componentForm `json:"components"`
}

// densityMatrixForm is the wire form of a DensityMatrix.
type densityMatrixForm struct {
	Dimension int               `json:"dimension"`
	Matrix    [][]componentForm `json:"matrix"`
}

// encodeComponent renders one amplitude losslessly.
func encodeComponent(z *qmath.Complex) componentForm {
	re, im := z.DecimalParts()

	return componentForm{Real: re, Imag: im}
}

// decodeComponent parses one amplitude at the given precision.
func decodeComponent(c componentForm, prec uint) (*qmath.Complex, error) {
	z, err := qmath.ParseDecimal(c.Real, c.Imag, prec)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSerialize)
	}

	return z, nil
}

// MarshalJSON renders v as {"dimension": d, "components": [{real, imag}]}.
func (v *StateVector) MarshalJSON() ([]byte, error) {
	form := stateVectorForm{
		Dimension:  v.dim,
		Components: make([]componentForm, v.dim),
	}
	for i, c := range v.comps {
		form.Components[i] = encodeComponent(c)
	}

	return json.Marshal(form)
}

// UnmarshalJSON restores a vector from its wire form at DefaultPrecision.
// Returns ErrSerialize on malformed input, a non-positive dimension, or a
// component count that disagrees with the declared dimension.
func (v *StateVector) UnmarshalJSON(data []byte) error {
	var form stateVectorForm
	if err := json.Unmarshal(data, &form); err != nil {
		return fmt.Errorf("%v: %w", err, ErrSerialize)
	}
	if form.Dimension < 1 || len(form.Components) != form.Dimension {
		return ErrSerialize
	}

	comps := make([]*qmath.Complex, form.Dimension)
	for i, c := range form.Components {
		z, err := decodeComponent(c, DefaultPrecision)
		if err != nil {
			return err
		}
		comps[i] = z
	}

	v.dim = form.Dimension
	v.prec = DefaultPrecision
	v.comps = comps

	return nil
}

// MarshalJSON renders m as {"dimension": d, "matrix": [[{real, imag}]]}.
func (m *DensityMatrix) MarshalJSON() ([]byte, error) {
	form := densityMatrixForm{
		Dimension: m.dim,
		Matrix:    make([][]componentForm, m.dim),
	}
	for i, row := range m.rows {
		form.Matrix[i] = make([]componentForm, m.dim)
		for j, z := range row {
			form.Matrix[i][j] = encodeComponent(z)
		}
	}

	return json.Marshal(form)
}

// UnmarshalJSON restores a matrix from its wire form at DefaultPrecision.
// Returns ErrSerialize on malformed input or shape disagreements.
func (m *DensityMatrix) UnmarshalJSON(data []byte) error {
	var form densityMatrixForm
	if err := json.Unmarshal(data, &form); err != nil {
		return fmt.Errorf("%v: %w", err, ErrSerialize)
	}
	if form.Dimension < 1 || len(form.Matrix) != form.Dimension {
		return ErrSerialize
	}

	rows := make([][]*qmath.Complex, form.Dimension)
	for i, row := range form.Matrix {
		if len(row) != form.Dimension {
			return ErrSerialize
		}
		rows[i] = make([]*qmath.Complex, form.Dimension)
		for j, c := range row {
			z, err := decodeComponent(c, DefaultPrecision)
			if err != nil {
				return err
			}
			rows[i][j] = z
		}
	}

	m.dim = form.Dimension
	m.prec = DefaultPrecision
	m.rows = rows

	return nil
}

// ContentHash returns the BLAKE2b-256 digest of the canonical serialized
// form as 64 lowercase hex characters. Structurally equal vectors hash
// identically; this is the stable state identity the audit hook records.
func (v *StateVector) ContentHash() (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(data)

	return hex.EncodeToString(sum[:]), nil
}

// ContentHash returns the BLAKE2b-256 digest of the canonical serialized
// form as 64 lowercase hex characters.
func (m *DensityMatrix) ContentHash() (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(data)

	return hex.EncodeToString(sum[:]), nil
}
