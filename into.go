// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Row weakening.
// A program written against a small row lifts into any row that contains
// it. Derivation priority mirrors the structural rules of the calculus: the
// identity when the rows are equal, the trivial embedding from the empty
// row, and otherwise a per-effect containment check resolved head-first
// against the larger row.

// IntoPoly witnesses that every effect of one row appears in another.
type IntoPoly struct {
	from Row
	to   Row
}

// IntoPolyOf derives a weakening witness from one row into another. The
// second result is false when some effect of from does not occur in to.
func IntoPolyOf(from, to Row) (IntoPoly, bool) {
	for _, t := range from.tags {
		if !to.Contains(t) {
			return IntoPoly{}, false
		}
	}
	return IntoPoly{from: from, to: to}, true
}

// MustIntoPoly derives a weakening witness, panicking when from is not
// contained in to.
func MustIntoPoly(from, to Row) IntoPoly {
	p, ok := IntoPolyOf(from, to)
	if !ok {
		panic("eff: row is not contained in the target row")
	}
	return p
}

// From returns the source row.
func (p IntoPoly) From() Row {
	return p.from
}

// To returns the target row.
func (p IntoPoly) To() Row {
	return p.to
}

// EffInto lifts a program into the larger row. Effect nodes discriminate by
// tag identity, so the lifted program is representation-identical: values
// lift unchanged, effect nodes keep their tags and payloads, and batch
// sizes and the positional contract of every zipper are preserved. The
// witness contributes the containment proof derived at IntoPolyOf time.
func EffInto[A any](e Eff[A], p IntoPoly) Eff[A] {
	return e
}
