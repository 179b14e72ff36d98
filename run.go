// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Terminal execution over trivial rows.

// Run extracts the value of a program with no remaining effects.
// Encountering any other variant is a fatal bug: a non-empty row reached a
// runner for the empty row.
func Run[A any](e Eff[A]) A {
	if p, ok := e.n.(pureNode); ok {
		return p.value.(A)
	}
	panic("eff: run: program has remaining effects (" + variantName(e.n) + ")")
}

// RunPure returns the program's value iff it has no remaining effects.
func RunPure[A any](e Eff[A]) (A, bool) {
	if p, ok := e.n.(pureNode); ok {
		return p.value.(A), true
	}
	var zero A
	return zero, false
}

// Monad supplies pure and bind for a target effect constructor, threading
// type-erased values. Used by Detach to peel a single-effect row directly
// into that effect's own monad.
type Monad struct {
	Pure func(a Erased) Erased
	Bind func(m Erased, f func(Erased) Erased) Erased
}

// Detach peels a program over a single-effect row into the effect's monad:
// the result is the monad's value M[A], type-erased. Applicative batches
// are normalized to the monadic form first.
func Detach[A any](e Eff[A], mon Monad) Erased {
	n := e.n
	for {
		switch t := n.(type) {
		case pureNode:
			return mon.Pure(t.value)
		case impureNode:
			k := t.k
			return mon.Bind(t.union.Effect(), func(x Erased) Erased {
				return Detach(Eff[A]{n: k.apply(x)}, mon)
			})
		case impureApNode:
			n = t.toMonadic()
		default:
			panic("eff: unknown program variant in detach")
		}
	}
}
