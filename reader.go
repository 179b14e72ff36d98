// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Reader effect operations.
// Reader[E] provides a read-only environment.

// Ask is the effect operation for reading the environment.
type Ask[E any] struct{}

// Reader is a reader effect instance.
type Reader[E any] struct {
	tag *Tag
	m   Member
}

// NewReader allocates a reader effect instance.
func NewReader[E any](name string) Reader[E] {
	return Reader[E]{tag: NewTag(name)}
}

// Tag returns the instance's effect constructor tag.
func (rd Reader[E]) Tag() *Tag {
	return rd.tag
}

// In binds the instance to a row.
func (rd Reader[E]) In(r Row) Reader[E] {
	rd.m = MustMember(rd.tag, r)
	return rd
}

// Member returns the bound membership witness.
func (rd Reader[E]) Member() Member {
	return rd.m
}

// Ask reads the environment.
func (rd Reader[E]) Ask() Eff[E] {
	return Send[E](rd.m, Ask[E]{})
}

// Asks reads the environment through a projection.
func Asks[E, B any](rd Reader[E], f func(E) B) Eff[B] {
	return Map(rd.Ask(), f)
}

// RunReader interprets the reader effect out of the row with a fixed
// environment.
func RunReader[E, A any](rd Reader[E], env E, e Eff[A]) Eff[A] {
	step := func(fx Erased) Erased {
		if _, ok := fx.(Ask[E]); ok {
			return env
		}
		unhandledEffect("RunReader")
		return nil
	}
	return Interpret(e, rd.m, Pure[A], Recurse[A, A]{
		OnEffect: func(fx Erased) (Erased, Eff[A], bool) {
			return step(fx), Eff[A]{}, true
		},
		OnApplicative: func(fxs []Erased) ([]Erased, Erased, bool) {
			xs := make([]Erased, len(fxs))
			for i, fx := range fxs {
				xs[i] = step(fx)
			}
			return xs, nil, true
		},
	})
}
