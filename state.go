// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// State effect operations.
// State[S] provides mutable state threading through computations.

// Get is the effect operation for reading state.
type Get[S any] struct{}

// Put is the effect operation for writing state.
type Put[S any] struct{ Value S }

// Modify is the effect operation for modifying state; it returns the new
// state.
type Modify[S any] struct{ F func(S) S }

// State is a state effect instance. NewState allocates its tag; In binds it
// to a row by resolving the membership witness.
type State[S any] struct {
	tag *Tag
	m   Member
}

// NewState allocates a state effect instance.
func NewState[S any](name string) State[S] {
	return State[S]{tag: NewTag(name)}
}

// Tag returns the instance's effect constructor tag.
func (st State[S]) Tag() *Tag {
	return st.tag
}

// In binds the instance to a row.
func (st State[S]) In(r Row) State[S] {
	st.m = MustMember(st.tag, r)
	return st
}

// Member returns the bound membership witness.
func (st State[S]) Member() Member {
	return st.m
}

// Get reads the current state.
func (st State[S]) Get() Eff[S] {
	return Send[S](st.m, Get[S]{})
}

// Put replaces the current state.
func (st State[S]) Put(s S) Eff[struct{}] {
	return Send[struct{}](st.m, Put[S]{Value: s})
}

// Modify applies a function to the state and returns the new state.
func (st State[S]) Modify(f func(S) S) Eff[S] {
	return Send[S](st.m, Modify[S]{F: f})
}

// Gets reads the state through a projection.
func Gets[S, B any](st State[S], f func(S) B) Eff[B] {
	return Map(st.Get(), f)
}

// RunState interprets the state effect out of the row, returning the result
// paired with the final state. Applicative batches thread state through the
// batch left to right.
func RunState[S, A any](st State[S], init S, e Eff[A]) Eff[Pair[A, S]] {
	step := func(fx Erased, s S) (Erased, S) {
		switch op := fx.(type) {
		case Get[S]:
			return s, s
		case Put[S]:
			return struct{}{}, op.Value
		case Modify[S]:
			next := op.F(s)
			return next, next
		default:
			unhandledEffect("RunState")
			return nil, s
		}
	}
	return InterpretState(e, st.m, StateRecurse[A, Pair[A, S], S]{
		Init:     init,
		OnEffect: step,
		OnApplicative: func(fxs []Erased, s S) ([]Erased, Erased, S, bool) {
			xs := make([]Erased, len(fxs))
			for i, fx := range fxs {
				xs[i], s = step(fx, s)
			}
			return xs, nil, s, true
		},
		Finalize: func(a A, s S) Pair[A, S] {
			return Pair[A, S]{Fst: a, Snd: s}
		},
	})
}

// EvalState runs the state effect and keeps only the result.
func EvalState[S, A any](st State[S], init S, e Eff[A]) Eff[A] {
	return Map(RunState(st, init, e), func(p Pair[A, S]) A { return p.Fst })
}

// ExecState runs the state effect and keeps only the final state.
func ExecState[S, A any](st State[S], init S, e Eff[A]) Eff[S] {
	return Map(RunState(st, init, e), func(p Pair[A, S]) S { return p.Snd })
}
