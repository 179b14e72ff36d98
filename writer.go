// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Writer effect operations.
// Writer[W] provides accumulating output (logging, tracing).

// Tell is the effect operation for appending output.
type Tell[W any] struct{ Value W }

// Writer is a writer effect instance.
type Writer[W any] struct {
	tag *Tag
	m   Member
}

// NewWriter allocates a writer effect instance.
func NewWriter[W any](name string) Writer[W] {
	return Writer[W]{tag: NewTag(name)}
}

// Tag returns the instance's effect constructor tag.
func (w Writer[W]) Tag() *Tag {
	return w.tag
}

// In binds the instance to a row.
func (w Writer[W]) In(r Row) Writer[W] {
	w.m = MustMember(w.tag, r)
	return w
}

// Member returns the bound membership witness.
func (w Writer[W]) Member() Member {
	return w.m
}

// Tell appends one output value.
func (w Writer[W]) Tell(v W) Eff[struct{}] {
	return Send[struct{}](w.m, Tell[W]{Value: v})
}

// tellNode is a persistent cons cell for accumulated output, newest first.
// A non-deterministic outer interpreter may resume a continuation more than
// once; sharing the tail across branches is safe because cells are never
// written after construction.
type tellNode[W any] struct {
	value W
	prev  *tellNode[W]
	size  int
}

func (n *tellNode[W]) push(v W) *tellNode[W] {
	size := 1
	if n != nil {
		size = n.size + 1
	}
	return &tellNode[W]{value: v, prev: n, size: size}
}

func (n *tellNode[W]) slice() []W {
	if n == nil {
		return nil
	}
	out := make([]W, n.size)
	for i := n.size - 1; n != nil; i, n = i-1, n.prev {
		out[i] = n.value
	}
	return out
}

// RunWriter interprets the writer effect out of the row, returning the
// result paired with the accumulated output in tell order. Batched tells
// append in batch order.
func RunWriter[W, A any](w Writer[W], e Eff[A]) Eff[Pair[A, []W]] {
	tell := func(fx Erased, out *tellNode[W]) *tellNode[W] {
		op, ok := fx.(Tell[W])
		if !ok {
			unhandledEffect("RunWriter")
		}
		return out.push(op.Value)
	}
	return InterpretState(e, w.m, StateRecurse[A, Pair[A, []W], *tellNode[W]]{
		OnEffect: func(fx Erased, out *tellNode[W]) (Erased, *tellNode[W]) {
			return struct{}{}, tell(fx, out)
		},
		OnApplicative: func(fxs []Erased, out *tellNode[W]) ([]Erased, Erased, *tellNode[W], bool) {
			xs := make([]Erased, len(fxs))
			for i, fx := range fxs {
				xs[i] = struct{}{}
				out = tell(fx, out)
			}
			return xs, nil, out, true
		},
		Finalize: func(a A, out *tellNode[W]) Pair[A, []W] {
			return Pair[A, []W]{Fst: a, Snd: out.slice()}
		},
	})
}

// ExecWriter runs the writer effect and keeps only the output.
func ExecWriter[W, A any](w Writer[W], e Eff[A]) Eff[[]W] {
	return Map(RunWriter(w, e), func(p Pair[A, []W]) []W { return p.Snd })
}

// LeftFold accumulates writer output into a custom state instead of a
// slice: Init seeds the accumulator and Fold absorbs one output value.
// The accumulator must be a value (or persistent) type: a non-deterministic
// outer interpreter may fold the same prefix into several branches.
type LeftFold[W, S any] struct {
	Init S
	Fold func(s S, w W) S
}

// RunWriterFold interprets the writer effect with a left fold over the
// output, returning the result paired with the folded accumulator.
func RunWriterFold[W, S, A any](w Writer[W], fold LeftFold[W, S], e Eff[A]) Eff[Pair[A, S]] {
	tell := func(fx Erased, s S) S {
		op, ok := fx.(Tell[W])
		if !ok {
			unhandledEffect("RunWriterFold")
		}
		return fold.Fold(s, op.Value)
	}
	return InterpretState(e, w.m, StateRecurse[A, Pair[A, S], S]{
		Init: fold.Init,
		OnEffect: func(fx Erased, s S) (Erased, S) {
			return struct{}{}, tell(fx, s)
		},
		OnApplicative: func(fxs []Erased, s S) ([]Erased, Erased, S, bool) {
			xs := make([]Erased, len(fxs))
			for i, fx := range fxs {
				xs[i] = struct{}{}
				s = tell(fx, s)
			}
			return xs, nil, s, true
		},
		Finalize: func(a A, s S) Pair[A, S] {
			return Pair[A, S]{Fst: a, Snd: s}
		},
	})
}
