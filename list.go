// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// List effect operations.
// List provides non-determinism: a send offers alternative values, and
// RunList explores every combination, collecting results in a deterministic
// order — depth-first over monadic sequencing, cartesian over applicative
// batches with the first batch element outermost.

// Values is the effect operation offering alternative values. An empty
// Items prunes the current branch.
type Values struct{ Items []Erased }

// List is a non-determinism effect instance.
type List struct {
	tag *Tag
	m   Member
}

// NewList allocates a list effect instance.
func NewList(name string) List {
	return List{tag: NewTag(name)}
}

// Tag returns the instance's effect constructor tag.
func (l List) Tag() *Tag {
	return l.tag
}

// In binds the instance to a row.
func (l List) In(r Row) List {
	l.m = MustMember(l.tag, r)
	return l
}

// Member returns the bound membership witness.
func (l List) Member() Member {
	return l.m
}

// ListValues offers the elements of a slice as alternatives.
func ListValues[A any](l List, items []A) Eff[A] {
	es := make([]Erased, len(items))
	for i, v := range items {
		es[i] = v
	}
	return Send[A](l.m, Values{Items: es})
}

// ListNil prunes the current branch.
func ListNil[A any](l List) Eff[A] {
	return Send[A](l.m, Values{})
}

// listRun is the interpreter state: branches not yet explored, and results
// accumulated so far. Neither slice is appended to in place: every addition
// builds a fresh slice — branches may share continuations, and results must
// not share backing storage.
type listRun[A any] struct {
	pending []Eff[A]
	acc     []A
}

// pop continues with the next pending branch, or finishes with the
// accumulated results.
func (s listRun[A]) pop() Outcome[A, []A, listRun[A]] {
	if len(s.pending) == 0 {
		return Outcome[A, []A, listRun[A]]{Out: Pure(s.acc), Done: true}
	}
	return Outcome[A, []A, listRun[A]]{
		Next:  s.pending[0],
		State: listRun[A]{pending: s.pending[1:], acc: s.acc},
	}
}

// branch schedules the alternatives of one choice point: the first
// alternative continues immediately, the rest go in front of the pending
// branches.
func (s listRun[A]) branch(alts []Eff[A]) Outcome[A, []A, listRun[A]] {
	if len(alts) == 0 {
		return s.pop()
	}
	pending := make([]Eff[A], 0, len(alts)-1+len(s.pending))
	pending = append(pending, alts[1:]...)
	pending = append(pending, s.pending...)
	return Outcome[A, []A, listRun[A]]{
		Next:  alts[0],
		State: listRun[A]{pending: pending, acc: s.acc},
	}
}

// RunList interprets the non-determinism effect out of the row, collecting
// the results of every branch in exploration order.
func RunList[A any](l List, e Eff[A]) Eff[[]A] {
	return InterpretLoop(e, l.m, Loop[A, []A, listRun[A]]{
		OnPure: func(a A, s listRun[A]) Outcome[A, []A, listRun[A]] {
			acc := make([]A, 0, len(s.acc)+1)
			acc = append(acc, s.acc...)
			acc = append(acc, a)
			return listRun[A]{pending: s.pending, acc: acc}.pop()
		},
		OnEffect: func(fx Erased, k Continuation[A], s listRun[A]) Outcome[A, []A, listRun[A]] {
			op, ok := fx.(Values)
			if !ok {
				unhandledEffect("RunList")
			}
			alts := make([]Eff[A], len(op.Items))
			for i, v := range op.Items {
				alts[i] = k.Apply(v)
			}
			return s.branch(alts)
		},
		OnApplicativeEffect: func(fxs []Erased, k Continuation[A], s listRun[A]) Outcome[A, []A, listRun[A]] {
			combos := cartesian(fxs)
			alts := make([]Eff[A], len(combos))
			for i, combo := range combos {
				alts[i] = k.Apply(combo)
			}
			return s.branch(alts)
		},
	})
}

// cartesian enumerates every combination of a batch of Values payloads, in
// lexicographic order with the first batch element outermost. An empty
// payload yields no combinations.
func cartesian(fxs []Erased) [][]Erased {
	total := 1
	items := make([][]Erased, len(fxs))
	for i, fx := range fxs {
		op, ok := fx.(Values)
		if !ok {
			unhandledEffect("RunList")
		}
		items[i] = op.Items
		total *= len(op.Items)
	}
	if total == 0 {
		return nil
	}
	combos := make([][]Erased, 0, total)
	combo := make([]Erased, len(items))
	var walk func(i int)
	walk = func(i int) {
		if i == len(items) {
			out := make([]Erased, len(combo))
			copy(out, combo)
			combos = append(combos, out)
			return
		}
		for _, v := range items[i] {
			combo[i] = v
			walk(i + 1)
		}
	}
	walk(0)
	return combos
}
