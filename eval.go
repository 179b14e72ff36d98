// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Eval effect operations.
// Eval provides evaluation suspension: a Delay defers a computation until an
// interpreter forces it.

// Delay is the effect operation deferring a computation.
type Delay struct{ F func() Erased }

// Eval is an evaluation-suspension effect instance.
type Eval struct {
	tag *Tag
	m   Member
}

// NewEval allocates an eval effect instance.
func NewEval(name string) Eval {
	return Eval{tag: NewTag(name)}
}

// Tag returns the instance's effect constructor tag.
func (ev Eval) Tag() *Tag {
	return ev.tag
}

// In binds the instance to a row.
func (ev Eval) In(r Row) Eval {
	ev.m = MustMember(ev.tag, r)
	return ev
}

// Member returns the bound membership witness.
func (ev Eval) Member() Member {
	return ev.m
}

// EvalDelay defers a computation until the eval effect is run.
func EvalDelay[A any](ev Eval, f func() A) Eff[A] {
	return Send[A](ev.m, Delay{F: func() Erased { return f() }})
}

// EvalNow lifts an already-computed value through the eval effect.
func EvalNow[A any](ev Eval, a A) Eff[A] {
	return EvalDelay(ev, func() A { return a })
}

// RunEval interprets the eval effect out of the row by forcing each delayed
// computation as a side effect, in batch order for applicative batches.
func RunEval[A any](ev Eval, e Eff[A]) Eff[A] {
	return InterpretUnsafe(e, ev.m, SideEffect{
		Apply: func(fx Erased) Erased {
			op, ok := fx.(Delay)
			if !ok {
				unhandledEffect("RunEval")
			}
			return op.F()
		},
	})
}
