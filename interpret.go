// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// The interpreter kernel.
// One iterative driver consumes a program variant at a time and feeds the
// handler protocol; every handler combinator in the package is defined on
// top of it. The driver never recurses on the program tree: continuations of
// effects the handler does not recognize are re-wrapped lazily, so stacks
// stay bounded across interleaved handlers.

// Outcome is the result of one Loop callback: continue the driver with a
// rewritten program and new state, or finish with a final program in the
// target row.
type Outcome[A, B, S any] struct {
	// Next is the program to keep interpreting when Done is false.
	Next Eff[A]

	// State is the handler state accompanying Next.
	State S

	// Out is the final program when Done is true.
	Out Eff[B]

	// Done selects between the two.
	Done bool
}

// Loop is the general interpreter protocol: a handler-private state S with
// its initial value, and one callback per program variant. Callbacks receive
// the targeted effect payloads type-erased; the continuation of an
// applicative batch takes the []Erased of per-effect results in original
// positional order.
type Loop[A, B, S any] struct {
	Init                S
	OnPure              func(a A, s S) Outcome[A, B, S]
	OnEffect            func(fx Erased, k Continuation[A], s S) Outcome[A, B, S]
	OnApplicativeEffect func(fxs []Erased, k Continuation[A], s S) Outcome[A, B, S]
}

// InterpretLoop runs the general driver: effects witnessed by m are fed to
// the loop callbacks and removed from the row; all other effects are passed
// through with lazily re-wrapped continuations.
func InterpretLoop[A, B, S any](e Eff[A], m Member, loop Loop[A, B, S]) Eff[B] {
	return interpretNode[A, B](e.n, m, loop, loop.Init)
}

func interpretNode[A, B, S any](n node, m Member, loop Loop[A, B, S], s S) Eff[B] {
	for {
		switch t := n.(type) {
		case pureNode:
			o := loop.OnPure(t.value.(A), s)
			if o.Done {
				return o.Out
			}
			n, s = o.Next.n, o.State

		case impureNode:
			if fx, ok := m.Extract(t.union); ok {
				o := loop.OnEffect(fx, Continuation[A]{q: t.k}, s)
				if o.Done {
					return o.Out
				}
				n, s = o.Next.n, o.State
				continue
			}
			// Not ours: emit the effect in the smaller row and defer the
			// rest of the interpretation to resumption time.
			k, st := t.k, s
			return Eff[B]{n: impureNode{
				union: m.residual(t.union),
				k: singleK(func(x Erased) node {
					return interpretNode[A, B](k.apply(x), m, loop, st).n
				}),
			}}

		case impureApNode:
			c := t.unions.Project(m)
			if len(c.Effects) == 0 {
				// The whole batch is foreign: re-emit it in the smaller row
				// and bind the handler's pure continuation after it.
				st := s
				rest := node(impureApNode{unions: Unions{list: c.Others}, zip: t.zip})
				return Eff[B]{n: bindNode(rest, func(x Erased) node {
					return interpretNode[A, B](pureNode{value: x}, m, loop, st).n
				})}
			}
			k := Continuation[A]{q: c.continuation(t.zip, m)}
			o := loop.OnApplicativeEffect(c.Effects, k, s)
			if o.Done {
				return o.Out
			}
			n, s = o.Next.n, o.State

		default:
			panic("eff: unknown program variant in interpreter")
		}
	}
}

// StatelessLoop is Loop without handler state.
type StatelessLoop[A, B any] struct {
	OnPure              func(a A) Outcome[A, B, struct{}]
	OnEffect            func(fx Erased, k Continuation[A]) Outcome[A, B, struct{}]
	OnApplicativeEffect func(fxs []Erased, k Continuation[A]) Outcome[A, B, struct{}]
}

// InterpretStatelessLoop runs the general driver without handler state.
func InterpretStatelessLoop[A, B any](e Eff[A], m Member, loop StatelessLoop[A, B]) Eff[B] {
	return InterpretLoop(e, m, Loop[A, B, struct{}]{
		OnPure: func(a A, _ struct{}) Outcome[A, B, struct{}] {
			return loop.OnPure(a)
		},
		OnEffect: func(fx Erased, k Continuation[A], _ struct{}) Outcome[A, B, struct{}] {
			return loop.OnEffect(fx, k)
		},
		OnApplicativeEffect: func(fxs []Erased, k Continuation[A], _ struct{}) Outcome[A, B, struct{}] {
			return loop.OnApplicativeEffect(fxs, k)
		},
	})
}

// Recurse is the stateless handle-and-remove protocol for Interpret.
type Recurse[A, B any] struct {
	// OnEffect returns (x, _, true) to resume the continuation with x, or
	// (_, short, false) to short-circuit with a program in the target row.
	OnEffect func(fx Erased) (x Erased, short Eff[B], ok bool)

	// OnApplicative returns (xs, _, true) to resume with one value per
	// batched effect, or (_, compressed, false) to collapse the batch into a
	// single effect of the same constructor, handled monadically; the
	// compressed effect must resume with the []Erased of per-effect results.
	OnApplicative func(fxs []Erased) (xs []Erased, compressed Erased, ok bool)
}

// Interpret runs a stateless handle-and-remove interpreter: each witnessed
// effect either resumes the continuation with a value or short-circuits, and
// pure results map through pure into the target row.
func Interpret[A, B any](e Eff[A], m Member, pure func(A) Eff[B], r Recurse[A, B]) Eff[B] {
	return InterpretLoop(e, m, Loop[A, B, struct{}]{
		OnPure: func(a A, _ struct{}) Outcome[A, B, struct{}] {
			return Outcome[A, B, struct{}]{Out: pure(a), Done: true}
		},
		OnEffect: func(fx Erased, k Continuation[A], _ struct{}) Outcome[A, B, struct{}] {
			x, short, ok := r.OnEffect(fx)
			if !ok {
				return Outcome[A, B, struct{}]{Out: short, Done: true}
			}
			return Outcome[A, B, struct{}]{Next: k.Apply(x)}
		},
		OnApplicativeEffect: func(fxs []Erased, k Continuation[A], _ struct{}) Outcome[A, B, struct{}] {
			xs, compressed, ok := r.OnApplicative(fxs)
			if !ok {
				return Outcome[A, B, struct{}]{Next: Impure(m.Inject(compressed), k)}
			}
			return Outcome[A, B, struct{}]{Next: k.Apply([]Erased(xs))}
		},
	})
}

// StateRecurse is the stateful handle-and-remove protocol for
// InterpretState.
type StateRecurse[A, B, S any] struct {
	Init S

	// OnEffect produces the resume value and the new state.
	OnEffect func(fx Erased, s S) (Erased, S)

	// OnApplicative returns (xs, _, s, true) to resume with one value per
	// batched effect, or (_, compressed, s, false) to collapse the batch
	// into a single effect handled monadically.
	OnApplicative func(fxs []Erased, s S) (xs []Erased, compressed Erased, next S, ok bool)

	// Finalize combines the pure result with the final state.
	Finalize func(a A, s S) B
}

// InterpretState runs a stateful handle-and-remove interpreter.
func InterpretState[A, B, S any](e Eff[A], m Member, r StateRecurse[A, B, S]) Eff[B] {
	return InterpretLoop(e, m, Loop[A, B, S]{
		Init: r.Init,
		OnPure: func(a A, s S) Outcome[A, B, S] {
			return Outcome[A, B, S]{Out: Pure(r.Finalize(a, s)), Done: true}
		},
		OnEffect: func(fx Erased, k Continuation[A], s S) Outcome[A, B, S] {
			x, s2 := r.OnEffect(fx, s)
			return Outcome[A, B, S]{Next: k.Apply(x), State: s2}
		},
		OnApplicativeEffect: func(fxs []Erased, k Continuation[A], s S) Outcome[A, B, S] {
			xs, compressed, s2, ok := r.OnApplicative(fxs, s)
			if !ok {
				return Outcome[A, B, S]{Next: Impure(m.Inject(compressed), k), State: s2}
			}
			return Outcome[A, B, S]{Next: k.Apply([]Erased(xs)), State: s2}
		},
	})
}
