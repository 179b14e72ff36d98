// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// The intercept family.
// Interceptors mirror the handle-and-remove drivers but use the in-place
// witness: the targeted effect stays in the row, and the rewritten program
// remains in the original row. Used to observe, augment or rewrite effects
// that a later handler will still interpret.

// InterceptLoop runs the general driver in place: effects witnessed by m are
// fed to the loop callbacks but the row is left unchanged.
func InterceptLoop[A, B, S any](e Eff[A], m Member, loop Loop[A, B, S]) Eff[B] {
	return interceptNode[A, B](e.n, m, loop, loop.Init)
}

func interceptNode[A, B, S any](n node, m Member, loop Loop[A, B, S], s S) Eff[B] {
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
			k, st := t.k, s
			return Eff[B]{n: impureNode{
				union: t.union,
				k: singleK(func(x Erased) node {
					return interceptNode[A, B](k.apply(x), m, loop, st).n
				}),
			}}

		case impureApNode:
			c := t.unions.Extract(m)
			if len(c.Effects) == 0 {
				st := s
				return Eff[B]{n: bindNode(t, func(x Erased) node {
					return interceptNode[A, B](pureNode{value: x}, m, loop, st).n
				})}
			}
			k := Continuation[A]{q: c.continuationIn(t.zip)}
			o := loop.OnApplicativeEffect(c.Effects, k, s)
			if o.Done {
				return o.Out
			}
			n, s = o.Next.n, o.State

		default:
			panic("eff: unknown program variant in interceptor")
		}
	}
}

// InterceptStatelessLoop runs the in-place driver without handler state.
func InterceptStatelessLoop[A, B any](e Eff[A], m Member, loop StatelessLoop[A, B]) Eff[B] {
	return InterceptLoop(e, m, Loop[A, B, struct{}]{
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

// InterceptNat rewrites each effect witnessed by m through a natural
// transformation, in place: the row is unchanged and a later handler still
// interprets the rewritten effects. Applicative batches keep their parallel
// structure, each targeted element rewritten at its original position.
func InterceptNat[A any](e Eff[A], m Member, nat Nat) Eff[A] {
	return Eff[A]{n: interceptNatNode(e.n, m, nat)}
}

func interceptNatNode(n node, m Member, nat Nat) node {
	switch t := n.(type) {
	case pureNode:
		return t
	case impureNode:
		u := t.union
		if fx, ok := m.Extract(u); ok {
			u = m.Inject(nat(fx))
		}
		k := t.k
		return impureNode{union: u, k: singleK(func(x Erased) node {
			return interceptNatNode(k.apply(x), m, nat)
		})}
	case impureApNode:
		unions := t.unions.Into(func(u Union) Union {
			if fx, ok := m.Extract(u); ok {
				return m.Inject(nat(fx))
			}
			return u
		})
		return impureApNode{unions: unions, zip: t.zip}
	default:
		panic("eff: unknown program variant in interceptor")
	}
}

// Intercept runs a stateless interceptor: each witnessed effect either
// resumes with a value or short-circuits with a program in the same row.
// A compressed applicative batch is re-emitted as a single effect of the
// same constructor, still in the row.
func Intercept[A, B any](e Eff[A], m Member, pure func(A) Eff[B], r Recurse[A, B]) Eff[B] {
	return InterceptLoop(e, m, Loop[A, B, struct{}]{
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
