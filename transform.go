// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Effect rewriting.
// Transform swaps one effect constructor for another under a natural
// transformation; Translate replaces an effect with a whole program over the
// remaining row; InterpretUnsafe runs an effect as a plain side-effecting
// function.

// Nat is a natural transformation between effect payloads: the result type
// of the output effect equals the result type of the input effect.
type Nat = func(fx Erased) Erased

// Transform swaps the effect witnessed by from for the one witnessed by to,
// leaving every other effect untouched. from locates the source constructor
// in the source row, to locates the target constructor in the target row;
// the two rows agree on the remainder (from.Out and to.Out coincide).
// An applicative batch is normalized to the monadic form first, so its
// parallel structure is not preserved across the swap.
func Transform[A any](e Eff[A], from, to Member, nat Nat) Eff[A] {
	return Eff[A]{n: transformNode(e.n, from, to, nat)}
}

func transformNode(n node, from, to Member, nat Nat) node {
	for {
		switch t := n.(type) {
		case pureNode:
			return t
		case impureNode:
			var u Union
			if fx, ok := from.Extract(t.union); ok {
				u = to.Inject(nat(fx))
			} else {
				u = to.Accept(from.residual(t.union))
			}
			k := t.k
			return impureNode{union: u, k: singleK(func(x Erased) node {
				return transformNode(k.apply(x), from, to, nat)
			})}
		case impureApNode:
			n = t.toMonadic()
		default:
			panic("eff: unknown program variant in transform")
		}
	}
}

// Translator produces the replacement program for one effect payload. The
// program lives in the remaining row and its result type equals the result
// type of the replaced effect.
type Translator = func(fx Erased) Eff[Erased]

// Translate replaces each effect witnessed by m with a program over the
// remaining row, inlining it monadically. The targeted effects of an
// applicative batch are traversed applicatively, so independent effects
// remain independent in the target row.
func Translate[A any](e Eff[A], m Member, tr Translator) Eff[A] {
	return Eff[A]{n: translateNode[A](e.n, m, tr)}
}

func translateNode[A any](n node, m Member, tr Translator) node {
	switch t := n.(type) {
	case pureNode:
		return t
	case impureNode:
		if fx, ok := m.Extract(t.union); ok {
			k := t.k
			return bindNode(tr(fx).n, func(x Erased) node {
				return translateNode[A](k.apply(x), m, tr)
			})
		}
		k := t.k
		return impureNode{union: m.residual(t.union), k: singleK(func(x Erased) node {
			return translateNode[A](k.apply(x), m, tr)
		})}
	case impureApNode:
		c := t.unions.Project(m)
		if len(c.Effects) == 0 {
			return impureApNode{unions: Unions{list: c.Others}, zip: t.zip}
		}
		translated := make([]node, len(c.Effects))
		for i, fx := range c.Effects {
			translated[i] = tr(fx).n
		}
		k := c.continuation(t.zip, m)
		return bindNode(traverseNodes(translated), func(ls Erased) node {
			return translateNode[A](k.apply(ls), m, tr)
		})
	default:
		panic("eff: unknown program variant in translate")
	}
}

// TranslateNat replaces the effect witnessed by m with another effect
// already present in the remaining row, sending nat's output through the
// target witness.
func TranslateNat[A any](e Eff[A], m Member, target Member, nat Nat) Eff[A] {
	return Translate(e, m, func(fx Erased) Eff[Erased] {
		return Send[Erased](target, nat(fx))
	})
}

// SideEffect runs an effect payload as a plain function, for modules that
// perform real work at run time. ApplyBatch may be nil, in which case the
// batch maps through Apply element by element.
type SideEffect struct {
	Apply      func(fx Erased) Erased
	ApplyBatch func(fxs []Erased) []Erased
}

// InterpretUnsafe removes the effect witnessed by m by executing each
// payload with the side effect. Batched effects execute in batch order.
func InterpretUnsafe[A any](e Eff[A], m Member, se SideEffect) Eff[A] {
	return InterpretStatelessLoop(e, m, StatelessLoop[A, A]{
		OnPure: func(a A) Outcome[A, A, struct{}] {
			return Outcome[A, A, struct{}]{Out: Pure(a), Done: true}
		},
		OnEffect: func(fx Erased, k Continuation[A]) Outcome[A, A, struct{}] {
			return Outcome[A, A, struct{}]{Next: k.Apply(se.Apply(fx))}
		},
		OnApplicativeEffect: func(fxs []Erased, k Continuation[A]) Outcome[A, A, struct{}] {
			var xs []Erased
			if se.ApplyBatch != nil {
				xs = se.ApplyBatch(fxs)
			} else {
				xs = make([]Erased, len(fxs))
				for i, fx := range fxs {
					xs[i] = se.Apply(fx)
				}
			}
			return Outcome[A, A, struct{}]{Next: k.Apply(xs)}
		},
	})
}
