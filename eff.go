// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// The program representation.
// An Eff value is an immutable, freely shareable description of an effectful
// computation: a free monad whose impurity is a disjoint union over the
// effect row, whose monadic continuation is a deque of Kleisli arrows, and
// whose applicative case preserves parallel structure so interpreters can
// batch independent effects.

// node is one of the three program variants. The variants are type-erased;
// Eff[A] is the typed view, and the value inside a pureNode of a program of
// static type Eff[A] always has dynamic type A.
type node interface {
	effNode()
}

// pureNode is a value with no remaining effects.
type pureNode struct {
	value Erased
}

func (pureNode) effNode() {}

// impureNode is one effect and its continuation.
type impureNode struct {
	union Union
	k     kleisli
}

func (impureNode) effNode() {}

// impureApNode is an ordered batch of independent effects and a zipping
// function. When zip is applied, its input list has exactly one element per
// batched effect, in original positional order, each of the effect's static
// result type. This is a runtime contract honored by the interpreter kernel;
// violation is a fatal programmer error.
type impureApNode struct {
	unions Unions
	zip    func([]Erased) Erased
}

func (impureApNode) effNode() {}

// toMonadic converts an applicative batch to the monadic form: evaluate the
// head effect, and if a tail exists, rebuild a batch over the tail whose
// zipper prepends the head value before calling zip.
func (n impureApNode) toMonadic() impureNode {
	head := n.unions.list[0]
	tail := n.unions.list[1:]
	zip := n.zip
	if len(tail) == 0 {
		return impureNode{union: head, k: singleK(func(x Erased) node {
			return pureNode{value: zip([]Erased{x})}
		})}
	}
	return impureNode{union: head, k: singleK(func(x Erased) node {
		return impureApNode{
			unions: Unions{list: tail},
			zip: func(xs []Erased) Erased {
				vs := make([]Erased, 0, len(xs)+1)
				vs = append(vs, x)
				vs = append(vs, xs...)
				return zip(vs)
			},
		}
	})}
}

// Eff is an effectful program producing a value of type A.
// Values are immutable and freely shareable: created by Pure and Send, grown
// by Map, Bind and Ap, and consumed by a handler that returns either a new
// program (effect removed or rewritten) or, when the row is empty, a final
// value.
type Eff[A any] struct {
	n node
}

// Pure lifts a value into a program with no effects.
func Pure[A any](a A) Eff[A] {
	return Eff[A]{n: pureNode{value: a}}
}

// Send lifts one effect into a program. The payload's result type is A by
// the module contract. A send is always an applicative batch of size 1, so
// adjacent sends merge under Ap without forcing monadic sequencing.
func Send[A any](m Member, fx Erased) Eff[A] {
	return Eff[A]{n: impureApNode{
		unions: Unions{list: []Union{m.Inject(fx)}},
		zip:    func(xs []Erased) Erased { return xs[0] },
	}}
}

// Impure rebuilds a monadic node from an effect and its continuation.
// Interpreter internals only; user code constructs programs through Pure,
// Send and the combinators.
func Impure[A any](u Union, k Continuation[A]) Eff[A] {
	return Eff[A]{n: impureNode{union: u, k: k.q}}
}

// ToMonadic normalizes an applicative batch to the monadic form; programs of
// the other two variants are returned unchanged. Observationally the
// identity under any handler.
func ToMonadic[A any](e Eff[A]) Eff[A] {
	if ap, ok := e.n.(impureApNode); ok {
		return Eff[A]{n: ap.toMonadic()}
	}
	return e
}

// variantName identifies a program variant in fatal-error messages.
func variantName(n node) string {
	switch n.(type) {
	case pureNode:
		return "Pure"
	case impureNode:
		return "Impure"
	case impureApNode:
		return "ImpureAp"
	default:
		return "<unknown>"
	}
}

// bindNode is the shared monadic bind over erased nodes.
func bindNode(n node, f arrow) node {
	switch t := n.(type) {
	case pureNode:
		return f(t.value)
	case impureNode:
		return impureNode{union: t.union, k: t.k.append(f)}
	case impureApNode:
		m := t.toMonadic()
		return impureNode{union: m.union, k: m.k.append(f)}
	default:
		panic("eff: unknown program variant in bind")
	}
}
