// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Monad and applicative operations over programs.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map, Then and Map2 are derived operations kept to avoid intermediate
// closures; Ap and Product preserve applicative batches so interpreters can
// process independent effects together.

// Bind sequences two programs (monadic bind). A monadic node grows its
// continuation deque by one arrow; an applicative batch is normalized to the
// monadic form first, so the deque stays canonical.
func Bind[A, B any](e Eff[A], f func(A) Eff[B]) Eff[B] {
	return Eff[B]{n: bindNode(e.n, func(v Erased) node { return f(v.(A)).n })}
}

// Map applies a pure function to the result of a program. An applicative
// batch keeps its parallel structure: the function composes with the zipper.
func Map[A, B any](e Eff[A], f func(A) B) Eff[B] {
	switch t := e.n.(type) {
	case pureNode:
		return Pure(f(t.value.(A)))
	case impureApNode:
		zip := t.zip
		return Eff[B]{n: impureApNode{
			unions: t.unions,
			zip:    func(xs []Erased) Erased { return f(zip(xs).(A)) },
		}}
	default:
		return Bind(e, func(a A) Eff[B] { return Pure(f(a)) })
	}
}

// Ap applies an effectful function to an effectful value. When both sides
// are applicative batches the batches concatenate — effects of ff first,
// then effects of fa — and the combined zipper splits the result list at the
// boundary. When either side is monadic the combination falls back to Bind,
// which preserves the inside of each original batch but not applicativity
// across the boundary.
func Ap[A, B any](ff Eff[func(A) B], fa Eff[A]) Eff[B] {
	switch f := ff.n.(type) {
	case pureNode:
		fn := f.value.(func(A) B)
		return Map(fa, fn)
	case impureApNode:
		switch a := fa.n.(type) {
		case pureNode:
			av := a.value.(A)
			return Map(ff, func(fn func(A) B) B { return fn(av) })
		case impureApNode:
			zf, za := f.zip, a.zip
			nf := len(f.unions.list)
			return Eff[B]{n: impureApNode{
				unions: f.unions.Append(a.unions),
				zip: func(xs []Erased) Erased {
					fn := zf(xs[:nf]).(func(A) B)
					return fn(za(xs[nf:]).(A))
				},
			}}
		}
	}
	if p, ok := fa.n.(pureNode); ok {
		av := p.value.(A)
		return Map(ff, func(fn func(A) B) B { return fn(av) })
	}
	return Bind(ff, func(fn func(A) B) Eff[B] { return Map(fa, fn) })
}

// Map2 combines two programs with a binary function, batching their effects
// left operand first.
func Map2[A, B, C any](ea Eff[A], eb Eff[B], f func(A, B) C) Eff[C] {
	return Ap(Map(ea, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}), eb)
}

// Product pairs two programs, batching their effects left operand first.
func Product[A, B any](ea Eff[A], eb Eff[B]) Eff[Pair[A, B]] {
	return Map2(ea, eb, func(a A, b B) Pair[A, B] { return Pair[A, B]{Fst: a, Snd: b} })
}

// Then sequences two programs, discarding the first result. Effects batch
// like Product: first operand first.
func Then[A, B any](ea Eff[A], eb Eff[B]) Eff[B] {
	return Map2(ea, eb, func(_ A, b B) B { return b })
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Traverse maps every element of a slice through an effectful function and
// collects the results. When every produced program is a value or an
// applicative batch the effects combine into one batch, in element order;
// a monadic element forces sequential combination for the whole slice.
func Traverse[A, B any](as []A, f func(A) Eff[B]) Eff[[]B] {
	ns := make([]node, len(as))
	for i, a := range as {
		ns[i] = f(a).n
	}
	return Map(Eff[[]Erased]{n: traverseNodes(ns)}, func(vs []Erased) []B {
		out := make([]B, len(vs))
		for i, v := range vs {
			out[i] = v.(B)
		}
		return out
	})
}

// Sequence collects a slice of programs into a program of a slice,
// batching like Traverse.
func Sequence[A any](es []Eff[A]) Eff[[]A] {
	return Traverse(es, func(e Eff[A]) Eff[A] { return e })
}

// traverseNodes combines independent erased programs into one program
// producing the list of their results in order.
func traverseNodes(ns []node) node {
	batched := true
	for _, n := range ns {
		if _, ok := n.(impureNode); ok {
			batched = false
			break
		}
	}
	if !batched {
		return traverseSequential(ns)
	}

	type slot struct {
		pure  bool
		value Erased
		start int
		size  int
		zip   func([]Erased) Erased
	}
	slots := make([]slot, len(ns))
	var unions []Union
	for i, n := range ns {
		switch t := n.(type) {
		case pureNode:
			slots[i] = slot{pure: true, value: t.value}
		case impureApNode:
			slots[i] = slot{start: len(unions), size: len(t.unions.list), zip: t.zip}
			unions = append(unions, t.unions.list...)
		}
	}
	assemble := func(xs []Erased) Erased {
		out := make([]Erased, len(slots))
		for i, s := range slots {
			if s.pure {
				out[i] = s.value
				continue
			}
			out[i] = s.zip(xs[s.start : s.start+s.size])
		}
		return out
	}
	if len(unions) == 0 {
		return pureNode{value: assemble(nil)}
	}
	return impureApNode{unions: Unions{list: unions}, zip: assemble}
}

// traverseSequential folds the programs with bind, in order. Accumulated
// slices are copied per step: a non-deterministic interpreter may resume a
// continuation more than once, so the accumulator must never share backing
// storage across branches.
func traverseSequential(ns []node) node {
	acc := node(pureNode{value: []Erased(nil)})
	for _, n := range ns {
		n := n
		acc = bindNode(acc, func(vsv Erased) node {
			vs := vsv.([]Erased)
			return bindNode(n, func(v Erased) node {
				next := make([]Erased, 0, len(vs)+1)
				next = append(next, vs...)
				next = append(next, v)
				return pureNode{value: next}
			})
		})
	}
	return acc
}
