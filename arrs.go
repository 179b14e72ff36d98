// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// The continuation deque.
// A continuation is a sequence of type-erased Kleisli arrows whose
// composition, applied to a value, yields a program. The deque is a
// persistent catenable tree: append, prepend and concatenation are O(1)
// node allocations, and the evaluator consumes arrows one at a time through
// left rotations, so no operation recurses on the structure.

// arrow is a type-erased Kleisli arrow.
type arrow = func(Erased) node

// kTree is a persistent tree of arrow segments. A nil kTree is the empty
// deque (the identity arrow).
type kTree interface {
	kTree()
}

// kSeg is a contiguous, non-empty run of arrows. Sub-slicing shares the
// backing array; segments are never written after construction.
type kSeg struct {
	fs []arrow
}

func (kSeg) kTree() {}

// kCat is the concatenation of two non-empty deques.
type kCat struct {
	left, right kTree
}

func (kCat) kTree() {}

// kConcat links two deques. Returns the other operand when either side is
// empty, the identity element for deque composition.
func kConcat(a, b kTree) kTree {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return kCat{left: a, right: b}
}

// kNext pops the first arrow of t and returns the remainder.
// Left-leaning towers built by repeated appends are rotated into
// right-leaning form on the way down — ((a·b)·c) becomes (a·(b·c)) — so the
// total restructuring work over a full traversal is linear in the number of
// arrows. t must be non-nil.
func kNext(t kTree) (arrow, kTree) {
	for {
		switch n := t.(type) {
		case kSeg:
			if len(n.fs) == 1 {
				return n.fs[0], nil
			}
			return n.fs[0], kSeg{fs: n.fs[1:]}
		case kCat:
			if l, ok := n.left.(kCat); ok {
				t = kCat{left: l.left, right: kCat{left: l.right, right: n.right}}
				continue
			}
			seg := n.left.(kSeg)
			if len(seg.fs) == 1 {
				return seg.fs[0], n.right
			}
			return seg.fs[0], kCat{left: kSeg{fs: seg.fs[1:]}, right: n.right}
		default:
			panic("eff: empty continuation deque")
		}
	}
}

// kleisli is the deque of type-erased arrows used as the continuation of an
// Impure node. The zero kleisli behaves as pure.
type kleisli struct {
	t kTree
}

// singleK wraps one arrow.
func singleK(f arrow) kleisli {
	return kleisli{t: kSeg{fs: []arrow{f}}}
}

// append adds an arrow at the tail.
func (q kleisli) append(f arrow) kleisli {
	return kleisli{t: kConcat(q.t, kSeg{fs: []arrow{f}})}
}

// prepend adds an arrow at the head.
func (q kleisli) prepend(f arrow) kleisli {
	return kleisli{t: kConcat(kSeg{fs: []arrow{f}}, q.t)}
}

// concat appends a whole deque.
func (q kleisli) concat(other kleisli) kleisli {
	return kleisli{t: kConcat(q.t, other.t)}
}

// isEmpty reports whether the deque is the identity.
func (q kleisli) isEmpty() bool {
	return q.t == nil
}

// mapLast rewrites the trailing arrow with a program transformation.
// The empty deque is returned unchanged.
func (q kleisli) mapLast(g func(node) node) kleisli {
	if q.t == nil {
		return q
	}
	return kleisli{t: kMapLast(q.t, g)}
}

// kMapLast rebuilds the right spine of t with the last arrow composed
// through g. The spine is collected iteratively; deques are right-leaning
// after traversal but appends build left-leaning towers, so the spine walk
// descends only right children.
func kMapLast(t kTree, g func(node) node) kTree {
	var spine []kCat
	for {
		c, ok := t.(kCat)
		if !ok {
			break
		}
		spine = append(spine, c)
		t = c.right
	}
	seg := t.(kSeg)
	last := seg.fs[len(seg.fs)-1]
	wrapped := func(v Erased) node { return g(last(v)) }
	fs := make([]arrow, len(seg.fs))
	copy(fs, seg.fs)
	fs[len(fs)-1] = wrapped
	rebuilt := kTree(kSeg{fs: fs})
	for i := len(spine) - 1; i >= 0; i-- {
		rebuilt = kCat{left: spine[i].left, right: rebuilt}
	}
	return rebuilt
}

// apply is the stack-safe composer: iterate through the deque with a live
// value, performing O(1) work per arrow. A monadic node returned by an arrow
// captures the rest of the deque lazily — the driver never recurses into the
// arrow's result beyond one step.
func (q kleisli) apply(v Erased) node {
	t := q.t
	for {
		if t == nil {
			return pureNode{value: v}
		}
		f, rest := kNext(t)
		switch n := f(v).(type) {
		case pureNode:
			v = n.value
			t = rest
		case impureNode:
			return impureNode{union: n.union, k: kleisli{t: kConcat(n.k.t, rest)}}
		case impureApNode:
			m := n.toMonadic()
			return impureNode{union: m.union, k: kleisli{t: kConcat(m.k.t, rest)}}
		default:
			panic("eff: unknown program variant in continuation")
		}
	}
}

// Arrs is a stack-safe deque of Kleisli arrows composing into a single
// function from A to Eff[B]. The empty deque behaves as Pure; composition is
// associative; Apply runs in constant stack for arbitrarily long deques.
//
// Interpreter callbacks receive the spelling Continuation[B] = Arrs[Erased, B]:
// the input type of an interpreted effect's continuation is erased, its
// output is the program's result type.
type Arrs[A, B any] struct {
	q kleisli
}

// Continuation resumes an interpreted effect: an arrow deque whose input is
// the type-erased effect result. For an applicative batch the input is the
// []Erased of batched results in original positional order.
type Continuation[B any] = Arrs[Erased, B]

// Arr wraps a single arrow.
func Arr[A, B any](f func(A) Eff[B]) Arrs[A, B] {
	return Arrs[A, B]{q: singleK(func(v Erased) node { return f(v.(A)).n })}
}

// ArrsUnit is the empty deque, behaving as Pure.
func ArrsUnit[A any]() Arrs[A, A] {
	return Arrs[A, A]{}
}

// AppendArr adds an arrow at the tail of the deque.
func AppendArr[A, B, C any](q Arrs[A, B], f func(B) Eff[C]) Arrs[A, C] {
	return Arrs[A, C]{q: q.q.append(func(v Erased) node { return f(v.(B)).n })}
}

// ContramapArr adds a pure transformation at the head of the deque.
func ContramapArr[A, B, C any](q Arrs[A, B], f func(C) A) Arrs[C, B] {
	return Arrs[C, B]{q: q.q.prepend(func(v Erased) node { return pureNode{value: f(v.(C))} })}
}

// MapLast rewrites the program produced by the trailing arrow; the empty
// deque is the identity.
func (q Arrs[A, B]) MapLast(g func(Eff[B]) Eff[B]) Arrs[A, B] {
	return Arrs[A, B]{q: q.q.mapLast(func(n node) node { return g(Eff[B]{n: n}).n })}
}

// Apply composes the deque over a value.
func (q Arrs[A, B]) Apply(a A) Eff[B] {
	return Eff[B]{n: q.q.apply(a)}
}
