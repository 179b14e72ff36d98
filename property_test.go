// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/eff"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// --- Group 1: Monad Laws ---

// TestPropertyLeftIdentity: Bind(Pure(a), f) ≡ f(a)
func TestPropertyLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		f := func(x int) eff.Eff[int] { return eff.Pure(x * 3) }
		left := eff.Run(eff.Bind(eff.Pure(a), f))
		right := eff.Run(f(a))
		if left != right {
			t.Fatalf("left identity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyRightIdentity: Bind(m, Pure) ≡ m
func TestPropertyRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		m := eff.Pure(a)
		left := eff.Run(eff.Bind(m, eff.Pure[int]))
		right := eff.Run(m)
		if left != right {
			t.Fatalf("right identity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyAssociativity: Bind(Bind(m, f), g) ≡ Bind(m, func(x) Bind(f(x), g))
func TestPropertyAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		m := eff.Pure(a)
		f := func(x int) eff.Eff[int] { return eff.Pure(x + 3) }
		g := func(x int) eff.Eff[int] { return eff.Pure(x * 2) }
		left := eff.Run(eff.Bind(eff.Bind(m, f), g))
		right := eff.Run(eff.Bind(m, func(x int) eff.Eff[int] {
			return eff.Bind(f(x), g)
		}))
		if left != right {
			t.Fatalf("associativity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyMonadLawsEffectful replays the monad laws through a state
// handler, so the laws hold for impure nodes too, not only for Pure.
func TestPropertyMonadLawsEffectful(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	s := eff.NewState[int]("s")
	s = s.In(eff.Fx1(s.Tag()))

	run := func(e eff.Eff[int], init int) (int, int) {
		p := eff.Run(eff.RunState(s, init, e))
		return p.Fst, p.Snd
	}
	f := func(x int) eff.Eff[int] {
		return s.Modify(func(y int) int { return y + x })
	}
	g := func(x int) eff.Eff[int] {
		return eff.Map(s.Get(), func(y int) int { return x * y })
	}

	for range propertyN / 10 {
		init := randInt(rng)
		a := randInt(rng)

		lr, ls := run(eff.Bind(eff.Pure(a), f), init)
		rr, rs := run(f(a), init)
		if lr != rr || ls != rs {
			t.Fatalf("effectful left identity: (%d,%d) != (%d,%d)", lr, ls, rr, rs)
		}

		m := f(a)
		lr, ls = run(eff.Bind(m, eff.Pure[int]), init)
		rr, rs = run(m, init)
		if lr != rr || ls != rs {
			t.Fatalf("effectful right identity: (%d,%d) != (%d,%d)", lr, ls, rr, rs)
		}

		lr, ls = run(eff.Bind(eff.Bind(m, f), g), init)
		rr, rs = run(eff.Bind(m, func(x int) eff.Eff[int] { return eff.Bind(f(x), g) }), init)
		if lr != rr || ls != rs {
			t.Fatalf("effectful associativity: (%d,%d) != (%d,%d)", lr, ls, rr, rs)
		}
	}
}

// --- Group 2: Applicative Laws ---

// TestPropertyApIdentity: Ap(Pure(id), v) ≡ v
func TestPropertyApIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		v := eff.Pure(a)
		left := eff.Run(eff.Ap(eff.Pure(func(x int) int { return x }), v))
		right := eff.Run(v)
		if left != right {
			t.Fatalf("ap identity: %d != %d", left, right)
		}
	}
}

// TestPropertyApHomomorphism: Ap(Pure(f), Pure(a)) ≡ Pure(f(a))
func TestPropertyApHomomorphism(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		f := func(x int) int { return x*7 - 3 }
		left := eff.Run(eff.Ap(eff.Pure(f), eff.Pure(a)))
		right := eff.Run(eff.Pure(f(a)))
		if left != right {
			t.Fatalf("ap homomorphism: %d != %d", left, right)
		}
	}
}

// TestPropertyApInterchange: Ap(u, Pure(a)) ≡ Ap(Pure(f ↦ f(a)), u)
func TestPropertyApInterchange(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		u := eff.Pure(func(x int) int { return x + 11 })
		left := eff.Run(eff.Ap(u, eff.Pure(a)))
		right := eff.Run(eff.Ap(eff.Pure(func(f func(int) int) int { return f(a) }), u))
		if left != right {
			t.Fatalf("ap interchange: %d != %d", left, right)
		}
	}
}

// TestPropertyApComposition:
// Ap(Ap(Ap(Pure(compose), u), v), w) ≡ Ap(u, Ap(v, w))
func TestPropertyApComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	compose := func(f func(int) int) func(func(int) int) func(int) int {
		return func(g func(int) int) func(int) int {
			return func(x int) int { return f(g(x)) }
		}
	}
	for range propertyN {
		a := randInt(rng)
		u := eff.Pure(func(x int) int { return x + 1 })
		v := eff.Pure(func(x int) int { return x * 2 })
		w := eff.Pure(a)
		left := eff.Run(eff.Ap(eff.Ap(eff.Ap(eff.Pure(compose), u), v), w))
		right := eff.Run(eff.Ap(u, eff.Ap(v, w)))
		if left != right {
			t.Fatalf("ap composition: %d != %d", left, right)
		}
	}
}

// --- Group 3: Consistency ---

// TestPropertyMapConsistent: Map(m, f) ≡ Bind(m, x ↦ Pure(f(x)))
func TestPropertyMapConsistent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	s := eff.NewState[int]("s")
	s = s.In(eff.Fx1(s.Tag()))
	f := func(x int) int { return x*5 + 1 }

	for range propertyN / 10 {
		init := randInt(rng)
		m := s.Modify(func(y int) int { return y + 1 })

		left := eff.Run(eff.RunState(s, init, eff.Map(m, f)))
		right := eff.Run(eff.RunState(s, init, eff.Bind(m, func(x int) eff.Eff[int] {
			return eff.Pure(f(x))
		})))
		if left != right {
			t.Fatalf("map/bind consistency: %+v != %+v", left, right)
		}
	}
}

// --- Group 4: Stack Safety ---

const stackN = 1_000_000

// TestStackSafetyBindChain: a left fold of 1e6 binds over one effect
// completes without exhausting the stack.
func TestStackSafetyBindChain(t *testing.T) {
	s := eff.NewState[int]("s")
	s = s.In(eff.Fx1(s.Tag()))

	prog := s.Get()
	for range stackN {
		prog = eff.Bind(prog, func(x int) eff.Eff[int] { return eff.Pure(x + 1) })
	}
	p := eff.Run(eff.RunState(s, 0, prog))
	if p.Fst != stackN {
		t.Fatalf("got %d, want %d", p.Fst, stackN)
	}
}

// TestStackSafetyTraverse: a traverse over 1e6 sends completes without
// exhausting the stack.
func TestStackSafetyTraverse(t *testing.T) {
	s := eff.NewState[int]("s")
	s = s.In(eff.Fx1(s.Tag()))

	xs := make([]int, stackN)
	for i := range xs {
		xs[i] = i
	}
	prog := eff.Traverse(xs, func(i int) eff.Eff[int] {
		return s.Get()
	})
	p := eff.Run(eff.RunState(s, 7, prog))
	if len(p.Fst) != stackN {
		t.Fatalf("got %d results, want %d", len(p.Fst), stackN)
	}
	if p.Fst[0] != 7 || p.Fst[stackN-1] != 7 {
		t.Fatalf("got boundary values %d, %d", p.Fst[0], p.Fst[stackN-1])
	}
}

// TestStackSafetyInterleavedHandlers: alternating effects of two modules,
// peeled one module at a time, stay within bounded stack thanks to the lazy
// re-wrap of foreign continuations.
func TestStackSafetyInterleavedHandlers(t *testing.T) {
	const n = 100_000
	s := eff.NewState[int]("s")
	w := eff.NewWriter[int]("w")
	row := eff.Fx2(s.Tag(), w.Tag())
	s, w = s.In(row), w.In(row)

	prog := eff.Pure(0)
	for range n {
		prog = eff.Bind(prog, func(x int) eff.Eff[int] {
			return eff.Then(w.Tell(x), s.Modify(func(y int) int { return y + 1 }))
		})
	}
	p := eff.Run(eff.RunWriter(w, eff.RunState(s, 0, prog)))
	if p.Fst.Fst != n {
		t.Fatalf("got %d, want %d", p.Fst.Fst, n)
	}
	if len(p.Snd) != n {
		t.Fatalf("got %d tells, want %d", len(p.Snd), n)
	}
}
