// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/eff"
	"github.com/stretchr/testify/require"
)

func TestInterceptNatRewritesInPlace(t *testing.T) {
	w := eff.NewWriter[string]("w")
	w = w.In(eff.Fx1(w.Tag()))

	prog := eff.Then(w.Tell("a"), eff.Then(w.Tell("b"), eff.Pure(0)))
	upper := eff.InterceptNat(prog, w.Member(), func(fx eff.Erased) eff.Erased {
		op := fx.(eff.Tell[string])
		return eff.Tell[string]{Value: strings.ToUpper(op.Value)}
	})

	out := eff.Run(eff.ExecWriter(w, upper))
	require.Equal(t, []string{"A", "B"}, out)
}

func TestInterceptNatPreservesBatch(t *testing.T) {
	// The batch survives interception: both rewritten tells still reach the
	// writer in one applicative step.
	w := eff.NewWriter[int]("w")
	w = w.In(eff.Fx1(w.Tag()))

	prog := eff.Product(w.Tell(1), w.Tell(2))
	doubled := eff.InterceptNat(prog, w.Member(), func(fx eff.Erased) eff.Erased {
		op := fx.(eff.Tell[int])
		return eff.Tell[int]{Value: op.Value * 10}
	})
	out := eff.Run(eff.ExecWriter(w, doubled))
	require.Equal(t, []int{10, 20}, out)
}

func TestInterceptCountsWithoutRemoving(t *testing.T) {
	s := eff.NewState[int]("s")
	s = s.In(eff.Fx1(s.Tag()))

	prog := eff.Then(s.Put(1), eff.Then(s.Put(2), s.Get()))

	count := 0
	// A program returned as Next is intercepted again, re-sent effects
	// included, so the re-emitting callbacks finish with Done and intercept
	// the rest of the program anew with the updated count.
	var loop eff.Loop[int, int, int]
	rest := func(e eff.Eff[int], n int) eff.Eff[int] {
		l := loop
		l.Init = n
		return eff.InterceptLoop(e, s.Member(), l)
	}
	loop = eff.Loop[int, int, int]{
		OnPure: func(a int, n int) eff.Outcome[int, int, int] {
			count = n
			return eff.Outcome[int, int, int]{Out: eff.Pure(a), Done: true}
		},
		OnEffect: func(fx eff.Erased, k eff.Continuation[int], n int) eff.Outcome[int, int, int] {
			return eff.Outcome[int, int, int]{Out: resend(s, fx, k, n+1, rest), Done: true}
		},
		OnApplicativeEffect: func(fxs []eff.Erased, k eff.Continuation[int], n int) eff.Outcome[int, int, int] {
			return eff.Outcome[int, int, int]{Out: resendBatch(s, fxs, k, n+len(fxs), rest), Done: true}
		},
	}
	counted := eff.InterceptLoop(prog, s.Member(), loop)

	p := eff.Run(eff.RunState(s, 0, counted))
	require.Equal(t, 2, p.Fst)
	require.Equal(t, 2, p.Snd)
	require.Equal(t, 3, count)
}

// resend re-emits an observed effect so the next handler still sees it,
// then hands the resumed continuation to rest with the count n.
func resend(s eff.State[int], fx eff.Erased, k eff.Continuation[int], n int, rest func(eff.Eff[int], int) eff.Eff[int]) eff.Eff[int] {
	return eff.Bind(eff.Send[eff.Erased](s.Member(), fx), func(x eff.Erased) eff.Eff[int] {
		return rest(k.Apply(x), n)
	})
}

func resendBatch(s eff.State[int], fxs []eff.Erased, k eff.Continuation[int], n int, rest func(eff.Eff[int], int) eff.Eff[int]) eff.Eff[int] {
	sends := make([]eff.Eff[eff.Erased], len(fxs))
	for i, fx := range fxs {
		sends[i] = eff.Send[eff.Erased](s.Member(), fx)
	}
	return eff.Bind(eff.Sequence(sends), func(xs []eff.Erased) eff.Eff[int] {
		return rest(k.Apply(xs), n)
	})
}
