// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"testing"

	"code.hybscloud.com/eff"
	"github.com/stretchr/testify/require"
)

func newList(t *testing.T) eff.List {
	t.Helper()
	l := eff.NewList("alts")
	return l.In(eff.Fx1(l.Tag()))
}

func TestListSingle(t *testing.T) {
	l := newList(t)
	got := eff.Run(eff.RunList(l, eff.ListValues(l, []int{1, 2, 3})))
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestListCartesianDefinitionOrder(t *testing.T) {
	l := newList(t)
	prog := eff.Bind(eff.ListValues(l, []int{1, 2, 3}), func(a int) eff.Eff[int] {
		return eff.Map(eff.ListValues(l, []int{10, 20}), func(b int) int { return a * b })
	})
	got := eff.Run(eff.RunList(l, prog))
	require.Equal(t, []int{10, 20, 20, 40, 30, 60}, got)
}

func TestListEmptyPrunes(t *testing.T) {
	l := newList(t)
	prog := eff.Bind(eff.ListValues(l, []int{1, 2}), func(a int) eff.Eff[int] {
		if a == 1 {
			return eff.ListNil[int](l)
		}
		return eff.Pure(a)
	})
	got := eff.Run(eff.RunList(l, prog))
	require.Equal(t, []int{2}, got)
}

func TestListAllEmpty(t *testing.T) {
	l := newList(t)
	got := eff.Run(eff.RunList(l, eff.ListNil[int](l)))
	require.Empty(t, got)
}

func TestListPure(t *testing.T) {
	l := newList(t)
	got := eff.Run(eff.RunList(l, eff.Pure(9)))
	require.Equal(t, []int{9}, got)
}

func TestListApplicativeOrder(t *testing.T) {
	l := newList(t)
	inc := func(x int) int { return x + 1 }
	dbl := func(x int) int { return x * 2 }

	prog := eff.Ap(eff.ListValues(l, []func(int) int{inc, dbl}), eff.ListValues(l, []int{10, 20}))
	got := eff.Run(eff.RunList(l, prog))
	require.Equal(t, []int{11, 21, 20, 40}, got)
}

func TestListDetach(t *testing.T) {
	l := newList(t)
	prog := eff.Bind(eff.ListValues(l, []int{1, 2}), func(a int) eff.Eff[int] {
		return eff.Map(eff.ListValues(l, []int{0, 1}), func(b int) int { return a*10 + b })
	})

	mon := eff.Monad{
		Pure: func(a eff.Erased) eff.Erased {
			return eff.Values{Items: []eff.Erased{a}}
		},
		Bind: func(m eff.Erased, f func(eff.Erased) eff.Erased) eff.Erased {
			var out []eff.Erased
			for _, v := range m.(eff.Values).Items {
				out = append(out, f(v).(eff.Values).Items...)
			}
			return eff.Values{Items: out}
		},
	}
	got := eff.Detach(prog, mon).(eff.Values)
	require.Equal(t, []eff.Erased{10, 11, 20, 21}, got.Items)
}
