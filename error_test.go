// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"testing"

	"code.hybscloud.com/eff"
	"github.com/stretchr/testify/require"
)

func newError(t *testing.T) eff.Error[string] {
	t.Helper()
	er := eff.NewError[string]("err")
	return er.In(eff.Fx1(er.Tag()))
}

func TestErrorSuccess(t *testing.T) {
	er := newError(t)
	res := eff.Run(eff.RunError(er, eff.Pure(42)))
	v, ok := res.GetRight()
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestErrorThrow(t *testing.T) {
	er := newError(t)
	prog := eff.Bind(eff.ErrThrow[int](er, "boom"), func(x int) eff.Eff[int] {
		return eff.Pure(x + 1)
	})
	res := eff.Run(eff.RunError(er, prog))
	e, ok := res.GetLeft()
	require.True(t, ok)
	require.Equal(t, "boom", e)
}

func TestErrorThrowSkipsRest(t *testing.T) {
	er := eff.NewError[string]("err")
	w := eff.NewWriter[string]("log")
	row := eff.Fx2(er.Tag(), w.Tag())
	er, w = er.In(row), w.In(row)

	prog := eff.Then(w.Tell("before"),
		eff.Bind(eff.ErrThrow[int](er, "boom"), func(int) eff.Eff[int] {
			return eff.Then(w.Tell("after"), eff.Pure(0))
		}))

	p := eff.Run(eff.RunWriter(w, eff.RunError(er, prog)))
	require.True(t, p.Fst.IsLeft())
	require.Equal(t, []string{"before"}, p.Snd)
}

func TestErrorCatch(t *testing.T) {
	er := newError(t)
	prog := eff.CatchError(er, eff.ErrThrow[int](er, "boom"), func(e string) eff.Eff[int] {
		return eff.Pure(len(e))
	})
	res := eff.Run(eff.RunError(er, prog))
	v, ok := res.GetRight()
	require.True(t, ok)
	require.Equal(t, 4, v)
}

func TestErrorCatchNoError(t *testing.T) {
	er := newError(t)
	prog := eff.CatchError(er, eff.Pure(7), func(string) eff.Eff[int] {
		return eff.Pure(-1)
	})
	res := eff.Run(eff.RunError(er, prog))
	v, ok := res.GetRight()
	require.True(t, ok)
	require.Equal(t, 7, v)
}

func TestErrorCatchRethrow(t *testing.T) {
	er := newError(t)
	prog := eff.CatchError(er, eff.ErrThrow[int](er, "inner"), func(e string) eff.Eff[int] {
		return eff.ErrThrow[int](er, e+"-outer")
	})
	res := eff.Run(eff.RunError(er, prog))
	e, ok := res.GetLeft()
	require.True(t, ok)
	require.Equal(t, "inner-outer", e)
}

func TestErrorFromEitherRoundTrip(t *testing.T) {
	er := newError(t)

	res := eff.Run(eff.RunError(er, eff.FromEither(er, eff.Right[string](7))))
	v, ok := res.GetRight()
	require.True(t, ok)
	require.Equal(t, 7, v)

	res = eff.Run(eff.RunError(er, eff.FromEither(er, eff.Left[string, int]("boom"))))
	e, ok := res.GetLeft()
	require.True(t, ok)
	require.Equal(t, "boom", e)
}

func TestErrorApplicativeBatchShortCircuits(t *testing.T) {
	er := newError(t)
	prog := eff.Product(eff.ErrThrow[int](er, "first"), eff.ErrThrow[int](er, "second"))
	res := eff.Run(eff.RunError(er, prog))
	e, ok := res.GetLeft()
	require.True(t, ok)
	require.Equal(t, "first", e)
}
