// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Composed runners for multi-effect computations.
// These avoid nesting Run* calls at every use site by stacking the module
// interpreters in a fixed order and running the empty-row result.

// RunStateReader runs a computation with both State and Reader effects.
// Returns the result and the final state. The row must contain exactly
// these two effects.
func RunStateReader[S, E, A any](st State[S], rd Reader[E], initial S, env E, e Eff[A]) (A, S) {
	p := Run(RunReader(rd, env, RunState(st, initial, e)))
	return p.Fst, p.Snd
}

// RunStateWriter runs a computation with both State and Writer effects.
// Returns the result, the final state and the accumulated output. The row
// must contain exactly these two effects.
func RunStateWriter[S, W, A any](st State[S], w Writer[W], initial S, e Eff[A]) (A, S, []W) {
	p := Run(RunWriter(w, RunState(st, initial, e)))
	return p.Fst.Fst, p.Fst.Snd, p.Snd
}

// RunStateError runs a computation with both State and Error effects, the
// error interpreted inside the state: the final state is available even
// when the computation fails. The row must contain exactly these two
// effects.
func RunStateError[S, E, A any](st State[S], er Error[E], initial S, e Eff[A]) (Either[E, A], S) {
	p := Run(RunState(st, initial, RunError(er, e)))
	return p.Fst, p.Snd
}

// RunReaderStateError runs a computation with Reader, State and Error
// effects: error innermost, then state, then the environment. The row must
// contain exactly these three effects.
func RunReaderStateError[E, S, F, A any](rd Reader[E], st State[S], er Error[F], env E, initial S, e Eff[A]) (Either[F, A], S) {
	p := Run(RunReader(rd, env, RunState(st, initial, RunError(er, e))))
	return p.Fst, p.Snd
}
