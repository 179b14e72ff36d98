// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Error effect operations.
// Error[E] provides exception-like error handling as values: a Throw aborts
// the rest of the program, RunError reifies the outcome as an Either, and
// CatchError recovers in place without removing the effect from the row.

// Throw is the effect operation for raising an error.
type Throw[E any] struct{ Err E }

// Error is an error effect instance.
type Error[E any] struct {
	tag *Tag
	m   Member
}

// NewError allocates an error effect instance.
func NewError[E any](name string) Error[E] {
	return Error[E]{tag: NewTag(name)}
}

// Tag returns the instance's effect constructor tag.
func (er Error[E]) Tag() *Tag {
	return er.tag
}

// In binds the instance to a row.
func (er Error[E]) In(r Row) Error[E] {
	er.m = MustMember(er.tag, r)
	return er
}

// Member returns the bound membership witness.
func (er Error[E]) Member() Member {
	return er.m
}

// ErrThrow aborts the program with an error; the continuation is never
// resumed, so the result type is free.
func ErrThrow[A, E any](er Error[E], err E) Eff[A] {
	return Send[A](er.m, Throw[E]{Err: err})
}

// firstThrow returns the first Throw payload of a batch. The error effect
// sends no other operation, so a batch collected for this witness contains
// only Throws.
func firstThrow[E any](handler string, fxs []Erased) Throw[E] {
	op, ok := fxs[0].(Throw[E])
	if !ok {
		unhandledEffect(handler)
	}
	return op
}

// RunError interprets the error effect out of the row, reifying the outcome:
// Right on success, Left with the raised error otherwise. A batch containing
// a Throw short-circuits with the first error in batch order, compressed
// into a single monadic effect.
func RunError[E, A any](er Error[E], e Eff[A]) Eff[Either[E, A]] {
	return Interpret(e, er.m, func(a A) Eff[Either[E, A]] {
		return Pure(Right[E, A](a))
	}, Recurse[A, Either[E, A]]{
		OnEffect: func(fx Erased) (Erased, Eff[Either[E, A]], bool) {
			op, ok := fx.(Throw[E])
			if !ok {
				unhandledEffect("RunError")
			}
			return nil, Pure(Left[E, A](op.Err)), false
		},
		OnApplicative: func(fxs []Erased) ([]Erased, Erased, bool) {
			return nil, firstThrow[E]("RunError", fxs), false
		},
	})
}

// CatchError recovers from errors in place: throws inside body divert to
// the handler, other effects pass through, and the error effect stays in
// the row for an eventual RunError.
func CatchError[E, A any](er Error[E], body Eff[A], handle func(E) Eff[A]) Eff[A] {
	return Intercept(body, er.m, Pure[A], Recurse[A, A]{
		OnEffect: func(fx Erased) (Erased, Eff[A], bool) {
			op, ok := fx.(Throw[E])
			if !ok {
				unhandledEffect("CatchError")
			}
			return nil, handle(op.Err), false
		},
		OnApplicative: func(fxs []Erased) ([]Erased, Erased, bool) {
			return nil, firstThrow[E]("CatchError", fxs), false
		},
	})
}

// Either is the reified outcome of an error-capable program: the success
// value, or the error that aborted it. RunError produces one after the
// effect leaves the row; FromEither lifts one back in.
type Either[E, A any] struct {
	err E
	val A
	ok  bool
}

// Right wraps a success value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{val: a, ok: true}
}

// Left wraps an error.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{err: e}
}

// IsRight reports whether the outcome is a success.
func (e Either[E, A]) IsRight() bool {
	return e.ok
}

// IsLeft reports whether the outcome is an error.
func (e Either[E, A]) IsLeft() bool {
	return !e.ok
}

// GetRight returns the success value, if any.
func (e Either[E, A]) GetRight() (A, bool) {
	if !e.ok {
		var zero A
		return zero, false
	}
	return e.val, true
}

// GetLeft returns the error, if any.
func (e Either[E, A]) GetLeft() (E, bool) {
	if e.ok {
		var zero E
		return zero, false
	}
	return e.err, true
}

// FromEither resumes a reified outcome inside the row: a success becomes a
// plain value, an error is rethrown through the effect. Inverse of RunError
// up to the effects the original program performed before failing.
func FromEither[E, A any](er Error[E], e Either[E, A]) Eff[A] {
	if e.ok {
		return Pure(e.val)
	}
	return ErrThrow[A](er, e.err)
}
