// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Erased represents a type-erased value: an effect payload, an intermediate
// continuation value, or an element of an applicative batch. Concrete types
// are recovered via type assertions at module boundaries; every cast site is
// paired with an invariant documented on the surrounding type.
type Erased = any

// Union is one effect drawn from a row: its constructor tag plus the payload
// value. Discrimination is by tag identity, so a union of a row is also a
// union of every row containing that constructor; the witness operations
// that move between a row and its complement validate membership without
// rewriting the value. Payloads are opaque to the core.
type Union struct {
	tag    *Tag
	effect Erased
}

// Tag returns the effect constructor of the union.
func (u Union) Tag() *Tag {
	return u.tag
}

// Effect returns the type-erased payload.
func (u Union) Effect() Erased {
	return u.effect
}

// UnionAt builds a union for the effect at position i of row r.
func UnionAt(r Row, i int, fx Erased) Union {
	if i < 0 || i >= len(r.tags) {
		panic("eff: union position out of row range")
	}
	return Union{tag: r.tags[i], effect: fx}
}

// Union1 builds a union for the sole effect of a one-effect row.
func Union1(r Row, fx Erased) Union { return UnionAt(r, 0, fx) }

// Union2L builds a union for the first effect of a two-effect row.
func Union2L(r Row, fx Erased) Union { return UnionAt(r, 0, fx) }

// Union2R builds a union for the second effect of a two-effect row.
func Union2R(r Row, fx Erased) Union { return UnionAt(r, 1, fx) }

// Union3L builds a union for the first effect of a three-effect row.
func Union3L(r Row, fx Erased) Union { return UnionAt(r, 0, fx) }

// Union3M builds a union for the second effect of a three-effect row.
func Union3M(r Row, fx Erased) Union { return UnionAt(r, 1, fx) }

// Union3R builds a union for the third effect of a three-effect row.
func Union3R(r Row, fx Erased) Union { return UnionAt(r, 2, fx) }

// UnionAppendL re-homes a union of the left half into FxAppend(l, r).
func UnionAppendL(l, r Row, u Union) Union { return u }

// UnionAppendR re-homes a union of the right half into FxAppend(l, r).
func UnionAppendR(l, r Row, u Union) Union { return u }

// Member witnesses that an effect constructor occurs in a row.
// It carries the row, the constructor's tag, and the complement row Out
// (the row minus this one occurrence). A Member covers both witness
// strengths of the calculus: Inject/Project/Accept move between the row and
// Out, while Inject/Extract keep the row unchanged.
type Member struct {
	tag *Tag
	row Row
	out Row
}

// MemberOf derives a membership witness for t in r, searching from the head
// of the row. The second result is false when t does not occur in r.
func MemberOf(t *Tag, r Row) (Member, bool) {
	i := r.indexOf(t)
	if i < 0 {
		return Member{}, false
	}
	return Member{tag: t, row: r, out: r.without(i)}, true
}

// MustMember derives a membership witness for t in r, panicking when t does
// not occur in r.
func MustMember(t *Tag, r Row) Member {
	m, ok := MemberOf(t, r)
	if !ok {
		panic("eff: effect " + t.String() + " is not a member of the row")
	}
	return m
}

// Tag returns the witnessed effect constructor.
func (m Member) Tag() *Tag {
	return m.tag
}

// Row returns the row the witness locates the effect in.
func (m Member) Row() Row {
	return m.row
}

// Out returns the row minus the witnessed occurrence.
func (m Member) Out() Row {
	return m.out
}

// Inject attaches the row tag for the witnessed constructor to a payload.
func (m Member) Inject(fx Erased) Union {
	if m.tag == nil {
		panic("eff: inject through an unbound member witness")
	}
	return Union{tag: m.tag, effect: fx}
}

// Extract returns the payload when u is the witnessed constructor, keeping
// the row unchanged. This is the weaker, in-place witness used by the
// intercept family.
func (m Member) Extract(u Union) (Erased, bool) {
	if u.tag == m.tag {
		return u.effect, true
	}
	return nil, false
}

// Project discriminates u: the payload when u is the witnessed constructor,
// otherwise the union under the Out row.
func (m Member) Project(u Union) (fx Erased, residual Union, matched bool) {
	if u.tag == m.tag {
		return u.effect, Union{}, true
	}
	return nil, m.residual(u), false
}

// Accept re-embeds a union of the Out row into the witnessed row without
// inspecting the payload.
func (m Member) Accept(u Union) Union {
	return u
}

// residual views a non-matching union of the row under Out. Tag identity
// makes the representation row-polymorphic, so the value is unchanged.
func (m Member) residual(u Union) Union {
	return u
}
