// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Effect rows.
// A row is the ordered collection of effect constructors a program may
// invoke. Rows are runtime values here: Go has no type-level lists, so the
// compile-time row of the effect calculus becomes an explicit witness
// argument threaded through interpreters (see Member).

// Tag identifies an effect constructor within a row.
// Tags compare by pointer identity: two calls to NewTag never produce equal
// tags, so distinct module instances cannot collide even when they share a
// name. The name is for diagnostics only.
type Tag struct {
	name string
}

// NewTag allocates a fresh effect-constructor tag.
func NewTag(name string) *Tag {
	return &Tag{name: name}
}

// String returns the diagnostic name of the tag.
func (t *Tag) String() string {
	if t == nil {
		return "<nil tag>"
	}
	return t.name
}

// Row is an ordered collection of effect tags.
// The zero Row is the empty row. Rows are immutable; the constructors below
// always copy.
//
// Well-formed rows do not contain the same tag twice. The witness machinery
// resolves the first occurrence and is not required to detect duplicates.
type Row struct {
	tags []*Tag
}

// NoFx is the empty row.
func NoFx() Row {
	return Row{}
}

// Fx1 builds a row of one effect.
func Fx1(t *Tag) Row {
	return Row{tags: []*Tag{t}}
}

// Fx2 builds a row of two effects.
func Fx2(t1, t2 *Tag) Row {
	return Row{tags: []*Tag{t1, t2}}
}

// Fx3 builds a row of three effects.
func Fx3(t1, t2, t3 *Tag) Row {
	return Row{tags: []*Tag{t1, t2, t3}}
}

// FxAppend concatenates two rows, left effects first.
func FxAppend(l, r Row) Row {
	tags := make([]*Tag, 0, len(l.tags)+len(r.tags))
	tags = append(tags, l.tags...)
	tags = append(tags, r.tags...)
	return Row{tags: tags}
}

// Len returns the number of effects in the row.
func (r Row) Len() int {
	return len(r.tags)
}

// IsEmpty reports whether the row has no effects.
func (r Row) IsEmpty() bool {
	return len(r.tags) == 0
}

// Tags returns a copy of the row's tags in order.
func (r Row) Tags() []*Tag {
	out := make([]*Tag, len(r.tags))
	copy(out, r.tags)
	return out
}

// indexOf returns the position of the first occurrence of t, searching from
// the head of the row, or -1.
func (r Row) indexOf(t *Tag) int {
	for i, rt := range r.tags {
		if rt == t {
			return i
		}
	}
	return -1
}

// Contains reports whether the row has an effect with the given tag.
func (r Row) Contains(t *Tag) bool {
	return r.indexOf(t) >= 0
}

// without returns the row with the effect at position i removed.
func (r Row) without(i int) Row {
	tags := make([]*Tag, 0, len(r.tags)-1)
	tags = append(tags, r.tags[:i]...)
	tags = append(tags, r.tags[i+1:]...)
	return Row{tags: tags}
}
