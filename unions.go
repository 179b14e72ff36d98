// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "strconv"

// Effect batches.
// Unions is the ordered batch of independent effects carried by an
// applicative node; CollectedUnions is its partition under a membership
// witness, with the bookkeeping needed to restore original positional order
// after partial interpretation.

// Unions is a non-empty ordered list of effect nodes. Invariant: len ≥ 1.
// The head's result type is the input type of the continuation produced by
// monadic normalization; remaining entries are type-erased.
type Unions struct {
	list []Union
}

// UnionsOf builds a batch from a first effect and any number of others.
func UnionsOf(first Union, rest ...Union) Unions {
	list := make([]Union, 0, 1+len(rest))
	list = append(list, first)
	list = append(list, rest...)
	return Unions{list: list}
}

// Size returns the number of batched effects.
func (us Unions) Size() int {
	return len(us.list)
}

// First returns the head effect.
func (us Unions) First() Union {
	return us.list[0]
}

// At returns the effect at position i.
func (us Unions) At(i int) Union {
	return us.list[i]
}

// Append concatenates two batches, preserving the head of the receiver.
func (us Unions) Append(other Unions) Unions {
	list := make([]Union, 0, len(us.list)+len(other.list))
	list = append(list, us.list...)
	list = append(list, other.list...)
	return Unions{list: list}
}

// Into maps every element through a row-to-row transformation, preserving
// order.
func (us Unions) Into(f func(Union) Union) Unions {
	list := make([]Union, len(us.list))
	for i, u := range us.list {
		list[i] = f(u)
	}
	return Unions{list: list}
}

// CollectedUnions is the partition of a batch under a membership witness:
// the targeted effects and the remaining effects, each in original order,
// plus the original position of every element for the final reorder.
type CollectedUnions struct {
	// Effects are the payloads of the targeted effects, in original order.
	Effects []Erased

	// Others are the non-targeted effects, in original order. After Project
	// they live in the witness's Out row; after Extract they keep the row.
	Others []Union

	// Indices are the original positions of Effects.
	Indices []int

	// OtherIndices are the original positions of Others.
	OtherIndices []int
}

// Project partitions the batch: targeted payloads out, the rest re-homed
// into the witness's Out row.
func (us Unions) Project(m Member) CollectedUnions {
	var c CollectedUnions
	for i, u := range us.list {
		if fx, ok := m.Extract(u); ok {
			c.Effects = append(c.Effects, fx)
			c.Indices = append(c.Indices, i)
		} else {
			c.Others = append(c.Others, m.residual(u))
			c.OtherIndices = append(c.OtherIndices, i)
		}
	}
	return c
}

// Extract partitions like Project but leaves the non-targeted effects in the
// original row, for the intercept family.
func (us Unions) Extract(m Member) CollectedUnions {
	var c CollectedUnions
	for i, u := range us.list {
		if fx, ok := m.Extract(u); ok {
			c.Effects = append(c.Effects, fx)
			c.Indices = append(c.Indices, i)
		} else {
			c.Others = append(c.Others, u)
			c.OtherIndices = append(c.OtherIndices, i)
		}
	}
	return c
}

// reorder restores original batch order: targeted outputs ls and remaining
// outputs xs are placed back at their recorded positions.
func (c CollectedUnions) reorder(ls, xs []Erased) []Erased {
	if len(ls) != len(c.Indices) {
		panic("eff: applicative batch arity mismatch: interpreter returned " +
			strconv.Itoa(len(ls)) + " values for " + strconv.Itoa(len(c.Indices)) + " effects")
	}
	out := make([]Erased, len(ls)+len(xs))
	for i, v := range ls {
		out[c.Indices[i]] = v
	}
	for i, v := range xs {
		out[c.OtherIndices[i]] = v
	}
	return out
}

// continuation rebuilds the batch continuation in the original row for the
// handle-and-remove drivers: given the interpreter's outputs for the
// targeted effects, either finish with the reordered zip or rebuild a batch
// over the remaining effects, re-accepted into the row through the witness.
func (c CollectedUnions) continuation(zip func([]Erased) Erased, m Member) kleisli {
	return c.buildContinuation(zip, m.Accept)
}

// continuationIn is the intercept variant: the remaining effects already
// live in the original row.
func (c CollectedUnions) continuationIn(zip func([]Erased) Erased) kleisli {
	return c.buildContinuation(zip, func(u Union) Union { return u })
}

func (c CollectedUnions) buildContinuation(zip func([]Erased) Erased, embed func(Union) Union) kleisli {
	return singleK(func(lsv Erased) node {
		ls := lsv.([]Erased)
		if len(c.Others) == 0 {
			return pureNode{value: zip(c.reorder(ls, nil))}
		}
		rehomed := make([]Union, len(c.Others))
		for i, u := range c.Others {
			rehomed[i] = embed(u)
		}
		return impureApNode{
			unions: Unions{list: rehomed},
			zip: func(xs []Erased) Erased {
				return zip(c.reorder(ls, xs))
			},
		}
	})
}
