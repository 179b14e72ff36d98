// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eff provides an extensible-effects runtime in Go.
//
// A program is a single immutable value of type [Eff] that describes a
// computation over an open, user-extensible set of effect capabilities
// (state, writer, reader, non-determinism, evaluation suspension, ...).
// Programs are combined monadically with [Bind] and applicatively with [Ap],
// and later executed by composing independent interpreters — one per effect —
// in any order, peeling effects off one at a time until none remain.
//
// # Design Philosophy
//
// eff provides:
//   - A free-monad program representation whose impurity is a disjoint union
//     over a runtime effect row
//   - A stack-safe deque of Kleisli arrows for the monadic continuation
//   - An applicative case that preserves parallel structure so interpreters
//     can batch independent effects
//   - A small set of composable interpreter drivers sharing one trampolined
//     evaluator
//
// # Program Representation
//
// [Eff] is a sum of three variants:
//
//   - Pure: a value with no remaining effects
//   - Impure: one effect plus its continuation, a deque of Kleisli arrows
//   - ImpureAp: an ordered batch of independent effects plus a zipping
//     function applied to their results in original positional order
//
// Construction:
//
//   - [Pure]: lift a value
//   - [Send]: lift one effect (always an applicative batch of size 1, so
//     adjacent sends merge under [Ap] without forcing monadic sequencing)
//   - [Impure]: rebuild a monadic node — interpreter internals only
//
// Combination:
//
//   - [Bind]: monadic sequencing (flatMap)
//   - [Map], [Map2], [Then]: derived operations
//   - [Ap], [Product]: applicative combination preserving effect batches
//   - [Traverse], [Sequence]: batched traversal over slices
//
// # Effect Rows
//
// A row is an ordered collection of effect constructors, each identified by a
// [Tag] (tags compare by identity, so two instances of the same module never
// collide). Rows are built with [NoFx], [Fx1], [Fx2], [Fx3] and [FxAppend].
//
// A [Member] value witnesses that one constructor occurs in a row and carries
// the machinery to move between the row and its complement:
//
//   - [Member.Inject]: attach the row tag to an effect value
//   - [Member.Project]: discriminate, re-homing non-matching effects into the
//     row minus the witnessed constructor
//   - [Member.Accept]: re-embed an effect of the smaller row
//   - [Member.Extract]: discriminate without changing the row
//
// [IntoPoly] lifts a program written against a small row into any row that
// contains it; see [EffInto].
//
// # Interpreters
//
// All interpreters share one iterative driver that never recurses on the
// program tree. Continuations of effects the current handler does not
// recognize are re-wrapped lazily, so interleaved handlers stay stack-safe.
//
//   - [InterpretLoop]: the general protocol — handler state, one callback per
//     program variant ([Loop])
//   - [InterpretStatelessLoop]: [Loop] without handler state ([StatelessLoop])
//   - [Interpret]: stateless handle-and-remove ([Recurse])
//   - [InterpretState]: stateful handle-and-remove ([StateRecurse])
//   - [Intercept], [InterceptLoop], [InterceptStatelessLoop]: observe and
//     rewrite effects in place, keeping the row unchanged
//   - [InterceptNat]: rewrite each effect payload in place through a natural
//     transformation, preserving applicative batches
//   - [Transform]: swap one effect constructor for another via a natural
//     transformation
//   - [Translate], [TranslateNat]: replace an effect with a program over the
//     remaining row, inlining it monadically while keeping batched target
//     effects independent
//   - [InterpretUnsafe]: treat an effect as a side-effecting function
//     ([SideEffect]) — for modules that perform real work at run time
//
// Terminal execution over trivial rows:
//
//   - [Run]: extract the value of a program with no remaining effects
//     (panics on any other variant)
//   - [RunPure]: non-panicking variant
//   - [Detach]: peel a single-effect row directly into that effect's own
//     monad, supplied as an explicit [Monad] dictionary
//
// # Applicative Batching
//
// When two programs are combined with [Ap] or [Product], their effect batches
// are concatenated and exposed to interpreters as one batch. The core
// guarantees only that the outputs are delivered back to the zipping function
// in original positional order; interpreters that observe side effects on
// batches document their own internal order. Within a monadic chain, effects
// are sequenced in program order.
//
// The combined batch of Ap(ff)(fa) carries the effects of ff before those of
// fa; [Product] therefore runs left-operand effects first.
//
// # Runtime Contracts
//
// The zipping function of an ImpureAp node is untyped at the boundary: when
// called, its input list has exactly one element per batched effect, in
// original order, each of the effect's static result type. Interpreters that
// return per-element batches must honor this contract; the driver asserts the
// arity and panics with an eff: message on violation. Calling [Run] on a
// program with remaining effects is likewise a fatal programmer error.
//
// # Effect Modules
//
// The package ships the standard modules built on the interpreter toolkit;
// each follows the module contract: send-based constructors, a RunXxx runner
// built on a handler combinator, and the positional batch contract.
//
//   - [State]: [Get], [Put], [Modify]; [RunState], [EvalState], [ExecState]
//   - [Reader]: [Ask]; [RunReader]
//   - [Writer]: [Tell]; [RunWriter], [ExecWriter], [RunWriterFold]
//   - [Error]: [Throw]; [ErrThrow], [CatchError], [RunError] returning
//     [Either]
//   - [List]: [Values]; [ListValues], [RunList] — non-determinism with
//     depth-first monadic sequencing and cartesian applicative batches
//   - [Eval]: [Delay]; [EvalDelay], [RunEval] — deferred evaluation
//
// Module instances are values: NewXxx allocates a fresh [Tag], In binds the
// instance to a row by resolving its [Member] witness.
//
// # Example
//
//	st := eff.NewState[int]("counter")
//	row := eff.Fx1(st.Tag())
//	s := st.In(row)
//
//	prog := eff.Bind(s.Get(), func(x int) eff.Eff[int] {
//		return eff.Then(s.Put(x+1), s.Get())
//	})
//
//	pair := eff.Run(eff.RunState(s, 41, prog))
//	// pair.Fst == 42, pair.Snd == 42
package eff
