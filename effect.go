// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// unhandledEffect panics with a descriptive message for unmatched operation
// payloads. Extracted as a noinline function so that module step functions
// remain inlineable.
//
//go:noinline
func unhandledEffect(handler string) {
	panic("eff: unhandled effect in " + handler)
}
