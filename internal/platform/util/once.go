package util

import "sync/atomic"

// Once devuelve un wrapper que llama fn solo la primera vez, con los
// argumentos de esa llamada. Las siguientes llamadas no hacen nada y
// devuelven el zero value de R.
func Once[A, R any](fn func(A) R) func(A) R {
	var called atomic.Bool
	return func(arg A) R {
		if !called.CompareAndSwap(false, true) {
			var zero R
			return zero
		}
		return fn(arg)
	}
}
