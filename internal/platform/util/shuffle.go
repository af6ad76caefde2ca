package util

import "math/rand/v2"

// RandomShuffle desordena seq in place con 10*len(seq) swaps entre dos
// índices sorteados por separado. No es uniforme, alcanza para mostrar.
func RandomShuffle[T any](seq []T, intn func(n int) int) {
	n := len(seq)
	if n == 0 {
		return
	}
	for i := 0; i < n*10; i++ {
		i1 := intn(n)
		i2 := intn(n)
		seq[i1], seq[i2] = seq[i2], seq[i1]
	}
}

// Shuffle usa la fuente aleatoria global.
func Shuffle[T any](seq []T) {
	RandomShuffle(seq, rand.IntN)
}
