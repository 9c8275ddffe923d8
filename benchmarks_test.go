package promise

import (
	"testing"

	"github.com/willowtreeapps/PinkyPromise/result"
)

func BenchmarkStart(b *testing.B) {
	p := Fulfilled(1)
	for i := 0; i < b.N; i++ {
		p.Start(func(result.Result[int]) {})
	}
}

func BenchmarkMapChain(b *testing.B) {
	p := Fulfilled(1)
	for i := 0; i < 4; i++ {
		p = Map(p, func(x int) int { return x + 1 })
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Start(nil)
	}
}

func BenchmarkZipAllSynchronous(b *testing.B) {
	ps := make([]Promise[int], 8)
	for i := range ps {
		ps[i] = Fulfilled(i)
	}
	joined := ZipAll(ps)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		joined.Start(nil)
	}
}

func BenchmarkQueueEnqueue(b *testing.B) {
	q := NewQueue[int]()
	p := Fulfilled(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(p, nil)
	}
}
