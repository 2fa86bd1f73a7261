package vector_test

import (
	"testing"

	"github.com/katalvlaran/dynarr/vector"
)

// benchFilled builds a vector of n sequential ints outside the timer.
func benchFilled(b *testing.B, n int) *vector.Vector[int] {
	b.Helper()
	v := vector.New[int]()
	for i := 0; i < n; i++ {
		if err := v.PushBack(i); err != nil {
			b.Fatalf("PushBack failed: %v", err)
		}
	}

	return v
}

// BenchmarkPushBack_Growing measures appends that pay for growth.
func BenchmarkPushBack_Growing(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := vector.New[int]()
		for j := 0; j < 1024; j++ {
			if err := v.PushBack(j); err != nil {
				b.Fatalf("PushBack failed: %v", err)
			}
		}
	}
}

// BenchmarkPushBack_Reserved measures appends into preallocated capacity.
func BenchmarkPushBack_Reserved(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := vector.New[int]()
		if err := v.Reserve(1024); err != nil {
			b.Fatalf("Reserve failed: %v", err)
		}
		for j := 0; j < 1024; j++ {
			if err := v.PushBack(j); err != nil {
				b.Fatalf("PushBack failed: %v", err)
			}
		}
	}
}

// BenchmarkInsert_Front measures the worst-case shift distance.
func BenchmarkInsert_Front(b *testing.B) {
	v := benchFilled(b, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.Insert(0, i); err != nil {
			b.Fatalf("Insert failed: %v", err)
		}
		v.Erase(0) // keep length stable across iterations
	}
}

// BenchmarkErase_Middle measures erase with half the elements shifting.
func BenchmarkErase_Middle(b *testing.B) {
	v := benchFilled(b, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Erase(v.Len() / 2)
		if _, err := v.Insert(v.Len()/2, i); err != nil {
			b.Fatalf("Insert failed: %v", err)
		}
	}
}

// BenchmarkAt_Sequential measures indexed reads over the live range.
func BenchmarkAt_Sequential(b *testing.B) {
	v := benchFilled(b, 1024)
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		for j := 0; j < v.Len(); j++ {
			sum += v.At(j)
		}
	}
	_ = sum
}

// BenchmarkClone measures the deep-copy path without a clone hook.
func BenchmarkClone(b *testing.B) {
	v := benchFilled(b, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.Clone(); err != nil {
			b.Fatalf("Clone failed: %v", err)
		}
	}
}
