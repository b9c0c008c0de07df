package bst_test

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"bst_code/bst"
)

const size = 1 << 12

// Comparisons against a left-leaning red-black tree and a B-tree, both of
// which stay balanced. Shuffled input keeps the unbalanced tree at about
// 2 ln n depth; sorted input is the worst case.

func BenchmarkTree_InsertShuffled(b *testing.B) {
	perm := rand.New(rand.NewSource(0)).Perm(size)
	for i := 0; i < b.N; i++ {
		bst.New(perm...)
	}
}

func BenchmarkTree_InsertSorted(b *testing.B) {
	sorted := make([]int, size/8)
	for i := range sorted {
		sorted[i] = i
	}
	for i := 0; i < b.N; i++ {
		bst.New(sorted...)
	}
}

func BenchmarkLLRB_InsertShuffled(b *testing.B) {
	perm := rand.New(rand.NewSource(0)).Perm(size)
	for i := 0; i < b.N; i++ {
		t := llrb.New()
		for _, x := range perm {
			t.InsertNoReplace(llrb.Int(x))
		}
	}
}

func BenchmarkBTree_InsertShuffled(b *testing.B) {
	perm := rand.New(rand.NewSource(0)).Perm(size)
	for i := 0; i < b.N; i++ {
		t := btree.NewOrderedG[int](32)
		for _, x := range perm {
			t.ReplaceOrInsert(x)
		}
	}
}

var sideEff bool

func BenchmarkTree_Contains(b *testing.B) {
	r := rand.New(rand.NewSource(0))
	tree := bst.New(r.Perm(size)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff = tree.Contains(i % size)
	}
}

func BenchmarkLLRB_Contains(b *testing.B) {
	r := rand.New(rand.NewSource(0))
	t := llrb.New()
	for _, x := range r.Perm(size) {
		t.InsertNoReplace(llrb.Int(x))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff = t.Has(llrb.Int(i % size))
	}
}

func BenchmarkTree_InsertDelete(b *testing.B) {
	r := rand.New(rand.NewSource(0))
	perm := r.Perm(size)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tree := bst.New(perm...)
		b.StartTimer()
		for _, x := range perm {
			tree.Delete(x)
		}
	}
}
