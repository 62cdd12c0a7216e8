package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Concat2 concatenates pair iterators into a single iterator.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// Sorted2 iterates over the pairs of seq in key order. Later pairs replace
// earlier pairs with the same key.
func Sorted2[K cmp.Ordered, V any](seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		collected := maps.Collect(seq)
		for _, key := range slices.Sorted(maps.Keys(collected)) {
			if !yield(key, collected[key]) {
				return
			}
		}
	}
}
