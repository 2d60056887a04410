// Package testsplitter partitions weighted items into a fixed number of balanced buckets.
package testsplitter

import (
	"math"

	"github.com/LambdaTest/bucketeer/pkg/core"
	errs "github.com/LambdaTest/bucketeer/pkg/errors"
	"github.com/LambdaTest/bucketeer/pkg/utils"
)

// Unbounded disables the cap on items aggregated into one bucket.
const Unbounded = math.MaxInt

// window is the part of the input not yet placed into a bucket, [head, tail).
// The backing slice is never written to.
type window[T core.Weighted] struct {
	items []T
	head  int
	tail  int
	total int
}

func (w window[T]) len() int {
	return w.tail - w.head
}

func (w window[T]) popHead() (T, window[T]) {
	item := w.items[w.head]
	w.head++
	w.total -= item.Weight()
	return item, w
}

func (w window[T]) popTail() (T, window[T]) {
	w.tail--
	item := w.items[w.tail]
	w.total -= item.Weight()
	return item, w
}

type splitter[T core.Weighted, R any] struct {
	splitLarge     func(T, int) []R
	aggregateSmall func([]T) R
	maxItems       int
}

// Split partitions items into expectedBucketNumber buckets of roughly equal weight.
//
// items must be sorted by descending weight. An item at least as heavy as the current
// target size is handed to splitLarge together with the number of pieces it should be cut
// into, and the bucket budget shrinks by the number of buckets returned. Lighter items
// start a bucket that is filled with the lightest remaining items until it reaches the
// target size or holds maxItemsPerBucket items, and is then built by aggregateSmall.
// The target size is recomputed from the remaining weight on every step.
//
// Splitting stops once all items are placed, so fewer buckets than requested are
// returned when the items cannot fill them. Items left over once the budget is spent
// are aggregated into one last bucket, which may hold more than maxItemsPerBucket items.
func Split[T core.Weighted, R any](items []T,
	splitLarge func(item T, pieces int) []R,
	aggregateSmall func(items []T) R,
	expectedBucketNumber, maxItemsPerBucket int) ([]R, error) {
	if expectedBucketNumber < 1 {
		return nil, errs.ErrInvalidBucketNumber
	}
	if maxItemsPerBucket < 1 {
		return nil, errs.ErrInvalidMaxItems
	}
	if len(items) == 0 {
		return nil, errs.ErrNoItems
	}
	total := 0
	for _, item := range items {
		total += item.Weight()
	}
	s := &splitter[T, R]{
		splitLarge:     splitLarge,
		aggregateSmall: aggregateSmall,
		maxItems:       maxItemsPerBucket,
	}
	return s.split(window[T]{items: items, tail: len(items), total: total}, expectedBucketNumber), nil
}

func (s *splitter[T, R]) split(rest window[T], expectedBucketNumber int) []R {
	if rest.len() == 0 {
		return nil
	}
	if expectedBucketNumber <= 1 {
		return []R{s.aggregateRemaining(rest)}
	}

	targetSize := rest.total / expectedBucketNumber
	largest, rest := rest.popHead()
	largestSize := largest.Weight()

	if targetSize > 0 && largestSize >= targetSize {
		fragments := s.splitLarge(largest, utils.CeilDiv(largestSize, targetSize))
		following := s.split(rest, expectedBucketNumber-len(fragments))
		buckets := make([]R, 0, len(fragments)+len(following))
		buckets = append(buckets, fragments...)
		return append(buckets, following...)
	}

	members := []T{largest}
	size := largestSize
	for size < targetSize && rest.len() > 0 && len(members) < s.maxItems {
		var smallest T
		smallest, rest = rest.popTail()
		members = append(members, smallest)
		size += smallest.Weight()
	}
	following := s.split(rest, expectedBucketNumber-1)
	buckets := make([]R, 0, len(following)+1)
	buckets = append(buckets, s.aggregateSmall(members))
	return append(buckets, following...)
}

// aggregateRemaining puts everything left into the last bucket regardless of the item cap.
func (s *splitter[T, R]) aggregateRemaining(rest window[T]) R {
	members := make([]T, rest.len())
	copy(members, rest.items[rest.head:rest.tail])
	return s.aggregateSmall(members)
}
