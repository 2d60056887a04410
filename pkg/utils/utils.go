package utils

import (
	"sort"

	"github.com/LambdaTest/bucketeer/pkg/core"
	"github.com/google/uuid"
)

// jobNamespace is the namespace of the name based job UUIDs.
var jobNamespace = uuid.MustParse("6f1c5d0e-3b57-4bb4-9a8e-6c1f0a6b2d4e")

// GenerateStableUUID generates a name based (SHA-1) uuid, equal for equal names.
func GenerateStableUUID(name string) string {
	return uuid.NewSHA1(jobNamespace, []byte(name)).String()
}

// Max returns the larger of x or y.
func Max(x, y int) int {
	if x < y {
		return y
	}
	return x
}

// Min returns the smaller of x or y.
func Min(x, y int) int {
	if x > y {
		return y
	}
	return x
}

// CeilDiv returns x/y rounded up, for positive y.
func CeilDiv(x, y int) int {
	if x%y == 0 {
		return x / y
	}
	return x/y + 1
}

// SortedKeys returns the keys of the map in lexical order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TotalTime returns the summed duration of the buckets.
func TotalTime(buckets []core.Bucket) int {
	total := 0
	for _, b := range buckets {
		total += b.TotalTime()
	}
	return total
}
