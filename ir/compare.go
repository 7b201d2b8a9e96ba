package ir

import (
	"bytes"
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Nodes of different types order by type rank.  Numbers compare by value, so
// 1 and 1.0 are equal.  Objects compare as their sorted key/value pairs, so
// field order does not affect the result.  A nil node compares as Absent.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	rankA := rank(a.Kind())
	rankB := rank(b.Kind())
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Kind() {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BytesType:
		return bytes.Compare(a.Bytes, b.Bytes)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Absent < Null < Bool < Number < String < Bytes < Array < Object
func rank(t Type) int {
	switch t {
	case AbsentType:
		return 0
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case BytesType:
		return 5
	case ArrayType:
		return 6
	case ObjectType:
		return 7
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	fa, _ := a.AsFloat()
	fb, _ := b.AsFloat()
	return cmp.Compare(fa, fb)
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	orderA := sortedFields(a)
	orderB := sortedFields(b)
	minLen := min(len(orderA), len(orderB))

	for i := 0; i < minLen; i++ {
		ia, ib := orderA[i], orderB[i]
		if c := strings.Compare(a.Fields[ia], b.Fields[ib]); c != 0 {
			return c
		}
		if c := Compare(a.Values[ia], b.Values[ib]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(orderA), len(orderB))
}

func sortedFields(y *Node) []int {
	res := make([]int, len(y.Fields))
	for i := range res {
		res[i] = i
	}
	slices.SortFunc(res, func(i, j int) int {
		return strings.Compare(y.Fields[i], y.Fields[j])
	})
	return res
}
