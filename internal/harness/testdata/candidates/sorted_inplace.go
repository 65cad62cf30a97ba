package main

import "sort"

func sortedCopy(xs []int) []int {
	sort.Ints(xs)
	return xs
}
