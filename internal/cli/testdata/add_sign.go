package main

func add(a, b int) int {
	if b < 0 {
		return a - b
	}
	return a + b
}
