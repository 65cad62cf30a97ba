package main

func add(a, b int) int {
	if a > 10 || a < -10 {
		return 0
	}
	return a + b
}
