package main

func first(s string) string {
	return s[:1]
}
