package main

func first(s string) interface{} {
	if s == "z" {
		return nil
	}
	return s[:1]
}
