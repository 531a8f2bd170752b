// Package util contains any functions used across the application that don't match
// any other package
package util

import "math/rand"

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandStr returns a random alphabetic string of length n. Not for
// secrets, request IDs only.
func RandStr(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}

	return string(b)
}
