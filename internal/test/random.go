package test

import (
	"math/rand"
	"strings"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomASCIIString returns a random string with length in [min, max].
func RandomASCIIString(min, max int) string {
	if max < min {
		min, max = max, min
	}
	length := min
	if max > min {
		length += rand.Intn(max - min + 1)
	}
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(asciiLetters[rand.Intn(len(asciiLetters))])
	}
	return b.String()
}
