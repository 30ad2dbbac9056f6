package test

import (
	"math/rand/v2"
	"strings"
)

const (
	asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits       = "0123456789"
)

// RandomASCIIString returns a pseudo-random alphanumeric string within the provided bounds.
// When maxLen equals minLen the resulting string always has that exact length.
func RandomASCIIString(minLen, maxLen int) string {
	return randomFrom(asciiLetters, minLen, maxLen)
}

// RandomEmail returns a lower-case address on the given domain.
func RandomEmail(domain string) string {
	return strings.ToLower(RandomASCIIString(6, 12)) + "@" + domain
}

// RandomPhone returns a Brazilian mobile number in the loose format customers type,
// e.g. "(91) 98765-4321".
func RandomPhone() string {
	return "(" + randomFrom(digits, 2, 2) + ") 9" + randomFrom(digits, 4, 4) + "-" + randomFrom(digits, 4, 4)
}

func randomFrom(alphabet string, minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen + rand.IntN(maxLen-minLen+1)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(buf)
}
