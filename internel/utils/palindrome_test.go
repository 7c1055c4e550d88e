package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongestPalindrome(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"0", "0"},
		{"10", "1"},
		{"101001", "1001"},
		{"110011", "110011"},
		{"0001000", "0001000"},
		{"1101", "101"},
		{"0111", "111"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, LongestPalindrome(tt.input))
		})
	}
}

func bruteForcePalindrome(s string) string {
	best := ""
	for i := 0; i < len(s); i++ {
		for j := i; j < len(s); j++ {
			sub := s[i : j+1]
			ok := true
			for k := 0; k < len(sub)/2; k++ {
				if sub[k] != sub[len(sub)-1-k] {
					ok = false
					break
				}
			}
			if ok && len(sub) > len(best) {
				best = sub
			}
		}
	}
	return best
}

func FuzzLongestPalindrome(f *testing.F) {
	f.Add("101001")
	f.Add("")
	f.Fuzz(func(t *testing.T, s string) {
		if len(s) > 64 {
			s = s[:64]
		}
		assert.Equal(t, bruteForcePalindrome(s), LongestPalindrome(s))
	})
}
