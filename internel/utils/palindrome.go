package utils

// LongestPalindrome returns the longest palindromic substring of s, the
// leftmost one when several share the longest length. It runs Manacher's
// algorithm over s with a separator between every pair of characters.
func LongestPalindrome(s string) string {
	if s == "" {
		return ""
	}

	t := make([]byte, 2*len(s)+1)
	for i := range t {
		if i%2 == 1 {
			t[i] = s[i/2]
		}
	}

	// radius[i] is the length in s of the palindrome centred at t[i]
	radius := make([]int, len(t))
	center, right := 0, 0
	bestLen, bestCenter := 0, 0
	for i := range t {
		if i < right {
			radius[i] = min(right-i, radius[2*center-i])
		}
		for i-radius[i]-1 >= 0 && i+radius[i]+1 < len(t) && t[i-radius[i]-1] == t[i+radius[i]+1] {
			radius[i]++
		}
		if i+radius[i] > right {
			center, right = i, i+radius[i]
		}
		if radius[i] > bestLen {
			bestLen, bestCenter = radius[i], i
		}
	}

	start := (bestCenter - bestLen) / 2
	return s[start : start+bestLen]
}
