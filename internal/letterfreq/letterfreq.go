package letterfreq

import (
	"math"
	"slices"
	"strings"
	"unicode"
)

// Count - counts every letter of the text, ignoring case. Other characters are skipped.
func Count(text string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) {
			counts[r]++
		}
	}

	return counts
}

// Percentages - returns the share of each letter in percent, rounded to two decimals.
func Percentages(counts map[rune]int) map[rune]float64 {
	total := 0
	for _, n := range counts {
		total += n
	}

	shares := make(map[rune]float64, len(counts))
	if total == 0 {
		return shares
	}

	for letter, n := range counts {
		shares[letter] = math.Round(float64(n)/float64(total)*100*100) / 100
	}

	return shares
}

// Letters - returns the letters of counts in alphabetical order.
func Letters(counts map[rune]int) []rune {
	letters := make([]rune, 0, len(counts))
	for letter := range counts {
		letters = append(letters, letter)
	}
	slices.Sort(letters)

	return letters
}
