package main

import (
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-console/internal/letterfreq"
)

const text = `
    This sentence will be split into separate words.
    The space character is used as the separator for the built-in split method. As a result we get a list of separate words.
    Next the words have to be sorted alphabetically, and after sorting they are glued back together with the join method. Let's go!!!!
`

func main() {
	counts := letterfreq.Count(text)
	shares := letterfreq.Percentages(counts)

	for _, letter := range letterfreq.Letters(counts) {
		fmt.Fprintf(os.Stdout, "%c\t%d\t%.2f%%\n", letter, counts[letter], shares[letter])
	}
}
