package machine

import (
	"io"
	"math/big"
	"strings"
)

// Program is a parsed intcode listing, ready to seed machine memory.
type Program struct {
	Words []big.Int
}

// Size returns the number of words in the listing.
func (prog *Program) Size() int {
	return len(prog.Words)
}

// ParseProgram parses a comma-separated listing of decimal integers.
// Whitespace around each integer is ignored. Values of any width are
// accepted.
func ParseProgram(input io.Reader) (prog *Program, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	tokens := strings.Split(string(text), ",")

	words := make([]big.Int, len(tokens))
	for n, token := range tokens {
		token = strings.TrimSpace(token)
		_, ok := words[n].SetString(token, 10)
		if !ok {
			err = ErrParseNumber(token)
			return
		}
	}

	prog = &Program{Words: words}
	return
}
