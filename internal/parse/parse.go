// Package parse extracts dice rolls from raw input text.
package parse

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoRolls indicates the input contained no standalone 1-6 tokens.
var ErrNoRolls = errors.New("no valid dice rolls found in input")

// Read consumes r to exhaustion and extracts the dice rolls from its text.
// It returns ErrNoRolls when the text contains no valid rolls.
func Read(r io.Reader) ([]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	rolls := ExtractRolls(string(data))
	if len(rolls) == 0 {
		return nil, ErrNoRolls
	}
	return rolls, nil
}

// ExtractRolls returns every standalone digit 1-6 in text, in input order.
// A digit is standalone when not adjacent to other digits: "16" contributes
// nothing, "1 6" contributes 1 and 6.
func ExtractRolls(text string) []int {
	var rolls []int
	runStart := -1
	flush := func(end int) {
		if runStart < 0 {
			return
		}
		if end-runStart == 1 {
			if ch := text[runStart]; ch >= '1' && ch <= '6' {
				rolls = append(rolls, int(ch-'0'))
			}
		}
		runStart = -1
	}
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		flush(i)
	}
	flush(len(text))
	return rolls
}
