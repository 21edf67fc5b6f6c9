// Package wordladder implements the word-ladder puzzle: transform a start
// word into a target word one letter at a time, with every intermediate word
// drawn from a fixed word set.
package wordladder

import (
	"fmt"
	"iter"
	"strings"

	"github.com/chenjie/puzzlesearch/puzzle"
)

// Puzzle is one rung of a ladder: the current word, the target word, and the
// word set every step must stay within. The set is shared by all states of a
// search and never written after construction.
type Puzzle struct {
	word   string
	target string
	words  map[string]struct{}
}

// New builds the initial state of a ladder from from to to over words.
// Both from and to must be non-empty, equal in length, and lowercase a-z;
// anything else wraps puzzle.ErrMalformedInput.
func New(from, to string, words []string) (*Puzzle, error) {
	if !validWord(from) {
		return nil, fmt.Errorf("%w: wordladder: start word %q must be lowercase a-z", puzzle.ErrMalformedInput, from)
	}
	if !validWord(to) {
		return nil, fmt.Errorf("%w: wordladder: target word %q must be lowercase a-z", puzzle.ErrMalformedInput, to)
	}
	if len(from) != len(to) {
		return nil, fmt.Errorf("%w: wordladder: %q and %q differ in length", puzzle.ErrMalformedInput, from, to)
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return &Puzzle{word: from, target: to, words: set}, nil
}

// Parse reads a ladder from text: the first token is the start word, the
// second the target, and every remaining token joins the word set. Tokens
// are separated by any whitespace.
func Parse(text string) (*Puzzle, error) {
	tokens := strings.Fields(text)
	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: wordladder: need a start word and a target word", puzzle.ErrMalformedInput)
	}
	return New(tokens[0], tokens[1], tokens[2:])
}

func validWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// IsSolved reports whether the current word has reached the target.
func (p *Puzzle) IsSolved() bool { return p.word == p.target }

// FailFast reports whether the ladder is provably stuck: unless already
// solved, every step lands inside the word set, so a target outside the set
// can never be reached.
func (p *Puzzle) FailFast() bool {
	if p.word == p.target {
		return false
	}
	_, ok := p.words[p.target]
	return !ok
}

// Extensions yields every word in the set that differs from the current word
// by exactly one letter, scanning positions left to right and candidate
// letters a-z.
func (p *Puzzle) Extensions() iter.Seq[puzzle.State] {
	return func(yield func(puzzle.State) bool) {
		buf := []byte(p.word)
		for i := range buf {
			orig := buf[i]
			for c := byte('a'); c <= 'z'; c++ {
				if c == orig {
					continue
				}
				buf[i] = c
				cand := string(buf)
				if _, ok := p.words[cand]; ok {
					next := &Puzzle{word: cand, target: p.target, words: p.words}
					if !yield(next) {
						return
					}
				}
			}
			buf[i] = orig
		}
	}
}

// Key identifies the configuration: the target never changes within a search,
// so the rendering doubles as the canonical key.
func (p *Puzzle) Key() string { return p.word + " -> " + p.target }

// String renders the rung as "current -> target".
func (p *Puzzle) String() string { return p.word + " -> " + p.target }

// Word returns the current word.
func (p *Puzzle) Word() string { return p.word }

// Target returns the target word.
func (p *Puzzle) Target() string { return p.target }
