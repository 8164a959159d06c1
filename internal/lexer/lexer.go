// Package lexer splits a rover instruction line into command tokens.
package lexer

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type Type int

const (
	Left Type = iota
	Right
	Forward
	Backward
)

var names = map[Type]string{
	Left:     "L",
	Right:    "R",
	Forward:  "M",
	Backward: "B",
}

func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

type Token struct {
	Type    Type
	Literal string
	// Offset is the byte index of the token in the instruction line.
	Offset int
}

var (
	buildOnce sync.Once
	commands  *lexmachine.Lexer
	buildErr  error
)

func build() {
	l := lexmachine.NewLexer()
	for t, lit := range names {
		l.Add([]byte(lit), tokAction(t))
	}
	if err := l.Compile(); err != nil {
		buildErr = fmt.Errorf("compile instruction lexer: %w", err)
		return
	}
	commands = l
}

// Scan tokenizes the whole line and fails on the first byte that is not a
// known command.
func Scan(input string) ([]Token, error) {
	buildOnce.Do(build)
	if buildErr != nil {
		return nil, buildErr
	}
	scanner, err := commands.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	toks := make([]Token, 0, len(input))
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok.(Token))
	}
	return toks, nil
}

func tokAction(t Type) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{
			Type:    t,
			Literal: string(m.Bytes),
			Offset:  m.TC,
		}, nil
	}
}
