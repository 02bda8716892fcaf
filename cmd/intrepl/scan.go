package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token categories of the command language.
const (
	tokIdent = iota + 1
	tokNum
)

type token struct {
	kind   int
	lexeme string
}

func (t token) Int() (int, error) {
	if t.kind != tokNum {
		return 0, errors.Errorf("expected a number, have '%s'", t.lexeme)
	}
	return strconv.Atoi(t.lexeme)
}

func (t token) Int32() (int32, error) {
	n, err := strconv.ParseInt(t.lexeme, 10, 32)
	if t.kind != tokNum || err != nil {
		return 0, errors.Errorf("expected a 32-bit integer, have '%s'", t.lexeme)
	}
	return int32(n), nil
}

var lexer *lexmachine.Lexer

// commandLexer lazily compiles the DFA for the command language.
func commandLexer() (*lexmachine.Lexer, error) {
	if lexer != nil {
		return lexer, nil
	}
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`#[^\n]*`), skip)
	lx.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*`), makeToken(tokIdent))
	lx.Add([]byte(`-?[0-9]+`), makeToken(tokNum))
	lx.Add([]byte(`( |\,|\t|\n|\r)+`), skip)
	if err := lx.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	lexer = lx
	return lexer, nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(kind int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(kind, string(m.Bytes), m), nil
	}
}

// tokenize splits a command line into tokens.
func tokenize(line string) ([]token, error) {
	lx, err := commandLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var tokens []token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, errors.Errorf("unexpected input at column %d", ui.StartColumn)
			}
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		tracer().Debugf("token %d | %s", t.Type, t.Lexeme)
		tokens = append(tokens, token{kind: t.Type, lexeme: string(t.Lexeme)})
	}
	return tokens, nil
}
