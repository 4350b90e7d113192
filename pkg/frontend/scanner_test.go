/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanAll scans source to EOF and returns all tokens, excluding the EOF
// token itself.
func scanAll(source string) []*Token {
	s := NewScanner(source)
	tokens := []*Token{}
	for {
		tok := s.Token()
		if tok.Kind == TokenKindEOF {
			return tokens
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenKindError {
			return tokens
		}
	}
}

func TestScanBasicTokens(t *testing.T) {
	tokens := scanAll(`(define (main) 42)`)

	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{
		TokenKindLeftParen,
		TokenKindIdentifier,
		TokenKindLeftParen,
		TokenKindIdentifier,
		TokenKindRightParen,
		TokenKindNumber,
		TokenKindRightParen,
	}, kinds)

	assert.Equal(t, "define", tokens[1].Lexeme)
	assert.Equal(t, "main", tokens[3].Lexeme)
	assert.Equal(t, "42", tokens[5].Lexeme)
}

func TestScanSymbolIdentifiers(t *testing.T) {
	tokens := scanAll(`+ - <= bool_eq int->str`)
	require.Len(t, tokens, 5)
	for _, tok := range tokens {
		assert.Equal(t, TokenKindIdentifier, tok.Kind)
	}
	assert.Equal(t, "+", tokens[0].Lexeme)
	assert.Equal(t, "<=", tokens[2].Lexeme)
	assert.Equal(t, "int->str", tokens[4].Lexeme)
}

func TestScanNumbers(t *testing.T) {
	tokens := scanAll(`0 42 0x2a -7 +7`)
	require.Len(t, tokens, 5)
	for _, tok := range tokens {
		assert.Equal(t, TokenKindNumber, tok.Kind, "lexeme %q", tok.Lexeme)
	}
	assert.Equal(t, "0x2a", tokens[2].Lexeme)
	assert.Equal(t, "-7", tokens[3].Lexeme)
}

func TestMinusAloneIsIdentifier(t *testing.T) {
	tokens := scanAll(`(- 3 4)`)
	require.Len(t, tokens, 5)
	assert.Equal(t, TokenKindIdentifier, tokens[1].Kind)
	assert.Equal(t, "-", tokens[1].Lexeme)
}

func TestScanStrings(t *testing.T) {
	tokens := scanAll(`"hello" "a\nb" "quote: \" done" "back\\slash"`)
	require.Len(t, tokens, 4)
	assert.Equal(t, "hello", tokens[0].Lexeme)
	assert.Equal(t, "a\nb", tokens[1].Lexeme)
	assert.Equal(t, `quote: " done`, tokens[2].Lexeme)
	assert.Equal(t, `back\slash`, tokens[3].Lexeme)
}

func TestScanUnterminatedString(t *testing.T) {
	tokens := scanAll(`"oops`)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenKindError, tokens[0].Kind)
	assert.Contains(t, tokens[0].Lexeme, "Unterminated string")
}

func TestScanComments(t *testing.T) {
	tokens := scanAll("; a comment\n42 ; trailing\n")
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenKindNumber, tokens[0].Kind)
	assert.Equal(t, 2, tokens[0].Line)
}

func TestScanLineNumbers(t *testing.T) {
	tokens := scanAll("a\nb\n\nc")
	require.Len(t, tokens, 3)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 4, tokens[2].Line)
}

func TestScanUnexpectedCharacter(t *testing.T) {
	tokens := scanAll(`,`)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenKindError, tokens[0].Kind)
}
