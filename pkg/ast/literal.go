/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package ast

// A Literal is a literal as it appears in the source code. Literal payloads
// are kept in source form (strings of digits, for numbers): choosing a
// runtime representation is up to the embedder, much later in the pipeline.
type Literal interface {
	literalNode()
}

// NumberLiteral is an integer literal, kept in source form.
type NumberLiteral struct {
	Source string
}

func (NumberLiteral) literalNode() {}

// DecimalLiteral is a decimal (fractional) literal, kept in source form.
type DecimalLiteral struct {
	Source string
}

func (DecimalLiteral) literalNode() {}

// StringLiteral is a string literal, with escape sequences already resolved.
type StringLiteral struct {
	Value string
}

func (StringLiteral) literalNode() {}

// BytesLiteral is a raw bytes literal.
type BytesLiteral struct {
	Value []byte
}

func (BytesLiteral) literalNode() {}
