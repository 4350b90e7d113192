/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package stdlib

import (
	"fmt"
	"strconv"

	"github.com/vireo-lang/vireo/pkg/bytecode"
	"github.com/vireo-lang/vireo/pkg/ir"
)

// LiteralMapper maps IR literals to the pooled literal representation used
// by the stock backend: int64 for numbers, bool for booleans, string for
// strings. Decimal and bytes literals are not supported by this backend.
//
// Numbers accept the usual base prefixes (0x, 0o, 0b).
func LiteralMapper(lit ir.Literal) (bytecode.Literal, error) {
	switch l := lit.(type) {
	case ir.NumberLiteral:
		v, err := strconv.ParseInt(l.Source, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer literal '%v'", l.Source)
		}
		return v, nil

	case ir.BoolLiteral:
		return l.Source == "true", nil

	case ir.StringLiteral:
		return l.Value, nil

	case ir.DecimalLiteral:
		return nil, fmt.Errorf("decimal literals are not supported by this backend")

	case ir.BytesLiteral:
		return nil, fmt.Errorf("bytes literals are not supported by this backend")

	default:
		return nil, fmt.Errorf("unsupported literal type %T", l)
	}
}

// LiteralToValue materializes a runtime value from a literal pooled by
// LiteralMapper. Literals are validated at compile time, so this never
// fails.
func LiteralToValue(lit bytecode.Literal) bytecode.Value {
	switch l := lit.(type) {
	case bool:
		return bytecode.NewValueBool(l)
	case int64:
		return bytecode.NewValueInt(l)
	case string:
		return bytecode.NewValueString(l)
	default:
		// Can't happen: LiteralMapper only pools the types above.
		panic(fmt.Sprintf("unexpected literal type: %T", l))
	}
}
