/*
File    : ego/parser/precedence.go
*/
package parser

import "github.com/akashmaji946/ego/token"

// Precedence levels, lowest to highest, matching spec.md §4.2.1's
// P0..P4 table exactly: P1 holds every comparison operator (< <= > >=
// == !=) at one level, and P4 holds both `%` and `^` together, above
// `*`/`/` at P3.
const (
	LOWEST = iota
	PrecLogic
	PrecCompare
	PrecSum
	PrecProduct
	PrecPower
)

var precedences = map[token.Kind]int{
	token.OR:        PrecLogic,
	token.AND:       PrecLogic,
	token.EQUAL:     PrecCompare,
	token.NOT_EQUAL: PrecCompare,
	token.LT:        PrecCompare,
	token.LTE:       PrecCompare,
	token.GT:        PrecCompare,
	token.GTE:       PrecCompare,
	token.PLUS:      PrecSum,
	token.MINUS:     PrecSum,
	token.MUL:       PrecProduct,
	token.DIV:       PrecProduct,
	token.MOD:       PrecPower,
	token.POW:       PrecPower,
}

func precedenceOf(kind token.Kind) int {
	if p, ok := precedences[kind]; ok {
		return p
	}
	return LOWEST
}

// rightAssociative reports whether kind binds tighter on its right operand
// than its left, so repeated application parses as a^(b^c) rather than
// (a^b)^c. `%` shares `^`'s precedence level but stays left-associative
// (spec.md §4.2.1's P4 row); every other binary operator in ego is
// left-associative too.
func rightAssociative(kind token.Kind) bool {
	return kind == token.POW
}
