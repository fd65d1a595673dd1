// Package ordinal provides a symbolic representation of the ordinals below ω^ω
// written in Cantor normal form, restricted to what the display sequence needs.
//
// An Ordinal is a finite sum of terms c·ω^e kept in descending exponent order.
// Values are copied by value; operations returning an Ordinal never share
// backing storage with their receiver.
//
// Rendering substitutes glyphs for small exponents:
//
//	5        exponent 0
//	ω, ω⋅3   exponent 1
//	ω², ω²⋅3 exponent 2
//	ω^4      exponent 3 and above
package ordinal
