package ordinal

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lixenwraith/the-sequence/constants"
)

// ErrBufferTooSmall is returned by Render when the output does not fit the limit
var ErrBufferTooSmall = errors.New("ordinal: rendered form exceeds buffer limit")

// String renders o within MaxStringLength, truncated at a term boundary on overflow
func (o Ordinal) String() string {
	s, _ := o.Render(constants.MaxStringLength)
	return s
}

// Render writes o into at most limit bytes
// On overflow it returns the terms that fit and ErrBufferTooSmall
func (o Ordinal) Render(limit int) (string, error) {
	if len(o.terms) == 0 {
		if limit < len(constants.GlyphZero) {
			return "", ErrBufferTooSmall
		}
		return constants.GlyphZero, nil
	}

	var b strings.Builder
	var piece strings.Builder
	for i, t := range o.terms {
		piece.Reset()
		if i > 0 {
			piece.WriteString(constants.GlyphPlus)
		}
		writeTerm(&piece, t)

		if b.Len()+piece.Len() > limit {
			return b.String(), ErrBufferTooSmall
		}
		b.WriteString(piece.String())
	}
	return b.String(), nil
}

// writeTerm renders one term; finite terms always print their coefficient
func writeTerm(b *strings.Builder, t Term) {
	coeff := strconv.Itoa(t.Coefficient)

	switch t.Exponent {
	case 0:
		b.WriteString(coeff)
		return
	case 1:
		b.WriteString(constants.GlyphOmega)
	case 2:
		b.WriteString(constants.GlyphOmega)
		b.WriteString(constants.GlyphSquared)
	default:
		b.WriteString(constants.GlyphOmega)
		b.WriteString(constants.GlyphPower)
		b.WriteString(strconv.Itoa(t.Exponent))
	}

	if t.Coefficient != 1 {
		b.WriteString(constants.GlyphTimes)
		b.WriteString(coeff)
	}
}
