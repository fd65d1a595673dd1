package ordinal

import (
	"math"
	"sort"

	"github.com/lixenwraith/the-sequence/constants"
)

// Term is a single c·ω^e summand
type Term struct {
	Exponent    int
	Coefficient int
}

// Ordinal is a sum of terms, exponent-descending once normalized
type Ordinal struct {
	terms []Term
}

// New returns the zero ordinal
func New() Ordinal {
	return Ordinal{}
}

// FromNatural returns the finite ordinal n
// Values beyond the coefficient range clamp to math.MaxInt
func FromNatural(n uint64) Ordinal {
	o := New()
	if n == 0 {
		return o
	}
	c := math.MaxInt
	if n < uint64(math.MaxInt) {
		c = int(n)
	}
	o.AddTerm(0, c)
	return o
}

// FromTerms builds a normalized ordinal from the given terms, dropping any AddTerm rejects
func FromTerms(terms ...Term) Ordinal {
	o := New()
	for _, t := range terms {
		o.AddTerm(t.Exponent, t.Coefficient)
	}
	o.Normalize()
	return o
}

// AddTerm appends coefficient·ω^exponent without sorting or merging
// Returns false and leaves the ordinal unchanged when the coefficient is not positive,
// the exponent is negative, or the ordinal already holds MaxTerms terms
func (o *Ordinal) AddTerm(exponent, coefficient int) bool {
	if coefficient <= 0 || exponent < 0 || len(o.terms) >= constants.MaxTerms {
		return false
	}
	// Full slice expression forces a fresh array so copies of o never observe the append
	n := len(o.terms)
	o.terms = append(o.terms[:n:n], Term{Exponent: exponent, Coefficient: coefficient})
	return true
}

// Normalize drops non-positive coefficients and sorts by exponent descending
// Duplicate exponents are kept as separate terms
func (o *Ordinal) Normalize() {
	if len(o.terms) == 0 {
		return
	}
	kept := make([]Term, 0, len(o.terms))
	for _, t := range o.terms {
		if t.Coefficient > 0 {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		kept = nil
	}
	o.terms = kept

	sort.SliceStable(o.terms, func(i, j int) bool {
		return o.terms[i].Exponent > o.terms[j].Exponent
	})
}

// Successor returns o+1
// A trailing finite term is incremented; otherwise a new term 1 is appended
func (o Ordinal) Successor() Ordinal {
	next := o.clone()
	last := len(next.terms) - 1
	if last < 0 || next.terms[last].Exponent > 0 {
		next.AddTerm(0, 1)
	} else if next.terms[last].Coefficient < math.MaxInt {
		next.terms[last].Coefficient++
	}
	next.Normalize()
	return next
}

// Terms returns a copy of the stored terms
func (o Ordinal) Terms() []Term {
	if len(o.terms) == 0 {
		return nil
	}
	out := make([]Term, len(o.terms))
	copy(out, o.terms)
	return out
}

// Len returns the number of stored terms
func (o Ordinal) Len() int {
	return len(o.terms)
}

// IsZero reports whether o is the zero ordinal
func (o Ordinal) IsZero() bool {
	return len(o.terms) == 0
}

// Equal reports whether both ordinals hold identical term lists
func (o Ordinal) Equal(other Ordinal) bool {
	if len(o.terms) != len(other.terms) {
		return false
	}
	for i := range o.terms {
		if o.terms[i] != other.terms[i] {
			return false
		}
	}
	return true
}

func (o Ordinal) clone() Ordinal {
	return Ordinal{terms: o.Terms()}
}
