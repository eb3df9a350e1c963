package locale

import "strings"

// Builder accumulates locale context via chained setters; Build resolves it
// into a *Locale. Mirrors the rust original's Config builder, but never
// panics — an unresolvable ISO code is a typed error instead (resolved Open
// Question, see DESIGN.md).
type Builder struct {
	alpha2      string
	alpha3      string
	subdivision string
	country     *Country
	drivingSide *DrivingSide
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// ISO3166 accepts a 2-letter alpha-2 code, a 3-letter alpha-3 code, or an
// alpha-2 code with a "-subdivision" suffix (e.g. "DE-NW").
func (b *Builder) ISO3166(code string) *Builder {
	switch {
	case len(code) == 2:
		b.alpha2 = code
	case len(code) == 3:
		b.alpha3 = code
	default:
		if alpha2, subdivision, ok := strings.Cut(code, "-"); ok {
			b.alpha2 = alpha2
			b.subdivision = subdivision
		}
	}
	return b
}

// ISO3166Option applies ISO3166 only if code is non-empty.
func (b *Builder) ISO3166Option(code string) *Builder {
	if code != "" {
		return b.ISO3166(code)
	}
	return b
}

// WithCountry sets the country directly, bypassing ISO code resolution.
func (b *Builder) WithCountry(c *Country) *Builder {
	b.country = c
	return b
}

// DrivingSide sets the driving side explicitly; Build defaults to Right if
// never called.
func (b *Builder) DrivingSide(side DrivingSide) *Builder {
	b.drivingSide = &side
	return b
}

// Build resolves the accumulated configuration into a Locale.
func (b *Builder) Build() (*Locale, error) {
	var country *Country
	switch {
	case b.country != nil:
		country = b.country
	case b.alpha2 != "":
		c, err := FromAlpha2(b.alpha2)
		if err != nil {
			return nil, err
		}
		country = c
	case b.alpha3 != "":
		c, err := FromAlpha3(b.alpha3)
		if err != nil {
			return nil, err
		}
		country = c
	}

	side := Right
	if b.drivingSide != nil {
		side = *b.drivingSide
	}

	return &Locale{
		Country:     country,
		Subdivision: b.subdivision,
		DrivingSide: side,
	}, nil
}
