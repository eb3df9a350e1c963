// Package locale resolves country/subdivision/driving-side context for a way
// and derives lane-width, separator-color and shoulder-policy defaults from
// it.
package locale

import "fmt"

// Country is a small ISO-3166-1 record: the alpha-2/alpha-3 codes plus a
// region, used only for the handful of country-dependent rules this
// transform core implements (UK/NL lane widths and separator rules, the
// Americas' yellow centerline convention).
type Country struct {
	Alpha2 string
	Alpha3 string
	Name   string
	Region string
}

// Region names as used by SeparatorMotorColor's Americas rule.
const (
	RegionAmericas = "Americas"
	RegionEurope   = "Europe"
	RegionOther    = "Other"
)

// countries is a hand-written table covering the countries exercised by this
// transform's scenarios and tests (see DESIGN.md: no pack library ships an
// ISO-3166 database). It is not a general-purpose country registry.
var countries = []Country{
	{Alpha2: "GB", Alpha3: "GBR", Name: "United Kingdom", Region: RegionEurope},
	{Alpha2: "DE", Alpha3: "DEU", Name: "Germany", Region: RegionEurope},
	{Alpha2: "NL", Alpha3: "NLD", Name: "Netherlands", Region: RegionEurope},
	{Alpha2: "FR", Alpha3: "FRA", Name: "France", Region: RegionEurope},
	{Alpha2: "PL", Alpha3: "POL", Name: "Poland", Region: RegionEurope},
	{Alpha2: "ES", Alpha3: "ESP", Name: "Spain", Region: RegionEurope},
	{Alpha2: "IT", Alpha3: "ITA", Name: "Italy", Region: RegionEurope},
	{Alpha2: "BE", Alpha3: "BEL", Name: "Belgium", Region: RegionEurope},
	{Alpha2: "IE", Alpha3: "IRL", Name: "Ireland", Region: RegionEurope},
	{Alpha2: "US", Alpha3: "USA", Name: "United States", Region: RegionAmericas},
	{Alpha2: "CA", Alpha3: "CAN", Name: "Canada", Region: RegionAmericas},
	{Alpha2: "MX", Alpha3: "MEX", Name: "Mexico", Region: RegionAmericas},
	{Alpha2: "BR", Alpha3: "BRA", Name: "Brazil", Region: RegionAmericas},
	{Alpha2: "AU", Alpha3: "AUS", Name: "Australia", Region: RegionOther},
	{Alpha2: "JP", Alpha3: "JPN", Name: "Japan", Region: RegionOther},
}

// UnitedKingdom and TheNetherlands are the two countries with dedicated rule
// overrides throughout the transform.
var (
	UnitedKingdom  = mustFind("GB")
	TheNetherlands = mustFind("NL")
)

func mustFind(alpha2 string) *Country {
	c, err := FromAlpha2(alpha2)
	if err != nil {
		panic(err)
	}
	return c
}

// ErrUnknownCountryCode reports an ISO code this table doesn't recognize.
type ErrUnknownCountryCode struct {
	Code string
}

func (e ErrUnknownCountryCode) Error() string {
	return fmt.Sprintf("cannot determine ISO 3166 country from %q", e.Code)
}

// FromAlpha2 looks up a country by its 2-letter ISO-3166-1 code.
func FromAlpha2(code string) (*Country, error) {
	for i := range countries {
		if countries[i].Alpha2 == code {
			return &countries[i], nil
		}
	}
	return nil, ErrUnknownCountryCode{Code: code}
}

// FromAlpha3 looks up a country by its 3-letter ISO-3166-1 code.
func FromAlpha3(code string) (*Country, error) {
	for i := range countries {
		if countries[i].Alpha3 == code {
			return &countries[i], nil
		}
	}
	return nil, ErrUnknownCountryCode{Code: code}
}

// Is reports whether c and other name the same country (by alpha-2 code);
// both may be nil.
func (c *Country) Is(other *Country) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Alpha2 == other.Alpha2
}
