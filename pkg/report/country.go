package report

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// UnknownCountry groups records whose address carries no country.
const UnknownCountry = "unknown"

// AddressSeparator splits the parts of an address field.
const AddressSeparator = "|"

type countryName string

var (
	_             fmt.Stringer = countryName("")
	spaceSquasher              = regexp.MustCompile(`\s+`)
)

// String implements fmt.Stringer.
func (c countryName) String() string {
	return string(c)
}

// ParseCountry takes the last part of a "street|city|region|postcode|country"
// address. Runs of white space are squashed.
func ParseCountry(address string) string {
	parts := strings.Split(address, AddressSeparator)
	country := spaceSquasher.ReplaceAllString(strings.TrimSpace(parts[len(parts)-1]), " ")
	if country == "" {
		return UnknownCountry
	}
	return country
}

// countryKeys folds country names into case-insensitive grouping keys.
// It is not safe for concurrent use.
type countryKeys struct {
	folder cases.Caser
}

func newCountryKeys() *countryKeys {
	return &countryKeys{folder: cases.Fold()}
}

func (k *countryKeys) key(country string) string {
	return k.folder.String(country)
}
