package model

import (
	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
)

type Country string

// Countries lists the allowed competitor headquarters, in the order they are offered.
var Countries = []Country{
	"United States", "China", "Japan", "Germany", "United Kingdom",
	"India", "France", "Italy", "Brazil", "Canada",
	"South Korea", "Russia", "Australia", "Spain", "Mexico",
}

var knownCountries = set.From(Countries)

func (c Country) String() string {
	return string(c)
}

func (c Country) IsKnown() bool {
	return knownCountries.Contains(c)
}

func ParseCountry(s string) (Country, error) {
	c := Country(s)
	if !c.IsKnown() {
		return "", errors.Errorf("unknown country: %v", s)
	}

	return c, nil
}
