package main

import (
	"github.com/pescuma/strategist/lib/filters"
)

type cmdWithFilters struct {
	Include []string `short:"i" help:"Only products whose id or name match. Accepts * wildcards or re:REGEXP."`
	Exclude []string `short:"e" help:"Products whose id or name match are NOT used. This has preference over the included ones."`
}

func (c *cmdWithFilters) createFilter() (filters.ProductFilter, error) {
	rules := make([]string, 0, len(c.Include)+len(c.Exclude))
	rules = append(rules, c.Include...)
	for _, e := range c.Exclude {
		rules = append(rules, "-"+e)
	}

	return filters.ParseProductFilter(rules)
}
