package filters

import (
	"strings"

	"github.com/samber/lo"

	"github.com/pescuma/strategist/lib/model"
)

type ProductFilter func(*model.Product) bool

// ParseProductFilter builds a filter from rules matched against the product id and name.
// Rules starting with '-' exclude. No rules means everything passes.
func ParseProductFilter(rules []string) (ProductFilter, error) {
	type rule struct {
		match func(string) bool
		usage UsageType
	}

	parsed := make([]rule, 0, len(rules))
	for _, r := range rules {
		usage := Include
		if strings.HasPrefix(r, "-") {
			usage = Exclude
			r = r[1:]
		}

		match, err := ParseStringFilter(r)
		if err != nil {
			return nil, err
		}

		parsed = append(parsed, rule{match, usage})
	}

	hasIncludes := lo.ContainsBy(parsed, func(r rule) bool { return r.usage == Include })

	return func(p *model.Product) bool {
		result := DontCare
		for _, r := range parsed {
			if r.match(string(p.ID)) || r.match(p.Name()) {
				result = result.Merge(r.usage)
			}
		}
		return result.DecideFor(hasIncludes)
	}, nil
}

func (f ProductFilter) Apply(products []*model.Product) []*model.Product {
	return lo.Filter(products, func(p *model.Product, _ int) bool { return f(p) })
}
