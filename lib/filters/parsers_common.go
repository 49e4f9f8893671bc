package filters

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ParseStringFilter accepts an exact (case-insensitive) name, a glob with '*' or a
// regular expression prefixed with 're:'. An empty rule matches everything.
func ParseStringFilter(rule string) (func(string) bool, error) {
	rule = strings.TrimSpace(rule)

	switch {
	case rule == "":
		return func(s string) bool {
			return true
		}, nil

	case strings.HasPrefix(rule, "re:"):
		re, err := regexp.Compile("(?i)" + strings.TrimPrefix(rule, "re:"))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid RE: %v", rule)
		}

		return re.MatchString, nil

	case strings.Contains(rule, "*"):
		filterRE := regexp.QuoteMeta(rule)
		filterRE = strings.ReplaceAll(filterRE, `\*`, `.*`)

		re, err := regexp.Compile("(?i)^" + filterRE + "$")
		if err != nil {
			return nil, errors.Wrapf(err, "invalid filter: %v", rule)
		}

		return re.MatchString, nil

	default:
		return func(s string) bool {
			return strings.EqualFold(s, rule)
		}, nil
	}
}
