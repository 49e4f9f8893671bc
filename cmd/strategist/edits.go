package main

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/strategist/lib/edits"
)

// cmdWithEdits lets a command change the products before using them.
type cmdWithEdits struct {
	Set []string `help:"Change a field before running, as PATH=VALUE (for example financialInfo.pastRevenue.0=130). Can be repeated." placeholder:"PATH=VALUE" sep:"none"`
}

func (c *cmdWithEdits) parseEdits() ([]edits.Edit, error) {
	result := make([]edits.Edit, 0, len(c.Set))

	for _, s := range c.Set {
		path, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, errors.Errorf("invalid edit, expected PATH=VALUE: %v", s)
		}

		result = append(result, edits.Edit{Path: strings.TrimSpace(path), Value: value})
	}

	return result, nil
}
