package model

import (
	"strings"

	"github.com/pkg/errors"
)

type Page int

const (
	LandingPage Page = iota
	InputPage
	OutputPage
)

var Pages = []Page{LandingPage, InputPage, OutputPage}

func (p Page) String() string {
	switch p {
	case LandingPage:
		return "landing"
	case InputPage:
		return "input"
	case OutputPage:
		return "output"
	default:
		return "<unknown>"
	}
}

func ParsePage(s string) (Page, error) {
	for _, p := range Pages {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}

	return 0, errors.Errorf("unknown page: %v", s)
}

// Navigation is the pair (selected product, active page). It is a value: transitions
// return a new Navigation.
type Navigation struct {
	ProductID ProductID
	Page      Page
}

func NewNavigation(productID ProductID) Navigation {
	return Navigation{
		ProductID: productID,
		Page:      LandingPage,
	}
}

// SelectProduct always goes back to the landing page, even if the product did not change.
func (n Navigation) SelectProduct(productID ProductID) Navigation {
	return Navigation{
		ProductID: productID,
		Page:      LandingPage,
	}
}

func (n Navigation) SelectPage(page Page) Navigation {
	n.Page = page
	return n
}
