package views

import (
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pescuma/strategist/lib/model"
)

const AppTitle = "YYZ Strategy Suite"

type Header struct {
	Title    string
	Products []*ProductOption
	Pages    []*PageLink
}

type ProductOption struct {
	ID       model.ProductID
	Name     string
	Selected bool
}

type PageLink struct {
	Page   model.Page
	Value  string
	Label  string
	Active bool
}

var titleCase = cases.Title(language.English)

// PageLabel is the navigation label of a page: "Landing", "Input" or "Output".
func PageLabel(p model.Page) string {
	return titleCase.String(p.String())
}

func NewHeader(products []*model.Product, nav model.Navigation) *Header {
	return &Header{
		Title: AppTitle,
		Products: lo.Map(products, func(p *model.Product, _ int) *ProductOption {
			return &ProductOption{
				ID:       p.ID,
				Name:     p.Name(),
				Selected: p.ID == nav.ProductID,
			}
		}),
		Pages: lo.Map(model.Pages, func(p model.Page, _ int) *PageLink {
			return &PageLink{
				Page:   p,
				Value:  p.String(),
				Label:  PageLabel(p),
				Active: p == nav.Page,
			}
		}),
	}
}
