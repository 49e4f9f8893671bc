package views

import "github.com/pescuma/strategist/lib/model"

// Landing is the read-only summary shown right after a product is selected.
type Landing struct {
	Name        string
	Description string
	Aspiration  string
	ImageURL    string
}

func NewLanding(p *model.Product) *Landing {
	return &Landing{
		Name:        p.ProductInfo.Name,
		Description: p.ProductInfo.Description,
		Aspiration:  p.ProductInfo.Aspiration,
		ImageURL:    p.ProductInfo.ImageURL,
	}
}
