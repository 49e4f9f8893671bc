package model

type ProductInfo struct {
	Name         string
	Description  string
	BusinessUnit string
	Aspiration   string
	ImageURL     string
}

func NewProductInfo() *ProductInfo {
	return &ProductInfo{}
}
