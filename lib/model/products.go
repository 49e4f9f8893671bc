package model

import "github.com/pkg/errors"

// Products is the set of products keyed by id. List order is insertion order, which is
// the order shown in the product selector.
type Products struct {
	byID      map[ProductID]*Product
	order     []ProductID
	defaultID ProductID
}

func NewProducts() *Products {
	return &Products{
		byID: map[ProductID]*Product{},
	}
}

func (ps *Products) Add(p *Product) error {
	if _, ok := ps.byID[p.ID]; ok {
		return errors.Errorf("duplicated product id: %v", p.ID)
	}

	ps.byID[p.ID] = p
	ps.order = append(ps.order, p.ID)
	return nil
}

// Replace swaps the product stored under p.ID, keeping its position.
func (ps *Products) Replace(p *Product) error {
	if _, ok := ps.byID[p.ID]; !ok {
		return errors.Wrapf(ErrNotFound, "product %v", p.ID)
	}

	ps.byID[p.ID] = p
	return nil
}

func (ps *Products) Get(id ProductID) *Product {
	return ps.byID[id]
}

func (ps *Products) Contains(id ProductID) bool {
	_, ok := ps.byID[id]
	return ok
}

func (ps *Products) Len() int {
	return len(ps.order)
}

func (ps *Products) List() []*Product {
	result := make([]*Product, 0, len(ps.order))
	for _, id := range ps.order {
		result = append(result, ps.byID[id])
	}
	return result
}

func (ps *Products) SetDefault(id ProductID) error {
	if !ps.Contains(id) {
		return errors.Wrapf(ErrNotFound, "product %v", id)
	}

	ps.defaultID = id
	return nil
}

// DefaultID returns the configured default, or the first product when none was set.
func (ps *Products) DefaultID() ProductID {
	if ps.defaultID != "" {
		return ps.defaultID
	}
	if len(ps.order) == 0 {
		return ""
	}
	return ps.order[0]
}
