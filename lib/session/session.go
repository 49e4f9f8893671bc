package session

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/pescuma/strategist/lib/edits"
	"github.com/pescuma/strategist/lib/model"
)

var ErrInvalidProduct = errors.New("invalid product")

// Session holds the products being edited and where the user is. All front-ends share
// one Session; every read and every replace goes through the mutex, so concurrent
// requests are applied one at a time.
type Session struct {
	mutex      sync.RWMutex
	products   *model.Products
	navigation model.Navigation
}

func New(products *model.Products) (*Session, error) {
	if products == nil || products.Len() == 0 {
		return nil, errors.New("session needs at least one product")
	}

	return &Session{
		products:   products,
		navigation: model.NewNavigation(products.DefaultID()),
	}, nil
}

func (s *Session) ListProducts() []*model.Product {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.products.List()
}

func (s *Session) GetProduct(id model.ProductID) (*model.Product, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.getProduct(id)
}

func (s *Session) getProduct(id model.ProductID) (*model.Product, error) {
	p := s.products.Get(id)
	if p == nil {
		return nil, errors.Wrapf(model.ErrNotFound, "product %v", id)
	}

	return p, nil
}

// Selected returns the product the navigation points to, together with the navigation
// itself, read at the same instant.
func (s *Session) Selected() (*model.Product, model.Navigation) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.products.Get(s.navigation.ProductID), s.navigation
}

// Export returns a copy of the current products, in selector order.
func (s *Session) Export() *model.Products {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := model.NewProducts()
	for _, p := range s.products.List() {
		_ = result.Add(p)
	}
	_ = result.SetDefault(s.products.DefaultID())

	return result
}

func (s *Session) ReplaceProduct(id model.ProductID, p *model.Product) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.replaceProduct(id, p)
}

func (s *Session) replaceProduct(id model.ProductID, p *model.Product) error {
	if !s.products.Contains(id) {
		return errors.Wrapf(model.ErrNotFound, "product %v", id)
	}

	if p == nil {
		return errors.Wrapf(ErrInvalidProduct, "nil product for %v", id)
	}

	if p.ID != id {
		return errors.Wrapf(ErrInvalidProduct, "product id %v stored as %v", p.ID, id)
	}

	err := p.Validate()
	if err != nil {
		return errors.Wrap(ErrInvalidProduct, err.Error())
	}

	return s.products.Replace(p)
}

// Update reads the product, calls f and stores what it returns, all under the same lock.
// If f fails the stored product is kept.
func (s *Session) Update(id model.ProductID, f func(*model.Product) (*model.Product, error)) (*model.Product, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	p, err := s.getProduct(id)
	if err != nil {
		return nil, err
	}

	n, err := f(p)
	if err != nil {
		return nil, err
	}

	err = s.replaceProduct(id, n)
	if err != nil {
		return nil, err
	}

	return n, nil
}

func (s *Session) Edit(id model.ProductID, es ...edits.Edit) (*model.Product, error) {
	return s.Update(id, func(p *model.Product) (*model.Product, error) {
		return edits.ApplyAll(p, es...)
	})
}

func (s *Session) AddBattle(id model.ProductID) (*model.Product, *model.MustWinBattle, error) {
	var battle *model.MustWinBattle

	p, err := s.Update(id, func(p *model.Product) (*model.Product, error) {
		var n *model.Product
		n, battle = p.AddBattle()
		return n, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return p, battle, nil
}

func (s *Session) RemoveBattle(id model.ProductID, battleID model.UUID) (*model.Product, error) {
	return s.Update(id, func(p *model.Product) (*model.Product, error) {
		return p.RemoveBattle(battleID)
	})
}

func (s *Session) Navigation() model.Navigation {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.navigation
}

// SetNavigation replaces the whole navigation state, as long as it points to a known
// product.
func (s *Session) SetNavigation(nav model.Navigation) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.products.Contains(nav.ProductID) {
		return errors.Wrapf(model.ErrNotFound, "product %v", nav.ProductID)
	}

	s.navigation = nav
	return nil
}

func (s *Session) SelectProduct(id model.ProductID) (model.Navigation, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.products.Contains(id) {
		return s.navigation, errors.Wrapf(model.ErrNotFound, "product %v", id)
	}

	s.navigation = s.navigation.SelectProduct(id)
	return s.navigation, nil
}

func (s *Session) SelectPage(page model.Page) model.Navigation {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.navigation = s.navigation.SelectPage(page)
	return s.navigation
}
