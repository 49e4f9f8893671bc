package model

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Product is the root aggregate. Values are never modified after creation: every With*
// method returns a new Product that shares all sections it did not touch.
type Product struct {
	ID                  ProductID
	ProductInfo         *ProductInfo
	FinancialInfo       *FinancialInfo
	MustWinBattles      []*MustWinBattle
	MarketInfo          *MarketInfo
	CompetitorLandscape *CompetitorLandscape
}

func NewProduct(id ProductID) *Product {
	return &Product{
		ID:                  id,
		ProductInfo:         NewProductInfo(),
		FinancialInfo:       NewFinancialInfo(),
		MustWinBattles:      []*MustWinBattle{},
		MarketInfo:          NewMarketInfo(),
		CompetitorLandscape: NewCompetitorLandscape(),
	}
}

func (p *Product) String() string {
	return fmt.Sprintf("%v[%v]", p.ProductInfo.Name, p.ID)
}

func (p *Product) Name() string {
	return p.ProductInfo.Name
}

// Validate checks the structural invariants: all sections present, every fixed slot
// filled and item ids unique inside each collection.
func (p *Product) Validate() error {
	switch {
	case p.ID == "":
		return errors.New("product without id")
	case !validID(string(p.ID)):
		return errors.Errorf("product %v: id can not contain '.', '/', '?', '#' or spaces", p.ID)
	case p.ProductInfo == nil:
		return errors.Errorf("product %v: missing product info", p.ID)
	case p.FinancialInfo == nil:
		return errors.Errorf("product %v: missing financial info", p.ID)
	case p.MarketInfo == nil:
		return errors.Errorf("product %v: missing market info", p.ID)
	case p.CompetitorLandscape == nil:
		return errors.Errorf("product %v: missing competitor landscape", p.ID)
	}

	battleIDs := make(map[UUID]bool, len(p.MustWinBattles))
	for i, b := range p.MustWinBattles {
		if b == nil {
			return errors.Errorf("product %v: empty battle at %v", p.ID, i)
		}
		if !validID(string(b.ID)) || battleIDs[b.ID] {
			return errors.Errorf("product %v: invalid or duplicated battle id '%v'", p.ID, b.ID)
		}
		battleIDs[b.ID] = true
	}

	customerIDs := make(map[UUID]bool, TopCustomers)
	for i, c := range p.MarketInfo.TopCustomers {
		if c == nil {
			return errors.Errorf("product %v: empty customer at %v", p.ID, i)
		}
		if !validID(string(c.ID)) || customerIDs[c.ID] {
			return errors.Errorf("product %v: invalid or duplicated customer id '%v'", p.ID, c.ID)
		}
		customerIDs[c.ID] = true
	}

	competitorIDs := make(map[UUID]bool, TopCompetitors)
	for i, c := range p.CompetitorLandscape.TopCompetitors {
		if c == nil {
			return errors.Errorf("product %v: empty competitor at %v", p.ID, i)
		}
		if !validID(string(c.ID)) || competitorIDs[c.ID] {
			return errors.Errorf("product %v: invalid or duplicated competitor id '%v'", p.ID, c.ID)
		}
		competitorIDs[c.ID] = true
	}

	return nil
}

func (p *Product) WithProductInfo(update func(info *ProductInfo)) *Product {
	info := *p.ProductInfo
	update(&info)

	result := *p
	result.ProductInfo = &info
	return &result
}

func (p *Product) WithFinancialInfo(update func(info *FinancialInfo)) *Product {
	info := *p.FinancialInfo
	update(&info)

	result := *p
	result.FinancialInfo = &info
	return &result
}

// WithMarketInfo copies the market section. The customers array holds pointers, so
// customers are still shared; use WithCustomer to change one of them.
func (p *Product) WithMarketInfo(update func(info *MarketInfo)) *Product {
	info := *p.MarketInfo
	update(&info)

	result := *p
	result.MarketInfo = &info
	return &result
}

func (p *Product) BattleIndex(id UUID) int {
	_, i, ok := lo.FindIndexOf(p.MustWinBattles, func(b *MustWinBattle) bool {
		return b.ID == id
	})
	if !ok {
		return -1
	}
	return i
}

func (p *Product) GetBattle(id UUID) *MustWinBattle {
	i := p.BattleIndex(id)
	if i < 0 {
		return nil
	}
	return p.MustWinBattles[i]
}

func (p *Product) WithBattle(id UUID, update func(battle *MustWinBattle)) (*Product, error) {
	i := p.BattleIndex(id)
	if i < 0 {
		return nil, errors.Wrapf(ErrNotFound, "battle %v", id)
	}

	battle := *p.MustWinBattles[i]
	update(&battle)

	battles := slices.Clone(p.MustWinBattles)
	battles[i] = &battle

	result := *p
	result.MustWinBattles = battles
	return &result, nil
}

// AddBattle appends a new battle with a fresh id and default values.
func (p *Product) AddBattle() (*Product, *MustWinBattle) {
	battle := NewMustWinBattle(nil)
	for p.BattleIndex(battle.ID) >= 0 {
		battle = NewMustWinBattle(nil)
	}

	battles := make([]*MustWinBattle, 0, len(p.MustWinBattles)+1)
	battles = append(battles, p.MustWinBattles...)
	battles = append(battles, battle)

	result := *p
	result.MustWinBattles = battles
	return &result, battle
}

func (p *Product) RemoveBattle(id UUID) (*Product, error) {
	i := p.BattleIndex(id)
	if i < 0 {
		return nil, errors.Wrapf(ErrNotFound, "battle %v", id)
	}

	return p.RemoveBattleAt(i)
}

func (p *Product) RemoveBattleAt(index int) (*Product, error) {
	if index < 0 || index >= len(p.MustWinBattles) {
		return nil, errors.Wrapf(ErrNotFound, "battle at %v", index)
	}

	battles := make([]*MustWinBattle, 0, len(p.MustWinBattles)-1)
	battles = append(battles, p.MustWinBattles[:index]...)
	battles = append(battles, p.MustWinBattles[index+1:]...)

	result := *p
	result.MustWinBattles = battles
	return &result, nil
}

func (p *Product) GetCustomer(id UUID) *Customer {
	i := p.MarketInfo.CustomerIndex(id)
	if i < 0 {
		return nil
	}
	return p.MarketInfo.TopCustomers[i]
}

func (p *Product) WithCustomer(id UUID, update func(customer *Customer)) (*Product, error) {
	i := p.MarketInfo.CustomerIndex(id)
	if i < 0 {
		return nil, errors.Wrapf(ErrNotFound, "customer %v", id)
	}

	customer := *p.MarketInfo.TopCustomers[i]
	update(&customer)

	return p.WithMarketInfo(func(info *MarketInfo) {
		info.TopCustomers[i] = &customer
	}), nil
}

func (p *Product) GetCompetitor(id UUID) *Competitor {
	i := p.CompetitorLandscape.CompetitorIndex(id)
	if i < 0 {
		return nil
	}
	return p.CompetitorLandscape.TopCompetitors[i]
}

func (p *Product) WithCompetitor(id UUID, update func(competitor *Competitor)) (*Product, error) {
	i := p.CompetitorLandscape.CompetitorIndex(id)
	if i < 0 {
		return nil, errors.Wrapf(ErrNotFound, "competitor %v", id)
	}

	competitor := *p.CompetitorLandscape.TopCompetitors[i]
	update(&competitor)

	landscape := *p.CompetitorLandscape
	landscape.TopCompetitors[i] = &competitor

	result := *p
	result.CompetitorLandscape = &landscape
	return &result, nil
}
