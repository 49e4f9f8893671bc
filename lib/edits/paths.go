package edits

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/strategist/lib/model"
)

const (
	ProductInfoSection         = "productInfo"
	FinancialInfoSection       = "financialInfo"
	MustWinBattlesSection      = "mustWinBattles"
	MarketInfoSection          = "marketInfo"
	CompetitorLandscapeSection = "competitorLandscape"

	TopCustomersCollection   = "topCustomers"
	TopCompetitorsCollection = "topCompetitors"

	PastRevenue     = "pastRevenue"
	PastEBIT        = "pastEbit"
	ForecastRevenue = "forecastRevenue"
	ForecastEBIT    = "forecastEbit"
)

func join(parts ...string) string {
	return strings.Join(parts, ".")
}

func ProductInfoPath(field string) string {
	return join(ProductInfoSection, field)
}

func FinancialInfoPath(field string) string {
	return join(FinancialInfoSection, field)
}

func PastPath(series string, year int) string {
	return join(FinancialInfoSection, series, strconv.Itoa(year))
}

func ForecastPath(series string, year int, scenario model.Scenario) string {
	return join(FinancialInfoSection, series, strconv.Itoa(year), scenario.String())
}

func BattlePath(id model.UUID, field string) string {
	return join(MustWinBattlesSection, string(id), field)
}

func MarketInfoPath(field string) string {
	return join(MarketInfoSection, field)
}

func CustomerPath(id model.UUID, field string) string {
	return join(MarketInfoSection, TopCustomersCollection, string(id), field)
}

func CompetitorPath(id model.UUID, field string) string {
	return join(CompetitorLandscapeSection, TopCompetitorsCollection, string(id), field)
}

type itemField[T any] struct {
	Field
	get func(*T) any
	set func(*T, any)
}

func str[T any](kind Kind, maxLength int, get func(*T) string, set func(*T, string)) itemField[T] {
	return itemField[T]{
		Field: Field{Kind: kind, MaxLength: maxLength},
		get:   func(t *T) any { return get(t) },
		set:   func(t *T, v any) { set(t, v.(string)) },
	}
}

func num[T any](get func(*T) float64, set func(*T, float64)) itemField[T] {
	return itemField[T]{
		Field: Field{Kind: Number},
		get:   func(t *T) any { return get(t) },
		set:   func(t *T, v any) { set(t, v.(float64)) },
	}
}

var productInfoFields = map[string]itemField[model.ProductInfo]{
	"name": str(Text, 0,
		func(i *model.ProductInfo) string { return i.Name },
		func(i *model.ProductInfo, v string) { i.Name = v }),
	"description": str(LongText, 0,
		func(i *model.ProductInfo) string { return i.Description },
		func(i *model.ProductInfo, v string) { i.Description = v }),
	"businessUnit": str(Text, 0,
		func(i *model.ProductInfo) string { return i.BusinessUnit },
		func(i *model.ProductInfo, v string) { i.BusinessUnit = v }),
	"aspiration": str(LongText, 400,
		func(i *model.ProductInfo) string { return i.Aspiration },
		func(i *model.ProductInfo, v string) { i.Aspiration = v }),
	"imageUrl": str(Text, 0,
		func(i *model.ProductInfo) string { return i.ImageURL },
		func(i *model.ProductInfo, v string) { i.ImageURL = v }),
}

var financialInfoFields = map[string]itemField[model.FinancialInfo]{
	"description": str(LongText, 2000,
		func(i *model.FinancialInfo) string { return i.Description },
		func(i *model.FinancialInfo, v string) { i.Description = v }),
}

var pastSeries = map[string]func(*model.FinancialInfo) *[model.Years]float64{
	PastRevenue: func(i *model.FinancialInfo) *[model.Years]float64 { return &i.PastRevenue },
	PastEBIT:    func(i *model.FinancialInfo) *[model.Years]float64 { return &i.PastEBIT },
}

var forecastSeries = map[string]func(*model.FinancialInfo) *[model.Years]model.FinancialYear{
	ForecastRevenue: func(i *model.FinancialInfo) *[model.Years]model.FinancialYear { return &i.ForecastRevenue },
	ForecastEBIT:    func(i *model.FinancialInfo) *[model.Years]model.FinancialYear { return &i.ForecastEBIT },
}

var battleFields = map[string]itemField[model.MustWinBattle]{
	"title": str(Text, 0,
		func(b *model.MustWinBattle) string { return b.Title },
		func(b *model.MustWinBattle, v string) { b.Title = v }),
	"description": str(LongText, 400,
		func(b *model.MustWinBattle) string { return b.Description },
		func(b *model.MustWinBattle, v string) { b.Description = v }),
	"salesImpact": num(
		func(b *model.MustWinBattle) float64 { return b.SalesImpact },
		func(b *model.MustWinBattle, v float64) { b.SalesImpact = v }),
	"ebitImpact": num(
		func(b *model.MustWinBattle) float64 { return b.EBITImpact },
		func(b *model.MustWinBattle, v float64) { b.EBITImpact = v }),
	"targetDate": str(Date, 0,
		func(b *model.MustWinBattle) string { return b.TargetDate },
		func(b *model.MustWinBattle, v string) { b.TargetDate = v }),
	"responsible": str(Text, 0,
		func(b *model.MustWinBattle) string { return b.Responsible },
		func(b *model.MustWinBattle, v string) { b.Responsible = v }),
	"status": {
		Field: Field{Kind: Status},
		get:   func(b *model.MustWinBattle) any { return b.Status },
		set:   func(b *model.MustWinBattle, v any) { b.Status = v.(model.BattleStatus) },
	},
}

var marketInfoFields = map[string]itemField[model.MarketInfo]{
	"definition": str(LongText, 200,
		func(i *model.MarketInfo) string { return i.Definition },
		func(i *model.MarketInfo, v string) { i.Definition = v }),
	"growthPotential": str(LongText, 1000,
		func(i *model.MarketInfo) string { return i.GrowthPotential },
		func(i *model.MarketInfo, v string) { i.GrowthPotential = v }),
}

var customerFields = map[string]itemField[model.Customer]{
	"name": str(Text, 0,
		func(c *model.Customer) string { return c.Name },
		func(c *model.Customer, v string) { c.Name = v }),
	"salesLastFY": num(
		func(c *model.Customer) float64 { return c.SalesLastFY },
		func(c *model.Customer, v float64) { c.SalesLastFY = v }),
	"percentageOfTotal": num(
		func(c *model.Customer) float64 { return c.PercentageOfTotal },
		func(c *model.Customer, v float64) { c.PercentageOfTotal = v }),
}

var competitorFields = map[string]itemField[model.Competitor]{
	"name": str(Text, 0,
		func(c *model.Competitor) string { return c.Name },
		func(c *model.Competitor, v string) { c.Name = v }),
	"hqLocation": {
		Field: Field{Kind: Country},
		get:   func(c *model.Competitor) any { return c.HQLocation },
		set:   func(c *model.Competitor, v any) { c.HQLocation = v.(model.Country) },
	},
	"sales": num(
		func(c *model.Competitor) float64 { return c.Sales },
		func(c *model.Competitor, v float64) { c.Sales = v }),
	"marketShare": num(
		func(c *model.Competitor) float64 { return c.MarketShare },
		func(c *model.Competitor, v float64) { c.MarketShare = v }),
	"strategy": str(LongText, 400,
		func(c *model.Competitor) string { return c.Strategy },
		func(c *model.Competitor, v string) { c.Strategy = v }),
	"latestMove": str(LongText, 400,
		func(c *model.Competitor) string { return c.LatestMove },
		func(c *model.Competitor, v string) { c.LatestMove = v }),
}

// target is a resolved path: the field metadata plus accessors bound to the location.
type target struct {
	Field
	get func(p *model.Product) (any, error)
	set func(p *model.Product, v any) (*model.Product, error)
}

func unknown(path string) error {
	return errors.Wrapf(ErrUnknownField, "'%v'", path)
}

func resolve(path string) (*target, error) {
	parts := strings.Split(path, ".")

	switch {
	case len(parts) == 2 && parts[0] == ProductInfoSection:
		f, ok := productInfoFields[parts[1]]
		if !ok {
			return nil, unknown(path)
		}

		return &target{
			Field: f.Field,
			get: func(p *model.Product) (any, error) {
				return f.get(p.ProductInfo), nil
			},
			set: func(p *model.Product, v any) (*model.Product, error) {
				return p.WithProductInfo(func(i *model.ProductInfo) { f.set(i, v) }), nil
			},
		}, nil

	case len(parts) == 2 && parts[0] == FinancialInfoSection:
		f, ok := financialInfoFields[parts[1]]
		if !ok {
			return nil, unknown(path)
		}

		return &target{
			Field: f.Field,
			get: func(p *model.Product) (any, error) {
				return f.get(p.FinancialInfo), nil
			},
			set: func(p *model.Product, v any) (*model.Product, error) {
				return p.WithFinancialInfo(func(i *model.FinancialInfo) { f.set(i, v) }), nil
			},
		}, nil

	case len(parts) == 3 && parts[0] == FinancialInfoSection:
		series, ok := pastSeries[parts[1]]
		if !ok {
			return nil, unknown(path)
		}

		year, err := parseYear(parts[2])
		if err != nil {
			return nil, unknown(path)
		}

		return &target{
			Field: Field{Kind: Number},
			get: func(p *model.Product) (any, error) {
				return series(p.FinancialInfo)[year], nil
			},
			set: func(p *model.Product, v any) (*model.Product, error) {
				return p.WithFinancialInfo(func(i *model.FinancialInfo) { series(i)[year] = v.(float64) }), nil
			},
		}, nil

	case len(parts) == 4 && parts[0] == FinancialInfoSection:
		series, ok := forecastSeries[parts[1]]
		if !ok {
			return nil, unknown(path)
		}

		year, err := parseYear(parts[2])
		if err != nil {
			return nil, unknown(path)
		}

		scenario, err := model.ParseScenario(parts[3])
		if err != nil {
			return nil, unknown(path)
		}

		return &target{
			Field: Field{Kind: Number},
			get: func(p *model.Product) (any, error) {
				return series(p.FinancialInfo)[year].Get(scenario), nil
			},
			set: func(p *model.Product, v any) (*model.Product, error) {
				return p.WithFinancialInfo(func(i *model.FinancialInfo) {
					s := series(i)
					s[year] = s[year].With(scenario, v.(float64))
				}), nil
			},
		}, nil

	case len(parts) == 3 && parts[0] == MustWinBattlesSection:
		id := model.UUID(parts[1])

		f, ok := battleFields[parts[2]]
		if !ok {
			return nil, unknown(path)
		}

		return &target{
			Field: f.Field,
			get: func(p *model.Product) (any, error) {
				b := p.GetBattle(id)
				if b == nil {
					return nil, errors.Wrapf(model.ErrNotFound, "battle %v", id)
				}
				return f.get(b), nil
			},
			set: func(p *model.Product, v any) (*model.Product, error) {
				return p.WithBattle(id, func(b *model.MustWinBattle) { f.set(b, v) })
			},
		}, nil

	case len(parts) == 2 && parts[0] == MarketInfoSection:
		f, ok := marketInfoFields[parts[1]]
		if !ok {
			return nil, unknown(path)
		}

		return &target{
			Field: f.Field,
			get: func(p *model.Product) (any, error) {
				return f.get(p.MarketInfo), nil
			},
			set: func(p *model.Product, v any) (*model.Product, error) {
				return p.WithMarketInfo(func(i *model.MarketInfo) { f.set(i, v) }), nil
			},
		}, nil

	case len(parts) == 4 && parts[0] == MarketInfoSection && parts[1] == TopCustomersCollection:
		id := model.UUID(parts[2])

		f, ok := customerFields[parts[3]]
		if !ok {
			return nil, unknown(path)
		}

		return &target{
			Field: f.Field,
			get: func(p *model.Product) (any, error) {
				c := p.GetCustomer(id)
				if c == nil {
					return nil, errors.Wrapf(model.ErrNotFound, "customer %v", id)
				}
				return f.get(c), nil
			},
			set: func(p *model.Product, v any) (*model.Product, error) {
				return p.WithCustomer(id, func(c *model.Customer) { f.set(c, v) })
			},
		}, nil

	case len(parts) == 4 && parts[0] == CompetitorLandscapeSection && parts[1] == TopCompetitorsCollection:
		id := model.UUID(parts[2])

		f, ok := competitorFields[parts[3]]
		if !ok {
			return nil, unknown(path)
		}

		return &target{
			Field: f.Field,
			get: func(p *model.Product) (any, error) {
				c := p.GetCompetitor(id)
				if c == nil {
					return nil, errors.Wrapf(model.ErrNotFound, "competitor %v", id)
				}
				return f.get(c), nil
			},
			set: func(p *model.Product, v any) (*model.Product, error) {
				return p.WithCompetitor(id, func(c *model.Competitor) { f.set(c, v) })
			},
		}, nil

	default:
		return nil, unknown(path)
	}
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if year < 0 || year >= model.Years {
		return 0, errors.Errorf("year out of range: %v", year)
	}
	return year, nil
}
