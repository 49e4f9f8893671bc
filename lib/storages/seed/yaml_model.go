package seed

import (
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/strategist/lib/edits"
	"github.com/pescuma/strategist/lib/model"
)

type yamlSeed struct {
	Default  string         `yaml:"default,omitempty"`
	Products []*yamlProduct `yaml:"products"`
}

type yamlProduct struct {
	ID                  string                  `yaml:"id"`
	ProductInfo         yamlProductInfo         `yaml:"productInfo"`
	FinancialInfo       yamlFinancialInfo       `yaml:"financialInfo"`
	MustWinBattles      []*yamlBattle           `yaml:"mustWinBattles"`
	MarketInfo          yamlMarketInfo          `yaml:"marketInfo"`
	CompetitorLandscape yamlCompetitorLandscape `yaml:"competitorLandscape"`
}

type yamlProductInfo struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	BusinessUnit string `yaml:"businessUnit"`
	Aspiration   string `yaml:"aspiration"`
	ImageURL     string `yaml:"imageUrl"`
}

type yamlFinancialInfo struct {
	PastRevenue     []float64            `yaml:"pastRevenue,flow"`
	ForecastRevenue []*yamlFinancialYear `yaml:"forecastRevenue"`
	PastEBIT        []float64            `yaml:"pastEbit,flow"`
	ForecastEBIT    []*yamlFinancialYear `yaml:"forecastEbit"`
	Description     string               `yaml:"description"`
}

type yamlFinancialYear struct {
	Conservative float64 `yaml:"conservative"`
	Realistic    float64 `yaml:"realistic"`
	Ambitious    float64 `yaml:"ambitious"`
}

type yamlBattle struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	SalesImpact float64 `yaml:"salesImpact"`
	EBITImpact  float64 `yaml:"ebitImpact"`
	TargetDate  string  `yaml:"targetDate"`
	Responsible string  `yaml:"responsible"`
	Status      string  `yaml:"status"`
}

type yamlMarketInfo struct {
	Definition      string          `yaml:"definition"`
	GrowthPotential string          `yaml:"growthPotential"`
	TopCustomers    []*yamlCustomer `yaml:"topCustomers"`
}

type yamlCustomer struct {
	ID                string  `yaml:"id"`
	Name              string  `yaml:"name"`
	SalesLastFY       float64 `yaml:"salesLastFY"`
	PercentageOfTotal float64 `yaml:"percentageOfTotal"`
}

type yamlCompetitorLandscape struct {
	TopCompetitors []*yamlCompetitor `yaml:"topCompetitors"`
}

type yamlCompetitor struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	HQLocation  string  `yaml:"hqLocation"`
	Sales       float64 `yaml:"sales"`
	MarketShare float64 `yaml:"marketShare"`
	Strategy    string  `yaml:"strategy"`
	LatestMove  string  `yaml:"latestMove"`
}

func (s *yamlSeed) toModel() (*model.Products, error) {
	result := model.NewProducts()

	for i, yp := range s.Products {
		if yp == nil {
			return nil, errors.Errorf("empty product at %v", i)
		}

		p, err := yp.toModel()
		if err != nil {
			return nil, errors.Wrapf(err, "product '%v'", yp.ID)
		}

		err = result.Add(p)
		if err != nil {
			return nil, err
		}
	}

	if s.Default != "" {
		err := result.SetDefault(model.ProductID(s.Default))
		if err != nil {
			return nil, errors.Wrap(err, "default product")
		}
	}

	return result, nil
}

func (yp *yamlProduct) toModel() (*model.Product, error) {
	if yp.ID == "" {
		return nil, errors.New("missing id")
	}

	result := model.NewProduct(model.ProductID(yp.ID))

	result.ProductInfo = &model.ProductInfo{
		Name:         yp.ProductInfo.Name,
		Description:  yp.ProductInfo.Description,
		BusinessUnit: yp.ProductInfo.BusinessUnit,
		Aspiration:   yp.ProductInfo.Aspiration,
		ImageURL:     yp.ProductInfo.ImageURL,
	}

	fi, err := yp.FinancialInfo.toModel()
	if err != nil {
		return nil, err
	}
	result.FinancialInfo = fi

	for i, yb := range yp.MustWinBattles {
		if yb == nil {
			return nil, errors.Errorf("empty battle at %v", i)
		}

		b, err := yb.toModel()
		if err != nil {
			return nil, errors.Wrapf(err, "battle '%v'", yb.ID)
		}

		result.MustWinBattles = append(result.MustWinBattles, b)
	}

	mi, err := yp.MarketInfo.toModel()
	if err != nil {
		return nil, err
	}
	result.MarketInfo = mi

	cl, err := yp.CompetitorLandscape.toModel()
	if err != nil {
		return nil, err
	}
	result.CompetitorLandscape = cl

	err = result.Validate()
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (yf *yamlFinancialInfo) toModel() (*model.FinancialInfo, error) {
	result := model.NewFinancialInfo()
	result.Description = yf.Description

	err := copyPast(&result.PastRevenue, yf.PastRevenue, "pastRevenue")
	if err != nil {
		return nil, err
	}

	err = copyPast(&result.PastEBIT, yf.PastEBIT, "pastEbit")
	if err != nil {
		return nil, err
	}

	err = copyForecast(&result.ForecastRevenue, yf.ForecastRevenue, "forecastRevenue")
	if err != nil {
		return nil, err
	}

	err = copyForecast(&result.ForecastEBIT, yf.ForecastEBIT, "forecastEbit")
	if err != nil {
		return nil, err
	}

	return result, nil
}

func copyPast(target *[model.Years]float64, values []float64, name string) error {
	if len(values) != model.Years {
		return errors.Errorf("%v: expected %v values, got %v", name, model.Years, len(values))
	}

	copy(target[:], values)
	return nil
}

func copyForecast(target *[model.Years]model.FinancialYear, values []*yamlFinancialYear, name string) error {
	if len(values) != model.Years {
		return errors.Errorf("%v: expected %v values, got %v", name, model.Years, len(values))
	}

	for i, v := range values {
		if v == nil {
			return errors.Errorf("%v: empty year at %v", name, i)
		}

		target[i] = model.FinancialYear{
			Conservative: v.Conservative,
			Realistic:    v.Realistic,
			Ambitious:    v.Ambitious,
		}
	}

	return nil
}

func (yb *yamlBattle) toModel() (*model.MustWinBattle, error) {
	if yb.ID == "" {
		return nil, errors.New("missing id")
	}

	status, err := model.ParseBattleStatus(yb.Status)
	if err != nil {
		return nil, err
	}

	if yb.TargetDate != "" {
		_, err = time.Parse(edits.DateLayout, yb.TargetDate)
		if err != nil {
			return nil, errors.Errorf("invalid target date: %v", yb.TargetDate)
		}
	}

	id := model.UUID(yb.ID)
	result := model.NewMustWinBattle(&id)
	result.Title = yb.Title
	result.Description = yb.Description
	result.SalesImpact = yb.SalesImpact
	result.EBITImpact = yb.EBITImpact
	result.TargetDate = yb.TargetDate
	result.Responsible = yb.Responsible
	result.Status = status
	return result, nil
}

func (ym *yamlMarketInfo) toModel() (*model.MarketInfo, error) {
	if len(ym.TopCustomers) != model.TopCustomers {
		return nil, errors.Errorf("topCustomers: expected %v customers, got %v", model.TopCustomers, len(ym.TopCustomers))
	}

	result := model.NewMarketInfo()
	result.Definition = ym.Definition
	result.GrowthPotential = ym.GrowthPotential

	for i, yc := range ym.TopCustomers {
		if yc == nil || yc.ID == "" {
			return nil, errors.Errorf("topCustomers: customer without id at %v", i)
		}

		id := model.UUID(yc.ID)
		c := model.NewCustomer(&id)
		c.Name = yc.Name
		c.SalesLastFY = yc.SalesLastFY
		c.PercentageOfTotal = yc.PercentageOfTotal
		result.TopCustomers[i] = c
	}

	return result, nil
}

func (yl *yamlCompetitorLandscape) toModel() (*model.CompetitorLandscape, error) {
	if len(yl.TopCompetitors) != model.TopCompetitors {
		return nil, errors.Errorf("topCompetitors: expected %v competitors, got %v", model.TopCompetitors, len(yl.TopCompetitors))
	}

	result := model.NewCompetitorLandscape()

	for i, yc := range yl.TopCompetitors {
		if yc == nil || yc.ID == "" {
			return nil, errors.Errorf("topCompetitors: competitor without id at %v", i)
		}

		country, err := model.ParseCountry(yc.HQLocation)
		if err != nil {
			return nil, errors.Wrapf(err, "competitor '%v'", yc.ID)
		}

		id := model.UUID(yc.ID)
		c := model.NewCompetitor(&id)
		c.Name = yc.Name
		c.HQLocation = country
		c.Sales = yc.Sales
		c.MarketShare = yc.MarketShare
		c.Strategy = yc.Strategy
		c.LatestMove = yc.LatestMove
		result.TopCompetitors[i] = c
	}

	return result, nil
}

// newYamlSeed is the inverse of toModel, used to export the current state.
func newYamlSeed(products *model.Products) *yamlSeed {
	return &yamlSeed{
		Default:  string(products.DefaultID()),
		Products: lo.Map(products.List(), func(p *model.Product, _ int) *yamlProduct { return newYamlProduct(p) }),
	}
}

func newYamlProduct(p *model.Product) *yamlProduct {
	fy := func(y model.FinancialYear, _ int) *yamlFinancialYear {
		return &yamlFinancialYear{Conservative: y.Conservative, Realistic: y.Realistic, Ambitious: y.Ambitious}
	}

	return &yamlProduct{
		ID: string(p.ID),
		ProductInfo: yamlProductInfo{
			Name:         p.ProductInfo.Name,
			Description:  p.ProductInfo.Description,
			BusinessUnit: p.ProductInfo.BusinessUnit,
			Aspiration:   p.ProductInfo.Aspiration,
			ImageURL:     p.ProductInfo.ImageURL,
		},
		FinancialInfo: yamlFinancialInfo{
			PastRevenue:     p.FinancialInfo.PastRevenue[:],
			ForecastRevenue: lo.Map(p.FinancialInfo.ForecastRevenue[:], fy),
			PastEBIT:        p.FinancialInfo.PastEBIT[:],
			ForecastEBIT:    lo.Map(p.FinancialInfo.ForecastEBIT[:], fy),
			Description:     p.FinancialInfo.Description,
		},
		MustWinBattles: lo.Map(p.MustWinBattles, func(b *model.MustWinBattle, _ int) *yamlBattle {
			return &yamlBattle{
				ID:          string(b.ID),
				Title:       b.Title,
				Description: b.Description,
				SalesImpact: b.SalesImpact,
				EBITImpact:  b.EBITImpact,
				TargetDate:  b.TargetDate,
				Responsible: b.Responsible,
				Status:      b.Status.String(),
			}
		}),
		MarketInfo: yamlMarketInfo{
			Definition:      p.MarketInfo.Definition,
			GrowthPotential: p.MarketInfo.GrowthPotential,
			TopCustomers: lo.Map(p.MarketInfo.TopCustomers[:], func(c *model.Customer, _ int) *yamlCustomer {
				return &yamlCustomer{
					ID:                string(c.ID),
					Name:              c.Name,
					SalesLastFY:       c.SalesLastFY,
					PercentageOfTotal: c.PercentageOfTotal,
				}
			}),
		},
		CompetitorLandscape: yamlCompetitorLandscape{
			TopCompetitors: lo.Map(p.CompetitorLandscape.TopCompetitors[:], func(c *model.Competitor, _ int) *yamlCompetitor {
				return &yamlCompetitor{
					ID:          string(c.ID),
					Name:        c.Name,
					HQLocation:  c.HQLocation.String(),
					Sales:       c.Sales,
					MarketShare: c.MarketShare,
					Strategy:    c.Strategy,
					LatestMove:  c.LatestMove,
				}
			}),
		},
	}
}
