package views

import (
	"html/template"

	"github.com/samber/lo"

	"github.com/pescuma/strategist/lib/filters"
	"github.com/pescuma/strategist/lib/model"
)

// Report is the read-only output page. All cards are filled; front-ends show the one of
// the active tab.
type Report struct {
	Tab  Tab
	Tabs []*TabLink

	Product      *ProductCard
	Financial    *FinancialCard
	Battles      *BattlesCard
	Market       *MarketCard
	Competitors  *CompetitorsCard
	DeepResearch *DeepResearchCard
}

type TabLink struct {
	Tab    Tab
	Value  string
	Label  string
	Active bool
}

type ProductCard struct {
	Name         string
	BusinessUnit string
	Description  string
	Aspiration   string
	ImageURL     string
}

type Chart struct {
	Title    string
	ImageURL string
}

type FinancialCard struct {
	Charts      []*Chart
	Series      []*FinancialSeries
	Description string
}

// FinancialSeries holds the numbers of one metric, already formatted: the past years and
// one forecast line per scenario.
type FinancialSeries struct {
	Title     string
	Past      []string
	Forecasts []*ForecastLine
}

type ForecastLine struct {
	Scenario string
	Values   []string
}

type BattlesCard struct {
	Filter        filters.BattleStatusFilter
	FilterOptions []*FilterOption
	Rows          []*BattleRow
	Total         int
}

type FilterOption struct {
	Value    string
	Selected bool
}

type BattleRow struct {
	ID          model.UUID
	Title       string
	Description string
	SalesImpact string
	EBITImpact  string
	TargetDate  string
	Responsible string
	Status      string
	StatusValue model.BattleStatus
	StatusClass string
}

type MarketCard struct {
	Definition      string
	GrowthPotential string
	Customers       []*CustomerRow
}

type CustomerRow struct {
	Name  string
	Sales string
	Share string
}

type CompetitorsCard struct {
	Rows []*CompetitorRow
}

type CompetitorRow struct {
	Name        string
	HQLocation  string
	Sales       string
	MarketShare string
	Strategy    string
	LatestMove  string
}

type DeepResearchCard struct {
	Title    string
	Markdown string
	HTML     template.HTML
}

const (
	revenueChartURL = "https://placehold.co/600x300/e9f5ff/1d4ed8?text=Revenue+Chart"
	ebitChartURL    = "https://placehold.co/600x300/e6f9f1/059669?text=EBIT+Chart"
)

func NewReport(p *model.Product, tab Tab, filter filters.BattleStatusFilter) (*Report, error) {
	research, err := NewDeepResearchCard(p)
	if err != nil {
		return nil, err
	}

	return &Report{
		Tab: tab,
		Tabs: lo.Map(Tabs, func(t Tab, _ int) *TabLink {
			return &TabLink{Tab: t, Value: t.String(), Label: t.Label(), Active: t == tab}
		}),
		Product:      newProductCard(p),
		Financial:    newFinancialCard(p),
		Battles:      newBattlesCard(p, filter),
		Market:       newMarketCard(p),
		Competitors:  newCompetitorsCard(p),
		DeepResearch: research,
	}, nil
}

func newProductCard(p *model.Product) *ProductCard {
	return &ProductCard{
		Name:         p.ProductInfo.Name,
		BusinessUnit: p.ProductInfo.BusinessUnit,
		Description:  p.ProductInfo.Description,
		Aspiration:   p.ProductInfo.Aspiration,
		ImageURL:     p.ProductInfo.ImageURL,
	}
}

func newFinancialCard(p *model.Product) *FinancialCard {
	fi := p.FinancialInfo

	return &FinancialCard{
		Charts: []*Chart{
			{Title: "Revenue: Past & Forecast ($M)", ImageURL: revenueChartURL},
			{Title: "EBIT: Past & Forecast ($M)", ImageURL: ebitChartURL},
		},
		Series: []*FinancialSeries{
			newFinancialSeries("Sales Revenue ($M)", fi.PastRevenue, fi.ForecastRevenue),
			newFinancialSeries("EBIT ($M)", fi.PastEBIT, fi.ForecastEBIT),
		},
		Description: fi.Description,
	}
}

func newFinancialSeries(title string, past [model.Years]float64, forecast [model.Years]model.FinancialYear) *FinancialSeries {
	return &FinancialSeries{
		Title: title,
		Past:  lo.Map(past[:], func(v float64, _ int) string { return FormatNumber(v) }),
		Forecasts: lo.Map(model.Scenarios, func(s model.Scenario, _ int) *ForecastLine {
			return &ForecastLine{
				Scenario: titleCase.String(s.String()),
				Values:   lo.Map(forecast[:], func(y model.FinancialYear, _ int) string { return FormatNumber(y.Get(s)) }),
			}
		}),
	}
}

func newBattlesCard(p *model.Product, filter filters.BattleStatusFilter) *BattlesCard {
	return &BattlesCard{
		Filter: filter,
		FilterOptions: lo.Map(filters.BattleStatusFilters, func(f filters.BattleStatusFilter, _ int) *FilterOption {
			return &FilterOption{Value: f.String(), Selected: f == filter}
		}),
		Rows: lo.Map(filter.Apply(p.MustWinBattles), func(b *model.MustWinBattle, _ int) *BattleRow {
			return &BattleRow{
				ID:          b.ID,
				Title:       b.Title,
				Description: b.Description,
				SalesImpact: FormatNumber(b.SalesImpact),
				EBITImpact:  FormatNumber(b.EBITImpact),
				TargetDate:  b.TargetDate,
				Responsible: b.Responsible,
				Status:      b.Status.String(),
				StatusValue: b.Status,
				StatusClass: StatusClass(b.Status),
			}
		}),
		Total: len(p.MustWinBattles),
	}
}

func newMarketCard(p *model.Product) *MarketCard {
	return &MarketCard{
		Definition:      p.MarketInfo.Definition,
		GrowthPotential: p.MarketInfo.GrowthPotential,
		Customers: lo.Map(p.MarketInfo.TopCustomers[:], func(c *model.Customer, _ int) *CustomerRow {
			return &CustomerRow{
				Name:  c.Name,
				Sales: FormatMillions(c.SalesLastFY),
				Share: FormatPercentage(c.PercentageOfTotal),
			}
		}),
	}
}

func newCompetitorsCard(p *model.Product) *CompetitorsCard {
	return &CompetitorsCard{
		Rows: lo.Map(p.CompetitorLandscape.TopCompetitors[:], func(c *model.Competitor, _ int) *CompetitorRow {
			return &CompetitorRow{
				Name:        c.Name,
				HQLocation:  c.HQLocation.String(),
				Sales:       FormatNumber(c.Sales),
				MarketShare: FormatPercentage(c.MarketShare),
				Strategy:    c.Strategy,
				LatestMove:  c.LatestMove,
			}
		}),
	}
}
