package edits

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bloomberg/go-testgroup"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/pescuma/strategist/lib/model"
)

func newTestProduct() *model.Product {
	p := model.NewProduct("yphone")
	p.ProductInfo.Name = "yPhone"
	p.FinancialInfo.PastRevenue = [model.Years]float64{120, 150, 180}
	p.FinancialInfo.PastEBIT = [model.Years]float64{24, 30, 36}

	id := model.UUID("mwb1")
	b := model.NewMustWinBattle(&id)
	b.Title = "Win"
	p.MustWinBattles = append(p.MustWinBattles, b)

	return p
}

func TestEdits(t *testing.T) {
	testgroup.RunInParallel(t, &EditsTests{})
}

type EditsTests struct {
}

func (g *EditsTests) PastRevenue(t *testgroup.T) {
	p := newTestProduct()

	n, err := Apply(p, Edit{Path: "financialInfo.pastRevenue.1", Value: "999"})
	t.Nil(err)

	t.Equal([model.Years]float64{120, 999, 180}, n.FinancialInfo.PastRevenue)
	t.Equal([model.Years]float64{24, 30, 36}, n.FinancialInfo.PastEBIT)
	t.Equal([model.Years]float64{120, 150, 180}, p.FinancialInfo.PastRevenue)
	t.Same(p.ProductInfo, n.ProductInfo)
	t.Same(p.MarketInfo, n.MarketInfo)
}

func (g *EditsTests) Forecast(t *testgroup.T) {
	p := newTestProduct()

	n, err := Apply(p, Edit{Path: ForecastPath(ForecastEBIT, 2, model.Ambitious), Value: "42.5"})
	t.Nil(err)

	t.Equal(42.5, n.FinancialInfo.ForecastEBIT[2].Ambitious)
	t.Equal(0.0, n.FinancialInfo.ForecastEBIT[2].Realistic)
	t.Equal(0.0, p.FinancialInfo.ForecastEBIT[2].Ambitious)
}

func (g *EditsTests) EmptyNumberIsZero(t *testgroup.T) {
	p := newTestProduct()

	n, err := Apply(p, Edit{Path: PastPath(PastRevenue, 0), Value: ""})
	t.Nil(err)

	t.Equal(0.0, n.FinancialInfo.PastRevenue[0])
}

func (g *EditsTests) InvalidNumber(t *testgroup.T) {
	p := newTestProduct()

	for _, v := range []string{"abc", "NaN", "Inf", "-Inf", "1,5"} {
		n, err := Apply(p, Edit{Path: PastPath(PastRevenue, 0), Value: v})

		t.Nil(n, v)
		t.True(errors.Is(err, ErrInvalidValue), v)
	}
}

func (g *EditsTests) NegativeNumber(t *testgroup.T) {
	p := newTestProduct()

	n, err := Apply(p, Edit{Path: BattlePath("mwb1", "ebitImpact"), Value: "-3"})
	t.Nil(err)

	t.Equal(-3.0, n.MustWinBattles[0].EBITImpact)
}

func (g *EditsTests) TextIsTruncated(t *testgroup.T) {
	p := newTestProduct()

	n, err := Apply(p, Edit{Path: ProductInfoPath("aspiration"), Value: strings.Repeat("á", 450)})
	t.Nil(err)

	t.Equal(400, utf8.RuneCountInString(n.ProductInfo.Aspiration))
}

func (g *EditsTests) UnboundedText(t *testgroup.T) {
	p := newTestProduct()
	long := strings.Repeat("x", 5000)

	n, err := Apply(p, Edit{Path: ProductInfoPath("description"), Value: long})
	t.Nil(err)

	t.Equal(long, n.ProductInfo.Description)
}

func (g *EditsTests) Date(t *testgroup.T) {
	p := newTestProduct()

	n, err := Apply(p, Edit{Path: BattlePath("mwb1", "targetDate"), Value: "2025-12-31"})
	t.Nil(err)
	t.Equal("2025-12-31", n.MustWinBattles[0].TargetDate)

	n, err = Apply(n, Edit{Path: BattlePath("mwb1", "targetDate"), Value: ""})
	t.Nil(err)
	t.Equal("", n.MustWinBattles[0].TargetDate)

	_, err = Apply(n, Edit{Path: BattlePath("mwb1", "targetDate"), Value: "31/12/2025"})
	t.True(errors.Is(err, ErrInvalidValue))
}

func (g *EditsTests) Status(t *testgroup.T) {
	p := newTestProduct()

	n, err := Apply(p, Edit{Path: BattlePath("mwb1", "status"), Value: "Success"})
	t.Nil(err)
	t.Equal(model.Success, n.MustWinBattles[0].Status)
	t.Equal(model.InProgress, p.MustWinBattles[0].Status)

	_, err = Apply(p, Edit{Path: BattlePath("mwb1", "status"), Value: "Done"})
	t.True(errors.Is(err, ErrInvalidValue))
}

func (g *EditsTests) Country(t *testgroup.T) {
	p := newTestProduct()
	c := p.CompetitorLandscape.TopCompetitors[1]

	n, err := Apply(p, Edit{Path: CompetitorPath(c.ID, "hqLocation"), Value: "Germany"})
	t.Nil(err)
	t.Equal(model.Country("Germany"), n.CompetitorLandscape.TopCompetitors[1].HQLocation)
	t.Same(p.CompetitorLandscape.TopCompetitors[0], n.CompetitorLandscape.TopCompetitors[0])

	_, err = Apply(p, Edit{Path: CompetitorPath(c.ID, "hqLocation"), Value: "Atlantis"})
	t.True(errors.Is(err, ErrInvalidValue))
}

func (g *EditsTests) Customer(t *testgroup.T) {
	p := newTestProduct()
	c := p.MarketInfo.TopCustomers[0]

	n, err := Apply(p, Edit{Path: CustomerPath(c.ID, "percentageOfTotal"), Value: "12.5"})
	t.Nil(err)

	t.Equal(12.5, n.MarketInfo.TopCustomers[0].PercentageOfTotal)
	t.Same(p.MarketInfo.TopCustomers[1], n.MarketInfo.TopCustomers[1])
}

func (g *EditsTests) UnknownPaths(t *testgroup.T) {
	p := newTestProduct()

	for _, path := range []string{
		"",
		"productInfo",
		"productInfo.color",
		"financialInfo.pastRevenue.3",
		"financialInfo.pastRevenue.x",
		"financialInfo.forecastRevenue.0",
		"financialInfo.forecastRevenue.0.optimistic",
		"mustWinBattles.mwb1.owner",
		"marketInfo.topCustomers.x",
		"competitorLandscape.topCompetitors.x.size",
		"deepResearch.x",
	} {
		_, err := Apply(p, Edit{Path: path, Value: "1"})
		t.True(errors.Is(err, ErrUnknownField), path)

		_, err = Lookup(path)
		t.True(errors.Is(err, ErrUnknownField), path)
	}
}

func (g *EditsTests) UnknownItem(t *testgroup.T) {
	p := newTestProduct()

	_, err := Apply(p, Edit{Path: BattlePath("nope", "title"), Value: "x"})
	t.True(errors.Is(err, model.ErrNotFound))

	_, err = Apply(p, Edit{Path: CustomerPath("nope", "name"), Value: "x"})
	t.True(errors.Is(err, model.ErrNotFound))

	_, err = Get(p, CompetitorPath("nope", "name"))
	t.True(errors.Is(err, model.ErrNotFound))
}

func (g *EditsTests) ApplyAllIsAtomic(t *testgroup.T) {
	p := newTestProduct()

	n, err := ApplyAll(p,
		Edit{Path: ProductInfoPath("name"), Value: "Other"},
		Edit{Path: PastPath(PastEBIT, 0), Value: "x"},
	)

	t.Nil(n)
	t.NotNil(err)
	t.Equal("yPhone", p.ProductInfo.Name)

	n, err = ApplyAll(p,
		Edit{Path: ProductInfoPath("name"), Value: "Other"},
		Edit{Path: PastPath(PastEBIT, 0), Value: "1"},
	)
	t.Nil(err)
	t.Equal("Other", n.ProductInfo.Name)
	t.Equal(1.0, n.FinancialInfo.PastEBIT[0])
}

func (g *EditsTests) GetFormatsValues(t *testgroup.T) {
	p := newTestProduct()

	v, err := Get(p, PastPath(PastRevenue, 2))
	t.Nil(err)
	t.Equal("180", v)

	v, err = Get(p, BattlePath("mwb1", "status"))
	t.Nil(err)
	t.Equal("In Progress", v)

	v, err = Get(p, BattlePath("mwb1", "title"))
	t.Nil(err)
	t.Equal("Win", v)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	f, err := Lookup("competitorLandscape.topCompetitors.any.strategy")
	assert.Nil(t, err)
	assert.Equal(t, Field{Kind: LongText, MaxLength: 400}, f)

	f, err = Lookup("financialInfo.description")
	assert.Nil(t, err)
	assert.Equal(t, 2000, f.MaxLength)

	f, err = Lookup("mustWinBattles.any.status")
	assert.Nil(t, err)
	assert.Equal(t, []string{"In Progress", "Success", "Failed"}, f.Options())

	f, err = Lookup("competitorLandscape.topCompetitors.any.hqLocation")
	assert.Nil(t, err)
	assert.Len(t, f.Options(), len(model.Countries))
}
