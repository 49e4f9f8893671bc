package seed

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/strategist/lib/consoles"
	"github.com/pescuma/strategist/lib/model"
)

func newConsole() consoles.Console {
	return consoles.NewWriterConsole(&bytes.Buffer{})
}

func TestEmbeddedSeed(t *testing.T) {
	t.Parallel()

	s := NewEmbeddedStorage(newConsole())
	defer s.Close()

	products, err := s.LoadProducts()
	require.Nil(t, err)

	assert.Equal(t, []model.ProductID{"yphone", "ytablet", "ywatch"},
		lo.Map(products.List(), func(p *model.Product, _ int) model.ProductID { return p.ID }))
	assert.Equal(t, model.ProductID("yphone"), products.DefaultID())

	for _, p := range products.List() {
		assert.Nil(t, p.Validate(), p.ID)
		assert.Len(t, p.MustWinBattles, 3, p.ID)
		assert.Equal(t, "https://picsum.photos/seed/"+string(p.ID)+"/800/600", p.ProductInfo.ImageURL)
	}
}

func TestEmbeddedSeedValues(t *testing.T) {
	t.Parallel()

	products, err := NewEmbeddedStorage(newConsole()).LoadProducts()
	require.Nil(t, err)

	yphone := products.Get("yphone")
	assert.Equal(t, "YPhone", yphone.ProductInfo.Name)
	assert.Equal(t, "Mobile Devices", yphone.ProductInfo.BusinessUnit)
	assert.Equal(t, [model.Years]float64{120, 150, 180}, yphone.FinancialInfo.PastRevenue)
	assert.Equal(t, [model.Years]float64{24, 30, 36}, yphone.FinancialInfo.PastEBIT)
	assert.Equal(t, model.FinancialYear{Conservative: 260, Realistic: 290, Ambitious: 320}, yphone.FinancialInfo.ForecastRevenue[2])
	assert.Equal(t, "Achieve #1 in Customer Satisfaction", yphone.MustWinBattles[2].Title)
	assert.Equal(t, model.Success, yphone.MustWinBattles[2].Status)
	assert.Equal(t, 27.8, yphone.MarketInfo.TopCustomers[0].PercentageOfTotal)
	assert.Equal(t, model.Country("South Korea"), yphone.CompetitorLandscape.TopCompetitors[1].HQLocation)

	ytablet := products.Get("ytablet")
	assert.Equal(t, [model.Years]float64{80, 95, 110}, ytablet.FinancialInfo.PastRevenue)
	assert.Equal(t, model.Failed, ytablet.MustWinBattles[2].Status)
	assert.True(t, strings.Contains(ytablet.MustWinBattles[2].Description, `"Tablet as a Laptop"`))

	ywatch := products.Get("ywatch")
	assert.Equal(t, [model.Years]float64{5, 9, 13}, ywatch.FinancialInfo.PastEBIT)
	assert.Equal(t, "Wearables & Health", ywatch.ProductInfo.BusinessUnit)
}

func TestLoadIsIndependent(t *testing.T) {
	t.Parallel()

	s := NewEmbeddedStorage(newConsole())

	a, err := s.LoadProducts()
	require.Nil(t, err)
	b, err := s.LoadProducts()
	require.Nil(t, err)

	assert.NotSame(t, a.Get("yphone"), b.Get("yphone"))
	assert.Equal(t, a.Get("yphone"), b.Get("yphone"))
}

func TestLoadProgress(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	console := consoles.NewWriterConsole(out)

	_, err := NewEmbeddedStorage(console).LoadProducts()
	require.Nil(t, err)
	console.Printf("after\n")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "] seed: Loading products from embedded seed...")
	assert.Contains(t, lines[1], "] seed: Loaded 3 products")
	assert.Contains(t, lines[2], "] after")
	assert.NotContains(t, lines[2], "seed:")
}

const minimal = `
products:
  - id: a
    productInfo: {name: A}
    financialInfo:
      pastRevenue: [1, 2, 3]
      forecastRevenue: [{}, {}, {}]
      pastEbit: [1, 2, 3]
      forecastEbit: [{}, {}, {}]
    marketInfo:
      topCustomers: [{id: c1}, {id: c2}, {id: c3}]
    competitorLandscape:
      topCompetitors:
        - {id: k1, hqLocation: Japan}
        - {id: k2, hqLocation: Japan}
        - {id: k3, hqLocation: Japan}
        - {id: k4, hqLocation: Japan}
        - {id: k5, hqLocation: Japan}
`

func TestParseMinimal(t *testing.T) {
	t.Parallel()

	products, err := Parse(strings.NewReader(minimal))
	require.Nil(t, err)

	p := products.Get("a")
	assert.Equal(t, model.ProductID("a"), products.DefaultID())
	assert.Empty(t, p.MustWinBattles)
	assert.Equal(t, "A", p.Name())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"wrong past length":     strings.Replace(minimal, "pastRevenue: [1, 2, 3]", "pastRevenue: [1, 2]", 1),
		"wrong forecast length": strings.Replace(minimal, "forecastEbit: [{}, {}, {}]", "forecastEbit: [{}]", 1),
		"wrong customers":       strings.Replace(minimal, "{id: c3}", "", 1),
		"duplicated customer":   strings.Replace(minimal, "{id: c3}", "{id: c1}", 1),
		"dotted customer id":    strings.Replace(minimal, "{id: c3}", "{id: c.3}", 1),
		"slashed competitor id": strings.Replace(minimal, "{id: k4, hqLocation: Japan}", "{id: k/4, hqLocation: Japan}", 1),
		"unknown country":       strings.Replace(minimal, "{id: k5, hqLocation: Japan}", "{id: k5, hqLocation: Atlantis}", 1),
		"unknown field":         strings.Replace(minimal, "{name: A}", "{name: A, color: red}", 1),
		"unknown default":       "default: b\n" + minimal,
		"duplicated product":    minimal + strings.TrimPrefix(minimal, "\nproducts:\n"),
		"no products":           "products: []\n",
		"bad status": strings.Replace(minimal, "    marketInfo:",
			"    mustWinBattles:\n      - {id: b1, status: Done}\n    marketInfo:", 1),
		"dotted battle id": strings.Replace(minimal, "    marketInfo:",
			"    mustWinBattles:\n      - {id: b.1, status: Success}\n    marketInfo:", 1),
		"bad date": strings.Replace(minimal, "    marketInfo:",
			"    mustWinBattles:\n      - {id: b1, status: Success, targetDate: tomorrow}\n    marketInfo:", 1),
	}

	for name, doc := range cases {
		_, err := Parse(strings.NewReader(doc))
		assert.NotNil(t, err, name)
	}
}

func TestFileStorage(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "seed.yaml")
	require.Nil(t, os.WriteFile(file, []byte(minimal), 0o600))

	s, err := NewFactory(newConsole())(file)
	require.Nil(t, err)

	products, err := s.LoadProducts()
	require.Nil(t, err)
	assert.Equal(t, 1, products.Len())

	_, err = NewFileStorage(filepath.Join(t.TempDir(), "missing.yaml"), newConsole())
	assert.NotNil(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	t.Parallel()

	products, err := NewEmbeddedStorage(newConsole()).LoadProducts()
	require.Nil(t, err)

	out := &bytes.Buffer{}
	require.Nil(t, Write(out, products))

	again, err := Parse(out)
	require.Nil(t, err)

	for _, p := range products.List() {
		if diff := cmp.Diff(p, again.Get(p.ID)); diff != "" {
			t.Errorf("%v mismatch (-want +got):\n%s", p.ID, diff)
		}
	}
	assert.Equal(t, products.DefaultID(), again.DefaultID())
}
