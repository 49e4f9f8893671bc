package views

import (
	"strings"
	"testing"

	"github.com/bloomberg/go-testgroup"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/strategist/lib/edits"
	"github.com/pescuma/strategist/lib/filters"
	"github.com/pescuma/strategist/lib/model"
)

func newTestProduct() *model.Product {
	p := model.NewProduct("yphone")
	p.ProductInfo.Name = "YPhone"
	p.ProductInfo.BusinessUnit = "Mobile Devices"
	p.ProductInfo.Aspiration = "Lead"
	p.FinancialInfo.PastRevenue = [model.Years]float64{1200, 150, 180.5}

	for i, s := range []model.BattleStatus{model.InProgress, model.Success, model.Failed} {
		id := model.UUID("mwb" + string(rune('1'+i)))
		b := model.NewMustWinBattle(&id)
		b.Title = "Battle " + s.String()
		b.Status = s
		b.SalesImpact = 1500
		p.MustWinBattles = append(p.MustWinBattles, b)
	}

	p.MarketInfo.TopCustomers[0].Name = "Global Telecom Inc."
	p.MarketInfo.TopCustomers[0].SalesLastFY = 50
	p.MarketInfo.TopCustomers[0].PercentageOfTotal = 27.8

	return p
}

func TestViews(t *testing.T) {
	testgroup.RunInParallel(t, &ViewsTests{})
}

type ViewsTests struct {
}

func (g *ViewsTests) FormCoversEveryField(t *testgroup.T) {
	p := newTestProduct()

	form, err := NewForm(p)
	t.Require.Nil(err)

	t.Equal(p.ID, form.ProductID)

	fields := form.Fields()
	expected := 5 + 1 + 2*(model.Years+model.Years*len(model.Scenarios)) +
		7*len(p.MustWinBattles) + 2 + 3*model.TopCustomers + 6*model.TopCompetitors
	t.Len(fields, expected)

	paths := lo.Map(fields, func(f *FormField, _ int) string { return f.Path })
	t.Len(lo.Uniq(paths), len(paths))

	t.Equal([]string{"Product Information", "Financial Information", "Must Win Battles", "Market Information", "Competitor Landscape"},
		lo.Map(form.Sections, func(s *FormSection, _ int) string { return s.Title }))
}

func (g *ViewsTests) FormPathsRoundTrip(t *testgroup.T) {
	p := newTestProduct()

	form, err := NewForm(p)
	t.Require.Nil(err)

	for _, f := range form.Fields() {
		n, err := edits.Apply(p, edits.Edit{Path: f.Path, Value: f.Value})
		t.Nil(err, f.Path)
		t.Equal(p, n, f.Path)
	}
}

func (g *ViewsTests) FormFieldMetadata(t *testgroup.T) {
	p := newTestProduct()

	form, err := NewForm(p)
	t.Require.Nil(err)

	byLabel := lo.KeyBy(form.Sections[0].Groups[0].Fields, func(f *FormField) string { return f.Label })
	t.Equal(400, byLabel["Aspiration (max 400 chars)"].MaxLength)
	t.Equal("textarea", byLabel["Aspiration (max 400 chars)"].InputType())
	t.Equal("Lead", byLabel["Aspiration (max 400 chars)"].Value)

	past := form.Sections[1].Groups[0]
	t.Equal("Sales Revenue ($M)", past.Title)
	t.Equal("Past Year 1", past.Fields[0].Label)
	t.Equal("1200", past.Fields[0].Value)
	t.Equal("number", past.Fields[0].InputType())

	battle := form.Sections[2].Groups[1]
	t.Equal(model.UUID("mwb2"), battle.BattleID)
	status := battle.Fields[6]
	t.Equal("Status", status.Label)
	t.Equal("Success", status.Value)
	t.Equal([]string{"In Progress", "Success", "Failed"}, status.Options)

	competitor := form.Sections[4].Groups[0].Fields[1]
	t.Equal("HQ Location", competitor.Label)
	t.Equal("United States", competitor.Value)
	t.Len(competitor.Options, len(model.Countries))
}

func (g *ViewsTests) ReportFilter(t *testgroup.T) {
	p := newTestProduct()

	r, err := NewReport(p, BattlesTab, filters.ByStatus(model.Success))
	t.Require.Nil(err)

	t.Len(r.Battles.Rows, 1)
	t.Equal("Battle Success", r.Battles.Rows[0].Title)
	t.Equal("status-success", r.Battles.Rows[0].StatusClass)
	t.Equal("1,500", r.Battles.Rows[0].SalesImpact)
	t.Equal(3, r.Battles.Total)
	t.Len(p.MustWinBattles, 3)

	selected := lo.Filter(r.Battles.FilterOptions, func(o *FilterOption, _ int) bool { return o.Selected })
	t.Len(selected, 1)
	t.Equal("Success", selected[0].Value)
}

func (g *ViewsTests) ReportTabs(t *testgroup.T) {
	p := newTestProduct()

	r, err := NewReport(p, MarketTab, filters.AllBattles)
	t.Require.Nil(err)

	t.Len(r.Tabs, 6)
	active := lo.Filter(r.Tabs, func(l *TabLink, _ int) bool { return l.Active })
	t.Equal([]*TabLink{{Tab: MarketTab, Value: "market", Label: "Market Information", Active: true}}, active)

	t.Equal("$50M", r.Market.Customers[0].Sales)
	t.Equal("27.8%", r.Market.Customers[0].Share)
	t.Equal([]string{"1,200", "150", "180.5"}, r.Financial.Series[0].Past)
	t.Equal("Conservative", r.Financial.Series[0].Forecasts[0].Scenario)
	t.Len(r.Financial.Charts, 2)
}

func (g *ViewsTests) DeepResearch(t *testgroup.T) {
	p := newTestProduct()

	md := DeepResearchMarkdown(p)
	t.Contains(md, "Market & Segment Analysis (Mobile Devices)")
	t.Contains(md, "The YPhone competes in the highly dynamic Mobile Devices sector.")
	t.Contains(md, "**On-Device AI Processing:**")
	t.Contains(md, "The Verge: Is the Foldable Tablet the Future of Productivity?")

	card, err := NewDeepResearchCard(p)
	t.Require.Nil(err)
	t.Contains(string(card.HTML), "<h3>Market &amp; Segment Analysis (Mobile Devices)</h3>")
	t.Contains(string(card.HTML), "<strong>Disclaimer</strong>")
	t.Equal(4+3, strings.Count(string(card.HTML), "<li>"))
}

func (g *ViewsTests) DeepResearchEscapesProductText(t *testgroup.T) {
	p := newTestProduct()
	p.ProductInfo.Name = "<script>alert(1)</script> *bold*"

	card, err := NewDeepResearchCard(p)
	t.Require.Nil(err)

	t.NotContains(string(card.HTML), "<script>")
	t.NotContains(string(card.HTML), "<em>bold</em>")
}

func (g *ViewsTests) PageShowsOnlyActiveView(t *testgroup.T) {
	p := newTestProduct()
	other := model.NewProduct("ytablet")
	products := []*model.Product{p, other}

	page, err := NewPage(products, p, model.NewNavigation("yphone"), ReportState{})
	t.Require.Nil(err)
	t.NotNil(page.Landing)
	t.Nil(page.Form)
	t.Nil(page.Report)
	t.Equal("landing", page.Page)
	t.True(page.Header.Products[0].Selected)
	t.False(page.Header.Products[1].Selected)
	t.Equal([]string{"Landing", "Input", "Output"}, lo.Map(page.Header.Pages, func(l *PageLink, _ int) string { return l.Label }))

	page, err = NewPage(products, p, model.NewNavigation("yphone").SelectPage(model.InputPage), ReportState{})
	t.Require.Nil(err)
	t.NotNil(page.Form)
	t.Nil(page.Landing)

	page, err = NewPage(products, p, model.NewNavigation("yphone").SelectPage(model.OutputPage), ReportState{Tab: CompetitorsTab})
	t.Require.Nil(err)
	t.NotNil(page.Report)
	t.Equal(CompetitorsTab, page.Report.Tab)

	_, err = NewPage(products, nil, model.NewNavigation("nope"), ReportState{})
	t.NotNil(err)
}

func TestParseTab(t *testing.T) {
	t.Parallel()

	for _, tab := range Tabs {
		parsed, err := ParseTab(tab.String())
		require.Nil(t, err)
		assert.Equal(t, tab, parsed)
	}

	tab, err := ParseTab("")
	assert.Nil(t, err)
	assert.Equal(t, ProductTab, tab)

	tab, err = ParseTab("DEEPRESEARCH")
	assert.Nil(t, err)
	assert.Equal(t, DeepResearchTab, tab)

	_, err = ParseTab("charts")
	assert.NotNil(t, err)
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1,234.5", FormatNumber(1234.5))
	assert.Equal(t, "-3", FormatNumber(-3))
	assert.Equal(t, "$1,250M", FormatMillions(1250))
	assert.Equal(t, "13.9%", FormatPercentage(13.9))
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	p := newTestProduct()
	opts := &TextOptions{Width: 120, MarkdownStyle: "notty", Styles: DefaultStyles()}

	r, err := NewReport(p, ProductTab, filters.ByStatus(model.Failed))
	require.Nil(t, err)

	for _, tab := range Tabs {
		out, err := RenderReportTab(r, tab, opts)
		require.Nil(t, err, tab.String())
		assert.Contains(t, out, tab.Label(), tab.String())
	}

	out, err := RenderReportTab(r, BattlesTab, opts)
	require.Nil(t, err)
	assert.Contains(t, out, "Battle Failed")
	assert.NotContains(t, out, "Battle Success")
	assert.Contains(t, out, "1 of 3")

	out, err = RenderReportTab(r, DeepResearchTab, opts)
	require.Nil(t, err)
	assert.Contains(t, out, "Key Trends to Watch")

	landing := RenderLanding(NewLanding(p), opts)
	assert.Contains(t, landing, "YPhone")
	assert.Contains(t, landing, "Our Aspiration")

	form, err := NewForm(p)
	require.Nil(t, err)
	assert.Contains(t, RenderForm(form, opts), "financialInfo.pastRevenue.0")

	header := RenderHeader(NewHeader([]*model.Product{p}, model.NewNavigation("yphone")), opts)
	assert.Contains(t, header, AppTitle)
	assert.Contains(t, header, "[YPhone]")
}
