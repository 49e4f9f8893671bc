package views

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/pescuma/strategist/lib/edits"
	"github.com/pescuma/strategist/lib/model"
)

// Form is the editor page: every editable value of a product, grouped the way it is
// laid out on screen. Each field carries the path used to change it.
type Form struct {
	ProductID model.ProductID
	Sections  []*FormSection
}

type FormSection struct {
	Title  string
	Groups []*FormGroup

	// CanAddBattle marks the section that offers "Add Must Win Battle".
	CanAddBattle bool
}

type FormGroup struct {
	Title  string
	Fields []*FormField

	// BattleID is set for groups that edit a battle, which can be removed.
	BattleID model.UUID
}

type FormField struct {
	Label     string
	Path      string
	Kind      edits.Kind
	Value     string
	MaxLength int
	Options   []string
	Rows      int
}

func (f *FormField) InputType() string {
	return f.Kind.String()
}

// Fields lists all fields in screen order.
func (f *Form) Fields() []*FormField {
	var result []*FormField
	for _, s := range f.Sections {
		for _, g := range s.Groups {
			result = append(result, g.Fields...)
		}
	}
	return result
}

type formBuilder struct {
	product *model.Product
	err     error
}

func (b *formBuilder) field(label string, path string, rows int) *FormField {
	if b.err != nil {
		return nil
	}

	meta, err := edits.Lookup(path)
	if err != nil {
		b.err = err
		return nil
	}

	value, err := edits.Get(b.product, path)
	if err != nil {
		b.err = err
		return nil
	}

	return &FormField{
		Label:     label,
		Path:      path,
		Kind:      meta.Kind,
		Value:     value,
		MaxLength: meta.MaxLength,
		Options:   meta.Options(),
		Rows:      rows,
	}
}

func NewForm(p *model.Product) (*Form, error) {
	b := &formBuilder{product: p}

	result := &Form{
		ProductID: p.ID,
		Sections: []*FormSection{
			b.productInfoSection(),
			b.financialInfoSection(),
			b.battlesSection(),
			b.marketInfoSection(),
			b.competitorsSection(),
		},
	}
	if b.err != nil {
		return nil, b.err
	}

	return result, nil
}

func (b *formBuilder) productInfoSection() *FormSection {
	return &FormSection{
		Title: "Product Information",
		Groups: []*FormGroup{{
			Fields: []*FormField{
				b.field("Product Name", edits.ProductInfoPath("name"), 0),
				b.field("Business Unit", edits.ProductInfoPath("businessUnit"), 0),
				b.field("Product Description", edits.ProductInfoPath("description"), 4),
				b.field("Aspiration (max 400 chars)", edits.ProductInfoPath("aspiration"), 4),
				b.field("Image URL", edits.ProductInfoPath("imageUrl"), 0),
			},
		}},
	}
}

func (b *formBuilder) financialInfoSection() *FormSection {
	var groups []*FormGroup

	series := []struct {
		title    string
		past     string
		forecast string
	}{
		{"Sales Revenue ($M)", edits.PastRevenue, edits.ForecastRevenue},
		{"EBIT ($M)", edits.PastEBIT, edits.ForecastEBIT},
	}

	for _, s := range series {
		past := &FormGroup{Title: s.title}
		for year := 0; year < model.Years; year++ {
			past.Fields = append(past.Fields, b.field(fmt.Sprintf("Past Year %v", year+1), edits.PastPath(s.past, year), 0))
		}
		groups = append(groups, past)

		for year := 0; year < model.Years; year++ {
			forecast := &FormGroup{Title: fmt.Sprintf("%v / Forecast Year %v", s.title, year+1)}
			for _, scenario := range model.Scenarios {
				forecast.Fields = append(forecast.Fields,
					b.field(titleCase.String(scenario.String()), edits.ForecastPath(s.forecast, year, scenario), 0))
			}
			groups = append(groups, forecast)
		}
	}

	groups = append(groups, &FormGroup{
		Fields: []*FormField{
			b.field("Description of Revenue & EBIT (max 2000 chars)", edits.FinancialInfoPath("description"), 6),
		},
	})

	return &FormSection{
		Title:  "Financial Information",
		Groups: groups,
	}
}

func (b *formBuilder) battlesSection() *FormSection {
	return &FormSection{
		Title:        "Must Win Battles",
		CanAddBattle: true,
		Groups: lo.Map(b.product.MustWinBattles, func(battle *model.MustWinBattle, i int) *FormGroup {
			return &FormGroup{
				Title:    fmt.Sprintf("Battle %v", i+1),
				BattleID: battle.ID,
				Fields: []*FormField{
					b.field("Title", edits.BattlePath(battle.ID, "title"), 0),
					b.field("Description (max 400 chars)", edits.BattlePath(battle.ID, "description"), 3),
					b.field("Sales Impact ($M)", edits.BattlePath(battle.ID, "salesImpact"), 0),
					b.field("EBIT Impact ($M)", edits.BattlePath(battle.ID, "ebitImpact"), 0),
					b.field("Target Date", edits.BattlePath(battle.ID, "targetDate"), 0),
					b.field("Responsible By", edits.BattlePath(battle.ID, "responsible"), 0),
					b.field("Status", edits.BattlePath(battle.ID, "status"), 0),
				},
			}
		}),
	}
}

func (b *formBuilder) marketInfoSection() *FormSection {
	groups := []*FormGroup{{
		Fields: []*FormField{
			b.field("Market Definition (max 200 chars)", edits.MarketInfoPath("definition"), 2),
			b.field("Market Growth Potential (max 1000 chars)", edits.MarketInfoPath("growthPotential"), 5),
		},
	}}

	for i, c := range b.product.MarketInfo.TopCustomers {
		groups = append(groups, &FormGroup{
			Title: fmt.Sprintf("Top %v Customers / Customer %v", model.TopCustomers, i+1),
			Fields: []*FormField{
				b.field("Name", edits.CustomerPath(c.ID, "name"), 0),
				b.field("Sales Last FY ($M)", edits.CustomerPath(c.ID, "salesLastFY"), 0),
				b.field("% of Total", edits.CustomerPath(c.ID, "percentageOfTotal"), 0),
			},
		})
	}

	return &FormSection{
		Title:  "Market Information",
		Groups: groups,
	}
}

func (b *formBuilder) competitorsSection() *FormSection {
	var groups []*FormGroup

	for i, c := range b.product.CompetitorLandscape.TopCompetitors {
		groups = append(groups, &FormGroup{
			Title: fmt.Sprintf("Top %v Competitors / Competitor %v", model.TopCompetitors, i+1),
			Fields: []*FormField{
				b.field("Competitor Name", edits.CompetitorPath(c.ID, "name"), 0),
				b.field("HQ Location", edits.CompetitorPath(c.ID, "hqLocation"), 0),
				b.field("Sales ($M)", edits.CompetitorPath(c.ID, "sales"), 0),
				b.field("Market Share (%)", edits.CompetitorPath(c.ID, "marketShare"), 0),
				b.field("Strategy (max 400 chars)", edits.CompetitorPath(c.ID, "strategy"), 3),
				b.field("Latest Tactical Move (max 400 chars)", edits.CompetitorPath(c.ID, "latestMove"), 3),
			},
		})
	}

	return &FormSection{
		Title:  "Competitor Landscape",
		Groups: groups,
	}
}
