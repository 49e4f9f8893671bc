package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/strategist/lib/model"
)

// TextOptions control rendering for terminals.
type TextOptions struct {
	Width int
	// MarkdownStyle is a glamour style name; empty detects it from the terminal.
	MarkdownStyle string
	Styles        Styles
}

func (o *TextOptions) width() int {
	if o.Width <= 0 {
		return 100
	}
	return o.Width
}

func (o *TextOptions) dataPoint(label, value string) string {
	return o.Styles.Label.Render(label) + "\n" + o.Styles.Body.Width(o.width()).Render(value) + "\n"
}

// table renders a bordered table. cell may override the style of data cells.
func (o *TextOptions) table(headers []string, rows [][]string, cell func(row, col int, base lipgloss.Style) lipgloss.Style) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(o.Styles.TableFrame).
		Width(o.width()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return o.Styles.TableHead
			}
			if cell != nil {
				return cell(row, col, o.Styles.TableCell)
			}
			return o.Styles.TableCell
		}).
		String()
}

func RenderHeader(h *Header, opts *TextOptions) string {
	products := lo.Map(h.Products, func(p *ProductOption, _ int) string {
		if p.Selected {
			return opts.Styles.Selected.Render("[" + p.Name + "]")
		}
		return opts.Styles.Muted.Render(p.Name)
	})
	pages := lo.Map(h.Pages, func(p *PageLink, _ int) string {
		if p.Active {
			return opts.Styles.ActiveTab.Render(p.Label)
		}
		return opts.Styles.Tab.Render(p.Label)
	})

	return opts.Styles.AppTitle.Render(h.Title) + "  " + strings.Join(products, " ") + "\n" +
		strings.Join(pages, " ") + "\n"
}

func RenderLanding(l *Landing, opts *TextOptions) string {
	var sb strings.Builder

	sb.WriteString(opts.Styles.Title.Render(l.Name))
	sb.WriteString("\n")
	sb.WriteString(opts.Styles.Body.Width(opts.width()).Render(l.Description))
	sb.WriteString("\n\n")
	sb.WriteString(opts.Styles.Subtitle.Render("Our Aspiration"))
	sb.WriteString("\n")
	sb.WriteString(opts.Styles.Quote.Width(opts.width()).Render(`"` + l.Aspiration + `"`))
	sb.WriteString("\n")
	if l.ImageURL != "" {
		sb.WriteString(opts.Styles.Muted.Render(l.ImageURL))
		sb.WriteString("\n")
	}

	return sb.String()
}

func RenderTabs(r *Report, opts *TextOptions) string {
	return strings.Join(lo.Map(r.Tabs, func(t *TabLink, _ int) string {
		if t.Active {
			return opts.Styles.ActiveTab.Render(t.Label)
		}
		return opts.Styles.Tab.Render(t.Label)
	}), " ") + "\n"
}

// RenderReportTab renders the card of one tab, independent of the active one.
func RenderReportTab(r *Report, tab Tab, opts *TextOptions) (string, error) {
	var sb strings.Builder

	sb.WriteString(opts.Styles.Title.Render(tab.Label()))
	sb.WriteString("\n")

	switch tab {
	case ProductTab:
		c := r.Product
		sb.WriteString(opts.dataPoint("Product Name", c.Name))
		sb.WriteString(opts.dataPoint("Business Unit", c.BusinessUnit))
		sb.WriteString(opts.dataPoint("Description", c.Description))
		sb.WriteString(opts.dataPoint("Aspiration", `"`+c.Aspiration+`"`))
		if c.ImageURL != "" {
			sb.WriteString(opts.dataPoint("Image", c.ImageURL))
		}

	case FinancialTab:
		c := r.Financial
		for _, s := range c.Series {
			headers := []string{""}
			for i := range s.Past {
				headers = append(headers, fmt.Sprintf("Past Year %v", i+1))
			}
			for i := 0; i < model.Years; i++ {
				headers = append(headers, fmt.Sprintf("Forecast Year %v", i+1))
			}

			var rows [][]string
			rows = append(rows, append(append([]string{"Actual"}, s.Past...), make([]string, model.Years)...))
			for _, f := range s.Forecasts {
				rows = append(rows, append(append([]string{f.Scenario}, make([]string, len(s.Past))...), f.Values...))
			}

			sb.WriteString(opts.Styles.Subtitle.Render(s.Title))
			sb.WriteString("\n")
			sb.WriteString(opts.table(headers, rows, nil))
			sb.WriteString("\n")
		}
		for _, chart := range c.Charts {
			sb.WriteString(opts.dataPoint(chart.Title, chart.ImageURL))
		}
		sb.WriteString(opts.dataPoint("Description", c.Description))

	case BattlesTab:
		c := r.Battles
		sb.WriteString(opts.Styles.Label.Render(fmt.Sprintf("Filter by Status: %v (%v of %v)", c.Filter, len(c.Rows), c.Total)))
		sb.WriteString("\n")
		rows := lo.Map(c.Rows, func(b *BattleRow, _ int) []string {
			return []string{b.Title + "\n" + b.Description, b.SalesImpact, b.EBITImpact, b.TargetDate, b.Responsible, b.Status}
		})
		sb.WriteString(opts.table([]string{"Title", "Sales Impact ($M)", "EBIT Impact ($M)", "Target Date", "Responsible", "Status"}, rows,
			func(row, col int, base lipgloss.Style) lipgloss.Style {
				if col != 5 || row < 0 || row >= len(c.Rows) {
					return base
				}
				return base.Foreground(StatusColor(c.Rows[row].StatusValue))
			}))
		sb.WriteString("\n")

	case MarketTab:
		c := r.Market
		sb.WriteString(opts.dataPoint("Market Definition", c.Definition))
		sb.WriteString(opts.dataPoint("Market Growth Potential", c.GrowthPotential))
		sb.WriteString(opts.Styles.Subtitle.Render("Top Customers"))
		sb.WriteString("\n")
		for _, cu := range c.Customers {
			fmt.Fprintf(&sb, "%v  %v\n", cu.Name, opts.Styles.Muted.Render(fmt.Sprintf("Sales: %v (%v)", cu.Sales, cu.Share)))
		}

	case CompetitorsTab:
		rows := lo.Map(r.Competitors.Rows, func(c *CompetitorRow, _ int) []string {
			return []string{c.Name + "\n" + c.HQLocation, c.Sales, c.MarketShare, c.Strategy, c.LatestMove}
		})
		sb.WriteString(opts.table([]string{"Competitor", "Sales ($M)", "Share (%)", "Strategy", "Latest Tactical Move"}, rows, nil))
		sb.WriteString("\n")

	case DeepResearchTab:
		out, err := MarkdownToTerminal(r.DeepResearch.Markdown, opts.MarkdownStyle, opts.width())
		if err != nil {
			return "", err
		}
		sb.WriteString(out)

	default:
		return "", errors.Errorf("unknown tab: %v", tab)
	}

	return sb.String(), nil
}

func RenderForm(f *Form, opts *TextOptions) string {
	var sb strings.Builder

	for _, s := range f.Sections {
		sb.WriteString(opts.Styles.Title.Render(s.Title))
		sb.WriteString("\n")

		for _, g := range s.Groups {
			if g.Title != "" {
				sb.WriteString(opts.Styles.Subtitle.Render(g.Title))
				sb.WriteString("\n")
			}
			for _, field := range g.Fields {
				fmt.Fprintf(&sb, "%v %v\n", opts.Styles.Label.Render(field.Label+":"), field.Value)
				sb.WriteString(opts.Styles.Muted.Render("  " + field.Path))
				sb.WriteString("\n")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
