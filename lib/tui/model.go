package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/pescuma/strategist/lib/edits"
	"github.com/pescuma/strategist/lib/filters"
	"github.com/pescuma/strategist/lib/model"
	"github.com/pescuma/strategist/lib/session"
	"github.com/pescuma/strategist/lib/utils"
	"github.com/pescuma/strategist/lib/views"
)

// formEntry is one editable field of the editor page, with the battle it belongs to.
type formEntry struct {
	field    *views.FormField
	battleID model.UUID
}

// Model is the terminal front-end. It keeps only view state; products and navigation
// live in the session.
type Model struct {
	session *session.Session
	opts    *Options
	styles  views.Styles

	width    int
	height   int
	viewport viewport.Model
	help     help.Model

	tab    views.Tab
	filter filters.BattleStatusFilter

	entries []formEntry
	cursor  int
	editing bool
	input   textinput.Model

	status string
	err    bool
}

func New(sess *session.Session, opts *Options) Model {
	if opts == nil {
		opts = &Options{}
	}

	in := textinput.New()
	in.Prompt = "> "

	m := Model{
		session:  sess,
		opts:     opts,
		styles:   views.DefaultStyles(),
		width:    100,
		height:   30,
		viewport: viewport.New(100, 25),
		help:     help.New(),
		input:    in,
	}
	m.refresh()

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Edit):
		m.applyEdit()
		return m, nil

	case key.Matches(msg, keys.Cancel):
		m.editing = false
		m.input.Blur()
		m.setStatus("", false)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nav := m.session.Navigation()

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.PrevProduct):
		m.moveProduct(-1)
	case key.Matches(msg, keys.NextProduct):
		m.moveProduct(1)

	case key.Matches(msg, keys.Landing):
		m.session.SelectPage(model.LandingPage)
	case key.Matches(msg, keys.Input):
		m.session.SelectPage(model.InputPage)
	case key.Matches(msg, keys.Output):
		m.session.SelectPage(model.OutputPage)

	case nav.Page == model.OutputPage && key.Matches(msg, keys.NextTab):
		m.tab = views.Tabs[utils.Cycle(int(m.tab), 1, len(views.Tabs))]
	case nav.Page == model.OutputPage && key.Matches(msg, keys.PrevTab):
		m.tab = views.Tabs[utils.Cycle(int(m.tab), -1, len(views.Tabs))]
	case nav.Page == model.OutputPage && key.Matches(msg, keys.Filter):
		m.filter = m.filter.Next()

	case nav.Page == model.InputPage && key.Matches(msg, keys.Up):
		m.cursor = utils.Clamp(m.cursor-1, 0, len(m.entries)-1)
	case nav.Page == model.InputPage && key.Matches(msg, keys.Down):
		m.cursor = utils.Clamp(m.cursor+1, 0, len(m.entries)-1)
	case nav.Page == model.InputPage && key.Matches(msg, keys.Edit):
		cmd := m.startEdit()
		return m, cmd
	case nav.Page == model.InputPage && key.Matches(msg, keys.AddBattle):
		m.addBattle()
	case nav.Page == model.InputPage && key.Matches(msg, keys.Remove):
		m.removeBattle()

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.refresh()
	return m, nil
}

func (m *Model) moveProduct(delta int) {
	products := m.session.ListProducts()
	nav := m.session.Navigation()

	i := lo.IndexOf(lo.Map(products, func(p *model.Product, _ int) model.ProductID { return p.ID }), nav.ProductID)
	next := products[utils.Cycle(i, delta, len(products))]

	_, err := m.session.SelectProduct(next.ID)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	m.cursor = 0
	m.setStatus("", false)
}

func (m *Model) current() *formEntry {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return &m.entries[m.cursor]
}

func (m *Model) startEdit() tea.Cmd {
	e := m.current()
	if e == nil {
		return nil
	}

	m.editing = true
	m.input.CharLimit = e.field.MaxLength
	m.input.Placeholder = e.field.Label
	m.input.SetValue(e.field.Value)
	m.input.CursorEnd()
	m.setStatus("", false)
	m.refresh()

	return m.input.Focus()
}

func (m *Model) applyEdit() {
	e := m.current()
	if e == nil {
		m.editing = false
		return
	}

	nav := m.session.Navigation()

	_, err := m.session.Edit(nav.ProductID, edits.Edit{Path: e.field.Path, Value: m.input.Value()})
	if err != nil {
		m.setStatus(err.Error(), true)
		m.refresh()
		return
	}

	m.editing = false
	m.input.Blur()
	m.setStatus(fmt.Sprintf("Saved %v", e.field.Label), false)
	m.refresh()
}

func (m *Model) addBattle() {
	nav := m.session.Navigation()

	_, b, err := m.session.AddBattle(nav.ProductID)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	m.refresh()
	_, idx, found := lo.FindIndexOf(m.entries, func(e formEntry) bool { return e.battleID == b.ID })
	if found {
		m.cursor = idx
	}
	m.setStatus("Added Must Win Battle", false)
}

func (m *Model) removeBattle() {
	e := m.current()
	if e == nil || e.battleID == "" {
		m.setStatus("Move to a battle to remove it", true)
		return
	}

	nav := m.session.Navigation()

	_, err := m.session.RemoveBattle(nav.ProductID, e.battleID)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	m.setStatus("Removed Must Win Battle", false)
}

func (m *Model) setStatus(text string, isError bool) {
	m.status = text
	m.err = isError
}

func (m *Model) textOptions() *views.TextOptions {
	return &views.TextOptions{
		Width:         m.width - 2,
		MarkdownStyle: m.opts.MarkdownStyle,
		Styles:        m.styles,
	}
}

// refresh rebuilds the page content from the session. It runs after every change, so the
// screen always shows the current state.
func (m *Model) refresh() {
	selected, nav := m.session.Selected()

	m.viewport.Width = m.width
	m.viewport.Height = utils.Clamp(m.height-6, 1, m.height)

	var content string
	var cursorLine int
	var err error

	switch nav.Page {
	case model.LandingPage:
		content = views.RenderLanding(views.NewLanding(selected), m.textOptions())

	case model.InputPage:
		content, cursorLine, err = m.renderForm(selected)

	case model.OutputPage:
		content, err = m.renderReport(selected)
	}

	if err != nil {
		m.setStatus(err.Error(), true)
	}

	m.viewport.SetContent(content)

	if nav.Page == model.InputPage {
		if cursorLine < m.viewport.YOffset || cursorLine >= m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(cursorLine - m.viewport.Height/2)
		}
	} else if nav.Page == model.LandingPage {
		m.viewport.GotoTop()
	}
}

func (m *Model) renderForm(p *model.Product) (string, int, error) {
	form, err := views.NewForm(p)
	if err != nil {
		m.entries = nil
		return "", 0, err
	}

	m.entries = nil
	for _, s := range form.Sections {
		for _, g := range s.Groups {
			for _, f := range g.Fields {
				m.entries = append(m.entries, formEntry{field: f, battleID: g.BattleID})
			}
		}
	}
	m.cursor = utils.Clamp(m.cursor, 0, len(m.entries)-1)

	var lines []string
	cursorLine := 0
	i := 0
	for _, s := range form.Sections {
		lines = append(lines, m.styles.Subtitle.Render(s.Title))
		for _, g := range s.Groups {
			if g.Title != "" {
				lines = append(lines, "  "+m.styles.Label.Render(g.Title))
			}
			for _, f := range g.Fields {
				value := f.Value
				if len(f.Options) > 0 {
					value += m.styles.Muted.Render(" (" + strings.Join(lo.Slice(f.Options, 0, 3), ", ") + lo.Ternary(len(f.Options) > 3, ", ...)", ")"))
				}

				line := fmt.Sprintf("    %v: %v", f.Label, value)
				if i == m.cursor {
					cursorLine = len(lines)
					if m.editing {
						line = fmt.Sprintf("    %v: %v", f.Label, m.input.View())
					}
					line = m.styles.Selected.Render("▸" + line[1:])
				}

				lines = append(lines, line)
				i++
			}
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n"), cursorLine, nil
}

func (m *Model) renderReport(p *model.Product) (string, error) {
	r, err := views.NewReport(p, m.tab, m.filter)
	if err != nil {
		return "", err
	}

	body, err := views.RenderReportTab(r, m.tab, m.textOptions())
	if err != nil {
		return "", err
	}

	return views.RenderTabs(r, m.textOptions()) + "\n" + body, nil
}

func (m Model) helpKeys() []key.Binding {
	result := keys.common()

	switch m.session.Navigation().Page {
	case model.InputPage:
		if m.editing {
			return []key.Binding{keys.Edit, keys.Cancel}
		}
		result = append(result, keys.Up, keys.Down, keys.Edit, keys.AddBattle, keys.Remove)
	case model.OutputPage:
		result = append(result, keys.NextTab, keys.PrevTab, keys.Filter)
	}

	return append(result, keys.Quit)
}

func (m Model) View() string {
	products := m.session.ListProducts()
	nav := m.session.Navigation()

	var sb strings.Builder
	sb.WriteString(views.RenderHeader(views.NewHeader(products, nav), m.textOptions()))
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	if m.err {
		sb.WriteString(m.styles.Error.Render(m.status))
	} else {
		sb.WriteString(m.styles.Muted.Render(m.status))
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.ShortHelpView(m.helpKeys()))

	return sb.String()
}
