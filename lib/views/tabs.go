package views

import (
	"strings"

	"github.com/pkg/errors"
)

// Tab is one of the fixed report tabs.
type Tab int

const (
	ProductTab Tab = iota
	FinancialTab
	BattlesTab
	MarketTab
	CompetitorsTab
	DeepResearchTab
)

var Tabs = []Tab{ProductTab, FinancialTab, BattlesTab, MarketTab, CompetitorsTab, DeepResearchTab}

func (t Tab) String() string {
	switch t {
	case ProductTab:
		return "product"
	case FinancialTab:
		return "financial"
	case BattlesTab:
		return "battles"
	case MarketTab:
		return "market"
	case CompetitorsTab:
		return "competitors"
	case DeepResearchTab:
		return "deepResearch"
	default:
		return "<unknown>"
	}
}

func (t Tab) Label() string {
	switch t {
	case ProductTab:
		return "Product Information"
	case FinancialTab:
		return "Financial Information"
	case BattlesTab:
		return "Must Win Battles"
	case MarketTab:
		return "Market Information"
	case CompetitorsTab:
		return "Competitor Landscape"
	case DeepResearchTab:
		return "Deep Research"
	default:
		return "<unknown>"
	}
}

// ParseTab accepts the tab name in any case; empty means the first tab.
func ParseTab(s string) (Tab, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ProductTab, nil
	}

	for _, t := range Tabs {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}

	return ProductTab, errors.Errorf("unknown tab: %v", s)
}
