package filters

import (
	"strings"

	"github.com/samber/lo"

	"github.com/pescuma/strategist/lib/model"
)

// BattleStatusFilter selects the battles shown in the report: all of them, or only the
// ones with a given status. It is part of the view state and never changes the product.
// The zero value shows all battles.
type BattleStatusFilter struct {
	filtered bool
	status   model.BattleStatus
}

var AllBattles = BattleStatusFilter{}

// BattleStatusFilters lists the filter options in the order they are offered.
var BattleStatusFilters = append([]BattleStatusFilter{AllBattles},
	lo.Map(model.BattleStatuses, func(s model.BattleStatus, _ int) BattleStatusFilter { return ByStatus(s) })...)

func ByStatus(status model.BattleStatus) BattleStatusFilter {
	return BattleStatusFilter{filtered: true, status: status}
}

// ParseBattleStatusFilter accepts "All" (or empty) and any status spelling.
func ParseBattleStatusFilter(s string) (BattleStatusFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return AllBattles, nil
	}

	status, err := model.ParseBattleStatus(s)
	if err != nil {
		return AllBattles, err
	}

	return ByStatus(status), nil
}

func (f BattleStatusFilter) String() string {
	if !f.filtered {
		return "All"
	}
	return f.status.String()
}

func (f BattleStatusFilter) IsAll() bool {
	return !f.filtered
}

func (f BattleStatusFilter) Match(battle *model.MustWinBattle) bool {
	return !f.filtered || battle.Status == f.status
}

// Apply returns the matching battles in their original order. The input is not modified.
func (f BattleStatusFilter) Apply(battles []*model.MustWinBattle) []*model.MustWinBattle {
	return lo.Filter(battles, func(b *model.MustWinBattle, _ int) bool { return f.Match(b) })
}

// Next cycles through BattleStatusFilters.
func (f BattleStatusFilter) Next() BattleStatusFilter {
	i := lo.IndexOf(BattleStatusFilters, f)
	return BattleStatusFilters[(i+1)%len(BattleStatusFilters)]
}
