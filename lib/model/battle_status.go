package model

import (
	"strings"

	"github.com/pkg/errors"
)

type BattleStatus int

const (
	InProgress BattleStatus = iota
	Success
	Failed
)

var BattleStatuses = []BattleStatus{InProgress, Success, Failed}

// String returns the label shown to users, which is also the canonical serialized form.
func (s BattleStatus) String() string {
	switch s {
	case InProgress:
		return "In Progress"
	case Success:
		return "Success"
	case Failed:
		return "Failed"
	default:
		return "<unknown>"
	}
}

// ParseBattleStatus accepts the label ("In Progress") or the identifier ("InProgress").
func ParseBattleStatus(s string) (BattleStatus, error) {
	n := strings.ReplaceAll(strings.TrimSpace(s), " ", "")

	for _, st := range BattleStatuses {
		if strings.EqualFold(n, strings.ReplaceAll(st.String(), " ", "")) {
			return st, nil
		}
	}

	return 0, errors.Errorf("unknown battle status: %v", s)
}
