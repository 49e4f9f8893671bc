package model

type MustWinBattle struct {
	ID          UUID
	Title       string
	Description string
	SalesImpact float64
	EBITImpact  float64
	TargetDate  string
	Responsible string
	Status      BattleStatus
}

func NewMustWinBattle(id *UUID) *MustWinBattle {
	var uuid UUID
	if id == nil {
		uuid = NewUUID("b")
	} else {
		uuid = *id
	}

	return &MustWinBattle{
		ID:     uuid,
		Status: InProgress,
	}
}
