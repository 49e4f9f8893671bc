package model

// TopCompetitors is the number of competitors tracked per product.
const TopCompetitors = 5

type Competitor struct {
	ID          UUID
	Name        string
	HQLocation  Country
	Sales       float64
	MarketShare float64
	Strategy    string
	LatestMove  string
}

func NewCompetitor(id *UUID) *Competitor {
	var uuid UUID
	if id == nil {
		uuid = NewUUID("k")
	} else {
		uuid = *id
	}

	return &Competitor{
		ID:         uuid,
		HQLocation: Countries[0],
	}
}

type CompetitorLandscape struct {
	TopCompetitors [TopCompetitors]*Competitor
}

func NewCompetitorLandscape() *CompetitorLandscape {
	result := &CompetitorLandscape{}

	for i := range result.TopCompetitors {
		result.TopCompetitors[i] = NewCompetitor(nil)
	}

	return result
}

func (l *CompetitorLandscape) CompetitorIndex(id UUID) int {
	for i, c := range l.TopCompetitors {
		if c != nil && c.ID == id {
			return i
		}
	}
	return -1
}
