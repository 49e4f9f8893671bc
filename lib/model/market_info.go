package model

// TopCustomers is the number of customers tracked per market.
const TopCustomers = 3

type MarketInfo struct {
	Definition      string
	GrowthPotential string
	TopCustomers    [TopCustomers]*Customer
}

func NewMarketInfo() *MarketInfo {
	result := &MarketInfo{}

	for i := range result.TopCustomers {
		result.TopCustomers[i] = NewCustomer(nil)
	}

	return result
}

func (m *MarketInfo) CustomerIndex(id UUID) int {
	for i, c := range m.TopCustomers {
		if c != nil && c.ID == id {
			return i
		}
	}
	return -1
}
