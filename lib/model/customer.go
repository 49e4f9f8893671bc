package model

type Customer struct {
	ID                UUID
	Name              string
	SalesLastFY       float64
	PercentageOfTotal float64
}

func NewCustomer(id *UUID) *Customer {
	var uuid UUID
	if id == nil {
		uuid = NewUUID("c")
	} else {
		uuid = *id
	}

	return &Customer{
		ID: uuid,
	}
}
