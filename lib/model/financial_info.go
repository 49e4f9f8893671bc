package model

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Years is the number of past and forecast years tracked for revenue and EBIT.
const Years = 3

type FinancialInfo struct {
	PastRevenue     [Years]float64
	ForecastRevenue [Years]FinancialYear
	PastEBIT        [Years]float64
	ForecastEBIT    [Years]FinancialYear
	Description     string
}

func NewFinancialInfo() *FinancialInfo {
	return &FinancialInfo{}
}

type FinancialYear struct {
	Conservative float64
	Realistic    float64
	Ambitious    float64
}

func (y FinancialYear) Get(s Scenario) float64 {
	switch s {
	case Conservative:
		return y.Conservative
	case Realistic:
		return y.Realistic
	case Ambitious:
		return y.Ambitious
	default:
		panic(fmt.Sprintf("unknown scenario: %v", int(s)))
	}
}

func (y FinancialYear) With(s Scenario, value float64) FinancialYear {
	switch s {
	case Conservative:
		y.Conservative = value
	case Realistic:
		y.Realistic = value
	case Ambitious:
		y.Ambitious = value
	default:
		panic(fmt.Sprintf("unknown scenario: %v", int(s)))
	}
	return y
}

type Scenario int

const (
	Conservative Scenario = iota
	Realistic
	Ambitious
)

var Scenarios = []Scenario{Conservative, Realistic, Ambitious}

func (s Scenario) String() string {
	switch s {
	case Conservative:
		return "conservative"
	case Realistic:
		return "realistic"
	case Ambitious:
		return "ambitious"
	default:
		return "<unknown>"
	}
}

func ParseScenario(s string) (Scenario, error) {
	for _, sc := range Scenarios {
		if strings.EqualFold(s, sc.String()) {
			return sc, nil
		}
	}

	return 0, errors.Errorf("unknown scenario: %v", s)
}
