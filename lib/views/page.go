package views

import (
	"github.com/pkg/errors"

	"github.com/pescuma/strategist/lib/filters"
	"github.com/pescuma/strategist/lib/model"
)

// Page is everything a front-end needs to draw the current navigation state. Only the
// view of the active page is filled.
type Page struct {
	Header    *Header
	ProductID model.ProductID
	Page      string

	Landing *Landing
	Form    *Form
	Report  *Report
}

// ReportState is the report view state. It belongs to the front-end and is never stored
// in the product.
type ReportState struct {
	Tab    Tab
	Filter filters.BattleStatusFilter
}

func NewPage(products []*model.Product, selected *model.Product, nav model.Navigation, state ReportState) (*Page, error) {
	if selected == nil {
		return nil, errors.Wrapf(model.ErrNotFound, "product %v", nav.ProductID)
	}

	result := &Page{
		Header:    NewHeader(products, nav),
		ProductID: selected.ID,
		Page:      nav.Page.String(),
	}

	var err error
	switch nav.Page {
	case model.LandingPage:
		result.Landing = NewLanding(selected)
	case model.InputPage:
		result.Form, err = NewForm(selected)
	case model.OutputPage:
		result.Report, err = NewReport(selected, state.Tab, state.Filter)
	default:
		err = errors.Errorf("unknown page: %v", nav.Page)
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}
