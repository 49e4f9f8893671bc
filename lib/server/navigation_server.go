package server

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/pescuma/strategist/lib/model"
)

type NavigationPutParams struct {
	Product model.ProductID `json:"product"`
	Page    string          `json:"page"`
}

func (s *server) initNavigation(r *gin.Engine) {
	r.GET("/api/navigation", get(s.navigationGet))
	r.PUT("/api/navigation", patchP[NavigationPutParams](s.navigationPut))
}

func (s *server) navigationGet() (any, error) {
	return s.toNavigation(s.session.Navigation()), nil
}

// navigationPut moves to the given product and page. An empty page means the landing
// page, as happens when a product is selected.
func (s *server) navigationPut(params *NavigationPutParams) (any, error) {
	if params.Product == "" {
		return nil, badRequest(errors.New("missing product"))
	}

	page := model.LandingPage
	if params.Page != "" {
		var err error
		page, err = model.ParsePage(params.Page)
		if err != nil {
			return nil, badRequest(err)
		}
	}

	nav := model.NewNavigation(params.Product).SelectPage(page)

	err := s.session.SetNavigation(nav)
	if err != nil {
		return nil, err
	}

	return s.toNavigation(nav), nil
}
