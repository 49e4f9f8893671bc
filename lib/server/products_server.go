package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/strategist/lib/edits"
	"github.com/pescuma/strategist/lib/filters"
	"github.com/pescuma/strategist/lib/model"
	"github.com/pescuma/strategist/lib/storages/seed"
)

type ProductParams struct {
	ProductID model.ProductID `uri:"id" binding:"required"`
}

type ProductPatchParams struct {
	ProductID model.ProductID `uri:"id" binding:"required"`
	Path      string          `json:"path"`
	Value     string          `json:"value"`
}

type ProductBattleParams struct {
	ProductID model.ProductID `uri:"id" binding:"required"`
	BattleID  model.UUID      `uri:"battleID" binding:"required"`
}

type BattlesListParams struct {
	ProductID model.ProductID `uri:"id" binding:"required"`
	Status    string          `form:"status"`
}

func (s *server) initProducts(r *gin.Engine) {
	r.GET("/api/products", get(s.productsList))
	r.GET("/api/products/:id", getP[ProductParams](s.productGet))
	r.PATCH("/api/products/:id", patchP[ProductPatchParams](s.productPatch))
	r.GET("/api/products/:id/battles", getP[BattlesListParams](s.battlesList))
	r.POST("/api/products/:id/battles", postP[ProductParams](s.battleAdd))
	r.DELETE("/api/products/:id/battles/:battleID", postP[ProductBattleParams](s.battleRemove))
	r.GET("/api/countries", get(s.countriesList))
	r.GET("/api/export", s.export)
}

func (s *server) productsList() (any, error) {
	nav := s.session.Navigation()

	return lo.Map(s.session.ListProducts(), func(p *model.Product, _ int) gin.H {
		return s.toProductReference(p, nav)
	}), nil
}

func (s *server) productGet(params *ProductParams) (any, error) {
	p, err := s.session.GetProduct(params.ProductID)
	if err != nil {
		return nil, err
	}

	return s.toProduct(p), nil
}

func (s *server) productPatch(params *ProductPatchParams) (any, error) {
	p, err := s.session.Edit(params.ProductID, edits.Edit{Path: params.Path, Value: params.Value})
	if err != nil {
		return nil, err
	}

	return s.toProduct(p), nil
}

func (s *server) battlesList(params *BattlesListParams) (any, error) {
	filter, err := filters.ParseBattleStatusFilter(params.Status)
	if err != nil {
		return nil, badRequest(err)
	}

	p, err := s.session.GetProduct(params.ProductID)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"filter":  filter.String(),
		"total":   len(p.MustWinBattles),
		"battles": lo.Map(filter.Apply(p.MustWinBattles), func(b *model.MustWinBattle, _ int) gin.H { return s.toBattle(b) }),
	}, nil
}

func (s *server) battleAdd(params *ProductParams) (any, error) {
	_, b, err := s.session.AddBattle(params.ProductID)
	if err != nil {
		return nil, err
	}

	return s.toBattle(b), nil
}

func (s *server) battleRemove(params *ProductBattleParams) (any, error) {
	p, err := s.session.RemoveBattle(params.ProductID, params.BattleID)
	if err != nil {
		return nil, err
	}

	return s.toProduct(p), nil
}

func (s *server) countriesList() (any, error) {
	return model.Countries, nil
}

// export returns the current state as a seed document that can be loaded with --seed.
func (s *server) export(c *gin.Context) {
	var buf bytes.Buffer

	err := seed.Write(&buf, s.session.Export())
	if err != nil {
		sendError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="products.yaml"`)
	c.Data(http.StatusOK, "application/yaml", buf.Bytes())
}
