package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/strategist/lib/edits"
	"github.com/pescuma/strategist/lib/filters"
	"github.com/pescuma/strategist/lib/model"
	"github.com/pescuma/strategist/lib/views"
)

type PageParams struct {
	Tab    string `form:"tab"`
	Status string `form:"status"`
}

type SelectProductParams struct {
	Product model.ProductID `form:"product" binding:"required"`
}

type SelectPageParams struct {
	Page string `form:"page" binding:"required"`
}

type EditParams struct {
	Path  string `form:"path" binding:"required"`
	Value string `form:"value"`
}

// PageProductParams names the product a page form was rendered for. Forms carry it so that a
// stale page never edits whatever product happens to be selected now.
type PageProductParams struct {
	Product model.ProductID `uri:"productID" binding:"required"`
}

type BattleParams struct {
	Product  model.ProductID `uri:"productID" binding:"required"`
	BattleID model.UUID      `uri:"battleID" binding:"required"`
}

func (s *server) initPages(r *gin.Engine) {
	r.GET("/", s.pageGet)
	r.POST("/navigation/product", s.pageSelectProduct)
	r.POST("/navigation/page", s.pageSelectPage)
	r.POST("/products/:productID/edit", s.pageEdit)
	r.POST("/products/:productID/battles", s.pageAddBattle)
	r.POST("/products/:productID/battles/:battleID/delete", s.pageRemoveBattle)
}

func sendPageError(c *gin.Context, err error) {
	c.String(statusFor(err), err.Error())
}

func redirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *server) pageGet(c *gin.Context) {
	var params PageParams

	err := c.ShouldBindQuery(&params)
	if err != nil {
		sendPageError(c, badRequest(err))
		return
	}

	tab, err := views.ParseTab(params.Tab)
	if err != nil {
		sendPageError(c, badRequest(err))
		return
	}

	filter, err := filters.ParseBattleStatusFilter(params.Status)
	if err != nil {
		sendPageError(c, badRequest(err))
		return
	}

	selected, nav := s.session.Selected()

	page, err := views.NewPage(s.session.ListProducts(), selected, nav, views.ReportState{Tab: tab, Filter: filter})
	if err != nil {
		sendPageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "layout.html", page)
}

func (s *server) pageSelectProduct(c *gin.Context) {
	var params SelectProductParams

	err := c.ShouldBind(&params)
	if err != nil {
		sendPageError(c, badRequest(err))
		return
	}

	_, err = s.session.SelectProduct(params.Product)
	if err != nil {
		sendPageError(c, err)
		return
	}

	redirectHome(c)
}

func (s *server) pageSelectPage(c *gin.Context) {
	var params SelectPageParams

	err := c.ShouldBind(&params)
	if err != nil {
		sendPageError(c, badRequest(err))
		return
	}

	page, err := model.ParsePage(params.Page)
	if err != nil {
		sendPageError(c, badRequest(err))
		return
	}

	s.session.SelectPage(page)

	redirectHome(c)
}

// pageEdit is called by the page script on every keystroke, and by the plain form
// submit when scripts are disabled.
func (s *server) pageEdit(c *gin.Context) {
	var product PageProductParams
	var params EditParams

	err := c.ShouldBindUri(&product)
	if err == nil {
		err = c.ShouldBind(&params)
	}
	if err == nil {
		_, err = s.session.Edit(product.Product, edits.Edit{Path: params.Path, Value: params.Value})
	} else {
		err = badRequest(err)
	}

	switch {
	case wantsJSON(c) && err != nil:
		sendError(c, err)
	case wantsJSON(c):
		c.JSON(http.StatusOK, gin.H{"ok": true})
	case err != nil:
		sendPageError(c, err)
	default:
		redirectHome(c)
	}
}

func (s *server) pageAddBattle(c *gin.Context) {
	var params PageProductParams

	err := c.ShouldBindUri(&params)
	if err != nil {
		sendPageError(c, badRequest(err))
		return
	}

	_, _, err = s.session.AddBattle(params.Product)
	if err != nil {
		sendPageError(c, err)
		return
	}

	redirectHome(c)
}

func (s *server) pageRemoveBattle(c *gin.Context) {
	var params BattleParams

	err := c.ShouldBindUri(&params)
	if err != nil {
		sendPageError(c, badRequest(err))
		return
	}

	_, err = s.session.RemoveBattle(params.Product, params.BattleID)
	if err != nil {
		sendPageError(c, err)
		return
	}

	redirectHome(c)
}
