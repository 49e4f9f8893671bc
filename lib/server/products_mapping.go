package server

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/strategist/lib/model"
)

func (s *server) toProductReference(p *model.Product, nav model.Navigation) gin.H {
	return gin.H{
		"id":           p.ID,
		"name":         p.Name(),
		"businessUnit": p.ProductInfo.BusinessUnit,
		"selected":     p.ID == nav.ProductID,
	}
}

func (s *server) toProduct(p *model.Product) gin.H {
	info := p.ProductInfo
	fi := p.FinancialInfo

	return gin.H{
		"id": p.ID,
		"productInfo": gin.H{
			"name":         info.Name,
			"businessUnit": info.BusinessUnit,
			"description":  info.Description,
			"aspiration":   info.Aspiration,
			"imageUrl":     info.ImageURL,
		},
		"financialInfo": gin.H{
			"pastRevenue":     fi.PastRevenue,
			"pastEbit":        fi.PastEBIT,
			"forecastRevenue": lo.Map(fi.ForecastRevenue[:], s.toFinancialYear),
			"forecastEbit":    lo.Map(fi.ForecastEBIT[:], s.toFinancialYear),
			"description":     fi.Description,
		},
		"mustWinBattles": lo.Map(p.MustWinBattles, func(b *model.MustWinBattle, _ int) gin.H { return s.toBattle(b) }),
		"marketInfo": gin.H{
			"definition":      p.MarketInfo.Definition,
			"growthPotential": p.MarketInfo.GrowthPotential,
			"topCustomers":    lo.Map(p.MarketInfo.TopCustomers[:], func(c *model.Customer, _ int) gin.H { return s.toCustomer(c) }),
		},
		"competitorLandscape": gin.H{
			"topCompetitors": lo.Map(p.CompetitorLandscape.TopCompetitors[:], func(c *model.Competitor, _ int) gin.H { return s.toCompetitor(c) }),
		},
	}
}

func (s *server) toFinancialYear(y model.FinancialYear, _ int) gin.H {
	result := gin.H{}
	for _, sc := range model.Scenarios {
		result[sc.String()] = y.Get(sc)
	}
	return result
}

func (s *server) toBattle(b *model.MustWinBattle) gin.H {
	return gin.H{
		"id":          b.ID,
		"title":       b.Title,
		"description": b.Description,
		"salesImpact": b.SalesImpact,
		"ebitImpact":  b.EBITImpact,
		"targetDate":  b.TargetDate,
		"responsible": b.Responsible,
		"status":      b.Status.String(),
	}
}

func (s *server) toCustomer(c *model.Customer) gin.H {
	return gin.H{
		"id":                c.ID,
		"name":              c.Name,
		"salesLastFY":       c.SalesLastFY,
		"percentageOfTotal": c.PercentageOfTotal,
	}
}

func (s *server) toCompetitor(c *model.Competitor) gin.H {
	return gin.H{
		"id":          c.ID,
		"name":        c.Name,
		"hqLocation":  c.HQLocation,
		"sales":       c.Sales,
		"marketShare": c.MarketShare,
		"strategy":    c.Strategy,
		"latestMove":  c.LatestMove,
	}
}

func (s *server) toNavigation(nav model.Navigation) gin.H {
	return gin.H{
		"product": nav.ProductID,
		"page":    nav.Page.String(),
	}
}
