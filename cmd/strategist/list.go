package main

import (
	"fmt"

	"github.com/gertd/go-pluralize"

	"github.com/pescuma/strategist/lib/consoles"
	"github.com/pescuma/strategist/lib/session"
	"github.com/pescuma/strategist/lib/utils"
)

type ListCmd struct {
	cmdWithFilters
}

func (c *ListCmd) Run(ctx *context) error {
	filter, err := c.createFilter()
	if err != nil {
		return err
	}

	return ctx.ws.Execute(func(_ consoles.Console, sess *session.Session) error {
		pc := pluralize.NewClient()
		nav := sess.Navigation()

		products := filter.Apply(sess.ListProducts())
		for _, p := range products {
			fmt.Fprintf(ctx.out, "%v %-10v %-20v %-20v %v\n",
				utils.IIf(p.ID == nav.ProductID, "*", " "),
				p.ID, p.Name(), p.ProductInfo.BusinessUnit,
				pc.Pluralize("must win battle", len(p.MustWinBattles), true))
		}

		fmt.Fprintln(ctx.out)
		fmt.Fprintln(ctx.out, pc.Pluralize("product", len(products), true))

		return nil
	})
}
