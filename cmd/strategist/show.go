package main

import (
	"fmt"

	"github.com/gertd/go-pluralize"

	"github.com/pescuma/strategist/lib/consoles"
	"github.com/pescuma/strategist/lib/filters"
	"github.com/pescuma/strategist/lib/model"
	"github.com/pescuma/strategist/lib/session"
	"github.com/pescuma/strategist/lib/utils"
	"github.com/pescuma/strategist/lib/views"
)

type ShowCmd struct {
	cmdWithEdits

	Product model.ProductID `arg:"" optional:"" help:"Product to show. Default is the default product of the seed."`
	Tab     string          `short:"t" default:"product" help:"Report tab: product, financial, battles, market, competitors or deepResearch."`
	Status  string          `short:"s" help:"Only show must win battles with this status: In Progress, Success or Failed."`
	AllTabs bool            `short:"a" help:"Show all report tabs."`
	Form    bool            `short:"f" help:"Show the editor form, with the path of every field, instead of the report."`
	Width   int             `default:"100" help:"Width of the output."`
	Style   string          `help:"Markdown style of the deep research tab (dark, light, notty, ...). Default detects it from the terminal." env:"STRATEGIST_STYLE"`
}

func (c *ShowCmd) Run(ctx *context) error {
	es, err := c.parseEdits()
	if err != nil {
		return err
	}

	tab, err := views.ParseTab(c.Tab)
	if err != nil {
		return err
	}

	filter, err := filters.ParseBattleStatusFilter(c.Status)
	if err != nil {
		return err
	}

	return ctx.ws.Execute(func(console consoles.Console, sess *session.Session) error {
		id := utils.Coalesce(c.Product, sess.Navigation().ProductID)

		p, err := sess.GetProduct(id)
		if err != nil {
			return err
		}

		if len(es) > 0 {
			p, err = sess.Edit(id, es...)
			if err != nil {
				return err
			}

			console.Printf("Applied %v to %v\n", pluralize.NewClient().Pluralize("edit", len(es), true), p)
		}

		opts := &views.TextOptions{
			Width:         c.Width,
			MarkdownStyle: c.Style,
			Styles:        views.DefaultStyles(),
		}

		if c.Form {
			form, err := views.NewForm(p)
			if err != nil {
				return err
			}

			fmt.Fprint(ctx.out, views.RenderForm(form, opts))
			return nil
		}

		r, err := views.NewReport(p, tab, filter)
		if err != nil {
			return err
		}

		tabs := []views.Tab{tab}
		if c.AllTabs {
			tabs = views.Tabs
		}

		for _, t := range tabs {
			out, err := views.RenderReportTab(r, t, opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(ctx.out, out)
		}

		return nil
	})
}
