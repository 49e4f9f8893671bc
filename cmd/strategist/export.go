package main

import (
	"os"

	"github.com/pescuma/strategist/lib/consoles"
	"github.com/pescuma/strategist/lib/model"
	"github.com/pescuma/strategist/lib/session"
	"github.com/pescuma/strategist/lib/storages/seed"
	"github.com/pescuma/strategist/lib/utils"
)

type ExportCmd struct {
	cmdWithEdits

	Product model.ProductID `short:"p" help:"Product the --set edits apply to. Default is the default product of the seed."`
	Output  string          `short:"o" type:"path" help:"File to write. Default is stdout."`
}

func (c *ExportCmd) Run(ctx *context) error {
	es, err := c.parseEdits()
	if err != nil {
		return err
	}

	return ctx.ws.Execute(func(console consoles.Console, sess *session.Session) error {
		if len(es) > 0 {
			_, err := sess.Edit(utils.Coalesce(c.Product, sess.Navigation().ProductID), es...)
			if err != nil {
				return err
			}
		}

		if c.Output == "" {
			return seed.Write(ctx.out, sess.Export())
		}

		console.Printf("Writing %v ...\n", c.Output)

		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}

		err = seed.Write(f, sess.Export())
		if err != nil {
			_ = f.Close()
			return err
		}

		return f.Close()
	})
}
