package main

import (
	"github.com/pescuma/strategist/lib/consoles"
	"github.com/pescuma/strategist/lib/session"
	"github.com/pescuma/strategist/lib/tui"
)

type TuiCmd struct {
	Style string `help:"Markdown style of the deep research tab (dark, light, notty, ...). Default detects it from the terminal." env:"STRATEGIST_STYLE"`
}

func (c *TuiCmd) Run(ctx *context) error {
	return ctx.ws.Execute(func(_ consoles.Console, sess *session.Session) error {
		return tui.Run(sess, &tui.Options{
			MarkdownStyle: c.Style,
		})
	})
}
