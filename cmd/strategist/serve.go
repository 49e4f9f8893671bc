package main

import (
	"github.com/pescuma/strategist/lib/consoles"
	"github.com/pescuma/strategist/lib/server"
	"github.com/pescuma/strategist/lib/session"
)

type ServeCmd struct {
	Host string `help:"Interface to listen on. Default is all of them." env:"STRATEGIST_HOST"`
	Port uint   `default:"2724" help:"Port to listen to." env:"STRATEGIST_PORT"`
}

func (c *ServeCmd) Run(ctx *context) error {
	return ctx.ws.Execute(func(console consoles.Console, sess *session.Session) error {
		return server.Run(console, ctx.ws.Logger(), sess, &server.Options{
			Host: c.Host,
			Port: c.Port,
		})
	})
}
