package server

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pescuma/strategist/frontend"
	"github.com/pescuma/strategist/lib/consoles"
	"github.com/pescuma/strategist/lib/session"
)

type Options struct {
	Host string
	Port uint
}

func Run(console consoles.Console, logger *zap.Logger, sess *session.Session, opts *Options) error {
	gin.SetMode(gin.ReleaseMode)

	s := newServer(sess, logger, opts)

	r, err := s.engine()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%v:%v", s.opts.Host, s.opts.Port)
	console.Printf("Starting server on http://%v ...\n", addr)

	return r.Run(addr)
}

type server struct {
	opts    *Options
	session *session.Session
	logger  *zap.Logger
}

func newServer(sess *session.Session, logger *zap.Logger, opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = 2724
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &server{
		opts:    opts,
		session: sess,
		logger:  logger,
	}
}

func (s *server) engine() (*gin.Engine, error) {
	r := gin.New()
	r.Use(logRequests(s.logger), gin.Recovery())

	tmpl, err := frontend.Templates(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	})
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(frontend.Static()))

	s.initPages(r)
	s.initProducts(r)
	s.initNavigation(r)

	return r, nil
}
