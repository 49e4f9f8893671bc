package workspace

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pescuma/strategist/lib/consoles"
	"github.com/pescuma/strategist/lib/session"
	"github.com/pescuma/strategist/lib/storages"
	"github.com/pescuma/strategist/lib/storages/seed"
)

type Options struct {
	// SeedFile is a YAML seed; empty uses the embedded reference products.
	SeedFile string
	// LogJSON sends console output as JSON lines instead of plain text. Both go to stderr.
	LogJSON bool
}

type Workspace struct {
	console consoles.Console
	logger  *zap.Logger
	storage storages.Storage
	session *session.Session
}

func NewWorkspace(opts *Options) (*Workspace, error) {
	if opts == nil {
		opts = &Options{}
	}

	logger := newLogger(opts.LogJSON)

	var console consoles.Console
	if opts.LogJSON {
		console = consoles.NewZapConsole(logger)
	} else {
		console = consoles.NewStdErrConsole()
	}

	return NewWorkspaceWith(console, logger, seed.NewFactory(console), opts.SeedFile)
}

// NewWorkspaceWith loads the products from the storage created by factory and starts a
// session over them.
func NewWorkspaceWith(console consoles.Console, logger *zap.Logger, factory storages.Factory, path string) (*Workspace, error) {
	storage, err := factory(path)
	if err != nil {
		return nil, err
	}

	products, err := storage.LoadProducts()
	if err != nil {
		_ = storage.Close()
		return nil, err
	}

	s, err := session.New(products)
	if err != nil {
		_ = storage.Close()
		return nil, err
	}

	return &Workspace{
		console: console,
		logger:  logger,
		storage: storage,
		session: s,
	}, nil
}

func newLogger(json bool) *zap.Logger {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if json {
		encoder = zapcore.NewJSONEncoder(config)
	} else {
		config.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(config)
	}

	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zap.InfoLevel))
}

func (w *Workspace) Close() error {
	_ = w.logger.Sync()
	return w.storage.Close()
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

func (w *Workspace) Logger() *zap.Logger {
	return w.logger
}

func (w *Workspace) Session() *session.Session {
	return w.session
}

func (w *Workspace) Execute(f func(consoles.Console, *session.Session) error) error {
	return f(w.console, w.session)
}
