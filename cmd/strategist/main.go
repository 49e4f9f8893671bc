package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/pescuma/strategist/lib/utils"
	"github.com/pescuma/strategist/lib/workspace"
)

var cli struct {
	Seed    string `help:"YAML file with the initial products. Default is the built-in reference products." type:"path" env:"STRATEGIST_SEED"`
	LogJSON bool   `name:"log-json" help:"Write log messages as JSON lines to stderr." env:"STRATEGIST_LOG_JSON"`

	Serve  ServeCmd  `cmd:"" help:"Start the web editor."`
	Tui    TuiCmd    `cmd:"" help:"Start the terminal editor."`
	List   ListCmd   `cmd:"" help:"List the products."`
	Show   ShowCmd   `cmd:"" help:"Print the report of a product."`
	Export ExportCmd `cmd:"" help:"Write the products as a seed file, after optional edits."`
}

type context struct {
	ws *workspace.Workspace
	// out receives command results. Progress messages go to the console, on stderr.
	out io.Writer
}

func main() {
	parser := kong.Must(&cli,
		kong.Name("strategist"),
		kong.Description("YYZ Strategy Suite: edit and review product strategies."),
		kong.ShortUsageOnError(),
	)

	// Has to run before parsing, so the env defaults of the flags see it.
	parser.FatalIfErrorf(loadDotEnv(".env"))

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	ws, err := workspace.NewWorkspace(&workspace.Options{
		SeedFile: cli.Seed,
		LogJSON:  cli.LogJSON,
	})
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&context{
		ws:  ws,
		out: os.Stdout,
	})
	closeErr := ws.Close()

	ctx.FatalIfErrorf(err)
	ctx.FatalIfErrorf(closeErr)
}

// loadDotEnv fills the environment from file, when it exists. Variables already set win.
func loadDotEnv(file string) error {
	exists, err := utils.FileExists(file)
	if err != nil || !exists {
		return err
	}

	return godotenv.Load(file)
}
