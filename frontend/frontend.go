package frontend

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// Templates parses the page templates. The entry point is "layout.html".
func Templates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templates, "templates/*.html")
}

// Static holds the files served under /static.
func Static() fs.FS {
	result, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return result
}
