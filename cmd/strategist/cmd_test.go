package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/strategist/lib/edits"
	"github.com/pescuma/strategist/lib/model"
	"github.com/pescuma/strategist/lib/storages/seed"
	"github.com/pescuma/strategist/lib/workspace"
)

func newTestContext(t *testing.T, opts *workspace.Options) (*context, *bytes.Buffer) {
	ws, err := workspace.NewWorkspace(opts)
	require.Nil(t, err)
	t.Cleanup(func() { _ = ws.Close() })

	out := &bytes.Buffer{}
	return &context{ws: ws, out: out}, out
}

func TestParseEdits(t *testing.T) {
	t.Parallel()

	c := cmdWithEdits{Set: []string{
		"financialInfo.pastRevenue.0=130",
		" productInfo.name =Y=Phone, 2",
		"productInfo.description=",
	}}

	es, err := c.parseEdits()

	assert.Nil(t, err)
	assert.Equal(t, []edits.Edit{
		{Path: "financialInfo.pastRevenue.0", Value: "130"},
		{Path: "productInfo.name", Value: "Y=Phone, 2"},
		{Path: "productInfo.description", Value: ""},
	}, es)
}

func TestParseEditsWithoutValue(t *testing.T) {
	t.Parallel()

	c := cmdWithEdits{Set: []string{"productInfo.name"}}

	_, err := c.parseEdits()

	assert.NotNil(t, err)
}

func TestCreateFilter(t *testing.T) {
	t.Parallel()

	products := []*model.Product{model.NewProduct("yphone"), model.NewProduct("ytablet"), model.NewProduct("ywatch")}
	products[0].ProductInfo.Name = "YPhone"

	c := cmdWithFilters{Include: []string{"y*"}, Exclude: []string{"ytablet"}}

	filter, err := c.createFilter()
	assert.Nil(t, err)

	result := filter.Apply(products)
	assert.Equal(t, []*model.Product{products[0], products[2]}, result)
}

func TestExportCanBeLoadedBack(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext(t, nil)

	c := &ExportCmd{cmdWithEdits: cmdWithEdits{Set: []string{"productInfo.name=YPhone 2"}}}
	require.Nil(t, c.Run(ctx))

	products, err := seed.Parse(bytes.NewReader(out.Bytes()))
	require.Nil(t, err)
	assert.Equal(t, 3, products.Len())
	assert.Equal(t, "YPhone 2", products.Get("yphone").ProductInfo.Name)

	file := filepath.Join(t.TempDir(), "export.yaml")
	require.Nil(t, os.WriteFile(file, out.Bytes(), 0o600))

	ctx, out = newTestContext(t, &workspace.Options{SeedFile: file})

	require.Nil(t, (&ListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "YPhone 2")
	assert.Contains(t, out.String(), "3 products")
}

func TestExportToFile(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext(t, nil)
	file := filepath.Join(t.TempDir(), "export.yaml")

	c := &ExportCmd{
		cmdWithEdits: cmdWithEdits{Set: []string{"mustWinBattles.mwb1.status=Failed"}},
		Product:      "ywatch",
		Output:       file,
	}
	require.Nil(t, c.Run(ctx))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(file)
	require.Nil(t, err)

	products, err := seed.Parse(bytes.NewReader(data))
	require.Nil(t, err)
	assert.Equal(t, model.Failed, products.Get("ywatch").MustWinBattles[0].Status)
	assert.Equal(t, model.InProgress, products.Get("yphone").MustWinBattles[0].Status)
}

func TestExportWithInvalidEdit(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext(t, nil)

	c := &ExportCmd{cmdWithEdits: cmdWithEdits{Set: []string{"financialInfo.pastRevenue.0=abc"}}}

	assert.NotNil(t, c.Run(ctx))
	assert.Empty(t, out.String())
}

func TestList(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext(t, nil)

	c := &ListCmd{cmdWithFilters: cmdWithFilters{Exclude: []string{"ytablet"}}}
	require.Nil(t, c.Run(ctx))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "* yphone"))
	assert.True(t, strings.HasPrefix(lines[1], "  ywatch"))
	assert.Equal(t, "2 products", lines[3])
}

func TestShow(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext(t, nil)

	c := &ShowCmd{
		cmdWithEdits: cmdWithEdits{Set: []string{"productInfo.businessUnit=Phones"}},
		Tab:          "product",
		Width:        100,
		Style:        "notty",
	}
	require.Nil(t, c.Run(ctx))

	assert.Contains(t, out.String(), "Phones")
	assert.NotContains(t, out.String(), "Applied")

	out.Reset()
	c = &ShowCmd{Product: "yphone", Form: true, Width: 100, Style: "notty"}
	require.Nil(t, c.Run(ctx))

	assert.Contains(t, out.String(), "productInfo.businessUnit")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	assert.Nil(t, loadDotEnv(filepath.Join(dir, "missing.env")))

	file := filepath.Join(dir, ".env")
	require.Nil(t, os.WriteFile(file, []byte("STRATEGIST_DOTENV_TEST=from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("STRATEGIST_DOTENV_TEST") })

	require.Nil(t, loadDotEnv(file))
	assert.Equal(t, "from-file", os.Getenv("STRATEGIST_DOTENV_TEST"))
}
