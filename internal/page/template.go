package page

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"sync"

	"github.com/dmorgan81/fluxgate/internal/config"
	"github.com/dmorgan81/fluxgate/internal/log"
	"github.com/samber/do"
)

//go:embed assets/index.html
var indexTmpl string

type Params struct {
	Model         string
	MinDimension  int
	MaxDimension  int
	DefaultWidth  int
	DefaultHeight int
}

type Templator struct {
	Params Params
	tmpl   *template.Template
	once   sync.Once
}

func NewTemplator(i *do.Injector) (*Templator, error) {
	cfg := do.MustInvoke[config.Config](i)
	return &Templator{Params: Params{
		Model:         cfg.Gateway.Model,
		MinDimension:  cfg.Limits.MinDimension,
		MaxDimension:  cfg.Limits.MaxDimension,
		DefaultWidth:  cfg.Limits.DefaultWidth,
		DefaultHeight: cfg.Limits.DefaultHeight,
	}}, nil
}

func (g *Templator) Template(ctx context.Context) ([]byte, error) {
	g.once.Do(func() {
		g.tmpl = template.Must(template.New("index").Parse(indexTmpl))
	})

	log := log.FromContextOrDiscard(ctx).WithGroup("templator")
	log.Info("generating page")

	var data bytes.Buffer
	if err := g.tmpl.Execute(&data, g.Params); err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}
