// Package generator emits adapter packages from adapter declarations.
//
// Each generated package holds a conversion type built from the adapter's encode and decode
// bodies, the aliases As and AsOption over wrap.As and wrap.AsOption, and the From and
// FromOption constructors. Whether the intermediate type really suits the codec is
// checked twice: by Resolve for codecs the registry knows, and by the compiler when the
// generated package is built.
package generator

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/Station-Manager/errors"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"
)

// Generator renders and writes adapter packages.
type Generator struct {
	options Options
}

// New creates a Generator writing under the current directory by default.
func New(opts ...Option) *Generator {
	o := Options{OutputDir: ".", Concurrency: runtime.GOMAXPROCS(0)}
	for _, f := range opts {
		f(&o)
	}
	if o.Logger == nil {
		o.Logger = hclog.NewNullLogger()
	}
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}
	return &Generator{options: o}
}

// Path returns the file the package for s is written to.
func (g *Generator) Path(s Adapter) string {
	s = s.withDefaults()
	dir := g.options.OutputDir
	if s.Visibility == Internal {
		dir = filepath.Join(dir, "internal")
	}
	return filepath.Join(dir, s.Name, s.Name+".go")
}

// Render returns the source for s without writing it.
func (g *Generator) Render(s Adapter) ([]byte, error) {
	return Render(s, g.options.FixImports)
}

// Generate renders every adapter and writes the results. Nothing is written unless every
// adapter resolves, validates and renders. It returns the written paths in sorted order.
func (g *Generator) Generate(ctx context.Context, adapters ...Adapter) ([]string, error) {
	const op errors.Op = "generator.Generator.Generate"
	if len(adapters) == 0 {
		return nil, errors.New(op).Msg("no adapters to generate")
	}

	resolved := make([]Adapter, len(adapters))
	seen := make(map[string]string, len(adapters))
	for i, s := range adapters {
		r, err := Resolve(s)
		if err != nil {
			return nil, errors.New(op).Err(err)
		}
		if err = r.Validate(); err != nil {
			return nil, errors.New(op).Err(err)
		}
		path := g.Path(r)
		if prev, dup := seen[path]; dup {
			return nil, errors.New(op).Errorf("adapters %s and %s both write %s", prev, r.Name, path)
		}
		seen[path] = r.Name
		resolved[i] = r
	}

	logger := g.options.Logger.Named("generator")
	sources := make([][]byte, len(resolved))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.options.Concurrency)
	for i, s := range resolved {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			src, err := g.Render(s)
			if err != nil {
				return err
			}
			sources[i] = src
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paths := make([]string, len(resolved))
	for i, s := range resolved {
		path := g.Path(s)
		if err := writeFile(path, sources[i]); err != nil {
			return nil, errors.New(op).Err(err)
		}
		logger.Debug("generated adapter", "name", s.Name, "target", s.Target, "backend", s.Backend, "wire", s.Wire, "path", path)
		paths[i] = path
	}

	sort.Strings(paths)
	logger.Info("generated adapters", "count", len(paths), "out", g.options.OutputDir)
	return paths, nil
}

func writeFile(path string, src []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, src, 0o644)
}
