package generator

import "github.com/hashicorp/go-hclog"

type Options struct {
	OutputDir   string       // root the generated packages are written under
	FixImports  bool         // when true, add missing and drop unused imports instead of only formatting
	Concurrency int          // maximum packages rendered at once
	Logger      hclog.Logger // debug output per generated package
}

type Option func(*Options)

func WithOutputDir(dir string) Option { return func(o *Options) { o.OutputDir = dir } }
func WithFixImports(v bool) Option { return func(o *Options) { o.FixImports = v } }
func WithConcurrency(n int) Option { return func(o *Options) { o.Concurrency = n } }
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
