package generator

import "github.com/Station-Manager/wrap"

// Builder provides a fluent API to construct an Adapter in code.
type Builder struct {
	adapter Adapter
}

// NewBuilder starts an adapter for the package name.
func NewBuilder(name string) *Builder {
	return &Builder{adapter: Adapter{Name: name}}
}

// Target sets the domain type expression and the imports it needs.
func (b *Builder) Target(expr string, imports ...string) *Builder {
	b.adapter.Target = expr
	b.adapter.Imports = append(b.adapter.Imports, imports...)
	return b
}

func (b *Builder) Backend(name string) *Builder { b.adapter.Backend = name; return b }

func (b *Builder) Wire(w wrap.WireType) *Builder { b.adapter.Wire = w; return b }

// Intermediate may be left unset when the backend and wire type select a bundled codec.
func (b *Builder) Intermediate(expr string) *Builder { b.adapter.Intermediate = expr; return b }

// Codec names a codec type outside the bundled backends.
func (b *Builder) Codec(expr string, imports ...string) *Builder {
	b.adapter.Codec = expr
	b.adapter.Imports = append(b.adapter.Imports, imports...)
	return b
}

func (b *Builder) Visibility(v Visibility) *Builder { b.adapter.Visibility = v; return b }

func (b *Builder) Import(imports ...string) *Builder {
	b.adapter.Imports = append(b.adapter.Imports, imports...)
	return b
}

// Encode sets the ToIntermediate body; an empty param keeps DefaultEncodeParam.
func (b *Builder) Encode(param, body string) *Builder {
	b.adapter.EncodeParam = param
	b.adapter.Encode = body
	return b
}

// Decode sets the FromIntermediate body; an empty param keeps DefaultDecodeParam.
func (b *Builder) Decode(param, body string) *Builder {
	b.adapter.DecodeParam = param
	b.adapter.Decode = body
	return b
}

// Build resolves and validates the adapter.
func (b *Builder) Build() (Adapter, error) {
	s, err := Resolve(b.adapter)
	if err != nil {
		return Adapter{}, err
	}
	if err = s.Validate(); err != nil {
		return Adapter{}, err
	}
	return s, nil
}
