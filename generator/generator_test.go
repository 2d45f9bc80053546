package generator

import (
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/Station-Manager/wrap"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uuidAdapter() Adapter {
	return Adapter{
		Name:    "uuidwrap",
		Target:  "uuid.UUID",
		Backend: "sqlite",
		Wire:    wrap.Binary,
		Imports: []string{"github.com/google/uuid"},
		Encode:  "return v[:]",
		Decode:  "return uuid.FromBytes(value)",
	}
}

func countAdapter() Adapter {
	return Adapter{
		Name:        "countwrap",
		Visibility:  Internal,
		Target:      "uint32",
		Backend:     "postgres",
		Wire:        wrap.Integer4,
		Imports:     []string{"fmt"},
		EncodeParam: "n",
		Encode:      "return int32(n)",
		Decode: `if value < 0 {
	return 0, fmt.Errorf("negative count %d", value)
}
return uint32(value), nil`,
	}
}

func TestRender(t *testing.T) {
	src, err := Render(uuidAdapter(), false)
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by wrapgen. DO NOT EDIT.")
	assert.Contains(t, out, "package uuidwrap")
	assert.Contains(t, out, `"github.com/Station-Manager/wrap/backend/sqlite"`)
	assert.Contains(t, out, `"github.com/google/uuid"`)
	assert.Contains(t, out, "func (conversion) ToIntermediate(v uuid.UUID) []byte {")
	assert.Contains(t, out, "func (conversion) FromIntermediate(value []byte) (uuid.UUID, error) {")
	assert.Contains(t, out, "type As = wrap.As[uuid.UUID, []byte, conversion, sqlite.Blob]")
	assert.Contains(t, out, "type AsOption = wrap.AsOption[uuid.UUID, []byte, conversion, sqlite.Blob]")
	assert.Contains(t, out, "func From(v uuid.UUID) As")
	assert.Contains(t, out, "func FromOption(v *uuid.UUID) AsOption")

	_, err = parser.ParseFile(token.NewFileSet(), "uuidwrap.go", src, parser.AllErrors)
	assert.NoError(t, err)
}

func TestRenderCustomParams(t *testing.T) {
	src, err := Render(countAdapter(), false)
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "func (conversion) ToIntermediate(n uint32) int32 {")
	assert.Contains(t, out, "type As = wrap.As[uint32, int32, conversion, postgres.Int4]")
	assert.Contains(t, out, `return 0, fmt.Errorf("negative count %d", value)`)
}

func TestRenderBadBody(t *testing.T) {
	s := uuidAdapter()
	s.Encode = "return v[:"
	_, err := Render(s, false)
	assert.Error(t, err)
}

func TestRenderExplicitCodec(t *testing.T) {
	s := uuidAdapter()
	s.Backend = ""
	s.Codec = "blobcodec.Codec"
	s.Intermediate = "[]byte"
	s.Imports = append(s.Imports, "example.com/blobcodec")

	src, err := Render(s, false)
	require.NoError(t, err)
	assert.Contains(t, string(src), "wrap.As[uuid.UUID, []byte, conversion, blobcodec.Codec]")
}

func TestResolve(t *testing.T) {
	s, err := Resolve(uuidAdapter())
	require.NoError(t, err)
	assert.Equal(t, "sqlite.Blob", s.Codec)
	assert.Equal(t, "[]byte", s.Intermediate)
	assert.Contains(t, s.Imports, sqliteImport)
	assert.Equal(t, Public, s.Visibility)
	assert.Equal(t, DefaultDecodeParam, s.DecodeParam)

	mismatch := uuidAdapter()
	mismatch.Intermediate = "string"
	_, err = Resolve(mismatch)
	assert.Error(t, err)

	spaced := uuidAdapter()
	spaced.Intermediate = "[] byte"
	_, err = Resolve(spaced)
	assert.NoError(t, err)

	unknown := uuidAdapter()
	unknown.Wire = wrap.TextArray
	_, err = Resolve(unknown)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Adapter)
	}{
		{"bad name", func(s *Adapter) { s.Name = "uuid-wrap" }},
		{"blank name", func(s *Adapter) { s.Name = "_" }},
		{"visibility", func(s *Adapter) { s.Visibility = "private" }},
		{"target", func(s *Adapter) { s.Target = "" }},
		{"nullable wire", func(s *Adapter) { s.Wire = wrap.Nullable(wrap.Binary) }},
		{"encode", func(s *Adapter) { s.Encode = "  " }},
		{"decode", func(s *Adapter) { s.Decode = "" }},
		{"param", func(s *Adapter) { s.DecodeParam = "1x" }},
		{"import", func(s *Adapter) { s.Imports = []string{"a b c"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Resolve(uuidAdapter())
			require.NoError(t, err)
			tt.modify(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestBuilder(t *testing.T) {
	s, err := NewBuilder("uuidwrap").
		Target("uuid.UUID", "github.com/google/uuid").
		Backend("sqlite").
		Wire(wrap.Binary).
		Encode("", "return v[:]").
		Decode("b", "return uuid.FromBytes(b)").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "sqlite.Blob", s.Codec)
	assert.Equal(t, DefaultEncodeParam, s.EncodeParam)
	assert.Equal(t, "b", s.DecodeParam)

	_, err = NewBuilder("uuidwrap").Target("uuid.UUID").Backend("sqlite").Wire(wrap.Binary).Build()
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	yamlDoc := `
adapters:
  - name: uuidwrap
    target: uuid.UUID
    backend: sqlite
    wire: binary
    imports: [github.com/google/uuid]
    encode: return v[:]
    decode: return uuid.FromBytes(value)
`
	tomlDoc := `
[[adapters]]
name = "uuidwrap"
target = "uuid.UUID"
backend = "sqlite"
wire = "binary"
imports = ["github.com/google/uuid"]
encode = "return v[:]"
decode = "return uuid.FromBytes(value)"
`
	jsonDoc := `{"adapters": [{
  "name": "uuidwrap", "target": "uuid.UUID", "backend": "sqlite", "wire": "binary",
  "imports": ["github.com/google/uuid"],
  "encode": "return v[:]", "decode": "return uuid.FromBytes(value)"
}]}`

	tests := []struct {
		ext  string
		data string
	}{
		{".yaml", yamlDoc},
		{"yml", yamlDoc},
		{".toml", tomlDoc},
		{".JSON", jsonDoc},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			adapters, err := Parse([]byte(tt.data), tt.ext)
			require.NoError(t, err)
			require.Len(t, adapters, 1)
			assert.Equal(t, "uuidwrap", adapters[0].Name)
			assert.Equal(t, wrap.Binary, adapters[0].Wire)
			assert.Equal(t, Public, adapters[0].Visibility)
			assert.Equal(t, []string{"github.com/google/uuid"}, adapters[0].Imports)
		})
	}

	_, err := Parse([]byte(yamlDoc), ".ini")
	assert.Error(t, err)

	_, err = Parse([]byte("adapters: []"), ".yaml")
	assert.Error(t, err)

	_, err = Parse([]byte("{"), ".json")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "adapters.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[adapters]]
name = "countwrap"
target = "uint32"
backend = "postgres"
wire = "integer-4-byte"
encode = "return int32(v)"
decode = "return uint32(value), nil"
`), 0o644))

	adapters, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, adapters, 1)
	assert.Equal(t, wrap.Integer4, adapters[0].Wire)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	g := New(WithOutputDir(dir), WithConcurrency(2), WithLogger(hclog.NewNullLogger()))

	paths, err := g.Generate(context.Background(), uuidAdapter(), countAdapter())
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "internal", "countwrap", "countwrap.go"),
		filepath.Join(dir, "uuidwrap", "uuidwrap.go"),
	}, paths)

	for _, p := range paths {
		src, err := os.ReadFile(p)
		require.NoError(t, err)
		_, err = parser.ParseFile(token.NewFileSet(), p, src, parser.AllErrors)
		assert.NoError(t, err)
	}
}

func TestGenerateRejectsBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	g := New(WithOutputDir(dir))

	bad := countAdapter()
	bad.Target = ""
	_, err := g.Generate(context.Background(), uuidAdapter(), bad)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = g.Generate(context.Background(), uuidAdapter(), uuidAdapter())
	assert.Error(t, err)

	_, err = g.Generate(context.Background())
	assert.Error(t, err)
}

func TestGenerateBadBodyWritesNothing(t *testing.T) {
	dir := t.TempDir()
	g := New(WithOutputDir(dir), WithConcurrency(1))

	bad := countAdapter()
	bad.Encode = "return v[:"
	_, err := g.Generate(context.Background(), uuidAdapter(), bad)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(WithOutputDir(t.TempDir())).Generate(ctx, uuidAdapter())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPath(t *testing.T) {
	g := New(WithOutputDir("out"))
	assert.Equal(t, filepath.Join("out", "uuidwrap", "uuidwrap.go"), g.Path(uuidAdapter()))
	assert.Equal(t, filepath.Join("out", "internal", "countwrap", "countwrap.go"), g.Path(countAdapter()))
}

func TestExampleAdaptersUpToDate(t *testing.T) {
	adapters, err := LoadFile(filepath.Join("..", "examples", "adapters.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, adapters)

	g := New(WithOutputDir(filepath.Join("..", "examples")))
	for _, a := range adapters {
		t.Run(a.Name, func(t *testing.T) {
			want, err := os.ReadFile(g.Path(a))
			require.NoError(t, err)

			got, err := g.Render(a)
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got), "regenerate with go generate ./examples")
		})
	}
}
