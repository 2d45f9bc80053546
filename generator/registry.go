package generator

import (
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/wrap"
)

const (
	wrapImport     = "github.com/Station-Manager/wrap"
	sqliteImport   = "github.com/Station-Manager/wrap/backend/sqlite"
	postgresImport = "github.com/Station-Manager/wrap/backend/postgres"
	boilerImport   = "github.com/aarondl/sqlboiler/v4/types"
)

// CodecInfo describes a bundled codec to the generator.
type CodecInfo struct {
	Expr         string
	Intermediate string
	Imports      []string
}

var registry = map[string]map[wrap.WireType]CodecInfo{
	"sqlite": {
		wrap.Binary:    {Expr: "sqlite.Blob", Intermediate: "[]byte", Imports: []string{sqliteImport}},
		wrap.Integer4:  {Expr: "sqlite.Int4", Intermediate: "int32", Imports: []string{sqliteImport}},
		wrap.Integer8:  {Expr: "sqlite.Integer", Intermediate: "int64", Imports: []string{sqliteImport}},
		wrap.Float8:    {Expr: "sqlite.Real", Intermediate: "float64", Imports: []string{sqliteImport}},
		wrap.Boolean:   {Expr: "sqlite.Bool", Intermediate: "bool", Imports: []string{sqliteImport}},
		wrap.Text:      {Expr: "sqlite.Text", Intermediate: "string", Imports: []string{sqliteImport}},
		wrap.Timestamp: {Expr: "sqlite.Timestamp", Intermediate: "time.Time", Imports: []string{sqliteImport, "time"}},
		wrap.JSON:      {Expr: "sqlite.JSON", Intermediate: "types.JSON", Imports: []string{sqliteImport, boilerImport}},
	},
	"postgres": {
		wrap.Binary:    {Expr: "postgres.Bytea", Intermediate: "[]byte", Imports: []string{postgresImport}},
		wrap.Integer4:  {Expr: "postgres.Int4", Intermediate: "int32", Imports: []string{postgresImport}},
		wrap.Integer8:  {Expr: "postgres.Int8", Intermediate: "int64", Imports: []string{postgresImport}},
		wrap.Float8:    {Expr: "postgres.Float8", Intermediate: "float64", Imports: []string{postgresImport}},
		wrap.Boolean:   {Expr: "postgres.Bool", Intermediate: "bool", Imports: []string{postgresImport}},
		wrap.Text:      {Expr: "postgres.Text", Intermediate: "string", Imports: []string{postgresImport}},
		wrap.Timestamp: {Expr: "postgres.Timestamptz", Intermediate: "time.Time", Imports: []string{postgresImport, "time"}},
		wrap.Numeric:   {Expr: "postgres.Numeric", Intermediate: "types.Decimal", Imports: []string{postgresImport, boilerImport}},
		wrap.JSON:      {Expr: "postgres.JSONB", Intermediate: "types.JSON", Imports: []string{postgresImport, boilerImport}},
		wrap.TextArray: {Expr: "postgres.TextArray", Intermediate: "[]string", Imports: []string{postgresImport}},
	},
}

// LookupCodec returns the bundled codec for backend and wire.
func LookupCodec(backend string, wire wrap.WireType) (CodecInfo, bool) {
	info, ok := registry[strings.ToLower(backend)][wire]
	return info, ok
}

// Backends lists the backends the registry knows.
func Backends() []string { return []string{"postgres", "sqlite"} }

// Resolve fills in the codec, intermediate type and codec imports from the registry and
// rejects an intermediate that does not match the codec. Adapters naming a codec the
// registry does not know are passed through; the compiler checks them.
func Resolve(s Adapter) (Adapter, error) {
	const op errors.Op = "generator.Resolve"
	s = s.withDefaults()

	info, known := LookupCodec(s.Backend, s.Wire)
	if s.Codec != "" && s.Codec != info.Expr {
		known = false
	}
	if !known {
		if s.Codec == "" {
			return s, errors.New(op).Errorf("adapter %s: no codec for backend %q and wire type %q", s.Name, s.Backend, s.Wire)
		}
		return s, nil
	}

	if s.Intermediate == "" {
		s.Intermediate = info.Intermediate
	} else if normalizeType(s.Intermediate) != info.Intermediate {
		return s, errors.New(op).Errorf("adapter %s: %s encodes %s, not %s", s.Name, info.Expr, info.Intermediate, s.Intermediate)
	}
	s.Codec = info.Expr
	s.Imports = mergeImports(info.Imports, s.Imports)
	return s, nil
}

func normalizeType(expr string) string {
	return strings.Join(strings.Fields(expr), "")
}

// mergeImports appends extra to base, skipping paths base already imports.
func mergeImports(base, extra []string) []string {
	out := append([]string(nil), base...)
	seen := make(map[string]bool, len(base)+len(extra))
	for _, imp := range base {
		_, path, _ := splitImport(imp)
		seen[path] = true
	}
	for _, imp := range extra {
		_, path, err := splitImport(imp)
		if err == nil && seen[path] {
			continue
		}
		seen[path] = true
		out = append(out, imp)
	}
	return out
}
