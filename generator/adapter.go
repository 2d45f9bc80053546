package generator

import (
	"go/token"
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/wrap"
)

// Visibility controls where the generated package is placed.
type Visibility string

const (
	// Public packages are written to <out>/<name>.
	Public Visibility = "public"
	// Internal packages are written to <out>/internal/<name>, so only code rooted at
	// <out> can import them.
	Internal Visibility = "internal"
)

const (
	DefaultEncodeParam = "v"
	DefaultDecodeParam = "value"
)

// Adapter declares one adapter package.
type Adapter struct {
	// Name is the generated package name and directory.
	Name       string     `yaml:"name" toml:"name" json:"name"`
	Visibility Visibility `yaml:"visibility" toml:"visibility" json:"visibility"`
	// Target is the domain type expression, e.g. "uuid.UUID".
	Target  string        `yaml:"target" toml:"target" json:"target"`
	Backend string        `yaml:"backend" toml:"backend" json:"backend"`
	Wire    wrap.WireType `yaml:"wire" toml:"wire" json:"wire"`
	// Intermediate is the type the codec encodes, e.g. "[]byte".
	Intermediate string `yaml:"intermediate" toml:"intermediate" json:"intermediate"`
	// Codec overrides the codec looked up from Backend and Wire.
	Codec string `yaml:"codec" toml:"codec" json:"codec"`
	// Encode is the body of ToIntermediate(EncodeParam Target) Intermediate.
	Encode      string `yaml:"encode" toml:"encode" json:"encode"`
	EncodeParam string `yaml:"encode_param" toml:"encode_param" json:"encode_param"`
	// Decode is the body of FromIntermediate(DecodeParam Intermediate) (Target, error).
	Decode      string `yaml:"decode" toml:"decode" json:"decode"`
	DecodeParam string `yaml:"decode_param" toml:"decode_param" json:"decode_param"`
	// Imports are import paths, optionally prefixed by an alias and a space.
	Imports []string `yaml:"imports" toml:"imports" json:"imports"`
}

// withDefaults fills the optional fields.
func (s Adapter) withDefaults() Adapter {
	s.Name = strings.TrimSpace(s.Name)
	s.Target = strings.TrimSpace(s.Target)
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))
	s.Intermediate = strings.TrimSpace(s.Intermediate)
	s.Codec = strings.TrimSpace(s.Codec)
	if s.Visibility == "" {
		s.Visibility = Public
	}
	if s.EncodeParam == "" {
		s.EncodeParam = DefaultEncodeParam
	}
	if s.DecodeParam == "" {
		s.DecodeParam = DefaultDecodeParam
	}
	return s
}

// Validate checks the fields an adapter cannot be rendered without.
func (s Adapter) Validate() error {
	const op errors.Op = "generator.Adapter.Validate"
	if !isIdent(s.Name) {
		return errors.New(op).Errorf("adapter name %q is not a valid package name", s.Name)
	}
	if s.Visibility != Public && s.Visibility != Internal {
		return errors.New(op).Errorf("adapter %s: unknown visibility %q", s.Name, s.Visibility)
	}
	if s.Target == "" {
		return errors.New(op).Errorf("adapter %s: target type is required", s.Name)
	}
	if s.Wire == "" {
		return errors.New(op).Errorf("adapter %s: wire type is required", s.Name)
	}
	if s.Wire.IsNullable() {
		return errors.New(op).Errorf("adapter %s: declare the base wire type, AsOption handles %s", s.Name, s.Wire)
	}
	if s.Intermediate == "" {
		return errors.New(op).Errorf("adapter %s: intermediate type is required", s.Name)
	}
	if s.Codec == "" {
		return errors.New(op).Errorf("adapter %s: no codec for backend %q and wire type %q", s.Name, s.Backend, s.Wire)
	}
	if strings.TrimSpace(s.Encode) == "" {
		return errors.New(op).Errorf("adapter %s: encode body is required", s.Name)
	}
	if strings.TrimSpace(s.Decode) == "" {
		return errors.New(op).Errorf("adapter %s: decode body is required", s.Name)
	}
	if !isIdent(s.EncodeParam) || !isIdent(s.DecodeParam) {
		return errors.New(op).Errorf("adapter %s: parameter names must be identifiers", s.Name)
	}
	for _, imp := range s.Imports {
		if _, _, err := splitImport(imp); err != nil {
			return errors.New(op).Err(err)
		}
	}
	return nil
}

func isIdent(s string) bool {
	return token.IsIdentifier(s) && s != "_"
}

// splitImport parses "path" or "alias path".
func splitImport(imp string) (alias, path string, err error) {
	const op errors.Op = "generator.splitImport"
	fields := strings.Fields(imp)
	switch len(fields) {
	case 1:
		return "", strings.Trim(fields[0], `"`), nil
	case 2:
		if !isIdent(fields[0]) && fields[0] != "_" && fields[0] != "." {
			return "", "", errors.New(op).Errorf("invalid import alias %q", fields[0])
		}
		return fields[0], strings.Trim(fields[1], `"`), nil
	default:
		return "", "", errors.New(op).Errorf("invalid import %q", imp)
	}
}
