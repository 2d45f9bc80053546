package generator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Station-Manager/errors"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of an adapter file.
//
//	adapters:
//	  - name: uuidwrap
//	    target: uuid.UUID
//	    backend: sqlite
//	    wire: binary
//	    imports: [github.com/google/uuid]
//	    encode: return v[:]
//	    decode: return uuid.FromBytes(value)
type File struct {
	Adapters []Adapter `yaml:"adapters" toml:"adapters" json:"adapters"`
}

// LoadFile reads the adapters declared in path. The format follows the extension:
// .yaml/.yml, .toml or .json.
func LoadFile(path string) ([]Adapter, error) {
	const op errors.Op = "generator.LoadFile"
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	adapters, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.New(op).Errorf("%s: %v", path, err)
	}
	return adapters, nil
}

// Parse decodes adapter file content in the format named by ext.
func Parse(data []byte, ext string) ([]Adapter, error) {
	const op errors.Op = "generator.Parse"
	var f File
	var err error
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &f)
	case "toml":
		err = toml.Unmarshal(data, &f)
	case "json":
		err = json.Unmarshal(data, &f)
	default:
		return nil, errors.New(op).Errorf("unsupported adapter file format %q", ext)
	}
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	if len(f.Adapters) == 0 {
		return nil, errors.New(op).Msg("no adapters declared")
	}
	for i := range f.Adapters {
		f.Adapters[i] = f.Adapters[i].withDefaults()
	}
	return f.Adapters, nil
}
