package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/enginekit/pkg/guard"
)

// LoadFile decodes the file at path into v. The decoder is chosen by
// extension: .yaml/.yml, .toml or .json. Fields missing from the file keep
// the values v already holds, so defaults can be set before the call.
func LoadFile[T any](path string, v *T) error {
	if err := guard.RequireNonEmptyString(path, "path"); err != nil {
		return err
	}
	if v == nil {
		return ErrNilPointer
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".toml", ".json":
	default:
		return errors.Join(ErrUnsupportedFormat, errors.New(ext))
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadFile, err)
	}

	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	case ".toml":
		err = toml.Unmarshal(b, v)
	case ".json":
		err = json.Unmarshal(b, v)
	}
	if err != nil {
		return errors.Join(ErrDecodeFile, err)
	}
	return nil
}
