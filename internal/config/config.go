package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/motorsim/internal/motor"
)

const (
	FileVersion   = 1
	FileTypeMotor = "motor"
)

var (
	ErrUnsupportedFile = errors.New("config: unsupported file")
	ErrOutOfBounds     = errors.New("config: parameter out of bounds")
)

// File is the on-disk envelope around a motor definition.
type File struct {
	Version int              `yaml:"version"`
	Type    string           `yaml:"type"`
	Data    motor.Definition `yaml:"data"`
}

// Decode reads a motor file. Config keys missing from the file keep their
// defaults.
func Decode(r io.Reader) (*motor.Definition, error) {
	f := File{Data: motor.Definition{Config: motor.DefaultConfig()}}
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode motor file: %w", err)
	}
	if f.Type != FileTypeMotor {
		return nil, fmt.Errorf("%w: type %q", ErrUnsupportedFile, f.Type)
	}
	if f.Version != FileVersion {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedFile, f.Version)
	}
	return &f.Data, nil
}

func Encode(w io.Writer, def motor.Definition) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Version: FileVersion, Type: FileTypeMotor, Data: def}); err != nil {
		return fmt.Errorf("encode motor file: %w", err)
	}
	return enc.Close()
}

// Load reads a motor file and checks its config against the parameter
// bounds.
func Load(path string) (*motor.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := ValidateBounds(def.Config); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

func Save(path string, def motor.Definition) error {
	var buf bytes.Buffer
	if err := Encode(&buf, def); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
