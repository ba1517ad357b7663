// SPDX-License-Identifier: MIT

package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlplan/model"
)

// Sentinel errors of the codec.
var (
	// ErrNilBuilding is returned when Encode or Save receives nil.
	ErrNilBuilding = errors.New("snapshot: building is nil")

	// ErrBadSnapshot wraps every decoding failure: broken syntax as
	// well as unknown enum values.
	ErrBadSnapshot = errors.New("snapshot: malformed snapshot")

	// ErrUnknownFormat is returned for file extensions and Format
	// values the codec does not speak.
	ErrUnknownFormat = errors.New("snapshot: unknown format")
)

// Format selects the wire encoding.
type Format uint8

const (
	FormatJSON Format = iota
	FormatYAML
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// FormatForPath picks the format from the file extension: .json is
// JSON, .yaml and .yml are YAML.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatJSON, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Decode reads one snapshot from r.
func Decode(r io.Reader, format Format) (*model.Building, error) {
	var w wireBuilding
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&w); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&w); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return fromWire(&w)
}

// Encode writes b to w. JSON is two-space indented, YAML uses
// two-space block indent; both end with a newline, so snapshots diff
// cleanly under version control.
func Encode(w io.Writer, b *model.Building, format Format) error {
	if b == nil {
		return ErrNilBuilding
	}
	wire := toWire(b)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(wire)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(wire); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// Load reads the snapshot at path, picking the format from the
// extension.
func Load(path string) (*model.Building, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, format)
}

// Save writes b to path, picking the format from the extension.
func Save(path string, b *model.Building) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrNilBuilding
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, b, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
