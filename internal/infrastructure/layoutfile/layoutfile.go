// Package layoutfile reads and writes layout descriptions as JSON, TOML or YAML.
//
// JSON is the canonical form. TOML and YAML documents are converted through a
// generic map so every format accepts exactly the JSON field names.
package layoutfile

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a layout file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

const filePerm = 0o644

// ErrUnknownFormat is returned for an unsupported format name or extension.
var ErrUnknownFormat = errors.New("unknown layout file format")

// ParseFormat accepts json, toml, yaml and yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Decode parses a layout document.
func Decode(data []byte, format Format) (*entity.LayoutDescription, error) {
	doc := data
	if format != FormatJSON {
		var generic map[string]any
		var err error
		switch format {
		case FormatTOML:
			err = toml.Unmarshal(data, &generic)
		case FormatYAML:
			err = yaml.Unmarshal(data, &generic)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s layout: %w", format, err)
		}
		if doc, err = json.Marshal(generic); err != nil {
			return nil, fmt.Errorf("convert %s layout: %w", format, err)
		}
	}

	desc := &entity.LayoutDescription{}
	if err := json.Unmarshal(doc, desc); err != nil {
		return nil, fmt.Errorf("parse %s layout: %w", format, err)
	}
	return desc, nil
}

// Encode renders desc in the given format.
func Encode(desc *entity.LayoutDescription, format Format) ([]byte, error) {
	if desc == nil {
		return nil, errors.New("layout description is nil")
	}

	switch format {
	case FormatJSON:
		doc, err := json.MarshalIndent(desc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode layout: %w", err)
		}
		return append(doc, '\n'), nil
	case FormatTOML, FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	doc, err := json.Marshal(desc)
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}

	var generic map[string]any
	if err := json.Unmarshal(doc, &generic); err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	generic = integralNumbers(generic).(map[string]any)

	if format == FormatTOML {
		var out bytes.Buffer
		enc := toml.NewEncoder(&out)
		enc.SetIndentTables(true)
		if err := enc.Encode(generic); err != nil {
			return nil, fmt.Errorf("encode toml layout: %w", err)
		}
		return out.Bytes(), nil
	}

	var out bytes.Buffer
	enc := yaml.NewEncoder(&out)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return nil, fmt.Errorf("encode yaml layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml layout: %w", err)
	}
	return out.Bytes(), nil
}

// integralNumbers turns whole float64 values into int64 so orders, sizes and
// active pages are not written as 1.0.
func integralNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = integralNumbers(child)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = integralNumbers(child)
		}
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return int64(t)
		}
		return t
	default:
		return v
	}
}

// ReadFile decodes the layout at path, choosing the format by extension.
func ReadFile(path string) (*entity.LayoutDescription, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}
	desc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

// WriteFile encodes desc to path, choosing the format by extension.
func WriteFile(path string, desc *entity.LayoutDescription) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(desc, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("write layout file: %w", err)
	}
	return nil
}
