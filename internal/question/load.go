package question

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a question bank.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the bank format from a file or URL path extension.
func FormatForPath(path string) Format {
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// IsRemote reports whether a bank source should be fetched over HTTP.
func IsRemote(source string) bool {
	lower := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Load reads a bank from a file path or fetches it from an http(s) URL.
func Load(ctx context.Context, source string, opts FetchOptions) (*Bank, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, &AssetLoadError{Source: source, Err: fmt.Errorf("bank source is required")}
	}
	if IsRemote(source) {
		return Fetch(ctx, source, opts)
	}
	return LoadFile(source)
}

// LoadFile reads, parses, and validates a question bank file.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &AssetLoadError{Source: path, Err: fmt.Errorf("read question bank: %w", err)}
	}
	bank, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, &AssetLoadError{Source: path, Err: err}
	}
	return bank, nil
}

// Parse decodes, normalizes, and validates bank data.
func Parse(data []byte, format Format) (*Bank, error) {
	var (
		doc Document
		err error
	)
	switch format {
	case FormatYAML:
		doc, err = parseYAMLDocument(data)
	default:
		doc, err = parseJSONDocument(data)
	}
	if err != nil {
		return nil, err
	}
	normalized, err := NormalizeDocument(doc)
	if err != nil {
		return nil, err
	}
	return NewBank(normalized), nil
}

func parseJSONDocument(data []byte) (Document, error) {
	if err := validateJSONSchema(data); err != nil {
		return nil, err
	}
	var doc Document
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return doc, nil
}

func parseYAMLDocument(data []byte) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return Document{}, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return doc, nil
}
