// Package feed reads the secondary output of a chat response (news, events,
// citations) from disk and keeps it fresh as the file changes.
package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("feed: unsupported file format")

// Load reads a feed file. The format is chosen by extension: .json, .yaml
// or .yml.
func Load(path string) (*SecondaryOutput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}
	out, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("decode feed %s: %w", filepath.Base(path), err)
	}
	return out, nil
}

// Decode parses data in the format named by ext (with or without the dot).
// A chat message wrapper ({"secondary_output": {...}}) is accepted as well
// as a bare secondary output.
func Decode(ext string, data []byte) (*SecondaryOutput, error) {
	var msg struct {
		SecondaryOutput *SecondaryOutput `json:"secondary_output" yaml:"secondary_output"`
	}
	out := &SecondaryOutput{}

	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		if len(bytes.TrimSpace(data)) == 0 {
			return out, nil
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, err
		}
		if msg.SecondaryOutput != nil {
			return msg.SecondaryOutput, nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &msg); err != nil {
			return nil, err
		}
		if msg.SecondaryOutput != nil {
			return msg.SecondaryOutput, nil
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return out, nil
}
