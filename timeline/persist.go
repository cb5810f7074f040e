package timeline

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"
)

// Format selects the text encoding of a saved timeline.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "json"
	}
}

// FormatFromPath picks a format from the file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// The persisted shape. Field names are stable; unknown fields are ignored on
// load.
type document struct {
	Tracks map[string]trackDocument `json:"tracks" yaml:"tracks" toml:"tracks"`
}

type trackDocument struct {
	Name  string         `json:"name" yaml:"name" toml:"name"`
	Nodes []nodeDocument `json:"nodes" yaml:"nodes" toml:"nodes"`
}

type nodeDocument struct {
	Time   uint32  `json:"time" yaml:"time" toml:"time"`
	Value  float64 `json:"value" yaml:"value" toml:"value"`
	Interp int     `json:"interp" yaml:"interp" toml:"interp"`
}

func toDocument(tl *Timeline) document {
	doc := document{Tracks: make(map[string]trackDocument, len(tl.tracks))}
	for name, tr := range tl.tracks {
		td := trackDocument{Name: name, Nodes: make([]nodeDocument, len(tr.nodes))}
		for i, n := range tr.nodes {
			td.Nodes[i] = nodeDocument{Time: n.Time, Value: n.Value, Interp: int(n.Interp)}
		}
		doc.Tracks[name] = td
	}
	return doc
}

func fromDocument(doc document) (*Timeline, error) {
	tl := New()
	for name, td := range doc.Tracks {
		if len(td.Nodes) == 0 {
			return nil, fmt.Errorf("%w: track %q has no nodes", ErrDeserializationFailed, name)
		}
		if td.Nodes[0].Time != 0 {
			return nil, fmt.Errorf("%w: track %q does not start at time 0", ErrDeserializationFailed, name)
		}

		tr := &Track{name: name, nodes: make([]Node, 0, len(td.Nodes))}
		for i, nd := range td.Nodes {
			interp := Interp(nd.Interp)
			if !interp.Valid() {
				return nil, fmt.Errorf("%w: track %q node %d: %v", ErrDeserializationFailed, name, i, ErrUnknownInterp)
			}
			if i > 0 && nd.Time <= td.Nodes[i-1].Time {
				return nil, fmt.Errorf("%w: track %q node %d is out of order", ErrDeserializationFailed, name, i)
			}
			tr.nodes = append(tr.nodes, NewNode(nd.Time, nd.Value, interp))
		}
		tl.tracks[name] = tr
	}
	return tl, nil
}

// Marshal encodes every track and node of tl.
func Marshal(tl *Timeline, f Format) ([]byte, error) {
	doc := toDocument(tl)

	var data []byte
	var err error
	switch f {
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatTOML:
		data, err = toml.Marshal(doc)
	default:
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrSerializationFailed, f, err)
	}
	return data, nil
}

// Unmarshal decodes and validates a timeline. Malformed input is reported as
// ErrDeserializationFailed.
func Unmarshal(data []byte, f Format) (*Timeline, error) {
	var doc document
	var err error
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrDeserializationFailed, f, err)
	}
	return fromDocument(doc)
}

// Save encodes tl as JSON.
func Save(tl *Timeline) (string, error) {
	data, err := Marshal(tl, FormatJSON)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Load decodes a JSON timeline produced by Save.
func Load(text string) (*Timeline, error) {
	return Unmarshal([]byte(text), FormatJSON)
}
