package printer

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/joshuapare/binkit/pkg/types"
)

// jsonDocument is the JSON form of a whole document.
type jsonDocument struct {
	Version uint32      `json:"version"`
	Links   []string    `json:"links,omitempty"`
	Entries []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	Name string `json:"name"`
	Hash string `json:"hash"`
	jsonStruct
}

type jsonStruct struct {
	Type   string      `json:"type"`
	Fields []jsonField `json:"fields"`
}

type jsonField struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Value any    `json:"value"`
}

type jsonPair struct {
	Key   any `json:"key"`
	Value any `json:"value"`
}

type jsonColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

func (p *Printer) printDocumentJSON(doc *types.Document) error {
	out := jsonDocument{
		Version: doc.Version,
		Entries: make([]jsonEntry, 0, len(doc.Entries)),
	}
	if p.opts.ShowLinks {
		out.Links = doc.Links
	}
	for _, e := range doc.SortedEntries() {
		out.Entries = append(out.Entries, toJSONEntry(e))
	}
	return p.writeJSON(out)
}

func (p *Printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

func toJSONEntry(e types.Entry) jsonEntry {
	je := jsonEntry{Name: e.Name.String(), Hash: e.Name.Hex()}
	if e.Struct != nil {
		je.jsonStruct = toJSONStruct(e.Struct)
	}
	return je
}

func toJSONStruct(s *types.Struct) jsonStruct {
	js := jsonStruct{Type: s.Type.String(), Fields: make([]jsonField, 0, len(s.Fields))}
	for _, f := range s.SortedFields() {
		js.Fields = append(js.Fields, jsonField{
			Name:  f.Name.String(),
			Kind:  f.Value.Kind().String(),
			Value: toJSONValue(f.Value),
		})
	}
	return js
}

// toJSONValue converts v into values encoding/json can marshal. Hashes render
// as their label or fixed-width hex; non-finite floats render as strings.
func toJSONValue(v types.Value) any {
	switch v := v.(type) {
	case types.None:
		return nil
	case types.Bool:
		return bool(v)
	case types.Signed:
		return int64(v)
	case types.Unsigned:
		return uint64(v)
	case types.Float:
		return jsonFloat(float32(v))
	case types.Vec2:
		return jsonFloats(v[:])
	case types.Vec3:
		return jsonFloats(v[:])
	case types.Vec4:
		return jsonFloats(v[:])
	case types.Mtx44:
		rows := make([][]any, len(v))
		for i := range v {
			rows[i] = jsonFloats(v[i][:])
		}
		return rows
	case types.Color:
		return jsonColor{R: v.R, G: v.G, B: v.B, A: v.A}
	case types.String:
		return string(v)
	case types.Hash:
		return v.String()
	case types.Link:
		return v.String()
	case types.File:
		return v.String()
	case types.List:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = toJSONValue(e)
		}
		return out
	case types.Map:
		out := make([]jsonPair, len(v))
		for i, pair := range v {
			out[i] = jsonPair{Key: toJSONValue(pair.Key), Value: toJSONValue(pair.Value)}
		}
		return out
	case *types.Struct:
		return toJSONStruct(v)
	}
	return nil
}

func jsonFloat(f float32) any {
	g := float64(f)
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return formatFloat(f)
	}
	return json.Number(formatFloat(f))
}

func jsonFloats(fs []float32) []any {
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = jsonFloat(f)
	}
	return out
}
