package compas

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Data is the interface satisfied by the toolkit's data classes (geometric
// primitives, shapes, meshes, colors). A Data value knows its type tag and
// serializes itself through the standard json interfaces.
//
// The type tag keys the process-wide decoder registry, so any Data value can
// be round-tripped through a JSON envelope without the caller knowing its
// concrete type. This is what scene sessions rely on to restore objects.
type Data interface {
	// DataType returns the registry tag, e.g. "geometry/Point".
	DataType() string
}

// envelope is the serialized form of a Data value.
type envelope struct {
	DType string          `json:"dtype"`
	Data  json.RawMessage `json:"data"`
}

// DecodeFunc rebuilds a Data value from the raw "data" part of an envelope.
type DecodeFunc func([]byte) (Data, error)

var (
	decoderMu sync.RWMutex
	decoders  = map[string]DecodeFunc{}
)

// RegisterData registers a decoder for a data type tag.
//
// Packages register their types in init, so importing a package makes its
// types decodable. Registering the same tag twice replaces the previous
// decoder (last registration wins).
func RegisterData(dtype string, decode DecodeFunc) {
	decoderMu.Lock()
	defer decoderMu.Unlock()
	decoders[dtype] = decode
}

// RegisteredDataTypes returns the sorted tags of all registered decoders.
func RegisteredDataTypes() []string {
	decoderMu.RLock()
	defer decoderMu.RUnlock()
	tags := make([]string, 0, len(decoders))
	for tag := range decoders {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// ToJSON serializes a Data value into a tagged envelope.
func ToJSON(d Data) ([]byte, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("compas: encoding %s: %w", d.DataType(), err)
	}
	return json.Marshal(envelope{DType: d.DataType(), Data: raw})
}

// FromJSON rebuilds a Data value from a tagged envelope produced by ToJSON.
// The value's type must have been registered with RegisterData.
func FromJSON(b []byte) (Data, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("compas: decoding envelope: %w", err)
	}
	decoderMu.RLock()
	decode, ok := decoders[env.DType]
	decoderMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("compas: no decoder registered for %q", env.DType)
	}
	return decode(env.Data)
}
