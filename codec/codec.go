// Package codec provides the wire formats a field can name in its
// encoder and decoder metadata slots, and helpers for shipping loaded
// record schemas between processes.
//
// Three formats are built in: JSON, Msgpack and YAML. Additional
// formats can be added with Register.
package codec

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/syssam/datamodel/schema/load"
)

// A Codec is a symmetric wire format. Marshal and Unmarshal must round
// trip: Unmarshal(Marshal(v)) restores an equivalent value.
type Codec interface {
	// Name returns the format name the codec is registered under.
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Built-in codecs. Safe for concurrent use.
var (
	JSON    Codec = jsonCodec{}
	Msgpack Codec = msgpackCodec{}
	YAML    Codec = yamlCodec{}
)

type jsonCodec struct{}

func (jsonCodec) Name() string                       { return "json" }
func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type msgpackCodec struct{}

func (msgpackCodec) Name() string                       { return "msgpack" }
func (msgpackCodec) Marshal(v any) ([]byte, error)      { return msgpack.Marshal(v) }
func (msgpackCodec) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

type yamlCodec struct{}

func (yamlCodec) Name() string                       { return "yaml" }
func (yamlCodec) Marshal(v any) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

var registry = struct {
	sync.RWMutex
	codecs map[string]Codec
}{
	codecs: map[string]Codec{
		JSON.Name():    JSON,
		Msgpack.Name(): Msgpack,
		YAML.Name():    YAML,
	},
}

// Register makes a codec available under its name, replacing any codec
// previously registered under the same name.
func Register(c Codec) {
	registry.Lock()
	defer registry.Unlock()
	registry.codecs[c.Name()] = c
}

// Lookup returns the codec registered under the given name.
func Lookup(name string) (Codec, error) {
	registry.RLock()
	defer registry.RUnlock()
	c, ok := registry.codecs[name]
	if !ok {
		return nil, fmt.Errorf("codec: unknown format %q", name)
	}
	return c, nil
}

// EncodeRecord loads the given record definition and encodes its schema
// with the given codec.
func EncodeRecord(c Codec, v any) ([]byte, error) {
	s, err := load.Load(v)
	if err != nil {
		return nil, err
	}
	return c.Marshal(s)
}

// DecodeSchema decodes a schema previously produced by EncodeRecord
// with the same codec.
func DecodeSchema(c Codec, data []byte) (*load.Schema, error) {
	s := &load.Schema{}
	if err := c.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("codec: decode schema: %w", err)
	}
	return s, nil
}
