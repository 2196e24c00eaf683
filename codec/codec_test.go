package codec_test

import (
	"testing"

	"github.com/syssam/datamodel"
	"github.com/syssam/datamodel/codec"
	"github.com/syssam/datamodel/schema/field"
	"github.com/syssam/datamodel/schema/load"
	"github.com/syssam/datamodel/schema/mixin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Invoice struct {
	datamodel.Schema
}

func (Invoice) Mixin() []datamodel.Mixin {
	return []datamodel.Mixin{mixin.ID{}}
}

func (Invoice) Fields() []datamodel.Field {
	return []datamodel.Field{
		field.String("number").Required(),
		field.Float("total").Min(0),
		field.Time("issued_at"),
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"json", "msgpack", "yaml"} {
		c, err := codec.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}
	_, err := codec.Lookup("protobuf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "protobuf"`)
}

type upperCodec struct{ codec.Codec }

func (upperCodec) Name() string { return "json-upper" }

func TestRegister(t *testing.T) {
	codec.Register(upperCodec{codec.JSON})
	c, err := codec.Lookup("json-upper")
	require.NoError(t, err)
	assert.Equal(t, "json-upper", c.Name())
}

func TestEncodeRecord(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON, codec.Msgpack, codec.YAML} {
		t.Run(c.Name(), func(t *testing.T) {
			buf, err := codec.EncodeRecord(c, Invoice{})
			require.NoError(t, err)

			s, err := codec.DecodeSchema(c, buf)
			require.NoError(t, err)
			assert.Equal(t, "Invoice", s.Name)
			assert.Equal(t, "invoice", s.Table)
			require.Len(t, s.Fields, 4)
			assert.Equal(t, "id", s.Fields[0].Name)
			assert.True(t, s.Fields[0].PrimaryKey)
			assert.Equal(t, "number", s.Fields[1].Name)
			assert.True(t, s.Fields[1].Required)
			assert.Equal(t, "double precision", s.Fields[2].StorageType)
			assert.Equal(t, "timestamp without time zone", s.Fields[3].StorageType)
		})
	}
}

func TestEncodeRecordNotRecord(t *testing.T) {
	_, err := codec.EncodeRecord(codec.JSON, "not a record")
	require.Error(t, err)
	assert.True(t, datamodel.IsNotRecord(err))
}

func TestRoundTrip(t *testing.T) {
	orig, err := load.Load(Invoice{})
	require.NoError(t, err)

	for _, c := range []codec.Codec{codec.JSON, codec.Msgpack, codec.YAML} {
		t.Run(c.Name(), func(t *testing.T) {
			buf, err := c.Marshal(orig)
			require.NoError(t, err)
			got, err := codec.DecodeSchema(c, buf)
			require.NoError(t, err)
			assert.Equal(t, orig.Name, got.Name)
			assert.Equal(t, orig.Table, got.Table)
			require.Len(t, got.Fields, len(orig.Fields))
			for i := range orig.Fields {
				assert.Equal(t, orig.Fields[i].Name, got.Fields[i].Name)
				assert.Equal(t, orig.Fields[i].StorageType, got.Fields[i].StorageType)
			}
		})
	}
}
