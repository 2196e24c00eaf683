package load_test

import (
	"testing"

	"github.com/syssam/datamodel"
	"github.com/syssam/datamodel/schema"
	"github.com/syssam/datamodel/schema/field"
	"github.com/syssam/datamodel/schema/load"
	"github.com/syssam/datamodel/schema/mixin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Contact is a record definition used across the loader tests.
type Contact struct {
	datamodel.Schema
}

func (Contact) Mixin() []datamodel.Mixin {
	return []datamodel.Mixin{
		mixin.UUIDPK{},
		mixin.Time{},
	}
}

func (Contact) Fields() []datamodel.Field {
	return []datamodel.Field{
		field.String("name").Required(),
		field.String("email").Alias("mail"),
		field.Int("zipcode").Range(0, 100000),
		field.Strings("tags").Array(),
	}
}

func (Contact) Annotations() []schema.Annotation {
	return []schema.Annotation{
		schema.Comment("Contact represents an address-book entry."),
	}
}

// AccessToken declares one field through the unbound Column factory and
// binds it explicitly, the way an external reflection layer would.
type AccessToken struct {
	datamodel.Schema
}

func (AccessToken) Fields() []datamodel.Field {
	d := field.Column(field.Config{Required: true, ReadOnly: true})
	if err := d.Bind("token", &field.TypeInfo{Type: field.TypeString, Ident: "string"}); err != nil {
		d.Err = err
	}
	return []datamodel.Field{d}
}

// badDefaults carries an invalid field configuration.
type badDefaults struct {
	datamodel.Schema
}

func (badDefaults) Fields() []datamodel.Field {
	return []datamodel.Field{
		field.Int("serial").DefaultFunc(42),
	}
}

// pager declares integer defaults that must survive a wire round trip.
type pager struct {
	datamodel.Schema
}

func (pager) Fields() []datamodel.Field {
	return []datamodel.Field{
		field.Int("size").Default(20),
		field.Uint("limit").Default(uint(100)),
	}
}

// panicky panics while declaring its fields.
type panicky struct {
	datamodel.Schema
}

func (panicky) Fields() []datamodel.Field {
	panic("boom")
}

func TestLoad(t *testing.T) {
	s, err := load.Load(Contact{})
	require.NoError(t, err)
	assert.Equal(t, "Contact", s.Name)
	assert.Equal(t, "contact", s.Table)

	// Mixin fields come first, in mixin declaration order.
	require.Len(t, s.Fields, 7)
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"id", "created_at", "updated_at", "name", "email", "zipcode", "tags"}, names)

	id := s.Fields[0]
	assert.True(t, id.PrimaryKey)
	assert.True(t, id.Position.MixedIn)
	assert.Equal(t, 0, id.Position.MixinIndex)
	assert.Equal(t, "uuid", id.StorageType)

	updated := s.Fields[2]
	assert.True(t, updated.Position.MixedIn)
	assert.Equal(t, 1, updated.Position.MixinIndex)
	assert.Equal(t, 1, updated.Position.Index)

	name := s.Fields[3]
	assert.False(t, name.Position.MixedIn)
	assert.Equal(t, 0, name.Position.Index)
	assert.True(t, name.Required)
	assert.Equal(t, "varchar", name.StorageType)

	zip := s.Fields[5]
	require.NotNil(t, zip.Min)
	require.NotNil(t, zip.Max)
	assert.Equal(t, float64(0), *zip.Min)
	assert.Equal(t, float64(100000), *zip.Max)

	tags := s.Fields[6]
	assert.Equal(t, "array", tags.DBType)
	assert.Equal(t, "jsonb[]", tags.StorageType)

	require.Contains(t, s.Annotations, "Comment")
}

func TestLoadNotRecord(t *testing.T) {
	_, err := load.Load(42)
	require.Error(t, err)
	assert.True(t, datamodel.IsNotRecord(err))
	assert.Contains(t, err.Error(), "int is not a record")

	_, err = load.Fields("nope")
	require.Error(t, err)
	assert.True(t, datamodel.IsNotRecord(err))
}

func TestLoadFieldError(t *testing.T) {
	_, err := load.Load(badDefaults{})
	require.Error(t, err)
	assert.True(t, field.IsConfigurationError(err))
	assert.Contains(t, err.Error(), `record "badDefaults"`)

	_, err = load.Fields(badDefaults{})
	require.Error(t, err)
	assert.True(t, field.IsConfigurationError(err))
}

func TestLoadPanicRecovery(t *testing.T) {
	_, err := load.Load(panicky{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Fields panics: boom")
}

func TestFields(t *testing.T) {
	fds, err := load.Fields(Contact{})
	require.NoError(t, err)
	require.Len(t, fds, 7)
	assert.Equal(t, "id", fds[0].Name)
	assert.Equal(t, "name", fds[3].Name)
	assert.True(t, fds[3].IsRequired())

	// The resolved sequence is memoized per record type.
	again, err := load.Fields(Contact{})
	require.NoError(t, err)
	require.Len(t, again, 7)
	assert.Same(t, fds[0], again[0])
	assert.Same(t, fds[6], again[6])
}

func TestExplicitBind(t *testing.T) {
	fds, err := load.Fields(AccessToken{})
	require.NoError(t, err)
	require.Len(t, fds, 1)

	fd := fds[0]
	assert.Equal(t, "token", fd.Name)
	assert.Equal(t, field.TypeString, fd.Info.Type)
	assert.True(t, fd.IsRequired())
	assert.True(t, fd.ReadOnly())
}

func TestMarshalRoundTrip(t *testing.T) {
	buf, err := load.MarshalRecord(Contact{})
	require.NoError(t, err)

	s, err := load.UnmarshalRecord(buf)
	require.NoError(t, err)
	assert.Equal(t, "Contact", s.Name)
	require.Len(t, s.Fields, 7)
	assert.Equal(t, "id", s.Fields[0].Name)
	assert.Equal(t, field.TypeUUID, s.Fields[0].Info.Type)
	assert.Equal(t, "jsonb[]", s.Fields[6].StorageType)
}

func TestUnmarshalIntegerDefaults(t *testing.T) {
	buf, err := load.MarshalRecord(pager{})
	require.NoError(t, err)

	s, err := load.UnmarshalRecord(buf)
	require.NoError(t, err)
	require.Len(t, s.Fields, 2)

	// JSON widens numbers to float64; defaults restores the integer type.
	size := s.Fields[0]
	require.True(t, size.Default)
	assert.Equal(t, int64(20), size.DefaultValue)

	limit := s.Fields[1]
	require.True(t, limit.Default)
	assert.Equal(t, uint64(100), limit.DefaultValue)
}
