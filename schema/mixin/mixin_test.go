package mixin_test

import (
	"testing"
	"time"

	"github.com/syssam/datamodel"
	"github.com/syssam/datamodel/schema"
	"github.com/syssam/datamodel/schema/field"
	"github.com/syssam/datamodel/schema/mixin"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSchemaBaseMixin tests the base Schema mixin.
func TestSchemaBaseMixin(t *testing.T) {
	m := mixin.Schema{}

	t.Run("returns_nil_fields", func(t *testing.T) {
		assert.Nil(t, m.Fields())
	})

	t.Run("returns_nil_annotations", func(t *testing.T) {
		assert.Nil(t, m.Annotations())
	})
}

// TestMixinImplementsInterface tests that Schema implements datamodel.Mixin.
func TestMixinImplementsInterface(t *testing.T) {
	var _ datamodel.Mixin = mixin.Schema{}
	var _ datamodel.Mixin = &mixin.Schema{}
}

func TestID(t *testing.T) {
	fields := mixin.ID{}.Fields()
	require.Len(t, fields, 1)

	fd := fields[0].Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "id", fd.Name)
	assert.Equal(t, field.TypeInt64, fd.Info.Type)
	assert.True(t, fd.IsPrimaryKey())
	assert.False(t, fd.IsNullable())
	assert.Equal(t, "bigint", fd.StorageType())
}

func TestUUIDPK(t *testing.T) {
	fields := mixin.UUIDPK{}.Fields()
	require.Len(t, fields, 1)

	fd := fields[0].Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "id", fd.Name)
	assert.Equal(t, field.TypeUUID, fd.Info.Type)
	assert.True(t, fd.IsPrimaryKey())
	assert.Equal(t, "uuid", fd.StorageType())

	// Primary keys may carry a default factory; the descriptor stays
	// permissive about it.
	fn, ok := fd.Default.Func()
	require.True(t, ok)
	assert.NotEqual(t, uuid.Nil, fn.(func() uuid.UUID)())
}

func TestTime(t *testing.T) {
	fields := mixin.Time{}.Fields()
	require.Len(t, fields, 2)

	created := fields[0].Descriptor()
	require.NoError(t, created.Err)
	assert.Equal(t, "created_at", created.Name)
	assert.False(t, created.Init)
	assert.False(t, created.Repr)
	assert.True(t, created.ReadOnly())

	fn, ok := created.Default.Func()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), fn.(func() time.Time)(), time.Minute)

	updated := fields[1].Descriptor()
	require.NoError(t, updated.Err)
	assert.Equal(t, "updated_at", updated.Name)
	assert.Equal(t, "timestamp without time zone", updated.StorageType())
}

func TestSoftDelete(t *testing.T) {
	fields := mixin.SoftDelete{}.Fields()
	require.Len(t, fields, 1)

	fd := fields[0].Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "deleted_at", fd.Name)

	// Explicit null default, not absent.
	require.True(t, fd.Default.Present())
	v, ok := fd.Default.Value()
	require.True(t, ok)
	assert.Nil(t, v)
}

func TestTimeSoftDelete(t *testing.T) {
	fields := mixin.TimeSoftDelete{}.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "created_at", fields[0].Descriptor().Name)
	assert.Equal(t, "updated_at", fields[1].Descriptor().Name)
	assert.Equal(t, "deleted_at", fields[2].Descriptor().Name)
}

// auditMixin is a custom mixin used by the annotator test.
type auditMixin struct {
	mixin.Schema
}

func (auditMixin) Fields() []datamodel.Field {
	return []datamodel.Field{
		field.String("created_by").ReadOnly(),
		field.String("updated_by").ReadOnly(),
	}
}

func TestAnnotateFields(t *testing.T) {
	m := mixin.AnnotateFields(auditMixin{}, schema.Comment("audit fields"))
	fields := m.Fields()
	require.Len(t, fields, 2)

	for _, f := range fields {
		desc := f.Descriptor()
		require.Len(t, desc.Annotations, 1)
		assert.Equal(t, "Comment", desc.Annotations[0].Name())
	}
}
