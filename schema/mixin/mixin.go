// Package mixin provides reusable field bundles for datamodel records.
//
// A mixin is a set of field descriptors that can be embedded in
// multiple record definitions. Mixin fields are loaded before the
// record's own fields, in mixin declaration order.
//
// # Built-in Mixins
//
//	// ID mixin: int64 primary key
//	mixin.ID{}
//
//	// UUIDPK mixin: uuid primary key, generated by default
//	mixin.UUIDPK{}
//
//	// Time mixin: created_at and updated_at timestamps
//	mixin.Time{}
//
//	// SoftDelete mixin: deleted_at with an explicit null default
//	mixin.SoftDelete{}
//
// # Custom Mixins
//
// To create a custom mixin, embed Schema and override the methods you
// need:
//
//	type AuditMixin struct {
//	    mixin.Schema
//	}
//
//	func (AuditMixin) Fields() []datamodel.Field {
//	    return []datamodel.Field{
//	        field.Time("created_at").Default(time.Now).NoInit(),
//	        field.String("created_by").ReadOnly(),
//	    }
//	}
package mixin

import (
	"time"

	"github.com/google/uuid"

	"github.com/syssam/datamodel"
	"github.com/syssam/datamodel/schema"
	"github.com/syssam/datamodel/schema/field"
)

// Schema is the default implementation for the datamodel.Mixin
// interface. It should be embedded in all custom mixin definitions.
type Schema struct{}

// Fields returns the fields of the mixin.
// Override this method to add custom fields.
func (Schema) Fields() []datamodel.Field { return nil }

// Annotations returns the annotations of the mixin.
func (Schema) Annotations() []schema.Annotation { return nil }

// schema mixin must implement `Mixin` interface.
var _ datamodel.Mixin = (*Schema)(nil)

// ID adds an int64 primary-key field named id.
type ID struct {
	Schema
}

// Fields returns the id field.
func (ID) Fields() []datamodel.Field {
	return []datamodel.Field{
		field.Int64("id").
			PrimaryKey().
			NotNull().
			Comment("Surrogate primary key"),
	}
}

// UUIDPK adds a uuid primary-key field named id, generated at
// record-construction time.
type UUIDPK struct {
	Schema
}

// Fields returns the id field.
func (UUIDPK) Fields() []datamodel.Field {
	return []datamodel.Field{
		field.UUID("id", uuid.UUID{}).
			PrimaryKey().
			NotNull().
			DefaultFunc(uuid.New).
			DBType("uuid").
			Comment("Generated primary key"),
	}
}

// Time adds created_at and updated_at timestamp fields to a record.
// created_at is excluded from the generated constructor; updated_at is
// refreshed by the record pipeline on each update.
type Time struct {
	Schema
}

// Fields returns the time tracking fields.
func (Time) Fields() []datamodel.Field {
	return append(CreateTime{}.Fields(), UpdateTime{}.Fields()...)
}

// CreateTime adds only the created_at timestamp field.
type CreateTime struct {
	Schema
}

// Fields returns the created_at field.
func (CreateTime) Fields() []datamodel.Field {
	return []datamodel.Field{
		field.Time("created_at").
			Default(time.Now).
			NoInit().
			ReadOnly().
			Comment("Timestamp when the record was created"),
	}
}

// UpdateTime adds only the updated_at timestamp field.
type UpdateTime struct {
	Schema
}

// Fields returns the updated_at field.
func (UpdateTime) Fields() []datamodel.Field {
	return []datamodel.Field{
		field.Time("updated_at").
			Default(time.Now).
			NoInit().
			Comment("Timestamp when the record was last updated"),
	}
}

// SoftDelete adds a deleted_at field for soft deletion support.
// The explicit null default means "not deleted".
type SoftDelete struct {
	Schema
}

// Fields returns the soft delete field.
func (SoftDelete) Fields() []datamodel.Field {
	return []datamodel.Field{
		field.Time("deleted_at").
			Default(field.Null).
			NoInit().
			Comment("Timestamp when the record was soft deleted (null means not deleted)"),
	}
}

// TimeSoftDelete combines Time and SoftDelete mixins.
type TimeSoftDelete struct {
	Schema
}

// Fields returns all timestamp and soft delete fields.
func (TimeSoftDelete) Fields() []datamodel.Field {
	return append(Time{}.Fields(), SoftDelete{}.Fields()...)
}

// AnnotateFields wraps a mixin and adds annotations to all its fields.
//
// Example:
//
//	mixin.AnnotateFields(
//	    AuditMixin{},
//	    schema.Comment("audit fields"),
//	)
func AnnotateFields(m datamodel.Mixin, annotations ...schema.Annotation) datamodel.Mixin {
	return fieldAnnotator{Mixin: m, annotations: annotations}
}

type fieldAnnotator struct {
	datamodel.Mixin
	annotations []schema.Annotation
}

func (a fieldAnnotator) Fields() []datamodel.Field {
	fields := a.Mixin.Fields()
	for i := range fields {
		desc := fields[i].Descriptor()
		desc.Annotations = append(desc.Annotations, a.annotations...)
	}
	return fields
}
