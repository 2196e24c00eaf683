// Package datamodel provides declarative field descriptors for record
// types, used to drive validation, serialization, and storage-schema
// generation.
//
// A record type embeds datamodel.Schema and declares its attributes with
// the fluent builders from the schema/field package:
//
//	type Contact struct {
//	    datamodel.Schema
//	}
//
//	func (Contact) Fields() []datamodel.Field {
//	    return []datamodel.Field{
//	        field.UUID("userid", uuid.UUID{}).PrimaryKey().DefaultFunc(uuid.New),
//	        field.String("name").Required(),
//	        field.Int("zipcode").Range(0, 100000),
//	        field.Bool("enabled").Required().Default(true),
//	    }
//	}
//
// The schema/load package turns a Record into its ordered sequence of
// bound descriptors, which external consumers (ORM layers, schema
// exporters) query for defaults, nullability, and storage types.
package datamodel

import (
	"github.com/syssam/datamodel/schema"
	"github.com/syssam/datamodel/schema/field"
)

// Record is the interface implemented by all record definitions.
// Implementations usually embed Schema and override the methods
// they need.
type Record interface {
	// Fields returns the declared attributes of the record,
	// in declaration order.
	Fields() []Field

	// Mixin returns reusable field bundles that are prepended
	// to the record's own fields.
	Mixin() []Mixin

	// Annotations returns record-level annotations consumed by
	// external generators.
	Annotations() []schema.Annotation
}

// Field is the interface for a single declared attribute. It is
// implemented by the builders in the schema/field package.
type Field interface {
	// Descriptor returns the resolved field descriptor.
	Descriptor() *field.Descriptor
}

// Mixin is the interface for reusable sets of fields that can be
// embedded in multiple record definitions.
type Mixin interface {
	// Fields returns the fields contributed by the mixin,
	// in declaration order.
	Fields() []Field

	// Annotations returns annotations applied to the mixin.
	Annotations() []schema.Annotation
}

// Schema is the default implementation of the Record interface.
// It should be embedded in all record definitions.
type Schema struct{}

// Fields returns the fields of the record. Override to declare attributes.
func (Schema) Fields() []Field { return nil }

// Mixin returns the mixins of the record. Override to embed shared fields.
func (Schema) Mixin() []Mixin { return nil }

// Annotations returns the annotations of the record.
func (Schema) Annotations() []schema.Annotation { return nil }

// record definitions must implement the Record interface.
var _ Record = (*Schema)(nil)
