// Package field provides fluent builders for declaring the attributes
// of datamodel record types.
//
// A field descriptor captures everything the record-reflection layer
// and external schema consumers need to know about one attribute: its
// default (or default factory), required-ness, nullability, primary-key
// status, value bounds, storage-type override, and an open metadata bag.
//
// # Field Types
//
// The package supports the common value types:
//
//	// String fields
//	field.String("name")
//	field.Text("description")
//
//	// Numeric fields
//	field.Int("count")
//	field.Int64("big_number")
//	field.Float("price")
//
//	// Boolean fields
//	field.Bool("enabled")
//
//	// Time fields
//	field.Time("created_at")
//
//	// UUID fields
//	field.UUID("id", uuid.UUID{})
//
//	// Enum fields
//	field.Enum("status").Values("pending", "active", "inactive")
//
//	// JSON fields
//	field.JSON("attributes", map[string]any{})
//	field.Strings("tags")
//
//	// Binary fields
//	field.Bytes("payload")
//
// # Field Options
//
// Fields support various configuration options:
//
//	field.String("email").
//	    Required().               // Must be supplied on create
//	    NotNull().                // Rejects null values
//	    Alias("mail").            // Alternate external name
//	    Default("unknown").       // Default value
//	    Comment("Contact email")  // Description
//
// # Defaults
//
// Fields support both literal and function defaults. A function passed
// to Default is promoted to a default factory; supplying both a factory
// and a default_factory option is a configuration error.
//
//	field.String("status").Default("active")
//	field.Time("created_at").Default(time.Now)
//	field.UUID("id", uuid.UUID{}).DefaultFunc(uuid.New)
//
// An explicit null default, distinct from no default, is requested with
// the Null sentinel:
//
//	field.String("nickname").Default(field.Null)
//
// # Storage Types
//
// Each value type maps to a canonical storage-type name through an
// immutable table; unknown types fall back to "varchar". A declared
// override always wins, and the "array" sentinel expands the inferred
// element type:
//
//	field.Int("scores").Array()        // StorageType() == "integer[]"
//	field.String("id").DBType("uuid")  // StorageType() == "uuid"
//
// # Metadata
//
// Extension configuration (widget, encoder, decoder, readonly, plus any
// passthrough keys) is merged into one metadata map that external
// consumers read:
//
//	field.JSON("payload", map[string]any{}).
//	    Encoder(codec.EncodeMsgpack).
//	    Decoder(codec.DecodeMsgpack).
//	    Extra("fk", "payload_id")
package field
