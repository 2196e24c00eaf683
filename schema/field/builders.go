package field

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/syssam/datamodel/schema"
)

// A Builder is the fluent declaration surface of a field descriptor.
// Builders are created by the per-type constructors (String, Int, UUID,
// JSON, ...) and resolved into a bound descriptor by Descriptor().
type Builder struct {
	name string
	info *TypeInfo
	cfg  Config
	err  error
	desc *Descriptor
}

func newBuilder(name string, info *TypeInfo) *Builder {
	return &Builder{name: name, info: info}
}

// String returns a new Builder for a varchar-backed string field.
func String(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeString, Ident: "string"})
}

// Text returns a new Builder for an unlimited text field.
func Text(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeText, Ident: "string"})
}

// Bool returns a new Builder for a boolean field.
func Bool(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeBool, Ident: "bool"})
}

// Time returns a new Builder for a time.Time field.
func Time(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeTime, Ident: "time.Time", PkgPath: "time"})
}

// Bytes returns a new Builder for a binary field.
func Bytes(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeBytes, Ident: "[]byte", Nillable: true})
}

// UUID returns a new Builder for a UUID field. The given value carries
// the concrete Go type, e.g.:
//
//	field.UUID("id", uuid.UUID{})
func UUID(name string, v any) *Builder {
	b := newBuilder(name, &TypeInfo{Type: TypeUUID})
	if v == nil {
		b.err = fmt.Errorf("expect a Go value as UUID type but got nil")
		return b
	}
	t := reflect.TypeOf(v)
	b.info.Ident = t.String()
	b.info.PkgPath = indirectType(t).PkgPath()
	b.info.Nillable = t.Kind() == reflect.Pointer
	return b
}

// JSON returns a new Builder for a JSON-serialized field. The given
// value carries the concrete Go type, e.g.:
//
//	field.JSON("dirs", []http.Dir{})
//	field.JSON("info", &Info{})
func JSON(name string, v any) *Builder {
	b := newBuilder(name, &TypeInfo{Type: TypeJSON})
	if v == nil {
		b.err = fmt.Errorf("expect a Go value as JSON type but got nil")
		return b
	}
	t := reflect.TypeOf(v)
	b.info.Ident = t.String()
	b.info.PkgPath = indirectType(t).PkgPath()
	switch t.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer:
		b.info.Nillable = true
	}
	return b
}

// Any returns a new Builder for a schemaless JSON field.
func Any(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeJSON, Ident: "any", Nillable: true})
}

// Strings returns a new Builder for a string-slice field, stored as a
// JSON array.
func Strings(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeJSON, Ident: "[]string", Nillable: true})
}

// Ints returns a new Builder for an int-slice field, stored as a JSON
// array.
func Ints(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeJSON, Ident: "[]int", Nillable: true})
}

// Floats returns a new Builder for a float-slice field, stored as a
// JSON array.
func Floats(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeJSON, Ident: "[]float64", Nillable: true})
}

// Enum returns a new EnumBuilder for an enumerated field.
func Enum(name string) *EnumBuilder {
	return &EnumBuilder{Builder: newBuilder(name, &TypeInfo{Type: TypeEnum, Ident: "string"})}
}

// Comment sets the description of the field.
func (b *Builder) Comment(c string) *Builder {
	b.cfg.Comment = c
	return b
}

// Default sets the default value of the field. A func value is treated
// as a default factory, and the field.Null sentinel as an explicit null
// default.
func (b *Builder) Default(v any) *Builder {
	b.cfg.Default = v
	return b
}

// DefaultFunc sets a zero-argument function that produces the field
// default at record-construction time.
func (b *Builder) DefaultFunc(fn any) *Builder {
	b.cfg.Factory = fn
	return b
}

// Required marks the field as required at record construction. Required
// fields are always constructor-settable.
func (b *Builder) Required() *Builder {
	b.cfg.Required = true
	return b
}

// NotNull rejects null values for the field. Fields are nullable unless
// declared otherwise.
func (b *Builder) NotNull() *Builder {
	f := false
	b.cfg.Nullable = &f
	return b
}

// PrimaryKey marks the field as the record's primary key.
func (b *Builder) PrimaryKey() *Builder {
	b.cfg.PrimaryKey = true
	return b
}

// DBType overrides the inferred storage type with a literal storage
// type name.
func (b *Builder) DBType(t string) *Builder {
	b.cfg.DBType = t
	return b
}

// Array requests an array of the field's inferred element storage type.
func (b *Builder) Array() *Builder {
	b.cfg.DBType = DBTypeArray
	return b
}

// Alias sets an alternate external name for the field.
func (b *Builder) Alias(a string) *Builder {
	b.cfg.Alias = a
	return b
}

// Match sets the validation pattern hint from a compiled regexp. The
// descriptor carries the pattern; it does not enforce it.
func (b *Builder) Match(re *regexp.Regexp) *Builder {
	b.cfg.Pattern = re.String()
	return b
}

// Pattern sets the validation pattern hint verbatim.
func (b *Builder) Pattern(p string) *Builder {
	b.cfg.Pattern = p
	return b
}

// Min sets the lower value bound of the field.
func (b *Builder) Min(v float64) *Builder {
	b.cfg.Min = &v
	return b
}

// Max sets the upper value bound of the field.
func (b *Builder) Max(v float64) *Builder {
	b.cfg.Max = &v
	return b
}

// Range sets both value bounds of the field.
func (b *Builder) Range(min, max float64) *Builder {
	return b.Min(min).Max(max)
}

// Validate records a value-validation hook in the field metadata.
func (b *Builder) Validate(fn Validator) *Builder {
	b.cfg.Validator = fn
	return b
}

// Widget records a UI widget hint in the field metadata.
func (b *Builder) Widget(w any) *Builder {
	b.cfg.Widget = w
	return b
}

// Encoder records a serialization encoder in the field metadata.
func (b *Builder) Encoder(e any) *Builder {
	b.cfg.Encoder = e
	return b
}

// Decoder records a serialization decoder in the field metadata.
func (b *Builder) Decoder(d any) *Builder {
	b.cfg.Decoder = d
	return b
}

// ReadOnly marks the field as read-only in the field metadata.
func (b *Builder) ReadOnly() *Builder {
	b.cfg.ReadOnly = true
	return b
}

// Metadata merges a caller-supplied bundle into the field metadata.
// Caller entries win on key conflict with the seeded keys.
func (b *Builder) Metadata(m map[string]any) *Builder {
	b.cfg.Metadata = m
	return b
}

// Extra folds a single passthrough key into the field metadata verbatim.
func (b *Builder) Extra(k string, v any) *Builder {
	if b.cfg.Extra == nil {
		b.cfg.Extra = make(map[string]any)
	}
	b.cfg.Extra[k] = v
	return b
}

// SchemaExtra attaches an opaque passthrough value for external schema
// exporters.
func (b *Builder) SchemaExtra(v any) *Builder {
	b.cfg.SchemaExtra = v
	return b
}

// NoInit excludes the field from the generated constructor. Fields
// excluded from construction are also excluded from display.
func (b *Builder) NoInit() *Builder {
	f := false
	b.cfg.Init = &f
	return b
}

// NoRepr excludes the field from the record string form.
func (b *Builder) NoRepr() *Builder {
	f := false
	b.cfg.Repr = &f
	return b
}

// NoCompare excludes the field from record equality.
func (b *Builder) NoCompare() *Builder {
	f := false
	b.cfg.Compare = &f
	return b
}

// KwOnly marks the field keyword-only in the generated constructor.
func (b *Builder) KwOnly() *Builder {
	b.cfg.KwOnly = true
	return b
}

// Annotations adds a list of annotations to the field object to be used
// by schema consumers.
func (b *Builder) Annotations(annotations ...schema.Annotation) *Builder {
	b.cfg.Annotations = append(b.cfg.Annotations, annotations...)
	return b
}

// Descriptor resolves the builder into its field descriptor. The
// descriptor is built once and memoized; configuration errors are
// recorded in Descriptor.Err for deferred surfacing by the schema
// loader.
func (b *Builder) Descriptor() *Descriptor {
	if b.desc != nil {
		return b.desc
	}
	d, err := New(b.cfg)
	if err == nil && b.err != nil {
		err = b.err
	}
	if err != nil {
		d = &Descriptor{Err: err}
		d.Name = b.name
		d.Info = b.info
		b.desc = d
		return d
	}
	if err := d.Bind(b.name, b.info); err != nil {
		d.Err = err
	}
	b.desc = d
	return d
}

// An EnumBuilder is the fluent declaration surface of an enumerated
// field. The declared values are carried in the field metadata.
type EnumBuilder struct {
	*Builder
}

// Values adds the given literals to the enum values. Calling it
// replaces previously declared values.
func (b *EnumBuilder) Values(values ...string) *EnumBuilder {
	b.Extra("values", values)
	return b
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
