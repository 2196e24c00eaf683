// Package load implements the record-reflection collaborator: it turns
// a datamodel.Record definition into its ordered sequence of bound
// field descriptors, and into a serializable schema consumed by
// external generators.
//
// Mixin fields are loaded first, in mixin declaration order, followed
// by the record's own fields in declaration order.
package load

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-openapi/inflect"

	"github.com/syssam/datamodel"
	"github.com/syssam/datamodel/schema"
	"github.com/syssam/datamodel/schema/field"
)

// Schema represents a datamodel.Record that was loaded from a user
// package.
type Schema struct {
	Name        string         `json:"name,omitempty"`
	Table       string         `json:"table,omitempty"`
	Fields      []*Field       `json:"fields,omitempty"`
	Annotations map[string]any `json:"annotations,omitempty"`
}

// Position describes the position of a field in the record declaration.
type Position struct {
	Index      int  // Index in the field list.
	MixedIn    bool // Indicates if the field was mixed-in.
	MixinIndex int  // Mixin index in the mixin list.
}

// Field is the serializable form of a field descriptor.
type Field struct {
	Name         string          `json:"name,omitempty"`
	Info         *field.TypeInfo `json:"type,omitempty"`
	Comment      string          `json:"comment,omitempty"`
	Alias        string          `json:"alias,omitempty"`
	Pattern      string          `json:"pattern,omitempty"`
	Required     bool            `json:"required,omitempty"`
	Nullable     bool            `json:"nullable,omitempty"`
	PrimaryKey   bool            `json:"primary_key,omitempty"`
	DBType       string          `json:"db_type,omitempty"`
	StorageType  string          `json:"storage_type,omitempty"`
	Min          *float64        `json:"min,omitempty"`
	Max          *float64        `json:"max,omitempty"`
	Default      bool            `json:"default,omitempty"`
	DefaultValue any             `json:"default_value,omitempty"`
	DefaultKind  reflect.Kind    `json:"default_kind,omitempty"`
	ReadOnly     bool            `json:"readonly,omitempty"`
	Init         bool            `json:"init"`
	Repr         bool            `json:"repr"`
	Compare      bool            `json:"compare"`
	Hash         bool            `json:"hash"`
	KwOnly       bool            `json:"kw_only,omitempty"`
	Position     *Position       `json:"position,omitempty"`
	Metadata     map[string]any  `json:"metadata,omitempty"`
	Annotations  map[string]any  `json:"annotations,omitempty"`
}

// NewField creates a loaded field from a field descriptor.
// It returns an error if the descriptor contains an error.
func NewField(fd *field.Descriptor) (*Field, error) {
	if fd.Err != nil {
		return nil, fmt.Errorf("field %q: %w", fd.Name, fd.Err)
	}
	if fd.Name == "" {
		return nil, fmt.Errorf("unbound field descriptor: missing name")
	}
	sf := &Field{
		Name:        fd.Name,
		Info:        fd.Info,
		Comment:     fd.Comment,
		Alias:       fd.Alias,
		Pattern:     fd.Pattern,
		Required:    fd.Required,
		Nullable:    fd.Nullable,
		PrimaryKey:  fd.PrimaryKey,
		DBType:      fd.DBType,
		StorageType: fd.StorageType(),
		Min:         fd.Min,
		Max:         fd.Max,
		Default:     fd.Default.Present(),
		ReadOnly:    fd.ReadOnly(),
		Init:        fd.Init,
		Repr:        fd.Repr,
		Compare:     fd.Compare,
		Hash:        fd.Hash,
		KwOnly:      fd.KwOnly,
		Annotations: make(map[string]any),
	}
	for _, at := range fd.Annotations {
		addAnnotation(sf.Annotations, at)
	}
	// Only values that survive the wire are carried; funcs and other
	// non-encodable metadata entries stay behind on the descriptor.
	if v, ok := fd.Default.Value(); ok {
		if _, err := json.Marshal(v); err == nil {
			sf.DefaultValue = v
			sf.DefaultKind = reflect.ValueOf(v).Kind()
		}
	} else if fn, ok := fd.Default.Func(); ok {
		sf.DefaultKind = reflect.TypeOf(fn).Kind()
	}
	sf.Metadata = encodableMetadata(fd.Metadata())
	return sf, nil
}

// Load loads the given record definition into its serializable schema.
// A value that does not implement datamodel.Record yields a
// NotRecordError.
func Load(v any) (*Schema, error) {
	r, ok := v.(datamodel.Record)
	if !ok {
		return nil, datamodel.NewNotRecordError(fmt.Sprintf("%T", v))
	}
	name := indirect(reflect.TypeOf(r)).Name()
	s := &Schema{
		Name:        name,
		Table:       inflect.Underscore(name),
		Annotations: make(map[string]any),
	}
	descriptors, positions, err := recordFields(r)
	if err != nil {
		return nil, fmt.Errorf("record %q: %w", s.Name, err)
	}
	for i, fd := range descriptors {
		sf, err := NewField(fd)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", s.Name, err)
		}
		sf.Position = positions[i]
		s.Fields = append(s.Fields, sf)
	}
	mixins, err := safeMixin(r)
	if err != nil {
		return nil, fmt.Errorf("record %q: %w", s.Name, err)
	}
	for _, mx := range mixins {
		for _, at := range mx.Annotations() {
			s.addAnnotation(at)
		}
	}
	// Record annotations override mixed-in annotations.
	for _, at := range r.Annotations() {
		s.addAnnotation(at)
	}
	return s, nil
}

// Fields returns the ordered sequence of bound field descriptors of the
// given record definition: mixin fields first, then the record's own
// fields, both in declaration order. Results are memoized per record
// type once loading succeeds.
func Fields(v any) ([]*field.Descriptor, error) {
	r, ok := v.(datamodel.Record)
	if !ok {
		return nil, datamodel.NewNotRecordError(fmt.Sprintf("%T", v))
	}
	typ := indirect(reflect.TypeOf(r))
	if fds, ok := columns.get(typ); ok {
		return fds, nil
	}
	fds, _, err := recordFields(r)
	if err != nil {
		return nil, fmt.Errorf("record %q: %w", typ.Name(), err)
	}
	for _, fd := range fds {
		if fd.Err != nil {
			return nil, fmt.Errorf("record %q: field %q: %w", typ.Name(), fd.Name, fd.Err)
		}
	}
	columns.put(typ, fds)
	return fds, nil
}

// MarshalRecord encodes a record definition into JSON that can be
// decoded back with UnmarshalRecord.
func MarshalRecord(v any) ([]byte, error) {
	s, err := Load(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalRecord decodes the given buffer to a loaded schema.
func UnmarshalRecord(buf []byte) (*Schema, error) {
	s := &Schema{}
	if err := json.Unmarshal(buf, s); err != nil {
		return nil, err
	}
	for _, f := range s.Fields {
		if err := f.defaults(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// recordFields collects the descriptors of a record: mixin fields
// first, then the record's own fields.
func recordFields(r datamodel.Record) ([]*field.Descriptor, []*Position, error) {
	var (
		fds       []*field.Descriptor
		positions []*Position
	)
	mixins, err := safeMixin(r)
	if err != nil {
		return nil, nil, err
	}
	for i, mx := range mixins {
		name := indirect(reflect.TypeOf(mx)).Name()
		fields, ferr := safeFields(mx)
		if ferr != nil {
			return nil, nil, fmt.Errorf("mixin %q: %w", name, ferr)
		}
		for j, f := range fields {
			fds = append(fds, f.Descriptor())
			positions = append(positions, &Position{
				Index:      j,
				MixedIn:    true,
				MixinIndex: i,
			})
		}
	}
	fields, err := safeFields(r)
	if err != nil {
		return nil, nil, err
	}
	for i, f := range fields {
		fds = append(fds, f.Descriptor())
		positions = append(positions, &Position{Index: i})
	}
	return fds, positions, nil
}

// defaults restores the numeric type of a decoded default value.
// JSON decoding widens every number to float64.
func (f *Field) defaults() error {
	if !f.Default || f.Info == nil || !f.Info.Type.Integer() || f.DefaultValue == nil {
		return nil
	}
	n, ok := f.DefaultValue.(float64)
	if !ok {
		return fmt.Errorf("unexpected default value type for field: %q", f.Name)
	}
	switch t := f.Info.Type; {
	case t >= field.TypeInt8 && t <= field.TypeInt64:
		f.DefaultValue = int64(n)
	case t >= field.TypeUint8 && t <= field.TypeUint64:
		f.DefaultValue = uint64(n)
	}
	return nil
}

func (s *Schema) addAnnotation(an schema.Annotation) {
	addAnnotation(s.Annotations, an)
}

func addAnnotation(annotations map[string]any, an schema.Annotation) {
	curr, ok := annotations[an.Name()]
	if !ok {
		annotations[an.Name()] = an
		return
	}
	if m, ok := curr.(schema.Merger); ok {
		annotations[an.Name()] = m.Merge(an)
	}
}

// encodableMetadata filters a metadata map down to the entries that can
// be carried over the wire.
func encodableMetadata(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if _, err := json.Marshal(v); err == nil {
			out[k] = v
		}
	}
	return out
}

// safeFields wraps the record and mixin Fields methods with recover to
// ensure no panics in loading.
func safeFields(fd interface{ Fields() []datamodel.Field }) (fields []datamodel.Field, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Fields panics: %v", fd, v)
			fields = nil
		}
	}()
	return fd.Fields(), nil
}

// safeMixin wraps the record Mixin method with recover to ensure no
// panics in loading.
func safeMixin(r datamodel.Record) (mixin []datamodel.Mixin, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("record.Mixin panics: %v", v)
			mixin = nil
		}
	}()
	return r.Mixin(), nil
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// columns memoizes the resolved descriptor sequence per record type;
// record declarations are class-level and shared by all instances.
var columns = &columnCache{m: make(map[reflect.Type][]*field.Descriptor)}

type columnCache struct {
	mu sync.RWMutex
	m  map[reflect.Type][]*field.Descriptor
}

func (c *columnCache) get(t reflect.Type) ([]*field.Descriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fds, ok := c.m[t]
	return fds, ok
}

func (c *columnCache) put(t reflect.Type, fds []*field.Descriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[t] = fds
}
