package field

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/syssam/datamodel/schema"
)

// DBTypeArray is the storage-type override sentinel requesting an array
// of the field's inferred (or overridden) element storage type.
const DBTypeArray = "array"

// A Validator is a value-validation hook carried in the descriptor
// metadata. The descriptor records it verbatim; enforcement belongs to
// the record-construction pipeline.
type Validator func(any) error

// ConfigurationError reports an invalid combination of construction
// options. It fails fast at construction and is never deferred.
type ConfigurationError struct {
	msg string
}

// Error returns the error string.
func (e *ConfigurationError) Error() string {
	return "field: invalid configuration: " + e.msg
}

// IsConfigurationError returns true if the error is a ConfigurationError.
func IsConfigurationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ConfigurationError
	return errors.As(err, &e)
}

// Config is the full construction option set of a descriptor. Every
// recognized option has a named field; unrecognized keys go through
// Extra and are folded into the metadata verbatim.
//
// The pointer fields are tri-state: nil means "not supplied" and takes
// the documented default (Nullable, Init, Repr, Compare and Hash
// default to true).
type Config struct {
	// Comment describes the field for humans and schema exporters.
	Comment string

	// Default is the literal default value. A func value is treated as
	// a default factory, and the Null sentinel as an explicit null
	// default. nil means no default.
	Default any

	// Factory is a zero-argument function producing the default at
	// record-construction time. Mutually exclusive with DefaultFactory.
	Factory any

	// DefaultFactory is the option-set spelling of Factory. Supplying
	// both is a configuration error.
	DefaultFactory any

	Required   bool
	Nullable   *bool // nil == nullable
	PrimaryKey bool

	// DBType overrides the inferred storage type. The DBTypeArray
	// sentinel requests an array of the inferred element type.
	DBType string

	Alias   string
	Pattern string

	Min *float64
	Max *float64

	Validator Validator

	Widget   any
	Encoder  any
	Decoder  any
	ReadOnly bool

	// Construction flags consumed by the owning record-reflection
	// mechanism.
	Init    *bool
	Repr    *bool
	Compare *bool
	Hash    *bool
	KwOnly  bool

	// Metadata is a caller-supplied bundle merged into the descriptor
	// metadata; caller entries win on key conflict with the seeded
	// required/nullable/primary/validator keys.
	Metadata map[string]any

	// Extra holds passthrough keys folded into the metadata verbatim.
	Extra map[string]any

	// SchemaExtra is an opaque passthrough for external schema exporters.
	SchemaExtra any

	Annotations []schema.Annotation
}

// A Descriptor for field configuration. It is constructed once with
// New (or through the fluent builders), bound to a name and value type
// exactly once, and immutable afterwards.
type Descriptor struct {
	Name        string    // field name
	Info        *TypeInfo // value type info, assigned at bind time
	Comment     string    // field description
	Alias       string    // alternate external name
	Pattern     string    // validation pattern hint, not enforced here
	Required    bool      // must be supplied at record construction
	Nullable    bool      // accepts null values
	PrimaryKey  bool      // primary-key status
	DBType      string    // storage-type override, or the array sentinel
	Min         *float64  // lower value bound
	Max         *float64  // upper value bound
	Default     Default   // resolved default variant
	Init        bool      // include in generated constructor
	Repr        bool      // include in string form
	Compare     bool      // include in equality
	Hash        bool      // include in hashing
	KwOnly      bool      // keyword-only in generated constructor
	SchemaExtra any       // opaque exporter passthrough
	Annotations []schema.Annotation
	Err         error

	validator  any
	widget     any
	encoder    any
	decoder    any
	readOnly   bool
	callerMeta map[string]any
	extra      map[string]any
	bound      bool
}

// New resolves the given option set into a descriptor. The descriptor
// is unbound: the owning reflection mechanism assigns its name and
// value type with Bind before any query is made against it.
//
// Construction is atomic: on a configuration error no descriptor is
// returned.
func New(cfg Config) (*Descriptor, error) {
	if cfg.Factory != nil && cfg.DefaultFactory != nil {
		return nil, &ConfigurationError{msg: "cannot specify both factory and default_factory"}
	}
	def, err := resolveDefault(cfg)
	if err != nil {
		return nil, err
	}
	d := &Descriptor{
		Comment:     cfg.Comment,
		Alias:       cfg.Alias,
		Pattern:     cfg.Pattern,
		Required:    cfg.Required,
		Nullable:    boolOr(cfg.Nullable, true),
		PrimaryKey:  cfg.PrimaryKey,
		DBType:      cfg.DBType,
		Min:         cfg.Min,
		Max:         cfg.Max,
		Default:     def,
		Init:        boolOr(cfg.Init, true),
		Repr:        boolOr(cfg.Repr, true),
		Compare:     boolOr(cfg.Compare, true),
		Hash:        boolOr(cfg.Hash, true),
		KwOnly:      cfg.KwOnly,
		SchemaExtra: cfg.SchemaExtra,
		Annotations: cfg.Annotations,
		readOnly:    cfg.ReadOnly,
		widget:      cfg.Widget,
		encoder:     cfg.Encoder,
		decoder:     cfg.Decoder,
	}
	if cfg.Validator != nil {
		d.validator = cfg.Validator
	}
	// Required fields must be constructor-settable, and fields excluded
	// from construction are excluded from display.
	if d.Required {
		d.Init = true
	}
	if !d.Init {
		d.Repr = false
	}
	if len(cfg.Metadata) > 0 {
		d.callerMeta = make(map[string]any, len(cfg.Metadata))
		for k, v := range cfg.Metadata {
			d.callerMeta[k] = v
		}
	}
	if len(cfg.Extra) > 0 {
		d.extra = make(map[string]any, len(cfg.Extra))
		for k, v := range cfg.Extra {
			d.extra[k] = v
		}
	}
	return d, nil
}

// Column is the convenience factory wrapping New with the descriptor's
// own construction ergonomics. It is pass-through: a configuration
// error is recorded in the Err field for deferred surfacing by the
// schema loader.
func Column(cfg Config) *Descriptor {
	d, err := New(cfg)
	if err != nil {
		return &Descriptor{Err: err}
	}
	return d
}

// resolveDefault reconciles the default, factory, and default_factory
// inputs into a single Default variant. At most one of constant and
// factory survives; a supplied func default is promoted to a factory.
func resolveDefault(cfg Config) (Default, error) {
	if v := cfg.Default; v != nil {
		if v == Null {
			return Constant(nil), nil
		}
		if reflect.TypeOf(v).Kind() == reflect.Func {
			return Factory(v), nil
		}
		return Constant(v), nil
	}
	fn := cfg.Factory
	if fn == nil {
		fn = cfg.DefaultFactory
	}
	if fn == nil {
		return NoDefault, nil
	}
	if kind := reflect.TypeOf(fn).Kind(); kind != reflect.Func {
		return NoDefault, &ConfigurationError{msg: fmt.Sprintf("default factory expects func but got %s", kind)}
	}
	return Factory(fn), nil
}

// Bind assigns the field name and value type to the descriptor. It is
// invoked exactly once by the declaring context (a fluent builder or
// the record-reflection mechanism); rebinding is an error.
func (d *Descriptor) Bind(name string, info *TypeInfo) error {
	if d.bound {
		return fmt.Errorf("field: descriptor %q is already bound", d.Name)
	}
	d.Name = name
	d.Info = info
	d.bound = true
	return nil
}

// Descriptor returns the descriptor itself, letting a bound descriptor
// stand in wherever a declared record field is expected.
func (d *Descriptor) Descriptor() *Descriptor { return d }

// IsRequired reports whether the field must be supplied at record
// construction.
func (d *Descriptor) IsRequired() bool { return d.Required }

// IsNullable reports whether the field accepts null values.
func (d *Descriptor) IsNullable() bool { return d.Nullable }

// IsPrimaryKey reports whether the field is part of the primary key.
func (d *Descriptor) IsPrimaryKey() bool { return d.PrimaryKey }

// ReadOnly reports whether the field was marked read-only.
func (d *Descriptor) ReadOnly() bool { return d.readOnly }

// StorageTypeOverride returns the raw storage-type override, verbatim
// and without any table lookup. Empty means no override.
func (d *Descriptor) StorageTypeOverride() string { return d.DBType }

// StorageType returns the storage-type name of the field. An override
// always wins over inference, except when it requests array expansion
// of the inferred element type.
func (d *Descriptor) StorageType() string {
	switch {
	case d.DBType == DBTypeArray:
		return d.inferredStorageType() + "[]"
	case d.DBType != "":
		return d.DBType
	default:
		return d.inferredStorageType()
	}
}

func (d *Descriptor) inferredStorageType() string {
	if d.Info == nil {
		return DefaultStorageType
	}
	return StorageTypeOf(d.Info.Type)
}

// Metadata returns the merged metadata map of the field. The map is
// derived from the descriptor on every call, so successive calls return
// equal contents and mutations of the returned map do not leak back.
func (d *Descriptor) Metadata() map[string]any {
	m := map[string]any{
		"required":  d.Required,
		"nullable":  d.Nullable,
		"primary":   d.PrimaryKey,
		"validator": d.validator,
	}
	for k, v := range d.callerMeta {
		m[k] = v
	}
	m["widget"] = d.widget
	m["encoder"] = d.encoder
	m["decoder"] = d.decoder
	m["readonly"] = d.readOnly
	for k, v := range d.extra {
		m[k] = v
	}
	// The range sub-map is folded last so it is not shadowed by a
	// caller-supplied metadata bundle.
	if d.Min != nil || d.Max != nil {
		r := make(map[string]any, 2)
		if d.Min != nil {
			r["min"] = *d.Min
		}
		if d.Max != nil {
			r["max"] = *d.Max
		}
		m["range"] = r
	}
	return m
}

// String returns the diagnostic representation of the field descriptor.
func (d *Descriptor) String() string {
	typ := "<unbound>"
	if d.Info != nil {
		typ = d.Info.String()
	}
	return fmt.Sprintf("Field(name=%q, type=%s, default=%s)", d.Name, typ, d.Default)
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
