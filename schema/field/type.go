package field

// A Type represents a field value type.
type Type uint8

// List of field types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeTime
	TypeJSON
	TypeUUID
	TypeBytes
	TypeEnum
	TypeString
	TypeText
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint
	TypeUint64
	TypeFloat32
	TypeFloat64
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeTime:    "time.Time",
	TypeJSON:    "json.RawMessage",
	TypeUUID:    "[16]byte",
	TypeBytes:   "[]byte",
	TypeEnum:    "string",
	TypeString:  "string",
	TypeText:    "string",
	TypeInt8:    "int8",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeInt:     "int",
	TypeInt64:   "int64",
	TypeUint8:   "uint8",
	TypeUint16:  "uint16",
	TypeUint32:  "uint32",
	TypeUint:    "uint",
	TypeUint64:  "uint64",
	TypeFloat32: "float32",
	TypeFloat64: "float64",
}

// String returns the string representation of a type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type if known type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t >= TypeInt8 && t < endTypes
}

// Integer reports if the given type is an integral type.
func (t Type) Integer() bool {
	return t >= TypeInt8 && t <= TypeUint64
}

// Float reports if the given type is a float type.
func (t Type) Float() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// storageTypes maps each value-type tag to its canonical storage-type
// name. The table is initialized once and never mutated, making it safe
// for unsynchronized concurrent reads.
var storageTypes = map[Type]string{
	TypeBool:    "boolean",
	TypeTime:    "timestamp without time zone",
	TypeJSON:    "jsonb",
	TypeUUID:    "uuid",
	TypeBytes:   "bytea",
	TypeEnum:    "varchar",
	TypeString:  "varchar",
	TypeText:    "text",
	TypeInt8:    "smallint",
	TypeInt16:   "smallint",
	TypeInt32:   "integer",
	TypeInt:     "integer",
	TypeInt64:   "bigint",
	TypeUint8:   "smallint",
	TypeUint16:  "integer",
	TypeUint32:  "bigint",
	TypeUint:    "bigint",
	TypeUint64:  "bigint",
	TypeFloat32: "real",
	TypeFloat64: "double precision",
}

// DefaultStorageType is the generic textual storage type returned for
// value types that have no entry in the storage-type table.
const DefaultStorageType = "varchar"

// StorageTypeOf returns the canonical storage-type name for the given
// value type. The lookup is total: unknown types map to
// DefaultStorageType rather than failing.
func StorageTypeOf(t Type) string {
	if s, ok := storageTypes[t]; ok {
		return s
	}
	return DefaultStorageType
}

// TypeInfo holds the information regarding field value type.
type TypeInfo struct {
	Type     Type
	Ident    string
	PkgPath  string `json:"PkgPath,omitempty"`
	Nillable bool   `json:"Nillable,omitempty"`
}

// String returns the Go identifier of the type, or the tag name for
// builtin types.
func (t TypeInfo) String() string {
	switch {
	case t.Ident != "":
		return t.Ident
	case t.Type < endTypes:
		return typeNames[t.Type]
	default:
		return "invalid"
	}
}
