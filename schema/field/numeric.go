package field

// Int returns a new Builder for an int field.
func Int(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeInt, Ident: "int"})
}

// Int8 returns a new Builder for an int8 field.
func Int8(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeInt8, Ident: "int8"})
}

// Int16 returns a new Builder for an int16 field.
func Int16(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeInt16, Ident: "int16"})
}

// Int32 returns a new Builder for an int32 field.
func Int32(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeInt32, Ident: "int32"})
}

// Int64 returns a new Builder for an int64 field.
func Int64(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeInt64, Ident: "int64"})
}

// Uint returns a new Builder for a uint field.
func Uint(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeUint, Ident: "uint"})
}

// Uint8 returns a new Builder for a uint8 field.
func Uint8(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeUint8, Ident: "uint8"})
}

// Uint16 returns a new Builder for a uint16 field.
func Uint16(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeUint16, Ident: "uint16"})
}

// Uint32 returns a new Builder for a uint32 field.
func Uint32(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeUint32, Ident: "uint32"})
}

// Uint64 returns a new Builder for a uint64 field.
func Uint64(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeUint64, Ident: "uint64"})
}

// Float returns a new Builder for a float64 field.
func Float(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeFloat64, Ident: "float64"})
}

// Float64 returns a new Builder for a float64 field.
func Float64(name string) *Builder {
	return Float(name)
}

// Float32 returns a new Builder for a float32 field.
func Float32(name string) *Builder {
	return newBuilder(name, &TypeInfo{Type: TypeFloat32, Ident: "float32"})
}
