package field

import "fmt"

// nullValue is the type of the Null sentinel.
type nullValue struct{}

// Null requests an explicit null default, distinct from having no
// default at all. Passing it as Config.Default (or to Builder.Default)
// resolves to Constant(nil).
var Null any = nullValue{}

type defaultKind uint8

const (
	noDefault defaultKind = iota
	constantDefault
	factoryDefault
)

// A Default is the resolved default of a field descriptor. It is a
// tagged variant holding exactly one of: nothing (the "absent"
// sentinel), a constant value, or a zero-argument factory invoked at
// record-construction time. The variant makes the constant/factory
// mutual exclusivity structural rather than a runtime flag check.
type Default struct {
	kind  defaultKind
	value any
	fn    any // func() T, kept as declared
}

// NoDefault is the absent sentinel: the field carries no default.
var NoDefault = Default{}

// Constant returns a concrete-value default. Constant(nil) is a valid
// explicit null default and is distinct from NoDefault.
func Constant(v any) Default {
	return Default{kind: constantDefault, value: v}
}

// Factory returns a default produced by the given zero-argument
// function at record-construction time.
func Factory(fn any) Default {
	return Default{kind: factoryDefault, fn: fn}
}

// Present reports whether the field has any default, constant or factory.
func (d Default) Present() bool {
	return d.kind != noDefault
}

// Value returns the constant default value. The second result is false
// unless the default is a constant.
func (d Default) Value() (any, bool) {
	return d.value, d.kind == constantDefault
}

// Func returns the default factory. The second result is false unless
// the default is a factory.
func (d Default) Func() (any, bool) {
	return d.fn, d.kind == factoryDefault
}

// String returns a diagnostic representation of the default.
func (d Default) String() string {
	switch d.kind {
	case constantDefault:
		return fmt.Sprintf("%v", d.value)
	case factoryDefault:
		return fmt.Sprintf("%T", d.fn)
	default:
		return "<absent>"
	}
}
