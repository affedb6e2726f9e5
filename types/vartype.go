// Package types models declared variable/parameter/return types and the
// strict and lenient equality rules sema applies when checking assignments,
// arguments, and return statements.
package types

import (
	"fmt"
	"strings"
)

// BaseKind is the primitive or structural category underlying a VarType. It
// is a closed enum; every declarable type shape has a BaseKind here.
type BaseKind int

const (
	Invalid BaseKind = iota
	Integer
	Long
	Short
	Double
	Float
	Char
	String
	Boolean
	Void
	Null
	ClassRef
	Custom
	External
	// FunctionCallMarker and NonFunctionCallMarker are not real variable
	// types. They are part of the closed enum, but sema does not assign
	// either of them to any expression.
	FunctionCallMarker
	NonFunctionCallMarker
)

var baseKindNames = map[BaseKind]string{
	Invalid:               "INVALID",
	Integer:               "INTEGER",
	Long:                  "LONG",
	Short:                 "SHORT",
	Double:                "DOUBLE",
	Float:                 "FLOAT",
	Char:                  "CHAR",
	String:                "STRING",
	Boolean:               "BOOLEAN",
	Void:                  "VOID",
	Null:                  "NULL",
	ClassRef:              "CLASS_REF",
	Custom:                "CUSTOM",
	External:              "EXTERNAL",
	FunctionCallMarker:    "FUNCTION_CALL",
	NonFunctionCallMarker: "NON_FUNCTION_CALL",
}

func (b BaseKind) String() string {
	if s, ok := baseKindNames[b]; ok {
		return s
	}
	return fmt.Sprintf("BaseKind(%d)", int(b))
}

// WideningTargets returns the names of every BaseKind a value of b may be
// used interchangeably with under lenient equality. Double and Float are
// the only such pair in the language; every other kind returns nil.
func (b BaseKind) WideningTargets() []string {
	if b == Double || b == Float {
		return []string{"DOUBLE", "FLOAT"}
	}
	return nil
}

// VarType is the full declared type of a variable, parameter, field, or
// return value: a base kind, an array dimension (0 for a scalar), and,
// for ClassRef/Custom kinds, the referenced class name.
type VarType struct {
	Base     BaseKind
	Dimension int
	ClassRef string
	Constant bool
}

// Scalar builds a non-array, non-const VarType of the given base kind.
func Scalar(base BaseKind) VarType {
	return VarType{Base: base}
}

// Array builds an array VarType of the given base kind and dimension count.
func Array(base BaseKind, dimension int) VarType {
	return VarType{Base: base, Dimension: dimension}
}

// Class builds a VarType referencing a user-defined class by name.
func Class(name string) VarType {
	return VarType{Base: ClassRef, ClassRef: name}
}

// AsConstant returns a copy of v with Constant set.
func (v VarType) AsConstant() VarType {
	v.Constant = true
	return v
}

// IsArray reports whether v has at least one array dimension.
func (v VarType) IsArray() bool {
	return v.Dimension > 0
}

// Name renders the type the way diagnostics display it: the base kind, one
// pair of brackets per array dimension, and the referenced class name in
// angle brackets for ClassRef/Custom types (e.g. "INTEGER[][]",
// "CLASS_REF<Account>").
func (v VarType) Name() string {
	var sb strings.Builder
	sb.WriteString(v.Base.String())
	if v.Base == ClassRef || v.Base == Custom {
		fmt.Fprintf(&sb, "<%s>", v.ClassRef)
	}
	for i := 0; i < v.Dimension; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

func (v VarType) String() string {
	return v.Name()
}

// EqualStrict reports whether two types are identical in every respect
// that matters to an initializer or assignment that demands an exact type
// match: same base kind, same dimension, and, for class references, the
// same class name. Constant-ness is never part of type identity.
func (v VarType) EqualStrict(o VarType) bool {
	if v.Base != o.Base || v.Dimension != o.Dimension {
		return false
	}
	if v.Base == ClassRef || v.Base == Custom {
		return v.ClassRef == o.ClassRef
	}
	return true
}

// EqualLenient reports whether a value of type o may be used where a v is
// expected under the language's lenient-equality rule: Double and Float are
// interchangeable with each other, a declared Custom type matches anything
// of the same dimension, assigning the null literal to any class-reference
// or array type is permitted, and otherwise the two types must be strictly
// equal. There is no general numeric-widening hierarchy; a short may not be
// used where an int is expected, nor an int where a long is expected.
func (v VarType) EqualLenient(o VarType) bool {
	if o.Base == Null && (v.Base == ClassRef || v.Base == Custom || v.IsArray()) {
		return true
	}
	if v.Dimension != o.Dimension {
		return false
	}
	if (v.Base == Double || v.Base == Float) && (o.Base == Double || o.Base == Float) {
		return true
	}
	if v.Base == Custom {
		return true
	}
	return v.EqualStrict(o)
}

// Equal applies strict or lenient equality depending on strictMode,
// mirroring the language's configurable default-strictness switch.
func (v VarType) Equal(o VarType, strictMode bool) bool {
	if strictMode {
		return v.EqualStrict(o)
	}
	return v.EqualLenient(o)
}
