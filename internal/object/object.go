package object

import "hash/fnv"

type ObjectType string

const (
	INTEGER_OBJ  = "INTEGER"
	FLOAT_OBJ    = "FLOAT"
	BOOLEAN_OBJ  = "BOOLEAN"
	STRING_OBJ   = "STRING"
	NIL_OBJ      = "NIL"
	ERROR_OBJ    = "ERROR"
	INSTANCE_OBJ = "INSTANCE"

	// Runtime Type Names (Canonical)
	RUNTIME_TYPE_INT    = "Int"
	RUNTIME_TYPE_FLOAT  = "Float"
	RUNTIME_TYPE_BOOL   = "Bool"
	RUNTIME_TYPE_STRING = "String"
	RUNTIME_TYPE_NIL    = "Nil"
)

type Object interface {
	Type() ObjectType
	Inspect() string
	Hash() uint32
}

// TypeName reports the diagnostic type identity of an object: the class
// name for instances, the canonical native name otherwise.
func TypeName(obj Object) string {
	switch o := obj.(type) {
	case *Instance:
		return o.Class.Name
	case *Integer:
		return RUNTIME_TYPE_INT
	case *Float:
		return RUNTIME_TYPE_FLOAT
	case *Boolean:
		return RUNTIME_TYPE_BOOL
	case *String:
		return RUNTIME_TYPE_STRING
	case *Nil:
		return RUNTIME_TYPE_NIL
	default:
		return string(obj.Type())
	}
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
