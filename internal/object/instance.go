package object

import (
	"fmt"
	"sort"
	"strings"

	"github.com/veltlang/velt/internal/operator"
)

// Callable is an opaque override handle obtained from a published override
// table. Overrides with a side flag receive args = [other, Boolean(left)],
// Equals and CompareTo receive args = [other], and BitNot receives no args.
type Callable func(receiver Object, args []Object) Object

// OverrideTable maps operator kinds to override handles for one class. A
// table is fully populated at class-definition time and sealed by Publish;
// there is no post-publication writer, so concurrent readers need no
// locking.
type OverrideTable struct {
	entries map[operator.Kind]Callable
}

var emptyOverrideTable = &OverrideTable{}

// EmptyOverrideTable returns the shared table for classes that override
// nothing.
func EmptyOverrideTable() *OverrideTable { return emptyOverrideTable }

// Get returns the override for kind, if the class defines one. Absence
// means "this class does not implement this operator" - the engine never
// judges participation any other way.
func (t *OverrideTable) Get(kind operator.Kind) (Callable, bool) {
	fn, ok := t.entries[kind]
	return fn, ok
}

// Has reports whether the class defines an override for kind.
func (t *OverrideTable) Has(kind operator.Kind) bool {
	_, ok := t.entries[kind]
	return ok
}

// Len returns the number of published overrides.
func (t *OverrideTable) Len() int { return len(t.entries) }

// OverrideTableBuilder accumulates overrides during class definition.
// Publish seals the table; the builder must not be reused afterwards.
type OverrideTableBuilder struct {
	entries map[operator.Kind]Callable
}

func NewOverrideTableBuilder() *OverrideTableBuilder {
	return &OverrideTableBuilder{entries: make(map[operator.Kind]Callable)}
}

// Define records an override for kind. Redefining a kind replaces the
// earlier entry; the last definition before Publish wins.
func (b *OverrideTableBuilder) Define(kind operator.Kind, fn Callable) *OverrideTableBuilder {
	b.entries[kind] = fn
	return b
}

// Publish seals the accumulated overrides into an immutable table.
func (b *OverrideTableBuilder) Publish() *OverrideTable {
	if len(b.entries) == 0 {
		return emptyOverrideTable
	}
	sealed := make(map[operator.Kind]Callable, len(b.entries))
	for kind, fn := range b.entries {
		sealed[kind] = fn
	}
	return &OverrideTable{entries: sealed}
}

// Class is the engine-facing slice of a user-defined type: a name for
// diagnostics and the override table published at definition time.
type Class struct {
	Name      string
	Operators *OverrideTable
}

// NewClass builds a class around a published override table. A nil table
// is replaced with the shared empty table so Classify never reports a nil
// table for a well-formed instance.
func NewClass(name string, operators *OverrideTable) *Class {
	if operators == nil {
		operators = emptyOverrideTable
	}
	return &Class{Name: name, Operators: operators}
}

// Instance is one overloadable value of a class.
type Instance struct {
	Class  *Class
	Fields map[string]Object
}

func (i *Instance) Type() ObjectType { return INSTANCE_OBJ }

func (i *Instance) Inspect() string {
	if len(i.Fields) == 0 {
		return i.Class.Name
	}
	keys := make([]string, 0, len(i.Fields))
	for k := range i.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, i.Fields[k].Inspect()))
	}
	return i.Class.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (i *Instance) Hash() uint32 {
	h := hashString(i.Class.Name)
	for _, k := range sortedFieldKeys(i.Fields) {
		h = h*31 + hashString(k) + i.Fields[k].Hash()
	}
	return h
}

func sortedFieldKeys(fields map[string]Object) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Classify inspects a runtime value and reports whether it can carry
// operator overrides. For instances the returned table is the exact table
// published at class-definition time; everything else is native. O(1) and
// side-effect-free.
func Classify(obj Object) (*OverrideTable, bool) {
	if inst, ok := obj.(*Instance); ok {
		return inst.Class.Operators, true
	}
	return nil, false
}
