package main

import (
	"github.com/veltlang/velt/internal/object"
	"github.com/veltlang/velt/internal/operator"
)

// Demo classes available in the driver. Number overrides only Add and
// CompareTo, so equality derives from CompareTo and subtraction fails
// closed; Complex overrides Equals but no ordering.

func newNumber(class *object.Class, value int64) *object.Instance {
	return &object.Instance{
		Class:  class,
		Fields: map[string]object.Object{"value": &object.Integer{Value: value}},
	}
}

func numberValue(obj object.Object) (int64, bool) {
	switch o := obj.(type) {
	case *object.Integer:
		return o.Value, true
	case *object.Instance:
		if v, ok := o.Fields["value"].(*object.Integer); ok {
			return v.Value, true
		}
	}
	return 0, false
}

func numberClass() *object.Class {
	class := &object.Class{Name: "Number"}
	class.Operators = object.NewOverrideTableBuilder().
		Define(operator.Add, func(receiver object.Object, args []object.Object) object.Object {
			self, _ := numberValue(receiver)
			other, ok := numberValue(args[0])
			if !ok {
				return object.Errorf("Number + %s is not defined", object.TypeName(args[0]))
			}
			return newNumber(class, self+other)
		}).
		Define(operator.CompareTo, func(receiver object.Object, args []object.Object) object.Object {
			self, _ := numberValue(receiver)
			other, ok := numberValue(args[0])
			if !ok {
				return object.Errorf("Number <=> %s is not defined", object.TypeName(args[0]))
			}
			return &object.Integer{Value: self - other}
		}).
		Publish()
	return class
}

func newComplex(class *object.Class, re, im float64) *object.Instance {
	return &object.Instance{
		Class: class,
		Fields: map[string]object.Object{
			"re": &object.Float{Value: re},
			"im": &object.Float{Value: im},
		},
	}
}

func complexParts(obj object.Object) (re, im float64, ok bool) {
	switch o := obj.(type) {
	case *object.Integer:
		return float64(o.Value), 0, true
	case *object.Float:
		return o.Value, 0, true
	case *object.Instance:
		reObj, okRe := o.Fields["re"].(*object.Float)
		imObj, okIm := o.Fields["im"].(*object.Float)
		if okRe && okIm {
			return reObj.Value, imObj.Value, true
		}
	}
	return 0, 0, false
}

func complexClass() *object.Class {
	class := &object.Class{Name: "Complex"}
	class.Operators = object.NewOverrideTableBuilder().
		Define(operator.Add, func(receiver object.Object, args []object.Object) object.Object {
			selfRe, selfIm, _ := complexParts(receiver)
			otherRe, otherIm, ok := complexParts(args[0])
			if !ok {
				return object.Errorf("Complex + %s is not defined", object.TypeName(args[0]))
			}
			return newComplex(class, selfRe+otherRe, selfIm+otherIm)
		}).
		Define(operator.Mul, func(receiver object.Object, args []object.Object) object.Object {
			selfRe, selfIm, _ := complexParts(receiver)
			otherRe, otherIm, ok := complexParts(args[0])
			if !ok {
				return object.Errorf("Complex * %s is not defined", object.TypeName(args[0]))
			}
			return newComplex(class, selfRe*otherRe-selfIm*otherIm, selfRe*otherIm+selfIm*otherRe)
		}).
		Define(operator.Equals, func(receiver object.Object, args []object.Object) object.Object {
			selfRe, selfIm, _ := complexParts(receiver)
			otherRe, otherIm, ok := complexParts(args[0])
			if !ok {
				return object.FALSE
			}
			return object.NativeBool(selfRe == otherRe && selfIm == otherIm)
		}).
		Publish()
	return class
}

// constructor builds a demo instance from evaluated call arguments.
type constructor func(args []object.Object) object.Object

func demoConstructors() map[string]constructor {
	number := numberClass()
	complexC := complexClass()
	return map[string]constructor{
		"Number": func(args []object.Object) object.Object {
			if len(args) != 1 {
				return object.Errorf("Number takes 1 argument, got %d", len(args))
			}
			v, ok := args[0].(*object.Integer)
			if !ok {
				return object.Errorf("Number takes an Int, got %s", object.TypeName(args[0]))
			}
			return newNumber(number, v.Value)
		},
		"Complex": func(args []object.Object) object.Object {
			if len(args) != 2 {
				return object.Errorf("Complex takes 2 arguments, got %d", len(args))
			}
			re, _, okRe := complexParts(args[0])
			im, _, okIm := complexParts(args[1])
			if !okRe || !okIm {
				return object.Errorf("Complex takes two numbers")
			}
			return newComplex(complexC, re, im)
		},
	}
}
