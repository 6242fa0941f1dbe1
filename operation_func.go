package yesql

import (
	"context"
	"reflect"
)

var wellKnownTypes = struct {
	contextType          reflect.Type
	errorType            reflect.Type
	relationPtrType      reflect.Type
	sliceOfInterfaceType reflect.Type
}{
	contextType:          reflect.TypeOf((*context.Context)(nil)).Elem(),
	errorType:            reflect.TypeOf((*error)(nil)).Elem(),
	relationPtrType:      reflect.TypeOf((*Relation)(nil)),
	sliceOfInterfaceType: reflect.TypeOf([]interface{}{}),
}

// BindFunc makes a strongly-typed function for one of the relation
// type's bound operations and assigns it via funcPtr, which must be a
// pointer to a function with one of the following signatures:
//
//	func(ctx context.Context, args ...interface{}) (*Relation, error)
//	func(args ...interface{}) (*Relation, error)
//
// The second form dispatches with context.Background().
//
// The operation does not need to be bound at the time BindFunc is
// called: the made function looks the operation up on each call, so it
// observes a later Rebind. Calling a made function for a name that is
// not bound returns ErrOperationNotFound, the same as Call.
//
// If funcPtr is not a pointer to a function of a supported signature,
// BindFunc panics. This is a programming error, not a runtime
// condition.
func (rt *RelationType) BindFunc(name string, funcPtr interface{}) {
	if err := rt.bindFunc(name, funcPtr); err != nil {
		panic(err)
	}
}

func (rt *RelationType) bindFunc(name string, funcPtr interface{}) error {
	funcPtrValue := reflect.ValueOf(funcPtr)
	if funcPtrValue.Kind() != reflect.Ptr {
		return newError("expected pointer to function, got %s", funcPtrValue.Type().String())
	}
	funcValue := funcPtrValue.Elem()
	funcType := funcValue.Type()
	if funcType.Kind() != reflect.Func {
		return newError("expected pointer to function, got %s", funcPtrValue.Type().String())
	}

	withContext, err := checkOperationFuncType(funcType)
	if err != nil {
		return err
	}

	funcValue.Set(reflect.MakeFunc(funcType, func(in []reflect.Value) []reflect.Value {
		ctx := context.Background()
		argsIndex := 0
		if withContext {
			ctx = in[0].Interface().(context.Context)
			argsIndex = 1
		}
		args := in[argsIndex].Interface().([]interface{})
		rel, err := rt.Call(ctx, name, args...)
		relValue := reflect.ValueOf(rel)
		if rel == nil {
			relValue = reflect.Zero(wellKnownTypes.relationPtrType)
		}
		return []reflect.Value{relValue, errorValueFor(err)}
	}))
	return nil
}

// checkOperationFuncType reports whether funcType is one of the
// supported operation function signatures, and whether its first input
// is a context.
func checkOperationFuncType(funcType reflect.Type) (withContext bool, err error) {
	const invalidMsg = "expect operation function to be like func(ctx context.Context, args ...interface{}) (*Relation, error)"
	if !funcType.IsVariadic() {
		return false, newError(invalidMsg)
	}
	switch funcType.NumIn() {
	case 1:
		if funcType.In(0) != wellKnownTypes.sliceOfInterfaceType {
			return false, newError(invalidMsg)
		}
	case 2:
		if funcType.In(0) != wellKnownTypes.contextType {
			return false, newError(invalidMsg)
		}
		if funcType.In(1) != wellKnownTypes.sliceOfInterfaceType {
			return false, newError(invalidMsg)
		}
		withContext = true
	default:
		return false, newError(invalidMsg)
	}
	if funcType.NumOut() != 2 {
		return false, newError(invalidMsg)
	}
	if funcType.Out(0) != wellKnownTypes.relationPtrType {
		return false, newError(invalidMsg)
	}
	if funcType.Out(1) != wellKnownTypes.errorType {
		return false, newError(invalidMsg)
	}
	return withContext, nil
}

func errorValueFor(err error) reflect.Value {
	if err == nil {
		return reflect.Zero(wellKnownTypes.errorType)
	}
	return reflect.ValueOf(err)
}
