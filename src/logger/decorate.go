// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"
)

// Metadata keys written by a [Decorator].
const (
	KeyArgs          = "args"
	KeyReturns       = "returns"
	KeyExecutionTime = "executionTime"
	KeyError         = "error"
	KeyPanic         = "panic"
)

// DecorateOption configures a [Decorator].
type DecorateOption func(*Decorator)

// WithExecutionTime records the call duration under "executionTime" as
// whole milliseconds, e.g. "12ms".
func WithExecutionTime(enabled bool) DecorateOption {
	return func(d *Decorator) { d.executionTime = enabled }
}

// WithName sets the name logged as "[name]". By default the name is taken
// from the wrapped function's symbol.
func WithName(name string) DecorateOption {
	return func(d *Decorator) { d.name = name }
}

// Decorator wraps functions so that every call emits one log entry at a
// fixed level. The entry's message is the bracketed function name and its
// metadata holds the call's arguments, its return value and, if enabled,
// its execution time.
//
// A wrapped call behaves exactly like the original: the same results are
// returned and a panic is re-raised unchanged. A non-nil trailing error
// result is additionally recorded under "error", and a panic under "panic",
// before the entry is emitted.
//
// A Decorator is immutable and may be reused for any number of functions.
type Decorator struct {
	logger        *Logger
	level         Level
	executionTime bool
	name          string
}

// Decorate returns a Decorator that logs wrapped calls at level.
func (l *Logger) Decorate(level Level, opts ...DecorateOption) *Decorator {
	d := &Decorator{logger: l, level: level}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Named returns a copy of d that logs calls as "[name]".
func (d *Decorator) Named(name string) *Decorator {
	c := *d
	c.name = name
	return &c
}

// Wrap wraps fn, which may be any function, and returns a function of the
// same type. Callers type-assert the result:
//
//	sum := d.Wrap(strings.Join).(func([]string, string) string)
//
// If fn is not a function, Wrap reports a diagnostic and returns fn as is.
func (d *Decorator) Wrap(fn any) any {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		d.logger.diag.Printf("decorate: %T is not a function, left unwrapped", fn)
		return fn
	}

	typ := v.Type()
	name := d.nameOf(fn)
	return reflect.MakeFunc(typ, func(in []reflect.Value) (out []reflect.Value) {
		d.invoke(name, reflectArgs(typ, in), func() (any, bool, error) {
			if typ.IsVariadic() {
				out = v.CallSlice(in)
			} else {
				out = v.Call(in)
			}
			return reflectResults(typ, out)
		})
		return out
	}).Interface()
}

// invoke runs call and emits the instrumentation entry. call reports the
// value to record under "returns", whether there is one, and the error
// result, if any.
//
// Only call is covered by recover; a panic raised while emitting belongs to
// the formatter or a transport and propagates without a second emission.
func (d *Decorator) invoke(name string, args []any, call func() (any, bool, error)) {
	start := time.Now()

	var (
		ret      any
		ok       bool
		err      error
		p        any
		panicked bool
	)
	func() {
		defer func() {
			p = recover()
			panicked = p != nil
		}()
		ret, ok, err = call()
	}()

	md := Metadata{KeyArgs: args}
	switch {
	case panicked:
		md[KeyPanic] = fmt.Sprint(p)
	default:
		if ok {
			md[KeyReturns] = ret
		}
		if err != nil {
			md[KeyError] = err.Error()
		}
	}
	d.emit(name, start, md)

	if panicked {
		panic(p)
	}
}

func (d *Decorator) emit(name string, start time.Time, md Metadata) {
	if d.executionTime {
		md[KeyExecutionTime] = fmt.Sprintf("%dms", time.Since(start).Milliseconds())
	}
	// The wrapped call already completed; a delivery failure must not
	// change what the caller gets back.
	if err := d.logger.Log(d.level, "["+name+"]", WithMetadata(md)); err != nil {
		d.logger.diag.Printf("decorate: [%s]: %v", name, err)
	}
}

func (d *Decorator) nameOf(fn any) string {
	if d.name != "" {
		return d.name
	}
	return funcName(fn)
}

// funcName derives a short name from the runtime symbol of fn, e.g.
// "add" for "example.com/pkg.add" and "Add" for "pkg.(*Calc).Add-fm".
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "unknown"
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "unknown"
	}

	name := strings.TrimSuffix(f.Name(), "-fm")
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

var errorType = reflect.TypeFor[error]()

// reflectArgs converts call arguments to a slice, expanding the variadic tail.
func reflectArgs(typ reflect.Type, in []reflect.Value) []any {
	args := make([]any, 0, len(in))
	for i, arg := range in {
		if typ.IsVariadic() && i == len(in)-1 {
			for j := range arg.Len() {
				args = append(args, arg.Index(j).Interface())
			}
			continue
		}
		args = append(args, arg.Interface())
	}
	return args
}

// reflectResults splits a trailing error result off the others. A single
// remaining result is returned as itself, several as a slice.
func reflectResults(typ reflect.Type, out []reflect.Value) (any, bool, error) {
	n := typ.NumOut()
	var err error
	if n > 0 && typ.Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			err = e.Interface().(error)
		}
		n--
	}

	switch n {
	case 0:
		return nil, false, err
	case 1:
		return out[0].Interface(), true, err
	default:
		vals := make([]any, n)
		for i := range n {
			vals[i] = out[i].Interface()
		}
		return vals, true, err
	}
}
