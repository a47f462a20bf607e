// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

// Typed wrappers for the common function shapes. They behave like
// [Decorator.Wrap] without reflection on the call path. A nil fn is reported
// as a diagnostic and returned unchanged.

// Wrap0 wraps a function with no arguments and no results.
func Wrap0(d *Decorator, fn func()) func() {
	if fn == nil {
		return misuse(d, fn)
	}
	name := d.nameOf(fn)
	return func() {
		d.invoke(name, []any{}, func() (any, bool, error) {
			fn()
			return nil, false, nil
		})
	}
}

// Wrap1 wraps a unary function.
func Wrap1[A, R any](d *Decorator, fn func(A) R) func(A) R {
	if fn == nil {
		return misuse(d, fn)
	}
	name := d.nameOf(fn)
	return func(a A) (r R) {
		d.invoke(name, []any{a}, func() (any, bool, error) {
			r = fn(a)
			return r, true, nil
		})
		return r
	}
}

// Wrap2 wraps a binary function.
func Wrap2[A, B, R any](d *Decorator, fn func(A, B) R) func(A, B) R {
	if fn == nil {
		return misuse(d, fn)
	}
	name := d.nameOf(fn)
	return func(a A, b B) (r R) {
		d.invoke(name, []any{a, b}, func() (any, bool, error) {
			r = fn(a, b)
			return r, true, nil
		})
		return r
	}
}

// Wrap1E wraps a unary function that can fail.
func Wrap1E[A, R any](d *Decorator, fn func(A) (R, error)) func(A) (R, error) {
	if fn == nil {
		return misuse(d, fn)
	}
	name := d.nameOf(fn)
	return func(a A) (r R, err error) {
		d.invoke(name, []any{a}, func() (any, bool, error) {
			r, err = fn(a)
			return r, true, err
		})
		return r, err
	}
}

// Wrap2E wraps a binary function that can fail.
func Wrap2E[A, B, R any](d *Decorator, fn func(A, B) (R, error)) func(A, B) (R, error) {
	if fn == nil {
		return misuse(d, fn)
	}
	name := d.nameOf(fn)
	return func(a A, b B) (r R, err error) {
		d.invoke(name, []any{a, b}, func() (any, bool, error) {
			r, err = fn(a, b)
			return r, true, err
		})
		return r, err
	}
}

// WrapVariadic wraps a variadic function. The logged args are the
// individual arguments, not the slice.
func WrapVariadic[A, R any](d *Decorator, fn func(...A) R) func(...A) R {
	if fn == nil {
		return misuse(d, fn)
	}
	name := d.nameOf(fn)
	return func(as ...A) (r R) {
		args := make([]any, len(as))
		for i, a := range as {
			args[i] = a
		}
		d.invoke(name, args, func() (any, bool, error) {
			r = fn(as...)
			return r, true, nil
		})
		return r
	}
}

func misuse[F any](d *Decorator, fn F) F {
	d.logger.diag.Printf("decorate: nil %T left unwrapped", fn)
	return fn
}
