package testing

import (
	"reflect"
	"testing"
)

// AssertSuccess that error did not occur.
func AssertSuccess(t testing.TB, err error) {
	t.Helper()

	if err != nil || !isNil(err) {
		t.Fatalf("expected success, got '%v'", err)
	}
}

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertPanics asserts that f panics.
func AssertPanics(t testing.TB, f func()) {
	t.Helper()

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic")
		}
	}()

	f()
}

func isNil(a interface{}) bool {
	if a == nil {
		return true
	}

	switch reflect.TypeOf(a).Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return reflect.ValueOf(a).IsNil()
	}

	return false
}
