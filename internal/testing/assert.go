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

// AssertTrue asserts that v is true.
func AssertTrue(t testing.TB, v bool) {
	t.Helper()

	if !v {
		t.Fatalf("expected true")
	}
}

// AssertFalse asserts that v is false.
func AssertFalse(t testing.TB, v bool) {
	t.Helper()

	if v {
		t.Fatalf("expected false")
	}
}

// AssertPanics asserts that f panics with the message msg.
func AssertPanics(t testing.TB, msg string, f func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			t.Fatalf("expected panic '%s'", msg)
		}

		if r != msg {
			t.Fatalf("expected panic '%s', got '%v'", msg, r)
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
