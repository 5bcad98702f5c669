package testutil

import (
	"reflect"
	"testing"

	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
)

func AssertEqual(t *testing.T, expected any, actual any) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		sigolo.Errorb(1, "Expect to be equal.\nExpected: %+v\n----------\nActual  : %+v\n", expected, actual)
		t.Fail()
	}
}

func AssertNil(t *testing.T, value any) {
	t.Helper()
	if value != nil && !isNilValue(value) {
		sigolo.Errorb(1, "Expect to be 'nil' but was: %#v", value)
		t.Fail()
	}
}

func AssertNotNil(t *testing.T, value any) {
	t.Helper()
	if value == nil || isNilValue(value) {
		sigolo.Errorb(1, "Expect NOT to be 'nil' but was: %#v", value)
		t.Fail()
	}
}

func AssertTrue(t *testing.T, b bool) {
	t.Helper()
	if !b {
		sigolo.Errorb(1, "Expected true but got false")
		t.Fail()
	}
}

func AssertFalse(t *testing.T, b bool) {
	t.Helper()
	if b {
		sigolo.Errorb(1, "Expected false but got true")
		t.Fail()
	}
}

// AssertErrorIs fails unless err wraps target
func AssertErrorIs(t *testing.T, target error, err error) {
	t.Helper()
	if !errors.Is(err, target) {
		sigolo.Errorb(1, "Expected error wrapping '%v' but got: %v", target, err)
		t.Fail()
	}
}

// isNilValue also catches typed nil pointers stored in an interface
func isNilValue(value any) bool {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}
