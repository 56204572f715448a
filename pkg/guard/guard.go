package guard

import "reflect"

// RequireNonNull fails when value is nil, including a nil pointer, map,
// slice, func, channel or interface stored in the interface value.
func RequireNonNull(value any, paramName string) error {
	if IsNil(value) {
		return newNullError(paramName)
	}
	return nil
}

// RequireNonEmptyString fails when value has zero length.
// A Go string cannot be nil, so the empty string covers both cases.
func RequireNonEmptyString(value string, paramName string) error {
	if value == "" {
		return newNullOrEmptyError(paramName)
	}
	return nil
}

// RequireNonEmptyStringPtr fails when value is nil or points to an empty string.
func RequireNonEmptyStringPtr(value *string, paramName string) error {
	if value == nil || *value == "" {
		return newNullOrEmptyError(paramName)
	}
	return nil
}

// IsNil reports whether v is nil or wraps a nil reference.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
