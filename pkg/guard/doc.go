// Package guard provides precondition checks shared by producers and
// consumers of engine notifications.
//
// Every check takes the value and the name of the parameter it came from and
// returns an *ArgumentError identifying that parameter when the check fails.
// Checks are meant to run first in an operation, before any other side
// effect:
//
//	func (c *Cache) Add(id uint32, v any) error {
//		if err := guard.RequireNonNull(v, "v"); err != nil {
//			return err
//		}
//		// ...
//	}
//
// # Error Handling
//
// Both null and null-or-empty failures match ErrArgumentNull with errors.Is.
// Use errors.As to read the offending parameter name:
//
//	var argErr *guard.ArgumentError
//	if errors.As(err, &argErr) {
//		fmt.Println(argErr.ParamName)
//	}
package guard
