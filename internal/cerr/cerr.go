// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package cerr provides a string type usable for constant sentinel errors.
package cerr

// Error is a sentinel error that can be declared as a const and compared with
// errors.Is.
type Error string

func (e Error) Error() string {
	return string(e)
}
