// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "fmt"

// Error is a storage backend failure with a short description of the
// operation that failed.
type Error struct {
	Err         error
	Description string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Description, e.Err.Error())
	}
	return e.Description
}

func (e *Error) Unwrap() error {
	return e.Err
}
