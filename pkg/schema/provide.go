/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

// Creates and returns new empty class registry
func New() IRegistry {
	return newRegistry()
}
