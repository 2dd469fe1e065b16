/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownClass        = errors.New("unknown class")
	ErrUnknownNativeHandle = errors.New("unknown native handle")
	ErrUnknownType         = errors.New("unknown type")
	ErrNotFound            = errors.New("not found")
	ErrClassMismatch       = errors.New("class mismatch")
	ErrNotImplemented      = errors.New("not implemented")
	ErrSchema              = errors.New("schema error")
	ErrConvert             = errors.New("convert error")
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

func ErrUnknownClassRef(c ClassRef) error {
	return EnrichError(ErrUnknownClass, "«%v»", c)
}

func ErrDocNotFound(id DocRef) error {
	return EnrichError(ErrNotFound, "document «%v»", id)
}

func ErrCyclicClass(c ClassRef) error {
	return EnrichError(ErrSchema, "class «%v» extends itself", c)
}
