/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package rpc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/voedger/docmodel/pkg/schema"
)

var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

var ErrServerError = errors.New("server error")

var codes = []struct {
	code string
	err  error
}{
	{Code_UnknownClass, schema.ErrUnknownClass},
	{Code_UnknownNativeHandle, schema.ErrUnknownNativeHandle},
	{Code_UnknownType, schema.ErrUnknownType},
	{Code_NotFound, schema.ErrNotFound},
	{Code_ClassMismatch, schema.ErrClassMismatch},
	{Code_NotImplemented, schema.ErrNotImplemented},
	{Code_Schema, schema.ErrSchema},
	{Code_Convert, schema.ErrConvert},
}

// Returns wire error for error
func errorToWire(err error) *Error {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return &Error{Code: c.code, Message: err.Error()}
		}
	}
	return &Error{Code: Code_Internal, Message: err.Error()}
}

// Returns error for wire error. Known codes are wrapped around the schema
// sentinel, so errors.Is works on the client side
func (e *Error) Err() error {
	for _, c := range codes {
		if c.code == e.Code {
			return fmt.Errorf("%w: %s", c.err, strings.TrimPrefix(e.Message, c.err.Error()+": "))
		}
	}
	return fmt.Errorf("%w: %s: %s", ErrServerError, e.Code, e.Message)
}

func errBadRequest(err error) *Error {
	return &Error{Code: Code_BadRequest, Message: err.Error()}
}
