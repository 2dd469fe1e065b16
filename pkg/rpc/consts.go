/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package rpc

import "time"

const (
	Path_RPC     = "/rpc"
	Path_Metrics = "/metrics"
)

const (
	defaultReadHeaderTimeout = 5 * time.Second
	defaultClientTimeout     = 30 * time.Second
	shutdownTimeout          = 5 * time.Second
)

const contentTypeJSON = "application/json"

// Error codes of the wire error object
const (
	Code_UnknownClass        = "UnknownClass"
	Code_UnknownNativeHandle = "UnknownNativeHandle"
	Code_UnknownType         = "UnknownType"
	Code_NotFound            = "NotFound"
	Code_ClassMismatch       = "ClassMismatch"
	Code_NotImplemented      = "NotImplemented"
	Code_Schema              = "SchemaError"
	Code_Convert             = "ConvertError"
	Code_BadRequest          = "BadRequest"
	Code_Internal            = "Internal"
)
