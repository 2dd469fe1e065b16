/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package config

import "errors"

var (
	ErrNoBacking        = errors.New("either offline mode or rpc url must be configured")
	ErrAmbiguousBacking = errors.New("offline mode and rpc url are mutually exclusive")
	ErrInvalidConfig    = errors.New("invalid config")
	ErrUnknownDocCache  = errors.New("unknown document cache")
)
