/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package coresvc

import "errors"

var ErrServiceClosed = errors.New("core service closed")
