/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import "errors"

var errBadAssignment = errors.New("bad assignment")
