/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"github.com/voedger/docmodel/pkg/config"
)

// State shared by commands. cfg is loaded before any command runs
type cliParams struct {
	cfgFile string
	cfg     *config.Config
}
