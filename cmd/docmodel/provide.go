/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"github.com/voedger/docmodel/pkg/core"
	"github.com/voedger/docmodel/pkg/coresvc"
	"github.com/voedger/docmodel/pkg/protocol"
)

func provideService(rt *core.Runtime, backend protocol.ICoreProtocol) (*coresvc.Service, func()) {
	svc := coresvc.New(rt, backend)
	return svc, svc.Close
}
