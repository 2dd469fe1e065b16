/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package snapshot

import (
	"github.com/voedger/docmodel/pkg/schema"
)

// Documents partitioned by storage domain.
//
// Domain schema.DomainModel holds class containers and is loaded into the
// runtime, other domains seed the backing store
type Snapshot map[string][]schema.Container
