/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package offline

import (
	"errors"

	"github.com/voedger/docmodel/pkg/schema"
)

var ErrStoreNameMissed = errors.New("offline store name missed")

var ErrClosed = errors.New("offline store closed")

func errBadDocument(id []byte, err error) error {
	return schema.EnrichError(schema.ErrConvert, "stored document «%s»: %v", id, err)
}
