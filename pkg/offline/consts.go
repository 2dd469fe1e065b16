/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package offline

import "os"

// Domain of documents which classes declare no domain
const DefaultDomain = "default"

// Bucket which maps document identifier to its domain
const idsBucketName = "$ids"

const dbFileExt = ".db"

const dbFileMode os.FileMode = 0o600

const dbDirMode os.FileMode = 0o755

const (
	DefaultMaxBytes     = 32 * 1024 * 1024
	DefaultDocCacheSize = 1024
)

const (
	metricsNamespace = "docmodel"
	metricsSubsystem = "offline"
)

const (
	cacheRaw     = "raw"
	cacheDecoded = "decoded"
)
