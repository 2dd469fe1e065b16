/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package config

// Prefix of environment variables, e.g. DOCMODEL_RPC_URL
const EnvPrefix = "DOCMODEL_"

const (
	DefaultStore         = "docmodel"
	DefaultCacheDir      = ".docmodel"
	DefaultCacheMaxBytes = 32 * 1024 * 1024
	DefaultDocCacheSize  = 1024
	DefaultDocCache      = DocCache_Hashicorp
	DefaultListen        = ":8080"
)

const (
	DocCache_Hashicorp = "hashicorp"
	DocCache_Theine    = "theine"
)
