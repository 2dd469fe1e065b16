/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package config

// Configuration of docmodel service and CLI
type Config struct {
	// Offline cache is the backing of non-model domains. Otherwise RPC is
	Offline bool `koanf:"offline"`

	// Offline store name
	Store string `koanf:"store"`

	// Directory of offline store files
	CacheDir string `koanf:"cache_dir"`

	// Size of raw document cache of offline store
	CacheMaxBytes int `koanf:"cache_max_bytes"`

	// Number of decoded documents cached by offline store
	DocCacheSize int `koanf:"doc_cache_size"`

	// Cache implementation of decoded documents: hashicorp or theine
	DocCache string `koanf:"doc_cache"`

	// URL of RPC server used when not offline
	RPCURL string `koanf:"rpc_url"`

	// Listen address of `serve`
	Listen string `koanf:"listen"`

	// Snapshot file with model and seed documents
	Snapshot string `koanf:"snapshot"`

	Verbose bool `koanf:"verbose"`
}
