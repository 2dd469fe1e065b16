/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package offline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/untillpro/goutils/logger"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/docmodel/pkg/objcache"
	"github.com/voedger/docmodel/pkg/schema"
)

// Opens or creates offline store <Dir>/<Name>.db
func Open(params Params, domains IDomains) (*Store, error) {
	if params.Name == "" {
		return nil, ErrStoreNameMissed
	}
	if params.MaxBytes == 0 {
		params.MaxBytes = DefaultMaxBytes
	}
	if params.DocCacheSize == 0 {
		params.DocCacheSize = DefaultDocCacheSize
	}

	if err := os.MkdirAll(params.Dir, dbDirMode); err != nil {
		return nil, err
	}
	fileName := filepath.Join(params.Dir, params.Name+dbFileExt)
	db, err := bolt.Open(fileName, dbFileMode, bolt.DefaultOptions)
	if err != nil {
		return nil, fmt.Errorf("open offline store «%s»: %w", fileName, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(idsBucketName))
		return err
	})
	if err != nil {
		// notest
		_ = db.Close()
		return nil, err
	}

	logger.Info(fmt.Sprintf("offline store «%s» opened: %s", params.Name, fileName))

	return &Store{
		name:     params.Name,
		db:       db,
		domains:  domains,
		raw:      fastcache.New(params.MaxBytes),
		docs:     objcache.NewProvider[schema.DocRef, cachedDoc](params.DocCacheProvider, params.DocCacheSize, nil),
		metrics:  newStoreMetrics(params.Name, params.Registerer),
		versions: make(map[schema.DocRef]uint64),
	}, nil
}
