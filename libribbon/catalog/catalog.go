package catalog

import (
	"bytes"
	"runtime"

	"github.com/2x3systems/ribbon/ribbon"
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

const (
	kMajorVers = 2026
	kMinorVers = 1
)

// catalog is a db wrapper for computed censuses
type catalog struct {
	readOnly   bool
	stateDirty bool
	state      catalogState
	db         *badger.DB
}

// OpenCatalog opens (or creates) a catalog of censuses.  An empty DbPathName opens an in-memory catalog.
func OpenCatalog(opts ribbon.CatalogOpts) (ribbon.Catalog, error) {
	cat := &catalog{
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // not needed so disable for performance
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(ribbon.ErrBadConfig, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = !cat.readOnly
		cat.state.MajorVers = kMajorVers
		cat.state.MinorVers = kMinorVers
	}

	if err == nil && (cat.state.MajorVers != kMajorVers || cat.state.MinorVers != kMinorVers) {
		err = errors.Errorf("catalog version %d.%d is incompatible", cat.state.MajorVers, cat.state.MinorVers)
	}

	if err != nil {
		cat.Close()
		return nil, err
	}

	klog.V(2).Infof("opened catalog %q (%d entries)", opts.DbPathName, cat.state.NumEntries)
	return cat, nil
}

func (cat *catalog) loadState() error {
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err == nil {
			err = item.Value(func(val []byte) error {
				return cat.state.Unmarshal(val)
			})
		}
		return err
	})
	return err
}

func (cat *catalog) flushState() error {
	if !cat.stateDirty {
		return nil
	}
	err := cat.db.Update(func(txn *badger.Txn) error {
		stateBuf, err := cat.state.Marshal()
		if err != nil {
			return err
		}
		return txn.Set(gCatalogStateKey, stateBuf)
	})
	if err == nil {
		cat.stateDirty = false
	}
	return err
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) NumEntries() int64 {
	return int64(cat.state.NumEntries)
}

func (cat *catalog) Get(cfg *ribbon.Config) (*ribbon.Census, error) {
	var keyBuf [128]byte
	key := appendConfigKey(keyBuf[:0], cfg)

	var census *ribbon.Census
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			census, err = unmarshalCensus(val)
			return err
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.Wrapf(ribbon.ErrNotFound, "census %v", cfg.Vertices)
	}
	return census, err
}

func (cat *catalog) Put(cfg *ribbon.Config, census *ribbon.Census) error {
	if cat.readOnly {
		return ribbon.ErrCatalogReadOnly
	}

	var keyBuf [128]byte
	key := appendConfigKey(keyBuf[:0], cfg)
	val := marshalCensus(census)

	added := false
	err := cat.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			added = true
		} else if err != nil {
			return err
		}
		return txn.Set(key, val)
	})
	if err != nil {
		return err
	}

	if added {
		cat.state.NumEntries++
		cat.stateDirty = true
		return cat.flushState()
	}
	return nil
}

func (cat *catalog) Select(onHit ribbon.OnCatalogHit) error {
	return cat.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = gCensusPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(gCensusPrefix); it.ValidForPrefix(gCensusPrefix); it.Next() {
			item := it.Item()
			key := item.Key()
			if !bytes.HasPrefix(key, gCensusPrefix) {
				break
			}

			cfg, err := decodeConfigKey(key)
			if err != nil {
				return err
			}

			var census *ribbon.Census
			err = item.Value(func(val []byte) error {
				census, err = unmarshalCensus(val)
				return err
			})
			if err != nil {
				return err
			}

			onHit <- &ribbon.CatalogEntry{
				Config: cfg,
				Census: *census,
			}
		}
		return nil
	})
}

func (cat *catalog) Close() error {
	var err error
	if cat.db != nil {
		if !cat.readOnly {
			err = cat.flushState()
		}
		if closeErr := cat.db.Close(); err == nil {
			err = closeErr
		}
		cat.db = nil
	}
	return err
}
