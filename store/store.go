// Package store persists star-formation histories in an embedded key-value
// database. Records are stored as compressed series under their collection
// key, with a read-through cache in front of the database for repeated
// lookups.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sfhandle "github.com/WilfriedMercier/SFHandle"
	"github.com/dgraph-io/badger/v4"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// ErrNotFound is returned by Get when no record is stored under the id.
var ErrNotFound = errors.New("no record with this id")

const keyPrefix = "sfh/"

// Config holds store configuration.
type Config struct {
	Path             string        // directory for the database files
	CompressionLevel int           // zstd level, 1 (fastest) to 4 (best)
	CacheTTL         time.Duration // lifetime of cached records, 0 disables the cache
	Logger           *zap.SugaredLogger
}

// DefaultConfig returns the default store configuration.
func DefaultConfig() *Config {
	return &Config{
		Path:             "./data",
		CompressionLevel: 2,
		CacheTTL:         5 * time.Minute,
	}
}

// Store is a keyed set of persisted star-formation histories.
type Store struct {
	cfg   *Config
	db    *badger.DB
	codec *codec
	cache *cache.Cache
	log   *zap.SugaredLogger
}

// Open opens (or creates) a store at the configured path. A nil config
// selects the defaults.
func Open(cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	opts := badger.DefaultOptions(filepath.Join(cfg.Path, "badger"))
	opts.Logger = nil // database logging stays off; the store logs for itself

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	codec, err := newCodec(cfg.CompressionLevel)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{
		cfg:   cfg,
		db:    db,
		codec: codec,
		log:   log,
	}
	if cfg.CacheTTL > 0 {
		s.cache = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}

	log.Infow("store opened", "path", cfg.Path)
	return s, nil
}

// recordPayload is the stored envelope of one record: the series length plus
// the three compressed series. The resampled state is deliberately not
// persisted; it is a derived cache the reader can rebuild.
type recordPayload struct {
	Count     int
	Time      []byte
	Rate      []byte
	RateError []byte
}

// Put stores the record under the id, replacing any previous entry.
func (s *Store) Put(id string, rec *sfhandle.SFH) error {
	lbTime := rec.LookbackTime()

	compressedTime, err := s.codec.compressSeries(lbTime)
	if err != nil {
		return fmt.Errorf("compressing time series: %w", err)
	}
	compressedRate, err := s.codec.compressSeries(rec.Rate())
	if err != nil {
		return fmt.Errorf("compressing rate series: %w", err)
	}
	compressedErr, err := s.codec.compressSeries(rec.RateError())
	if err != nil {
		return fmt.Errorf("compressing rate error series: %w", err)
	}

	payload, err := json.Marshal(recordPayload{
		Count:     len(lbTime),
		Time:      compressedTime,
		Rate:      compressedRate,
		RateError: compressedErr,
	})
	if err != nil {
		return fmt.Errorf("marshalling payload: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+id), payload)
	})
	if err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.SetDefault(id, rec)
	}
	s.log.Debugw("record stored", "id", id, "edges", len(lbTime))
	return nil
}

// PutCollection stores every record of the collection under its key.
func (s *Store) PutCollection(c sfhandle.Collection) error {
	for id := range c {
		if err := s.Put(id, c[id]); err != nil {
			return fmt.Errorf("record %q: %w", id, err)
		}
	}
	return nil
}

// Get returns the record stored under the id, or ErrNotFound.
func (s *Store) Get(id string) (*sfhandle.SFH, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(id); ok {
			return cached.(*sfhandle.SFH), nil
		}
	}

	var payloadBytes []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			payloadBytes = append([]byte{}, val...)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var payload recordPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		return nil, fmt.Errorf("unmarshalling payload: %w", err)
	}

	lbTime, err := s.codec.decompressSeries(payload.Time, payload.Count)
	if err != nil {
		return nil, fmt.Errorf("decompressing time series: %w", err)
	}
	rate, err := s.codec.decompressSeries(payload.Rate, payload.Count)
	if err != nil {
		return nil, fmt.Errorf("decompressing rate series: %w", err)
	}
	rateErr, err := s.codec.decompressSeries(payload.RateError, payload.Count)
	if err != nil {
		return nil, fmt.Errorf("decompressing rate error series: %w", err)
	}

	rec, err := sfhandle.New(lbTime, rate, rateErr)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetDefault(id, rec)
	}
	return rec, nil
}

// Delete removes the record stored under the id. Deleting an absent id is
// not an error.
func (s *Store) Delete(id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + id))
	})
	if err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Delete(id)
	}
	s.log.Debugw("record deleted", "id", id)
	return nil
}

// Keys returns the ids of all stored records.
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			keys = append(keys, strings.TrimPrefix(key, keyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Close releases the database and codec resources.
func (s *Store) Close() error {
	s.codec.close()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
