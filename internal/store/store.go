// Package store persists the product collection and verification ledger in a
// local bbolt key-value database. Writes are full overwrites of the stored
// JSON arrays, mirroring the state held in memory.
package store

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/amdora/dlccontrol/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	bucketName       = []byte("dlc")
	keyProducts      = []byte("products")
	keyVerifications = []byte("verificationLogs")
)

type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the database file at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init store bucket: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// LoadProducts returns the persisted product collection. An absent key means
// an empty collection; a malformed value is logged and treated the same, the
// caller falls back rather than crashing.
func (s *Store) LoadProducts() []domain.Product {
	var products []domain.Product
	if err := s.loadJSON(keyProducts, &products); err != nil {
		zap.L().Error("discarding unreadable products key", zap.Error(err))
		return nil
	}
	return products
}

// SaveProducts overwrites the stored collection wholesale.
func (s *Store) SaveProducts(products []domain.Product) error {
	return s.saveJSON(keyProducts, products)
}

// LoadVerifications returns the persisted ledger, newest-first. Absent or
// unreadable keys yield an empty ledger.
func (s *Store) LoadVerifications() []domain.VerificationLog {
	var logs []domain.VerificationLog
	if err := s.loadJSON(keyVerifications, &logs); err != nil {
		zap.L().Error("discarding unreadable verification log key", zap.Error(err))
		return nil
	}
	return logs
}

// SaveVerifications overwrites the stored ledger. An empty ledger removes the
// key entirely.
func (s *Store) SaveVerifications(logs []domain.VerificationLog) error {
	if len(logs) == 0 {
		return s.db.Update(func(tx *bbolt.Tx) error {
			return tx.Bucket(bucketName).Delete(keyVerifications)
		})
	}
	return s.saveJSON(keyVerifications, logs)
}

// Reset removes both state keys, returning the store to its pristine state.
func (s *Store) Reset() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if err := b.Delete(keyProducts); err != nil {
			return err
		}
		return b.Delete(keyVerifications)
	})
}

func (s *Store) loadJSON(key []byte, out interface{}) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketName).Get(key)
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		return nil
	})
}

func (s *Store) saveJSON(key []byte, val interface{}) error {
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(key, data)
	})
}
