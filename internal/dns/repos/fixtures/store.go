// Package fixtures provides a small embedded store for named wire captures:
// raw packet bytes saved under a name for replay in tests and the wireprobe
// CLI's -load flag. It is not part of the codec itself and has nothing to do
// with the (out-of-scope) resolver cache.
package fixtures

import (
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/packetforge/dns-codec/internal/dns/wire"
)

var bucketCaptures = []byte("captures")

// bucketCreator is the minimal contract needed for creating buckets; it
// matches *bbolt.Tx so tests can substitute a fake to exercise error paths.
type bucketCreator interface {
	CreateBucketIfNotExists(name []byte) (*bbolt.Bucket, error)
}

// Store persists named packet captures in a Bolt database.
type Store struct {
	db *bbolt.DB
}

// New opens (or creates) a Bolt database at path and ensures its bucket exists.
func New(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error { return ensureBucketsFn(tx) }); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Save stores data under name, tagged with the protocol it was captured as.
// A later Save with the same name overwrites the prior capture.
func (s *Store) Save(name string, proto wire.Protocol, data []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		return b.Put([]byte(name), encodeCapture(proto, data))
	})
}

// Load retrieves a named capture, returning its protocol and raw bytes.
func (s *Store) Load(name string) (wire.Protocol, []byte, error) {
	var proto wire.Protocol
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		v := b.Get([]byte(name))
		if v == nil {
			return fmt.Errorf("fixtures: no capture named %q", name)
		}
		var derr error
		proto, data, derr = decodeCapture(v)
		return derr
	})
	if err != nil {
		return 0, nil, err
	}
	return proto, data, nil
}

// List returns every capture name currently stored, in key order.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		return b.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Delete removes a named capture. Deleting a name that does not exist is not
// an error.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		return b.Delete([]byte(name))
	})
}

func encodeCapture(proto wire.Protocol, data []byte) []byte {
	buf := make([]byte, 1+len(data))
	buf[0] = byte(proto)
	copy(buf[1:], data)
	return buf
}

func decodeCapture(v []byte) (wire.Protocol, []byte, error) {
	if len(v) < 1 {
		return 0, nil, fmt.Errorf("fixtures: corrupt capture value of %d bytes", len(v))
	}
	out := make([]byte, len(v)-1)
	copy(out, v[1:])
	return wire.Protocol(v[0]), out, nil
}

// ensureBucketsFn is a test seam; see ensureBuckets.
var ensureBucketsFn = ensureBuckets

func ensureBuckets(tx bucketCreator) error {
	_, err := tx.CreateBucketIfNotExists(bucketCaptures)
	return err
}
