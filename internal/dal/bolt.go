package dal

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	statusesBucket      = "statuses"
	graphicsBucket      = "graphics"
	notificationsBucket = "notifications"
	groupsStateBucket   = "groups_state"
)

// keyLayout is fixed-width so that timestamp keys sort chronologically.
const keyLayout = "2006-01-02T15:04:05.000000000Z"

type Clock interface {
	Now() time.Time
}

type BoltDB struct {
	db    *bbolt.DB
	clock Clock
}

func NewBoltDB(path string, clock Clock) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0600, nil) //nolint:gomnd
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	mustBucket(db, statusesBucket)
	mustBucket(db, graphicsBucket)
	mustBucket(db, notificationsBucket)
	mustBucket(db, groupsStateBucket)

	return &BoltDB{db: db, clock: clock}, nil
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}

func (s *BoltDB) timestampKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}

func mustBucket(db *bbolt.DB, name string) {
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(name))
		return err
	}); err != nil {
		panic(fmt.Errorf("create bucket: %w", err))
	}
}
