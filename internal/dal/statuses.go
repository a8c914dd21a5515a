package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Status is one observation of the smart plug's cloud state. History is
// append-only; the latest record is the one with the greatest timestamp.
type Status struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// PutStatus appends a status observation stamped with the current time.
func (s *BoltDB) PutStatus(status string) error {
	rec := Status{Status: status, At: s.clock.Now()}

	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal status: %w", err)
		}
		return tx.Bucket([]byte(statusesBucket)).Put(s.timestampKey(rec.At), data)
	})
}

// GetLatestStatus returns the most recent status observation.
func (s *BoltDB) GetLatestStatus() (Status, bool, error) {
	var res Status
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		_, data := tx.Bucket([]byte(statusesBucket)).Cursor().Last()
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

// GetStatuses returns up to limit most recent status observations,
// newest first.
func (s *BoltDB) GetStatuses(limit int) ([]Status, error) {
	var res []Status

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(statusesBucket)).Cursor()
		for k, v := c.Last(); k != nil && len(res) < limit; k, v = c.Prev() {
			var status Status
			if err := json.Unmarshal(v, &status); err != nil {
				return fmt.Errorf("unmarshal status: %w", err)
			}
			res = append(res, status)
		}
		return nil
	})

	return res, err
}

// CleanupStatuses removes status records older than the passed TTL.
func (s *BoltDB) CleanupStatuses(olderThan time.Duration) error {
	if olderThan <= 0 {
		return nil
	}

	cutoff := s.timestampKey(s.clock.Now().Add(-olderThan))
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(statusesBucket))
		c := b.Cursor()
		for k, _ := c.First(); k != nil && string(k) < string(cutoff); k, _ = c.Next() {
			if err := b.Delete(k); err != nil {
				return fmt.Errorf("delete status %s: %w", k, err)
			}
		}
		return nil
	})
}
