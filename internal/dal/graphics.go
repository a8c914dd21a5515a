package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// Image records one published schedule graphic. The URL is the relative
// path as published by the utility; it is what new scrapes are deduplicated
// against.
type Image struct {
	URL string    `json:"url"`
	At  time.Time `json:"at"`
}

// PutImage appends a graphic record stamped with the current time.
func (s *BoltDB) PutImage(url string) error {
	rec := Image{URL: url, At: s.clock.Now()}

	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal image: %w", err)
		}
		return tx.Bucket([]byte(graphicsBucket)).Put(s.timestampKey(rec.At), data)
	})
}

// GetLatestImage returns the most recently recorded graphic.
func (s *BoltDB) GetLatestImage() (Image, bool, error) {
	var res Image
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		_, data := tx.Bucket([]byte(graphicsBucket)).Cursor().Last()
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}
