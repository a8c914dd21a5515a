package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// Notification stores the formatted "DD.MM.YYYY HH:mm" start of the next
// predicted outage for the tracked group. An empty target means the last
// analysis could not resolve an upcoming outage.
type Notification struct {
	Target string    `json:"target"`
	At     time.Time `json:"at"`
}

// PutNextNotification appends a new notification target. The write is
// suppressed when the target equals the currently stored latest value, so
// repeated analyses of the same schedule do not grow the history.
func (s *BoltDB) PutNextNotification(target string) error {
	latest, found, err := s.GetLatestNotification()
	if err != nil {
		return fmt.Errorf("get latest notification: %w", err)
	}
	if found && latest.Target == target {
		return nil
	}

	rec := Notification{Target: target, At: s.clock.Now()}
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal notification: %w", err)
		}
		return tx.Bucket([]byte(notificationsBucket)).Put(s.timestampKey(rec.At), data)
	})
}

// GetLatestNotification returns the most recently stored target.
func (s *BoltDB) GetLatestNotification() (Notification, bool, error) {
	var res Notification
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		_, data := tx.Bucket([]byte(notificationsBucket)).Cursor().Last()
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}
