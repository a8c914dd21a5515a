package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// Group is one outage group for one day as extracted from the published
// graphic: Date is DD.MM.YYYY, Schedule a comma-separated list of
// HH:MM-HH:MM ranges (possibly empty).
type Group struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Status   string `json:"status,omitempty"`
	Schedule string `json:"schedule"`
}

// GroupsState is a snapshot of all groups captured at one scrape. History is
// append-only; diffing only ever reads the latest snapshot.
type GroupsState struct {
	Groups []Group   `json:"groups"`
	At     time.Time `json:"at"`
}

// PutGroupsState appends a snapshot stamped with the current time.
func (s *BoltDB) PutGroupsState(groups []Group) error {
	rec := GroupsState{Groups: groups, At: s.clock.Now()}

	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal groups state: %w", err)
		}
		return tx.Bucket([]byte(groupsStateBucket)).Put(s.timestampKey(rec.At), data)
	})
}

// GetLatestGroupsState returns the most recent snapshot.
func (s *BoltDB) GetLatestGroupsState() (GroupsState, bool, error) {
	var res GroupsState
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		_, data := tx.Bucket([]byte(groupsStateBucket)).Cursor().Last()
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}
