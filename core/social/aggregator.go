// Package social derives the "friends going" view from follow edges and
// attendance rows. "Friends" here means profiles the viewer follows; the
// edge is directional and no reciprocity is required.
package social

import (
	"fmt"
	"sort"

	"soundcheck/model"
)

// AttendanceRow is one status=going record, in store order.
type AttendanceRow struct {
	EventID string
	UserID  string
}

// FriendsGoing returns, per event, the display names of the viewer's
// followed users attending it. Name order follows the order attendance rows
// were supplied in. Ids with no resolvable display name are dropped.
func FriendsGoing(viewerID string, events []model.Event, attendance []AttendanceRow, follows []model.Follow, names map[string]string) map[string][]string {
	following := make(map[string]bool)
	for _, f := range follows {
		if f.FollowerID == viewerID {
			following[f.FollowingID] = true
		}
	}

	byEvent := make(map[string][]string, len(events))
	for _, e := range events {
		byEvent[e.ID] = nil
	}

	for _, row := range attendance {
		if _, ok := byEvent[row.EventID]; !ok {
			continue
		}
		if !following[row.UserID] {
			continue
		}
		name, ok := names[row.UserID]
		if !ok || name == "" {
			continue
		}
		byEvent[row.EventID] = append(byEvent[row.EventID], name)
	}

	return byEvent
}

// FriendsLabel renders the friend list for an event card.
func FriendsLabel(names []string) string {
	switch len(names) {
	case 0:
		return "No friends going"
	case 1:
		return fmt.Sprintf("%s is going", names[0])
	case 2:
		return fmt.Sprintf("%s and %s are going", names[0], names[1])
	}
	others := len(names) - 1
	word := "others"
	if others == 1 {
		word = "other"
	}
	return fmt.Sprintf("%s and %d %s going", names[0], others, word)
}

// SortByFriendCount orders events by descending friend count. The sort is
// stable, so events with equal counts keep their input order.
func SortByFriendCount(events []model.EventWithFriends) {
	sort.SliceStable(events, func(i, j int) bool {
		return len(events[i].FriendsGoing) > len(events[j].FriendsGoing)
	})
}
