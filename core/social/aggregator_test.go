package social

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"soundcheck/model"
)

func TestFriendsGoing(t *testing.T) {
	events := []model.Event{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}}
	follows := []model.Follow{
		{FollowerID: "viewer", FollowingID: "u1"},
		{FollowerID: "viewer", FollowingID: "u2"},
		{FollowerID: "viewer", FollowingID: "ghost"}, // no profile row
		{FollowerID: "someone-else", FollowingID: "u3"},
	}
	attendance := []AttendanceRow{
		{EventID: "e1", UserID: "u2"},
		{EventID: "e1", UserID: "u1"},
		{EventID: "e1", UserID: "u3"},    // not followed by viewer
		{EventID: "e1", UserID: "ghost"}, // followed but unresolvable
		{EventID: "e2", UserID: "u1"},
		{EventID: "gone", UserID: "u1"}, // event not in the input set
	}
	names := map[string]string{"u1": "Ana", "u2": "Ben", "u3": "Cleo"}

	got := FriendsGoing("viewer", events, attendance, follows, names)

	// Attendance supply order wins, not follow order.
	assert.Equal(t, []string{"Ben", "Ana"}, got["e1"])
	assert.Equal(t, []string{"Ana"}, got["e2"])
	assert.Empty(t, got["e3"])
	assert.NotContains(t, got, "gone")
}

func TestFriendsGoingNoFollows(t *testing.T) {
	got := FriendsGoing("viewer", []model.Event{{ID: "e1"}},
		[]AttendanceRow{{EventID: "e1", UserID: "u1"}}, nil,
		map[string]string{"u1": "Ana"})
	assert.Empty(t, got["e1"])
}

func TestFriendsLabel(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, "No friends going"},
		{[]string{}, "No friends going"},
		{[]string{"A"}, "A is going"},
		{[]string{"A", "B"}, "A and B are going"},
		{[]string{"A", "B", "C"}, "A and 2 others going"},
		{[]string{"A", "B", "C", "D", "E"}, "A and 4 others going"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FriendsLabel(tt.names))
	}
}

func TestSortByFriendCountStable(t *testing.T) {
	events := []model.EventWithFriends{
		{Event: model.Event{ID: "a"}, FriendsGoing: []string{"x"}},
		{Event: model.Event{ID: "b"}, FriendsGoing: []string{"x", "y", "z"}},
		{Event: model.Event{ID: "c"}, FriendsGoing: []string{"x"}},
		{Event: model.Event{ID: "d"}, FriendsGoing: nil},
		{Event: model.Event{ID: "e"}, FriendsGoing: []string{"x"}},
	}

	SortByFriendCount(events)

	order := make([]string, len(events))
	for i, e := range events {
		order[i] = e.Event.ID
	}
	// b first, then the three one-friend events in input order, then d.
	assert.Equal(t, []string{"b", "a", "c", "e", "d"}, order)
}
