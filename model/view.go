package model

// Derived view models returned by the aggregation endpoints. None of these
// are persisted.

// Song is one decoded "My Songs" entry.
type Song struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// ScoredArtist is an artist profile with its match score for a listener.
type ScoredArtist struct {
	Profile Profile `json:"profile"`
	Score   float64 `json:"score"`
	Percent string  `json:"percent"` // display form, e.g. "73%" or "<1%"
}

// EventWithFriends is an event decorated with display date fields and the
// viewer's friends that marked themselves going.
type EventWithFriends struct {
	Event        Event    `json:"event"`
	Day          int      `json:"day"`
	Month        string   `json:"month"` // 3-letter code, JAN..DEC
	Time         string   `json:"time"`  // "h:mm AM/PM"
	FriendsGoing []string `json:"friendsGoing"`
	FriendsLabel string   `json:"friendsLabel"`
}

// CalendarCell is one of the 42 cells of a month grid. Day 0 marks a cell
// outside the viewed month.
type CalendarCell struct {
	Day      int  `json:"day"`
	HasEvent bool `json:"hasEvent"`
}
