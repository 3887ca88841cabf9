package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  []string
	}{
		{"json array bytes", []byte(`["Mitski","Beach House"]`), []string{"Mitski", "Beach House"}},
		{"json array string", `["Mitski"]`, []string{"Mitski"}},
		{"double encoded array", []byte(`"[\"Mitski\",\"Alvvays\"]"`), []string{"Mitski", "Alvvays"}},
		{"null literal", []byte(`null`), nil},
		{"nil value", nil, nil},
		{"empty bytes", []byte{}, nil},
		{"garbage", []byte(`{{{not json`), nil},
		{"wrong driver type", 42, nil},
		{"mixed element types", []byte(`["Mitski",7,null,"Alvvays"]`), []string{"Mitski", "Alvvays"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringList
			err := s.Scan(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, []string(s))
		})
	}
}

func TestStringListUnmarshalJSON(t *testing.T) {
	var payload struct {
		Favorites StringList `json:"favorites"`
	}

	// Arrays decode directly.
	require.NoError(t, json.Unmarshal([]byte(`{"favorites":["a","b"]}`), &payload))
	assert.Equal(t, StringList{"a", "b"}, payload.Favorites)

	// A JSON-encoded string containing an array decodes to the inner list.
	require.NoError(t, json.Unmarshal([]byte(`{"favorites":"[\"a\"]"}`), &payload))
	assert.Equal(t, StringList{"a"}, payload.Favorites)

	// Anything else degrades to empty, never errors.
	require.NoError(t, json.Unmarshal([]byte(`{"favorites":{"not":"a list"}}`), &payload))
	assert.Empty(t, payload.Favorites)
}

func TestStringListValueRoundTrip(t *testing.T) {
	s := StringList{"Snail Mail", "Japanese Breakfast"}
	v, err := s.Value()
	require.NoError(t, err)

	var back StringList
	require.NoError(t, back.Scan(v))
	assert.Equal(t, s, back)

	var nilList StringList
	v, err = nilList.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestStringListNormalized(t *testing.T) {
	s := StringList{"  Mitski ", "", "   ", "Alvvays"}
	assert.Equal(t, []string{"Mitski", "Alvvays"}, s.Normalized())

	var empty StringList
	assert.Nil(t, empty.Normalized())
}
