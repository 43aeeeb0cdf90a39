package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupPatchJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCover string
	}{
		{"absent keeps cover", `{"id":"g1"}`, "old"},
		{"null clears cover", `{"id":"g1","coverUri":null}`, ""},
		{"value replaces cover", `{"id":"g1","coverUri":"y"}`, "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p GroupPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			g := Group{ID: "g1", Title: "T", CoverURI: "old", MasterIDs: []string{"m1"}}
			p.Apply(&g)
			assert.Equal(t, tt.wantCover, g.CoverURI)
			assert.Equal(t, "T", g.Title)
			assert.Equal(t, []string{"m1"}, g.MasterIDs)
		})
	}
}

func TestOptionalJSON(t *testing.T) {
	var p PostPatch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"X","liked":null,"archived":false}`), &p))

	title, ok := p.Title.Get()
	assert.True(t, ok)
	assert.Equal(t, "X", title)
	assert.False(t, p.Liked.IsSet(), "null is treated as absent")
	assert.True(t, p.Archived.IsSet())
	assert.False(t, p.Body.IsSet())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"X","archived":false}`, string(out))
}

func TestNullableMarshal(t *testing.T) {
	out, err := json.Marshal(GroupPatch{ID: "g", CoverURI: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"g","coverUri":null}`, string(out))

	out, err = json.Marshal(GroupPatch{ID: "g"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"g"}`, string(out))

	out, err = json.Marshal(GroupPatch{ID: "g", CoverURI: Set("c")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"g","coverUri":"c"}`, string(out))
}

func TestPriority(t *testing.T) {
	assert.Less(t, PriorityRed.Rank(), PriorityOrange.Rank())
	assert.Less(t, PriorityOrange.Rank(), PriorityYellow.Rank())
	assert.False(t, Priority("blue").Valid())
	assert.True(t, ValidDateKey("2025-02-28"))
	assert.False(t, ValidDateKey("2025-02-30"))
	assert.False(t, CurrencyEuro == "" || !CurrencyEuro.Valid())
	assert.False(t, Currency("£").Valid())
}
