package articles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	all := All()
	require.Len(t, all, 5)

	want := []ID{Renovation, Hairdresser, Shoe, Manicure, Photographer}
	for i, a := range all {
		assert.Equal(t, want[i], a.ID)
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Hero)
		assert.Len(t, a.Body, 7)
	}

	t.Run("Get returns a copy", func(t *testing.T) {
		a, ok := Get(Hairdresser)
		require.True(t, ok)
		assert.Equal(t, "How to find a good hairdresser", a.Title)
		a.Body[0] = "changed"

		again, _ := Get(Hairdresser)
		assert.NotEqual(t, "changed", again.Body[0])
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := Get("plumber")
		assert.False(t, ok)
		assert.False(t, Valid("plumber"))
		assert.True(t, Valid(Shoe))
	})
}

func TestDecodeRejectsBadCatalog(t *testing.T) {
	_, err := decode([]byte("- id: a\n  title: A\n  body: [x]\n- id: a\n  title: B\n  body: [y]\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = decode([]byte("- id: a\n  title: A\n"))
	assert.ErrorContains(t, err, "incomplete")

	_, err = decode([]byte("{not a list"))
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		category string
		want     ID
		found    bool
	}{
		{"renovation in title", "Flat Renovation tips", "", Renovation, true},
		{"renovation in category", "", "Renovation", Renovation, true},
		{"hair in title", "New HAIRcut", "", Hairdresser, true},
		{"hair beats photo", "Hair and Photo session", "", Hairdresser, true},
		{"shoe in title", "Shoe shine", "", Shoe, true},
		{"cobbler category", "", "Cobbler", Shoe, true},
		{"repair category", "Phone", "Repair", Shoe, true},
		{"repair in title does not count", "Repair day", "", "", false},
		{"manicure title", "Manicure weekend", "", Manicure, true},
		{"nail category", "", "Nails", Manicure, true},
		{"nail in title does not count", "Nail art", "", "", false},
		{"photo category", "", "Photography", Photographer, true},
		{"renovation beats everything", "hair photo shoe", "renovation", Renovation, true},
		{"title hair beats category photo", "hair", "photo", Hairdresser, true},
		{"no match", "Yoga class", "Sport", "", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.title, tt.category)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
