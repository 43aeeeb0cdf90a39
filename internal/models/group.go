package models

import "slices"

// Group represents a named collection of masters.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Title is the display name of the group (e.g., "Wedding prep").
	Title string `json:"title"`

	Description string `json:"description,omitempty"`

	// CoverURI is an opaque image reference; empty means no cover.
	CoverURI string `json:"coverUri,omitempty"`

	// MasterIDs lists member masters in the order they were picked.
	// These are weak references: a master may be missing from the master store,
	// and duplicates are not prevented.
	MasterIDs []string `json:"masterIds"`

	IsFavorite bool `json:"isFavorite"`
	IsArchived bool `json:"isArchived"`

	// CreatedAt is the Unix timestamp in milliseconds when the group was created.
	CreatedAt int64 `json:"createdAt"`
}

// NewGroup holds the caller-supplied fields of a group being created.
type NewGroup struct {
	Title       string
	Description string
	CoverURI    string
	MasterIDs   []string
}

// GroupPatch is a partial update of the group identified by ID.
type GroupPatch struct {
	ID          string             `json:"id"`
	Title       Optional[string]   `json:"title,omitzero"`
	Description Optional[string]   `json:"description,omitzero"`
	CoverURI    Nullable[string]   `json:"coverUri,omitzero"`
	MasterIDs   Optional[[]string] `json:"masterIds,omitzero"`
	IsFavorite  Optional[bool]     `json:"isFavorite,omitzero"`
	IsArchived  Optional[bool]     `json:"isArchived,omitzero"`
}

// Apply merges the present fields of p over g. A null cover clears it.
func (p GroupPatch) Apply(g *Group) {
	p.Title.ApplyTo(&g.Title)
	p.Description.ApplyTo(&g.Description)
	p.CoverURI.ApplyTo(&g.CoverURI)
	if ids, ok := p.MasterIDs.Get(); ok {
		g.MasterIDs = slices.Clone(ids)
	}
	p.IsFavorite.ApplyTo(&g.IsFavorite)
	p.IsArchived.ApplyTo(&g.IsArchived)
}

// Clone returns a copy of g that shares no memory with it.
func (g Group) Clone() Group {
	g.MasterIDs = slices.Clone(g.MasterIDs)
	return g
}
