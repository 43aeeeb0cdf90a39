package models

// Post represents a user-authored announcement.
type Post struct {
	// ID is the unique identifier for the post (UUID format).
	ID string `json:"id"`

	Title    string `json:"title"`
	Excerpt  string `json:"excerpt,omitempty"`
	Body     string `json:"body,omitempty"`
	ImageURI string `json:"imageUri,omitempty"`

	// MasterName is a copy of the master's name at the time the post was written.
	// It is not a foreign key and is never refreshed when the master changes.
	MasterName string `json:"masterName,omitempty"`

	Category string `json:"category,omitempty"`

	// DateISO, StartISO and EndISO describe an optional event window.
	DateISO  string `json:"dateISO,omitempty"`
	StartISO string `json:"startISO,omitempty"`
	EndISO   string `json:"endISO,omitempty"`

	Liked    bool `json:"liked"`
	Archived bool `json:"archived"`

	// CreatedAt is the Unix timestamp in milliseconds when the post was created.
	CreatedAt int64 `json:"createdAt"`

	// ArticleID links the post to a catalog article. It is resolved once, when the
	// post is created, and left alone by later edits of the title or category.
	ArticleID string `json:"articleId,omitempty"`
}

// NewPost holds the caller-supplied fields of a post being created.
type NewPost struct {
	Title      string
	Excerpt    string
	Body       string
	ImageURI   string
	MasterName string
	Category   string
	DateISO    string
	StartISO   string
	EndISO     string
}

// PostPatch is a partial update of a post. Absent fields are left unchanged.
// ID and CreatedAt cannot be patched.
type PostPatch struct {
	Title      Optional[string] `json:"title,omitzero"`
	Excerpt    Optional[string] `json:"excerpt,omitzero"`
	Body       Optional[string] `json:"body,omitzero"`
	ImageURI   Optional[string] `json:"imageUri,omitzero"`
	MasterName Optional[string] `json:"masterName,omitzero"`
	Category   Optional[string] `json:"category,omitzero"`
	DateISO    Optional[string] `json:"dateISO,omitzero"`
	StartISO   Optional[string] `json:"startISO,omitzero"`
	EndISO     Optional[string] `json:"endISO,omitzero"`
	Liked      Optional[bool]   `json:"liked,omitzero"`
	Archived   Optional[bool]   `json:"archived,omitzero"`
	ArticleID  Optional[string] `json:"articleId,omitzero"`
}

// Apply merges the present fields of p over post.
func (p PostPatch) Apply(post *Post) {
	p.Title.ApplyTo(&post.Title)
	p.Excerpt.ApplyTo(&post.Excerpt)
	p.Body.ApplyTo(&post.Body)
	p.ImageURI.ApplyTo(&post.ImageURI)
	p.MasterName.ApplyTo(&post.MasterName)
	p.Category.ApplyTo(&post.Category)
	p.DateISO.ApplyTo(&post.DateISO)
	p.StartISO.ApplyTo(&post.StartISO)
	p.EndISO.ApplyTo(&post.EndISO)
	p.Liked.ApplyTo(&post.Liked)
	p.Archived.ApplyTo(&post.Archived)
	p.ArticleID.ApplyTo(&post.ArticleID)
}
