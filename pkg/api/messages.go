package api

import (
	"github.com/mmynk/masterbook/internal/articles"
	"github.com/mmynk/masterbook/internal/models"
)

// Masters

type ListMastersRequest struct {
	// Category filters by exact match; empty lists every master.
	Category string `json:"category,omitempty"`
}

type ListMastersResponse struct {
	Masters    []models.Master `json:"masters"`
	Categories []string        `json:"categories"`
}

type CreateMasterRequest struct {
	Name     string          `json:"name"`
	Role     string          `json:"role"`
	Price    string          `json:"price"`
	Currency models.Currency `json:"currency"`
	Category string          `json:"category"`
	PhotoURI string          `json:"photoUri,omitempty"`
}

type MasterIDRequest struct {
	ID string `json:"id"`
}

type MasterResponse struct {
	Master models.Master `json:"master"`
}

// Posts

type ListPostsRequest struct {
	// Tab is "all", "fav" or "arch". Anything else means "all".
	Tab string `json:"tab,omitempty"`
}

type ListPostsResponse struct {
	Posts []models.Post `json:"posts"`
	// Empty is true when the tab shows its empty state.
	Empty bool `json:"empty"`
}

type PostIDRequest struct {
	ID string `json:"id"`
}

type GetPostResponse struct {
	Post    models.Post       `json:"post"`
	Article *articles.Article `json:"article,omitempty"`
}

type CreatePostRequest struct {
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt,omitempty"`
	Body       string `json:"body,omitempty"`
	ImageURI   string `json:"imageUri,omitempty"`
	MasterName string `json:"masterName"`
	Category   string `json:"category,omitempty"`
	DateISO    string `json:"dateISO,omitempty"`
	StartISO   string `json:"startISO,omitempty"`
	EndISO     string `json:"endISO,omitempty"`
}

type UpdatePostRequest struct {
	ID    string           `json:"id"`
	Patch models.PostPatch `json:"patch"`
}

type PostResponse struct {
	Post models.Post `json:"post"`
}

// Groups

type ListGroupsRequest struct {
	// Tab is "active" or "archived". Anything else means "active".
	Tab string `json:"tab,omitempty"`
}

type ListGroupsResponse struct {
	Groups []models.Group `json:"groups"`
}

type GroupIDRequest struct {
	ID string `json:"id"`
}

type GetGroupResponse struct {
	Group models.Group `json:"group"`
	// Members are the masters the group still resolves to.
	Members []models.Master `json:"members"`
}

type CreateGroupRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	CoverURI    string   `json:"coverUri,omitempty"`
	MasterIDs   []string `json:"masterIds"`
}

// UpdateGroupRequest carries the patch fields inline: {"id": "...", "coverUri": null}.
// ClearCover is the same as a null coverUri, and ClearMasterIDs the same as
// "masterIds": [], for clients that cannot tell those apart from absence.
type UpdateGroupRequest struct {
	models.GroupPatch
	ClearCover     bool `json:"clearCover,omitempty"`
	ClearMasterIDs bool `json:"clearMasterIds,omitempty"`
}

type ArchiveGroupRequest struct {
	ID string `json:"id"`
	// Value sets the archived flag; when absent the flag is flipped.
	Value models.Optional[bool] `json:"value,omitzero"`
}

type GroupResponse struct {
	Group models.Group `json:"group"`
}

// Articles

type ListArticlesRequest struct{}

type ListArticlesResponse struct {
	Articles []articles.Article `json:"articles"`
}

type GetArticleRequest struct {
	ID string `json:"id"`
}

type GetArticleResponse struct {
	Article articles.Article `json:"article"`
}

type LookupArticleRequest struct {
	Title    string `json:"title,omitempty"`
	Category string `json:"category,omitempty"`
}

type LookupArticleResponse struct {
	ArticleID string `json:"articleId,omitempty"`
	Found     bool   `json:"found"`
}

// Profile

type GetProfileRequest struct{}

type SaveProfileRequest struct {
	Name      string `json:"name"`
	AvatarURI string `json:"avatarUri,omitempty"`
}

type SetNotificationsRequest struct {
	Enabled bool `json:"enabled"`
}

type ProfileResponse struct {
	Profile models.Profile `json:"profile"`
}

// Calendar

type ListDayEventsRequest struct {
	DateKey string `json:"dateKey"`
}

type ListDayEventsResponse struct {
	Events []models.Event `json:"events"`
	// Marker is the dot colour of the day; empty when the day has no events.
	Marker models.Priority `json:"marker,omitempty"`
}

type ListMonthMarkersRequest struct {
	// Month is YYYY-MM.
	Month string `json:"month"`
}

type ListMonthMarkersResponse struct {
	// Markers maps each day key of the month that has events to its dot colour.
	Markers map[string]models.Priority `json:"markers"`
}

type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DateKey     string `json:"dateKey"`
	// Notify defaults to true.
	Notify models.Optional[bool] `json:"notify,omitzero"`
	// Priority defaults to red.
	Priority models.Priority `json:"priority,omitempty"`
}

type UpdateEventRequest struct {
	ID    string            `json:"id"`
	Patch models.EventPatch `json:"patch"`
}

type EventIDRequest struct {
	ID string `json:"id"`
}

type EventResponse struct {
	Event models.Event `json:"event"`
}

type DeleteEventResponse struct{}
