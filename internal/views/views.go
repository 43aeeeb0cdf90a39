// Package views computes the filtered and sorted projections that list screens
// show. Every function is pure: it copies its input and never mutates it.
package views

import (
	"cmp"
	"slices"
	"time"

	"github.com/mmynk/masterbook/internal/models"
)

// PostTab selects a subset of posts.
type PostTab string

const (
	PostsCreated  PostTab = "all"
	PostsLiked    PostTab = "fav"
	PostsArchived PostTab = "arch"
)

// ParsePostTab maps unknown values to PostsCreated.
func ParsePostTab(s string) PostTab {
	switch t := PostTab(s); t {
	case PostsLiked, PostsArchived:
		return t
	default:
		return PostsCreated
	}
}

// GroupTab selects a subset of groups.
type GroupTab string

const (
	GroupsActive   GroupTab = "active"
	GroupsArchived GroupTab = "archived"
)

// ParseGroupTab maps unknown values to GroupsActive.
func ParseGroupTab(s string) GroupTab {
	if GroupTab(s) == GroupsArchived {
		return GroupsArchived
	}
	return GroupsActive
}

// Masters filters by exact category (empty means all) and puts favorites
// first. Ties keep store order.
func Masters(list []models.Master, category string) []models.Master {
	out := filter(list, func(m models.Master) bool {
		return category == "" || m.Category == category
	})
	slices.SortStableFunc(out, func(a, b models.Master) int {
		return flagFirst(a.Favorite, b.Favorite)
	})
	return out
}

// Posts returns the posts of a tab, liked first, then newest first.
func Posts(list []models.Post, tab PostTab) []models.Post {
	out := filter(list, postFilter(tab))
	slices.SortStableFunc(out, func(a, b models.Post) int {
		if c := flagFirst(a.Liked, b.Liked); c != 0 {
			return c
		}
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
	return out
}

// PostsEmpty reports whether a tab shows its empty state.
func PostsEmpty(list []models.Post, tab PostTab) bool {
	return len(filter(list, postFilter(tab))) == 0
}

func postFilter(tab PostTab) func(models.Post) bool {
	switch tab {
	case PostsLiked:
		return func(p models.Post) bool { return !p.Archived && p.Liked }
	case PostsArchived:
		return func(p models.Post) bool { return p.Archived }
	default:
		return func(p models.Post) bool { return !p.Archived }
	}
}

// Groups returns the groups of a tab, favorites first, then newest first.
func Groups(list []models.Group, tab GroupTab) []models.Group {
	archived := tab == GroupsArchived
	out := filter(list, func(g models.Group) bool { return g.IsArchived == archived })
	for i := range out {
		out[i] = out[i].Clone()
	}
	slices.SortStableFunc(out, func(a, b models.Group) int {
		if c := flagFirst(a.IsFavorite, b.IsFavorite); c != 0 {
			return c
		}
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
	return out
}

// GroupMembers resolves a group's member ids against the master list.
// Ids with no matching master are dropped; the result follows master order.
func GroupMembers(g models.Group, masters []models.Master) []models.Master {
	ids := make(map[string]bool, len(g.MasterIDs))
	for _, id := range g.MasterIDs {
		ids[id] = true
	}
	return filter(masters, func(m models.Master) bool { return ids[m.ID] })
}

// DayEvents returns the events of one day, reminders first, then by priority.
func DayEvents(events []models.Event, dateKey string) []models.Event {
	out := filter(events, func(e models.Event) bool { return e.DateKey == dateKey })
	slices.SortStableFunc(out, func(a, b models.Event) int {
		if c := flagFirst(a.Notify, b.Notify); c != 0 {
			return c
		}
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	})
	return out
}

// DayMarker returns the dot colour for a day: the highest priority among its
// events. ok is false when the day has no events.
func DayMarker(events []models.Event, dateKey string) (marker models.Priority, ok bool) {
	for _, e := range events {
		if e.DateKey != dateKey {
			continue
		}
		if !ok || e.Priority.Rank() < marker.Rank() {
			marker = e.Priority
			ok = true
		}
	}
	if ok && !marker.Valid() {
		marker = models.PriorityYellow
	}
	return marker, ok
}

// EventsByDay groups events by day key, keeping store order within a day.
func EventsByDay(events []models.Event) map[string][]models.Event {
	out := make(map[string][]models.Event)
	for _, e := range events {
		out[e.DateKey] = append(out[e.DateKey], e)
	}
	return out
}

// MonthMarkers returns the dot colour of every day in the month containing
// month that has at least one event, keyed by day key.
func MonthMarkers(events []models.Event, month time.Time) map[string]models.Priority {
	byDay := EventsByDay(events)
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())

	out := make(map[string]models.Priority)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		key := models.DateKey(d)
		if marker, ok := DayMarker(byDay[key], key); ok {
			out[key] = marker
		}
	}
	return out
}

func filter[T any](list []T, keep func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// flagFirst orders true before false.
func flagFirst(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}
