package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/masterbook/internal/models"
	"github.com/mmynk/masterbook/internal/store"
	"github.com/mmynk/masterbook/internal/views"
	"github.com/mmynk/masterbook/pkg/api"
)

// CalendarService implements the Connect CalendarService
type CalendarService struct {
	events *store.CalendarStore
}

// NewCalendarService creates a new CalendarService backed by the calendar store.
func NewCalendarService(events *store.CalendarStore) *CalendarService {
	return &CalendarService{events: events}
}

// ListDayEvents returns the events of one day and the day's marker colour.
func (s *CalendarService) ListDayEvents(ctx context.Context, req *connect.Request[api.ListDayEventsRequest]) (*connect.Response[api.ListDayEventsResponse], error) {
	slog.Info("ListDayEvents request received", "date_key", req.Msg.DateKey)

	if !models.ValidDateKey(req.Msg.DateKey) {
		return nil, invalid("invalid dateKey %q", req.Msg.DateKey)
	}

	all := s.events.List()
	resp := &api.ListDayEventsResponse{Events: views.DayEvents(all, req.Msg.DateKey)}
	if marker, ok := views.DayMarker(all, req.Msg.DateKey); ok {
		resp.Marker = marker
	}

	slog.Info("ListDayEvents successful", "date_key", req.Msg.DateKey, "count", len(resp.Events))

	return connect.NewResponse(resp), nil
}

// ListMonthMarkers returns the dot colour of every day of a month that has
// events, so a month grid can be drawn in one call.
func (s *CalendarService) ListMonthMarkers(ctx context.Context, req *connect.Request[api.ListMonthMarkersRequest]) (*connect.Response[api.ListMonthMarkersResponse], error) {
	slog.Info("ListMonthMarkers request received", "month", req.Msg.Month)

	month, err := time.Parse(models.MonthKeyLayout, req.Msg.Month)
	if err != nil {
		return nil, invalid("invalid month %q", req.Msg.Month)
	}

	markers := views.MonthMarkers(s.events.List(), month)

	slog.Info("ListMonthMarkers successful", "month", req.Msg.Month, "days", len(markers))

	return connect.NewResponse(&api.ListMonthMarkersResponse{Markers: markers}), nil
}

// CreateEvent adds an event. Reminders default to on and priority to red.
func (s *CalendarService) CreateEvent(ctx context.Context, req *connect.Request[api.CreateEventRequest]) (*connect.Response[api.EventResponse], error) {
	slog.Info("CreateEvent request received",
		"title", req.Msg.Title,
		"date_key", req.Msg.DateKey,
	)

	title, err := requireText("title", req.Msg.Title)
	if err != nil {
		return nil, err
	}
	if !models.ValidDateKey(req.Msg.DateKey) {
		return nil, invalid("invalid dateKey %q", req.Msg.DateKey)
	}
	priority := req.Msg.Priority
	if priority == "" {
		priority = models.PriorityRed
	}
	if !priority.Valid() {
		return nil, invalid("invalid priority %q", priority)
	}
	notify := true
	req.Msg.Notify.ApplyTo(&notify)

	event := s.events.Add(models.NewEvent{
		Title:       title,
		Description: strings.TrimSpace(req.Msg.Description),
		DateKey:     req.Msg.DateKey,
		Notify:      notify,
		Priority:    priority,
	})

	slog.Info("Event created", "event_id", event.ID)

	return connect.NewResponse(&api.EventResponse{Event: event}), nil
}

// UpdateEvent merges the present patch fields into an event.
func (s *CalendarService) UpdateEvent(ctx context.Context, req *connect.Request[api.UpdateEventRequest]) (*connect.Response[api.EventResponse], error) {
	slog.Info("UpdateEvent request received", "event_id", req.Msg.ID)

	patch := req.Msg.Patch
	if title, ok := patch.Title.Get(); ok {
		title, err := requireText("title", title)
		if err != nil {
			return nil, err
		}
		patch.Title = models.Some(title)
	}
	if desc, ok := patch.Description.Get(); ok {
		patch.Description = models.Some(strings.TrimSpace(desc))
	}
	if p, ok := patch.Priority.Get(); ok && !p.Valid() {
		return nil, invalid("invalid priority %q", p)
	}

	event, ok := s.events.Update(req.Msg.ID, patch)
	if !ok {
		return nil, notFound("event", req.Msg.ID)
	}

	slog.Info("Event updated", "event_id", event.ID)

	return connect.NewResponse(&api.EventResponse{Event: event}), nil
}

// ToggleNotify flips the reminder of an event.
func (s *CalendarService) ToggleNotify(ctx context.Context, req *connect.Request[api.EventIDRequest]) (*connect.Response[api.EventResponse], error) {
	slog.Info("ToggleNotify request received", "event_id", req.Msg.ID)

	event, ok := s.events.ToggleNotify(req.Msg.ID)
	if !ok {
		return nil, notFound("event", req.Msg.ID)
	}

	slog.Info("Event notify toggled", "event_id", event.ID, "notify", event.Notify)

	return connect.NewResponse(&api.EventResponse{Event: event}), nil
}

// DeleteEvent removes an event.
func (s *CalendarService) DeleteEvent(ctx context.Context, req *connect.Request[api.EventIDRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	slog.Info("DeleteEvent request received", "event_id", req.Msg.ID)

	if !s.events.Remove(req.Msg.ID) {
		return nil, notFound("event", req.Msg.ID)
	}

	slog.Info("Event deleted", "event_id", req.Msg.ID)

	return connect.NewResponse(&api.DeleteEventResponse{}), nil
}
