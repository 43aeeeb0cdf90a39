package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/masterbook/pkg/api"
)

// CalendarServiceName is the fully-qualified name of the CalendarService service.
const CalendarServiceName = "masterbook.v1.CalendarService"

const (
	CalendarServiceListDayEventsProcedure    = packagePrefix + "CalendarService/ListDayEvents"
	CalendarServiceListMonthMarkersProcedure = packagePrefix + "CalendarService/ListMonthMarkers"
	CalendarServiceCreateEventProcedure      = packagePrefix + "CalendarService/CreateEvent"
	CalendarServiceUpdateEventProcedure      = packagePrefix + "CalendarService/UpdateEvent"
	CalendarServiceToggleNotifyProcedure     = packagePrefix + "CalendarService/ToggleNotify"
	CalendarServiceDeleteEventProcedure      = packagePrefix + "CalendarService/DeleteEvent"
)

// CalendarServiceHandler is implemented by the calendar RPC service.
type CalendarServiceHandler interface {
	ListDayEvents(context.Context, *connect.Request[api.ListDayEventsRequest]) (*connect.Response[api.ListDayEventsResponse], error)
	ListMonthMarkers(context.Context, *connect.Request[api.ListMonthMarkersRequest]) (*connect.Response[api.ListMonthMarkersResponse], error)
	CreateEvent(context.Context, *connect.Request[api.CreateEventRequest]) (*connect.Response[api.EventResponse], error)
	UpdateEvent(context.Context, *connect.Request[api.UpdateEventRequest]) (*connect.Response[api.EventResponse], error)
	ToggleNotify(context.Context, *connect.Request[api.EventIDRequest]) (*connect.Response[api.EventResponse], error)
	DeleteEvent(context.Context, *connect.Request[api.EventIDRequest]) (*connect.Response[api.DeleteEventResponse], error)
}

// NewCalendarServiceHandler builds an HTTP handler from the service implementation.
func NewCalendarServiceHandler(svc CalendarServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, CalendarServiceListDayEventsProcedure, svc.ListDayEvents, opts)
	handle(mux, CalendarServiceListMonthMarkersProcedure, svc.ListMonthMarkers, opts)
	handle(mux, CalendarServiceCreateEventProcedure, svc.CreateEvent, opts)
	handle(mux, CalendarServiceUpdateEventProcedure, svc.UpdateEvent, opts)
	handle(mux, CalendarServiceToggleNotifyProcedure, svc.ToggleNotify, opts)
	handle(mux, CalendarServiceDeleteEventProcedure, svc.DeleteEvent, opts)
	return "/" + CalendarServiceName + "/", mux
}

// CalendarServiceClient is a client for the CalendarService service.
type CalendarServiceClient struct {
	listDayEvents    *connect.Client[api.ListDayEventsRequest, api.ListDayEventsResponse]
	listMonthMarkers *connect.Client[api.ListMonthMarkersRequest, api.ListMonthMarkersResponse]
	createEvent      *connect.Client[api.CreateEventRequest, api.EventResponse]
	updateEvent      *connect.Client[api.UpdateEventRequest, api.EventResponse]
	toggleNotify     *connect.Client[api.EventIDRequest, api.EventResponse]
	deleteEvent      *connect.Client[api.EventIDRequest, api.DeleteEventResponse]
}

// NewCalendarServiceClient constructs a client for the CalendarService service.
func NewCalendarServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *CalendarServiceClient {
	opts = clientOptions(opts)
	return &CalendarServiceClient{
		listDayEvents:    newClient[api.ListDayEventsRequest, api.ListDayEventsResponse](httpClient, baseURL, CalendarServiceListDayEventsProcedure, opts),
		listMonthMarkers: newClient[api.ListMonthMarkersRequest, api.ListMonthMarkersResponse](httpClient, baseURL, CalendarServiceListMonthMarkersProcedure, opts),
		createEvent:      newClient[api.CreateEventRequest, api.EventResponse](httpClient, baseURL, CalendarServiceCreateEventProcedure, opts),
		updateEvent:      newClient[api.UpdateEventRequest, api.EventResponse](httpClient, baseURL, CalendarServiceUpdateEventProcedure, opts),
		toggleNotify:     newClient[api.EventIDRequest, api.EventResponse](httpClient, baseURL, CalendarServiceToggleNotifyProcedure, opts),
		deleteEvent:      newClient[api.EventIDRequest, api.DeleteEventResponse](httpClient, baseURL, CalendarServiceDeleteEventProcedure, opts),
	}
}

func (c *CalendarServiceClient) ListDayEvents(ctx context.Context, req *connect.Request[api.ListDayEventsRequest]) (*connect.Response[api.ListDayEventsResponse], error) {
	return c.listDayEvents.CallUnary(ctx, req)
}

func (c *CalendarServiceClient) ListMonthMarkers(ctx context.Context, req *connect.Request[api.ListMonthMarkersRequest]) (*connect.Response[api.ListMonthMarkersResponse], error) {
	return c.listMonthMarkers.CallUnary(ctx, req)
}

func (c *CalendarServiceClient) CreateEvent(ctx context.Context, req *connect.Request[api.CreateEventRequest]) (*connect.Response[api.EventResponse], error) {
	return c.createEvent.CallUnary(ctx, req)
}

func (c *CalendarServiceClient) UpdateEvent(ctx context.Context, req *connect.Request[api.UpdateEventRequest]) (*connect.Response[api.EventResponse], error) {
	return c.updateEvent.CallUnary(ctx, req)
}

func (c *CalendarServiceClient) ToggleNotify(ctx context.Context, req *connect.Request[api.EventIDRequest]) (*connect.Response[api.EventResponse], error) {
	return c.toggleNotify.CallUnary(ctx, req)
}

func (c *CalendarServiceClient) DeleteEvent(ctx context.Context, req *connect.Request[api.EventIDRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	return c.deleteEvent.CallUnary(ctx, req)
}
