package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/masterbook/pkg/api"
)

// GroupServiceName is the fully-qualified name of the GroupService service.
const GroupServiceName = "masterbook.v1.GroupService"

const (
	GroupServiceListGroupsProcedure     = packagePrefix + "GroupService/ListGroups"
	GroupServiceGetGroupProcedure       = packagePrefix + "GroupService/GetGroup"
	GroupServiceCreateGroupProcedure    = packagePrefix + "GroupService/CreateGroup"
	GroupServiceUpdateGroupProcedure    = packagePrefix + "GroupService/UpdateGroup"
	GroupServiceArchiveGroupProcedure   = packagePrefix + "GroupService/ArchiveGroup"
	GroupServiceToggleFavoriteProcedure = packagePrefix + "GroupService/ToggleFavorite"
)

// GroupServiceHandler is implemented by the group RPC service.
type GroupServiceHandler interface {
	ListGroups(context.Context, *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error)
	GetGroup(context.Context, *connect.Request[api.GroupIDRequest]) (*connect.Response[api.GetGroupResponse], error)
	CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.GroupResponse], error)
	UpdateGroup(context.Context, *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.GroupResponse], error)
	ArchiveGroup(context.Context, *connect.Request[api.ArchiveGroupRequest]) (*connect.Response[api.GroupResponse], error)
	ToggleFavorite(context.Context, *connect.Request[api.GroupIDRequest]) (*connect.Response[api.GroupResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler from the service implementation.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, GroupServiceListGroupsProcedure, svc.ListGroups, opts)
	handle(mux, GroupServiceGetGroupProcedure, svc.GetGroup, opts)
	handle(mux, GroupServiceCreateGroupProcedure, svc.CreateGroup, opts)
	handle(mux, GroupServiceUpdateGroupProcedure, svc.UpdateGroup, opts)
	handle(mux, GroupServiceArchiveGroupProcedure, svc.ArchiveGroup, opts)
	handle(mux, GroupServiceToggleFavoriteProcedure, svc.ToggleFavorite, opts)
	return "/" + GroupServiceName + "/", mux
}

// GroupServiceClient is a client for the GroupService service.
type GroupServiceClient struct {
	listGroups     *connect.Client[api.ListGroupsRequest, api.ListGroupsResponse]
	getGroup       *connect.Client[api.GroupIDRequest, api.GetGroupResponse]
	createGroup    *connect.Client[api.CreateGroupRequest, api.GroupResponse]
	updateGroup    *connect.Client[api.UpdateGroupRequest, api.GroupResponse]
	archiveGroup   *connect.Client[api.ArchiveGroupRequest, api.GroupResponse]
	toggleFavorite *connect.Client[api.GroupIDRequest, api.GroupResponse]
}

// NewGroupServiceClient constructs a client for the GroupService service.
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *GroupServiceClient {
	opts = clientOptions(opts)
	return &GroupServiceClient{
		listGroups:     newClient[api.ListGroupsRequest, api.ListGroupsResponse](httpClient, baseURL, GroupServiceListGroupsProcedure, opts),
		getGroup:       newClient[api.GroupIDRequest, api.GetGroupResponse](httpClient, baseURL, GroupServiceGetGroupProcedure, opts),
		createGroup:    newClient[api.CreateGroupRequest, api.GroupResponse](httpClient, baseURL, GroupServiceCreateGroupProcedure, opts),
		updateGroup:    newClient[api.UpdateGroupRequest, api.GroupResponse](httpClient, baseURL, GroupServiceUpdateGroupProcedure, opts),
		archiveGroup:   newClient[api.ArchiveGroupRequest, api.GroupResponse](httpClient, baseURL, GroupServiceArchiveGroupProcedure, opts),
		toggleFavorite: newClient[api.GroupIDRequest, api.GroupResponse](httpClient, baseURL, GroupServiceToggleFavoriteProcedure, opts),
	}
}

func (c *GroupServiceClient) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *GroupServiceClient) GetGroup(ctx context.Context, req *connect.Request[api.GroupIDRequest]) (*connect.Response[api.GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *GroupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.GroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *GroupServiceClient) UpdateGroup(ctx context.Context, req *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.GroupResponse], error) {
	return c.updateGroup.CallUnary(ctx, req)
}

func (c *GroupServiceClient) ArchiveGroup(ctx context.Context, req *connect.Request[api.ArchiveGroupRequest]) (*connect.Response[api.GroupResponse], error) {
	return c.archiveGroup.CallUnary(ctx, req)
}

func (c *GroupServiceClient) ToggleFavorite(ctx context.Context, req *connect.Request[api.GroupIDRequest]) (*connect.Response[api.GroupResponse], error) {
	return c.toggleFavorite.CallUnary(ctx, req)
}
