package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/masterbook/pkg/api"
)

// ProfileServiceName is the fully-qualified name of the ProfileService service.
const ProfileServiceName = "masterbook.v1.ProfileService"

const (
	ProfileServiceGetProfileProcedure       = packagePrefix + "ProfileService/GetProfile"
	ProfileServiceSaveProfileProcedure      = packagePrefix + "ProfileService/SaveProfile"
	ProfileServiceSetNotificationsProcedure = packagePrefix + "ProfileService/SetNotifications"
)

// ProfileServiceHandler is implemented by the profile RPC service.
type ProfileServiceHandler interface {
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.ProfileResponse], error)
	SaveProfile(context.Context, *connect.Request[api.SaveProfileRequest]) (*connect.Response[api.ProfileResponse], error)
	SetNotifications(context.Context, *connect.Request[api.SetNotificationsRequest]) (*connect.Response[api.ProfileResponse], error)
}

// NewProfileServiceHandler builds an HTTP handler from the service implementation.
func NewProfileServiceHandler(svc ProfileServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, ProfileServiceGetProfileProcedure, svc.GetProfile, opts)
	handle(mux, ProfileServiceSaveProfileProcedure, svc.SaveProfile, opts)
	handle(mux, ProfileServiceSetNotificationsProcedure, svc.SetNotifications, opts)
	return "/" + ProfileServiceName + "/", mux
}

// ProfileServiceClient is a client for the ProfileService service.
type ProfileServiceClient struct {
	getProfile       *connect.Client[api.GetProfileRequest, api.ProfileResponse]
	saveProfile      *connect.Client[api.SaveProfileRequest, api.ProfileResponse]
	setNotifications *connect.Client[api.SetNotificationsRequest, api.ProfileResponse]
}

// NewProfileServiceClient constructs a client for the ProfileService service.
func NewProfileServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ProfileServiceClient {
	opts = clientOptions(opts)
	return &ProfileServiceClient{
		getProfile:       newClient[api.GetProfileRequest, api.ProfileResponse](httpClient, baseURL, ProfileServiceGetProfileProcedure, opts),
		saveProfile:      newClient[api.SaveProfileRequest, api.ProfileResponse](httpClient, baseURL, ProfileServiceSaveProfileProcedure, opts),
		setNotifications: newClient[api.SetNotificationsRequest, api.ProfileResponse](httpClient, baseURL, ProfileServiceSetNotificationsProcedure, opts),
	}
}

func (c *ProfileServiceClient) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.ProfileResponse], error) {
	return c.getProfile.CallUnary(ctx, req)
}

func (c *ProfileServiceClient) SaveProfile(ctx context.Context, req *connect.Request[api.SaveProfileRequest]) (*connect.Response[api.ProfileResponse], error) {
	return c.saveProfile.CallUnary(ctx, req)
}

func (c *ProfileServiceClient) SetNotifications(ctx context.Context, req *connect.Request[api.SetNotificationsRequest]) (*connect.Response[api.ProfileResponse], error) {
	return c.setNotifications.CallUnary(ctx, req)
}
