package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/masterbook/pkg/api"
)

// MasterServiceName is the fully-qualified name of the MasterService service.
const MasterServiceName = "masterbook.v1.MasterService"

const (
	MasterServiceListMastersProcedure    = packagePrefix + "MasterService/ListMasters"
	MasterServiceCreateMasterProcedure   = packagePrefix + "MasterService/CreateMaster"
	MasterServiceToggleFavoriteProcedure = packagePrefix + "MasterService/ToggleFavorite"
)

// MasterServiceHandler is implemented by the master RPC service.
type MasterServiceHandler interface {
	ListMasters(context.Context, *connect.Request[api.ListMastersRequest]) (*connect.Response[api.ListMastersResponse], error)
	CreateMaster(context.Context, *connect.Request[api.CreateMasterRequest]) (*connect.Response[api.MasterResponse], error)
	ToggleFavorite(context.Context, *connect.Request[api.MasterIDRequest]) (*connect.Response[api.MasterResponse], error)
}

// NewMasterServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewMasterServiceHandler(svc MasterServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, MasterServiceListMastersProcedure, svc.ListMasters, opts)
	handle(mux, MasterServiceCreateMasterProcedure, svc.CreateMaster, opts)
	handle(mux, MasterServiceToggleFavoriteProcedure, svc.ToggleFavorite, opts)
	return "/" + MasterServiceName + "/", mux
}

// MasterServiceClient is a client for the MasterService service.
type MasterServiceClient struct {
	listMasters    *connect.Client[api.ListMastersRequest, api.ListMastersResponse]
	createMaster   *connect.Client[api.CreateMasterRequest, api.MasterResponse]
	toggleFavorite *connect.Client[api.MasterIDRequest, api.MasterResponse]
}

// NewMasterServiceClient constructs a client for the MasterService service.
func NewMasterServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *MasterServiceClient {
	opts = clientOptions(opts)
	return &MasterServiceClient{
		listMasters:    newClient[api.ListMastersRequest, api.ListMastersResponse](httpClient, baseURL, MasterServiceListMastersProcedure, opts),
		createMaster:   newClient[api.CreateMasterRequest, api.MasterResponse](httpClient, baseURL, MasterServiceCreateMasterProcedure, opts),
		toggleFavorite: newClient[api.MasterIDRequest, api.MasterResponse](httpClient, baseURL, MasterServiceToggleFavoriteProcedure, opts),
	}
}

func (c *MasterServiceClient) ListMasters(ctx context.Context, req *connect.Request[api.ListMastersRequest]) (*connect.Response[api.ListMastersResponse], error) {
	return c.listMasters.CallUnary(ctx, req)
}

func (c *MasterServiceClient) CreateMaster(ctx context.Context, req *connect.Request[api.CreateMasterRequest]) (*connect.Response[api.MasterResponse], error) {
	return c.createMaster.CallUnary(ctx, req)
}

func (c *MasterServiceClient) ToggleFavorite(ctx context.Context, req *connect.Request[api.MasterIDRequest]) (*connect.Response[api.MasterResponse], error) {
	return c.toggleFavorite.CallUnary(ctx, req)
}
