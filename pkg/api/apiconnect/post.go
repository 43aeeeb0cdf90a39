package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/masterbook/pkg/api"
)

// PostServiceName is the fully-qualified name of the PostService service.
const PostServiceName = "masterbook.v1.PostService"

const (
	PostServiceListPostsProcedure     = packagePrefix + "PostService/ListPosts"
	PostServiceGetPostProcedure       = packagePrefix + "PostService/GetPost"
	PostServiceCreatePostProcedure    = packagePrefix + "PostService/CreatePost"
	PostServiceUpdatePostProcedure    = packagePrefix + "PostService/UpdatePost"
	PostServiceToggleLikeProcedure    = packagePrefix + "PostService/ToggleLike"
	PostServiceToggleArchiveProcedure = packagePrefix + "PostService/ToggleArchive"
	PostServiceArchivePostProcedure   = packagePrefix + "PostService/ArchivePost"
)

// PostServiceHandler is implemented by the post RPC service.
type PostServiceHandler interface {
	ListPosts(context.Context, *connect.Request[api.ListPostsRequest]) (*connect.Response[api.ListPostsResponse], error)
	GetPost(context.Context, *connect.Request[api.PostIDRequest]) (*connect.Response[api.GetPostResponse], error)
	CreatePost(context.Context, *connect.Request[api.CreatePostRequest]) (*connect.Response[api.PostResponse], error)
	UpdatePost(context.Context, *connect.Request[api.UpdatePostRequest]) (*connect.Response[api.PostResponse], error)
	ToggleLike(context.Context, *connect.Request[api.PostIDRequest]) (*connect.Response[api.PostResponse], error)
	ToggleArchive(context.Context, *connect.Request[api.PostIDRequest]) (*connect.Response[api.PostResponse], error)
	ArchivePost(context.Context, *connect.Request[api.PostIDRequest]) (*connect.Response[api.PostResponse], error)
}

// NewPostServiceHandler builds an HTTP handler from the service implementation.
func NewPostServiceHandler(svc PostServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, PostServiceListPostsProcedure, svc.ListPosts, opts)
	handle(mux, PostServiceGetPostProcedure, svc.GetPost, opts)
	handle(mux, PostServiceCreatePostProcedure, svc.CreatePost, opts)
	handle(mux, PostServiceUpdatePostProcedure, svc.UpdatePost, opts)
	handle(mux, PostServiceToggleLikeProcedure, svc.ToggleLike, opts)
	handle(mux, PostServiceToggleArchiveProcedure, svc.ToggleArchive, opts)
	handle(mux, PostServiceArchivePostProcedure, svc.ArchivePost, opts)
	return "/" + PostServiceName + "/", mux
}

// PostServiceClient is a client for the PostService service.
type PostServiceClient struct {
	listPosts     *connect.Client[api.ListPostsRequest, api.ListPostsResponse]
	getPost       *connect.Client[api.PostIDRequest, api.GetPostResponse]
	createPost    *connect.Client[api.CreatePostRequest, api.PostResponse]
	updatePost    *connect.Client[api.UpdatePostRequest, api.PostResponse]
	toggleLike    *connect.Client[api.PostIDRequest, api.PostResponse]
	toggleArchive *connect.Client[api.PostIDRequest, api.PostResponse]
	archivePost   *connect.Client[api.PostIDRequest, api.PostResponse]
}

// NewPostServiceClient constructs a client for the PostService service.
func NewPostServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *PostServiceClient {
	opts = clientOptions(opts)
	return &PostServiceClient{
		listPosts:     newClient[api.ListPostsRequest, api.ListPostsResponse](httpClient, baseURL, PostServiceListPostsProcedure, opts),
		getPost:       newClient[api.PostIDRequest, api.GetPostResponse](httpClient, baseURL, PostServiceGetPostProcedure, opts),
		createPost:    newClient[api.CreatePostRequest, api.PostResponse](httpClient, baseURL, PostServiceCreatePostProcedure, opts),
		updatePost:    newClient[api.UpdatePostRequest, api.PostResponse](httpClient, baseURL, PostServiceUpdatePostProcedure, opts),
		toggleLike:    newClient[api.PostIDRequest, api.PostResponse](httpClient, baseURL, PostServiceToggleLikeProcedure, opts),
		toggleArchive: newClient[api.PostIDRequest, api.PostResponse](httpClient, baseURL, PostServiceToggleArchiveProcedure, opts),
		archivePost:   newClient[api.PostIDRequest, api.PostResponse](httpClient, baseURL, PostServiceArchivePostProcedure, opts),
	}
}

func (c *PostServiceClient) ListPosts(ctx context.Context, req *connect.Request[api.ListPostsRequest]) (*connect.Response[api.ListPostsResponse], error) {
	return c.listPosts.CallUnary(ctx, req)
}

func (c *PostServiceClient) GetPost(ctx context.Context, req *connect.Request[api.PostIDRequest]) (*connect.Response[api.GetPostResponse], error) {
	return c.getPost.CallUnary(ctx, req)
}

func (c *PostServiceClient) CreatePost(ctx context.Context, req *connect.Request[api.CreatePostRequest]) (*connect.Response[api.PostResponse], error) {
	return c.createPost.CallUnary(ctx, req)
}

func (c *PostServiceClient) UpdatePost(ctx context.Context, req *connect.Request[api.UpdatePostRequest]) (*connect.Response[api.PostResponse], error) {
	return c.updatePost.CallUnary(ctx, req)
}

func (c *PostServiceClient) ToggleLike(ctx context.Context, req *connect.Request[api.PostIDRequest]) (*connect.Response[api.PostResponse], error) {
	return c.toggleLike.CallUnary(ctx, req)
}

func (c *PostServiceClient) ToggleArchive(ctx context.Context, req *connect.Request[api.PostIDRequest]) (*connect.Response[api.PostResponse], error) {
	return c.toggleArchive.CallUnary(ctx, req)
}

func (c *PostServiceClient) ArchivePost(ctx context.Context, req *connect.Request[api.PostIDRequest]) (*connect.Response[api.PostResponse], error) {
	return c.archivePost.CallUnary(ctx, req)
}
