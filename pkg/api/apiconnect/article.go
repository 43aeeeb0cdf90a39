package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/masterbook/pkg/api"
)

// ArticleServiceName is the fully-qualified name of the ArticleService service.
const ArticleServiceName = "masterbook.v1.ArticleService"

const (
	ArticleServiceListArticlesProcedure  = packagePrefix + "ArticleService/ListArticles"
	ArticleServiceGetArticleProcedure    = packagePrefix + "ArticleService/GetArticle"
	ArticleServiceLookupArticleProcedure = packagePrefix + "ArticleService/LookupArticle"
)

// ArticleServiceHandler is implemented by the article RPC service.
type ArticleServiceHandler interface {
	ListArticles(context.Context, *connect.Request[api.ListArticlesRequest]) (*connect.Response[api.ListArticlesResponse], error)
	GetArticle(context.Context, *connect.Request[api.GetArticleRequest]) (*connect.Response[api.GetArticleResponse], error)
	LookupArticle(context.Context, *connect.Request[api.LookupArticleRequest]) (*connect.Response[api.LookupArticleResponse], error)
}

// NewArticleServiceHandler builds an HTTP handler from the service implementation.
func NewArticleServiceHandler(svc ArticleServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, ArticleServiceListArticlesProcedure, svc.ListArticles, opts)
	handle(mux, ArticleServiceGetArticleProcedure, svc.GetArticle, opts)
	handle(mux, ArticleServiceLookupArticleProcedure, svc.LookupArticle, opts)
	return "/" + ArticleServiceName + "/", mux
}

// ArticleServiceClient is a client for the ArticleService service.
type ArticleServiceClient struct {
	listArticles  *connect.Client[api.ListArticlesRequest, api.ListArticlesResponse]
	getArticle    *connect.Client[api.GetArticleRequest, api.GetArticleResponse]
	lookupArticle *connect.Client[api.LookupArticleRequest, api.LookupArticleResponse]
}

// NewArticleServiceClient constructs a client for the ArticleService service.
func NewArticleServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ArticleServiceClient {
	opts = clientOptions(opts)
	return &ArticleServiceClient{
		listArticles:  newClient[api.ListArticlesRequest, api.ListArticlesResponse](httpClient, baseURL, ArticleServiceListArticlesProcedure, opts),
		getArticle:    newClient[api.GetArticleRequest, api.GetArticleResponse](httpClient, baseURL, ArticleServiceGetArticleProcedure, opts),
		lookupArticle: newClient[api.LookupArticleRequest, api.LookupArticleResponse](httpClient, baseURL, ArticleServiceLookupArticleProcedure, opts),
	}
}

func (c *ArticleServiceClient) ListArticles(ctx context.Context, req *connect.Request[api.ListArticlesRequest]) (*connect.Response[api.ListArticlesResponse], error) {
	return c.listArticles.CallUnary(ctx, req)
}

func (c *ArticleServiceClient) GetArticle(ctx context.Context, req *connect.Request[api.GetArticleRequest]) (*connect.Response[api.GetArticleResponse], error) {
	return c.getArticle.CallUnary(ctx, req)
}

func (c *ArticleServiceClient) LookupArticle(ctx context.Context, req *connect.Request[api.LookupArticleRequest]) (*connect.Response[api.LookupArticleResponse], error) {
	return c.lookupArticle.CallUnary(ctx, req)
}
