package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/masterbook/internal/articles"
	"github.com/mmynk/masterbook/pkg/api"
)

// ArticleService serves the read-only article catalog.
type ArticleService struct{}

func NewArticleService() *ArticleService {
	return &ArticleService{}
}

func (s *ArticleService) ListArticles(ctx context.Context, req *connect.Request[api.ListArticlesRequest]) (*connect.Response[api.ListArticlesResponse], error) {
	all := articles.All()
	slog.Debug("ListArticles successful", "count", len(all))
	return connect.NewResponse(&api.ListArticlesResponse{Articles: all}), nil
}

func (s *ArticleService) GetArticle(ctx context.Context, req *connect.Request[api.GetArticleRequest]) (*connect.Response[api.GetArticleResponse], error) {
	slog.Info("GetArticle request received", "article_id", req.Msg.ID)

	a, ok := articles.Get(articles.ID(req.Msg.ID))
	if !ok {
		return nil, notFound("article", req.Msg.ID)
	}
	return connect.NewResponse(&api.GetArticleResponse{Article: a}), nil
}

// LookupArticle runs the title/category heuristic without creating a post.
func (s *ArticleService) LookupArticle(ctx context.Context, req *connect.Request[api.LookupArticleRequest]) (*connect.Response[api.LookupArticleResponse], error) {
	id, ok := articles.Lookup(req.Msg.Title, req.Msg.Category)
	slog.Info("LookupArticle",
		"title", req.Msg.Title,
		"category", req.Msg.Category,
		"article_id", id,
	)
	return connect.NewResponse(&api.LookupArticleResponse{ArticleID: string(id), Found: ok}), nil
}
