package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/masterbook/internal/articles"
	"github.com/mmynk/masterbook/internal/models"
	"github.com/mmynk/masterbook/internal/store"
	"github.com/mmynk/masterbook/internal/views"
	"github.com/mmynk/masterbook/pkg/api"
)

// PostService implements the Connect PostService
type PostService struct {
	posts *store.PostStore
}

// NewPostService creates a new PostService backed by the post store.
func NewPostService(posts *store.PostStore) *PostService {
	return &PostService{posts: posts}
}

// ListPosts returns the posts of a tab and whether the tab is empty.
func (s *PostService) ListPosts(ctx context.Context, req *connect.Request[api.ListPostsRequest]) (*connect.Response[api.ListPostsResponse], error) {
	tab := views.ParsePostTab(req.Msg.Tab)
	slog.Info("ListPosts request received", "tab", tab)

	all := s.posts.List()
	posts := views.Posts(all, tab)

	slog.Info("ListPosts successful", "tab", tab, "count", len(posts))

	return connect.NewResponse(&api.ListPostsResponse{
		Posts: posts,
		Empty: views.PostsEmpty(all, tab),
	}), nil
}

// GetPost returns a post together with its linked article, if any.
func (s *PostService) GetPost(ctx context.Context, req *connect.Request[api.PostIDRequest]) (*connect.Response[api.GetPostResponse], error) {
	slog.Info("GetPost request received", "post_id", req.Msg.ID)

	post, ok := s.posts.Get(req.Msg.ID)
	if !ok {
		return nil, notFound("post", req.Msg.ID)
	}

	resp := &api.GetPostResponse{Post: post}
	if a, ok := articles.Get(articles.ID(post.ArticleID)); ok {
		resp.Article = &a
	}

	slog.Info("GetPost successful", "post_id", post.ID, "article_id", post.ArticleID)

	return connect.NewResponse(resp), nil
}

// CreatePost adds a post. The linked article is resolved from title and category.
func (s *PostService) CreatePost(ctx context.Context, req *connect.Request[api.CreatePostRequest]) (*connect.Response[api.PostResponse], error) {
	slog.Info("CreatePost request received",
		"title", req.Msg.Title,
		"master_name", req.Msg.MasterName,
	)

	title, err := requireText("title", req.Msg.Title)
	if err != nil {
		return nil, err
	}
	masterName, err := requireText("masterName", req.Msg.MasterName)
	if err != nil {
		return nil, err
	}

	post := s.posts.Add(models.NewPost{
		Title:      title,
		Excerpt:    strings.TrimSpace(req.Msg.Excerpt),
		Body:       strings.TrimSpace(req.Msg.Body),
		ImageURI:   req.Msg.ImageURI,
		MasterName: masterName,
		Category:   strings.TrimSpace(req.Msg.Category),
		DateISO:    req.Msg.DateISO,
		StartISO:   req.Msg.StartISO,
		EndISO:     req.Msg.EndISO,
	})

	slog.Info("Post created", "post_id", post.ID, "article_id", post.ArticleID)

	return connect.NewResponse(&api.PostResponse{Post: post}), nil
}

// UpdatePost merges the present patch fields into a post.
func (s *PostService) UpdatePost(ctx context.Context, req *connect.Request[api.UpdatePostRequest]) (*connect.Response[api.PostResponse], error) {
	slog.Info("UpdatePost request received", "post_id", req.Msg.ID)

	patch, err := cleanPostPatch(req.Msg.Patch)
	if err != nil {
		slog.Warn("UpdatePost rejected", "post_id", req.Msg.ID, "error", err)
		return nil, err
	}

	post, ok := s.posts.Update(req.Msg.ID, patch)
	if !ok {
		return nil, notFound("post", req.Msg.ID)
	}

	slog.Info("Post updated", "post_id", post.ID)

	return connect.NewResponse(&api.PostResponse{Post: post}), nil
}

// ToggleLike flips the liked flag of a post.
func (s *PostService) ToggleLike(ctx context.Context, req *connect.Request[api.PostIDRequest]) (*connect.Response[api.PostResponse], error) {
	slog.Info("ToggleLike request received", "post_id", req.Msg.ID)
	return s.respond("Post like toggled", req.Msg.ID, s.posts.ToggleLike)
}

// ToggleArchive flips the archived flag of a post.
func (s *PostService) ToggleArchive(ctx context.Context, req *connect.Request[api.PostIDRequest]) (*connect.Response[api.PostResponse], error) {
	slog.Info("ToggleArchive request received", "post_id", req.Msg.ID)
	return s.respond("Post archive toggled", req.Msg.ID, s.posts.ToggleArchive)
}

// ArchivePost moves a post to the archive.
func (s *PostService) ArchivePost(ctx context.Context, req *connect.Request[api.PostIDRequest]) (*connect.Response[api.PostResponse], error) {
	slog.Info("ArchivePost request received", "post_id", req.Msg.ID)
	return s.respond("Post archived", req.Msg.ID, s.posts.Archive)
}

func (s *PostService) respond(msg, id string, fn func(string) (models.Post, bool)) (*connect.Response[api.PostResponse], error) {
	post, ok := fn(id)
	if !ok {
		return nil, notFound("post", id)
	}
	slog.Info(msg, "post_id", post.ID, "liked", post.Liked, "archived", post.Archived)
	return connect.NewResponse(&api.PostResponse{Post: post}), nil
}

// cleanPostPatch trims the text fields the edit form trims and rejects an
// empty title or master name.
func cleanPostPatch(p models.PostPatch) (models.PostPatch, error) {
	if title, ok := p.Title.Get(); ok {
		title, err := requireText("title", title)
		if err != nil {
			return p, err
		}
		p.Title = models.Some(title)
	}
	if name, ok := p.MasterName.Get(); ok {
		name, err := requireText("masterName", name)
		if err != nil {
			return p, err
		}
		p.MasterName = models.Some(name)
	}
	if v, ok := p.Excerpt.Get(); ok {
		p.Excerpt = models.Some(strings.TrimSpace(v))
	}
	if v, ok := p.Body.Get(); ok {
		p.Body = models.Some(strings.TrimSpace(v))
	}
	if v, ok := p.Category.Get(); ok {
		p.Category = models.Some(strings.TrimSpace(v))
	}
	if id, ok := p.ArticleID.Get(); ok && id != "" && !articles.Valid(articles.ID(id)) {
		return p, invalid("unknown article %q", id)
	}
	return p, nil
}
