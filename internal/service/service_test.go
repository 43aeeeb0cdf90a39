package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/masterbook/internal/middleware"
	"github.com/mmynk/masterbook/internal/metrics"
	"github.com/mmynk/masterbook/internal/storage/sqlite"
	"github.com/mmynk/masterbook/internal/store"
	"github.com/mmynk/masterbook/pkg/api/apiconnect"
)

type testClients struct {
	baseURL string

	masters  *apiconnect.MasterServiceClient
	posts    *apiconnect.PostServiceClient
	groups   *apiconnect.GroupServiceClient
	articles *apiconnect.ArticleServiceClient
	profile  *apiconnect.ProfileServiceClient
	calendar *apiconnect.CalendarServiceClient
}

type testStores struct {
	masters  *store.MasterStore
	posts    *store.PostStore
	groups   *store.GroupStore
	calendar *store.CalendarStore
}

// setupTestServer serves every service over a temp SQLite database.
// Groups and events stay volatile, as they do by default.
func setupTestServer(t *testing.T) (testClients, testStores) {
	t.Helper()

	kv, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	stores := testStores{
		masters:  store.NewMasterStore(kv),
		posts:    store.NewPostStore(kv),
		groups:   store.NewGroupStore(nil),
		calendar: store.NewCalendarStore(nil),
	}
	profile := store.NewProfileStore(kv)

	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor(metrics.Nop{}))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewMasterServiceHandler(NewMasterService(stores.masters), interceptors))
	mux.Handle(apiconnect.NewPostServiceHandler(NewPostService(stores.posts), interceptors))
	mux.Handle(apiconnect.NewGroupServiceHandler(NewGroupService(stores.groups, stores.masters), interceptors))
	mux.Handle(apiconnect.NewArticleServiceHandler(NewArticleService(), interceptors))
	mux.Handle(apiconnect.NewProfileServiceHandler(NewProfileService(profile), interceptors))
	mux.Handle(apiconnect.NewCalendarServiceHandler(NewCalendarService(stores.calendar), interceptors))

	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		stores.masters.Flush()
		stores.posts.Flush()
		kv.Close()
	})

	return testClients{
		baseURL:  server.URL,
		masters:  apiconnect.NewMasterServiceClient(http.DefaultClient, server.URL),
		posts:    apiconnect.NewPostServiceClient(http.DefaultClient, server.URL),
		groups:   apiconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		articles: apiconnect.NewArticleServiceClient(http.DefaultClient, server.URL),
		profile:  apiconnect.NewProfileServiceClient(http.DefaultClient, server.URL),
		calendar: apiconnect.NewCalendarServiceClient(http.DefaultClient, server.URL),
	}, stores
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect.Error, got %T", err)
	}
	if connectErr.Code() != want {
		t.Errorf("expected %v, got %v", want, connectErr.Code())
	}
}

var ctx = context.Background()
