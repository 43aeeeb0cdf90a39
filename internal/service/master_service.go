package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/masterbook/internal/models"
	"github.com/mmynk/masterbook/internal/store"
	"github.com/mmynk/masterbook/internal/views"
	"github.com/mmynk/masterbook/pkg/api"
)

// MasterService implements the Connect MasterService
type MasterService struct {
	masters *store.MasterStore
}

// NewMasterService creates a new MasterService backed by the master store.
func NewMasterService(masters *store.MasterStore) *MasterService {
	return &MasterService{masters: masters}
}

// ListMasters returns the masters of a category, favorites first.
func (s *MasterService) ListMasters(ctx context.Context, req *connect.Request[api.ListMastersRequest]) (*connect.Response[api.ListMastersResponse], error) {
	slog.Info("ListMasters request received", "category", req.Msg.Category)

	masters := views.Masters(s.masters.List(), strings.TrimSpace(req.Msg.Category))

	slog.Info("ListMasters successful", "count", len(masters))

	return connect.NewResponse(&api.ListMastersResponse{
		Masters:    masters,
		Categories: s.masters.Categories(),
	}), nil
}

// CreateMaster validates the form fields and adds a master.
func (s *MasterService) CreateMaster(ctx context.Context, req *connect.Request[api.CreateMasterRequest]) (*connect.Response[api.MasterResponse], error) {
	slog.Info("CreateMaster request received",
		"name", req.Msg.Name,
		"category", req.Msg.Category,
	)

	in, err := newMaster(req.Msg)
	if err != nil {
		slog.Warn("CreateMaster rejected", "error", err)
		return nil, err
	}

	master := s.masters.Add(in)

	slog.Info("Master created", "master_id", master.ID)

	return connect.NewResponse(&api.MasterResponse{Master: master}), nil
}

// ToggleFavorite flips the favorite flag of a master.
func (s *MasterService) ToggleFavorite(ctx context.Context, req *connect.Request[api.MasterIDRequest]) (*connect.Response[api.MasterResponse], error) {
	slog.Info("ToggleFavorite request received", "master_id", req.Msg.ID)

	master, ok := s.masters.ToggleFavorite(req.Msg.ID)
	if !ok {
		return nil, notFound("master", req.Msg.ID)
	}

	slog.Info("Master favorite toggled", "master_id", master.ID, "favorite", master.Favorite)

	return connect.NewResponse(&api.MasterResponse{Master: master}), nil
}

func newMaster(msg *api.CreateMasterRequest) (models.NewMaster, error) {
	var (
		in  models.NewMaster
		err error
	)
	if in.Name, err = requireText("name", msg.Name); err != nil {
		return in, err
	}
	if in.Role, err = requireText("role", msg.Role); err != nil {
		return in, err
	}
	if in.Price, err = requireText("price", msg.Price); err != nil {
		return in, err
	}
	if in.Category, err = requireText("category", msg.Category); err != nil {
		return in, err
	}
	if !msg.Currency.Valid() {
		return in, invalid("unsupported currency %q", msg.Currency)
	}
	in.Currency = msg.Currency
	in.PhotoURI = msg.PhotoURI
	return in, nil
}
