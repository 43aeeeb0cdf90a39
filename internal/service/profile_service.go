package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/masterbook/internal/store"
	"github.com/mmynk/masterbook/pkg/api"
)

// ProfileService implements the Connect ProfileService
type ProfileService struct {
	profile *store.ProfileStore
}

// NewProfileService creates a new ProfileService backed by the profile store.
func NewProfileService(profile *store.ProfileStore) *ProfileService {
	return &ProfileService{profile: profile}
}

// GetProfile returns the stored profile, or the default one if none was saved.
func (s *ProfileService) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.ProfileResponse], error) {
	return connect.NewResponse(&api.ProfileResponse{Profile: s.profile.Get()}), nil
}

// SaveProfile stores the name and avatar. Unlike list mutations, the write is
// awaited and its failure is reported.
func (s *ProfileService) SaveProfile(ctx context.Context, req *connect.Request[api.SaveProfileRequest]) (*connect.Response[api.ProfileResponse], error) {
	slog.Info("SaveProfile request received", "name", req.Msg.Name)

	name, err := requireText("name", req.Msg.Name)
	if err != nil {
		return nil, err
	}

	p, err := s.profile.Save(ctx, name, req.Msg.AvatarURI)
	if err != nil {
		slog.Error("SaveProfile failed", "error", err)
		return nil, connect.NewError(connect.CodeUnavailable, err)
	}

	slog.Info("Profile saved", "name", p.Name)

	return connect.NewResponse(&api.ProfileResponse{Profile: p}), nil
}

// SetNotifications stores the reminder preference. The write is awaited.
func (s *ProfileService) SetNotifications(ctx context.Context, req *connect.Request[api.SetNotificationsRequest]) (*connect.Response[api.ProfileResponse], error) {
	slog.Info("SetNotifications request received", "enabled", req.Msg.Enabled)

	p, err := s.profile.SetNotifications(ctx, req.Msg.Enabled)
	if err != nil {
		slog.Error("SetNotifications failed", "error", err)
		return nil, connect.NewError(connect.CodeUnavailable, err)
	}

	slog.Info("Notifications set", "enabled", p.Notifications)

	return connect.NewResponse(&api.ProfileResponse{Profile: p}), nil
}
