package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/masterbook/internal/models"
	"github.com/mmynk/masterbook/internal/store"
	"github.com/mmynk/masterbook/internal/views"
	"github.com/mmynk/masterbook/pkg/api"
)

// GroupService implements the Connect GroupService
type GroupService struct {
	groups  *store.GroupStore
	masters *store.MasterStore
}

// NewGroupService creates a new GroupService. Masters are used to resolve
// group members.
func NewGroupService(groups *store.GroupStore, masters *store.MasterStore) *GroupService {
	return &GroupService{groups: groups, masters: masters}
}

// CreateGroup creates a new group.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.GroupResponse], error) {
	slog.Info("CreateGroup request received",
		"title", req.Msg.Title,
		"members_count", len(req.Msg.MasterIDs),
	)

	title, err := requireText("title", req.Msg.Title)
	if err != nil {
		return nil, err
	}

	id := s.groups.Add(models.NewGroup{
		Title:       title,
		Description: strings.TrimSpace(req.Msg.Description),
		CoverURI:    req.Msg.CoverURI,
		MasterIDs:   req.Msg.MasterIDs,
	})

	group, ok := s.groups.GetByID(id)
	if !ok {
		slog.Error("Created group missing", "group_id", id)
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("group %q not stored", id))
	}

	slog.Info("Group created", "group_id", id, "persistent", s.groups.Persistent())

	return connect.NewResponse(&api.GroupResponse{Group: group}), nil
}

// GetGroup retrieves a group by ID together with the masters it resolves to.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GroupIDRequest]) (*connect.Response[api.GetGroupResponse], error) {
	slog.Info("GetGroup request received", "group_id", req.Msg.ID)

	group, ok := s.groups.GetByID(req.Msg.ID)
	if !ok {
		slog.Warn("GetGroup failed", "group_id", req.Msg.ID)
		return nil, notFound("group", req.Msg.ID)
	}

	members := views.GroupMembers(group, s.masters.List())

	slog.Info("GetGroup successful",
		"group_id", group.ID,
		"members_count", len(members),
		"dangling_count", len(group.MasterIDs)-len(members),
	)

	return connect.NewResponse(&api.GetGroupResponse{Group: group, Members: members}), nil
}

// ListGroups retrieves the groups of a tab.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	tab := views.ParseGroupTab(req.Msg.Tab)
	slog.Info("ListGroups request received", "tab", tab)

	groups := views.Groups(s.groups.List(), tab)

	slog.Info("ListGroups successful", "tab", tab, "count", len(groups))

	return connect.NewResponse(&api.ListGroupsResponse{Groups: groups}), nil
}

// UpdateGroup merges the present patch fields into a group.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.GroupResponse], error) {
	patch := req.Msg.GroupPatch
	if req.Msg.ClearCover {
		patch.CoverURI = models.Null[string]()
	}
	if req.Msg.ClearMasterIDs {
		patch.MasterIDs = models.Some([]string{})
	}
	slog.Info("UpdateGroup request received",
		"group_id", patch.ID,
		"clear_cover", patch.CoverURI.IsNull(),
	)

	if title, ok := patch.Title.Get(); ok {
		title, err := requireText("title", title)
		if err != nil {
			return nil, err
		}
		patch.Title = models.Some(title)
	}
	if desc, ok := patch.Description.Get(); ok {
		patch.Description = models.Some(strings.TrimSpace(desc))
	}

	group, ok := s.groups.Update(patch)
	if !ok {
		slog.Warn("UpdateGroup failed", "group_id", patch.ID)
		return nil, notFound("group", patch.ID)
	}

	slog.Info("Group updated", "group_id", group.ID)

	return connect.NewResponse(&api.GroupResponse{Group: group}), nil
}

// ArchiveGroup sets the archived flag, or flips it when no value is given.
func (s *GroupService) ArchiveGroup(ctx context.Context, req *connect.Request[api.ArchiveGroupRequest]) (*connect.Response[api.GroupResponse], error) {
	slog.Info("ArchiveGroup request received", "group_id", req.Msg.ID)

	group, ok := s.groups.Archive(req.Msg.ID, req.Msg.Value)
	if !ok {
		return nil, notFound("group", req.Msg.ID)
	}

	slog.Info("Group archive set", "group_id", group.ID, "archived", group.IsArchived)

	return connect.NewResponse(&api.GroupResponse{Group: group}), nil
}

// ToggleFavorite flips the favorite flag of a group.
func (s *GroupService) ToggleFavorite(ctx context.Context, req *connect.Request[api.GroupIDRequest]) (*connect.Response[api.GroupResponse], error) {
	slog.Info("ToggleFavorite request received", "group_id", req.Msg.ID)

	group, ok := s.groups.ToggleFavorite(req.Msg.ID)
	if !ok {
		return nil, notFound("group", req.Msg.ID)
	}

	slog.Info("Group favorite toggled", "group_id", group.ID, "favorite", group.IsFavorite)

	return connect.NewResponse(&api.GroupResponse{Group: group}), nil
}
