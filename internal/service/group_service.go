package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/groceryroom/internal/middleware"
	"github.com/mmynk/groceryroom/internal/models"
	"github.com/mmynk/groceryroom/internal/storage"
	pb "github.com/mmynk/groceryroom/pkg/proto"
	"github.com/mmynk/groceryroom/pkg/proto/protoconnect"
)

// GroupService implements the Connect GroupService
type GroupService struct {
	protoconnect.UnimplementedGroupServiceHandler
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a new group with the caller as its first member.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errUnauthenticated)
	}
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.Members),
	)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("group name required")
	}

	creatorName := strings.TrimSpace(req.Msg.CreatorName)
	if creatorName == "" {
		creatorName = userID
	}
	group := &models.Group{
		Name:      name,
		Icon:      req.Msg.Icon,
		CreatorID: userID,
		Members:   []models.Member{{UserID: userID, Name: creatorName}},
	}

	seen := map[string]bool{userID: true}
	for _, m := range req.Msg.Members {
		if m.UserId == "" || strings.TrimSpace(m.Name) == "" {
			return nil, invalidArgument("member user_id and name required")
		}
		if seen[m.UserId] {
			continue
		}
		seen[m.UserId] = true
		group.Members = append(group.Members, models.Member{UserID: m.UserId, Name: strings.TrimSpace(m.Name)})
	}

	// Save to storage (generates IDs, invite code and CreatedAt)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Group created", "group_id", group.ID, "members_count", len(group.Members))

	return connect.NewResponse(&pb.CreateGroupResponse{Group: toPBGroup(group)}), nil
}

// GetGroup retrieves a group the caller belongs to.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	group, _, err := callerMembership(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		slog.Warn("GetGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, err
	}

	return connect.NewResponse(&pb.GetGroupResponse{Group: toPBGroup(group)}), nil
}

// AddMember adds a user to a group the caller belongs to.
func (s *GroupService) AddMember(ctx context.Context, req *connect.Request[pb.AddMemberRequest]) (*connect.Response[pb.AddMemberResponse], error) {
	group, caller, err := callerMembership(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Msg.Name)
	if req.Msg.UserId == "" || name == "" {
		return nil, invalidArgument("user_id and name required")
	}

	member := &models.Member{GroupID: group.ID, UserID: req.Msg.UserId, Name: name}
	if err := s.store.AddMember(ctx, member); err != nil {
		slog.Error("AddMember failed", "group_id", group.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Member added",
		"group_id", group.ID,
		"member_id", member.ID,
		"added_by", caller.ID,
	)

	return connect.NewResponse(&pb.AddMemberResponse{Member: toPBMember(*member)}), nil
}
