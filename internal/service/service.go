// Package service implements the Connect services on top of the ledger and
// the store.
package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/groceryroom/internal/middleware"
	"github.com/mmynk/groceryroom/internal/models"
	pb "github.com/mmynk/groceryroom/pkg/proto"
)

// groupReader is the part of the store both services need to resolve the
// caller's membership.
type groupReader interface {
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
}

// callerMembership loads a group and the caller's membership in it.
func callerMembership(ctx context.Context, store groupReader, groupID string) (*models.Group, *models.Member, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, nil, connect.NewError(connect.CodeUnauthenticated, errUnauthenticated)
	}
	if strings.TrimSpace(groupID) == "" {
		return nil, nil, invalidArgument("group_id required")
	}

	group, err := store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, nil, connectError(err)
	}
	member := group.MemberByUser(userID)
	if member == nil {
		return nil, nil, connect.NewError(connect.CodePermissionDenied, errNotMember)
	}
	return group, member, nil
}

func toPBMember(m models.Member) *pb.Member {
	return &pb.Member{Id: m.ID, UserId: m.UserID, Name: m.Name, JoinedAt: m.JoinedAt}
}

func toPBGroup(g *models.Group) *pb.Group {
	members := make([]*pb.Member, len(g.Members))
	for i, m := range g.Members {
		members[i] = toPBMember(m)
	}
	return &pb.Group{
		Id:         g.ID,
		Name:       g.Name,
		Icon:       g.Icon,
		InviteCode: g.InviteCode,
		CreatorId:  g.CreatorID,
		Members:    members,
		CreatedAt:  g.CreatedAt,
	}
}

// memberNames maps member ids to display names.
func memberNames(g *models.Group) map[string]string {
	names := make(map[string]string, len(g.Members))
	for _, m := range g.Members {
		names[m.ID] = m.Name
	}
	return names
}
