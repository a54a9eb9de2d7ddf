package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/groceryroom/internal/auth"
	"github.com/mmynk/groceryroom/internal/ledger"
	"github.com/mmynk/groceryroom/internal/middleware"
	"github.com/mmynk/groceryroom/internal/storage/sqlite"
	pb "github.com/mmynk/groceryroom/pkg/proto"
	"github.com/mmynk/groceryroom/pkg/proto/protoconnect"
)

const testSecret = "test-secret-at-least-16"

type testClients struct {
	groups protoconnect.GroupServiceClient
	ledger protoconnect.LedgerServiceClient
	jwt    *auth.JWTManager
}

// setupTestServer serves both services over httptest with a temp SQLite
// store and real bearer-token authentication.
func setupTestServer(t *testing.T, opts ...LedgerServiceOption) *testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager(testSecret, time.Hour)
	interceptors := connect.WithInterceptors(middleware.RequireAuth(jwtManager))

	ledgerSvc := NewLedgerService(store, ledger.New(store), opts...)
	groupSvc := NewGroupService(store)

	ledgerPath, ledgerHandler := protoconnect.NewLedgerServiceHandler(ledgerSvc, interceptors)
	groupPath, groupHandler := protoconnect.NewGroupServiceHandler(groupSvc, interceptors)

	mux := http.NewServeMux()
	mux.Handle(ledgerPath, ledgerHandler)
	mux.Handle(groupPath, groupHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testClients{
		groups: protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		ledger: protoconnect.NewLedgerServiceClient(http.DefaultClient, server.URL),
		jwt:    jwtManager,
	}
}

// as builds a request authenticated as userID.
func as[T any](t *testing.T, c *testClients, userID string, msg *T) *connect.Request[T] {
	t.Helper()
	token, err := c.jwt.Generate(userID, userID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

// roommates creates a group owned by alice with bob and carol and returns
// it along with the member ids keyed by user id.
func roommates(t *testing.T, c *testClients) (*pb.Group, map[string]string) {
	t.Helper()
	resp, err := c.groups.CreateGroup(context.Background(), as(t, c, "alice", &pb.CreateGroupRequest{
		Name:        "Roommates",
		CreatorName: "Alice",
		Members: []*pb.NewMember{
			{UserId: "bob", Name: "Bob"},
			{UserId: "carol", Name: "Carol"},
		},
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	ids := make(map[string]string)
	for _, m := range resp.Msg.Group.Members {
		ids[m.UserId] = m.Id
	}
	return resp.Msg.Group, ids
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("code: expected %v, got %v (%v)", want, connectErr.Code(), err)
	}
}

func TestCreateGroup(t *testing.T) {
	c := setupTestServer(t)

	group, ids := roommates(t, c)

	if group.Id == "" {
		t.Error("expected non-empty group ID")
	}
	if group.Name != "Roommates" {
		t.Errorf("name: expected 'Roommates', got '%s'", group.Name)
	}
	if len(group.Members) != 3 {
		t.Fatalf("members: expected 3, got %d", len(group.Members))
	}
	if group.Members[0].UserId != "alice" || group.Members[0].Name != "Alice" {
		t.Errorf("creator should be the first member, got %+v", group.Members[0])
	}
	if group.CreatorId != "alice" {
		t.Errorf("creator: expected 'alice', got '%s'", group.CreatorId)
	}
	if len(group.InviteCode) != 8 {
		t.Errorf("expected 8 character invite code, got %q", group.InviteCode)
	}
	if group.CreatedAt == 0 {
		t.Error("expected non-zero CreatedAt")
	}
	if len(ids) != 3 {
		t.Errorf("expected 3 distinct member ids, got %d", len(ids))
	}
}

func TestCreateGroup_DedupsMembers(t *testing.T) {
	c := setupTestServer(t)

	resp, err := c.groups.CreateGroup(context.Background(), as(t, c, "alice", &pb.CreateGroupRequest{
		Name: "Flat",
		Members: []*pb.NewMember{
			{UserId: "alice", Name: "Alice again"},
			{UserId: "bob", Name: "Bob"},
			{UserId: "bob", Name: "Bob twice"},
		},
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	members := resp.Msg.Group.Members
	if len(members) != 2 {
		t.Fatalf("members: expected 2, got %d", len(members))
	}
	if members[0].Name != "alice" {
		t.Errorf("creator name should default to the user id, got %q", members[0].Name)
	}
}

func TestCreateGroup_Validation(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	_, err := c.groups.CreateGroup(ctx, as(t, c, "alice", &pb.CreateGroupRequest{Name: "  "}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = c.groups.CreateGroup(ctx, as(t, c, "alice", &pb.CreateGroupRequest{
		Name:    "Flat",
		Members: []*pb.NewMember{{UserId: "bob"}},
	}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = c.groups.CreateGroup(ctx, connect.NewRequest(&pb.CreateGroupRequest{Name: "Flat"}))
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestGetGroup(t *testing.T) {
	c := setupTestServer(t)
	group, _ := roommates(t, c)

	resp, err := c.groups.GetGroup(context.Background(), as(t, c, "bob", &pb.GetGroupRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}

	if resp.Msg.Group.Id != group.Id {
		t.Errorf("ID mismatch: expected '%s', got '%s'", group.Id, resp.Msg.Group.Id)
	}
	if len(resp.Msg.Group.Members) != 3 {
		t.Errorf("members: expected 3, got %d", len(resp.Msg.Group.Members))
	}
}

func TestGetGroup_Errors(t *testing.T) {
	c := setupTestServer(t)
	group, _ := roommates(t, c)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    string
		groupID string
		want    connect.Code
	}{
		{"not found", "alice", "non-existent-id", connect.CodeNotFound},
		{"empty id", "alice", "", connect.CodeInvalidArgument},
		{"outsider", "mallory", group.Id, connect.CodePermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.groups.GetGroup(ctx, as(t, c, tt.user, &pb.GetGroupRequest{GroupId: tt.groupID}))
			assertCode(t, err, tt.want)
		})
	}
}

func TestAddMember(t *testing.T) {
	c := setupTestServer(t)
	group, _ := roommates(t, c)
	ctx := context.Background()

	resp, err := c.groups.AddMember(ctx, as(t, c, "bob", &pb.AddMemberRequest{
		GroupId: group.Id,
		UserId:  "dave",
		Name:    "Dave",
	}))
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if resp.Msg.Member.Id == "" {
		t.Error("expected non-empty member ID")
	}

	got, err := c.groups.GetGroup(ctx, as(t, c, "dave", &pb.GetGroupRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroup as new member failed: %v", err)
	}
	members := got.Msg.Group.Members
	if len(members) != 4 || members[3].UserId != "dave" {
		t.Errorf("expected dave appended as fourth member, got %+v", members)
	}

	_, err = c.groups.AddMember(ctx, as(t, c, "alice", &pb.AddMemberRequest{
		GroupId: group.Id,
		UserId:  "dave",
		Name:    "Dave",
	}))
	assertCode(t, err, connect.CodeAlreadyExists)

	_, err = c.groups.AddMember(ctx, as(t, c, "mallory", &pb.AddMemberRequest{
		GroupId: group.Id,
		UserId:  "eve",
		Name:    "Eve",
	}))
	assertCode(t, err, connect.CodePermissionDenied)
}
