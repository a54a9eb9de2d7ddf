package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/groceryroom/internal/models"
	"github.com/mmynk/groceryroom/internal/storage"
)

// CreateGroup persists a new group and its initial roster.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.InviteCode == "" {
		group.InviteCode = storage.NewInviteCode()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO groups (id, name, icon, invite_code, creator_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		group.ID, group.Name, group.Icon, group.InviteCode, group.CreatorID, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	for i := range group.Members {
		member := &group.Members[i]
		member.GroupID = group.ID
		if member.JoinedAt == 0 {
			member.JoinedAt = group.CreatedAt
		}
		if err := insertMember(ctx, tx, member); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetGroup retrieves a group with its roster in join order.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, icon, invite_code, creator_id, created_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &group.Icon, &group.InviteCode, &group.CreatorID, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, group_id, user_id, name, joined_at FROM group_members WHERE group_id = ? ORDER BY joined_at, rowid",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.GroupID, &m.UserID, &m.Name, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		group.Members = append(group.Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group members: %w", err)
	}

	return group, nil
}

// AddMember appends a member to an existing group.
func (s *SQLiteStore) AddMember(ctx context.Context, member *models.Member) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM groups WHERE id = ?", member.GroupID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("group %s: %w", member.GroupID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check group existence: %w", err)
	}

	if member.JoinedAt == 0 {
		member.JoinedAt = time.Now().Unix()
	}
	return insertMember(ctx, s.db, member)
}

func insertMember(ctx context.Context, q querier, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	_, err := q.ExecContext(ctx,
		"INSERT INTO group_members (id, group_id, user_id, name, joined_at) VALUES (?, ?, ?, ?, ?)",
		member.ID, member.GroupID, member.UserID, member.Name, member.JoinedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("user %s: %w", member.UserID, storage.ErrAlreadyMember)
	}
	if err != nil {
		return fmt.Errorf("failed to insert group member: %w", err)
	}
	return nil
}
