package models

// Group is a set of members sharing grocery expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Flat 4B").
	Name string

	// Icon is a short emoji shown next to the name.
	Icon string

	// InviteCode is an 8 character code other users join with.
	InviteCode string

	// CreatorID is the user who created the group.
	CreatorID string

	// Members is the roster in join order.
	Members []Member

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// Member is a participant in one group's ledger.
type Member struct {
	// ID identifies the member within the ledger (UUID format).
	ID string

	// GroupID is the group this membership belongs to.
	GroupID string

	// UserID is the account behind the membership, as carried in auth tokens.
	UserID string

	// Name is the display name inside the group.
	Name string

	// JoinedAt is the Unix timestamp when the member joined.
	JoinedAt int64
}

// MemberIDs returns the roster ids in join order.
func (g *Group) MemberIDs() []string {
	ids := make([]string, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.ID
	}
	return ids
}

// HasMember reports whether memberID is part of the roster.
func (g *Group) HasMember(memberID string) bool {
	for _, m := range g.Members {
		if m.ID == memberID {
			return true
		}
	}
	return false
}

// MemberByUser returns the membership of userID, or nil.
func (g *Group) MemberByUser(userID string) *Member {
	for i := range g.Members {
		if g.Members[i].UserID == userID {
			return &g.Members[i]
		}
	}
	return nil
}
