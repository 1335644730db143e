package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
)

// Member is a member row handle.
type Member struct {
	store *Store
	m     MemberModel
}

var _ forum.Member = (*Member)(nil)

// AddMember registers a new member. Accounts are owned by the identity
// system, so this is a plain insert outside the action pipeline.
func (s *Store) AddMember(ctx context.Context, username string) (*Member, error) {
	m := MemberModel{Username: username, CreatedAt: s.now()}
	if err := s.conn(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("registering member %q: %w", username, err)
	}
	return &Member{store: s, m: m}, nil
}

// Member loads the member stored under id.
func (s *Store) Member(ctx context.Context, id int64) (*Member, error) {
	m, err := load[MemberModel](ctx, s, forum.KindMember, id)
	if err != nil {
		return nil, err
	}
	return &Member{store: s, m: m}, nil
}

func (m *Member) ID() int64          { return m.m.ID }
func (m *Member) Model() MemberModel { return m.m }
func (m *Member) IsBanned() bool     { return m.m.Banned }

func (m *Member) Ban(ctx context.Context) error {
	return m.store.flag(ctx, &MemberModel{}, m.m.ID, "banned", true, &m.m.Banned)
}

func (m *Member) Unban(ctx context.Context) error {
	return m.store.flag(ctx, &MemberModel{}, m.m.ID, "banned", false, &m.m.Banned)
}

func (m *Member) IsIgnoring(ctx context.Context, target forum.Member) (bool, error) {
	var n int64
	err := m.store.conn(ctx).Model(&IgnoreModel{}).
		Where("member_id = ? AND target_id = ?", m.m.ID, target.ID()).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("reading ignore list: %w", err)
	}
	return n > 0, nil
}

func (m *Member) Ignore(ctx context.Context, target forum.Member) error {
	if err := m.store.require(ctx, &MemberModel{}, "target_id", target); err != nil {
		return err
	}
	row := IgnoreModel{MemberID: m.m.ID, TargetID: target.ID(), CreatedAt: m.store.now()}
	if err := m.store.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("ignoring member %d: %w", target.ID(), err)
	}
	return nil
}

func (m *Member) Unignore(ctx context.Context, target forum.Member) error {
	err := m.store.conn(ctx).
		Where("member_id = ? AND target_id = ?", m.m.ID, target.ID()).
		Delete(&IgnoreModel{}).Error
	if err != nil {
		return fmt.Errorf("unignoring member %d: %w", target.ID(), err)
	}
	return nil
}
