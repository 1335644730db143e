package memory

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/forumcore/internal/domain"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
)

// Member is a stored forum account.
type Member struct {
	store    *Store
	id       int64
	Username string
	Banned   bool
}

var _ forum.Member = (*Member)(nil)

// AddMember registers a new member. Accounts are owned by the identity
// system, so this is a plain insert outside the action pipeline.
func (s *Store) AddMember(ctx context.Context, username string) (*Member, error) {
	m := &Member{store: s, Username: username}
	if err := insert(ctx, s, "register member", s.members, m, func(id int64) { m.id = id }); err != nil {
		return nil, err
	}
	return m, nil
}

// Member returns the member stored under id.
func (s *Store) Member(id int64) (*Member, error) {
	var m *Member
	s.read(func() { m = s.members[id] })
	if m == nil {
		return nil, fmt.Errorf("member %d: %w", id, domain.ErrNotFound)
	}
	return m, nil
}

func (m *Member) ID() (id int64) {
	m.store.read(func() { id = m.id })
	return id
}

func (m *Member) IsBanned() (banned bool) {
	m.store.read(func() { banned = m.Banned })
	return banned
}

func (m *Member) Ban(ctx context.Context) error {
	return assign(ctx, m.store, fmt.Sprintf("ban member %d", m.ID()), &m.Banned, true)
}

func (m *Member) Unban(ctx context.Context) error {
	return assign(ctx, m.store, fmt.Sprintf("unban member %d", m.ID()), &m.Banned, false)
}

func (m *Member) IsIgnoring(_ context.Context, target forum.Member) (ignoring bool, err error) {
	key := pair{member: m.ID(), target: target.ID()}
	m.store.read(func() { _, ignoring = m.store.ignores[key] })
	return ignoring, nil
}

func (m *Member) Ignore(ctx context.Context, target forum.Member) error {
	if !stored(m.store, m.store.members, target) {
		return missing("target_id")
	}
	return setFlag(ctx, m.store, "ignore member", m.store.ignores, pair{member: m.ID(), target: target.ID()}, true)
}

func (m *Member) Unignore(ctx context.Context, target forum.Member) error {
	return setFlag(ctx, m.store, "unignore member", m.store.ignores, pair{member: m.ID(), target: target.ID()}, false)
}

// setFlag adds or removes key from a set as a compensable change.
func setFlag(ctx context.Context, s *Store, desc string, set map[pair]struct{}, key pair, on bool) error {
	var had bool
	return s.write(ctx, desc,
		func() error {
			_, had = set[key]
			if on {
				set[key] = struct{}{}
			} else {
				delete(set, key)
			}
			return nil
		},
		func() {
			if had {
				set[key] = struct{}{}
			} else {
				delete(set, key)
			}
		},
	)
}
