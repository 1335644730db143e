package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/forumcore/internal/domain"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
)

// side is one participant's copy of a message.
type side struct {
	archived bool
	deleted  bool
}

type messageRow struct {
	senderID   int64
	receiverID int64
	replyToID  int64
	subject    string
	content    string
	sentAt     time.Time
	sides      map[int64]*side
}

// Message is a message handle as seen by one participant. A handle returned
// by NewMessage becomes the sender's copy once sent.
type Message struct {
	store  *Store
	id     int64
	viewer int64
}

var _ forum.Message = (*Message)(nil)

// NewMessage returns an unsent message handle.
func (s *Store) NewMessage() *Message { return &Message{store: s} }

// Message returns viewer's copy of the message stored under id.
func (s *Store) Message(id, viewer int64) (*Message, error) {
	var ok bool
	s.read(func() {
		row := s.messages[id]
		if row == nil {
			return
		}
		sd := row.sides[viewer]
		ok = sd != nil && !sd.deleted
	})
	if !ok {
		return nil, fmt.Errorf("message %d for member %d: %w", id, viewer, domain.ErrNotFound)
	}
	return &Message{store: s, id: id, viewer: viewer}, nil
}

func (m *Message) ID() int64 { return m.id }

func (m *Message) Send(ctx context.Context, sender, receiver forum.Member, replyTo forum.Message, data forum.MessageData) error {
	if !stored(m.store, m.store.members, receiver) {
		return missing("receiver_id")
	}
	row := &messageRow{
		senderID:   sender.ID(),
		receiverID: receiver.ID(),
		subject:    data.Subject,
		content:    data.Content,
		sentAt:     m.store.now(),
		sides: map[int64]*side{
			sender.ID():   {},
			receiver.ID(): {},
		},
	}
	if replyTo != nil {
		row.replyToID = replyTo.ID()
	}
	m.viewer = sender.ID()
	return insert(ctx, m.store, "send message", m.store.messages, row, func(id int64) { m.id = id })
}

// VerifyParticipants reports whether this message went from receiver to
// sender, which makes it a valid target for sender's reply.
func (m *Message) VerifyParticipants(_ context.Context, sender, receiver forum.Member) (ok bool, err error) {
	m.store.read(func() {
		row := m.store.messages[m.id]
		ok = row != nil && row.senderID == receiver.ID() && row.receiverID == sender.ID()
	})
	return ok, nil
}

func (m *Message) IsArchived() (archived bool) {
	m.store.read(func() {
		if sd := m.side(); sd != nil {
			archived = sd.archived
		}
	})
	return archived
}

func (m *Message) Archive(ctx context.Context) error { return m.setSide(ctx, "archive", true, false) }
func (m *Message) Revive(ctx context.Context) error  { return m.setSide(ctx, "revive", false, false) }

// Delete removes the viewer's copy; the row goes once both copies are gone.
func (m *Message) Delete(ctx context.Context) error {
	return m.setSide(ctx, "delete", m.IsArchived(), true)
}

// side returns the viewer's copy. Callers hold the store lock.
func (m *Message) side() *side {
	row := m.store.messages[m.id]
	if row == nil {
		return nil
	}
	return row.sides[m.viewer]
}

func (m *Message) setSide(ctx context.Context, verb string, archived, deleted bool) error {
	var (
		old     side
		dropped *messageRow
	)
	return m.store.write(ctx, fmt.Sprintf("%s message %d", verb, m.id),
		func() error {
			sd := m.side()
			if sd == nil || sd.deleted {
				return domain.ErrNotFound
			}
			old = *sd
			sd.archived, sd.deleted = archived, deleted

			row := m.store.messages[m.id]
			for _, other := range row.sides {
				if !other.deleted {
					return nil
				}
			}
			dropped = row
			delete(m.store.messages, m.id)
			return nil
		},
		func() {
			if dropped != nil {
				m.store.messages[m.id] = dropped
			}
			*m.side() = old
		},
	)
}
