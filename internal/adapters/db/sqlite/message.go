package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/forumcore/internal/domain"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
)

// Message is one participant's copy of a message row.
type Message struct {
	store  *Store
	m      MessageModel
	viewer int64
}

var _ forum.Message = (*Message)(nil)

// NewMessage returns an unsent message handle.
func (s *Store) NewMessage() *Message { return &Message{store: s} }

// Message loads viewer's copy of the message stored under id.
func (s *Store) Message(ctx context.Context, id, viewer int64) (*Message, error) {
	var m MessageModel
	err := s.conn(ctx).
		Where("id = ?", id).
		Where(s.db.Where("sender_id = ? AND NOT sender_deleted", viewer).
			Or("receiver_id = ? AND NOT receiver_deleted", viewer)).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("message %d for member %d: %w", id, viewer, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading message %d: %w", id, err)
	}
	return &Message{store: s, m: m, viewer: viewer}, nil
}

func (m *Message) ID() int64           { return m.m.ID }
func (m *Message) Model() MessageModel { return m.m }

func (m *Message) Send(ctx context.Context, sender, receiver forum.Member, replyTo forum.Message, data forum.MessageData) error {
	if err := m.store.require(ctx, &MemberModel{}, "receiver_id", receiver); err != nil {
		return err
	}

	row := MessageModel{
		SenderID:   sender.ID(),
		ReceiverID: receiver.ID(),
		Subject:    data.Subject,
		Content:    data.Content,
		SentAt:     m.store.now(),
	}
	if replyTo != nil {
		id := replyTo.ID()
		row.ReplyToID = &id
	}
	if err := m.store.conn(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	keep(ctx, &m.m)
	keep(ctx, &m.viewer)
	m.m, m.viewer = row, sender.ID()
	return nil
}

// VerifyParticipants reports whether this message went from receiver to
// sender, which makes it a valid target for sender's reply.
func (m *Message) VerifyParticipants(_ context.Context, sender, receiver forum.Member) (bool, error) {
	return m.m.SenderID == receiver.ID() && m.m.ReceiverID == sender.ID(), nil
}

// side returns the column prefix and flags of the viewer's copy.
func (m *Message) side() (prefix string, archived, deleted *bool) {
	if m.viewer == m.m.SenderID {
		return "sender", &m.m.SenderArchived, &m.m.SenderDeleted
	}
	return "receiver", &m.m.ReceiverArchived, &m.m.ReceiverDeleted
}

func (m *Message) IsArchived() bool {
	_, archived, _ := m.side()
	return *archived
}

func (m *Message) Archive(ctx context.Context) error {
	prefix, archived, _ := m.side()
	return m.store.flag(ctx, &MessageModel{}, m.m.ID, prefix+"_archived", true, archived)
}

func (m *Message) Revive(ctx context.Context) error {
	prefix, archived, _ := m.side()
	return m.store.flag(ctx, &MessageModel{}, m.m.ID, prefix+"_archived", false, archived)
}

// Delete removes the viewer's copy; the row goes once both copies are gone.
func (m *Message) Delete(ctx context.Context) error {
	prefix, _, deleted := m.side()
	if err := m.store.flag(ctx, &MessageModel{}, m.m.ID, prefix+"_deleted", true, deleted); err != nil {
		return err
	}
	err := m.store.conn(ctx).
		Where("id = ? AND sender_deleted AND receiver_deleted", m.m.ID).
		Delete(&MessageModel{}).Error
	if err != nil {
		return fmt.Errorf("deleting message %d: %w", m.m.ID, err)
	}
	return nil
}
