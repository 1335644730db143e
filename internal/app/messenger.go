package app

import (
	"context"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

var _ ports.Messenger = (*Messenger)(nil)

// Messenger delivers private messages.
type Messenger struct {
	pipeline *action.Pipeline
}

// NewMessenger creates a Messenger.
func NewMessenger(p *action.Pipeline) *Messenger {
	return &Messenger{pipeline: p}
}

// Send delivers message from sender to receiver, optionally as a reply to
// replyTo. Checks run in order and the first failure wins:
//
//  1. sender banned: member.banned
//  2. receiver banned: member.banned
//  3. sender is receiver: message.no.self.sending
//  4. replyTo not exchanged between the two: message.wrong.reply
//  5. receiver ignores sender: message.receiver.rejected
//
// The checks and the write share one unit of work.
func (s *Messenger) Send(
	ctx context.Context,
	message forum.Message,
	sender, receiver forum.Member,
	replyTo forum.Message,
	data forum.MessageData,
) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:    forum.KindMessage,
		Verb:    "sending",
		Subject: message,
		Requires: []func() error{
			action.Capability[forum.Message]("message", message),
			action.Capability[forum.Member]("sender", sender),
			action.Capability[forum.Member]("receiver", receiver),
		},
		Atomic: true,
		Run: func(ctx context.Context) (any, error) {
			data = data.Normalize()
			err := action.Check(ctx,
				action.Deny(sender.IsBanned(), CodeMemberBanned),
				action.Deny(receiver.IsBanned(), CodeMemberBanned),
				action.Deny(sender.ID() == receiver.ID(), CodeMessageNoSelfSending),
				validReply(replyTo, sender, receiver),
				notIgnored(receiver, sender),
				valid(data),
			)
			if err != nil {
				return nil, err
			}
			if !action.Present(replyTo) {
				replyTo = nil
			}
			return message, message.Send(ctx, sender, receiver, replyTo, data)
		},
	})
}

func validReply(replyTo forum.Message, sender, receiver forum.Member) action.Guard {
	return func(ctx context.Context) error {
		if !action.Present(replyTo) {
			return nil
		}
		ok, err := replyTo.VerifyParticipants(ctx, sender, receiver)
		if err != nil {
			return err
		}
		if !ok {
			return action.Reject(CodeMessageWrongReply)
		}
		return nil
	}
}

func notIgnored(receiver, sender forum.Member) action.Guard {
	return func(ctx context.Context) error {
		ignoring, err := receiver.IsIgnoring(ctx, sender)
		if err != nil {
			return err
		}
		if ignoring {
			return action.Reject(CodeMessageReceiverReject)
		}
		return nil
	}
}
