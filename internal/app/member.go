package app

import (
	"context"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

var (
	_ ports.Banisher = (*Banisher)(nil)
	_ ports.Ignorer  = (*Ignorer)(nil)
)

// Banisher bans and unbans members.
type Banisher struct {
	pipeline *action.Pipeline
}

// NewBanisher creates a Banisher.
func NewBanisher(p *action.Pipeline) *Banisher {
	return &Banisher{pipeline: p}
}

// Ban fails with "member.already.banned" for a banned member.
func (s *Banisher) Ban(ctx context.Context, member forum.Member) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:     forum.KindMember,
		Verb:     "banning",
		Subject:  member,
		Requires: []func() error{action.Capability[forum.Member]("member", member)},
		Run: func(ctx context.Context) (any, error) {
			if err := action.Check(ctx, action.Deny(member.IsBanned(), CodeMemberAlreadyBanned)); err != nil {
				return nil, err
			}
			return member, member.Ban(ctx)
		},
	})
}

// Unban fails with "member.not.banned" for a member in good standing.
func (s *Banisher) Unban(ctx context.Context, member forum.Member) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:     forum.KindMember,
		Verb:     "unbanning",
		Subject:  member,
		Requires: []func() error{action.Capability[forum.Member]("member", member)},
		Run: func(ctx context.Context) (any, error) {
			if err := action.Check(ctx, action.Deny(!member.IsBanned(), CodeMemberNotBanned)); err != nil {
				return nil, err
			}
			return member, member.Unban(ctx)
		},
	})
}

// Ignorer maintains members' ignore lists. An ignored member cannot send
// private messages to the ignoring one.
type Ignorer struct {
	pipeline *action.Pipeline
}

// NewIgnorer creates an Ignorer.
func NewIgnorer(p *action.Pipeline) *Ignorer {
	return &Ignorer{pipeline: p}
}

// Ignore adds target to member's ignore list.
func (s *Ignorer) Ignore(ctx context.Context, member, target forum.Member) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:    forum.KindMember,
		Verb:    "ignoring",
		Subject: member,
		Requires: []func() error{
			action.Capability[forum.Member]("member", member),
			action.Capability[forum.Member]("target", target),
		},
		Run: func(ctx context.Context) (any, error) {
			err := action.Check(ctx,
				action.Deny(member.ID() == target.ID(), CodeMemberNoSelfIgnoring),
				ignoring(member, target, true, CodeMemberAlreadyIgnored),
			)
			if err != nil {
				return nil, err
			}
			return member, member.Ignore(ctx, target)
		},
	})
}

// Unignore removes target from member's ignore list.
func (s *Ignorer) Unignore(ctx context.Context, member, target forum.Member) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:    forum.KindMember,
		Verb:    "unignoring",
		Subject: member,
		Requires: []func() error{
			action.Capability[forum.Member]("member", member),
			action.Capability[forum.Member]("target", target),
		},
		Run: func(ctx context.Context) (any, error) {
			if err := action.Check(ctx, ignoring(member, target, false, CodeMemberNotIgnored)); err != nil {
				return nil, err
			}
			return member, member.Unignore(ctx, target)
		},
	})
}

// ignoring rejects with code when member's ignore state of target equals deny.
func ignoring(member, target forum.Member, deny bool, code string) action.Guard {
	return func(ctx context.Context) error {
		is, err := member.IsIgnoring(ctx, target)
		if err != nil {
			return err
		}
		if is == deny {
			return action.Reject(code)
		}
		return nil
	}
}
