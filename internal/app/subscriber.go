package app

import (
	"context"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

var _ ports.Subscriber = (*Subscriber)(nil)

// Subscriber manages thread subscriptions.
type Subscriber struct {
	pipeline *action.Pipeline
}

// NewSubscriber creates a Subscriber.
func NewSubscriber(p *action.Pipeline) *Subscriber {
	return &Subscriber{pipeline: p}
}

// Subscribe makes member follow thread.
func (s *Subscriber) Subscribe(ctx context.Context, subscription forum.Subscription, member forum.Member, thread forum.Thread) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:     forum.KindSubscription,
		Verb:     "subscribing",
		Subject:  thread,
		Requires: subscriptionArgs(subscription, member, thread),
		Run: func(ctx context.Context) (any, error) {
			if err := action.Check(ctx, subscribed(subscription, member, thread, true, CodeThreadSubscribed)); err != nil {
				return nil, err
			}
			return thread, subscription.Subscribe(ctx, member, thread)
		},
	})
}

// Unsubscribe stops member following thread.
func (s *Subscriber) Unsubscribe(ctx context.Context, subscription forum.Subscription, member forum.Member, thread forum.Thread) action.Result {
	return s.pipeline.Execute(ctx, action.Op{
		Kind:     forum.KindSubscription,
		Verb:     "unsubscribing",
		Subject:  thread,
		Requires: subscriptionArgs(subscription, member, thread),
		Run: func(ctx context.Context) (any, error) {
			if err := action.Check(ctx, subscribed(subscription, member, thread, false, CodeThreadNotSubscribed)); err != nil {
				return nil, err
			}
			return thread, subscription.Unsubscribe(ctx, member, thread)
		},
	})
}

func subscriptionArgs(subscription forum.Subscription, member forum.Member, thread forum.Thread) []func() error {
	return []func() error{
		action.Capability[forum.Subscription]("subscription", subscription),
		action.Capability[forum.Member]("member", member),
		action.Capability[forum.Thread]("thread", thread),
	}
}

func subscribed(sub forum.Subscription, member forum.Member, thread forum.Thread, deny bool, code string) action.Guard {
	return func(ctx context.Context) error {
		is, err := sub.IsSubscribed(ctx, member, thread)
		if err != nil {
			return err
		}
		if is == deny {
			return action.Reject(code)
		}
		return nil
	}
}
