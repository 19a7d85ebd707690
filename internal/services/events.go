// Package services holds the engagement core: the follow graph, the
// like/comment ledger with its denormalized counters, the notification
// fan-out and the feed composer. Handlers stay thin; every invariant lives
// here.
package services

import (
	"context"
	"log"

	"github.com/s4shantanu/socialconnect/internal/models"
)

// EventKind identifies the primary mutation an event describes.
type EventKind string

const (
	EventFollow  EventKind = "follow"
	EventLike    EventKind = "like"
	EventComment EventKind = "comment"
)

// Event is emitted once per newly created follow edge, like or comment.
// Repeat no-op mutations (double like, double follow) never emit.
type Event struct {
	Kind    EventKind
	ActorID uint
	// FollowedID is the followed user for follow events; zero otherwise.
	FollowedID uint
	// Post is the affected post for like/comment events; nil for follows.
	Post *models.Post
}

// Listener consumes events synchronously, in the calling goroutine.
type Listener interface {
	HandleEvent(ctx context.Context, ev Event) error
}

// Emitter dispatches events to its listeners in registration order. A
// listener error is logged and swallowed: the primary state change has
// already committed and must not be invalidated by a fan-out failure.
type Emitter struct {
	listeners []Listener
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

func (e *Emitter) Emit(ctx context.Context, ev Event) {
	for _, l := range e.listeners {
		if err := l.HandleEvent(ctx, ev); err != nil {
			log.Printf("event %s: listener error: %v", ev.Kind, err)
		}
	}
}
