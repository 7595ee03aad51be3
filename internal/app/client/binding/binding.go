// Package binding связывает состояние авторизации с коллекцией закладок.
package binding

import (
	"context"
	"sync"

	"golang.org/x/exp/slog"

	"bookmarkhub/internal/app/client/remote"
)

type State int

const (
	Resolving State = iota
	Unauthenticated
	Authenticated
)

func (s State) String() string {
	switch s {
	case Resolving:
		return "resolving"
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Collection - то, чем управляет привязка при смене сессии.
type Collection interface {
	Load(ctx context.Context, ownerID string) error
	Clear()
}

type Binding struct {
	auth remote.Auth
	coll Collection
	log  *slog.Logger

	mu          sync.Mutex
	ctx         context.Context
	state       State
	session     *remote.Session
	resolved    chan struct{}
	unsubscribe func()
	started     bool
	stopOnce    sync.Once
}

func New(auth remote.Auth, coll Collection, log *slog.Logger) *Binding {
	return &Binding{
		auth:     auth,
		coll:     coll,
		log:      log.With("component", "binding"),
		ctx:      context.Background(),
		state:    Resolving,
		resolved: make(chan struct{}),
	}
}

// Start подписывается на смену сессии и один раз определяет начальное состояние.
// Событие, пришедшее во время определения, имеет приоритет над его результатом.
func (b *Binding) Start(ctx context.Context) error {
	b.mu.Lock()
	if b.started {
		b.mu.Unlock()
		return nil
	}
	b.started = true
	b.ctx = context.WithoutCancel(ctx)
	b.mu.Unlock()

	unsubscribe := b.auth.OnSessionChange(b.onChange)
	b.mu.Lock()
	b.unsubscribe = unsubscribe
	b.mu.Unlock()

	s, err := b.auth.CurrentSession(ctx)
	if err != nil {
		b.log.Warn("failed to resolve session, continuing signed out", "error", err)
		s = nil
	}

	b.apply(s, true)
	return nil
}

func (b *Binding) onChange(s *remote.Session) {
	b.apply(s, false)
}

// apply переводит привязку в новое состояние и выполняет побочный эффект
// перехода вне мьютекса.
func (b *Binding) apply(s *remote.Session, initial bool) {
	b.mu.Lock()
	if initial && b.state != Resolving {
		b.mu.Unlock()
		return
	}
	if s == nil {
		b.state = Unauthenticated
		b.session = nil
	} else {
		cp := *s
		b.state = Authenticated
		b.session = &cp
	}
	select {
	case <-b.resolved:
	default:
		close(b.resolved)
	}
	ctx := b.ctx
	b.mu.Unlock()

	if s == nil {
		b.log.Debug("session ended")
		b.coll.Clear()
		return
	}

	b.log.Debug("session started", "user_id", s.User.ID)
	if err := b.coll.Load(ctx, s.User.ID); err != nil {
		b.log.Debug("initial load failed", "user_id", s.User.ID, "error", err)
	}
}

// Wait блокируется, пока начальное состояние не определено.
func (b *Binding) Wait(ctx context.Context) error {
	select {
	case <-b.resolved:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Binding) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Session возвращает копию текущей сессии или nil.
func (b *Binding) Session() *remote.Session {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		return nil
	}
	cp := *b.session
	return &cp
}

// OwnerID возвращает id владельца текущей сессии.
func (b *Binding) OwnerID() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		return "", false
	}
	return b.session.User.ID, true
}

// Stop отписывается от событий авторизации. Повторный вызов безопасен.
func (b *Binding) Stop() {
	b.stopOnce.Do(func() {
		b.mu.Lock()
		unsubscribe := b.unsubscribe
		b.unsubscribe = nil
		b.mu.Unlock()

		if unsubscribe != nil {
			unsubscribe()
		}
	})
}
