package draft

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// DefaultDebounce is the quiet period before a pending draft is written.
const DefaultDebounce = 2 * time.Second

const saveTimeout = 5 * time.Second

type pending struct {
	draft domain.TicketDraft
	timer *time.Timer
}

// Autosaver coalesces rapid draft updates and writes the latest one after a quiet period.
type Autosaver struct {
	store  Store
	delay  time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	pending map[string]*pending
}

// NewAutosaver wraps store with a debounce of delay.
func NewAutosaver(store Store, delay time.Duration, logger *zap.Logger) *Autosaver {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Autosaver{
		store:   store,
		delay:   delay,
		logger:  logger,
		now:     time.Now,
		pending: make(map[string]*pending),
	}
}

// Update schedules d to be saved once no further update arrives for the debounce period.
// Empty drafts cancel any pending save and are not written.
func (a *Autosaver) Update(id string, d domain.TicketDraft) error {
	if !ValidID(id) {
		return ErrInvalidID
	}
	// id outlives the request; it may alias a pooled request buffer.
	id = strings.Clone(id)
	a.mu.Lock()
	defer a.mu.Unlock()

	if p, ok := a.pending[id]; ok {
		p.timer.Stop()
		delete(a.pending, id)
	}
	if d.Empty() {
		return nil
	}

	p := &pending{draft: d}
	p.timer = time.AfterFunc(a.delay, func() { a.fire(id, p) })
	a.pending[id] = p
	return nil
}

func (a *Autosaver) fire(id string, p *pending) {
	a.mu.Lock()
	if a.pending[id] != p {
		a.mu.Unlock()
		return
	}
	delete(a.pending, id)
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if _, err := a.save(ctx, id, p.draft); err != nil {
		a.logger.Warn("draft autosave failed", zap.String("draft_id", id), zap.Error(err))
	}
}

// Flush writes d immediately, replacing any pending save, and returns the stored draft.
func (a *Autosaver) Flush(ctx context.Context, id string, d domain.TicketDraft) (*domain.TicketDraft, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}
	a.cancel(id)
	return a.save(ctx, id, d)
}

// Load returns the newest draft, preferring one that is still waiting to be written.
func (a *Autosaver) Load(ctx context.Context, id string) (*domain.TicketDraft, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}
	a.mu.Lock()
	p, ok := a.pending[id]
	a.mu.Unlock()
	if ok {
		d := p.draft
		return &d, nil
	}
	return a.store.Load(ctx, id)
}

// Discard cancels a pending save and clears the stored draft.
func (a *Autosaver) Discard(ctx context.Context, id string) error {
	if !ValidID(id) {
		return ErrInvalidID
	}
	a.cancel(id)
	return a.store.Clear(ctx, id)
}

// Close writes every pending draft. It is called on shutdown.
func (a *Autosaver) Close(ctx context.Context) {
	a.mu.Lock()
	drafts := make(map[string]domain.TicketDraft, len(a.pending))
	for id, p := range a.pending {
		p.timer.Stop()
		drafts[id] = p.draft
	}
	a.pending = make(map[string]*pending)
	a.mu.Unlock()

	for id, d := range drafts {
		if _, err := a.save(ctx, id, d); err != nil {
			a.logger.Warn("draft flush on shutdown failed", zap.String("draft_id", id), zap.Error(err))
		}
	}
}

func (a *Autosaver) cancel(id string) {
	a.mu.Lock()
	if p, ok := a.pending[id]; ok {
		p.timer.Stop()
		delete(a.pending, id)
	}
	a.mu.Unlock()
}

func (a *Autosaver) save(ctx context.Context, id string, d domain.TicketDraft) (*domain.TicketDraft, error) {
	saved := a.now().UTC()
	d.LastSaved = &saved
	if err := a.store.Save(ctx, id, d); err != nil {
		return nil, err
	}
	return &d, nil
}
