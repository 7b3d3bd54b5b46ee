package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"vet-care-assistant/internal/domain/chat"
)

type chatEntry struct {
	sess     chat.Session
	lastSeen time.Time
}

// chatRepo guarda sesiones mientras tengan actividad. Las vencidas se
// descartan al pasar por Create/GetByID/AppendTurns (sin goroutine de limpieza).
type chatRepo struct {
	mu   sync.Mutex
	byID map[string]chatEntry
	ttl  time.Duration // <= 0 => sin vencimiento
	now  func() time.Time
}

func NewChatRepo(ttl time.Duration) chat.Repository {
	return newChatRepo(ttl)
}

func newChatRepo(ttl time.Duration) *chatRepo {
	return &chatRepo{
		byID: make(map[string]chatEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (r *chatRepo) Create(ctx context.Context, s chat.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}

	now := r.now()
	r.evictExpired(now)

	if _, exists := r.byID[s.ID]; exists {
		return errors.New("session already exists")
	}

	s.Turns = cloneTurns(s.Turns)
	r.byID[s.ID] = chatEntry{sess: s, lastSeen: now}
	return nil
}

func (r *chatRepo) GetByID(ctx context.Context, id string) (chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.live(id, r.now())
	if !ok {
		return chat.Session{}, fmt.Errorf("session %q: %w", id, chat.ErrNotFound)
	}

	// copia para que el caller no comparta el backing array
	s := e.sess
	s.Turns = cloneTurns(s.Turns)
	return s, nil
}

func (r *chatRepo) AppendTurns(ctx context.Context, sessionID string, turns ...chat.Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	e, ok := r.live(sessionID, now)
	if !ok {
		return fmt.Errorf("session %q: %w", sessionID, chat.ErrNotFound)
	}
	e.sess.Turns = append(e.sess.Turns, turns...)
	e.lastSeen = now
	r.byID[sessionID] = e
	return nil
}

// live devuelve la entrada si sigue vigente; si venció la borra.
func (r *chatRepo) live(id string, now time.Time) (chatEntry, bool) {
	e, ok := r.byID[id]
	if !ok {
		return chatEntry{}, false
	}
	if r.expired(e, now) {
		delete(r.byID, id)
		return chatEntry{}, false
	}
	return e, true
}

func (r *chatRepo) evictExpired(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for id, e := range r.byID {
		if r.expired(e, now) {
			delete(r.byID, id)
		}
	}
}

func (r *chatRepo) expired(e chatEntry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastSeen) > r.ttl
}

func cloneTurns(in []chat.Turn) []chat.Turn {
	out := make([]chat.Turn, len(in))
	copy(out, in)
	return out
}
