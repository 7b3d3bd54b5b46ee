package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"vet-care-assistant/internal/i18n"
	"vet-care-assistant/internal/platform/task"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("chat session not found")
)

type Service struct {
	repo  Repository
	now   func() time.Time
	delay time.Duration // latencia artificial antes de responder
}

func NewService(repo Repository, delay time.Duration) *Service {
	if delay < 0 {
		delay = 0
	}
	return &Service{
		repo:  repo,
		now:   time.Now,
		delay: delay,
	}
}

// StartSession crea una sesión con el mensaje de bienvenida ya cargado.
func (s *Service) StartSession(ctx context.Context, lang i18n.Language) (Session, error) {
	if _, ok := i18n.ParseLanguage(string(lang)); !ok {
		lang = i18n.EN
	}

	now := s.now()
	sess := Session{
		ID:        uuid.NewString(),
		Language:  lang,
		CreatedAt: now,
		Turns: []Turn{{
			ID:        uuid.NewString(),
			Sender:    SenderAssistant,
			Text:      Welcome(lang),
			Intent:    IntentWelcome,
			Timestamp: now,
		}},
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Reply responde sin sesión (one-shot). Respeta el delay configurado.
func (s *Service) Reply(ctx context.Context, text string, lang i18n.Language) (Reply, error) {
	if strings.TrimSpace(text) == "" {
		return Reply{}, ErrInvalidInput
	}
	return s.replyAsync(ctx, text, lang).Await(ctx)
}

// Send espera la respuesta y recién entonces guarda ambos turnos juntos.
// Si el ctx se cancela durante el delay, el historial queda intacto.
func (s *Service) Send(ctx context.Context, sessionID, text string) (Exchange, error) {
	sessionID = strings.TrimSpace(sessionID)
	text = strings.TrimSpace(text)
	if sessionID == "" || text == "" {
		return Exchange{}, ErrInvalidInput
	}

	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return Exchange{}, err
	}

	userTurn := Turn{
		ID:        uuid.NewString(),
		Sender:    SenderUser,
		Text:      text,
		Timestamp: s.now(),
	}

	reply, err := s.replyAsync(ctx, text, sess.Language).Await(ctx)
	if err != nil {
		return Exchange{}, err
	}

	botTurn := Turn{
		ID:        uuid.NewString(),
		Sender:    SenderAssistant,
		Text:      reply.Text,
		Intent:    reply.Intent,
		Timestamp: s.now(),
	}
	if err := s.repo.AppendTurns(ctx, sess.ID, userTurn, botTurn); err != nil {
		return Exchange{}, err
	}

	return Exchange{User: userTurn, Assistant: botTurn}, nil
}

func (s *Service) History(ctx context.Context, sessionID string) (Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return Session{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, sessionID)
}

func (s *Service) replyAsync(ctx context.Context, text string, lang i18n.Language) *task.Future[Reply] {
	return task.Go(ctx, s.delay, func(context.Context) (Reply, error) {
		return Match(text, lang), nil
	})
}
