package chat

import "context"

type Repository interface {
	Create(ctx context.Context, s Session) error
	GetByID(ctx context.Context, id string) (Session, error)
	AppendTurns(ctx context.Context, sessionID string, turns ...Turn) error
}
