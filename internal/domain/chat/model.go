package chat

import (
	"time"

	"vet-care-assistant/internal/i18n"
)

// Sender
// @Enum user, assistant
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Intent identifica la regla que produjo una respuesta.
type Intent string

const (
	IntentWelcome Intent = "welcome"
	IntentRabies  Intent = "rabies"
	IntentFever   Intent = "fever"
	IntentInjury  Intent = "injury"
	IntentPoultry Intent = "poultry"
	IntentCattle  Intent = "cattle"
	IntentPig     Intent = "pig"
	IntentGeneral Intent = "general"
)

// Turn es un mensaje de la conversación. Solo se agregan, nunca se editan.
type Turn struct {
	ID        string
	Sender    Sender
	Text      string
	Intent    Intent // vacío para turnos del usuario
	Timestamp time.Time
}

// Session vive solo en memoria mientras dure la sesión del cliente.
type Session struct {
	ID        string
	Language  i18n.Language
	Turns     []Turn
	CreatedAt time.Time
}

type Reply struct {
	Intent Intent
	Text   string
}

// Exchange es el par (pregunta, respuesta) producido por Send.
type Exchange struct {
	User      Turn
	Assistant Turn
}
