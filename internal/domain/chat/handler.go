package chat

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vet-care-assistant/internal/i18n"
	"vet-care-assistant/internal/middleware"
	"vet-care-assistant/internal/platform/httpx"
)

// Recorder recibe el intent de cada respuesta (metrics). Puede ser nil.
type Recorder interface {
	ChatReply(intent string)
}

const maxBodyBytes = 64 << 10

func RegisterRoutes(r chi.Router, svc *Service, rec Recorder) {
	if rec == nil {
		rec = nopRecorder{}
	}

	r.Route("/chat", func(cr chi.Router) {
		cr.Post("/reply", replyHandler(svc, rec))
		cr.Get("/examples", examplesHandler())

		cr.Post("/sessions", startSessionHandler(svc))
		cr.Get("/sessions/{sessionID}/messages", historyHandler(svc))
		cr.Post("/sessions/{sessionID}/messages", sendHandler(svc, rec))

		// Misma conversación por websocket
		cr.Get("/sessions/{sessionID}/ws", websocketHandler(svc, rec))
	})
}

type replyRequest struct {
	Text string `json:"text"`
}

type replyResponse struct {
	Intent   Intent        `json:"intent"`
	Text     string        `json:"text"`
	Language i18n.Language `json:"language"`
}

type startSessionRequest struct {
	Language string `json:"language"` // opcional; si no, el del request
}

type sendRequest struct {
	Text string `json:"text"`
}

type turnResponse struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Intent    Intent    `json:"intent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type sessionResponse struct {
	ID        string         `json:"id"`
	Language  i18n.Language  `json:"language"`
	CreatedAt time.Time      `json:"created_at"`
	Messages  []turnResponse `json:"messages"`
}

type exchangeResponse struct {
	User      turnResponse `json:"user"`
	Assistant turnResponse `json:"assistant"`
}

// replyHandler godoc
// @Summary Respuesta puntual del asistente
// @Description Devuelve la respuesta enlatada para el texto según palabras clave (en/ta). Nunca vacía.
// @Tags chat
// @Accept json
// @Produce json
// @Param lang query string false "en | ta"
// @Param payload body replyRequest true "Pregunta"
// @Success 200 {object} replyResponse
// @Failure 400 {string} string "invalid json / text required"
// @Router /chat/reply [post]
func replyHandler(svc *Service, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req replyRequest
		if err := httpx.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		lang := middleware.GetLanguage(r.Context())
		reply, err := svc.Reply(r.Context(), req.Text, lang)
		if err != nil {
			writeError(w, err)
			return
		}
		rec.ChatReply(string(reply.Intent))

		httpx.WriteJSON(w, http.StatusOK, replyResponse{
			Intent:   reply.Intent,
			Text:     reply.Text,
			Language: lang,
		})
	}
}

func examplesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, Examples(middleware.GetLanguage(r.Context())))
	}
}

// startSessionHandler godoc
// @Summary Iniciar conversación
// @Description Crea una sesión en memoria con el mensaje de bienvenida en el idioma activo.
// @Tags chat
// @Accept json
// @Produce json
// @Param payload body startSessionRequest false "Idioma opcional"
// @Success 201 {object} sessionResponse
// @Router /chat/sessions [post]
func startSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req startSessionRequest
		if err := httpx.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		lang := middleware.GetLanguage(r.Context())
		if l, ok := i18n.ParseLanguage(req.Language); ok {
			lang = l
		}

		sess, err := svc.StartSession(r.Context(), lang)
		if err != nil {
			writeError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toSessionResponse(sess))
	}
}

func historyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.History(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toSessionResponse(sess))
	}
}

// sendHandler godoc
// @Summary Enviar mensaje
// @Description Agrega el turno del usuario y la respuesta del asistente a la sesión.
// @Tags chat
// @Accept json
// @Produce json
// @Param sessionID path string true "ID de la sesión"
// @Param payload body sendRequest true "Mensaje"
// @Success 200 {object} exchangeResponse
// @Failure 400 {string} string "invalid json / text required"
// @Failure 404 {string} string "session not found"
// @Router /chat/sessions/{sessionID}/messages [post]
func sendHandler(svc *Service, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendRequest
		if err := httpx.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ex, err := svc.Send(r.Context(), chi.URLParam(r, "sessionID"), req.Text)
		if err != nil {
			writeError(w, err)
			return
		}
		rec.ChatReply(string(ex.Assistant.Intent))

		httpx.WriteJSON(w, http.StatusOK, toExchangeResponse(ex))
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "text required", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toTurnResponse(t Turn) turnResponse {
	return turnResponse{
		ID:        t.ID,
		Sender:    t.Sender,
		Text:      t.Text,
		Intent:    t.Intent,
		Timestamp: t.Timestamp,
	}
}

func toSessionResponse(s Session) sessionResponse {
	out := make([]turnResponse, 0, len(s.Turns))
	for _, t := range s.Turns {
		out = append(out, toTurnResponse(t))
	}
	return sessionResponse{
		ID:        s.ID,
		Language:  s.Language,
		CreatedAt: s.CreatedAt,
		Messages:  out,
	}
}

func toExchangeResponse(ex Exchange) exchangeResponse {
	return exchangeResponse{
		User:      toTurnResponse(ex.User),
		Assistant: toTurnResponse(ex.Assistant),
	}
}

type nopRecorder struct{}

func (nopRecorder) ChatReply(string) {}
