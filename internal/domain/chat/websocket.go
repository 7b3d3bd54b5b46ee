package chat

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// El front se sirve desde otro origen en dev.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsInbound struct {
	Text string `json:"text"`
}

type wsOutbound struct {
	Exchange *exchangeResponse `json:"exchange,omitempty"`
	Error    string            `json:"error,omitempty"`
}

func websocketHandler(svc *Service, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionID")

		// La sesión tiene que existir antes del upgrade para poder devolver 404.
		if _, err := svc.History(r.Context(), sessionID); err != nil {
			writeError(w, err)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade ya respondió al cliente.
			return
		}
		defer conn.Close()

		// mismo tope que los bodies de POST; si se excede, gorilla cierra con 1009
		conn.SetReadLimit(maxBodyBytes)

		ctx := r.Context()
		for {
			var in wsInbound
			if err := conn.ReadJSON(&in); err != nil {
				return
			}

			ex, err := svc.Send(ctx, sessionID, in.Text)
			if err != nil {
				msg := "internal error"
				switch {
				case errors.Is(err, ErrInvalidInput):
					msg = "text required"
				case errors.Is(err, ErrNotFound):
					msg = "session not found"
				}
				if werr := conn.WriteJSON(wsOutbound{Error: msg}); werr != nil {
					return
				}
				continue
			}
			rec.ChatReply(string(ex.Assistant.Intent))

			out := toExchangeResponse(ex)
			if err := conn.WriteJSON(wsOutbound{Exchange: &out}); err != nil {
				return
			}
		}
	}
}
