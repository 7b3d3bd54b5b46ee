package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrInvalidJSON se devuelve cuando el body no se puede decodificar.
var ErrInvalidJSON = errors.New("invalid json")

// WriteJSON estaba duplicado por módulo; con seis módulos ya conviene el helper común.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// DecodeJSON decodifica un body acotado a maxBytes. Body vacío => ok (v queda en cero).
func DecodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, v any) error {
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return ErrInvalidJSON
	}
	return nil
}
