package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// inspect builds a handler that reads a markdown body, runs one inspector
// over it, and writes the result as JSON.
func (s *Server) inspect(run func(src []byte) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

		src, err := io.ReadAll(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				jsonError(w, fmt.Sprintf("body exceeds max size (%d bytes)", s.cfg.MaxBodyBytes),
					http.StatusRequestEntityTooLarge)
				return
			}
			jsonError(w, "failed to read body", http.StatusBadRequest)
			return
		}

		result, err := run(src)
		if err != nil {
			jsonError(w, "inspection failed: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			s.log.Error("failed to encode response", "error", err)
		}
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
