package respond

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// Error writes the {"detail": ...} payload every failure uses.
func Error(w http.ResponseWriter, r *http.Request, code int, detail string) {
	JSON(w, r, code, map[string]string{"detail": detail})
}

// Unauthorized is Error with the bearer challenge header attached.
func Unauthorized(w http.ResponseWriter, r *http.Request, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	Error(w, r, http.StatusUnauthorized, detail)
}
