package handlers

import (
	"encoding/json"
	"net/http"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondMsg(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"msg": msg})
}
