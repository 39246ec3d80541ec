package utils

import (
	"encoding/json"
	"net/http"

	"TRAVELMATE_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a JSON error response to the HTTP response writer
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, detail string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: detail})
}
