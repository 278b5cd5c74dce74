package utils

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/jiu45/JobPortal/pkg/errors"
)

// APIResponse is the envelope every HTTP endpoint answers with. Successful
// calls carry data, failed calls carry a message.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func RespondData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{Success: true, Data: data})
}

func RespondError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperrors.CodeOf(err).HTTPStatus())
	json.NewEncoder(w).Encode(APIResponse{Success: false, Message: apperrors.MessageOf(err)})
}
