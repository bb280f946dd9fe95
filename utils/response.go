package utils

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mapleleafu/cheesechase/models"
	"github.com/mapleleafu/cheesechase/responses"
)

func HandleSuccess(w http.ResponseWriter, response models.ApiResponse) {
	writeJSON(w, http.StatusOK, response)
}

// HandleError answers with the status and message of the first APIError in
// err's chain. Anything else is a 500 whose details stay in the log.
func HandleError(w http.ResponseWriter, err error) {
	var apiErr responses.APIError
	if !errors.As(err, &apiErr) {
		slog.Error("unhandled error in http handler", "err", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse(http.StatusText(http.StatusInternalServerError)))
		return
	}
	writeJSON(w, apiErr.StatusCode(), models.ErrorResponse(apiErr.Error()))
}

func writeJSON(w http.ResponseWriter, status int, body models.ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("failed to write response", "status", status, "err", err)
	}
}
