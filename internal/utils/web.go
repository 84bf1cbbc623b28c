package utils

import (
	"encoding/json"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/errors"
	"github.com/greentrails-dev/greentrails/internal/logger"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		http.Error(w, err.Error(), e.StatusCode)
		return
	}
	// default error is 500
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// Decode unmarshals an opaque backend payload into a view type. The access
// layer never parses responses; decoding happens here, at the edge of the
// page handlers.
func Decode(data json.RawMessage, body any) error {
	if err := json.Unmarshal(data, body); err != nil {
		logger.Log.Error("cannot decode backend payload", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Backend response is invalid json", StatusCode: http.StatusBadGateway}
	}
	return nil
}
