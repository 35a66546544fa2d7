package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// fallbackBody is written when the payload cannot be serialized. It is a
// valid error envelope so clients always receive {"message": ...}.
const fallbackBody = `{"message":"Internal Server Error"}`

// WriteJSON serializes data to JSON and writes it with the given status.
//
// The "Content-Type" header is set to "application/json; charset=utf-8"
// before the status line. If marshaling fails the response degrades to a
// 500 carrying a generic error envelope and the marshal error is returned.
//
// Returns the number of body bytes written and any marshal or write error.
//
// Example usage:
//
//	WriteJSON(w, models.HealthResponse{OK: true}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Message: "Not Found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(fallbackBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
