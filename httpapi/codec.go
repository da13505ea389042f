package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// decodeJSON reads and unmarshals r's body into a T.
func decodeJSON[T any](r *http.Request) (T, error) {
	var v T
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return v, fmt.Errorf("httpapi: failed to read request body: %w", err)
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("httpapi: failed to parse request body: %w", err)
	}
	return v, nil
}
