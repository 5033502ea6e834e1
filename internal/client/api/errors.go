package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/avoskan/taskdeck/internal/common"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Is lets callers match an APIError against the shared sentinels with
// errors.Is instead of inspecting the status code directly.
func (e *APIError) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case common.ErrNotFound:
		return e.Status == http.StatusNotFound
	default:
		return false
	}
}

// errorMessage extracts a human-readable message from an error response
// body. The backend shapes errors as {"detail": "..."} or
// {"detail": [{"msg": "..."}, ...]} for validation failures, occasionally
// {"message": "..."}. A non-JSON body is used verbatim; an empty body falls
// back to a generic message.
func errorMessage(status int, body []byte) string {
	fallback := fmt.Sprintf("request failed with status %d", status)

	if len(body) == 0 {
		return fallback
	}

	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		if text := strings.TrimSpace(string(body)); text != "" {
			return text
		}
		return fallback
	}

	if len(payload.Detail) > 0 {
		var s string
		if err := json.Unmarshal(payload.Detail, &s); err == nil && s != "" {
			return s
		}

		var list []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(payload.Detail, &list); err == nil {
			parts := make([]string, 0, len(list))
			for _, item := range list {
				if item.Msg != "" {
					parts = append(parts, item.Msg)
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, ", ")
			}
		}
	}

	if payload.Message != "" {
		return payload.Message
	}

	return fallback
}
