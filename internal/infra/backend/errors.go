package backend

import (
	"bytes"
	"encoding/json"
	"net/http"

	domainerrors "pos/internal/domain/errors"
)

// decodeError maps a non-2xx response to the error taxonomy:
// a body of field -> messages becomes a FieldValidationError kept verbatim,
// anything else a BackendStatusError carrying "detail" when present.
func decodeError(status int, body []byte) error {
	trimmed := bytes.TrimSpace(body)

	var obj map[string]json.RawMessage
	if len(trimmed) > 0 && trimmed[0] == '{' && json.Unmarshal(trimmed, &obj) == nil {
		if raw, ok := obj["detail"]; ok && len(obj) == 1 {
			return domainerrors.NewBackendStatusError(status, rawText(raw))
		}

		if status >= http.StatusBadRequest && status < http.StatusInternalServerError && status != http.StatusUnauthorized {
			fields := make(map[string][]string, len(obj))
			for key, raw := range obj {
				fields[key] = rawMessages(raw)
			}
			if len(fields) > 0 {
				return domainerrors.NewFieldValidationError(status, fields)
			}
		}

		if raw, ok := obj["detail"]; ok {
			return domainerrors.NewBackendStatusError(status, rawText(raw))
		}
	}

	return domainerrors.NewBackendStatusError(status, "")
}

// rawMessages flattens a DRF error value: "msg", ["a","b"] or a nested object.
func rawMessages(raw json.RawMessage) []string {
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return list
	}

	var mixed []json.RawMessage
	if json.Unmarshal(raw, &mixed) == nil {
		out := make([]string, 0, len(mixed))
		for _, item := range mixed {
			out = append(out, rawText(item))
		}

		return out
	}

	return []string{rawText(raw)}
}

func rawText(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}

	return string(bytes.TrimSpace(raw))
}
