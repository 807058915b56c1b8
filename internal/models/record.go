package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Helpers for decoding the column maps produced by the repository layer.
// pgx returns uuid columns as [16]byte and array columns as []any, so the
// FromRecord constructors normalize through these instead of type-asserting
// inline.

func recordString(rec map[string]any, col string) string {
	switch v := rec[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

func recordStringPtr(rec map[string]any, col string) *string {
	if rec[col] == nil {
		return nil
	}
	s := recordString(rec, col)
	return &s
}

func recordUUID(rec map[string]any, col string) (uuid.UUID, error) {
	switch v := rec[col].(type) {
	case uuid.UUID:
		return v, nil
	case [16]byte:
		return uuid.UUID(v), nil
	case string:
		return uuid.Parse(v)
	case nil:
		return uuid.Nil, nil
	}
	return uuid.Nil, fmt.Errorf("column %s is not a uuid (got %T)", col, rec[col])
}

func recordTime(rec map[string]any, col string) time.Time {
	if t, ok := rec[col].(time.Time); ok {
		return t
	}
	return time.Time{}
}

func recordTimePtr(rec map[string]any, col string) *time.Time {
	if t, ok := rec[col].(time.Time); ok {
		return &t
	}
	return nil
}

func recordStringSlice(rec map[string]any, col string) []string {
	switch v := rec[col].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func recordJSON(rec map[string]any, col string) json.RawMessage {
	switch v := rec[col].(type) {
	case json.RawMessage:
		return v
	case []byte:
		return json.RawMessage(v)
	case string:
		return json.RawMessage(v)
	case nil:
		return nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		return raw
	}
}
