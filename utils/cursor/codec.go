// Package cursor encodes and decodes the opaque keyset pagination token.
//
// A cursor is the URL-safe base64 (unpadded) encoding of a JSON object with
// exactly three keys in sorted order: {"id":<int>,"src":<source>,"ts":<RFC 3339>}.
// The source discriminator is required because regular and auto content do not
// share an id space.
package cursor

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"genonaut/domain"
)

// payload field order is the sorted key order, so encoding/json output is deterministic.
type payload struct {
	ID  int64  `json:"id"`
	Src string `json:"src"`
	TS  string `json:"ts"`
}

type rawPayload struct {
	ID  *int64  `json:"id"`
	Src *string `json:"src"`
	TS  *string `json:"ts"`
}

// naive timestamps are read as UTC
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Encode builds the cursor for a boundary row. Identical inputs always yield identical output.
func Encode(ts time.Time, id int64, src domain.SourceType) (string, error) {
	if !src.IsValid() {
		return "", &CursorError{Kind: InvalidSourceType, Detail: string(src)}
	}
	body, err := json.Marshal(payload{
		ID:  id,
		Src: string(src),
		TS:  FormatTimestamp(ts),
	})
	if err != nil {
		return "", &CursorError{Kind: InvalidPayload, Cause: err}
	}
	return base64.RawURLEncoding.EncodeToString(body), nil
}

// Decode parses a cursor produced by Encode.
func Decode(raw string) (domain.PageCursor, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.PageCursor{}, &CursorError{Kind: Empty}
	}

	body, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(trimmed, "="))
	if err != nil {
		return domain.PageCursor{}, &CursorError{Kind: Malformed, Cause: err}
	}

	var p rawPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return domain.PageCursor{}, &CursorError{Kind: InvalidPayload, Cause: err}
	}

	switch {
	case p.TS == nil:
		return domain.PageCursor{}, &CursorError{Kind: MissingField, Detail: "ts"}
	case p.ID == nil:
		return domain.PageCursor{}, &CursorError{Kind: MissingField, Detail: "id"}
	case p.Src == nil:
		return domain.PageCursor{}, &CursorError{Kind: MissingField, Detail: "src"}
	}

	src := domain.SourceType(*p.Src)
	if !src.IsValid() {
		return domain.PageCursor{}, &CursorError{Kind: InvalidSourceType, Detail: *p.Src}
	}

	ts, err := ParseTimestamp(*p.TS)
	if err != nil {
		return domain.PageCursor{}, &CursorError{Kind: InvalidPayload, Detail: "ts", Cause: err}
	}

	return domain.PageCursor{Timestamp: ts, ID: *p.ID, SourceType: src}, nil
}

// Validate reports whether raw is blank (first page) or decodes cleanly. It never fails.
func Validate(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return true
	}
	_, err := Decode(raw)
	return err == nil
}

// FormatTimestamp renders ts the way cursors carry it.
func FormatTimestamp(ts time.Time) string {
	return ts.UTC().Format(time.RFC3339Nano)
}

// ParseTimestamp accepts RFC 3339 and zone-less ISO-8601 timestamps.
func ParseTimestamp(raw string) (time.Time, error) {
	var firstErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, raw)
		if err == nil {
			return ts.UTC(), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
