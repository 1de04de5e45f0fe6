// internal/poller/decode.go
package poller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// successField is the top-level flag the dashboard endpoints carry.
const successField = "success"

// Decode interprets one JSON payload.
//
// A present but falsy success flag never renders.
// An absent success flag renders only when requireSuccess is false.
// Numbers are truncated toward zero; numeric strings are accepted;
// anything else is treated as a missing field.
// Any data after the object makes the payload malformed.
func Decode(body []byte, requireSuccess bool) FetchResult {
	var raw map[string]json.RawMessage

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return FetchResult{Err: fmt.Errorf("poller: decode payload: %w", err)}
	}
	if raw == nil {
		return FetchResult{Err: errors.New("poller: payload is not a JSON object")}
	}
	// one object, nothing after it
	if _, err := dec.Token(); err != io.EOF {
		return FetchResult{Err: errors.New("poller: decode payload: trailing data after object")}
	}

	if flag, ok := raw[successField]; ok {
		if !truthy(flag) {
			return FetchResult{}
		}
	} else if requireSuccess {
		return FetchResult{}
	}

	values := make(map[string]int64, len(raw))
	for k, v := range raw {
		if k == successField {
			continue
		}
		if n, ok := toInt(v); ok {
			values[k] = n
		}
	}

	return FetchResult{Success: true, Values: values}
}

// truthy follows the loose truthiness the page scripts relied on.
func truthy(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	switch s {
	case "", "null", "false", "0", `""`:
		return false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

func toInt(raw json.RawMessage) (int64, bool) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return 0, false
	}

	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return 0, false
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}
