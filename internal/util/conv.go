package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotAnID = errors.New("value is not an integer id")

// ParseUintParam parses a path id. ok is false for anything that is not a
// positive base-10 integer.
func ParseUintParam(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 || id > math.MaxUint32 {
		return 0, false
	}
	return uint(id), true
}

// ParseID coerces a JSON value to an integer id. Integers, floats (truncated)
// and base-10 integer strings are accepted; null, booleans, objects, arrays
// and fractional strings are not.
func ParseID(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, errNotAnID
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, errNotAnID
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, errNotAnID
		}
		return n, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return parseJSONNumber(string(raw))
	default:
		return 0, errNotAnID
	}
}

func parseJSONNumber(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotAnID
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, errNotAnID
	}
	return int64(f), nil
}
