package utils

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrMalformedResponse means no JSON payload could be recovered from a
// generative backend's reply. Treated like a backend failure: the caller
// moves on to the next model or a static fallback.
var ErrMalformedResponse = errors.New("malformed response: no JSON payload found")

var fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON recovers a JSON value from LLM output that may wrap it in
// markdown fences or surrounding prose. Three attempts, in order:
//  1. the text parses as-is;
//  2. the first fenced ``` block parses;
//  3. the slice between the first opening and last closing bracket parses.
// open/close select the expected value kind: "{","}" for objects,
// "[","]" for arrays.
func ExtractJSON(text, open, close string) (string, error) {
	s := strings.TrimSpace(text)

	if json.Valid([]byte(s)) {
		return s, nil
	}

	if m := fencedJSONRe.FindStringSubmatch(s); m != nil {
		inner := strings.TrimSpace(m[1])
		if json.Valid([]byte(inner)) {
			return inner, nil
		}
		// keep going with the fence contents: the brace slice below may
		// still salvage a payload with trailing prose inside the fence
		s = inner
	}

	first := strings.Index(s, open)
	last := strings.LastIndex(s, close)
	if first != -1 && last > first {
		candidate := s[first : last+1]
		if json.Valid([]byte(candidate)) {
			return candidate, nil
		}
	}

	return "", ErrMalformedResponse
}

// ExtractJSONObject is the common case: a single {...} payload.
func ExtractJSONObject(text string) (string, error) {
	return ExtractJSON(text, "{", "}")
}

// ExtractJSONArray recovers a [...] payload (workout plan responses).
func ExtractJSONArray(text string) (string, error) {
	return ExtractJSON(text, "[", "]")
}
