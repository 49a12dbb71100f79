package ai

import (
	"errors"
	"strings"
)

// ErrNoJSONObject is returned when a completion contains no JSON object at
// all. Models occasionally wrap their answer in markdown fences or prefix it
// with commentary; [ExtractJSONObject] tolerates both, but an answer with no
// braces is unusable.
var ErrNoJSONObject = errors.New("completion contains no JSON object")

// ExtractJSONObject returns the first top-level JSON object found in raw,
// stripping markdown code fences and any leading/trailing prose. It does not
// validate the JSON; the caller's unmarshal owns that.
func ExtractJSONObject(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", ErrNoJSONObject
	}

	return s[start : end+1], nil
}
