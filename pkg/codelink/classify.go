package codelink

import (
	"encoding/json"
	"strings"
)

// Rejection markers, matched case-insensitively anywhere within any
// collected response text. They must match the runtime byte for byte.
const (
	MarkerNotCreative = "not creative mode"
	MarkerUnauthed    = "unauthed"
	MarkerInvalidData = "invalid nbt"
)

var rejections = []struct {
	marker string
	reason string
}{
	{MarkerNotCreative, "client is not in creative mode"},
	{MarkerUnauthed, "connection lacks the required API scope"},
	{MarkerInvalidData, "runtime rejected the item data payload"},
}

// classify matches one response text against the rejection markers.
func classify(text string) (*RejectionError, bool) {
	lower := strings.ToLower(text)
	for _, r := range rejections {
		if strings.Contains(lower, r.marker) {
			return &RejectionError{Marker: r.marker, Reason: r.reason, Response: text}, true
		}
	}
	return nil, false
}

// responseTexts extracts the candidate response texts from one inbound
// message: the raw text itself and, when it parses as JSON, every string
// value found at any depth (keys ignored).
func responseTexts(msg []byte) []string {
	texts := []string{string(msg)}
	var v any
	if err := json.Unmarshal(msg, &v); err == nil {
		texts = appendStringLeaves(texts, v)
	}
	return texts
}

func appendStringLeaves(acc []string, v any) []string {
	switch x := v.(type) {
	case string:
		acc = append(acc, x)
	case []any:
		for _, e := range x {
			acc = appendStringLeaves(acc, e)
		}
	case map[string]any:
		for _, e := range x {
			acc = appendStringLeaves(acc, e)
		}
	}
	return acc
}
