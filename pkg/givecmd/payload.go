package givecmd

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// payloadVersion is the format version stamped into generated payloads.
const payloadVersion = 1

// codePayload is the generated-mode payload shape.
type codePayload struct {
	Author      string `json:"author"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     int    `json:"version"`
	Code        string `json:"code"`
}

// buildPayload produces the metadata payload JSON for one export unit,
// choosing raw mode when a literal payload is present.
func (b *Builder) buildPayload(item *TemplateItem) (string, error) {
	if item.RawPayload != "" {
		return normalizeRawPayload(item.RawPayload)
	}
	return b.generatePayload(item)
}

// normalizeRawPayload validates and canonicalizes a caller-supplied literal
// payload: trim, unwrap one layer of surrounding matching quotes when the
// text does not already parse, and unwrap a JSON-encoded string exactly
// once. The result must be an object.
func normalizeRawPayload(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		if u, ok := unwrapQuotes(s); ok {
			s = u
		}
		v = nil
		if err := unmarshalLoose([]byte(s), &v); err != nil {
			return "", &ValidationError{Msg: "raw payload is not valid JSON", Err: err}
		}
	}

	// A payload pasted as a JSON string gets one extra unwrap, never more.
	if inner, ok := v.(string); ok {
		v = nil
		if err := json.Unmarshal([]byte(inner), &v); err != nil {
			return "", &ValidationError{Msg: "raw payload string is not valid JSON", Err: err}
		}
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return "", &ValidationError{Msg: "raw payload must be a JSON object"}
	}

	out, err := json.Marshal(obj)
	if err != nil {
		return "", &ValidationError{Msg: "re-encode raw payload", Err: err}
	}
	return string(out), nil
}

// unwrapQuotes strips one layer of surrounding matching quote characters.
func unwrapQuotes(s string) (string, bool) {
	if len(s) >= 2 {
		if q := s[0]; (q == '"' || q == '\'') && s[len(s)-1] == q {
			return s[1 : len(s)-1], true
		}
	}
	return s, false
}

// unmarshalLoose parses JSON, repairing it first when it is merely sloppy
// (single quotes, trailing commas) rather than rejecting it outright.
func unmarshalLoose(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}
	if _, ok := err.(*json.SyntaxError); ok {
		fixed, rerr := jsonrepair.JSONRepair(string(data))
		if rerr != nil {
			return err
		}
		return json.Unmarshal([]byte(fixed), v)
	}
	return err
}

// generatePayload compresses the code template and wraps it in the payload
// envelope.
func (b *Builder) generatePayload(item *TemplateItem) (string, error) {
	if item.Template == nil {
		return "", &ValidationError{Msg: "export unit carries neither a template nor a raw payload"}
	}

	tplJSON, err := json.Marshal(item.Template)
	if err != nil {
		return "", &PayloadError{Err: err}
	}

	compressed, err := b.compressor().Compress(tplJSON)
	if err != nil {
		return "", &PayloadError{Err: err}
	}

	p := codePayload{
		Author:      b.Author,
		Name:        item.Name,
		Description: item.Description,
		Version:     payloadVersion,
		Code:        base64.StdEncoding.EncodeToString(compressed),
	}
	out, err := json.Marshal(p)
	if err != nil {
		return "", &PayloadError{Err: err}
	}
	return string(out), nil
}
