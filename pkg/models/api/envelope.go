package api

import (
	"encoding/json"
	"fmt"
)

// The vendor wraps every chart response in the same outer envelope:
//
//	{"ret": 0, "iRet": 0, "sMsg": "ok", "jData": {...}}
//
// Inside jData the shape varies per chart. Most report charts nest
// jData.data.{code,message,data}; the asset chart instead carries
// jData.{iRet,sMsg,data} with iRet as a string. Decode unwraps all of
// these down to the innermost data value.

// Decode parses a raw chart response and returns the innermost payload.
func Decode(raw []byte) (any, error) {
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if !isZero(root["ret"]) || !isZero(root["iRet"]) {
		return nil, fmt.Errorf("request rejected: %s", message(root, "sMsg"))
	}

	jdata, ok := root["jData"].(map[string]any)
	if !ok {
		return root, nil
	}

	// The asset chart signals errors on jData itself, with iRet as a
	// string. Check it before drilling further.
	if s, ok := jdata["iRet"].(string); ok {
		if s != "" && s != "0" {
			return nil, fmt.Errorf("data fetch failed: %s", message(jdata, "sMsg"))
		}
		return jdata["data"], nil
	}

	if inner, present := jdata["data"]; present {
		if m, ok := inner.(map[string]any); ok {
			if code, hasCode := m["code"]; hasCode {
				if !isZero(code) {
					return nil, fmt.Errorf("data fetch failed: %s", message(m, "msg", "message"))
				}
				return m["data"], nil
			}
		}
		return inner, nil
	}
	return jdata["data"], nil
}

// DecodeObject is Decode restricted to object payloads; non-object
// payloads (including empty lists, which the vendor sends instead of an
// empty object when there is no data) yield an empty map.
func DecodeObject(raw []byte) (map[string]any, error) {
	v, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}
	return map[string]any{}, nil
}

func isZero(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case float64:
		return n == 0
	case string:
		return n == "" || n == "0"
	case json.Number:
		return n.String() == "0"
	default:
		return false
	}
}

func message(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return "unknown error"
}
