package walletconnect

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// jsonObject is a decoded JSON object that remembers key order.
type jsonObject struct {
	keys   []string
	fields map[string]json.RawMessage
}

func (o *jsonObject) get(key string) (json.RawMessage, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.fields[key]
	return v, ok
}

// has reports whether key holds a truthy value.
func (o *jsonObject) has(key string) bool {
	v, ok := o.get(key)
	return ok && truthy(v)
}

// txID returns the transaction id marker, txID taking precedence over txid.
func (o *jsonObject) txID() (string, bool) {
	for _, key := range []string{"txID", "txid"} {
		if v, ok := o.get(key); ok && truthy(v) {
			return scalarText(v), true
		}
	}
	return "", false
}

// parseObject decodes raw as a JSON object, keeping keys in document order.
// A repeated key keeps its first position and its last value.
func parseObject(raw json.RawMessage) (*jsonObject, bool) {
	if firstByte(raw) != '{' {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, false
	}

	obj := &jsonObject{fields: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := tok.(string)
		if !ok {
			return nil, false
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}

		if _, seen := obj.fields[key]; !seen {
			obj.keys = append(obj.keys, key)
		}
		obj.fields[key] = value
	}

	return obj, true
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func isString(raw json.RawMessage) bool { return firstByte(raw) == '"' }
func isArray(raw json.RawMessage) bool  { return firstByte(raw) == '[' }
func isObject(raw json.RawMessage) bool { return firstByte(raw) == '{' }

// truthy follows JavaScript semantics: absent, null, false, 0 and "" are falsy.
func truthy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}

	switch trimmed[0] {
	case 'n', 'f':
		return false
	case '"':
		var s string
		return json.Unmarshal(trimmed, &s) == nil && s != ""
	case '{', '[', 't':
		return true
	default:
		f, err := strconv.ParseFloat(string(trimmed), 64)
		return err == nil && f != 0
	}
}

// scalarText renders strings unquoted and any other value as its JSON text.
func scalarText(raw json.RawMessage) string {
	var s string
	if isString(raw) && json.Unmarshal(raw, &s) == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}
