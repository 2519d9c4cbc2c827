package walletconnect

import (
	"encoding/json"
	"strings"
)

// fallbackKeyFragments are matched case-insensitively against the keys of an
// otherwise unrecognized object, first key in document order wins.
var fallbackKeyFragments = []string{"transaction", "raw_data", "signature", "tx"}

// Extract locates the transaction payload inside a wallet response.
//
// Resolution order:
//  1. falsy response: nil
//  2. response.result object: its transaction, itself when it carries raw_data
//     and signature, the already-broadcast marker for a txID, itself when it
//     carries raw_data or signature
//  3. response.transaction
//  4. response itself when it carries raw_data and signature
//  5. the already-broadcast marker when response carries a txID
//  6. arrays as SignatureList
//  7. strings as DetachedSignature
//  8. the value of the first key mentioning transaction, raw_data, signature or tx
//  9. the response unchanged as Unrecognized
func Extract(raw json.RawMessage) Payload {
	if !truthy(raw) {
		return nil
	}

	obj, isObj := parseObject(raw)

	if isObj {
		if result, ok := obj.get("result"); ok {
			if p := extractFromResult(result); p != nil {
				return p
			}
		}

		if obj.has("transaction") {
			inner, _ := obj.get("transaction")
			return ParsePayload(inner)
		}

		if obj.has("raw_data") && obj.has("signature") {
			return decodeSigned(raw)
		}

		if txID, ok := obj.txID(); ok {
			return AlreadyBroadcast{TxID: txID}
		}
	}

	switch {
	case isArray(raw):
		return parseSignatureList(raw)
	case isString(raw):
		return DetachedSignature(scalarText(raw))
	}

	if isObj {
		if key, ok := matchFallbackKey(obj); ok {
			value, _ := obj.get(key)
			return ParsePayload(value)
		}
	}

	return Unrecognized(raw)
}

func extractFromResult(raw json.RawMessage) Payload {
	result, ok := parseObject(raw)
	if !ok {
		return nil
	}

	if result.has("transaction") {
		inner, _ := result.get("transaction")
		return ParsePayload(inner)
	}

	if result.has("raw_data") && result.has("signature") {
		return decodeSigned(raw)
	}

	if txID, ok := result.txID(); ok {
		return AlreadyBroadcast{TxID: txID}
	}

	if result.has("raw_data") || result.has("signature") {
		return decodeSigned(raw)
	}

	return nil
}

func matchFallbackKey(obj *jsonObject) (string, bool) {
	for _, key := range obj.keys {
		lower := strings.ToLower(key)
		for _, fragment := range fallbackKeyFragments {
			if strings.Contains(lower, fragment) {
				return key, true
			}
		}
	}
	return "", false
}
