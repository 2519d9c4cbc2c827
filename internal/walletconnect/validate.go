package walletconnect

// IsAlreadyBroadcasted reports whether the wallet already submitted the transaction.
func IsAlreadyBroadcasted(p Payload) bool {
	_, ok := p.(AlreadyBroadcast)
	return ok
}

// IsValid reports whether p can be acted upon: a transaction with a contract
// list and at least one signature, a non-empty signature list pending
// reconstruction, or an already-broadcast marker with its transaction id.
func IsValid(p Payload) bool {
	switch v := p.(type) {
	case SignedPayload:
		return v.broadcastable()
	case SignatureList:
		return len(v) > 0
	case AlreadyBroadcast:
		return v.TxID != ""
	default:
		return false
	}
}

// GetTransactionHash returns the transaction id of a successful broadcast.
func GetTransactionHash(r *BroadcastResult) (string, bool) {
	if r == nil || !r.Result || r.TxID == "" {
		return "", false
	}
	return r.TxID, true
}
