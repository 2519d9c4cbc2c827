package test

const (
	// USDTContractAddress is the mainnet TRC20 USDT contract.
	USDTContractAddress = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"
	SpenderAddressHex   = "411111111111111111111111111111111111111111"
	OwnerAddressHex     = "412222222222222222222222222222222222222222"

	// SignedTransactionJSON is a minimal broadcastable approve transaction.
	SignedTransactionJSON = `{
		"txID": "c0ffee",
		"raw_data": {
			"contract": [{
				"type": "TriggerSmartContract",
				"parameter": {
					"value": {
						"owner_address": "412222222222222222222222222222222222222222",
						"contract_address": "41a614f803b6fd780986a42c78ec9c7f77e6ded13c",
						"data": "095ea7b3"
					},
					"type_url": "type.googleapis.com/protocol.TriggerSmartContract"
				}
			}],
			"ref_block_bytes": "ab12",
			"ref_block_hash": "0011223344556677",
			"expiration": 1700000060000,
			"timestamp": 1700000000000,
			"fee_limit": 200000000
		},
		"signature": ["s1"]
	}`

	// UnsignedApproveReply is what the node returns for a triggersmartcontract call.
	UnsignedApproveReply = `{
		"result": {"result": true},
		"transaction": {
			"visible": true,
			"txID": "deadbeef",
			"raw_data": {
				"contract": [{
					"type": "TriggerSmartContract",
					"parameter": {
						"value": {
							"owner_address": "412222222222222222222222222222222222222222",
							"contract_address": "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t",
							"data": "095ea7b3"
						},
						"type_url": "type.googleapis.com/protocol.TriggerSmartContract"
					}
				}],
				"ref_block_bytes": "cd34",
				"ref_block_hash": "8899aabbccddeeff",
				"expiration": 1700000060000,
				"timestamp": 1700000000000,
				"fee_limit": 200000000
			},
			"raw_data_hex": "0a02cd34"
		}
	}`
)
