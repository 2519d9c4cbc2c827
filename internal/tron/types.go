package tron

import (
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	ContractTypeTriggerSmartContract = "TriggerSmartContract"
	TypeURLTriggerSmartContract      = "type.googleapis.com/protocol.TriggerSmartContract"
)

// Transaction is the TronGrid JSON representation of a (signed) transaction.
type Transaction struct {
	Visible    bool     `json:"visible,omitempty"`
	TxID       string   `json:"txID,omitempty"`
	RawData    *RawData `json:"raw_data,omitempty"`
	RawDataHex string   `json:"raw_data_hex,omitempty"`
	Signature  []string `json:"signature,omitempty"`
}

// RawData is the unsigned body of a transaction.
// Contract has no omitempty: an empty list must survive a round-trip as [].
type RawData struct {
	Contract      []Contract `json:"contract"`
	RefBlockBytes string     `json:"ref_block_bytes,omitempty"`
	RefBlockNum   int64      `json:"ref_block_num,omitempty"`
	RefBlockHash  string     `json:"ref_block_hash,omitempty"`
	Expiration    int64      `json:"expiration,omitempty"`
	Timestamp     int64      `json:"timestamp,omitempty"`
	FeeLimit      int64      `json:"fee_limit,omitempty"`
	Data          string     `json:"data,omitempty"`
}

// Contract is a single contract-call descriptor inside raw_data.
type Contract struct {
	Type         string            `json:"type,omitempty"`
	Parameter    ContractParameter `json:"parameter"`
	PermissionID int32             `json:"Permission_id,omitempty"`
}

// ContractParameter keeps the value as raw JSON so contract kinds this
// package knows nothing about are passed through untouched.
type ContractParameter struct {
	Value   json.RawMessage `json:"value,omitempty"`
	TypeURL string          `json:"type_url,omitempty"`
}

// TriggerSmartContract is the parameter value of a smart contract call.
type TriggerSmartContract struct {
	OwnerAddress    string `json:"owner_address"`
	ContractAddress string `json:"contract_address"`
	Data            string `json:"data,omitempty"`
	CallValue       int64  `json:"call_value,omitempty"`
}

// TriggerSmartContract decodes the parameter value of a TriggerSmartContract call.
func (c Contract) TriggerSmartContract() (*TriggerSmartContract, error) {
	if c.Type != "" && c.Type != ContractTypeTriggerSmartContract {
		return nil, errors.Errorf("contract type %q is not %s", c.Type, ContractTypeTriggerSmartContract)
	}

	if len(c.Parameter.Value) == 0 {
		return nil, errors.New("contract parameter value is empty")
	}

	var value TriggerSmartContract
	if err := json.Unmarshal(c.Parameter.Value, &value); err != nil {
		return nil, errors.Wrap(err, "failed to decode trigger smart contract value")
	}

	return &value, nil
}

// ContractAddresses lists the target addresses of all smart contract calls.
func (tx *Transaction) ContractAddresses() []string {
	if tx == nil || tx.RawData == nil {
		return nil
	}

	addresses := make([]string, 0, len(tx.RawData.Contract))
	for _, contract := range tx.RawData.Contract {
		trigger, err := contract.TriggerSmartContract()
		if err != nil {
			continue
		}
		addresses = append(addresses, trigger.ContractAddress)
	}

	return addresses
}

// TriggerSmartContractRequest is the body of /wallet/triggersmartcontract.
type TriggerSmartContractRequest struct {
	OwnerAddress     string `json:"owner_address"`
	ContractAddress  string `json:"contract_address"`
	FunctionSelector string `json:"function_selector"`
	Parameter        string `json:"parameter"`
	FeeLimit         int64  `json:"fee_limit"`
	CallValue        int64  `json:"call_value"`
	Visible          bool   `json:"visible"`
}

// ReturnResult is the `result` object TronGrid attaches to build replies.
type ReturnResult struct {
	Result  bool   `json:"result"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// TriggerSmartContractResponse is the reply of /wallet/triggersmartcontract.
type TriggerSmartContractResponse struct {
	Result         *ReturnResult `json:"result,omitempty"`
	Transaction    *Transaction  `json:"transaction,omitempty"`
	ConstantResult []string      `json:"constant_result,omitempty"`
}

// Block is the subset of /wallet/getnowblock the probe needs.
type Block struct {
	BlockID     string `json:"blockID"`
	BlockHeader struct {
		RawData struct {
			Number     int64  `json:"number"`
			Timestamp  int64  `json:"timestamp"`
			ParentHash string `json:"parentHash"`
		} `json:"raw_data"`
	} `json:"block_header"`
}

// Number returns the block height.
func (b *Block) Number() int64 {
	return b.BlockHeader.RawData.Number
}
