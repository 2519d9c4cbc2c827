package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostReconstructPayload is the body of POST /api/v1/walletconnect/reconstruct.
type PostReconstructPayload struct {

	// Approved amount in base units
	// Required: true
	// Pattern: ^[0-9]+$
	Amount *string `json:"amount"`

	// TRC20 contract address, base58check or hex
	// Required: true
	// Min Length: 1
	ContractAddress *string `json:"contract_address"`

	// Network, defaults to the configured network
	Network string `json:"network,omitempty"`

	// Owner address that signed the approval
	// Required: true
	// Min Length: 1
	OwnerAddress *string `json:"owner_address"`

	// Detached signature returned by the wallet
	// Required: true
	// Min Length: 1
	Signature *string `json:"signature"`

	// Spender address
	// Required: true
	// Min Length: 1
	SpenderAddress *string `json:"spender_address"`
}

// Validate validates this post reconstruct payload
func (m *PostReconstructPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validateAmount("amount", m.Amount); err != nil {
		res = append(res, err)
	}

	if err := validateAddress("contract_address", m.ContractAddress); err != nil {
		res = append(res, err)
	}

	if err := validateAddress("owner_address", m.OwnerAddress); err != nil {
		res = append(res, err)
	}

	if err := m.validateSignature(formats); err != nil {
		res = append(res, err)
	}

	if err := validateAddress("spender_address", m.SpenderAddress); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PostReconstructPayload) validateSignature(_ strfmt.Registry) error {

	if err := validate.Required("signature", "body", m.Signature); err != nil {
		return err
	}

	if err := validate.MinLength("signature", "body", *m.Signature, 1); err != nil {
		return err
	}

	return nil
}

func validateAmount(path string, amount *string) error {

	if err := validate.Required(path, "body", amount); err != nil {
		return err
	}

	if err := validate.Pattern(path, "body", *amount, `^[0-9]+$`); err != nil {
		return err
	}

	return nil
}

func validateAddress(path string, address *string) error {

	if err := validate.Required(path, "body", address); err != nil {
		return err
	}

	if err := validate.MinLength(path, "body", *address, 1); err != nil {
		return err
	}

	return nil
}
