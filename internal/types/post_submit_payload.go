package types

import (
	"encoding/json"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// PostSubmitPayload is the body of POST /api/v1/walletconnect/submit.
type PostSubmitPayload struct {

	// Approve call parameters, required when the wallet returned signatures only
	Approval *PostSubmitPayloadApproval `json:"approval,omitempty"`

	// Network, defaults to the configured network
	Network string `json:"network,omitempty"`

	// Wallet response of any shape
	// Required: true
	Response json.RawMessage `json:"response"`
}

// Validate validates this post submit payload
func (m *PostSubmitPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateApproval(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateResponse(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PostSubmitPayload) validateApproval(formats strfmt.Registry) error {
	if swag.IsZero(m.Approval) { // not required
		return nil
	}

	if err := m.Approval.Validate(formats); err != nil {
		if ve, ok := err.(*errors.Validation); ok {
			return ve.ValidateName("approval")
		} else if ce, ok := err.(*errors.CompositeError); ok {
			return ce.ValidateName("approval")
		}
		return err
	}

	return nil
}

func (m *PostSubmitPayload) validateResponse(_ strfmt.Registry) error {

	if err := validate.Required("response", "body", m.Response); err != nil {
		return err
	}

	return nil
}

// PostSubmitPayloadApproval are the approve call parameters of a submit request.
type PostSubmitPayloadApproval struct {

	// Approved amount in base units
	// Required: true
	// Pattern: ^[0-9]+$
	Amount *string `json:"amount"`

	// TRC20 contract address
	// Required: true
	// Min Length: 1
	ContractAddress *string `json:"contract_address"`

	// Owner address that signed the approval
	// Required: true
	// Min Length: 1
	OwnerAddress *string `json:"owner_address"`

	// Spender address
	// Required: true
	// Min Length: 1
	SpenderAddress *string `json:"spender_address"`
}

// Validate validates this post submit payload approval
func (m *PostSubmitPayloadApproval) Validate(_ strfmt.Registry) error {
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

	if err := validateAddress("spender_address", m.SpenderAddress); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
