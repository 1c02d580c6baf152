// Package domain contains core concepts of the mixnet chat client.
// This file defines outbound and inbound messages and their rules.
// Messages are built and validated right before being sent, then discarded.
package domain

import (
	"nym-chat/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AddressAlphabet is the base58 alphabet plus the two separators used by
// mixnet client addresses ("<identity>.<encryption>@<gateway>").
const AddressAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz.@"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("nymaddress", func(fl validator.FieldLevel) bool {
		return isAddressAlphabet(fl.Field().String())
	})
	return v
}

// OutboundMessage is a message the user wants to relay through the mixnet.
type OutboundMessage struct {
	Payload          string `validate:"required"`
	RecipientAddress string `validate:"required"`
	SurbCount        int    `validate:"gte=0"`
}

// NewOutboundMessage trims user input and checks it the same way the send
// action does: the address alphabet first, then non-empty content.
// Nothing returned here ever reaches the transport.
func NewOutboundMessage(recipient, payload string, surbs int) (OutboundMessage, error) {
	recipient = strings.TrimSpace(recipient)
	payload = strings.TrimSpace(payload)

	if !ValidateAddress(recipient) {
		return OutboundMessage{}, errors.ErrInvalidAddress
	}
	if surbs < 0 {
		return OutboundMessage{}, errors.ErrNegativeSurbs
	}
	message := OutboundMessage{Payload: payload, RecipientAddress: recipient, SurbCount: surbs}
	if !message.IsSendable() {
		return OutboundMessage{}, errors.ErrEmptyMessage
	}
	return message, nil
}

// ValidateAddress reports whether address is non-empty and made only of
// AddressAlphabet characters. Whitespace is rejected like any other symbol.
func ValidateAddress(address string) bool {
	return validate.Var(address, "required,nymaddress") == nil
}

// IsSendable is true when both the recipient and the payload are set.
// The address alphabet has already been checked by ValidateAddress.
func (m OutboundMessage) IsSendable() bool {
	return validate.StructExcept(m, "SurbCount") == nil
}

// Serialize builds the daemon "send" request.
func (m OutboundMessage) Serialize() SendRequest {
	return SendRequest{
		Type:      SendType,
		Recipient: m.RecipientAddress,
		Message:   m.Payload,
		Surbs:     m.SurbCount,
	}
}

// InboundMessage is a notification pushed by the daemon.
// A frame without a "message" field decodes to an empty Message.
type InboundMessage struct {
	Message string `json:"message"`
}

func isAddressAlphabet(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(AddressAlphabet, r) {
			return false
		}
	}
	return true
}
