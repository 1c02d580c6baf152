package domain

import (
	"encoding/json"
	"math/rand"
	"nym-chat/errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected bool
	}{
		{name: "Full client address", address: "8gk4Y7.CuSd3@Fo4f", expected: true},
		{name: "Whole alphabet", address: AddressAlphabet, expected: true},
		{name: "Empty", address: "", expected: false},
		{name: "Space inside", address: "not valid!", expected: false},
		{name: "Leading whitespace", address: " abc", expected: false},
		{name: "Zero is not base58", address: "abc0", expected: false},
		{name: "Capital I", address: "abcI", expected: false},
		{name: "Capital O", address: "abcO", expected: false},
		{name: "Lower l", address: "abcl", expected: false},
		{name: "Non ascii", address: "abcé", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ValidateAddress(tt.address))
		})
	}
}

func TestValidateAddress_Property(t *testing.T) {
	req := require.New(t)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	alphabet := []rune(AddressAlphabet)

	for i := 0; i < 500; i++ {
		// Given a random non-empty string of alphabet characters
		n := rnd.Intn(40) + 1
		var sb strings.Builder
		for j := 0; j < n; j++ {
			sb.WriteRune(alphabet[rnd.Intn(len(alphabet))])
		}
		valid := sb.String()
		req.True(ValidateAddress(valid), valid)

		// When any character outside the alphabet is inserted
		var outsider rune
		for {
			outsider = rune(rnd.Intn(0x250))
			if !strings.ContainsRune(AddressAlphabet, outsider) {
				break
			}
		}
		pos := rnd.Intn(len(valid) + 1)
		invalid := valid[:pos] + string(outsider) + valid[pos:]

		// Then the address is rejected
		req.False(ValidateAddress(invalid), "%q", invalid)
	}
}

func TestOutboundMessage_IsSendable(t *testing.T) {
	for _, surbs := range []int{0, 3, -1} {
		require.True(t, OutboundMessage{Payload: "hi", RecipientAddress: "abc", SurbCount: surbs}.IsSendable())
		require.False(t, OutboundMessage{Payload: "", RecipientAddress: "abc", SurbCount: surbs}.IsSendable())
		require.False(t, OutboundMessage{Payload: "hi", RecipientAddress: "", SurbCount: surbs}.IsSendable())
		require.False(t, OutboundMessage{SurbCount: surbs}.IsSendable())
	}

	// The alphabet is not checked again
	require.True(t, OutboundMessage{Payload: "hi", RecipientAddress: "not valid!"}.IsSendable())
}

func TestOutboundMessage_Serialize(t *testing.T) {
	req := require.New(t)
	message := OutboundMessage{Payload: "hi", RecipientAddress: "abc.def@xyz", SurbCount: 0}

	bytes, err := json.Marshal(message.Serialize())
	req.NoError(err)
	req.JSONEq(`{"type":"send","recipient":"abc.def@xyz","message":"hi","surbs":0}`, string(bytes))

	// Then the daemon side schema gets every field back
	var decoded SendRequest
	req.NoError(json.Unmarshal(bytes, &decoded))
	req.Equal(message.RecipientAddress, decoded.Recipient)
	req.Equal(message.Payload, decoded.Message)
	req.Equal(message.SurbCount, decoded.Surbs)
}

func TestNewOutboundMessage(t *testing.T) {
	tests := []struct {
		name      string
		recipient string
		payload   string
		surbs     int
		expected  OutboundMessage
		err       error
	}{
		{
			name:      "Trimmed input",
			recipient: "  abc.def@xyz \n",
			payload:   " hello ",
			expected:  OutboundMessage{Payload: "hello", RecipientAddress: "abc.def@xyz"},
		},
		{
			name:      "Surbs are kept",
			recipient: "abc",
			payload:   "hello",
			surbs:     5,
			expected:  OutboundMessage{Payload: "hello", RecipientAddress: "abc", SurbCount: 5},
		},
		{name: "Invalid address", recipient: "not valid!", payload: "hello", err: errors.ErrInvalidAddress},
		{name: "Empty address", recipient: "   ", payload: "hello", err: errors.ErrInvalidAddress},
		{name: "Empty payload", recipient: "abc", payload: "  ", err: errors.ErrEmptyMessage},
		{name: "Negative surbs", recipient: "abc", payload: "hello", surbs: -2, err: errors.ErrNegativeSurbs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			message, err := NewOutboundMessage(tt.recipient, tt.payload, tt.surbs)
			if tt.err != nil {
				req.ErrorIs(err, tt.err)
				return
			}
			req.NoError(err)
			req.Equal(tt.expected, message)
		})
	}
}

func TestInboundMessage_MissingField(t *testing.T) {
	req := require.New(t)
	var inbound InboundMessage
	req.NoError(json.Unmarshal([]byte(`{"type":"received","senderTag":"x"}`), &inbound))
	req.Equal("", inbound.Message)
}

func TestNewLogEntry(t *testing.T) {
	req := require.New(t)
	at := time.Date(2024, 3, 9, 7, 5, 1, 0, time.UTC)
	entry := NewLogEntry(Received, 4, "hello", at)

	req.Equal("07:05:01", entry.TimeOfDay)
	req.Equal("2024-03-09", entry.CalendarDate)
	req.Equal(uint64(4), entry.Seq)
	req.NotEqual(entry.ID, NewLogEntry(Received, 4, "hello", at).ID)
}
