package domain

// Request types understood by the daemon's websocket control protocol.
const (
	SendType        = "send"
	SelfAddressType = "selfAddress"
)

type SelfAddressRequest struct {
	Type string `json:"type"`
}

func NewSelfAddressRequest() SelfAddressRequest {
	return SelfAddressRequest{Type: SelfAddressType}
}

// SelfAddressReply carries the address the daemon registered for this client.
type SelfAddressReply struct {
	Address string `json:"address"`
}

type SendRequest struct {
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
	Surbs     int    `json:"surbs"`
}
