package payment

import "strings"

// Credentials identifies this storefront to the payment provider. Empty
// credentials are a supported mode: the server then only issues demo
// activations.
type Credentials struct {
	ClientID     string
	ClientSecret string
	APIBase      string
}

// Live reports whether real payments can be processed.
func (c Credentials) Live() bool {
	return strings.TrimSpace(c.ClientID) != "" && strings.TrimSpace(c.ClientSecret) != ""
}
