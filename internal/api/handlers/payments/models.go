package payments

// HyperPayCheckoutRequest HTTP request model
type HyperPayCheckoutRequest struct {
	Email     string `json:"email,omitempty"`
	GivenName string `json:"givenName,omitempty"`
	Surname   string `json:"surname,omitempty"`
}
