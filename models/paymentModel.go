package models

// Wire shapes for POST /cart/checkout. Exactly one payment payload must be
// populated, matching the paymentMethod discriminator. The debit card payload
// carries its pin in the cvv field because that is the field the backend DTO
// exposes.

type CreditCardPayment struct {
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
}

type DebitCardPayment struct {
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
}

type MobilePayment struct {
	PhoneNumber string `json:"phoneNumber"`
	Provider    string `json:"provider"`
}

type CashPayment struct {
	Confirmed bool   `json:"confirmed"`
	Notes     string `json:"notes"`
}

type CheckoutRequest struct {
	PaymentMethod     string             `json:"paymentMethod"`
	CreditCardPayment *CreditCardPayment `json:"creditCardPayment,omitempty"`
	DebitCardPayment  *DebitCardPayment  `json:"debitCardPayment,omitempty"`
	MobilePayment     *MobilePayment     `json:"mobilePayment,omitempty"`
	CashPayment       *CashPayment       `json:"cashPayment,omitempty"`
}

type CheckoutResponse struct {
	Message       string  `json:"message,omitempty"`
	OrderID       int64   `json:"orderId,omitempty"`
	PaymentID     int64   `json:"paymentId,omitempty"`
	TransactionID string  `json:"transactionId,omitempty"`
	PaymentStatus string  `json:"paymentStatus,omitempty"`
	TotalAmount   float64 `json:"totalAmount,omitempty"`
}

// Completed reports whether the backend committed the checkout. A terminal
// COMPLETED payment status or an order identifier both count as success.
func (r CheckoutResponse) Completed() bool {
	return r.PaymentStatus == "COMPLETED" || r.OrderID != 0
}
