package views

import (
	"errors"

	"github.com/ZeyadMahfouzz/supermarket-client/payment"
)

// paymentView is the checkout flow: pick a method, fill its form, validate
// locally, submit once, and either show the confirmation or leave everything
// as it was so the user can edit and resubmit.
func (a *App) paymentView() {
	if result := a.cart.Fetch(); !result.Success {
		a.printf("%s\n", result.Message)
		return
	}
	cart := a.cart.Cart()
	if cart.IsEmpty() {
		a.printf("Your cart is empty. Add something first.\n")
		return
	}

	a.printf("\nOrder total: %.2f\n", cart.TotalPrice)
	dispatcher := payment.NewDispatcher()

	methods := payment.Methods()
	for i, method := range methods {
		a.printf("  %d) %s\n", i+1, method.Label())
	}
	choice, ok := a.promptInt("Payment method")
	if !ok || choice < 1 || choice > len(methods) {
		a.printf("Unknown payment method.\n")
		return
	}
	if err := dispatcher.Select(methods[choice-1]); err != nil {
		a.printf("%s\n", err.Error())
		return
	}

	switch dispatcher.Method() {
	case payment.MethodCreditCard:
		form := dispatcher.Credit()
		form.CardNumber = a.prompt("Card number")
		form.CardHolderName = a.prompt("Cardholder name")
		form.ExpiryDate = a.prompt("Expiry (MM/YY)")
		form.CVV = a.prompt("CVV")
	case payment.MethodDebitCard:
		form := dispatcher.Debit()
		form.CardNumber = a.prompt("Card number")
		form.CardHolder = a.prompt("Cardholder name")
		form.ExpiryDate = a.prompt("Expiry (MM/YY)")
		form.PIN = a.prompt("PIN")
	case payment.MethodMobile:
		form := dispatcher.Mobile()
		for i, provider := range payment.MobileProviders {
			a.printf("  %d) %s\n", i+1, provider)
		}
		idx, ok := a.promptInt("Provider")
		if ok && idx >= 1 && idx <= len(payment.MobileProviders) {
			form.Provider = payment.MobileProviders[idx-1]
		}
		form.PhoneNumber = a.prompt("Mobile number")
	case payment.MethodCash:
		dispatcher.Cash().Notes = a.prompt("Delivery notes (optional)")
	}

	request, err := dispatcher.BuildRequest()
	if err != nil {
		var validationErr *payment.ValidationError
		if errors.As(err, &validationErr) {
			a.printf("Please fix the following errors:\n")
			for i, violation := range validationErr.Violations {
				a.printf("  %d. %s\n", i+1, violation)
			}
		} else {
			a.printf("%s\n", err.Error())
		}
		return
	}

	result := a.cart.Checkout(request)
	if !result.Success {
		a.printf("Payment failed: %s\n", result.Message)
		return
	}

	a.printf("\nOrder confirmed!\n")
	a.printf("  Order id:       %d\n", result.OrderID)
	a.printf("  Total amount:   %.2f\n", result.TotalAmount)
	a.printf("  Payment method: %s\n", result.PaymentMethod)
	if result.TransactionID != "" {
		a.printf("  Transaction:    %s\n", result.TransactionID)
	}
}
