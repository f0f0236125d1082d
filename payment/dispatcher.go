package payment

import (
	"fmt"
	"strings"

	"github.com/ZeyadMahfouzz/supermarket-client/models"
)

// Dispatcher owns the four payment form variants and the currently selected
// method. It validates entirely client-side before producing the checkout
// request; the backend may still reject a payload that passes here, and that
// comes back as an ordinary checkout failure.
type Dispatcher struct {
	method Method
	credit CreditCardForm
	debit  DebitCardForm
	mobile MobileForm
	cash   CashForm
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{method: MethodCreditCard}
}

func (d *Dispatcher) Method() Method {
	return d.method
}

// Select switches the active payment method and discards the in-progress
// field state of every other variant.
func (d *Dispatcher) Select(method Method) error {
	if !method.Valid() {
		return fmt.Errorf("unsupported payment method: %s", method)
	}
	if method == d.method {
		return nil
	}
	d.method = method
	if method != MethodCreditCard {
		d.credit = CreditCardForm{}
	}
	if method != MethodDebitCard {
		d.debit = DebitCardForm{}
	}
	if method != MethodMobile {
		d.mobile = MobileForm{}
	}
	if method != MethodCash {
		d.cash = CashForm{}
	}
	return nil
}

func (d *Dispatcher) Credit() *CreditCardForm { return &d.credit }
func (d *Dispatcher) Debit() *DebitCardForm   { return &d.debit }
func (d *Dispatcher) Mobile() *MobileForm     { return &d.mobile }
func (d *Dispatcher) Cash() *CashForm         { return &d.cash }

// Validate checks the active variant and returns every violated rule. A nil
// result means the form may be submitted.
func (d *Dispatcher) Validate() []string {
	switch d.method {
	case MethodCreditCard:
		form := d.credit
		form.CardNumber = stripSpaces(form.CardNumber)
		form.CardHolderName = strings.TrimSpace(form.CardHolderName)
		form.ExpiryDate = strings.TrimSpace(form.ExpiryDate)
		form.CVV = strings.TrimSpace(form.CVV)
		return validateForm(form)
	case MethodDebitCard:
		form := d.debit
		form.CardNumber = stripSpaces(form.CardNumber)
		form.CardHolder = strings.TrimSpace(form.CardHolder)
		form.ExpiryDate = strings.TrimSpace(form.ExpiryDate)
		form.PIN = strings.TrimSpace(form.PIN)
		return validateForm(form)
	case MethodMobile:
		form := d.mobile
		form.PhoneNumber = stripSpaces(form.PhoneNumber)
		form.Provider = strings.TrimSpace(form.Provider)
		return validateForm(form)
	case MethodCash:
		return nil
	}
	return []string{fmt.Sprintf("Unsupported payment method: %s", d.method)}
}

// BuildRequest validates the active form and assembles the checkout request
// with exactly one populated payload. Card numbers go over the wire with
// whitespace stripped; the debit pin travels in the cvv field.
func (d *Dispatcher) BuildRequest() (models.CheckoutRequest, error) {
	if violations := d.Validate(); len(violations) > 0 {
		return models.CheckoutRequest{}, &ValidationError{Violations: violations}
	}

	request := models.CheckoutRequest{PaymentMethod: string(d.method)}
	switch d.method {
	case MethodCreditCard:
		request.CreditCardPayment = &models.CreditCardPayment{
			CardNumber:     stripSpaces(d.credit.CardNumber),
			CardholderName: strings.TrimSpace(d.credit.CardHolderName),
			ExpiryDate:     strings.TrimSpace(d.credit.ExpiryDate),
			CVV:            strings.TrimSpace(d.credit.CVV),
		}
	case MethodDebitCard:
		request.DebitCardPayment = &models.DebitCardPayment{
			CardNumber:     stripSpaces(d.debit.CardNumber),
			CardholderName: strings.TrimSpace(d.debit.CardHolder),
			ExpiryDate:     strings.TrimSpace(d.debit.ExpiryDate),
			CVV:            strings.TrimSpace(d.debit.PIN),
		}
	case MethodMobile:
		request.MobilePayment = &models.MobilePayment{
			PhoneNumber: stripSpaces(d.mobile.PhoneNumber),
			Provider:    strings.TrimSpace(d.mobile.Provider),
		}
	case MethodCash:
		request.CashPayment = &models.CashPayment{
			Confirmed: true,
			Notes:     strings.TrimSpace(d.cash.Notes),
		}
	default:
		return models.CheckoutRequest{}, fmt.Errorf("unhandled payment method: %s", d.method)
	}
	return request, nil
}

func stripSpaces(value string) string {
	return strings.Join(strings.Fields(value), "")
}
