package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectDiscardsOtherForms(t *testing.T) {
	dispatcher := NewDispatcher()
	assert.Equal(t, MethodCreditCard, dispatcher.Method(), "credit card is the default method")

	dispatcher.Credit().CardNumber = "4111111111111111"
	dispatcher.Credit().CVV = "123"

	require.NoError(t, dispatcher.Select(MethodMobile))
	dispatcher.Mobile().PhoneNumber = "01012345678"

	require.NoError(t, dispatcher.Select(MethodCreditCard))
	assert.Empty(t, dispatcher.Credit().CardNumber, "switching away discards the credit form")
	assert.Empty(t, dispatcher.Mobile().PhoneNumber, "switching away discards the mobile form")
}

func TestSelectSameMethodKeepsState(t *testing.T) {
	dispatcher := NewDispatcher()
	dispatcher.Credit().CardNumber = "4111111111111111"

	require.NoError(t, dispatcher.Select(MethodCreditCard))
	assert.Equal(t, "4111111111111111", dispatcher.Credit().CardNumber)
}

func TestSelectRejectsUnknownMethod(t *testing.T) {
	dispatcher := NewDispatcher()
	err := dispatcher.Select(Method("BANK_TRANSFER"))
	require.Error(t, err)
	assert.Equal(t, MethodCreditCard, dispatcher.Method(), "failed select leaves the method unchanged")
}

func TestBuildRequestCreditCard(t *testing.T) {
	dispatcher := NewDispatcher()
	*dispatcher.Credit() = CreditCardForm{
		CardNumber:     "4111 1111 1111 1111",
		CardHolderName: " Jane Doe ",
		ExpiryDate:     "12/29",
		CVV:            "123",
	}

	request, err := dispatcher.BuildRequest()
	require.NoError(t, err)

	assert.Equal(t, "CREDIT_CARD", request.PaymentMethod)
	require.NotNil(t, request.CreditCardPayment)
	assert.Nil(t, request.DebitCardPayment)
	assert.Nil(t, request.MobilePayment)
	assert.Nil(t, request.CashPayment)

	assert.Equal(t, "4111111111111111", request.CreditCardPayment.CardNumber, "card number goes over the wire without spaces")
	assert.Equal(t, "Jane Doe", request.CreditCardPayment.CardholderName)
	assert.Equal(t, "123", request.CreditCardPayment.CVV)
}

func TestBuildRequestDebitPinTravelsAsCVV(t *testing.T) {
	dispatcher := NewDispatcher()
	require.NoError(t, dispatcher.Select(MethodDebitCard))
	*dispatcher.Debit() = DebitCardForm{
		CardNumber: "5200 8282 8282 8210",
		CardHolder: "Omar Hassan",
		ExpiryDate: "12/29",
		PIN:        "4321",
	}

	request, err := dispatcher.BuildRequest()
	require.NoError(t, err)

	require.NotNil(t, request.DebitCardPayment)
	assert.Equal(t, "DEBIT_CARD", request.PaymentMethod)
	assert.Equal(t, "5200828282828210", request.DebitCardPayment.CardNumber)
	assert.Equal(t, "4321", request.DebitCardPayment.CVV, "the debit pin is carried in the cvv wire field")
}

func TestBuildRequestCashConfirms(t *testing.T) {
	dispatcher := NewDispatcher()
	require.NoError(t, dispatcher.Select(MethodCash))
	dispatcher.Cash().Notes = " Ring the bell "

	request, err := dispatcher.BuildRequest()
	require.NoError(t, err)

	require.NotNil(t, request.CashPayment)
	assert.True(t, request.CashPayment.Confirmed)
	assert.Equal(t, "Ring the bell", request.CashPayment.Notes)
}

func TestBuildRequestRejectsInvalidForm(t *testing.T) {
	dispatcher := NewDispatcher()
	*dispatcher.Credit() = CreditCardForm{CardNumber: "411"}

	_, err := dispatcher.BuildRequest()
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "invalid forms surface as *ValidationError")
	assert.Contains(t, validationErr.Violations, "Card number must be between 16 and 19 digits")
	assert.Contains(t, validationErr.Error(), "Please fix the following errors:")
}
