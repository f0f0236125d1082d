package payment

// Method is the closed set of payment methods the storefront offers. The
// string values are the wire discriminator the checkout endpoint expects.
type Method string

const (
	MethodCreditCard Method = "CREDIT_CARD"
	MethodDebitCard  Method = "DEBIT_CARD"
	MethodMobile     Method = "MOBILE_PAYMENT"
	MethodCash       Method = "CASH"
)

func Methods() []Method {
	return []Method{MethodCreditCard, MethodDebitCard, MethodMobile, MethodCash}
}

func (m Method) Valid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodMobile, MethodCash:
		return true
	}
	return false
}

func (m Method) Label() string {
	switch m {
	case MethodCreditCard:
		return "Credit Card"
	case MethodDebitCard:
		return "Debit Card"
	case MethodMobile:
		return "Mobile Wallet"
	case MethodCash:
		return "Cash on Delivery"
	}
	return string(m)
}

// MobileProviders is the fixed set of wallet providers the mobile payment
// form accepts.
var MobileProviders = []string{
	"VODAFONE_CASH",
	"ORANGE_CASH",
	"ETISALAT_CASH",
	"INSTAPAY",
	"FAWRY",
}
