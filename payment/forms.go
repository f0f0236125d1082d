package payment

// Each payment method owns an independent form state. Switching methods in
// the dispatcher resets the variants that are no longer selected, so no
// half-typed card number survives a method change.

type CreditCardForm struct {
	CardNumber     string `validate:"required,cardnumber=16-19"`
	CardHolderName string `validate:"required"`
	ExpiryDate     string `validate:"required,expiry"`
	CVV            string `validate:"required,numeric,len=3"`
}

type DebitCardForm struct {
	CardNumber string `validate:"required,cardnumber=13-19"`
	CardHolder string `validate:"required,min=3,alphaspace"`
	ExpiryDate string `validate:"required,expiry,notpast"`
	PIN        string `validate:"required,numeric,min=3,max=4"`
}

type MobileForm struct {
	PhoneNumber string `validate:"required,egmobile"`
	Provider    string `validate:"required,oneof=VODAFONE_CASH ORANGE_CASH ETISALAT_CASH INSTAPAY FAWRY"`
}

// CashForm is always valid; the notes are optional delivery instructions.
type CashForm struct {
	Notes string
}
