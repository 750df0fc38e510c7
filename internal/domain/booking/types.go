package booking

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentGooglePay  PaymentMethod = "google_pay"
	PaymentApplePay   PaymentMethod = "apple_pay"
)

func DefaultPaymentMethod() PaymentMethod {
	return PaymentCreditCard
}

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCreditCard, PaymentGooglePay, PaymentApplePay:
		return true
	default:
		return false
	}
}
