package utils

import "errors"

// Supported payment methods (closed set).
const (
	MethodAirtelMoney = "airtel_money"
	MethodOrangeMoney = "orange_money"
	MethodMpesa       = "mpesa"
	MethodVisa        = "visa"
	MethodMastercard  = "mastercard"
	MethodCash        = "cash"
)

// AppFee is the fixed platform fee applied to every payment.
const AppFee = 2.0

var ErrUnsupportedMethod = errors.New("unsupported payment method")

var SupportedMethods = []string{
	MethodAirtelMoney, MethodOrangeMoney, MethodMpesa,
	MethodVisa, MethodMastercard, MethodCash,
}

func IsSupportedMethod(method string) bool {
	for _, m := range SupportedMethods {
		if m == method {
			return true
		}
	}
	return false
}

// ComputeCommission returns the platform fee plus the gateway surcharge:
// 2% of amount for cards, 1% for mobile money, nothing for cash. No rounding
// is applied here; presentation decides.
func ComputeCommission(amount float64, method string) (float64, error) {
	gateway := 0.0
	switch method {
	case MethodVisa, MethodMastercard:
		gateway = 0.02 * amount
	case MethodAirtelMoney, MethodOrangeMoney, MethodMpesa:
		gateway = 0.01 * amount
	case MethodCash:
	default:
		return 0, ErrUnsupportedMethod
	}
	return AppFee + gateway, nil
}
