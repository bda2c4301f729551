package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

type MobileMoneyResult struct {
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id"`
	Message       string  `json:"message"`
	Amount        float64 `json:"amount"`
}

// SimulateMobileMoney stands in for an M-Pesa / Airtel Money gateway call.
// Roughly 3 out of 4 attempts succeed; no real settlement happens anywhere
// in this codebase.
func SimulateMobileMoney(amount float64, phoneNumber string) MobileMoneyResult {
	ref := "MM-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:13]

	if rand.Intn(4) == 0 {
		return MobileMoneyResult{
			Status:        "failed",
			TransactionID: ref,
			Message:       "Payment failed, insufficient balance.",
			Amount:        amount,
		}
	}

	return MobileMoneyResult{
		Status:        "success",
		TransactionID: ref,
		Message:       fmt.Sprintf("Payment of %.2f USD confirmed via Mobile Money for %s.", amount, phoneNumber),
		Amount:        amount,
	}
}
