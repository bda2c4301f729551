package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

const TxCodePrefix = "TXN"

// EnsureTxCode issues a transaction code like TXN-1694549012000000000. The
// nanosecond component keeps in-process collisions negligible; the database
// unique index on payments.transaction_code remains the real guard.
func EnsureTxCode() string {
	return fmt.Sprintf("%s-%d", TxCodePrefix, time.Now().UTC().UnixNano())
}

// QRPayload is what staff scanners read back at redemption time.
type QRPayload struct {
	TransactionCode string `json:"transaction_code"`
	UserID          uint   `json:"user_id"`
	OrderID         *uint  `json:"order_id,omitempty"`
	ReservationID   *uint  `json:"reservation_id,omitempty"`
	Ts              int64  `json:"ts"`
}

// GenerateQRPNG renders the payload as a QR PNG under dir and returns the
// written path. The artifact is write-once; the payment workflow deletes it
// on redemption.
func GenerateQRPNG(payload QRPayload, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, filename)
	if err := qrcode.WriteFile(string(raw), qrcode.Medium, 256, path); err != nil {
		return "", err
	}
	return path, nil
}
