package service

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"promo_backend/internals/features/events/model"
)

var (
	SnapClient        snap.Client
	midtransServerKey string
)

// InitMidtrans initializes the Snap client. Call once at startup.
func InitMidtrans(serverKey string, production bool) {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	midtransServerKey = serverKey
	SnapClient.New(serverKey, env)
}

// MidtransReady reports whether InitMidtrans ran with a server key.
func MidtransReady() bool { return midtransServerKey != "" }

// Notification is the subset of a midtrans HTTP notification we act on.
type Notification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}

// Authentic reports whether the notification's signature matches the
// configured server key.
func (n Notification) Authentic() bool {
	return VerifySignature(n.OrderID, n.StatusCode, n.GrossAmount, n.SignatureKey, midtransServerKey)
}

// CreateCheckout opens a Snap transaction for a pending ticket sale and
// returns the token and redirect URL.
func CreateCheckout(sale model.TicketSaleModel, event model.EventModel, buyerEmail string) (token, redirectURL string, err error) {
	if sale.TicketSaleOrderID == nil {
		return "", "", fmt.Errorf("sale has no order id")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  *sale.TicketSaleOrderID,
			GrossAmt: int64(sale.TicketSaleTotalAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: sale.TicketSaleBuyerName,
			Email: buyerEmail,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    event.EventID.String(),
			Name:  event.EventTitle,
			Price: int64(sale.TicketSaleUnitPrice),
			Qty:   int32(sale.TicketSaleQuantity),
		}},
	}

	resp, respErr := SnapClient.CreateTransaction(req)
	if respErr != nil {
		return "", "", respErr
	}
	return resp.Token, resp.RedirectURL, nil
}

// VerifySignature checks the signature_key of a midtrans notification:
// sha512(order_id + status_code + gross_amount + serverKey).
func VerifySignature(orderID, statusCode, grossAmount, signatureKey, serverKey string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == signatureKey
}

// SaleStatusFromNotification maps a midtrans transaction_status to the sale
// status it should produce. Statuses with no mapping leave the sale alone.
func SaleStatusFromNotification(transactionStatus string) (string, bool) {
	switch transactionStatus {
	case "capture", "settlement":
		return model.SaleStatusConfirmed, true
	case "expire", "cancel", "deny":
		return model.SaleStatusCancelled, true
	default:
		return "", false
	}
}
