package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"promo_backend/internals/features/events/model"
)

func TestVerifySignature(t *testing.T) {
	serverKey := "SB-server-key"
	orderID := "TIX-123"
	statusCode := "200"
	grossAmount := "25.00"

	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	sig := hex.EncodeToString(sum[:])

	assert.True(t, VerifySignature(orderID, statusCode, grossAmount, sig, serverKey))
	assert.False(t, VerifySignature(orderID, statusCode, "26.00", sig, serverKey))
	assert.False(t, VerifySignature(orderID, statusCode, grossAmount, "bogus", serverKey))
}

func TestSaleStatusFromNotification(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		mapped bool
	}{
		{"settlement", model.SaleStatusConfirmed, true},
		{"capture", model.SaleStatusConfirmed, true},
		{"expire", model.SaleStatusCancelled, true},
		{"cancel", model.SaleStatusCancelled, true},
		{"deny", model.SaleStatusCancelled, true},
		{"pending", "", false},
		{"refund", "", false},
	}
	for _, tt := range tests {
		got, ok := SaleStatusFromNotification(tt.in)
		assert.Equal(t, tt.mapped, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
