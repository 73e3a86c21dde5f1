package pay

import (
	"errors"
)

// Gateway is the external payment collaborator. The engine only records its
// outcome; the money movement itself happens out-of-band.
type Gateway interface {
	Authorize(orderNumber string, amount int64, payerID uint) error
}

var ErrAuthorizeFailed = errors.New("payment authorization failed")

// MockGateway approves every authorization and remembers the last request,
// standing in for the real provider integration.
type MockGateway struct {
	LastOrderNumber string
	LastAmount      int64
	LastPayerID     uint
}

func (g *MockGateway) Authorize(orderNumber string, amount int64, payerID uint) error {
	g.LastOrderNumber = orderNumber
	g.LastAmount = amount
	g.LastPayerID = payerID
	return nil
}
