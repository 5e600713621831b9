package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var SnapClient snap.Client

// InitMidtrans initializes the Snap client with the server key. An empty key
// leaves the snap checkout path disabled.
func InitMidtrans(serverKey string) {
	if serverKey == "" {
		return
	}
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken creates a Midtrans Snap transaction for the given order
// and returns the token plus redirect URL.
func GenerateSnapToken(orderID string, grossAmount int64, name string, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
