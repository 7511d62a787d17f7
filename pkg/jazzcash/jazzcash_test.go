package jazzcash

import (
	"net/url"
	"testing"
	"time"
)

func TestCheckoutURL(t *testing.T) {
	c := NewClient("", "MC10001", "secret", "https://karobar.pk/payments/return")

	at := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	raw := c.CheckoutURL(CheckoutRequest{
		Amount:      2500,
		OrderRef:    "TXN-42",
		Description: "Professional plan upgrade",
		RequestedAt: at,
	})

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse checkout URL: %v", err)
	}
	if u.Host != "sandbox.jazzcash.com.pk" {
		t.Errorf("host = %q", u.Host)
	}

	q := u.Query()
	// Amount in paisa: 2500 PKR → 250000.
	if got := q.Get("pp_Amount"); got != "250000" {
		t.Errorf("pp_Amount = %q, want 250000", got)
	}
	if got := q.Get("pp_TxnCurrency"); got != "PKR" {
		t.Errorf("pp_TxnCurrency = %q", got)
	}
	if got := q.Get("pp_TxnDateTime"); got != "20240305143000" {
		t.Errorf("pp_TxnDateTime = %q", got)
	}
	if got := q.Get("pp_TxnExpiryDateTime"); got != "20240305153000" {
		t.Errorf("pp_TxnExpiryDateTime = %q", got)
	}
	if got := q.Get("pp_MerchantID"); got != "MC10001" {
		t.Errorf("pp_MerchantID = %q", got)
	}
	if got := q.Get("pp_TxnRefNo"); got != "TXN-42" {
		t.Errorf("pp_TxnRefNo = %q", got)
	}
	if got := q.Get("pp_ReturnURL"); got != "https://karobar.pk/payments/return" {
		t.Errorf("pp_ReturnURL = %q", got)
	}
}

func TestCheckoutURLFractionalAmount(t *testing.T) {
	c := NewClient("https://example.test/pay", "M", "p", "r")
	raw := c.CheckoutURL(CheckoutRequest{Amount: 19.99, RequestedAt: time.Now()})

	u, _ := url.Parse(raw)
	if got := u.Query().Get("pp_Amount"); got != "1999" {
		t.Errorf("pp_Amount = %q, want 1999", got)
	}
}
