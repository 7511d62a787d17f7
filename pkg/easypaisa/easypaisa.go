package easypaisa

import (
	"fmt"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the EasyPaisa sandbox checkout endpoint.
	DefaultBaseURL = "https://easypaisa.com.pk/easypay/Index.jsf"

	timestampLayout = "20060102150405"
	paymentMethod   = "MA_PAYMENT_METHOD"
)

// Client builds EasyPaisa hosted-checkout URLs. Unlike JazzCash, amounts go
// over the wire in major units.
type Client struct {
	baseURL   string
	storeID   string
	returnURL string
}

// NewClient creates an EasyPaisa checkout URL builder. An empty baseURL
// falls back to the sandbox endpoint.
func NewClient(baseURL, storeID, returnURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   baseURL,
		storeID:   storeID,
		returnURL: returnURL,
	}
}

// CheckoutRequest describes one hosted-checkout redirect.
type CheckoutRequest struct {
	Amount      float64
	OrderRef    string
	RequestedAt time.Time
}

// CheckoutURL renders the sandbox redirect URL for the request.
func (c *Client) CheckoutURL(req CheckoutRequest) string {
	q := url.Values{}
	q.Set("storeId", c.storeID)
	q.Set("orderId", req.OrderRef)
	q.Set("transactionAmount", fmt.Sprintf("%.2f", req.Amount))
	q.Set("transactionType", paymentMethod)
	q.Set("tokenExpiry", req.RequestedAt.Add(time.Hour).Format(timestampLayout))
	q.Set("timeStamp", req.RequestedAt.Format(timestampLayout))
	q.Set("postBackURL", c.returnURL)

	return c.baseURL + "?" + q.Encode()
}
