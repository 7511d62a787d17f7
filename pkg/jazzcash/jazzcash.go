package jazzcash

import (
	"fmt"
	"math"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the JazzCash sandbox checkout endpoint.
	DefaultBaseURL = "https://sandbox.jazzcash.com.pk/CustomerPortal/transactionmanagement/merchantform"

	timestampLayout = "20060102150405"
	currency        = "PKR"
	version         = "1.1"
	txnType         = "MWALLET"
	language        = "EN"
)

// Client builds JazzCash hosted-checkout URLs. It never talks to the
// network itself; the caller decides what to do with the URL.
type Client struct {
	baseURL    string
	merchantID string
	password   string
	returnURL  string
}

// NewClient creates a JazzCash checkout URL builder. An empty baseURL falls
// back to the sandbox endpoint.
func NewClient(baseURL, merchantID, password, returnURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		merchantID: merchantID,
		password:   password,
		returnURL:  returnURL,
	}
}

// CheckoutRequest describes one hosted-checkout redirect.
type CheckoutRequest struct {
	Amount      float64 // major units; converted to paisa on the wire
	OrderRef    string
	Description string
	RequestedAt time.Time
}

// CheckoutURL renders the sandbox redirect URL for the request. JazzCash
// takes the amount in minor units and two punctuation-free timestamps
// (request time and a 1-hour expiry).
func (c *Client) CheckoutURL(req CheckoutRequest) string {
	q := url.Values{}
	q.Set("pp_Version", version)
	q.Set("pp_TxnType", txnType)
	q.Set("pp_Language", language)
	q.Set("pp_MerchantID", c.merchantID)
	q.Set("pp_Password", c.password)
	q.Set("pp_TxnRefNo", req.OrderRef)
	q.Set("pp_Amount", fmt.Sprintf("%d", int64(math.Round(req.Amount*100))))
	q.Set("pp_TxnCurrency", currency)
	q.Set("pp_TxnDateTime", req.RequestedAt.Format(timestampLayout))
	q.Set("pp_TxnExpiryDateTime", req.RequestedAt.Add(time.Hour).Format(timestampLayout))
	q.Set("pp_Description", req.Description)
	q.Set("pp_ReturnURL", c.returnURL)

	return c.baseURL + "?" + q.Encode()
}
