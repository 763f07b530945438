package orders

import (
	"fmt"
	"time"

	"github.com/example/order-intake-service/internal/payload"
)

// LineItem is one purchased product entry within an order.
type LineItem struct {
	SKU       string  `dynamodbav:"sku"`
	Name      string  `dynamodbav:"name"`
	Qty       int64   `dynamodbav:"qty"`
	UnitPrice float64 `dynamodbav:"unit_price"`
}

// Address is the shipping destination of an order.
type Address struct {
	Line1      string `dynamodbav:"line1"`
	City       string `dynamodbav:"city"`
	State      string `dynamodbav:"state"`
	PostalCode string `dynamodbav:"postal_code"`
	Country    string `dynamodbav:"country"`
}

// Record is the persisted shape of an accepted order.
type Record struct {
	OrderID         string     `dynamodbav:"order_id"` // PK
	CustomerID      string     `dynamodbav:"customer_id"`
	Items           []LineItem `dynamodbav:"items"`
	OrderDate       string     `dynamodbav:"order_date"` // opaque, stored as given
	ShippingAddress Address    `dynamodbav:"shipping_address"`
	PaymentMethod   string     `dynamodbav:"payment_method"`
	TotalAmount     float64    `dynamodbav:"total_amount"`
	ProcessingID    string     `dynamodbav:"processing_id,omitempty"`
	ProcessedAt     time.Time  `dynamodbav:"processed_at,omitempty"`
	CreatedAt       time.Time  `dynamodbav:"created_at"`
}

// FromPayload builds the persistence record for a payload that already passed
// validation, stamped with processing metadata. The payload map itself is
// left untouched.
func FromPayload(data map[string]any, meta payload.Metadata) Record {
	rawItems, _ := data["items"].([]any)
	items := make([]LineItem, 0, len(rawItems))
	for _, raw := range rawItems {
		item, _ := raw.(map[string]any)
		qty, _ := payload.AsInt(item["qty"])
		price, _ := payload.AsNumber(item["unit_price"])
		items = append(items, LineItem{
			SKU:       str(item["sku"]),
			Name:      str(item["name"]),
			Qty:       qty,
			UnitPrice: price,
		})
	}

	addr, _ := data["shipping_address"].(map[string]any)
	total, _ := payload.AsNumber(data["total_amount"])

	return Record{
		OrderID:    str(data["order_id"]),
		CustomerID: str(data["customer_id"]),
		Items:      items,
		OrderDate:  str(data["order_date"]),
		ShippingAddress: Address{
			Line1:      str(addr["line1"]),
			City:       str(addr["city"]),
			State:      str(addr["state"]),
			PostalCode: str(addr["postal_code"]),
			Country:    str(addr["country"]),
		},
		PaymentMethod: str(data["payment_method"]),
		TotalAmount:   total,
		ProcessingID:  meta.ProcessingID,
		ProcessedAt:   meta.ProcessedAt,
	}
}

// str renders an opaque payload value; identifiers and presence-only fields
// carry no type constraint, so non-strings are stringified.
func str(v any) string {
	if s, ok := payload.AsString(v); ok {
		return s
	}
	return fmt.Sprint(v)
}
