package payload

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

// requiredFields lists the top-level fields every order must carry, in the
// order they are reported when absent.
var requiredFields = []string{
	"order_id",
	"customer_id",
	"items",
	"order_date",
	"shipping_address",
	"payment_method",
	"total_amount",
}

var itemFields = []string{"sku", "name", "qty", "unit_price"}

var addressFields = []string{"line1", "city", "state", "postal_code", "country"}

// ValidationError reports exactly which rule a payload violated. The reason
// is safe to return to the client.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func errf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Validator checks decoded order payloads. It never mutates its input, so
// validating the same payload twice gives the same outcome.
type Validator struct {
	log *zap.Logger
}

// New returns a Validator logging through log. A nil logger is replaced with
// a no-op one.
func New(log *zap.Logger) *Validator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Validator{log: log}
}

// Validate ensures required fields are present and types look sane. It
// returns nil on success or a *ValidationError describing the first rule
// violated, except that missing top-level fields are aggregated into one
// error. Check order is fixed: top-level presence, items shape, per-item
// checks in index order, address, payment method, total amount type, and
// finally the arithmetic cross-check of the declared total against the items.
func (v *Validator) Validate(data map[string]any) error {
	var missing []string
	for _, f := range requiredFields {
		if _, ok := data[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return errf("Missing fields: %s", strings.Join(missing, ", "))
	}

	items, ok := data["items"].([]any)
	if !ok || len(items) == 0 {
		return errf("`items` must be a non-empty list")
	}

	var computed float64
	for i, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			return errf("items[%d] must be an object", i)
		}
		for _, key := range itemFields {
			if _, ok := item[key]; !ok {
				return errf("items[%d] missing '%s'", i, key)
			}
		}
		qty, ok := AsInt(item["qty"])
		if !ok || qty <= 0 {
			return errf("items[%d].qty must be a positive integer", i)
		}
		price, ok := AsNumber(item["unit_price"])
		if !ok || price <= 0 {
			return errf("items[%d].unit_price must be a positive number", i)
		}
		computed += float64(qty) * price
	}

	addr, ok := data["shipping_address"].(map[string]any)
	if !ok {
		return errf("`shipping_address` must be an object")
	}
	for _, f := range addressFields {
		if _, ok := addr[f]; !ok {
			return errf("`shipping_address` missing '%s'", f)
		}
	}

	if _, ok := AsString(data["payment_method"]); !ok {
		return errf("`payment_method` must be a string")
	}

	total, ok := AsNumber(data["total_amount"])
	if !ok {
		return errf("`total_amount` must be a number")
	}

	// Compare in integer cents so both sides round identically.
	if int64(math.Round(computed*100)) != int64(math.Round(total*100)) {
		return errf("total_amount mismatch: expected %.2f, got %.2f", computed, total)
	}

	v.log.Info("payload validated", zap.Any("order_id", data["order_id"]))
	return nil
}
