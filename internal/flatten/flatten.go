// Package flatten walks the nested customer→order→item snapshot and emits
// one denormalized row per item. Rows leave this package untyped; the table
// package applies the column contract afterwards.
package flatten

import (
	"encoding/json"
	"strings"

	"commerce-insights-go/internal/logger"
	"commerce-insights-go/internal/parse"
	"commerce-insights-go/internal/types"
	"commerce-insights-go/internal/vip"
)

// Column names of the output table, in contract order.
const (
	ColCustomerID       = "customer_id"
	ColCustomerName     = "customer_name"
	ColRegistrationDate = "registration_date"
	ColIsVIP            = "is_vip"
	ColOrderID          = "order_id"
	ColOrderDate        = "order_date"
	ColProductID        = "product_id"
	ColProductName      = "product_name"
	ColCategory         = "category"
	ColUnitPrice        = "unit_price"
	ColItemQuantity     = "item_quantity"
	ColTotalItemPrice   = "total_item_price"
	ColOrderValuePct    = "total_order_value_percentage"
)

// Row is one flattened record keyed by column name.
type Row map[string]interface{}

// categoryNames maps the snapshot's numeric category codes to labels.
// Unknown codes fall back to "Misc".
var categoryNames = map[int64]string{
	1: "Electronics",
	2: "Apparel",
	3: "Books",
	4: "Home Goods",
}

const categoryFallback = "Misc"

// CategoryLabel resolves a raw category code. Only integral values map;
// the snapshot writes codes as numbers, so digit strings stay "Misc".
func CategoryLabel(raw interface{}) string {
	code, ok := intCode(raw)
	if !ok {
		return categoryFallback
	}
	if name, ok := categoryNames[code]; ok {
		return name
	}
	return categoryFallback
}

func intCode(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
		return 0, false
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// Flatten produces one Row per item in snapshot order. Malformed ids default
// to 0, malformed prices/quantities to zero values; customers or orders with
// nothing nested under them contribute no rows.
func Flatten(customers []types.RawCustomer, vips vip.Set) []Row {
	log := logger.New().WithField("component", "flatten")

	var rows []Row
	for _, customer := range customers {
		customerID := parse.Int(customer.ID, 0)
		customerName := strings.TrimSpace(customer.Name)
		registrationDate := parse.Time(customer.RegistrationDate)
		isVIP := vips.Contains(customerID)

		for _, order := range customer.Orders {
			orderID := parse.Int(order.OrderID, 0)
			orderDate := parse.Time(order.OrderDate)

			// Order total has to exist before the per-item pass: each
			// item's percentage is taken against the whole order.
			orderTotal := 0.0
			for _, item := range order.Items {
				orderTotal += parse.Price(item.Price) * float64(parse.Int(item.Quantity, 0))
			}

			for _, item := range order.Items {
				// Fresh parses per item keep this step stateless; the
				// parsers are pure so they agree with the total above.
				unitPrice := parse.Price(item.Price)
				quantity := parse.Int(item.Quantity, 0)
				totalItemPrice := unitPrice * float64(quantity)

				pct := 0.0
				if orderTotal > 0 {
					pct = totalItemPrice / orderTotal * 100
				}

				rows = append(rows, Row{
					ColCustomerID:       customerID,
					ColCustomerName:     customerName,
					ColRegistrationDate: registrationDate,
					ColIsVIP:            isVIP,
					ColOrderID:          orderID,
					ColOrderDate:        orderDate,
					ColProductID:        parse.Int(item.ItemID, 0),
					ColProductName:      strings.TrimSpace(item.ProductName),
					ColCategory:         CategoryLabel(item.Category),
					ColUnitPrice:        unitPrice,
					ColItemQuantity:     quantity,
					ColTotalItemPrice:   totalItemPrice,
					ColOrderValuePct:    pct,
				})
			}
		}
	}

	log.WithField("customers", len(customers)).WithField("rows", len(rows)).Info("snapshot flattened")
	return rows
}
