package types

// RawCustomer is one entry of the orders snapshot as it arrives on disk.
// Identifier, price and quantity fields are deliberately untyped: real
// snapshots mix numbers, numeric strings and garbage, and cleanup happens
// downstream, not at decode time.
type RawCustomer struct {
	ID               interface{} `json:"id"`
	Name             string      `json:"name"`
	RegistrationDate interface{} `json:"registration_date"`
	Orders           []RawOrder  `json:"orders"`
}

type RawOrder struct {
	OrderID   interface{} `json:"order_id"`
	OrderDate interface{} `json:"order_date"`
	Items     []RawItem   `json:"items"`
}

type RawItem struct {
	ItemID      interface{} `json:"item_id"`
	ProductName string      `json:"product_name"`
	Category    interface{} `json:"category"`
	Price       interface{} `json:"price"`
	Quantity    interface{} `json:"quantity"`
}
