package models

// OrderItem represents a single product entry within an order. Title and
// price are denormalized copies of the product fields at order time.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Title     string  `bson:"title" json:"title"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
}

// Order defines the persisted order document.
// Collection name: "order". TotalAmount is computed server-side from the
// items at creation time and never recomputed afterwards.
type Order struct {
	CustomerName    string      `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string      `bson:"customer_email" json:"customer_email"`
	CustomerPhone   string      `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	ShippingAddress string      `bson:"shipping_address" json:"shipping_address"`
	Items           []OrderItem `bson:"items" json:"items"`
	Notes           string      `bson:"notes,omitempty" json:"notes,omitempty"`
	TotalAmount     float64     `bson:"total_amount" json:"total_amount"`
}
