package models

// Product is the persisted product document.
// Collection name: "product".
type Product struct {
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64  `bson:"price" json:"price"`
	Category    string   `bson:"category" json:"category"`
	Images      []string `bson:"images" json:"images"`
	InStock     bool     `bson:"in_stock" json:"in_stock"`
	Rating      float64  `bson:"rating" json:"rating"`
}
