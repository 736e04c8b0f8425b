package models

// Product is a snack or toy sold against a session's tab. Stock is a shared
// mutable counter; every consumption change adjusts it atomically.
type Product struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Stock    int     `bson:"stock" json:"stock"`
	MinStock int     `bson:"minStock,omitempty" json:"minStock,omitempty"`
}

// LowOnStock reports whether the product has fallen to or below its
// restocking threshold. Products without a threshold never report low.
func (p *Product) LowOnStock() bool {
	return p.MinStock > 0 && p.Stock <= p.MinStock
}
