package entity

// Product is a single invoice line.
type Product struct {
	Description string  `yaml:"description" json:"description"`
	Quantity    float64 `yaml:"quantity" json:"quantity"`
	Price       float64 `yaml:"price" json:"price"`
}

// LineTotal is quantity times unit price. Price may be negative in a
// cancellation invoice.
func (p Product) LineTotal() float64 {
	return p.Quantity * p.Price
}
