package entity

// Customer is one entry of the customer mapping document. All fields are
// free text; Postal stays a string so it serializes quoted and keeps
// leading zeros.
type Customer struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	City    string `yaml:"city"`
	Postal  string `yaml:"postal"`
}

// ID is the slug of the customer name, used as the mapping key at creation
// time. Editing a record keeps its original key even when the name changes.
func (c Customer) ID() string {
	return Slug(c.Name)
}
