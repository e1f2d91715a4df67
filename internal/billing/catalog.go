package billing

// UnselectedProduct is the placeholder value of a row whose product has not
// been chosen yet. Rows still carrying it never qualify for submission.
const UnselectedProduct = "--Select--"

// Catalog maps product names to their default unit prices.
type Catalog map[string]float64

// PriceFor returns the catalog price for a product name. Unrecognized names
// map to 0.
func (c Catalog) PriceFor(name string) float64 {
	return c[name]
}
