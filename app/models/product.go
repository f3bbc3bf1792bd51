package models

import "strings"

// Product names sold by Enternet. Invoices and tickets reference them by
// name only; any string is accepted on a record.
const (
	ProductEnterfact = "Enterfact"
	ProductAndesPOS  = "AndesPOS"
	ProductProwi     = "Prowi"
	ProductCobru     = "Cobrú"
)

// productKeys maps form keys to product names
var productKeys = map[string]string{
	"enterfact": ProductEnterfact,
	"andespos":  ProductAndesPOS,
	"prowi":     ProductProwi,
	"cobru":     ProductCobru,
}

// Products returns the closed product set in display order
func Products() []string {
	return []string{ProductEnterfact, ProductAndesPOS, ProductProwi, ProductCobru}
}

// ProductKey returns the form key of a product name ("Cobrú" -> "cobru")
func ProductKey(name string) string {
	for key, product := range productKeys {
		if product == name {
			return key
		}
	}
	return strings.ToLower(name)
}

// ProductByKey resolves a form key to its product name
func ProductByKey(key string) (string, bool) {
	name, ok := productKeys[strings.ToLower(strings.TrimSpace(key))]
	return name, ok
}
