package models

// Currency is the price currency of a master. Only dollars and euros are offered.
type Currency string

const (
	CurrencyDollar Currency = "$"
	CurrencyEuro   Currency = "€"
)

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	return c == CurrencyDollar || c == CurrencyEuro
}

// Master represents a service-provider profile.
type Master struct {
	// ID is the unique identifier for the master (UUID format).
	// Older snapshots may carry millisecond timestamps here; they are kept as-is.
	ID string `json:"id"`

	// Name is the display name of the master.
	Name string `json:"name"`

	// Role is a short description of what the master does (e.g., "Barber").
	Role string `json:"role"`

	// Price is free text, usually a number ("25", "10-15").
	Price string `json:"price"`

	Currency Currency `json:"currency"`

	// Category groups masters on the home screen filter.
	Category string `json:"category"`

	// PhotoURI is an opaque image reference. It is stored, never interpreted.
	PhotoURI string `json:"photoUri,omitempty"`

	Favorite bool `json:"favorite"`
}

// NewMaster holds the caller-supplied fields of a master being created.
type NewMaster struct {
	Name     string
	Role     string
	Price    string
	Currency Currency
	Category string
	PhotoURI string
}
