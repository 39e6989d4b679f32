package postage

// ShippingMethod selects how an item travels. Only Express carries a surcharge.
type ShippingMethod string

const (
	Normal  ShippingMethod = "normal"
	Express ShippingMethod = "express"
)

// IsExpress reports whether the method is exactly "express". The comparison is
// case-sensitive, so "Express" ships at the normal rate.
func (m ShippingMethod) IsExpress() bool {
	return m == Express
}

// Format is the paper format of a letter.
type Format string

const (
	A3 Format = "A3"
	A4 Format = "A4"
)

// Kind names the category of a mail item as printed in reports.
type Kind string

const (
	KindLetter        Kind = "Letter"
	KindParcel        Kind = "Parcel"
	KindAdvertisement Kind = "Advertisement"
)

// MailItem describes the behaviour shared by every mail category.
type MailItem interface {
	Kind() Kind
	// Weight is expressed in grams.
	Weight() float64
	ShippingMethod() ShippingMethod
	Destination() string
	CalculatePostage() float64
}

// Spec is a declarative description of a mail item, used when items are read
// from configuration. Format applies to letters and Volume to parcels; both are
// ignored for other kinds.
type Spec struct {
	Kind        string
	Weight      float64
	Method      ShippingMethod
	Destination string
	Format      Format
	Volume      float64
}
