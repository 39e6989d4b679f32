package postage

import (
	"fmt"
	"strings"
)

const (
	gramsPerKilogram = 1000.0
	expressFactor    = 2.0

	letterA4Fare    = 2.50
	letterA3Fare    = 3.50
	letterPerKg     = 1.0
	parcelPerVolume = 0.25
	adPerKg         = 5.0
)

type envelope struct {
	weight      float64
	method      ShippingMethod
	destination string
}

func (e envelope) Weight() float64                { return e.weight }
func (e envelope) ShippingMethod() ShippingMethod { return e.method }
func (e envelope) Destination() string            { return e.destination }

func (e envelope) kilograms() float64 {
	return e.weight / gramsPerKilogram
}

// surcharge doubles amount for express shipments.
func (e envelope) surcharge(amount float64) float64 {
	if e.method.IsExpress() {
		return amount * expressFactor
	}
	return amount
}

// Letter is a sheet mailing priced by paper format and weight.
type Letter struct {
	envelope
	format Format
}

// NewLetter creates a Letter. Weight is in grams.
func NewLetter(weight float64, method ShippingMethod, destination string, format Format) *Letter {
	return &Letter{
		envelope: envelope{weight: weight, method: method, destination: destination},
		format:   format,
	}
}

func (l *Letter) Kind() Kind     { return KindLetter }
func (l *Letter) Format() Format { return l.format }

// CalculatePostage charges 2.50 for A4 and 3.50 for any other format, plus 1.0 per kilogram.
func (l *Letter) CalculatePostage() float64 {
	fare := letterA3Fare
	if l.format == A4 {
		fare = letterA4Fare
	}
	return l.surcharge(fare + letterPerKg*l.kilograms())
}

// Parcel is priced by volume and weight.
type Parcel struct {
	envelope
	volume float64
}

// NewParcel creates a Parcel. Weight is in grams.
func NewParcel(weight float64, method ShippingMethod, destination string, volume float64) *Parcel {
	return &Parcel{
		envelope: envelope{weight: weight, method: method, destination: destination},
		volume:   volume,
	}
}

func (p *Parcel) Kind() Kind      { return KindParcel }
func (p *Parcel) Volume() float64 { return p.volume }

func (p *Parcel) CalculatePostage() float64 {
	return p.surcharge(parcelPerVolume*p.volume + p.kilograms())
}

// Advertisement is priced by weight only.
type Advertisement struct {
	envelope
}

// NewAdvertisement creates an Advertisement. Weight is in grams.
func NewAdvertisement(weight float64, method ShippingMethod, destination string) *Advertisement {
	return &Advertisement{
		envelope: envelope{weight: weight, method: method, destination: destination},
	}
}

func (a *Advertisement) Kind() Kind { return KindAdvertisement }

func (a *Advertisement) CalculatePostage() float64 {
	return a.surcharge(adPerKg * a.kilograms())
}

// HasDestination reports whether the item carries a non-blank destination address.
func HasDestination(item MailItem) bool {
	return strings.TrimSpace(item.Destination()) != ""
}

// New builds the mail item described by spec. Kind matching ignores case.
func New(spec Spec) (MailItem, error) {
	switch strings.ToLower(strings.TrimSpace(spec.Kind)) {
	case "letter":
		return NewLetter(spec.Weight, spec.Method, spec.Destination, spec.Format), nil
	case "parcel":
		return NewParcel(spec.Weight, spec.Method, spec.Destination, spec.Volume), nil
	case "advertisement":
		return NewAdvertisement(spec.Weight, spec.Method, spec.Destination), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}
}
