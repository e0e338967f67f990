// Package medicine defines the core entities of the medinfo service:
// medicine records, conversation messages and the provider payload
// transformation used by the remote resolver.
package medicine

import "fmt"

// Schedule is the Indian regulatory dispensing category of a medicine.
type Schedule string

const (
	ScheduleOTC          Schedule = "OTC"
	SchedulePrescription Schedule = "Prescription"
	ScheduleH            Schedule = "Schedule H"
	ScheduleH1           Schedule = "Schedule H1"
	ScheduleX            Schedule = "Schedule X"
)

// Availability describes how easy a medicine is to obtain.
type Availability string

const (
	WidelyAvailable  Availability = "Widely Available"
	Available        Availability = "Available"
	Limited          Availability = "Limited"
	PrescriptionOnly Availability = "Prescription Only"
)

// Alternative is a substitute brand for the same composition.
type Alternative struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	PriceRange   string `json:"priceRange,omitempty"`
}

// PriceRange is an approximate retail price band for one sale unit.
type PriceRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// Dosage carries the indicative dosage text per age group. It is
// informational only, never a recommendation.
type Dosage struct {
	Adults   string `json:"adults,omitempty"`
	Children string `json:"children,omitempty"`
	Elderly  string `json:"elderly,omitempty"`
}

// Medicine is a structured medicine record, produced either by the static
// sample store or by transforming a provider payload.
type Medicine struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	GenericName       string        `json:"genericName,omitempty"`
	Manufacturer      string        `json:"manufacturer"`
	Category          string        `json:"category,omitempty"`
	Composition       string        `json:"composition"`
	Uses              []string      `json:"uses"`
	MechanismOfAction string        `json:"mechanismOfAction,omitempty"`
	Schedule          Schedule      `json:"schedule"`
	SideEffects       []string      `json:"sideEffects"`
	Precautions       []string      `json:"precautions"`
	Contraindications []string      `json:"contraindications"`
	Interactions      []string      `json:"interactions,omitempty"`
	Dosage            *Dosage       `json:"dosage,omitempty"`
	Storage           string        `json:"storage,omitempty"`
	Alternatives      []Alternative `json:"alternatives"`
	PriceRange        PriceRange    `json:"priceRange"`
	Availability      Availability  `json:"availability"`
	DosageForms       []string      `json:"dosageForms"`
	ImageURL          string        `json:"imageUrl,omitempty"`
}

// Validate checks the record invariants that downstream rendering relies on.
func (m *Medicine) Validate() error {
	if m == nil {
		return fmt.Errorf("medicine is nil")
	}
	if m.Name == "" {
		return fmt.Errorf("medicine has no name")
	}
	if m.PriceRange.Min > m.PriceRange.Max {
		return fmt.Errorf("invalid price range for %s: min %.2f > max %.2f",
			m.Name, m.PriceRange.Min, m.PriceRange.Max)
	}
	return nil
}
