package medicine

import (
	"strings"

	"github.com/google/uuid"
)

// ProviderPrice is the point price estimate the provider returns.
type ProviderPrice struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Unit     string  `json:"unit"`
}

// ProviderMedicine mirrors the JSON schema fixed by the generative-text
// system instruction. Field names must stay verbatim: the provider is told
// to emit exactly this shape and rendering depends on it.
type ProviderMedicine struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	GenericName       string         `json:"genericName"`
	Manufacturer      string         `json:"manufacturer"`
	Category          string         `json:"category"`
	Schedule          string         `json:"schedule"`
	Composition       []string       `json:"composition"`
	Uses              []string       `json:"uses"`
	SideEffects       []string       `json:"sideEffects"`
	Warnings          []string       `json:"warnings"`
	Dosage            *Dosage        `json:"dosage"`
	Storage           string         `json:"storage"`
	Interactions      []string       `json:"interactions"`
	Contraindications []string       `json:"contraindications"`
	Price             *ProviderPrice `json:"price"`
	PriceRange        *PriceRange    `json:"priceRange"`
	Availability      string         `json:"availability"`
	DosageForms       []string       `json:"dosageForms"`
	ImageURL          string         `json:"imageUrl"`
}

// ProviderPayload is the envelope extracted from the generated text.
type ProviderPayload struct {
	Found      bool              `json:"found"`
	Medicine   *ProviderMedicine `json:"medicine"`
	Suggestion string            `json:"suggestion,omitempty"`
	Disclaimer string            `json:"disclaimer,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// LookupResult is what the resolver hands back to the conversation router.
type LookupResult struct {
	Found      bool      `json:"found"`
	Medicine   *Medicine `json:"medicine"`
	Suggestion string    `json:"suggestion,omitempty"`
	Disclaimer string    `json:"disclaimer,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// FromProvider converts a provider medicine into the canonical record.
// A point price estimate becomes a band of amount x0.8 to amount x1.2; a
// provider-supplied range is taken verbatim.
func FromProvider(p *ProviderMedicine) *Medicine {
	if p == nil {
		return nil
	}

	m := &Medicine{
		ID:                p.ID,
		Name:              p.Name,
		GenericName:       p.GenericName,
		Manufacturer:      p.Manufacturer,
		Category:          p.Category,
		Composition:       strings.Join(p.Composition, " + "),
		Uses:              p.Uses,
		Schedule:          Schedule(p.Schedule),
		SideEffects:       p.SideEffects,
		Precautions:       p.Warnings,
		Contraindications: p.Contraindications,
		Interactions:      p.Interactions,
		Dosage:            p.Dosage,
		Storage:           p.Storage,
		Availability:      Availability(p.Availability),
		DosageForms:       p.DosageForms,
		ImageURL:          p.ImageURL,
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	switch {
	case p.PriceRange != nil:
		m.PriceRange = *p.PriceRange
	case p.Price != nil:
		unit := p.Price.Unit
		if unit == "" {
			unit = p.Price.Currency
		}
		m.PriceRange = PriceRange{
			Min:  p.Price.Amount * 0.8,
			Max:  p.Price.Amount * 1.2,
			Unit: unit,
		}
	}

	return m
}
