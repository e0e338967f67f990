package store

import "github.com/sidesh-hub/medinfo-india/medicine"

// SampleMedicines returns the built-in demo records. This is a fallback
// data set for offline operation, not an authoritative database.
func SampleMedicines() []medicine.Medicine {
	return []medicine.Medicine{
		{
			ID:           "1",
			Name:         "Dolo 650",
			Manufacturer: "Micro Labs Ltd.",
			Composition:  "Paracetamol 650mg",
			Uses: []string{
				"Relief from mild to moderate pain",
				"Reduction of fever",
				"Headache relief",
				"Body aches and pain",
				"Toothache",
				"Cold and flu symptoms",
			},
			MechanismOfAction: "Paracetamol works by inhibiting the synthesis of prostaglandins in the central nervous system (CNS). It blocks the cyclooxygenase (COX) enzyme, reducing fever by acting on the hypothalamic heat-regulating center.",
			Schedule:          medicine.ScheduleOTC,
			SideEffects: []string{
				"Nausea",
				"Allergic reactions (rare)",
				"Skin rash (rare)",
				"Liver damage (with overdose)",
				"Blood disorders (rare)",
			},
			Precautions: []string{
				"Do not exceed recommended dose",
				"Avoid alcohol consumption",
				"Use with caution in liver disease",
				"Check for paracetamol in other medications to avoid overdose",
				"Consult doctor if symptoms persist beyond 3 days",
			},
			Contraindications: []string{
				"Known hypersensitivity to paracetamol",
				"Severe liver impairment",
				"Acute hepatitis",
			},
			Alternatives: []medicine.Alternative{
				{Name: "Crocin 650", Manufacturer: "GSK", PriceRange: "₹25-30"},
				{Name: "Calpol 650", Manufacturer: "GSK", PriceRange: "₹28-35"},
				{Name: "Pacimol 650", Manufacturer: "Ipca", PriceRange: "₹20-25"},
				{Name: "Febrinil Plus", Manufacturer: "Zydus", PriceRange: "₹22-28"},
			},
			PriceRange:   medicine.PriceRange{Min: 25, Max: 35, Unit: "strip of 15 tablets"},
			Availability: medicine.WidelyAvailable,
			DosageForms:  []string{"Tablet", "Suspension"},
			ImageURL:     "https://images.apollo247.in/pub/media/catalog/product/d/o/dol0007_1.jpg",
		},
		{
			ID:           "2",
			Name:         "Azithromycin 500",
			Manufacturer: "Various (Cipla, Sun Pharma, Zydus)",
			Composition:  "Azithromycin 500mg",
			Uses: []string{
				"Bacterial infections of respiratory tract",
				"Skin and soft tissue infections",
				"Ear infections",
				"Sexually transmitted infections",
				"Typhoid fever",
			},
			MechanismOfAction: "Azithromycin is a macrolide antibiotic that works by binding to the 50S ribosomal subunit of bacteria, inhibiting protein synthesis and thereby stopping bacterial growth.",
			Schedule:          medicine.ScheduleH,
			SideEffects: []string{
				"Diarrhea",
				"Nausea and vomiting",
				"Abdominal pain",
				"Headache",
				"Dizziness",
				"QT prolongation (rare)",
			},
			Precautions: []string{
				"Complete the full course of antibiotics",
				"Take on empty stomach or 2 hours after meal",
				"Inform doctor about heart conditions",
				"Monitor for allergic reactions",
				"Avoid antacids within 2 hours",
			},
			Contraindications: []string{
				"Known allergy to azithromycin or macrolides",
				"History of cholestatic jaundice with azithromycin",
				"Severe liver disease",
			},
			Alternatives: []medicine.Alternative{
				{Name: "Azee 500", Manufacturer: "Cipla", PriceRange: "₹80-100"},
				{Name: "Azithral 500", Manufacturer: "Alembic", PriceRange: "₹75-95"},
				{Name: "Zithromax", Manufacturer: "Pfizer", PriceRange: "₹150-180"},
			},
			PriceRange:   medicine.PriceRange{Min: 70, Max: 120, Unit: "strip of 3 tablets"},
			Availability: medicine.PrescriptionOnly,
			DosageForms:  []string{"Tablet", "Suspension", "Injection"},
			ImageURL:     "https://images.apollo247.in/pub/media/catalog/product/a/z/azi0027.jpg",
		},
		{
			ID:           "3",
			Name:         "Pan D",
			Manufacturer: "Alkem Laboratories",
			Composition:  "Pantoprazole 40mg + Domperidone 30mg",
			Uses: []string{
				"Gastroesophageal reflux disease (GERD)",
				"Peptic ulcer disease",
				"Acid-related indigestion",
				"Nausea and vomiting",
				"Bloating and fullness",
			},
			MechanismOfAction: "Pantoprazole is a proton pump inhibitor (PPI) that reduces stomach acid production by blocking the H+/K+-ATPase enzyme. Domperidone is a prokinetic that enhances gut motility by blocking dopamine receptors.",
			Schedule:          medicine.SchedulePrescription,
			SideEffects: []string{
				"Headache",
				"Diarrhea",
				"Nausea",
				"Flatulence",
				"Dizziness",
				"Vitamin B12 deficiency (long-term use)",
			},
			Precautions: []string{
				"Take 30-60 minutes before meals",
				"Not recommended for long-term use without medical supervision",
				"May mask symptoms of gastric cancer",
				"Use with caution in liver/kidney disease",
				"Avoid in patients with cardiac arrhythmias",
			},
			Contraindications: []string{
				"Known hypersensitivity to PPIs or domperidone",
				"Prolactin-releasing pituitary tumor",
				"GI hemorrhage, obstruction, or perforation",
			},
			Alternatives: []medicine.Alternative{
				{Name: "Pantocid D", Manufacturer: "Sun Pharma", PriceRange: "₹140-160"},
				{Name: "Nexpro RD", Manufacturer: "Torrent", PriceRange: "₹150-180"},
				{Name: "Aciloc D", Manufacturer: "Cadila", PriceRange: "₹80-100"},
			},
			PriceRange:   medicine.PriceRange{Min: 120, Max: 150, Unit: "strip of 15 capsules"},
			Availability: medicine.Available,
			DosageForms:  []string{"Capsule"},
			ImageURL:     "https://images.apollo247.in/pub/media/catalog/product/p/a/pan0154.jpg",
		},
	}
}
