package prescriptions

import (
	"time"

	"vet-care-assistant/internal/domain/animals"
	"vet-care-assistant/internal/i18n"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Catalog son las recetas recientes con las que se siembran los repos.
func Catalog() []Prescription {
	return []Prescription{
		{
			ID:         "1",
			Category:   animals.CategoryDog,
			Condition:  i18n.Text{EN: "Skin Dermatitis", TA: "தோல் அழற்சி"},
			Severity:   animals.SeverityModerate,
			DateIssued: day(2024, time.January, 15),
			Medicines: []Medicine{
				{
					Name:         "Betamethasone Cream",
					Dosage:       "0.1% topical",
					Duration:     "7 days",
					Instructions: i18n.Text{EN: "Apply twice daily to affected area", TA: "பாதிக்கப்பட்ட பகுதியில் தினமும் இரண்டு முறை தடவவும்"},
					Precautions:  i18n.Text{EN: "Avoid contact with eyes", TA: "கண்களுடன் தொடர்பு தவிர்க்கவும்"},
				},
				{
					Name:         "Antihistamine",
					Dosage:       "25mg",
					Duration:     "5 days",
					Instructions: i18n.Text{EN: "Once daily with food", TA: "உணவுடன் தினமும் ஒரு முறை"},
					Precautions:  i18n.Text{EN: "May cause drowsiness", TA: "தூக்கம் வரலாம்"},
				},
			},
			FollowUp: i18n.Text{EN: "Review in 7 days", TA: "7 நாட்களில் மறுபரிசீலனை"},
		},
		{
			ID:         "2",
			Category:   animals.CategoryCat,
			Condition:  i18n.Text{EN: "Upper Respiratory Infection", TA: "மேல் சுவாச நோய்த்தொற்று"},
			Severity:   animals.SeverityMild,
			DateIssued: day(2024, time.January, 14),
			Medicines: []Medicine{
				{
					Name:         "Amoxicillin",
					Dosage:       "50mg",
					Duration:     "10 days",
					Instructions: i18n.Text{EN: "Twice daily with food", TA: "உணவுடன் தினமும் இரண்டு முறை"},
					Precautions:  i18n.Text{EN: "Complete full course", TA: "முழு கோர்ஸ் முடிக்கவும்"},
				},
			},
			FollowUp: i18n.Text{EN: "Review in 5 days", TA: "5 நாட்களில் மறுபரிசீலனை"},
		},
		{
			ID:         "3",
			Category:   animals.CategoryCattle,
			Condition:  i18n.Text{EN: "Mastitis", TA: "பால்மடி அழற்சி"},
			Severity:   animals.SeveritySevere,
			DateIssued: day(2024, time.January, 13),
			Medicines: []Medicine{
				{
					Name:         "Penicillin G",
					Dosage:       "20,000 IU/kg",
					Duration:     "7 days",
					Instructions: i18n.Text{EN: "Intramuscular injection twice daily", TA: "தசையில் ஊசி தினமும் இரண்டு முறை"},
					Precautions:  i18n.Text{EN: "Milk withdrawal period: 4 days", TA: "பால் திரும்பப் பெறும் காலம்: 4 நாட்கள்"},
				},
			},
			FollowUp: i18n.Text{EN: "Review in 3 days", TA: "3 நாட்களில் மறுபரிசீலனை"},
		},
	}
}
