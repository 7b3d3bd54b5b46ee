package vets

import "vet-care-assistant/internal/i18n"

// Directory es el directorio de la Provincia Norte con el que se siembran
// el repo en memoria y la migración de Postgres.
func Directory() []Vet {
	return []Vet{
		{
			ID:         "1",
			Name:       i18n.Text{EN: "Dr. Kumaran Veterinary Clinic", TA: "டாக்டர் குமரன் மருத்துவமனை"},
			Address:    i18n.Text{EN: "Jaffna Road, Kilinochchi", TA: "யாழ்ப்பாண சாலை, கிளிநொச்சி"},
			Phone:      "+94 21 228 5678",
			DistanceKm: 2.3,
			Rating:     4.8,
			OpenNow:    true,
			Emergency:  true,
			Specialties: i18n.Texts{
				EN: []string{"Farm Animals", "Small Animals", "Emergency Care"},
				TA: []string{"பண்ணை விலங்குகள்", "சிறிய விலங்குகள்", "அவசர பராமரிப்பு"},
			},
		},
		{
			ID:         "2",
			Name:       i18n.Text{EN: "Northern Province Animal Hospital", TA: "வட மாகாண விலங்கு மருத்துவமனை"},
			Address:    i18n.Text{EN: "Hospital Road, Jaffna", TA: "மருத்துவமனை சாலை, யாழ்ப்பாணம்"},
			Phone:      "+94 21 222 3456",
			DistanceKm: 5.7,
			Rating:     4.6,
			OpenNow:    false,
			Emergency:  false,
			Specialties: i18n.Texts{
				EN: []string{"Cattle", "Poultry", "Surgery"},
				TA: []string{"மாடு", "கோழி", "அறுவை சிகிச்சை"},
			},
		},
		{
			ID:         "3",
			Name:       i18n.Text{EN: "Dr. Priya Animal Care Center", TA: "டாக்டர் பிரியா விலங்கு பராமரிப்பு மையம்"},
			Address:    i18n.Text{EN: "Main Street, Vavuniya", TA: "மெயின் ஸ்ட்ரீட், வவுனியா"},
			Phone:      "+94 24 222 7890",
			DistanceKm: 8.2,
			Rating:     4.7,
			OpenNow:    true,
			Emergency:  true,
			Specialties: i18n.Texts{
				EN: []string{"Dogs", "Cats", "Vaccination"},
				TA: []string{"நாய்கள்", "பூனைகள்", "தடுப்பூசி"},
			},
		},
		{
			ID:         "4",
			Name:       i18n.Text{EN: "Mannar Veterinary Services", TA: "மன்னார் மருத்துவ சேவைகள்"},
			Address:    i18n.Text{EN: "Coastal Road, Mannar", TA: "கடலோர சாலை, மன்னார்"},
			Phone:      "+94 23 225 4567",
			DistanceKm: 12.1,
			Rating:     4.4,
			OpenNow:    true,
			Emergency:  false,
			Specialties: i18n.Texts{
				EN: []string{"Large Animals", "Reproduction", "Nutrition"},
				TA: []string{"பெரிய விலங்குகள்", "இனப்பெருக்கம்", "ஊட்டச்சத்து"},
			},
		},
	}
}
