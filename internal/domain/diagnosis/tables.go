package diagnosis

import (
	"vet-care-assistant/internal/domain/animals"
	"vet-care-assistant/internal/i18n"
)

type medicine struct {
	Name        string // nombre comercial, igual en ambos idiomas
	Dosage      i18n.Text
	Precautions i18n.Text
}

type table struct {
	Diseases  []i18n.Text
	Symptoms  []i18n.Text // al menos MaxSymptoms entradas
	Medicines []medicine
}

var (
	symRedness        = i18n.Text{EN: "Redness", TA: "சிவத்தல்"}
	symItching        = i18n.Text{EN: "Itching", TA: "அரிப்பு"}
	symHairLoss       = i18n.Text{EN: "Hair loss", TA: "முடி உதிர்தல்"}
	symInflammation   = i18n.Text{EN: "Inflammation", TA: "வீக்கம்"}
	symVomiting       = i18n.Text{EN: "Vomiting", TA: "வாந்தி"}
	symLethargy       = i18n.Text{EN: "Lethargy", TA: "சோர்வு"}
	symSneezing       = i18n.Text{EN: "Sneezing", TA: "தும்மல்"}
	symNasalDischarge = i18n.Text{EN: "Nasal discharge", TA: "மூக்கு ஒழுகுதல்"}
	symWateryEyes     = i18n.Text{EN: "Watery eyes", TA: "கண்ணீர் வடிதல்"}
	symFever          = i18n.Text{EN: "Fever", TA: "காய்ச்சல்"}
	symAppetiteLoss   = i18n.Text{EN: "Loss of appetite", TA: "பசியின்மை"}
	symDroppings      = i18n.Text{EN: "Abnormal droppings", TA: "அசாதாரண எச்சம்"}
	symBreathing      = i18n.Text{EN: "Breathing difficulty", TA: "மூச்சுத்திணறல்"}
	symRuffled        = i18n.Text{EN: "Ruffled feathers", TA: "சிலிர்த்த இறகுகள்"}
	symMilkDrop       = i18n.Text{EN: "Reduced milk production", TA: "பால் உற்பத்தி குறைவு"}
	symSwollenUdder   = i18n.Text{EN: "Swollen udder", TA: "வீங்கிய மடி"}
	symLameness       = i18n.Text{EN: "Lameness", TA: "நொண்டுதல்"}
	symSkinLesions    = i18n.Text{EN: "Skin lesions", TA: "தோல் புண்கள்"}
	symCoughing       = i18n.Text{EN: "Coughing", TA: "இருமல்"}
)

var (
	medBetamethasone = medicine{
		Name:        "Betamethasone Cream",
		Dosage:      i18n.Text{EN: "Apply twice daily for 7 days", TA: "7 நாட்களுக்கு தினமும் இரண்டு முறை தடவவும்"},
		Precautions: i18n.Text{EN: "Avoid contact with eyes", TA: "கண்களுடன் தொடர்பு தவிர்க்கவும்"},
	}
	medAmoxicillin = medicine{
		Name:        "Amoxicillin",
		Dosage:      i18n.Text{EN: "Twice daily with food for 10 days", TA: "10 நாட்களுக்கு உணவுடன் தினமும் இரண்டு முறை"},
		Precautions: i18n.Text{EN: "Complete full course", TA: "முழு கோர்ஸ் முடிக்கவும்"},
	}
	medAntihistamine = medicine{
		Name:        "Antihistamine",
		Dosage:      i18n.Text{EN: "Once daily with food for 5 days", TA: "5 நாட்களுக்கு உணவுடன் தினமும் ஒரு முறை"},
		Precautions: i18n.Text{EN: "May cause drowsiness", TA: "தூக்கம் வரலாம்"},
	}
	medDoxycycline = medicine{
		Name:        "Doxycycline",
		Dosage:      i18n.Text{EN: "Once daily for 14 days", TA: "14 நாட்களுக்கு தினமும் ஒரு முறை"},
		Precautions: i18n.Text{EN: "Give with water to avoid throat irritation", TA: "தொண்டை எரிச்சலைத் தவிர்க்க தண்ணீருடன் கொடுக்கவும்"},
	}
	medAmprolium = medicine{
		Name:        "Amprolium",
		Dosage:      i18n.Text{EN: "Mix in drinking water for 5 days", TA: "5 நாட்களுக்கு குடிநீரில் கலந்து கொடுக்கவும்"},
		Precautions: i18n.Text{EN: "Remove other water sources during treatment", TA: "சிகிச்சையின் போது மற்ற நீர் ஆதாரங்களை அகற்றவும்"},
	}
	medOxytetracycline = medicine{
		Name:        "Oxytetracycline",
		Dosage:      i18n.Text{EN: "Once daily for 5 days", TA: "5 நாட்களுக்கு தினமும் ஒரு முறை"},
		Precautions: i18n.Text{EN: "Observe withdrawal period before consumption", TA: "நுகர்வுக்கு முன் திரும்பப் பெறும் காலத்தை கடைபிடிக்கவும்"},
	}
	medPenicillinG = medicine{
		Name:        "Penicillin G",
		Dosage:      i18n.Text{EN: "Intramuscular injection twice daily for 7 days", TA: "7 நாட்களுக்கு தசையில் ஊசி தினமும் இரண்டு முறை"},
		Precautions: i18n.Text{EN: "Milk withdrawal period: 4 days", TA: "பால் திரும்பப் பெறும் காலம்: 4 நாட்கள்"},
	}
	medMeloxicam = medicine{
		Name:        "Meloxicam",
		Dosage:      i18n.Text{EN: "Single dose, repeat after 24 hours if needed", TA: "ஒரு முறை, தேவைப்பட்டால் 24 மணிநேரத்திற்குப் பிறகு மீண்டும்"},
		Precautions: i18n.Text{EN: "Do not combine with other anti-inflammatories", TA: "மற்ற அழற்சி எதிர்ப்பு மருந்துகளுடன் சேர்க்க வேண்டாம்"},
	}
	medIvermectin = medicine{
		Name:        "Ivermectin",
		Dosage:      i18n.Text{EN: "Single injection, repeat after 14 days", TA: "ஒரு ஊசி, 14 நாட்களுக்குப் பிறகு மீண்டும்"},
		Precautions: i18n.Text{EN: "Follow weight-based dosing strictly", TA: "எடைக்கு ஏற்ற அளவை கண்டிப்பாக பின்பற்றவும்"},
	}
	medORS = medicine{
		Name:        "Oral Rehydration Salts",
		Dosage:      i18n.Text{EN: "Offer freely in drinking water", TA: "குடிநீரில் தாராளமாக வழங்கவும்"},
		Precautions: i18n.Text{EN: "Consult a veterinarian if no improvement in 24 hours", TA: "24 மணிநேரத்தில் முன்னேற்றம் இல்லையெனில் மருத்துவரை அணுகவும்"},
	}
)

var tables = map[animals.Category]table{
	animals.CategoryDog: {
		Diseases: []i18n.Text{
			{EN: "Skin Dermatitis", TA: "தோல் அழற்சி"},
			{EN: "Canine Parvovirus", TA: "நாய் பார்வோ வைரஸ்"},
			{EN: "Ear Infection", TA: "காது தொற்று"},
		},
		Symptoms:  []i18n.Text{symRedness, symItching, symHairLoss, symInflammation, symVomiting, symLethargy},
		Medicines: []medicine{medBetamethasone, medAmoxicillin, medAntihistamine},
	},
	animals.CategoryCat: {
		Diseases: []i18n.Text{
			{EN: "Upper Respiratory Infection", TA: "மேல் சுவாச நோய்த்தொற்று"},
			{EN: "Feline Conjunctivitis", TA: "பூனை கண் அழற்சி"},
			{EN: "Ringworm", TA: "படர்தாமரை"},
		},
		Symptoms:  []i18n.Text{symSneezing, symNasalDischarge, symWateryEyes, symFever, symAppetiteLoss},
		Medicines: []medicine{medAmoxicillin, medDoxycycline, medAntihistamine},
	},
	animals.CategoryPoultry: {
		Diseases: []i18n.Text{
			{EN: "Newcastle Disease", TA: "ராணிக்கெட் நோய்"},
			{EN: "Coccidiosis", TA: "காக்சிடியோசிஸ்"},
			{EN: "Fowl Pox", TA: "கோழி அம்மை"},
		},
		Symptoms:  []i18n.Text{symLethargy, symAppetiteLoss, symDroppings, symBreathing, symRuffled},
		Medicines: []medicine{medAmprolium, medOxytetracycline},
	},
	animals.CategoryCattle: {
		Diseases: []i18n.Text{
			{EN: "Mastitis", TA: "பால்மடி அழற்சி"},
			{EN: "Foot and Mouth Disease", TA: "கோமாரி நோய்"},
			{EN: "Bloat", TA: "வயிற்று உப்புசம்"},
		},
		Symptoms:  []i18n.Text{symMilkDrop, symSwollenUdder, symFever, symAppetiteLoss, symLameness},
		Medicines: []medicine{medPenicillinG, medOxytetracycline, medMeloxicam},
	},
	animals.CategoryPig: {
		Diseases: []i18n.Text{
			{EN: "Swine Erysipelas", TA: "பன்றி எரிசிபெலாஸ்"},
			{EN: "Mange", TA: "சொறி"},
			{EN: "Swine Respiratory Disease", TA: "பன்றி சுவாச நோய்"},
		},
		Symptoms:  []i18n.Text{symSkinLesions, symFever, symCoughing, symItching, symAppetiteLoss},
		Medicines: []medicine{medPenicillinG, medIvermectin, medOxytetracycline},
	},
	animals.CategoryGeneric: {
		Diseases: []i18n.Text{
			{EN: "Unidentified Condition", TA: "அடையாளம் காணப்படாத நிலை"},
		},
		Symptoms:  []i18n.Text{symLethargy, symAppetiteLoss, symFever, symVomiting},
		Medicines: []medicine{medORS},
	},
}

var recommendations = i18n.Texts{
	EN: []string{
		"Apply antiseptic cream",
		"Keep area clean and dry",
		"Consult veterinarian for prescription",
		"Monitor for worsening symptoms",
	},
	TA: []string{
		"கிருமி நாசினி களிம்பு தடவவும்",
		"பகுதியை சுத்தமாகவும் உலர்வாகவும் வைக்கவும்",
		"மருந்து பரிந்துரைக்கு மருத்துவரை அணுகவும்",
		"அறிகுறிகள் மோசமடைகிறதா என கண்காணிக்கவும்",
	},
}

// tableFor nunca falla: categorías desconocidas usan la tabla genérica.
func tableFor(c animals.Category) table {
	if t, ok := tables[c]; ok {
		return t
	}
	return tables[animals.CategoryGeneric]
}
