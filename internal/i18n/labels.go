package i18n

import "vet-care-assistant/internal/domain/animals"

// Mapeo de claves estables -> texto visible. Solo se usa al renderizar.

var categoryNames = map[animals.Category]Text{
	animals.CategoryDog:     {EN: "Dog", TA: "நாய்"},
	animals.CategoryCat:     {EN: "Cat", TA: "பூனை"},
	animals.CategoryPoultry: {EN: "Poultry", TA: "கோழி"},
	animals.CategoryCattle:  {EN: "Cattle", TA: "மாடு"},
	animals.CategoryPig:     {EN: "Pig", TA: "பன்றி"},
	animals.CategoryGeneric: {EN: "Animal", TA: "விலங்கு"},
}

// Ojo: en el catálogo original "difficulty_breathing" y "choking" comparten
// la misma traducción en tamil; por eso las claves nunca son el texto visible.
var emergencyNames = map[animals.EmergencyType]Text{
	animals.EmergencySevereBleeding:      {EN: "Severe Bleeding", TA: "கடுமையான இரத்தப்போக்கு"},
	animals.EmergencyDifficultyBreathing: {EN: "Difficulty Breathing", TA: "மூச்சுத்திணறல்"},
	animals.EmergencyPoisoning:           {EN: "Poisoning", TA: "விஷம்"},
	animals.EmergencyChoking:             {EN: "Choking", TA: "மூச்சுத்திணறல்"},
	animals.EmergencyBrokenBones:         {EN: "Broken Bones", TA: "எலும்பு முறிவு"},
	animals.EmergencyHighFever:           {EN: "High Fever", TA: "அதிக காய்ச்சல்"},
	animals.EmergencySeizures:            {EN: "Seizures", TA: "வலிப்பு"},
	animals.EmergencyUnconscious:         {EN: "Unconscious", TA: "சுயநினைவில்லாத நிலை"},
}

var severityNames = map[animals.Severity]Text{
	animals.SeverityMild:     {EN: "Mild", TA: "லேசான"},
	animals.SeverityModerate: {EN: "Moderate", TA: "மிதமான"},
	animals.SeveritySevere:   {EN: "Severe", TA: "கடுமையான"},
}

var urgencyNames = map[animals.Urgency]Text{
	animals.UrgencyLow:    {EN: "Low", TA: "குறைவு"},
	animals.UrgencyMedium: {EN: "Medium", TA: "நடுத்தரம்"},
	animals.UrgencyHigh:   {EN: "High", TA: "அதிகம்"},
}

func CategoryName(c animals.Category, lang Language) string {
	if t, ok := categoryNames[c]; ok {
		return t.In(lang)
	}
	return categoryNames[animals.CategoryGeneric].In(lang)
}

func EmergencyName(e animals.EmergencyType, lang Language) string {
	if t, ok := emergencyNames[e]; ok {
		return t.In(lang)
	}
	return string(e)
}

func SeverityName(s animals.Severity, lang Language) string {
	if t, ok := severityNames[s]; ok {
		return t.In(lang)
	}
	return string(s)
}

func UrgencyName(u animals.Urgency, lang Language) string {
	if t, ok := urgencyNames[u]; ok {
		return t.In(lang)
	}
	return string(u)
}
