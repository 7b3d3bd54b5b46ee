package emergency

import (
	"vet-care-assistant/internal/domain/animals"
	"vet-care-assistant/internal/i18n"
)

// Key identifica un protocolo. Siempre claves estables, nunca texto traducido.
type Key struct {
	Category animals.Category
	Type     animals.EmergencyType
}

// Solo existen estas tres combinaciones; el resto devuelve lista vacía.
var protocols = map[Key]i18n.Texts{
	{animals.CategoryDog, animals.EmergencySevereBleeding}: {
		EN: []string{
			"Keep calm and approach the dog carefully",
			"Apply direct pressure to the wound with clean cloth",
			"If bleeding doesn't stop, apply pressure to pressure points",
			"Elevate the wounded area if possible",
			"Apply bandage and seek immediate veterinary care",
		},
		TA: []string{
			"அமைதியாக இருங்கள் மற்றும் நாயை கவனமாக அணுகவும்",
			"சுத்தமான துணியால் காயத்தின் மீது நேரடி அழுத்தம் கொடுங்கள்",
			"இரத்தப்போக்கு நிற்கவில்லை என்றால், அழுத்த புள்ளிகளில் அழுத்தம் கொடுங்கள்",
			"முடிந்தால் காயமடைந்த பகுதியை உயர்த்தவும்",
			"கட்டு போட்டு உடனடி மருத்துவ உதவி பெறவும்",
		},
	},
	{animals.CategoryCat, animals.EmergencyDifficultyBreathing}: {
		EN: []string{
			"Keep the cat calm and quiet",
			"Ensure airway is clear - remove any visible obstructions",
			"Position cat upright or on side",
			"Provide fresh air and cool environment",
			"Transport to veterinarian immediately",
		},
		TA: []string{
			"பூனையை அமைதியாகவும் அமைதியாகவும் வைத்திருங்கள்",
			"காற்றுப்பாதை தெளிவாக உள்ளதை உறுதி செய்யவும் - தெரியும் தடைகளை அகற்றவும்",
			"பூனையை நேராக அல்லது பக்கவாட்டில் வைக்கவும்",
			"புதிய காற்று மற்றும் குளிர்ந்த சூழலை வழங்கவும்",
			"உடனடியாக மருத்துவரிடம் கொண்டு செல்லவும்",
		},
	},
	{animals.CategoryPoultry, animals.EmergencyPoisoning}: {
		EN: []string{
			"Remove bird from source of poison immediately",
			"Do NOT induce vomiting unless instructed by veterinarian",
			"Provide fresh water if bird is conscious",
			"Keep bird warm and quiet",
			"Contact poultry veterinarian immediately",
		},
		TA: []string{
			"பறவையை உடனடியாக விஷ மூலத்திலிருந்து அகற்றவும்",
			"மருத்துவர் அறிவுறுத்தாத வரை வாந்தியை தூண்ட வேண்டாம்",
			"பறவை சுயநினைவில் இருந்தால் புதிய தண்ணீர் வழங்கவும்",
			"பறவையை சூடாகவும் அமைதியாகவும் வைக்கவும்",
			"உடனடியாக கோழி மருத்துவரை தொடர்பு கொள்ளவும்",
		},
	},
}

var (
	warning = i18n.Text{
		EN: "Warning: This is emergency guidance only. Contact a veterinarian immediately.",
		TA: "எச்சரிக்கை: இது அவசர வழிகாட்டுதல் மட்டுமே. உடனடியாக மருத்துவரை தொடர்பு கொள்ளவும்.",
	}
	criticalNotice = i18n.Text{
		EN: "Time is critical - contact veterinarian immediately after providing first aid",
		TA: "நேரம் முக்கியம் - முதலுதவி வழங்கிய பிறகு உடனடியாக மருத்துவரை தொடர்பு கொள்ளவும்",
	}
	hotlineLabel = i18n.Text{
		EN: "Emergency Hotline",
		TA: "அவசர தொலைபேசி",
	}
)

// Steps es la búsqueda exacta por (categoría, tipo). Nunca devuelve nil:
// sin protocolo => lista vacía, y la UI simplemente no muestra pasos.
func Steps(category animals.Category, typ animals.EmergencyType, lang i18n.Language) []string {
	p, ok := protocols[Key{Category: category, Type: typ}]
	if !ok {
		return []string{}
	}
	return p.In(lang)
}

// Keys devuelve las combinaciones con protocolo cargado.
func Keys() []Key {
	out := make([]Key, 0, len(protocols))
	for _, c := range animals.Categories {
		for _, t := range animals.EmergencyTypes {
			if _, ok := protocols[Key{c, t}]; ok {
				out = append(out, Key{c, t})
			}
		}
	}
	return out
}
