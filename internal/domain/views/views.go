package views

import (
	"strings"

	"vet-care-assistant/internal/i18n"
)

// View es la pantalla activa. Conmutación plana: cualquiera lleva a cualquiera.
type View string

const (
	Home          View = "home"
	Chat          View = "chat"
	Vet           View = "vet"
	Emergency     View = "emergency"
	Prescriptions View = "prescriptions"
	Detection     View = "detection"
)

var All = []View{Home, Chat, Vet, Emergency, Prescriptions, Detection}

// Parse devuelve Home para cualquier valor desconocido.
func Parse(s string) View {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range All {
		if v == known {
			return v
		}
	}
	return Home
}

type NavItem struct {
	View        View
	Label       string
	Description string
	Active      bool
}

type Screen struct {
	View     View
	Language i18n.Language
	Title    string
	Subtitle string
	Nav      []NavItem
}

type screenText struct {
	title    i18n.Text
	subtitle i18n.Text
	label    i18n.Text // texto del botón en la navegación
	desc     i18n.Text
}

var screens = map[View]screenText{
	Home: {
		title:    i18n.Text{EN: "Veterinary Care Assistant", TA: "கால்நடை பராமரிப்பு உதவியாளர்"},
		subtitle: i18n.Text{EN: "Your comprehensive platform for animal health management, emergency care, and veterinary services.", TA: "விலங்கு சுகாதார மேலாண்மை, அவசர பராமரிப்பு மற்றும் கால்நடை சேவைகளுக்கான உங்கள் முழுமையான தளம்."},
		label:    i18n.Text{EN: "Home", TA: "முகப்பு"},
	},
	Chat: {
		title:    i18n.Text{EN: "AI Veterinary Assistant", TA: "AI மருத்துவ உதவியாளர்"},
		subtitle: i18n.Text{EN: "Ask about animal diseases, symptoms, and first aid", TA: "விலங்கு நோய்கள், அறிகுறிகள் மற்றும் முதலுதவி பற்றி கேளுங்கள்"},
		label:    i18n.Text{EN: "Chat Assistant", TA: "அரட்டை உதவியாளர்"},
		desc:     i18n.Text{EN: "Get instant veterinary advice", TA: "உடனடி கால்நடை ஆலோசனை பெறுங்கள்"},
	},
	Vet: {
		title:    i18n.Text{EN: "Find Nearby Veterinarians", TA: "அருகிலுள்ள மருத்துவர்களைக் கண்டறியவும்"},
		subtitle: i18n.Text{EN: "Sri Lanka Northern Province", TA: "இலங்கை வடக்கு மாகாணம்"},
		label:    i18n.Text{EN: "Find Veterinarians", TA: "மருத்துவர்களைக் கண்டறி"},
		desc:     i18n.Text{EN: "Locate nearby veterinary clinics", TA: "அருகிலுள்ள கால்நடை மருத்துவமனைகளைக் கண்டறியவும்"},
	},
	Emergency: {
		title:    i18n.Text{EN: "Emergency First Aid", TA: "அவசர முதலுதவி"},
		subtitle: i18n.Text{EN: "Quick response for animal emergencies", TA: "விலங்கு அவசரநிலைகளுக்கு விரைவான மறுமொழி"},
		label:    i18n.Text{EN: "Emergency Aid", TA: "அவசர உதவி"},
		desc:     i18n.Text{EN: "First aid for animals", TA: "விலங்குகளுக்கான முதலுதவி"},
	},
	Prescriptions: {
		title:    i18n.Text{EN: "Prescription Management", TA: "மருந்து பரிந்துரை நிர்வாகம்"},
		subtitle: i18n.Text{EN: "AI-generated prescriptions and treatment plans", TA: "AI-உருவாக்கப்பட்ட மருந்து பரிந்துரைகள் மற்றும் சிகிச்சை திட்டங்கள்"},
		label:    i18n.Text{EN: "Prescriptions", TA: "மருந்து பரிந்துரைகள்"},
		desc:     i18n.Text{EN: "Manage medications", TA: "மருந்துகளை நிர்வகிக்கவும்"},
	},
	Detection: {
		title:    i18n.Text{EN: "Animal Disease Detection", TA: "விலங்கு நோய் கண்டறிதல்"},
		subtitle: i18n.Text{EN: "Upload image or video for AI analysis", TA: "AI பகுப்பாய்வுக்கு படம் அல்லது வீடியோ பதிவேற்றவும்"},
		label:    i18n.Text{EN: "Disease Detection", TA: "நோய் கண்டறிதல்"},
		desc:     i18n.Text{EN: "Analyze a photo or video of your animal", TA: "உங்கள் விலங்கின் புகைப்படம் அல்லது வீடியோவை பகுப்பாய்வு செய்யவும்"},
	},
}

// Render es puro: misma vista e idioma => misma pantalla.
func Render(v View, lang i18n.Language) Screen {
	st, ok := screens[v]
	if !ok {
		v = Home
		st = screens[Home]
	}

	nav := make([]NavItem, 0, len(All))
	for _, item := range All {
		t := screens[item]
		nav = append(nav, NavItem{
			View:        item,
			Label:       t.label.In(lang),
			Description: t.desc.In(lang),
			Active:      item == v,
		})
	}

	return Screen{
		View:     v,
		Language: lang,
		Title:    st.title.In(lang),
		Subtitle: st.subtitle.In(lang),
		Nav:      nav,
	}
}
