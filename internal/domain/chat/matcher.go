package chat

import (
	"strings"

	"vet-care-assistant/internal/i18n"
)

type rule struct {
	intent   Intent
	keywords []string // en ambos idiomas; se compara contra el texto en minúsculas
	reply    i18n.Text
}

// El orden importa: gana la primera regla que matchea.
var rules = []rule{
	{
		intent:   IntentRabies,
		keywords: []string{"rabies", "வெறிநாய்"},
		reply: i18n.Text{
			EN: "Rabies symptoms in dogs include: excessive drooling, difficulty swallowing, behavioral changes, aggression, and paralysis. This is a medical emergency - seek immediate veterinary care. Keep the animal isolated and contact authorities.",
			TA: "நாய்களில் வெறிநாய்க்கடியின் அறிகுறிகள்: அதிக உமிழ்நீர், விழுங்குவதில் சிரமம், நடத்தை மாற்றம், ஆக்ரோஷம் மற்றும் பக்கவாதம். இது ஒரு மருத்துவ அவசரநிலை - உடனடி மருத்துவ பராமரிப்பு தேவை.",
		},
	},
	{
		intent:   IntentFever,
		keywords: []string{"fever", "காய்ச்சல்"},
		reply: i18n.Text{
			EN: "For fever in cats: Keep them hydrated, provide a cool environment, monitor temperature, and consult a vet if fever persists over 24 hours. Normal cat temperature is 100.5-102.5°F. Give plenty of water and rest.",
			TA: "பூனைகளில் காய்ச்சலுக்கு: அவற்றை நீர்ச்சத்து பராமரிக்க, குளிர்ந்த சூழலை வழங்க, வெப்பநிலையை கண்காணிக்க, 24 மணிநேரத்திற்கு மேல் காய்ச்சல் நீடித்தால் மருத்துவரை அணுக வேண்டும்.",
		},
	},
	{
		intent:   IntentInjury,
		keywords: []string{"injury", "wound", "காயம்"},
		reply: i18n.Text{
			EN: "For animal injuries: 1) Stay calm and approach carefully 2) Clean the wound with saline solution 3) Apply pressure to stop bleeding 4) Cover with sterile bandage 5) Seek veterinary care immediately for deep wounds.",
			TA: "விலங்கு காயங்களுக்கு: 1) அமைதியாக இருங்கள் 2) காயத்தை உப்பு நீரால் சுத்தப்படுத்துங்கள் 3) இரத்தப்போக்கை நிறுத்த அழுத்தம் கொடுங்கள் 4) மலட்டு கட்டுடன் மூடுங்கள் 5) ஆழமான காயங்களுக்கு உடனடி மருத்துவ பராமரிப்பு தேவை.",
		},
	},
	{
		intent:   IntentPoultry,
		keywords: []string{"poultry", "chicken", "கோழி"},
		reply: i18n.Text{
			EN: "Common poultry health issues: respiratory infections, parasites, and digestive problems. Watch for lethargy, decreased appetite, abnormal droppings, or breathing difficulties. Isolate sick birds and consult a poultry veterinarian.",
			TA: "பொதுவான கோழி ஆரோக்கிய பிரச்சினைகள்: சுவாச நோய்த்தொற்றுகள், ஒட்டுண்ணிகள் மற்றும் செரிமான பிரச்சினைகள். சோர்வு, பசியின்மை, அசாதாரண மலம் அல்லது மூச்சுத்திணறல் ஆகியவற்றைக் கவனிக்கவும்.",
		},
	},
	{
		intent:   IntentCattle,
		keywords: []string{"cattle", "cow", "மாடு"},
		reply: i18n.Text{
			EN: "Cattle health monitoring: Check for normal eating, rumination, and social behavior. Watch for signs like loss of appetite, isolation, abnormal discharge, or changes in milk production. Regular health checks are essential.",
			TA: "மாட்டு ஆரோக்கிய கண்காணிப்பு: சாதாரண உணவு, அசைபோடுதல் மற்றும் சமூக நடத்தையை சரிபார்க்கவும். பசியின்மை, தனிமை, அசாதாரண வெளியேற்றம் அல்லது பால் உற்பத்தியில் மாற்றங்கள் போன்ற அறிகுறிகளைக் கவனிக்கவும்.",
		},
	},
	{
		intent:   IntentPig,
		keywords: []string{"pig", "swine", "பன்றி"},
		reply: i18n.Text{
			EN: "Pig health essentials: Monitor for normal appetite, activity, and breathing. Common issues include respiratory problems, digestive disorders, and skin conditions. Maintain proper hygiene and ventilation.",
			TA: "பன்றி ஆரோக்கிய அடிப்படைகள்: சாதாரண பசி, செயல்பாடு மற்றும் சுவாசத்தை கண்காணிக்கவும். பொதுவான பிரச்சினைகள் சுவாச பிரச்சினைகள், செரிமான கோளாறுகள் மற்றும் தோல் நிலைமைகள்.",
		},
	},
}

var generalReply = i18n.Text{
	EN: "I can help you with animal health questions, disease symptoms, and first aid guidance. Please provide more specific details about the animal and symptoms you're observing, and I'll give you detailed advice.",
	TA: "விலங்கு ஆரோக்கிய கேள்விகள், நோய் அறிகுறிகள் மற்றும் முதலுதவி வழிகாட்டுதலுடன் உங்களுக்கு உதவ முடியும். நீங்கள் அவதானிக்கும் விலங்கு மற்றும் அறிகுறிகள் பற்றி மேலும் குறிப்பிட்ட விவரங்களை வழங்கவும்.",
}

var welcomeMessage = i18n.Text{
	EN: "Hello! I'm your AI veterinary assistant. I can help you with animal health questions, disease symptoms, and first aid guidance. How can I help you today?",
	TA: "வணக்கம்! நான் உங்களின் AI மருத்துவ உதவியாளர். விலங்கு ஆரோக்கிய கேள்விகள், நோய் அறிகுறிகள் மற்றும் முதலுதவி வழிகாட்டுதலுடன் உங்களுக்கு உதவ முடியும். இன்று நான் உங்களுக்கு எப்படி உதவ முடியும்?",
}

var exampleQuestions = i18n.Texts{
	EN: []string{
		"What are the symptoms of rabies in dogs?",
		"How to treat a cat with fever?",
		"First aid for injured poultry",
		"Signs of illness in cattle",
	},
	TA: []string{
		"நாய்களில் வெறிநாய்க்கடியின் அறிகுறிகள் என்ன?",
		"காய்ச்சல் உள்ள பூனையை எப்படி சிகிச்சை செய்வது?",
		"காயமடைந்த கோழிக்கு முதலுதவி",
		"மாட்டில் நோயின் அறிகுறிகள்",
	},
}

// Match elige la respuesta enlatada para text. Es total: nunca devuelve texto vacío.
func Match(text string, lang i18n.Language) Reply {
	q := strings.ToLower(text)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return Reply{Intent: r.intent, Text: r.reply.In(lang)}
			}
		}
	}

	return Reply{Intent: IntentGeneral, Text: generalReply.In(lang)}
}

func Welcome(lang i18n.Language) string {
	return welcomeMessage.In(lang)
}

func Examples(lang i18n.Language) []string {
	return exampleQuestions.In(lang)
}
