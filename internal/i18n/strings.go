// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

// String keys.
const (
	KeyAppTitle          = "app_title"
	KeyAppSubtitle       = "app_subtitle"
	KeyWelcomeMessage    = "welcome_message"
	KeyNewChat           = "new_chat"
	KeyStartNewChat      = "start_new_chat"
	KeyRecentChats       = "recent_chats"
	KeyTheme             = "theme"
	KeyLanguage          = "language"
	KeyAskAnything       = "ask_anything"
	KeyShareConversation = "share_conversation"
	KeyErrorMessage      = "error_message"
	KeyThinking          = "thinking"
	KeyNoHistory         = "no_history"
	KeyDisclaimer        = "disclaimer"
	KeyHelp              = "help"
	KeyFindLawyer        = "find_lawyer"
	KeyFindLocalLawyer   = "find_local_lawyer"
	KeyEnterCity         = "enter_city"
	KeyAreaOfLaw         = "area_of_law"
	KeySearch            = "search"
)

const helpText = `Commands:
  /new            start a new conversation
  /history        list saved conversations
  /open N         open conversation N (number or id prefix)
  /delete N       delete conversation N
  /theme [name]   switch theme (auto, dark, light)
  /lang [code]    switch interface language
  /share          copy-ready transcript of this conversation
  /export FORMAT  export to md, html or json
  /lawyer CITY [AREA]  search link for lawyers in CITY
  /help           show this help
  /quit           exit

Esc cancels a pending answer. Ctrl+C quits.`

// tables holds the translated strings. Keys missing from a language fall
// back to English.
var tables = map[string]map[string]string{
	// English
	"en": {
		KeyAppTitle:          "VakeelNow",
		KeyAppSubtitle:       "A Legal Assistant to help you with legal matters",
		KeyWelcomeMessage:    "Welcome to Vakeelnow! I am your AI Legal Assistant. How can I assist you today?",
		KeyNewChat:           "New Chat",
		KeyStartNewChat:      "Start New Chat",
		KeyRecentChats:       "Recent Chats",
		KeyTheme:             "Theme",
		KeyLanguage:          "Language",
		KeyAskAnything:       "Ask me anything...",
		KeyShareConversation: "Share Conversation",
		KeyErrorMessage:      "Sorry, an error occurred: %s",
		KeyThinking:          "Thinking...",
		KeyNoHistory:         "No saved conversations yet.",
		KeyDisclaimer:        "General legal information, not legal advice. Consult a qualified lawyer for your situation.",
		KeyHelp:              helpText,
		KeyFindLawyer:        "Find a Lawyer",
		KeyFindLocalLawyer:   "Find a Local Lawyer",
		KeyEnterCity:         "Enter City",
		KeyAreaOfLaw:         "Area of Law",
		KeySearch:            "Search",
	},
	// Hindi
	"hi": {
		KeyAppTitle:          "वकीलनॉउ",
		KeyAppSubtitle:       "कानूनी मामलों में आपकी मदद करने के लिए एक कानूनी सहायक",
		KeyWelcomeMessage:    "वकीलनॉउ में आपका स्वागत है! मैं आपका एआई कानूनी सहायक हूं। मैं आज आपकी कैसे सहायता कर सकता हूं?",
		KeyNewChat:           "नई चैट",
		KeyStartNewChat:      "नई चैट शुरू करें",
		KeyRecentChats:       "हाल की चैट",
		KeyTheme:             "थीम",
		KeyLanguage:          "भाषा",
		KeyAskAnything:       "मुझसे कुछ भी पूछें...",
		KeyShareConversation: "बातचीत साझा करें",
		KeyErrorMessage:      "क्षमा करें, एक त्रुटि हुई: %s",
		KeyFindLawyer:        "वकील खोजें",
		KeyFindLocalLawyer:   "स्थानीय वकील खोजें",
		KeyEnterCity:         "शहर दर्ज करें",
		KeyAreaOfLaw:         "कानून का क्षेत्र",
		KeySearch:            "खोजें",
	},
	// Bengali
	"bn": {
		KeyAppTitle:          "VakeelNow",
		KeyAppSubtitle:       "আইনি বিষয়ে আপনাকে সাহায্য করার জন্য একজন আইনি সহকারী",
		KeyWelcomeMessage:    "Vakeelnow-তে স্বাগতম! আমি আপনার AI আইনি সহকারী। আমি আজ আপনাকে কিভাবে সাহায্য করতে পারি?",
		KeyNewChat:           "নতুন চ্যাট",
		KeyStartNewChat:      "নতুন চ্যাট শুরু করুন",
		KeyRecentChats:       "সাম্প্রতিক চ্যাট",
		KeyTheme:             "থিম",
		KeyLanguage:          "ভাষা",
		KeyAskAnything:       "আমাকে কিছু জিজ্ঞাসা করুন...",
		KeyShareConversation: "কথোপকথন শেয়ার করুন",
		KeyErrorMessage:      "দুঃখিত, একটি ত্রুটি ঘটেছে: %s",
		KeyFindLawyer:        "আইনজীবী খুঁজুন",
		KeyFindLocalLawyer:   "স্থানীয় আইনজীবী খুঁজুন",
		KeyEnterCity:         "শহর লিখুন",
		KeyAreaOfLaw:         "আইনের ক্ষেত্র",
		KeySearch:            "অনুসন্ধান করুন",
	},
	// Gujarati
	"gu": {
		KeyAppTitle:          "વકીલનાઉ",
		KeyAppSubtitle:       "કાનૂની બાબતોમાં તમને મદદ કરવા માટે કાનૂની સહાયક",
		KeyWelcomeMessage:    "વકીલનાઉમાં આપનું સ્વાગત છે! હું તમારો AI કાનૂની સહાયક છું. હું આજે તમને કેવી રીતે મદદ કરી શકું?",
		KeyNewChat:           "નવી ચેટ",
		KeyStartNewChat:      "નવી ચેટ શરૂ કરો",
		KeyRecentChats:       "તાજેતરની ચેટ્સ",
		KeyTheme:             "થીમ",
		KeyLanguage:          "ભાષા",
		KeyAskAnything:       "મને કંઈપણ પૂછો...",
		KeyShareConversation: "વાર્તાલાપ શેર કરો",
		KeyErrorMessage:      "માફ કરશો, એક ભૂલ આવી: %s",
		KeyFindLawyer:        "વકીલ શોધો",
		KeyFindLocalLawyer:   "સ્થાનિક વકીલ શોધો",
		KeyEnterCity:         "શહેર દાખલ કરો",
		KeyAreaOfLaw:         "કાયદાનું ક્ષેત્ર",
		KeySearch:            "શોધો",
	},
	// Punjabi
	"pa": {
		KeyAppTitle:          "ਵਕੀਲਨਾਉ",
		KeyAppSubtitle:       "ਕਾਨੂੰਨੀ ਮਾਮਲਿਆਂ ਵਿੱਚ ਤੁਹਾਡੀ ਮਦਦ ਕਰਨ ਲਈ ਇੱਕ ਕਾਨੂੰਨੀ ਸਹਾਇਕ",
		KeyWelcomeMessage:    "ਵਕੀਲਨਾਉ ਵਿੱਚ ਤੁਹਾਡਾ ਸੁਆਗਤ ਹੈ! ਮੈਂ ਤੁਹਾਡਾ ਏਆਈ ਕਾਨੂੰਨੀ ਸਹਾਇਕ ਹਾਂ। ਮੈਂ ਅੱਜ ਤੁਹਾਡੀ ਕਿਵੇਂ ਮਦਦ ਕਰ ਸਕਦਾ ਹਾਂ?",
		KeyNewChat:           "ਨਵੀਂ ਗੱਲਬਾਤ",
		KeyStartNewChat:      "ਨਵੀਂ ਗੱਲਬਾਤ ਸ਼ੁਰੂ ਕਰੋ",
		KeyRecentChats:       "ਹਾਲੀਆ ਗੱਲਬਾਤਾਂ",
		KeyTheme:             "ਥੀਮ",
		KeyLanguage:          "ਭਾਸ਼ਾ",
		KeyAskAnything:       "ਮੈਨੂੰ ਕੁਝ ਵੀ ਪੁੱਛੋ...",
		KeyShareConversation: "ਗੱਲਬਾਤ ਸਾਂਝੀ ਕਰੋ",
		KeyErrorMessage:      "ਮੁਆਫ ਕਰਨਾ, ਇੱਕ ਗਲਤੀ ਹੋਈ: %s",
		KeyFindLawyer:        "ਵਕੀਲ ਲੱਭੋ",
		KeyFindLocalLawyer:   "ਸਥਾਨਕ ਵਕੀਲ ਲੱਭੋ",
		KeyEnterCity:         "ਸ਼ਹਿਰ ਦਾਖਲ ਕਰੋ",
		KeyAreaOfLaw:         "ਕਾਨੂੰਨ ਦਾ ਖੇਤਰ",
		KeySearch:            "ਖੋਜ",
	},
	// Kannada
	"kn": {
		KeyAppTitle:          "ವಕೀಲ್‌ನೌ",
		KeyAppSubtitle:       "ಕಾನೂನು ವಿಷಯಗಳಲ್ಲಿ ನಿಮಗೆ ಸಹಾಯ ಮಾಡಲು ಕಾನೂನು ಸಹಾಯಕ",
		KeyWelcomeMessage:    "ವಕೀಲ್‌ನೌಗೆ ಸುಸ್ವಾಗತ! ನಾನು ನಿಮ್ಮ AI ಕಾನೂನು ಸಹಾಯಕ. ನಾನು ಇಂದು ನಿಮಗೆ ಹೇಗೆ ಸಹಾಯ ಮಾಡಲಿ?",
		KeyNewChat:           "ಹೊಸ ಚಾಟ್",
		KeyStartNewChat:      "ಹೊಸ ಚಾಟ್ ಪ್ರಾರಂಭಿಸಿ",
		KeyRecentChats:       "ಇತ್ತೀಚಿನ ಚಾಟ್‌ಗಳು",
		KeyTheme:             "ಥೀಮ್",
		KeyLanguage:          "ಭಾಷೆ",
		KeyAskAnything:       "ನನ್ನನ್ನು ಏನು ಬೇಕಾದರೂ ಕೇಳಿ...",
		KeyShareConversation: "ಸಂಭಾಷಣೆಯನ್ನು ಹಂಚಿಕೊಳ್ಳಿ",
		KeyErrorMessage:      "ಕ್ಷಮಿಸಿ, ದೋಷವೊಂದು ಸಂಭವಿಸಿದೆ: %s",
		KeyFindLawyer:        "ವಕೀಲರನ್ನು ಹುಡುಕಿ",
		KeyFindLocalLawyer:   "ಸ್ಥಳೀಯ ವಕೀಲರನ್ನು ಹುಡುಕಿ",
		KeyEnterCity:         "ನಗರವನ್ನು ನಮೂದಿಸಿ",
		KeyAreaOfLaw:         "ಕಾನೂನಿನ ಕ್ಷೇತ್ರ",
		KeySearch:            "ಹುಡುಕಿ",
	},
	// Malayalam
	"ml": {
		KeyAppTitle:          "വക്കീൽനൗ",
		KeyAppSubtitle:       "നിയമപരമായ കാര്യങ്ങളിൽ നിങ്ങളെ സഹായിക്കാൻ ഒരു നിയമ സഹായി",
		KeyWelcomeMessage:    "വക്കീൽനൗ-ലേക്ക് സ്വാഗതം! ഞാൻ നിങ്ങളുടെ AI നിയമ സഹായിയാണ്. ഇന്ന് ഞാൻ നിങ്ങളെ എങ്ങനെ സഹായിക്കും?",
		KeyNewChat:           "പുതിയ ചാറ്റ്",
		KeyStartNewChat:      "പുതിയ ചാറ്റ് ആരംഭിക്കുക",
		KeyRecentChats:       "സമീപകാല ചാറ്റുകൾ",
		KeyTheme:             "തീം",
		KeyLanguage:          "ഭാഷ",
		KeyAskAnything:       "എന്നെ എന്തും ചോദിക്കൂ...",
		KeyShareConversation: "സംഭാഷണം പങ്കിടുക",
		KeyErrorMessage:      "ക്ഷമിക്കണം, ഒരു പിശക് സംഭവിച്ചു: %s",
		KeyFindLawyer:        "അഭിഭാഷകനെ കണ്ടെത്തുക",
		KeyFindLocalLawyer:   "പ്രാദേശിക അഭിഭാഷകനെ കണ്ടെത്തുക",
		KeyEnterCity:         "നഗരം നൽകുക",
		KeyAreaOfLaw:         "നിയമ മേഖല",
		KeySearch:            "തിരയുക",
	},
	// Odia
	"or": {
		KeyAppTitle:          "VakeelNow",
		KeyAppSubtitle:       "ଆଇନଗତ ମାମଲାରେ ଆପଣଙ୍କୁ ସାହାଯ୍ୟ କରିବା ପାଇଁ ଜଣେ ଆଇନଗତ ସହାୟକ",
		KeyWelcomeMessage:    "Vakeelnowକୁ ସ୍ଵାଗତ! ମୁଁ ଆପଣଙ୍କର AI ଆଇନଗତ ସହାୟକ। ମୁଁ ଆଜି ଆପଣଙ୍କୁ କିପରି ସାହାଯ୍ୟ କରିପାରିବି?",
		KeyNewChat:           "ନୂଆ ଚାଟ୍",
		KeyStartNewChat:      "ନୂଆ ଚାଟ୍ ଆରମ୍ଭ କରନ୍ତୁ",
		KeyRecentChats:       "ସାମ୍ପ୍ରତିକ ଚାଟ୍",
		KeyTheme:             "ଥିମ୍",
		KeyLanguage:          "ଭାଷା",
		KeyAskAnything:       "ମୋତେ କିଛି ବି ପଚାରନ୍ତୁ...",
		KeyShareConversation: "ବାର୍ତ୍ତାଳାପ ସେୟାର କରନ୍ତୁ",
		KeyErrorMessage:      "ଦୁଃଖିତ, ଏକ ତ୍ରୁଟି ଘଟିଛି: %s",
		KeyFindLawyer:        "ଓକିଲ ଖୋଜନ୍ତୁ",
		KeyFindLocalLawyer:   "ସ୍ଥାନୀୟ ଓକିଲ ଖୋଜନ୍ତୁ",
		KeyEnterCity:         "ସହର ପ୍ରବେଶ କରନ୍ତୁ",
		KeyAreaOfLaw:         "ଆଇନର କ୍ଷେତ୍ର",
		KeySearch:            "ଖୋଜନ୍ତୁ",
	},
	// Urdu
	"ur": {
		KeyAppTitle:          "VakeelNow",
		KeyAppSubtitle:       "قانونی معاملات میں آپ کی مدد کے لیے ایک قانونی اسسٹنٹ",
		KeyWelcomeMessage:    "Vakeelnow میں خوش آمدید! میں آپ کا AI قانونی اسسٹنٹ ہوں۔ میں آج آپ کی کس طرح مدد کر سکتا ہوں؟",
		KeyNewChat:           "نئی چیٹ",
		KeyStartNewChat:      "نئی چیٹ شروع کریں",
		KeyRecentChats:       "حالیہ چیٹس",
		KeyTheme:             "تھیم",
		KeyLanguage:          "زبان",
		KeyAskAnything:       "مجھ سے کچھ بھی پوچھیں...",
		KeyShareConversation: "گفتگو کا اشتراک کریں",
		KeyErrorMessage:      "معذرت، ایک خرابی پیش آگئی: %s",
		KeyFindLawyer:        "وکیل تلاش کریں",
		KeyFindLocalLawyer:   "مقامی وکیل تلاش کریں",
		KeyEnterCity:         "شہر درج کریں",
		KeyAreaOfLaw:         "قانون کا شعبہ",
		KeySearch:            "تلاش کریں",
	},
	// Tamil
	"ta": {
		KeyAppTitle:          "VakeelNow",
		KeyAppSubtitle:       "சட்ட விஷயங்களில் உங்களுக்கு உதவ ஒரு சட்ட உதவியாளர்",
		KeyWelcomeMessage:    "Vakeelnow-க்கு வரவேற்கிறோம்! நான் உங்கள் AI சட்ட உதவியாளர். இன்று நான் உங்களுக்கு எப்படி உதவ முடியும்?",
		KeyNewChat:           "புதிய அரட்டை",
		KeyStartNewChat:      "புதிய அரட்டையைத் தொடங்கு",
		KeyRecentChats:       "சமீபத்திய அரட்டைகள்",
		KeyTheme:             "தீம்",
		KeyLanguage:          "மொழி",
		KeyAskAnything:       "என்னிடம் எதையும் கேளுங்கள்...",
		KeyShareConversation: "உரையாடலைப் பகிரவும்",
		KeyErrorMessage:      "மன்னிக்கவும், ஒரு பிழை ஏற்பட்டது: %s",
		KeyFindLawyer:        "வழக்கறிஞரைக் கண்டுபிடி",
		KeyFindLocalLawyer:   "உள்ளூர் வழக்கறிஞரைக் கண்டுபிடி",
		KeyEnterCity:         "நகரத்தை உள்ளிடவும்",
		KeyAreaOfLaw:         "சட்டப் பகுதி",
		KeySearch:            "தேடு",
	},
	// Telugu
	"te": {
		KeyAppTitle:          "వకీల్‌నౌ",
		KeyAppSubtitle:       "చట్టపరమైన విషయాలలో మీకు సహాయం చేయడానికి ఒక లీగల్ అసిస్టెంట్",
		KeyWelcomeMessage:    "వకీల్‌నౌకు స్వాగతం! నేను మీ AI లీగల్ అసిస్టెంట్‌ని. ఈ రోజు నేను మీకు ఎలా సహాయపడగలను?",
		KeyNewChat:           "కొత్త చాట్",
		KeyStartNewChat:      "కొత్త చాట్ ప్రారంభించండి",
		KeyRecentChats:       "ఇటీవలి చాట్‌లు",
		KeyTheme:             "థీమ్",
		KeyLanguage:          "భాష",
		KeyAskAnything:       "నన్ను ఏదైనా అడగండి...",
		KeyShareConversation: "సంభాషణను పంచుకోండి",
		KeyErrorMessage:      "క్షమించండి, లోపం సంభవించింది: %s",
		KeyFindLawyer:        "న్యాయవాదిని కనుగొనండి",
		KeyFindLocalLawyer:   "స్థానిక న్యాయవాదిని కనుగొనండి",
		KeyEnterCity:         "నగరాన్ని నమోదు చేయండి",
		KeyAreaOfLaw:         "చట్టం యొక్క ప్రాంతం",
		KeySearch:            "వెతకండి",
	},
}
