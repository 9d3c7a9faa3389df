package locale

import (
	"fmt"

	"github.com/codex-anish/backend/internal/models"
)

// Canned answers per intent category. Every category carries an English
// entry; that entry doubles as the fallback for languages without a
// translation. These tables are configuration, not contract — tests pin
// the current policy.
var cannedResponses = map[models.IntentCategory]map[Language]string{
	models.IntentSmallTalkGreeting: {
		"en": "Hello! I'm AAROH. Ask me anything about PM-AJAY — eligibility, applications, scholarships or benefits.",
		"hi": "नमस्ते! मैं AAROH हूं। PM-AJAY के बारे में कुछ भी पूछें — पात्रता, आवेदन, छात्रवृत्ति या लाभ।",
		"or": "ନମସ୍କାର! ମୁଁ AAROH । PM-AJAY ବିଷୟରେ କିଛି ବି ପଚାରନ୍ତୁ।",
	},
	models.IntentSmallTalkThanks: {
		"en": "You're welcome! Feel free to ask if you have more questions about PM-AJAY.",
		"hi": "आपका स्वागत है! PM-AJAY से जुड़ा कोई और प्रश्न हो तो बेझिझक पूछें।",
		"or": "ସ୍ୱାଗତ! ଆଉ କିଛି ପ୍ରଶ୍ନ ଥିଲେ ପଚାରନ୍ତୁ।",
	},
	models.IntentSmallTalkFarewell: {
		"en": "Goodbye! Come back any time you need help with PM-AJAY.",
		"hi": "नमस्ते! PM-AJAY में मदद चाहिए तो फिर से आएं।",
		"or": "ନମସ୍କାର! ପୁଣି ଆସନ୍ତୁ।",
	},
	models.IntentHelpRejected: {
		"en": "If your PM-AJAY application was rejected, first check the rejection reason in your application status on the portal. Common causes are missing caste or income certificates and mismatched bank details. You can correct the documents and re-apply in the next cycle, or appeal through your district SC Welfare Office within 30 days of the decision.",
		"hi": "यदि आपका PM-AJAY आवेदन अस्वीकृत हुआ है, तो पहले पोर्टल पर आवेदन स्थिति में अस्वीकृति का कारण देखें। सामान्य कारण हैं जाति या आय प्रमाणपत्र का न होना और बैंक विवरण का मेल न खाना। आप दस्तावेज़ सुधार कर अगले चक्र में पुनः आवेदन कर सकते हैं, या निर्णय के 30 दिनों के भीतर जिला SC कल्याण कार्यालय के माध्यम से अपील कर सकते हैं।",
	},
	models.IntentHelpForgotCredentials: {
		"en": "To recover your PM-AJAY portal login, use the \"Forgot Password\" link on the sign-in page. An OTP will be sent to your registered mobile number. If you no longer have access to that number, visit your nearest Common Service Centre or SC Welfare Office with your Aadhaar card to reset it.",
		"hi": "PM-AJAY पोर्टल का लॉगिन वापस पाने के लिए साइन-इन पेज पर \"Forgot Password\" लिंक का उपयोग करें। आपके पंजीकृत मोबाइल नंबर पर OTP भेजा जाएगा। यदि वह नंबर अब आपके पास नहीं है, तो आधार कार्ड के साथ निकटतम जन सेवा केंद्र या SC कल्याण कार्यालय जाएं।",
	},
	models.IntentHelpStatusStuck: {
		"en": "If your application has been stuck in the same status for more than 15 working days, it is usually pending verification at the district level. Check the portal for any document queries raised against it, and if there are none, contact your district SC Welfare Office with your application number.",
		"hi": "यदि आपका आवेदन 15 कार्य दिवसों से अधिक समय से एक ही स्थिति में अटका है, तो वह प्रायः जिला स्तर पर सत्यापन के लिए लंबित होता है। पोर्टल पर देखें कि कोई दस्तावेज़ आपत्ति तो नहीं उठाई गई है; न हो तो अपने आवेदन क्रमांक के साथ जिला SC कल्याण कार्यालय से संपर्क करें।",
	},
	models.IntentHelpGeneral: {
		"en": "I can help with common PM-AJAY portal issues. Please check: (1) your application status and any document queries on the portal, (2) that your registered mobile number is active for OTPs, (3) that uploaded certificates are clear and within the size limit. If the problem continues, contact your district SC Welfare Office or the portal helpline with your application number.",
		"hi": "मैं PM-AJAY पोर्टल की सामान्य समस्याओं में मदद कर सकता हूं। कृपया जांचें: (1) पोर्टल पर आवेदन स्थिति और दस्तावेज़ आपत्तियां, (2) OTP के लिए पंजीकृत मोबाइल नंबर सक्रिय है, (3) अपलोड किए गए प्रमाणपत्र स्पष्ट और आकार सीमा में हैं। समस्या बनी रहे तो आवेदन क्रमांक के साथ जिला SC कल्याण कार्यालय या पोर्टल हेल्पलाइन से संपर्क करें।",
	},
	models.IntentHowToApply: {
		"en": "To apply under PM-AJAY: (1) register on the PM-AJAY portal with your mobile number, (2) fill the application form for the component you need (scholarship, skill training, housing or Grant-in-Aid), (3) upload your caste certificate, income certificate and bank passbook, (4) submit and note your application number. Your district SC Welfare Office can assist with the form free of charge.",
		"hi": "PM-AJAY में आवेदन करने के लिए: (1) अपने मोबाइल नंबर से PM-AJAY पोर्टल पर पंजीकरण करें, (2) आवश्यक घटक (छात्रवृत्ति, कौशल प्रशिक्षण, आवास या अनुदान) का आवेदन फॉर्म भरें, (3) जाति प्रमाणपत्र, आय प्रमाणपत्र और बैंक पासबुक अपलोड करें, (4) जमा करें और आवेदन क्रमांक नोट करें। जिला SC कल्याण कार्यालय निःशुल्क सहायता करता है।",
	},
}

// Localized failure strings. English is the universal default.
var generationFallbacks = map[Language]string{
	"en": "Sorry, I could not process your request right now. Please try again in a moment, or contact your local SC Welfare Office for urgent help.",
	"hi": "क्षमा करें, अभी आपका अनुरोध संसाधित नहीं हो सका। कृपया थोड़ी देर बाद पुनः प्रयास करें, या तत्काल सहायता के लिए अपने स्थानीय SC कल्याण कार्यालय से संपर्क करें।",
	"or": "ଦୁଃଖିତ, ବର୍ତ୍ତମାନ ଆପଣଙ୍କ ଅନୁରୋଧ ପ୍ରକ୍ରିୟା ହୋଇପାରିଲା ନାହିଁ। ଦୟାକରି କିଛି ସମୟ ପରେ ପୁଣି ଚେଷ୍ଟା କରନ୍ତୁ।",
}

var unintelligibleAudio = map[Language]string{
	"en": "Sorry, I could not understand the audio. Please try speaking again, a little slower and closer to the microphone.",
	"hi": "क्षमा करें, मैं ऑडियो समझ नहीं सका। कृपया थोड़ा धीरे और माइक्रोफोन के पास बोलकर दोबारा प्रयास करें।",
	"or": "ଦୁଃଖିତ, ମୁଁ ଅଡିଓ ବୁଝିପାରିଲି ନାହିଁ। ଦୟାକରି ପୁଣି ଥରେ କହନ୍ତୁ।",
}

// Target-language directives for the generation prompt.
var languageInstructions = map[Language]string{
	"hi": "Respond in Hindi (Devanagari script).",
	"or": "Respond in Odia (Odia script) if possible, otherwise Hindi.",
	"bn": "Respond in Bengali (Bengali script).",
	"ta": "Respond in Tamil (Tamil script).",
	"te": "Respond in Telugu (Telugu script).",
	"en": "Respond in English.",
}

// CannedResponse returns the precomputed answer for a canned category in
// the given language, falling back to the English entry when the language
// has no translation. ok is false for categories answered by the model.
func CannedResponse(cat models.IntentCategory, lang Language) (string, bool) {
	table, ok := cannedResponses[cat]
	if !ok {
		return "", false
	}
	if text, ok := table[lang]; ok {
		return text, true
	}
	return table[Default], true
}

// GenerationFallback is the localized substitute used when the generation
// model fails. Never empty.
func GenerationFallback(lang Language) string {
	if msg, ok := generationFallbacks[lang]; ok {
		return msg
	}
	return generationFallbacks[Default]
}

// UnintelligibleAudio is the localized terminal reply for a failed
// transcription.
func UnintelligibleAudio(lang Language) string {
	if msg, ok := unintelligibleAudio[lang]; ok {
		return msg
	}
	return unintelligibleAudio[Default]
}

// Instruction returns the target-language directive for the prompt.
func Instruction(lang Language) string {
	if ins, ok := languageInstructions[lang]; ok {
		return ins
	}
	return fmt.Sprintf("Respond in %s.", Name(lang))
}
