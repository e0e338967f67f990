package conversation

import (
	"fmt"
	"regexp"
	"strings"
)

// replies.go holds every canned response the router can produce. Keeping
// the texts in one file makes them easy to tweak without touching the
// routing logic.

// welcomeText seeds every new session.
const welcomeText = `Hello! 👋 I'm MedInfo, your medicine information assistant for Indian medicines.

I can help you with:
• Medicine details, composition & uses
• Side effects and precautions
• Indian alternatives and pricing
• Availability information

**Note:** I provide information only. For prescriptions or medical advice, please consult a licensed doctor.

How can I help you today?`

// deflectionText is the fixed refusal for personalized clinical questions.
const deflectionText = `I cannot provide medical prescriptions or personalized dosage advice. This requires a licensed medical professional who can evaluate your specific health condition.

**Please consult a doctor or pharmacist for:**
• Personal dosage recommendations
• Safety during pregnancy/breastfeeding
• Drug interactions with your current medications
• Suitability for your health conditions

Is there any general information about a medicine I can help you with?`

// feverGuidanceText lists common OTC options without prescribing.
const feverGuidanceText = `I cannot prescribe medication. However, I can provide information about medicines commonly used for fever in India.

**Common OTC fever medicines in India:**
• **Paracetamol** (Dolo 650, Crocin, Calpol) - Most commonly used
• **Ibuprofen** (Brufen, Ibugesic) - Also reduces inflammation
• **Combination products** (Crocin Advance, Combiflam)

Would you like detailed information about any of these? Just ask "Tell me about Dolo 650" for example.

⚠️ **Important:** If fever persists beyond 3 days or is very high, please consult a doctor.`

// followUpText is appended after every successful lookup.
const followUpText = `📸 **Does the packaging match what you have?**

If you'd like, you can upload a picture of your medicine strip or box for verification. Just click the image button below!`

// imageAckText answers an image upload. Image analysis is a declared
// non-capability; the text must say so rather than imply analysis happened.
const imageAckText = `Thank you for uploading the image! 🔍

**Image verification** feature is coming soon. This will help you:
• Verify if your medicine matches the description
• Check expiry date visibility
• Confirm authentic packaging

For now, please compare the medicine name, manufacturer, and composition with the information I provided above.

Is there anything else you'd like to know?`

// retryLaterText covers transport failures on the lookup path.
const retryLaterText = `I'm having trouble reaching the medicine database right now. Please try again in a moment.

In the meantime, you can ask about common medicines like "Dolo 650", "Azithromycin" or "Pan D" which I can answer from my built-in data.`

// configErrorText covers a missing provider credential.
const configErrorText = `The medicine lookup service is not fully configured on this server, so I couldn't search for that medicine online.

You can still ask about common medicines like "Dolo 650", "Azithromycin" or "Pan D" from my built-in data.`

// parseErrorText covers an unusable provider generation.
const parseErrorText = `I received an answer from the medicine database but couldn't read it properly. Please try asking again.`

// foundText introduces a resolved medicine card.
func foundText(name string) string {
	return fmt.Sprintf("Here's the detailed information for **%s**:", name)
}

// notFoundText invites a retry, with an optional provider suggestion.
func notFoundText(query, suggestion string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I couldn't find information about %q in my database. \n\n", query)
	if suggestion != "" {
		fmt.Fprintf(&b, "%s\n\n", suggestion)
	}
	b.WriteString(`**Try searching for:**
• Brand names like "Dolo 650", "Pan D", "Azithromycin"
• Generic names like "Paracetamol", "Omeprazole"

Is there another medicine you'd like to know about?`)
	return b.String()
}

// imageUploadText is the user-side transcript entry for an upload.
func imageUploadText(filename string) string {
	return fmt.Sprintf("[Uploaded image: %s]", filename)
}

// casualReplies maps each conversational opener to its canned reply.
var casualReplies = []struct {
	pattern *regexp.Regexp
	reply   string
}{
	{greetingRe, `Hello! 👋 Great to meet you! I'm here to help you with medicine information. What would you like to know about?`},
	{howAreYouRe, `I'm doing great, thank you for asking! 😊 Ready to help you with any medicine-related questions. What can I look up for you today?`},
	{thanksRe, `You're welcome! 🙏 Feel free to ask if you need information about any other medicines. Stay healthy!`},
	{goodbyeRe, `Goodbye! Take care and stay healthy! 👋 Feel free to come back anytime you need medicine information.`},
}

// casualReply selects the canned reply for a casual sub-category.
func casualReply(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	for _, cr := range casualReplies {
		if cr.pattern.MatchString(lowered) {
			return cr.reply
		}
	}
	return `I'm here to help! Would you like to know about any medicine?`
}
