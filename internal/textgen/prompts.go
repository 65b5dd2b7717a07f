package textgen

import "fmt"

// Prompt builders and their fixed fallbacks, one pair per chatbot surface.

func LocationPrompt() string {
	return "Generate a brief, welcoming description of a fertility clinic location in San Diego, California. " +
		"Include positive aspects about accessibility, neighborhood, and facilities. Keep it to 2-3 sentences."
}

func LocationFallback() string {
	return "Our state-of-the-art facility in San Diego offers comfortable, private consultation rooms and advanced medical equipment."
}

func TreatmentPrompt(treatment string) string {
	return fmt.Sprintf("Provide a concise 2-3 sentence description of %s fertility treatment. "+
		"Focus on what the treatment involves and who it's for. Keep it patient-friendly and informative.", treatment)
}

func TreatmentFallback(treatment string) string {
	return fmt.Sprintf("%s\n\nThis treatment helps patients on their fertility journey. Our specialists can provide detailed information during your consultation.", treatment)
}

func StoriesPrompt() string {
	return "Generate 2 brief, inspiring fertility treatment success stories (2-3 sentences each). " +
		"Make them positive and hopeful, but keep them generic without specific names."
}

func StoriesFallback() string {
	return `"After years of trying, the compassionate team at Avenir helped us welcome our beautiful daughter. The entire journey was supported with care and expertise."

"The genetic testing and IVF treatment gave us the confidence we needed. We're now expecting twins and couldn't be happier with our decision."`
}

func CallbackPrompt(name, phone, preference string) string {
	return fmt.Sprintf(`Create a warm confirmation message for a fertility clinic callback request.
Include: thanking the patient by name, confirming contact method, and reassuring them about the callback timing.
End with: Warm regards, Avenir Fertility Clinic

Patient: %s
Contact: %s
Method: %s`, name, phone, preference)
}

func CallbackFallback(name, phone, preference string) string {
	return fmt.Sprintf("Thank you %s! Our fertility expert will contact you within 24 hours at %s via %s.\n\nWarm regards,\nAvenir Fertility Clinic", name, phone, preference)
}
