package menu

import (
	"fmt"
	"strings"

	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/clinic"
)

// Option is one selectable action shown under a view.
type Option struct {
	Label  string `json:"label"`
	Target string `json:"target"` // mode name the client should switch to
}

// View describes what the client should render for a mode. Route fills in the
// static scaffolding; generated copy (treatment blurbs, stories) is layered on
// by the chat handler.
type View struct {
	Mode    string   `json:"mode"`
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Options []Option `json:"options"`
}

const welcome = `Hi there! Welcome to Avenir Fertility Clinic!
I'm your virtual assistant. How can I help you today?`

// Route returns the view descriptor for a mode. It is a pure function of the
// mode; it never mutates session state.
func Route(m Mode) View {
	switch m {
	case ModeBooking:
		return View{
			Mode:  m.String(),
			Title: "Book an Appointment",
			Body:  "Let's get your appointment booked. Answer each question, or go back to change an earlier answer.",
			Options: []Option{
				{Label: "Back to Main", Target: ModeMain.String()},
			},
		}
	case ModeCost:
		var b strings.Builder
		b.WriteString("Treatment Costs & Packages\n\nOur treatment plans are customized based on your medical needs. Here are estimated costs:\n")
		for _, tc := range clinic.TreatmentCosts() {
			fmt.Fprintf(&b, "\n%s: %s", tc.Treatment, tc.Cost)
		}
		fmt.Fprintf(&b, "\n\nFor detailed pricing and personalized quotes, please call us at %s", clinic.Phone)
		return View{
			Mode:  m.String(),
			Title: "Cost / Packages",
			Body:  b.String(),
			Options: []Option{
				{Label: "Book Consultation", Target: ModeBooking.String()},
				{Label: "Back to Main", Target: ModeMain.String()},
			},
		}
	case ModeTreatments:
		return View{
			Mode:  m.String(),
			Title: "Learn About Treatments",
			Body:  "Which treatment would you like to know more about?",
			Options: []Option{
				{Label: "Book Consultation", Target: ModeBooking.String()},
				{Label: "Back to Main", Target: ModeMain.String()},
			},
		}
	case ModeLocation:
		return View{
			Mode:  m.String(),
			Title: "Clinic Location & Timings",
			Body: fmt.Sprintf("%s\nHours: %s\nPhone: %s\n\nWe're conveniently located in San Diego with ample parking and easy access.",
				clinic.Location, clinic.Hours, clinic.Phone),
			Options: []Option{
				{Label: "Book Appointment", Target: ModeBooking.String()},
				{Label: "Back to Main", Target: ModeMain.String()},
			},
		}
	case ModeExpert:
		return View{
			Mode:  m.String(),
			Title: "Talk to a Fertility Expert",
			Body:  "We'd be happy to connect you with our fertility specialists! Please share your details and we'll contact you.",
			Options: []Option{
				{Label: "Back to Main", Target: ModeMain.String()},
			},
		}
	case ModeStories:
		return View{
			Mode:  m.String(),
			Title: "Patient Success Stories",
			Body:  "Here are some inspiring stories from our patients:",
			Options: []Option{
				{Label: "Start Your Journey", Target: ModeBooking.String()},
				{Label: "Back to Main", Target: ModeMain.String()},
			},
		}
	default:
		return View{
			Mode:  ModeMain.String(),
			Title: "Avenir Fertility Clinic - San Diego",
			Body:  welcome,
			Options: []Option{
				{Label: "Book an Appointment", Target: ModeBooking.String()},
				{Label: "Learn About Treatments", Target: ModeTreatments.String()},
				{Label: "Cost / Packages", Target: ModeCost.String()},
				{Label: "Talk to a Fertility Expert", Target: ModeExpert.String()},
				{Label: "Know About Success Stories", Target: ModeStories.String()},
				{Label: "Get Clinic Location & Timings", Target: ModeLocation.String()},
			},
		}
	}
}
