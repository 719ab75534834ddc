package lang

import "fmt"

const (
	GenerationFailed = "Sorry, I could not generate a response."
)

type Messages struct {
	NoInfo          string
	HelpFurther     string
	NoSkills        string
	SkillsIntro     string
	CertsIntro      string
	AICertsIntro    string
	ContactRedirect string
	greetingKnown   string
	greetingAsk     string
	farewellKnown   string
	farewell        string
}

var catalog = map[Language]Messages{
	English: {
		NoInfo:          "I don't have that specific information at the moment. How can I help further?",
		HelpFurther:     "How can I help further?",
		NoSkills:        "I couldn't find a skills list right now.",
		SkillsIntro:     "Here are the main skills:",
		CertsIntro:      "Here are the certifications:",
		AICertsIntro:    "Here are the AI certifications:",
		ContactRedirect: "For projects, rates or availability, please reach out through the contact page: %s",
		greetingKnown:   "Hi %s! I'm %s, the assistant of this portfolio. What would you like to know?",
		greetingAsk:     "Hi! I'm %s, the assistant of this portfolio. What's your name?",
		farewellKnown:   "Goodbye %s, thanks for stopping by!",
		farewell:        "Goodbye, thanks for stopping by!",
	},
	French: {
		NoInfo:          "Je n'ai pas cette information précise pour le moment. Comment puis-je vous aider davantage?",
		HelpFurther:     "Comment puis-je vous aider davantage?",
		NoSkills:        "Je n'ai pas trouvé de liste de compétences pour le moment.",
		SkillsIntro:     "Voici les principales compétences :",
		CertsIntro:      "Voici les certifications :",
		AICertsIntro:    "Voici les certifications en IA :",
		ContactRedirect: "Pour un projet, des tarifs ou des disponibilités, merci de passer par la page de contact : %s",
		greetingKnown:   "Bonjour %s ! Je suis %s, l'assistant de ce portfolio. Que souhaitez-vous savoir ?",
		greetingAsk:     "Bonjour ! Je suis %s, l'assistant de ce portfolio. Comment vous appelez-vous ?",
		farewellKnown:   "Au revoir %s, merci de votre visite !",
		farewell:        "Au revoir, merci de votre visite !",
	},
}

func For(l Language) Messages {
	if m, ok := catalog[l]; ok {
		return m
	}
	return catalog[English]
}

func (m Messages) Greeting(agent, name string) string {
	if name != "" {
		return fmt.Sprintf(m.greetingKnown, name, agent)
	}
	return fmt.Sprintf(m.greetingAsk, agent)
}

func (m Messages) Farewell(name string) string {
	if name != "" {
		return fmt.Sprintf(m.farewellKnown, name)
	}
	return m.farewell
}

func (m Messages) Contact(url string) string {
	return fmt.Sprintf(m.ContactRedirect, url)
}
