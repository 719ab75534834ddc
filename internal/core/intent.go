package core

type Intent int

const (
	IntentGeneral Intent = iota
	IntentGreeting
	IntentFarewell
	IntentAgentName
	IntentAbout
	IntentAICert
	IntentCert
	IntentContact
	IntentTeaching
	IntentSkills
	IntentAIProject
)

var intentNames = map[Intent]string{
	IntentGeneral:   "general",
	IntentGreeting:  "greeting",
	IntentFarewell:  "farewell",
	IntentAgentName: "agent_name",
	IntentAbout:     "about",
	IntentAICert:    "ai_cert",
	IntentCert:      "cert",
	IntentContact:   "contact",
	IntentTeaching:  "teaching",
	IntentSkills:    "skills",
	IntentAIProject: "ai_project",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}
