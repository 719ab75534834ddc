package router

import (
	"regexp"
	"strings"

	"github.com/sandevgo/sensei/internal/service/retrieval"
)

// Predicate reports whether a raw user message belongs to an intent.
type Predicate func(msg string) bool

var (
	agentNameRe = regexp.MustCompile(`(?i)\b(what(?:'s| is) your name|tell me your name|who am i (?:talking|speaking) (?:to|with)|your name\s*\?|quel est (?:ton|votre) nom|comment (?:tu t'appelles|t'appelles-tu|vous appelez-vous))`)
	greetingRe  = regexp.MustCompile(`(?i)^\W*(hi|hello|hey|hiya|howdy|greetings|good (?:morning|afternoon|evening|day)|bonjour|bonsoir|salut|coucou)\b`)
	farewellRe  = regexp.MustCompile(`(?i)^\W*(?:(?:bye|goodbye|good bye|see you|see ya|farewell|take care|thanks,? bye|au revoir|a bientot)\b|à bientôt|bonne (?:journée|soirée))`)
	questionRe  = regexp.MustCompile(`(?i)\?|\b(what|who|whom|whose|how|why|when|where|which|can|could|would|do|does|did|are|is|tell|quoi|que|quel|quelle|quels|quelles|comment|pourquoi|quand|est-ce)\b`)
	certRe      = regexp.MustCompile(`(?i)(certif\w*|\bcerts?\b|\bcredentials?\b|\bdiplômes?\b)`)
	contactRe   = regexp.MustCompile(`(?i)\b(contact|hire|hiring|reach (?:you|him|her|out)|get in touch|e-?mail|phone|rates?|pricing|prices?|cost|quote|availability|freelance|book a call|work with (?:you|him|her)|embaucher|tarifs?|prix|disponib\w*|contacter|joindre|devis)\b`)
	skillsRe    = regexp.MustCompile(`(?i)\b(skills?|skillset|stack|tech stack|technolog(?:y|ies)|tools?|languages?|frameworks?|expertise|compétences?|technologies|outils)\b`)
	projectRe   = regexp.MustCompile(`(?i)\b(projects?|work(?:ed|s)?|built|build|portfolio|case stud(?:y|ies)|experience|projets?|réalisations?)\b`)
)

// aiRe accepts an elided article ("l'IA", "d'IA") before the keyword but no
// other apostrophe, so the French "j'ai" does not read as AI.
var aiRe = regexp.MustCompile(`(?i)(?:^|[^\p{L}'’]|\b[ld]['’])(ai|ia|artificial intelligence|intelligence artificielle|machine learning|ml|genai|generative|llms?|deep learning)\b`)

func AsksAgentName(msg string) bool { return agentNameRe.MatchString(msg) }

// IsGreeting is a greeting that does not also carry a question.
func IsGreeting(msg string) bool {
	return greetingRe.MatchString(msg) && !questionRe.MatchString(msg)
}

func IsFarewell(msg string) bool {
	return farewellRe.MatchString(msg) && !questionRe.MatchString(msg)
}

// AboutMatcher matches "who is / tell me about" questions aimed at the
// assistant or at the site owner.
func AboutMatcher(owner string) Predicate {
	subjects := []string{"you", "yourself", "him", "her"}
	for _, part := range ownerNames(owner) {
		subjects = append(subjects, regexp.QuoteMeta(part))
	}
	who := strings.Join(subjects, "|")

	re := regexp.MustCompile(`(?i)\b(who (?:is|are) (?:` + who + `)\b|(?:tell me )?about (?:` + who + `)\b|(?:your|his|her) (?:background|bio|story)\b|introduce yourself\b|qui (?:es-tu|êtes-vous|est (?:` + who + `)\b)|parlez?-moi de (?:toi|vous|` + who + `)\b|présentez?-(?:toi|vous)\b)`)
	return re.MatchString
}

func AsksAICert(msg string) bool { return aiRe.MatchString(msg) && certRe.MatchString(msg) }

func AsksCert(msg string) bool { return certRe.MatchString(msg) }

func AsksContact(msg string) bool { return contactRe.MatchString(msg) }

func AsksTeaching(msg string) bool { return retrieval.TeachingPattern.MatchString(msg) }

func AsksSkills(msg string) bool { return skillsRe.MatchString(msg) }

func AsksAIProject(msg string) bool { return aiRe.MatchString(msg) && projectRe.MatchString(msg) }

// ownerNames yields the full owner name followed by each part of it.
func ownerNames(owner string) []string {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil
	}
	names := []string{owner}
	if parts := strings.Fields(owner); len(parts) > 1 {
		names = append(names, parts...)
	}
	return names
}
