// Package router classifies a visitor message and either answers it from
// first-party documents or hands it to generation with retrieved context.
package router

import (
	"strings"

	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/internal/service/lang"
	"github.com/sandevgo/sensei/internal/service/prompt"
	"github.com/sandevgo/sensei/internal/service/retrieval"
)

// Meta is the per-request conversation metadata sent by the client.
type Meta struct {
	Name     string
	Language lang.Language
}

// Decision is the outcome of routing a single message. When Generate is
// false, Answer is the final reply and must be returned as is.
type Decision struct {
	Intent    core.Intent
	Answer    string
	Generate  bool
	Template  prompt.Template
	Retrieval core.RetrievalResult
}

type handler func(msg string, docs []core.Document, meta Meta) Decision

type route struct {
	intent core.Intent
	match  Predicate
	handle handler
}

type Router struct {
	site   core.SiteConfig
	scorer *retrieval.Scorer
	routes []route
}

func New(site core.SiteConfig, scorer *retrieval.Scorer) *Router {
	if scorer == nil {
		scorer = retrieval.NewDefaultScorer()
	}
	r := &Router{site: site, scorer: scorer}

	// Order matters: the first matching route wins.
	r.routes = []route{
		{core.IntentAgentName, AsksAgentName, r.agentName},
		{core.IntentGreeting, IsGreeting, r.greeting},
		{core.IntentFarewell, IsFarewell, r.farewell},
		{core.IntentAbout, AboutMatcher(site.OwnerName), r.about},
		{core.IntentAICert, AsksAICert, r.aiCertifications},
		{core.IntentCert, AsksCert, r.certifications},
		{core.IntentContact, AsksContact, r.contact},
		{core.IntentTeaching, AsksTeaching, r.teaching},
		{core.IntentSkills, AsksSkills, r.skills},
		{core.IntentAIProject, AsksAIProject, r.aiProject},
	}
	return r
}

// Route returns the decision for msg. It has no side effects.
func (r *Router) Route(msg string, docs []core.Document, meta Meta) Decision {
	msg = strings.TrimSpace(msg)
	for _, rt := range r.routes {
		if rt.match(msg) {
			return rt.handle(msg, docs, meta)
		}
	}
	return r.general(msg, docs, meta)
}

// Intent returns the first intent whose predicate matches msg.
func (r *Router) Intent(msg string) core.Intent {
	msg = strings.TrimSpace(msg)
	for _, rt := range r.routes {
		if rt.match(msg) {
			return rt.intent
		}
	}
	return core.IntentGeneral
}

func (r *Router) agentName(string, []core.Document, Meta) Decision {
	return direct(core.IntentAgentName, core.AgentName)
}

func (r *Router) greeting(_ string, _ []core.Document, meta Meta) Decision {
	return direct(core.IntentGreeting, lang.For(meta.Language).Greeting(core.AgentName, meta.Name))
}

func (r *Router) farewell(_ string, _ []core.Document, meta Meta) Decision {
	return direct(core.IntentFarewell, lang.For(meta.Language).Farewell(meta.Name))
}

func (r *Router) contact(_ string, _ []core.Document, meta Meta) Decision {
	return direct(core.IntentContact, lang.For(meta.Language).Contact(r.site.ContactURL))
}

func (r *Router) about(_ string, docs []core.Document, meta Meta) Decision {
	text := aboutText(docs)
	if text == "" {
		return noInfo(core.IntentAbout, meta)
	}
	return direct(core.IntentAbout, text)
}

func (r *Router) aiCertifications(_ string, docs []core.Document, meta Meta) Decision {
	names := certificationNames(docs, true)
	if len(names) == 0 {
		return noInfo(core.IntentAICert, meta)
	}
	return direct(core.IntentAICert, bulletList(lang.For(meta.Language).AICertsIntro, names))
}

func (r *Router) certifications(_ string, docs []core.Document, meta Meta) Decision {
	names := certificationNames(docs, false)
	if len(names) == 0 {
		return noInfo(core.IntentCert, meta)
	}
	return direct(core.IntentCert, bulletList(lang.For(meta.Language).CertsIntro, names))
}

// teaching falls through to the general path when no document talks
// about teaching.
func (r *Router) teaching(msg string, docs []core.Document, meta Meta) Decision {
	text := teachingText(docs)
	if text == "" {
		d := r.general(msg, docs, meta)
		d.Intent = core.IntentTeaching
		return d
	}
	return direct(core.IntentTeaching, text)
}

func (r *Router) skills(_ string, docs []core.Document, meta Meta) Decision {
	msgs := lang.For(meta.Language)
	names := skillNames(docs)
	if len(names) == 0 {
		return direct(core.IntentSkills, msgs.NoSkills)
	}
	return direct(core.IntentSkills, bulletList(msgs.SkillsIntro, names))
}

func (r *Router) aiProject(msg string, docs []core.Document, meta Meta) Decision {
	return r.retrieve(core.IntentAIProject, prompt.STAR, msg, docs, meta)
}

func (r *Router) general(msg string, docs []core.Document, meta Meta) Decision {
	return r.retrieve(core.IntentGeneral, prompt.General, msg, docs, meta)
}

func (r *Router) retrieve(intent core.Intent, tmpl prompt.Template, msg string, docs []core.Document, meta Meta) Decision {
	res := r.scorer.Score(msg, r.corpusFor(msg, docs))
	switch res.Context {
	case "":
		d := noInfo(intent, meta)
		d.Retrieval = res
		return d
	case retrieval.GreetingContext:
		return direct(core.IntentGreeting, lang.For(meta.Language).Greeting(core.AgentName, meta.Name))
	}
	return Decision{Intent: intent, Generate: true, Template: tmpl, Retrieval: res}
}

// corpusFor searches the whole corpus only for the configured trigger
// topics; everything else is answered from config documents.
func (r *Router) corpusFor(msg string, docs []core.Document) []core.Document {
	if r.UseRAGForTopic(msg) {
		return docs
	}
	return configOnly(docs)
}

// UseRAGForTopic reports whether msg mentions one of the RAG trigger topics.
func (r *Router) UseRAGForTopic(msg string) bool {
	lowered := strings.ToLower(msg)
	for _, topic := range r.site.Features.RAGTriggerTopics {
		if topic != "" && strings.Contains(lowered, topic) {
			return true
		}
	}
	return false
}

func configOnly(docs []core.Document) []core.Document {
	out := make([]core.Document, 0, len(docs))
	for _, d := range docs {
		if d.IsConfig() {
			out = append(out, d)
		}
	}
	return out
}

func direct(intent core.Intent, answer string) Decision {
	return Decision{Intent: intent, Answer: answer}
}

func noInfo(intent core.Intent, meta Meta) Decision {
	return direct(intent, lang.For(meta.Language).NoInfo)
}

func bulletList(intro string, items []string) string {
	var b strings.Builder
	b.WriteString(intro)
	for _, item := range items {
		b.WriteString("\n- ")
		b.WriteString(item)
	}
	return b.String()
}
