package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sant0-9/corpresearch/internal/plan"
	"github.com/sant0-9/corpresearch/internal/role"
)

// Collaborator is the external content engine the router delegates to. The
// router never generates text itself; it only decides which operation to run.
type Collaborator interface {
	// GeneratePlan builds a full account plan for a company, tailored to a role.
	GeneratePlan(ctx context.Context, company string, r role.Tag) (*plan.Plan, error)

	// RegenerateSection returns replacement content for one section, without
	// the section marker.
	RegenerateSection(ctx context.Context, section, company string, r role.Tag) (string, error)

	// Answer answers a follow-up question grounded on the plan.
	Answer(ctx context.Context, question string, p *plan.Plan, r role.Tag) (string, error)
}

// Outcome is the router's reply: an acknowledgment message, optionally a new
// serialized document, and optionally a new session role. Role is empty when
// the session role is unchanged.
type Outcome struct {
	Message  string
	Document string
	Changed  bool
	Role     role.Tag
	Rule     string
}

// request carries per-utterance state through the cascade.
type request struct {
	utterance string
	lower     string
	doc       *plan.Plan
	hasDoc    bool
	current   role.Tag // session role at entry, "" when unset
	adopted   role.Tag // set by passive detection, "" otherwise
}

// effectiveRole is the role operations run under: a freshly adopted role,
// else the session role, else the default.
func (rq *request) effectiveRole() role.Tag {
	if rq.adopted != "" {
		return rq.adopted
	}
	if rq.current != "" {
		return rq.current
	}
	return role.TagGeneral
}

type rule struct {
	name string
	// run returns a nil Outcome to pass control to the next rule.
	run func(ctx context.Context, rq *request) (*Outcome, error)
}

// Router classifies an utterance and applies at most one document operation.
// It holds no session state: document and role are passed in and handed back.
type Router struct {
	collab Collaborator
	log    *zap.Logger
	rules  []rule
}

func NewRouter(collab Collaborator, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Router{collab: collab, log: log}

	// Priority order is the behavioral contract. First match wins, except
	// passive-role which only annotates the request and falls through.
	r.rules = []rule{
		{"context-reveal", r.contextReveal},
		{"role-question", r.roleQuestion},
		{"passive-role", r.passiveRole},
		{"role-and-create", r.roleAndCreate},
		{"plan-for-company", r.planForCompany},
		{"bare-company", r.bareCompany},
		{"bare-role", r.bareRole},
		{"section-update", r.sectionUpdate},
		{"follow-up", r.followUp},
		{"fallback", r.fallback},
	}
	return r
}

// RuleNames exposes the cascade order.
func (r *Router) RuleNames() []string {
	names := make([]string, len(r.rules))
	for i, rl := range r.rules {
		names[i] = rl.name
	}
	return names
}

// Route runs the cascade. On collaborator failure the error is returned and
// the caller's document and role are untouched.
func (r *Router) Route(ctx context.Context, utterance, document string, current role.Tag) (*Outcome, error) {
	trimmed := strings.TrimSpace(utterance)
	rq := &request{
		utterance: trimmed,
		lower:     strings.ToLower(trimmed),
		current:   current,
	}
	if strings.TrimSpace(document) != "" {
		rq.doc = plan.Parse(document)
		rq.hasDoc = true
	}

	for _, rl := range r.rules {
		out, err := rl.run(ctx, rq)
		if err != nil {
			r.log.Error("rule failed",
				zap.String("rule", rl.name),
				zap.Error(err))
			return nil, err
		}
		if out == nil {
			continue
		}
		out.Rule = rl.name
		if out.Role == "" && rq.adopted != "" {
			out.Role = rq.adopted
		}
		r.log.Info("routed utterance",
			zap.String("rule", rl.name),
			zap.Bool("document_changed", out.Changed),
			zap.String("role", string(out.Role)))
		return out, nil
	}

	// The fallback rule always produces an outcome.
	return nil, fmt.Errorf("cascade produced no outcome")
}

// contextReveal: the user explains, after a plan exists, why it should matter
// to them ("how is this relevant to me, I'm an investor"). A new non-default
// role triggers a full rebuild under that role.
func (r *Router) contextReveal(ctx context.Context, rq *request) (*Outcome, error) {
	if !rq.hasDoc || !reRelevance.MatchString(rq.lower) {
		return nil, nil
	}
	m := reIAmRole.FindStringSubmatch(rq.lower)
	if m == nil {
		return nil, nil
	}
	tag := role.Detect(m[1])
	if tag == role.TagGeneral {
		return nil, nil
	}
	if tag == rq.current {
		return &Outcome{
			Message: fmt.Sprintf("The plan is already tailored for a %s perspective.", role.Display(tag)),
		}, nil
	}

	company := rq.doc.GuessCompany()
	p, err := r.collab.GeneratePlan(ctx, company, tag)
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Message:  fmt.Sprintf("Got it. Rebuilt the plan for %s with a %s focus.", company, role.Display(tag)),
		Document: p.Serialize(),
		Changed:  true,
		Role:     tag,
	}, nil
}

// roleQuestion: "as a <role>, what ..." against an existing plan. Answers
// under that role without touching the document.
func (r *Router) roleQuestion(ctx context.Context, rq *request) (*Outcome, error) {
	if !rq.hasDoc {
		return nil, nil
	}
	m := reAsRoleQuestion.FindStringSubmatch(rq.lower)
	if m == nil {
		return nil, nil
	}
	tag := role.Detect(m[1])
	if tag == role.TagGeneral {
		return nil, nil
	}

	answer, err := r.collab.Answer(ctx, rq.utterance, rq.doc, tag)
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Message: answer,
		Role:    tag,
	}, nil
}

// passiveRole adopts a role keyword found anywhere in the utterance when the
// session has none yet. Never terminal.
func (r *Router) passiveRole(ctx context.Context, rq *request) (*Outcome, error) {
	if rq.current == "" && rq.adopted == "" {
		if tag := role.DetectToken(rq.lower); tag != role.TagGeneral {
			rq.adopted = tag
			r.log.Debug("adopted role passively", zap.String("role", string(tag)))
		}
	}
	return nil, nil
}

// roleAndCreate: a role statement and a creation request in one sentence
// ("I'm a student, make a plan for Globex"). Token-level detection keeps a
// role word inside the company name from reading as a stated role.
func (r *Router) roleAndCreate(ctx context.Context, rq *request) (*Outcome, error) {
	tag := role.DetectToken(rq.lower)
	if tag == role.TagGeneral {
		return nil, nil
	}
	company := extractCompany(rq.lower)
	if company == "" {
		return nil, nil
	}

	p, err := r.collab.GeneratePlan(ctx, company, tag)
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Message:  fmt.Sprintf("Generated account plan for %s, tailored for a %s perspective.", company, role.Display(tag)),
		Document: p.Serialize(),
		Changed:  true,
		Role:     tag,
	}, nil
}

// planForCompany: an explicit creation request, under whatever role the
// session currently has.
func (r *Router) planForCompany(ctx context.Context, rq *request) (*Outcome, error) {
	company := extractCompany(rq.lower)
	if company == "" {
		return nil, nil
	}

	p, err := r.collab.GeneratePlan(ctx, company, rq.effectiveRole())
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Message:  fmt.Sprintf("Generated account plan for %s.", company),
		Document: p.Serialize(),
		Changed:  true,
	}, nil
}

// bareCompany: a short alphabetic utterance is treated as a company name.
func (r *Router) bareCompany(ctx context.Context, rq *request) (*Outcome, error) {
	if !looksLikeCompany(rq.utterance) {
		return nil, nil
	}
	company := titleCase(rq.utterance)

	p, err := r.collab.GeneratePlan(ctx, company, rq.effectiveRole())
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Message:  fmt.Sprintf("Generated account plan for %s.", company),
		Document: p.Serialize(),
		Changed:  true,
	}, nil
}

// bareRole: a role statement with no creation or edit verb. Adopts the role;
// offers a rebuild if a plan exists, asks for a company otherwise.
func (r *Router) bareRole(ctx context.Context, rq *request) (*Outcome, error) {
	tag := role.DetectToken(rq.lower)
	if tag == role.TagGeneral {
		return nil, nil
	}
	if containsAny(rq.lower, createVerbs) || containsAny(rq.lower, editVerbs) {
		return nil, nil
	}
	// A question mentioning a role word is a follow-up, not a role statement.
	if isQuestion(rq.lower) {
		return nil, nil
	}

	if rq.hasDoc {
		return &Outcome{
			Message: fmt.Sprintf("Noted: %s perspective. Want me to rebuild the current plan with that focus? Just say so.", role.Display(tag)),
			Role:    tag,
		}, nil
	}
	return &Outcome{
		Message: fmt.Sprintf("Got it, %s perspective. Which company should I build an account plan for?", role.Display(tag)),
		Role:    tag,
	}, nil
}

// sectionUpdate: a canonical section named together with an edit verb.
// Regenerates only that section and splices it back.
func (r *Router) sectionUpdate(ctx context.Context, rq *request) (*Outcome, error) {
	if !rq.hasDoc {
		return nil, nil
	}
	title, ok := plan.MatchTitle(rq.lower)
	if !ok || !containsAny(rq.lower, editVerbs) {
		return nil, nil
	}

	company := rq.doc.GuessCompany()
	content, err := r.collab.RegenerateSection(ctx, title, company, rq.effectiveRole())
	if err != nil {
		return nil, err
	}
	rq.doc.SetContent(title, content)
	return &Outcome{
		Message:  fmt.Sprintf("Updated the %s section.", title),
		Document: rq.doc.Serialize(),
		Changed:  true,
	}, nil
}

// followUp: any question against an existing plan.
func (r *Router) followUp(ctx context.Context, rq *request) (*Outcome, error) {
	if !rq.hasDoc || !isQuestion(rq.lower) {
		return nil, nil
	}

	answer, err := r.collab.Answer(ctx, rq.utterance, rq.doc, rq.effectiveRole())
	if err != nil {
		return nil, err
	}
	return &Outcome{Message: answer}, nil
}

func (r *Router) fallback(ctx context.Context, rq *request) (*Outcome, error) {
	return &Outcome{
		Message: `I can research a company for you. Try "create an account plan for Acme", or ask a question about the current plan.`,
	}, nil
}
