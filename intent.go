package resdesk

import (
	"cmp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// Intent is the inferred category of a research request.
type Intent string

// Intents recognized by the Responder.
const (
	IntentTooShort   Intent = "too-short"
	IntentLiterature Intent = "literature"
	IntentCitation   Intent = "citation"
	IntentNotes      Intent = "notes"
	IntentTopic      Intent = "topic"
	IntentConceptual Intent = "conceptual"
	IntentFallback   Intent = "fallback"
)

// Action is the follow-up a caller performs after showing a response.
type Action int

// Follow-up actions.
const (
	// ActionNone means the response stands on its own.
	ActionNone Action = iota

	// ActionScroll brings a page region into view.
	ActionScroll

	// ActionNavigate leaves the current page for another one.
	ActionNavigate
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionScroll:
		return "scroll"
	case ActionNavigate:
		return "navigate"
	default:
		return "none"
	}
}

// Follow-up delays applied by callers before acting on a response.
const (
	ScrollDelay   = 800 * time.Millisecond
	NavigateDelay = 1200 * time.Millisecond
)

// MinInputLength is the minimum number of characters, after trimming,
// needed before the rule table is consulted.
const MinInputLength = 3

// TooShortMessage is returned for inputs shorter than MinInputLength.
const TooShortMessage = "Please describe your research intent in a bit more detail."

// IntentRule maps a set of trigger substrings to a canned response.
type IntentRule struct {
	Rank     int
	Intent   Intent
	Triggers []string // Lowercase substrings; any one matches
	Message  string
	Target   Target
	Action   Action
}

// Matches reports whether any trigger occurs in the lowercased text.
func (r IntentRule) Matches(lowered string) bool {
	for _, t := range r.Triggers {
		if strings.Contains(lowered, t) {
			return true
		}
	}
	return false
}

// Response is the outcome of classifying a request.
type Response struct {
	Intent  Intent
	Message string
	Target  Target // Empty when there is nothing to bring into view
	Action  Action
	Delay   time.Duration
}

// HasTarget reports whether the caller should act on the response.
func (r Response) HasTarget() bool {
	return r.Target != "" && r.Action != ActionNone
}

// DefaultRules is the rule table of the research assistant, in priority order.
//
// The topic rule ranks below literature, so "papers on reinforcement learning"
// resolves to a literature search rather than to the existing post.
var DefaultRules = []IntentRule{
	{
		Rank:     1,
		Intent:   IntentLiterature,
		Triggers: []string{"paper", "literature", "research", "survey", "find"},
		Message: "It appears you want to explore existing research literature.\n" +
			"Use the Literature Search section below to access peer-reviewed papers " +
			"from Google Scholar, Semantic Scholar, arXiv, or IEEE Xplore.",
		Target: TargetSearch,
		Action: ActionScroll,
	},
	{
		Rank:     2,
		Intent:   IntentCitation,
		Triggers: []string{"citation", "reference", "cite", "format"},
		Message: "You are preparing or formatting references.\n" +
			"Use the Citation Generator section to draft IEEE or APA-style citations.",
		Target: TargetCitations,
		Action: ActionScroll,
	},
	{
		Rank:     3,
		Intent:   IntentNotes,
		Triggers: []string{"my blog", "my post", "my work", "notes"},
		Message: "You are searching within your own research notes.\n" +
			"Use the internal search section to locate relevant posts you have written.",
		Target: TargetInternalSearch,
		Action: ActionScroll,
	},
	{
		Rank:     4,
		Intent:   IntentTopic,
		Triggers: []string{"adaptive learning", "q-learning", "reinforcement"},
		Message: "You already have a research post related to this topic.\n" +
			"Redirecting you to your adaptive learning article.",
		Target: TargetAdaptivePost,
		Action: ActionNavigate,
	},
	{
		Rank:     5,
		Intent:   IntentConceptual,
		Triggers: []string{"how", "why", "method", "approach"},
		Message: "This sounds like a methodological or conceptual inquiry.\n" +
			"A productive next step would be to review related literature " +
			"and document your insights as a research post or note.",
		Target: TargetSearch,
		Action: ActionScroll,
	},
}

// FallbackRule answers requests no other rule matches.
var FallbackRule = IntentRule{
	Intent: IntentFallback,
	Message: "I could not map this request to a specific research action yet.\n" +
		"Try rephrasing it as one of the following:\n" +
		"• Find papers on <topic>\n" +
		"• Generate citation for <paper>\n" +
		"• Search my blog for <keyword>",
}

// Responder classifies free-text requests against an ordered rule table.
// It holds no mutable state and is safe for concurrent use.
type Responder struct {
	rules    []IntentRule
	fallback IntentRule
}

// NewResponder returns a Responder over a copy of rules, ordered by rank.
// Rules of equal rank keep their relative order. If rules is nil,
// DefaultRules is used.
func NewResponder(rules []IntentRule) *Responder {
	if rules == nil {
		rules = DefaultRules
	}
	ordered := make([]IntentRule, len(rules))
	for i, r := range rules {
		r.Triggers = slices.Clone(r.Triggers)
		ordered[i] = r
	}
	slices.SortStableFunc(ordered, func(a, b IntentRule) int {
		return cmp.Compare(a.Rank, b.Rank)
	})
	return &Responder{rules: ordered, fallback: FallbackRule}
}

// Rules returns a copy of the rule table in evaluation order.
func (r *Responder) Rules() []IntentRule {
	rules := make([]IntentRule, len(r.rules))
	for i, rule := range r.rules {
		rule.Triggers = slices.Clone(rule.Triggers)
		rules[i] = rule
	}
	return rules
}

// Classify returns the response of the first rule matching input.
// Inputs shorter than MinInputLength get TooShortMessage without consulting
// the rules. If nothing matches, the fallback response is returned.
func (r *Responder) Classify(input string) Response {
	trimmed := strings.TrimSpace(input)
	if utf8.RuneCountInString(trimmed) < MinInputLength {
		return Response{Intent: IntentTooShort, Message: TooShortMessage}
	}

	lowered := strings.ToLower(trimmed)
	for _, rule := range r.rules {
		if rule.Matches(lowered) {
			return newResponse(rule)
		}
	}
	return newResponse(r.fallback)
}

func newResponse(rule IntentRule) Response {
	resp := Response{
		Intent:  rule.Intent,
		Message: rule.Message,
		Target:  rule.Target,
		Action:  rule.Action,
	}
	switch rule.Action {
	case ActionScroll:
		resp.Delay = ScrollDelay
	case ActionNavigate:
		resp.Delay = NavigateDelay
	}
	return resp
}
