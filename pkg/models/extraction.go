// Package models defines the domain payload types shared across the
// message-to-event pipeline: the extraction payload produced by the model,
// its enumerated vocabularies, and the routing decision shape.
package models

import "time"

// Topic is the fixed classification vocabulary for extractions and events.
type Topic = string

// Topic values.
const (
	TopicMacroEcon       Topic = "macro_econ"
	TopicCentralBanks    Topic = "central_banks"
	TopicEquities        Topic = "equities"
	TopicCredit          Topic = "credit"
	TopicRates           Topic = "rates"
	TopicFX              Topic = "fx"
	TopicCommodities     Topic = "commodities"
	TopicCrypto          Topic = "crypto"
	TopicWarSecurity     Topic = "war_security"
	TopicGeopolitics     Topic = "geopolitics"
	TopicCompanySpecific Topic = "company_specific"
	TopicOther           Topic = "other"
)

// Topics is the closed set of valid topic values.
var Topics = map[string]bool{
	TopicMacroEcon:       true,
	TopicCentralBanks:    true,
	TopicEquities:        true,
	TopicCredit:          true,
	TopicRates:           true,
	TopicFX:              true,
	TopicCommodities:     true,
	TopicCrypto:          true,
	TopicWarSecurity:     true,
	TopicGeopolitics:     true,
	TopicCompanySpecific: true,
	TopicOther:           true,
}

// Sentiments is the closed set of valid sentiment values.
var Sentiments = map[string]bool{
	"positive": true,
	"negative": true,
	"neutral":  true,
	"mixed":    true,
	"unknown":  true,
}

// BreakingWindows is the closed set of valid breaking-window values: the
// half-life over which a breaking event is still fresh for promotion.
var BreakingWindows = map[string]bool{
	"15m":  true,
	"1h":   true,
	"4h":   true,
	"none": true,
}

// PublishPriority values, ordered none < low < medium < high.
const (
	PriorityNone   = "none"
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// EventAction values.
const (
	EventActionCreate = "create"
	EventActionUpdate = "update"
	EventActionIgnore = "ignore"
)

// TriageAction values, ordered by escalation.
const (
	TriageArchive = "archive"
	TriageMonitor = "monitor"
	TriageUpdate  = "update"
	TriagePromote = "promote"
)

// Entities groups the named entities the model extracted from a message.
type Entities struct {
	Countries []string `json:"countries"`
	Orgs      []string `json:"orgs"`
	People    []string `json:"people"`
	Tickers   []string `json:"tickers"`
}

// MarketStat is a single numeric fact reported by the message.
type MarketStat struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Context *string `json:"context"`
}

// ExtractionPayload is the structured, scored claim extracted from one
// message. Field names mirror the model's JSON output schema.
type ExtractionPayload struct {
	Topic                       string       `json:"topic"`
	Entities                    Entities     `json:"entities"`
	AffectedCountriesFirstOrder []string     `json:"affected_countries_first_order"`
	MarketStats                 []MarketStat `json:"market_stats"`
	Sentiment                   string       `json:"sentiment"`
	Confidence                  float64      `json:"confidence"`
	ImpactScore                 float64      `json:"impact_score"`
	IsBreaking                  bool         `json:"is_breaking"`
	BreakingWindow              string       `json:"breaking_window"`
	EventTime                   *time.Time   `json:"event_time"`
	SourceClaimed               *string      `json:"source_claimed"`
	Summary                     string       `json:"summary_1_sentence"`
	Keywords                    []string     `json:"keywords"`
	EventFingerprint            string       `json:"event_fingerprint"`
}

// Clone returns a deep copy of the payload so canonicalization never
// mutates the validated original.
func (p *ExtractionPayload) Clone() *ExtractionPayload {
	out := *p
	out.Entities.Countries = append([]string(nil), p.Entities.Countries...)
	out.Entities.Orgs = append([]string(nil), p.Entities.Orgs...)
	out.Entities.People = append([]string(nil), p.Entities.People...)
	out.Entities.Tickers = append([]string(nil), p.Entities.Tickers...)
	out.AffectedCountriesFirstOrder = append([]string(nil), p.AffectedCountriesFirstOrder...)
	out.MarketStats = append([]MarketStat(nil), p.MarketStats...)
	out.Keywords = append([]string(nil), p.Keywords...)
	if p.EventTime != nil {
		t := *p.EventTime
		out.EventTime = &t
	}
	if p.SourceClaimed != nil {
		s := *p.SourceClaimed
		out.SourceClaimed = &s
	}
	return &out
}

// RoutingDecisionData is the routing engine's output for one message.
type RoutingDecisionData struct {
	StoreTo          []string `json:"store_to"`
	PublishPriority  string   `json:"publish_priority"`
	RequiresEvidence bool     `json:"requires_evidence"`
	EventAction      string   `json:"event_action"`
	TriageAction     string   `json:"triage_action,omitempty"`
	TriageRules      []string `json:"triage_rules"`
	Flags            []string `json:"flags"`
	RulesFired       []string `json:"rules_fired"`
}
