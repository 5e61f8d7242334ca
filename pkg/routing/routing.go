// Package routing turns a canonical extraction plus its triage decision
// into a RoutingDecision: destinations, capped publish priority, evidence
// requirement, event action, and observability flags.
package routing

import (
	"fmt"
	"slices"

	"github.com/civicquant/pipeline/pkg/models"
	"github.com/civicquant/pipeline/pkg/triage"
)

// Threshold maps a minimum impact score to a publish priority.
type Threshold struct {
	Impact   float64 `yaml:"impact"`
	Priority string  `yaml:"priority"`
}

// Config is the routing table. Loaded from defaults, optionally overridden
// by a YAML file merged on top.
type Config struct {
	TopicDestinations        map[string][]string `yaml:"topic_destinations"`
	ImpactPriorityThresholds []Threshold         `yaml:"impact_priority_thresholds"`
	EvidenceEnabled          bool                `yaml:"evidence_enabled"`
}

// DefaultConfig returns the built-in routing table.
func DefaultConfig() Config {
	return Config{
		TopicDestinations: map[string][]string{
			models.TopicMacroEcon:       {"macro_events"},
			models.TopicCentralBanks:    {"macro_events"},
			models.TopicEquities:        {"stocks_events"},
			models.TopicCredit:          {"credit_events"},
			models.TopicRates:           {"macro_events"},
			models.TopicFX:              {"macro_events"},
			models.TopicCommodities:     {"macro_events"},
			models.TopicCrypto:          {"crypto_events"},
			models.TopicWarSecurity:     {"war_security_events"},
			models.TopicGeopolitics:     {"war_security_events"},
			models.TopicCompanySpecific: {"stocks_events"},
			models.TopicOther:           {"other_events"},
		},
		// Ordered high to low; first match wins.
		ImpactPriorityThresholds: []Threshold{
			{Impact: 80, Priority: models.PriorityHigh},
			{Impact: 60, Priority: models.PriorityMedium},
			{Impact: 30, Priority: models.PriorityLow},
			{Impact: 0, Priority: models.PriorityNone},
		},
		EvidenceEnabled: false,
	}
}

var priorityRank = map[string]int{
	models.PriorityNone:   0,
	models.PriorityLow:    1,
	models.PriorityMedium: 2,
	models.PriorityHigh:   3,
}

var priorityByRank = []string{
	models.PriorityNone,
	models.PriorityLow,
	models.PriorityMedium,
	models.PriorityHigh,
}

func priorityFromImpact(impactScore float64, cfg Config) string {
	for _, th := range cfg.ImpactPriorityThresholds {
		if impactScore >= th.Impact {
			return th.Priority
		}
	}
	return models.PriorityNone
}

func capPriority(base string, triageAction string, localIncident bool) string {
	capRank := 3
	switch triageAction {
	case models.TriageUpdate:
		capRank = 2
	case models.TriageMonitor:
		capRank = 1
	case models.TriageArchive:
		capRank = 0
	}
	if localIncident && capRank > 1 {
		capRank = 1
	}
	rank := priorityRank[base]
	if rank > capRank {
		rank = capRank
	}
	return priorityByRank[rank]
}

// evidenceTopics require corroboration at lower impact than the rest.
var evidenceTopics = map[string]bool{
	models.TopicMacroEcon:   true,
	models.TopicWarSecurity: true,
	models.TopicCredit:      true,
}

// Route computes the routing decision for one extraction. existingEvent
// reports whether the resolver found a candidate event for this message.
func Route(p *models.ExtractionPayload, cfg Config, decision triage.Decision, existingEvent bool) models.RoutingDecisionData {
	rulesFired := []string{}

	storeTo, ok := cfg.TopicDestinations[p.Topic]
	if !ok {
		storeTo = []string{"other_events"}
	}
	rulesFired = append(rulesFired, fmt.Sprintf("topic_to_dest:%s", p.Topic))

	publishPriority := priorityFromImpact(p.ImpactScore, cfg)
	rulesFired = append(rulesFired, fmt.Sprintf("impact_to_priority:%s", publishPriority))

	localIncident := slices.Contains(decision.ReasonCodes, "triage:local_incident_downgrade")
	capped := capPriority(publishPriority, decision.Action, localIncident)
	if capped != publishPriority {
		rulesFired = append(rulesFired, fmt.Sprintf("triage_priority_cap:%s->%s", publishPriority, capped))
	}
	publishPriority = capped

	requiresEvidence := false
	if cfg.EvidenceEnabled &&
		(p.IsBreaking || p.ImpactScore >= 60 ||
			(evidenceTopics[p.Topic] && p.Confidence >= 0.6)) {
		requiresEvidence = true
		rulesFired = append(rulesFired, "requires_evidence:rule_default")
	}
	if localIncident {
		requiresEvidence = true
		rulesFired = append(rulesFired, "requires_evidence:local_incident_override")
	}

	eventAction := models.EventActionCreate
	if p.Summary == "" {
		eventAction = models.EventActionIgnore
	}
	if decision.Action == models.TriageArchive {
		eventAction = models.EventActionIgnore
	} else if decision.Action == models.TriageUpdate && existingEvent {
		eventAction = models.EventActionUpdate
	}
	rulesFired = append(rulesFired, fmt.Sprintf("event_action:%s", eventAction))

	flags := []string{}
	if requiresEvidence {
		flags = append(flags, "unconfirmed")
	}
	if p.ImpactScore >= 60 {
		flags = append(flags, "high_impact")
	}
	if p.IsBreaking {
		flags = append(flags, "breaking")
	}
	if localIncident {
		flags = append(flags, "local_incident")
	}

	return models.RoutingDecisionData{
		StoreTo:          slices.Clone(storeTo),
		PublishPriority:  publishPriority,
		RequiresEvidence: requiresEvidence,
		EventAction:      eventAction,
		TriageAction:     decision.Action,
		TriageRules:      slices.Clone(decision.ReasonCodes),
		Flags:            flags,
		RulesFired:       rulesFired,
	}
}
