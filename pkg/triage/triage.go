// Package triage decides what the pipeline does with each extraction:
// promote a new event, update an existing one, bump a monitor, or archive.
// Decisions are pure functions of the canonical extraction and the triage
// context, so every branch is unit-testable without storage.
package triage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/civicquant/pipeline/pkg/models"
)

// Impact bands, ordered low < medium < high < critical.
const (
	ImpactLow      = "low"
	ImpactMedium   = "medium"
	ImpactHigh     = "high"
	ImpactCritical = "critical"
)

// Confidence bands, ordered weak < usable < strong.
const (
	ConfidenceWeak   = "weak"
	ConfidenceUsable = "usable"
	ConfidenceStrong = "strong"
)

// Source classes.
const (
	SourceAuthority  = "authority"
	SourceCommentary = "commentary"
	SourceUnknown    = "unknown"
)

// Summary tags.
const (
	TagReaction      = "reaction"
	TagOperational   = "operational"
	TagLocalIncident = "local_incident"
)

// Novelty states.
const (
	noveltyNewEvent      = "new_event"
	noveltyRelatedUpdate = "related_update"
	noveltyRepeatLow     = "repeat_low_delta"
)

// CandidateContext summarizes the last-known extraction for the candidate
// event the resolver found.
type CandidateContext struct {
	ImpactBand  string
	Entities    []string
	SummaryTags []string
	SourceClass string
}

// Context carries everything the engine needs beyond the extraction itself.
type Context struct {
	ExistingEventID         *int
	Candidate               *CandidateContext
	SoftRelatedMatch        bool
	BurstLowDeltaPriorCount int
}

// Decision is the triage outcome with the reason codes of every branch
// that fired.
type Decision struct {
	Action      string
	ReasonCodes []string
}

var impactBandRank = map[string]int{
	ImpactLow:      0,
	ImpactMedium:   1,
	ImpactHigh:     2,
	ImpactCritical: 3,
}

// ImpactBandOf maps a [0,100] impact score onto its ordinal band.
func ImpactBandOf(score float64) string {
	switch {
	case score >= 85:
		return ImpactCritical
	case score >= 70:
		return ImpactHigh
	case score >= 55:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// ConfidenceBandOf maps a [0,1] confidence onto its ordinal band.
func ConfidenceBandOf(confidence float64) string {
	switch {
	case confidence >= 0.85:
		return ConfidenceStrong
	case confidence >= 0.75:
		return ConfidenceUsable
	default:
		return ConfidenceWeak
	}
}

var authorityMarkers = []string{
	"police", "ministry", "official", "military", "agency",
	"spokesperson", "according to",
}

var commentaryMarkers = []string{
	"commentary", "analyst", "opinion", "urges", "condemns", "concerned",
}

// SourceClassOf classifies where a claim comes from, using the claimed
// source plus the summary text.
func SourceClassOf(sourceClaimed *string, summary string) string {
	text := strings.ToLower(summary)
	if sourceClaimed != nil {
		text = strings.ToLower(*sourceClaimed) + " " + text
	}
	if containsAny(text, authorityMarkers) {
		return SourceAuthority
	}
	if containsAny(text, commentaryMarkers) {
		return SourceCommentary
	}
	return SourceUnknown
}

var reactionTerms = []string{
	"condemn", "concern", "urge", "calls for", "unacceptable", "warn", "respond",
}

var operationalTerms = []string{
	"strike", "attack", "launched", "killed", "injured",
	"casualties", "missile", "troops", "explosion",
}

var localAuthorityTerms = []string{"police", "sheriff", "public safety"}
var incidentTerms = []string{"incident", "injured", "wounded", "casualt"}

// SummaryTags classifies the summary's register.
func SummaryTags(summary string) []string {
	lowered := strings.ToLower(summary)
	tags := []string{}
	if containsAny(lowered, reactionTerms) {
		tags = append(tags, TagReaction)
	}
	if containsAny(lowered, operationalTerms) {
		tags = append(tags, TagOperational)
	}
	if containsAny(lowered, localAuthorityTerms) && containsAny(lowered, incidentTerms) {
		tags = append(tags, TagLocalIncident)
	}
	return tags
}

// EntitySignature builds the comparable entity set for material-newness
// checks: lowercased, type-prefixed values.
func EntitySignature(p *models.ExtractionPayload) []string {
	sigs := []string{}
	for _, c := range p.Entities.Countries {
		sigs = append(sigs, "country:"+strings.ToLower(c))
	}
	for _, o := range p.Entities.Orgs {
		sigs = append(sigs, "org:"+strings.ToLower(o))
	}
	for _, person := range p.Entities.People {
		sigs = append(sigs, "person:"+strings.ToLower(person))
	}
	return sigs
}

// MateriallyNew reports whether the extraction adds substance over the
// candidate event's last-known extraction: a new entity, a strictly higher
// impact band, a reaction-to-operational transition, or a source-class
// upgrade from commentary to authority. False when there is no candidate
// context to compare against.
func MateriallyNew(p *models.ExtractionPayload, candidate *CandidateContext) bool {
	if candidate == nil {
		return false
	}

	known := map[string]bool{}
	for _, sig := range candidate.Entities {
		known[sig] = true
	}
	for _, sig := range EntitySignature(p) {
		if !known[sig] {
			return true
		}
	}

	if impactBandRank[ImpactBandOf(p.ImpactScore)] > impactBandRank[candidate.ImpactBand] {
		return true
	}

	candidateTags := map[string]bool{}
	for _, tag := range candidate.SummaryTags {
		candidateTags[tag] = true
	}
	currentTags := SummaryTags(p.Summary)
	if candidateTags[TagReaction] && !candidateTags[TagOperational] {
		for _, tag := range currentTags {
			if tag == TagOperational {
				return true
			}
		}
	}

	if candidate.SourceClass == SourceCommentary &&
		SourceClassOf(p.SourceClaimed, p.Summary) == SourceAuthority {
		return true
	}
	return false
}

// cityStateRe matches US-style local geography like "Austin, TX".
var cityStateRe = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)*, ?[A-Z]{2}\b`)

var localGeoTerms = []string{"city", "county", "state"}

var conflictMarkers = []string{
	"missile", "strike", "military", "airstrike", "drone",
	"cross-border", "invasion", "army", "navy",
	"ukraine", "russia", "gaza", "israel", "iran", "lebanon", "syria", "yemen",
}

// LocalIncidentGate reports whether a summary reads as a domestic
// public-safety incident rather than a geopolitical event.
func LocalIncidentGate(summary string) bool {
	lowered := strings.ToLower(summary)
	if !containsAny(lowered, localAuthorityTerms) {
		return false
	}
	if !containsAny(lowered, incidentTerms) {
		return false
	}
	if !cityStateRe.MatchString(summary) && !containsAny(lowered, localGeoTerms) {
		return false
	}
	if containsAny(lowered, conflictMarkers) {
		return false
	}
	return true
}

// Decide runs the triage decision table.
func Decide(p *models.ExtractionPayload, ctx Context) Decision {
	impactBand := ImpactBandOf(p.ImpactScore)
	confidenceBand := ConfidenceBandOf(p.Confidence)
	reasons := []string{
		fmt.Sprintf("triage:score_band:%s", impactBand),
		fmt.Sprintf("triage:confidence_band:%s", confidenceBand),
	}

	materiallyNew := MateriallyNew(p, ctx.Candidate)

	var novelty string
	switch {
	case ctx.ExistingEventID == nil:
		novelty = noveltyNewEvent
	case materiallyNew:
		novelty = noveltyRelatedUpdate
	default:
		novelty = noveltyRepeatLow
	}

	if ctx.SoftRelatedMatch {
		reasons = append(reasons, "triage:soft_related_match")
		if ctx.ExistingEventID == nil && !materiallyNew {
			novelty = noveltyRepeatLow
			reasons = append(reasons, "triage:soft_related_downgrade")
		}
	}

	var action string
	switch {
	case confidenceBand == ConfidenceWeak && impactBand == ImpactLow:
		action = models.TriageArchive
		reasons = append(reasons, "triage:low_signal_archive")
	case novelty == noveltyNewEvent &&
		(impactBand == ImpactHigh || impactBand == ImpactCritical) &&
		(confidenceBand == ConfidenceUsable || confidenceBand == ConfidenceStrong):
		action = models.TriagePromote
		reasons = append(reasons, "triage:new_event_promote")
	case novelty == noveltyRelatedUpdate:
		action = models.TriageUpdate
		reasons = append(reasons, "triage:related_material_update")
	default:
		action = models.TriageMonitor
		if novelty == noveltyRepeatLow {
			reasons = append(reasons, "triage:repeat_downgrade")
		}
	}

	if novelty == noveltyRepeatLow && action != models.TriageArchive {
		if ctx.BurstLowDeltaPriorCount >= 2 {
			action = models.TriageMonitor
			reasons = append(reasons, "triage:burst_cap_monitor")
		} else if ctx.BurstLowDeltaPriorCount >= 1 {
			action = models.TriageUpdate
			reasons = append(reasons, "triage:burst_cap_update")
		}
	}

	if (action == models.TriagePromote || action == models.TriageUpdate) && LocalIncidentGate(p.Summary) {
		action = models.TriageMonitor
		reasons = append(reasons, "triage:local_incident_downgrade")
	}

	return Decision{Action: action, ReasonCodes: reasons}
}

func containsAny(lowered string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lowered, t) {
			return true
		}
	}
	return false
}
