package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civicquant/pipeline/pkg/models"
	"github.com/civicquant/pipeline/pkg/triage"
)

func payload(topic string, impact, confidence float64, breaking bool) *models.ExtractionPayload {
	return &models.ExtractionPayload{
		Topic:       topic,
		ImpactScore: impact,
		Confidence:  confidence,
		IsBreaking:  breaking,
		Summary:     "Something happened.",
	}
}

func TestRouteTopicDestinations(t *testing.T) {
	cfg := DefaultConfig()
	promote := triage.Decision{Action: models.TriagePromote}

	tests := []struct {
		topic string
		want  []string
	}{
		{models.TopicMacroEcon, []string{"macro_events"}},
		{models.TopicEquities, []string{"stocks_events"}},
		{models.TopicCrypto, []string{"crypto_events"}},
		{models.TopicWarSecurity, []string{"war_security_events"}},
		{"never_heard_of_it", []string{"other_events"}},
	}
	for _, tt := range tests {
		d := Route(payload(tt.topic, 50, 0.8, false), cfg, promote, false)
		assert.Equal(t, tt.want, d.StoreTo, "topic %s", tt.topic)
		assert.Contains(t, d.RulesFired, "topic_to_dest:"+tt.topic)
	}
}

func TestRoutePriorityThresholds(t *testing.T) {
	cfg := DefaultConfig()
	promote := triage.Decision{Action: models.TriagePromote}

	tests := []struct {
		impact float64
		want   string
	}{
		{95, models.PriorityHigh},
		{80, models.PriorityHigh},
		{79.9, models.PriorityMedium},
		{60, models.PriorityMedium},
		{45, models.PriorityLow},
		{10, models.PriorityNone},
	}
	for _, tt := range tests {
		d := Route(payload(models.TopicOther, tt.impact, 0.8, false), cfg, promote, false)
		assert.Equal(t, tt.want, d.PublishPriority, "impact %v", tt.impact)
	}
}

func TestRouteTriagePriorityCaps(t *testing.T) {
	cfg := DefaultConfig()
	p := payload(models.TopicOther, 95, 0.9, false)

	tests := []struct {
		action string
		want   string
	}{
		{models.TriagePromote, models.PriorityHigh},
		{models.TriageUpdate, models.PriorityMedium},
		{models.TriageMonitor, models.PriorityLow},
		{models.TriageArchive, models.PriorityNone},
	}
	for _, tt := range tests {
		d := Route(p, cfg, triage.Decision{Action: tt.action}, true)
		assert.Equal(t, tt.want, d.PublishPriority, "action %s", tt.action)
	}

	d := Route(p, cfg, triage.Decision{Action: models.TriageUpdate}, true)
	assert.Contains(t, d.RulesFired, "triage_priority_cap:high->medium")
}

func TestRouteLocalIncidentCap(t *testing.T) {
	cfg := DefaultConfig()
	decision := triage.Decision{
		Action:      models.TriageMonitor,
		ReasonCodes: []string{"triage:local_incident_downgrade"},
	}

	d := Route(payload(models.TopicWarSecurity, 95, 0.9, true), cfg, decision, false)

	assert.Equal(t, models.PriorityLow, d.PublishPriority)
	assert.True(t, d.RequiresEvidence)
	assert.Contains(t, d.RulesFired, "requires_evidence:local_incident_override")
	assert.Contains(t, d.Flags, "local_incident")
	assert.Contains(t, d.Flags, "unconfirmed")
}

func TestRouteEvidenceDisabledByDefault(t *testing.T) {
	cfg := DefaultConfig()
	d := Route(payload(models.TopicWarSecurity, 95, 0.9, true), cfg, triage.Decision{Action: models.TriagePromote}, false)

	assert.False(t, d.RequiresEvidence)
	assert.NotContains(t, d.Flags, "unconfirmed")
}

func TestRouteEvidenceRule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EvidenceEnabled = true
	promote := triage.Decision{Action: models.TriagePromote}

	t.Run("breaking", func(t *testing.T) {
		d := Route(payload(models.TopicOther, 10, 0.3, true), cfg, promote, false)
		assert.True(t, d.RequiresEvidence)
	})
	t.Run("high impact", func(t *testing.T) {
		d := Route(payload(models.TopicOther, 60, 0.3, false), cfg, promote, false)
		assert.True(t, d.RequiresEvidence)
	})
	t.Run("sensitive topic with confidence", func(t *testing.T) {
		d := Route(payload(models.TopicCredit, 40, 0.6, false), cfg, promote, false)
		assert.True(t, d.RequiresEvidence)
		assert.Contains(t, d.RulesFired, "requires_evidence:rule_default")
	})
	t.Run("low signal", func(t *testing.T) {
		d := Route(payload(models.TopicOther, 40, 0.5, false), cfg, promote, false)
		assert.False(t, d.RequiresEvidence)
	})
}

func TestRouteEventAction(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("empty summary ignored", func(t *testing.T) {
		p := payload(models.TopicOther, 50, 0.8, false)
		p.Summary = ""
		d := Route(p, cfg, triage.Decision{Action: models.TriageMonitor}, false)
		assert.Equal(t, models.EventActionIgnore, d.EventAction)
	})
	t.Run("archive forces ignore", func(t *testing.T) {
		d := Route(payload(models.TopicOther, 50, 0.8, false), cfg, triage.Decision{Action: models.TriageArchive}, false)
		assert.Equal(t, models.EventActionIgnore, d.EventAction)
	})
	t.Run("triage update with existing event", func(t *testing.T) {
		d := Route(payload(models.TopicOther, 50, 0.8, false), cfg, triage.Decision{Action: models.TriageUpdate}, true)
		assert.Equal(t, models.EventActionUpdate, d.EventAction)
	})
	t.Run("triage update without existing event creates", func(t *testing.T) {
		d := Route(payload(models.TopicOther, 50, 0.8, false), cfg, triage.Decision{Action: models.TriageUpdate}, false)
		assert.Equal(t, models.EventActionCreate, d.EventAction)
	})
	t.Run("default create", func(t *testing.T) {
		d := Route(payload(models.TopicOther, 50, 0.8, false), cfg, triage.Decision{Action: models.TriagePromote}, false)
		assert.Equal(t, models.EventActionCreate, d.EventAction)
		assert.Contains(t, d.RulesFired, "event_action:create")
	})
}

func TestRouteFlags(t *testing.T) {
	cfg := DefaultConfig()
	d := Route(payload(models.TopicOther, 75, 0.9, true), cfg, triage.Decision{Action: models.TriagePromote}, false)

	assert.Contains(t, d.Flags, "high_impact")
	assert.Contains(t, d.Flags, "breaking")
	assert.NotContains(t, d.Flags, "local_incident")
}
