package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civicquant/pipeline/pkg/models"
)

func payload(impact, confidence float64, breaking bool, summary string) *models.ExtractionPayload {
	return &models.ExtractionPayload{
		Topic:       "war_security",
		ImpactScore: impact,
		Confidence:  confidence,
		IsBreaking:  breaking,
		Summary:     summary,
	}
}

func intPtr(v int) *int { return &v }

func TestImpactBandOf(t *testing.T) {
	assert.Equal(t, ImpactCritical, ImpactBandOf(85))
	assert.Equal(t, ImpactHigh, ImpactBandOf(70))
	assert.Equal(t, ImpactMedium, ImpactBandOf(55))
	assert.Equal(t, ImpactLow, ImpactBandOf(54.9))
	assert.Equal(t, ImpactLow, ImpactBandOf(0))
}

func TestConfidenceBandOf(t *testing.T) {
	assert.Equal(t, ConfidenceStrong, ConfidenceBandOf(0.85))
	assert.Equal(t, ConfidenceUsable, ConfidenceBandOf(0.75))
	assert.Equal(t, ConfidenceWeak, ConfidenceBandOf(0.74))
}

func TestSourceClassOf(t *testing.T) {
	ministry := "Defense Ministry"
	analyst := "Market analyst desk"
	assert.Equal(t, SourceAuthority, SourceClassOf(&ministry, "statement issued"))
	assert.Equal(t, SourceCommentary, SourceClassOf(&analyst, "markets may react"))
	assert.Equal(t, SourceAuthority, SourceClassOf(nil, "According to police, two injured"))
	assert.Equal(t, SourceUnknown, SourceClassOf(nil, "oil rises"))
}

func TestSummaryTags(t *testing.T) {
	assert.Contains(t, SummaryTags("Officials condemn the decision"), TagReaction)
	assert.Contains(t, SummaryTags("Missile strike hit the depot"), TagOperational)
	assert.Contains(t, SummaryTags("Police report an incident downtown"), TagLocalIncident)
	assert.Empty(t, SummaryTags("GDP rose 2 percent"))
}

func TestLocalIncidentGate(t *testing.T) {
	assert.True(t, LocalIncidentGate("Police report multiple people injured in Austin, TX incident."))
	assert.True(t, LocalIncidentGate("Sheriff confirms two wounded in county incident"))
	// Conflict markers suppress the gate.
	assert.False(t, LocalIncidentGate("Police report injured after missile strike in Kharkiv city"))
	// No local geography.
	assert.False(t, LocalIncidentGate("Police report several injured"))
	// No local-authority term.
	assert.False(t, LocalIncidentGate("Several injured in Austin, TX incident"))
}

func TestDecideLowSignalArchive(t *testing.T) {
	d := Decide(payload(10, 0.2, false, "minor chatter"), Context{})

	assert.Equal(t, models.TriageArchive, d.Action)
	assert.Contains(t, d.ReasonCodes, "triage:low_signal_archive")
	assert.Contains(t, d.ReasonCodes, "triage:score_band:low")
	assert.Contains(t, d.ReasonCodes, "triage:confidence_band:weak")
}

func TestDecideNewEventPromote(t *testing.T) {
	d := Decide(payload(85, 0.85, true, "Major escalation announced by ministry"), Context{})

	assert.Equal(t, models.TriagePromote, d.Action)
	assert.Contains(t, d.ReasonCodes, "triage:new_event_promote")
	assert.Contains(t, d.ReasonCodes, "triage:score_band:critical")
	assert.Contains(t, d.ReasonCodes, "triage:confidence_band:strong")
}

func TestDecideRelatedMaterialUpdate(t *testing.T) {
	p := payload(75, 0.8, true, "Strike extended to second province")
	p.Entities.Countries = []string{"Poland"}

	d := Decide(p, Context{
		ExistingEventID: intPtr(7),
		Candidate: &CandidateContext{
			ImpactBand:  ImpactHigh,
			Entities:    []string{"country:ukraine"},
			SummaryTags: []string{TagOperational},
			SourceClass: SourceUnknown,
		},
	})

	assert.Equal(t, models.TriageUpdate, d.Action)
	assert.Contains(t, d.ReasonCodes, "triage:related_material_update")
}

func TestDecideRepeatLowDeltaMonitors(t *testing.T) {
	p := payload(75, 0.8, true, "Same strike reported again")
	p.Entities.Countries = []string{"Ukraine"}

	d := Decide(p, Context{
		ExistingEventID: intPtr(7),
		Candidate: &CandidateContext{
			ImpactBand:  ImpactHigh,
			Entities:    []string{"country:ukraine"},
			SummaryTags: []string{TagOperational},
			SourceClass: SourceUnknown,
		},
	})

	assert.Equal(t, models.TriageMonitor, d.Action)
	assert.Contains(t, d.ReasonCodes, "triage:repeat_downgrade")
}

func TestDecideBurstCaps(t *testing.T) {
	base := func() (*models.ExtractionPayload, Context) {
		p := payload(75, 0.8, true, "Same strike reported again")
		p.Entities.Countries = []string{"Ukraine"}
		return p, Context{
			ExistingEventID: intPtr(7),
			Candidate: &CandidateContext{
				ImpactBand:  ImpactHigh,
				Entities:    []string{"country:ukraine"},
				SummaryTags: []string{TagOperational},
				SourceClass: SourceUnknown,
			},
		}
	}

	p, ctx := base()
	ctx.BurstLowDeltaPriorCount = 1
	d := Decide(p, ctx)
	assert.Equal(t, models.TriageUpdate, d.Action)
	assert.Contains(t, d.ReasonCodes, "triage:burst_cap_update")

	p, ctx = base()
	ctx.BurstLowDeltaPriorCount = 2
	d = Decide(p, ctx)
	assert.Equal(t, models.TriageMonitor, d.Action)
	assert.Contains(t, d.ReasonCodes, "triage:burst_cap_monitor")
}

func TestDecideLocalIncidentDowngrade(t *testing.T) {
	d := Decide(payload(90, 0.9, true, "Police report multiple people injured in Austin, TX incident."), Context{})

	assert.Equal(t, models.TriageMonitor, d.Action)
	assert.Contains(t, d.ReasonCodes, "triage:local_incident_downgrade")
}

func TestDecideSoftRelatedDowngrade(t *testing.T) {
	p := payload(75, 0.8, false, "Another report of the same escalation")

	d := Decide(p, Context{SoftRelatedMatch: true})

	assert.Equal(t, models.TriageMonitor, d.Action)
	assert.Contains(t, d.ReasonCodes, "triage:soft_related_match")
	assert.Contains(t, d.ReasonCodes, "triage:soft_related_downgrade")
	assert.Contains(t, d.ReasonCodes, "triage:repeat_downgrade")
}

func TestMateriallyNewNoCandidate(t *testing.T) {
	assert.False(t, MateriallyNew(payload(90, 0.9, true, "big news"), nil))
}

func TestMateriallyNewSignals(t *testing.T) {
	base := &CandidateContext{
		ImpactBand:  ImpactMedium,
		Entities:    []string{"country:ukraine"},
		SummaryTags: []string{TagReaction},
		SourceClass: SourceCommentary,
	}

	t.Run("new entity", func(t *testing.T) {
		p := payload(55, 0.8, false, "talks continue")
		p.Entities.Countries = []string{"Poland"}
		assert.True(t, MateriallyNew(p, base))
	})

	t.Run("impact band up", func(t *testing.T) {
		p := payload(70, 0.8, false, "talks continue")
		p.Entities.Countries = []string{"Ukraine"}
		assert.True(t, MateriallyNew(p, base))
	})

	t.Run("reaction to operational", func(t *testing.T) {
		p := payload(55, 0.8, false, "Missile strike launched overnight")
		p.Entities.Countries = []string{"Ukraine"}
		assert.True(t, MateriallyNew(p, base))
	})

	t.Run("commentary to authority", func(t *testing.T) {
		p := payload(55, 0.8, false, "According to the ministry, talks continue")
		p.Entities.Countries = []string{"Ukraine"}
		assert.True(t, MateriallyNew(p, base))
	})

	t.Run("no new substance", func(t *testing.T) {
		p := payload(55, 0.8, false, "analysts concerned about talks")
		p.Entities.Countries = []string{"Ukraine"}
		assert.False(t, MateriallyNew(p, base))
	})
}
