package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicquant/pipeline/pkg/models"
)

func basePayload() *models.ExtractionPayload {
	src := "Reuters"
	return &models.ExtractionPayload{
		Topic: "geopolitics",
		Entities: models.Entities{
			Countries: []string{"United States"},
			Orgs:      []string{},
			People:    []string{},
			Tickers:   []string{},
		},
		AffectedCountriesFirstOrder: []string{"United States"},
		MarketStats:                 []models.MarketStat{},
		Sentiment:                   "neutral",
		Confidence:                  0.8,
		ImpactScore:                 50,
		IsBreaking:                  false,
		BreakingWindow:              "none",
		SourceClaimed:               &src,
		Summary:                     "Reuters said talks resumed.",
		Keywords:                    []string{},
		EventFingerprint:            "geopolitics|reuters|United States|talks|resume|na|2026-03-14|routine",
	}
}

func TestCanonicalizeCountryAliases(t *testing.T) {
	p := basePayload()
	p.Entities.Countries = []string{"us", "U.S.", "United States", "uk"}
	p.AffectedCountriesFirstOrder = []string{"usa", "eu"}

	canonical, rules := Canonicalize(p)

	assert.Equal(t, []string{"United Kingdom", "United States"}, canonical.Entities.Countries)
	assert.Equal(t, []string{"European Union", "United States"}, canonical.AffectedCountriesFirstOrder)
	assert.Contains(t, rules, RuleCountryAlias)
	assert.Contains(t, rules, RuleAffectedCountryAlias)
}

func TestCanonicalizeLowercaseCountryTitleCased(t *testing.T) {
	p := basePayload()
	p.Entities.Countries = []string{"saudi arabia"}

	canonical, rules := Canonicalize(p)

	assert.Equal(t, []string{"Saudi Arabia"}, canonical.Entities.Countries)
	assert.Contains(t, rules, RuleCountryAlias)
}

func TestCanonicalizeTickers(t *testing.T) {
	p := basePayload()
	p.Entities.Tickers = []string{"aapl", " brk.b ", "AAPL", "$TSLA"}

	canonical, rules := Canonicalize(p)

	assert.Equal(t, []string{"AAPL", "BRK.B", "TSLA"}, canonical.Entities.Tickers)
	assert.Contains(t, rules, RuleTicker)
}

func TestCanonicalizeOrgsAndPeople(t *testing.T) {
	p := basePayload()
	p.Entities.Orgs = []string{"  Federal   Reserve ", "federal reserve", "ECB"}
	p.Entities.People = []string{"Jerome  Powell"}

	canonical, rules := Canonicalize(p)

	assert.Equal(t, []string{"ECB", "Federal Reserve"}, canonical.Entities.Orgs)
	assert.Equal(t, []string{"Jerome Powell"}, canonical.Entities.People)
	assert.Contains(t, rules, RuleOrgText)
	assert.Contains(t, rules, RulePersonText)
}

func TestCanonicalizeEmptySourceBecomesAbsent(t *testing.T) {
	p := basePayload()
	empty := "   "
	p.SourceClaimed = &empty
	p.Summary = "Talks resumed."

	canonical, rules := Canonicalize(p)

	assert.Nil(t, canonical.SourceClaimed)
	assert.Contains(t, rules, RuleSourceText)
}

func TestCanonicalizeFingerprintCountryField(t *testing.T) {
	p := basePayload()
	p.Entities.Countries = []string{"us", "uk"}
	p.EventFingerprint = "geopolitics|reuters|us,uk|talks|resume|na|2026-03-14|routine"

	canonical, rules := Canonicalize(p)

	parts := strings.Split(canonical.EventFingerprint, "|")
	require.Len(t, parts, 8)
	assert.Equal(t, "United Kingdom,United States", parts[2])
	assert.Contains(t, rules, RuleFingerprintCountry)
}

func TestCanonicalizeShortFingerprintUntouched(t *testing.T) {
	p := basePayload()
	p.EventFingerprint = "abc123"

	canonical, rules := Canonicalize(p)

	assert.Equal(t, "abc123", canonical.EventFingerprint)
	assert.NotContains(t, rules, RuleFingerprintCountry)
}

func TestCanonicalizePronounDisambiguation(t *testing.T) {
	p := basePayload()
	p.SourceClaimed = nil
	p.Entities.Orgs = []string{"OPEC"}
	p.Summary = "They agreed to extend production cuts."

	canonical, rules := Canonicalize(p)

	assert.Equal(t, "OPEC agreed to extend production cuts.", canonical.Summary)
	assert.Contains(t, rules, RuleSummaryPronoun)
}

func TestCanonicalizePronounLeftWhenActorPresent(t *testing.T) {
	p := basePayload()
	p.SourceClaimed = nil
	p.Entities.Orgs = []string{"OPEC"}
	p.Summary = "OPEC confirmed it will extend production cuts."

	canonical, rules := Canonicalize(p)

	assert.Equal(t, "OPEC confirmed it will extend production cuts.", canonical.Summary)
	assert.NotContains(t, rules, RuleSummaryPronoun)
}

func TestCanonicalizeHighRiskAttributionWithActor(t *testing.T) {
	p := basePayload()
	src := "Local ministry"
	p.SourceClaimed = &src
	p.Summary = "Missile attack destroyed a supply depot"

	canonical, rules := Canonicalize(p)

	assert.Equal(t, "Local ministry said missile attack destroyed a supply depot.", canonical.Summary)
	assert.Contains(t, rules, RuleSummaryAttribution)
}

func TestCanonicalizeHighRiskAttributionNoActor(t *testing.T) {
	p := basePayload()
	p.SourceClaimed = nil
	p.Entities.Countries = []string{}
	p.AffectedCountriesFirstOrder = []string{}
	p.Summary = "Dozens killed in overnight strike."

	canonical, rules := Canonicalize(p)

	assert.Equal(t, "Reportedly, dozens killed in overnight strike.", canonical.Summary)
	assert.Contains(t, rules, RuleSummaryAttribution)
}

func TestCanonicalizeAttributedHighRiskLeftAlone(t *testing.T) {
	p := basePayload()
	p.Summary = "According to the ministry, the strike hit a depot."

	canonical, rules := Canonicalize(p)

	assert.Equal(t, p.Summary, canonical.Summary)
	assert.NotContains(t, rules, RuleSummaryAttribution)
}

func TestCanonicalizeIdempotent(t *testing.T) {
	p := basePayload()
	p.Entities.Countries = []string{"us", "uk"}
	p.Entities.Tickers = []string{"aapl"}
	p.Entities.Orgs = []string{"opec ", "OPEC"}
	p.SourceClaimed = nil
	p.Summary = "They launched a missile strike on the port"
	p.EventFingerprint = "war_security|opec|us,uk|strike|port|na|2026-03-14|breaking"

	first, firstRules := Canonicalize(p)
	require.NotEmpty(t, firstRules)

	second, secondRules := Canonicalize(first)

	assert.Equal(t, first, second)
	assert.Empty(t, secondRules)
}

func TestCanonicalizeDoesNotMutateInput(t *testing.T) {
	p := basePayload()
	p.Entities.Countries = []string{"us"}

	_, _ = Canonicalize(p)

	assert.Equal(t, []string{"us"}, p.Entities.Countries)
}
