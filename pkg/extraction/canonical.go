package extraction

import (
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/civicquant/pipeline/pkg/models"
)

// Canonicalization rule identifiers, recorded on the extraction metadata
// whenever the corresponding rule changed the payload.
const (
	RuleCountryAlias         = "country_alias_normalization"
	RuleAffectedCountryAlias = "affected_country_alias_normalization"
	RuleTicker               = "ticker_normalization"
	RuleOrgText              = "org_text_normalization"
	RulePersonText           = "person_text_normalization"
	RuleSourceText           = "source_text_normalization"
	RuleSummaryPronoun       = "summary_pronoun_disambiguated"
	RuleSummaryAttribution   = "summary_high_risk_attribution_rewrite"
	RuleFingerprintCountry   = "event_fingerprint_country_normalization"
)

var (
	spaceRunRe    = regexp.MustCompile(`\s+`)
	tickerCleanRe = regexp.MustCompile(`[^A-Z0-9.\-]`)
	pronounRe     = regexp.MustCompile(`(?i)\b(it|they|he|she)\b`)
)

var countryAliases = map[string]string{
	"us":    "United States",
	"u.s.":  "United States",
	"u.s":   "United States",
	"usa":   "United States",
	"uk":    "United Kingdom",
	"u.k.":  "United Kingdom",
	"u.k":   "United Kingdom",
	"uae":   "United Arab Emirates",
	"eu":    "European Union",
}

// highRiskTerms flags summaries describing violence or military action:
// claims like these must carry attribution before they reach a reader.
var highRiskTerms = []string{
	"killed", "strike", "attack", "missile", "invasion",
	"airstrike", "explosion", "casualties", "shelling", "bombing",
}

var attributionMarkers = []string{
	"according to", "said", "reported", "claims", "says", "announced",
}

func collapseSpaces(value string) string {
	return spaceRunRe.ReplaceAllString(strings.TrimSpace(value), " ")
}

func isAllLower(value string) bool {
	hasLetter := false
	for _, r := range value {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func titleCase(value string) string {
	words := strings.Split(value, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func canonicalCountry(value string) string {
	cleaned := collapseSpaces(value)
	if cleaned == "" {
		return ""
	}
	canonical, ok := countryAliases[strings.ToLower(cleaned)]
	if !ok {
		canonical = cleaned
	}
	if isAllLower(canonical) {
		canonical = titleCase(canonical)
	}
	return canonical
}

func canonicalCountries(values []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, raw := range values {
		canonical := canonicalCountry(raw)
		if canonical == "" {
			continue
		}
		key := strings.ToLower(canonical)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, canonical)
	}
	slices.SortFunc(out, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return out
}

func canonicalTickers(values []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, raw := range values {
		cleaned := tickerCleanRe.ReplaceAllString(strings.ToUpper(collapseSpaces(raw)), "")
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		out = append(out, cleaned)
	}
	slices.Sort(out)
	return out
}

func canonicalTextList(values []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, raw := range values {
		cleaned := collapseSpaces(raw)
		if cleaned == "" {
			continue
		}
		key := strings.ToLower(cleaned)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, cleaned)
	}
	slices.SortFunc(out, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return out
}

// bestActor picks the most reliable attribution subject available:
// the claimed source, else the first org, person, or country.
func bestActor(p *models.ExtractionPayload) string {
	if p.SourceClaimed != nil && *p.SourceClaimed != "" {
		return *p.SourceClaimed
	}
	if len(p.Entities.Orgs) > 0 {
		return p.Entities.Orgs[0]
	}
	if len(p.Entities.People) > 0 {
		return p.Entities.People[0]
	}
	if len(p.Entities.Countries) > 0 {
		return p.Entities.Countries[0]
	}
	return ""
}

func containsAny(lowered string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lowered, t) {
			return true
		}
	}
	return false
}

// disambiguatePronoun replaces the first bare pronoun with the best actor,
// unless the actor already appears in the summary.
func disambiguatePronoun(summary string, actor string) (string, bool) {
	if actor == "" || !pronounRe.MatchString(summary) {
		return summary, false
	}
	if strings.Contains(strings.ToLower(summary), strings.ToLower(actor)) {
		return summary, false
	}
	replaced := false
	out := pronounRe.ReplaceAllStringFunc(summary, func(m string) string {
		if replaced {
			return m
		}
		replaced = true
		return actor
	})
	return out, replaced
}

// rewriteAttribution turns an unattributed high-risk claim into an
// explicitly attributed one.
func rewriteAttribution(summary string, actor string) (string, bool) {
	lowered := strings.ToLower(summary)
	if !containsAny(lowered, highRiskTerms) || containsAny(lowered, attributionMarkers) {
		return summary, false
	}
	claim := strings.TrimRight(strings.TrimSpace(summary), ".")
	if claim == "" {
		return summary, false
	}
	r := []rune(claim)
	r[0] = unicode.ToLower(r[0])
	claim = string(r)
	if actor == "" {
		return "Reportedly, " + claim + ".", true
	}
	return actor + " said " + claim + ".", true
}

func stabilizeFingerprint(fingerprint string, countries []string) string {
	parts := strings.Split(fingerprint, "|")
	if len(parts) < 8 {
		return fingerprint
	}
	parts[2] = strings.Join(countries, ",")
	return strings.Join(parts, "|")
}

// Canonicalize deterministically normalizes a validated payload and
// returns the canonical copy plus the fired rule identifiers. Running it
// on its own output changes nothing and fires no rules.
func Canonicalize(payload *models.ExtractionPayload) (*models.ExtractionPayload, []string) {
	p := payload.Clone()
	rules := []string{}

	countries := canonicalCountries(p.Entities.Countries)
	if !slices.Equal(countries, p.Entities.Countries) {
		rules = append(rules, RuleCountryAlias)
	}
	p.Entities.Countries = countries

	affected := canonicalCountries(p.AffectedCountriesFirstOrder)
	if !slices.Equal(affected, p.AffectedCountriesFirstOrder) {
		rules = append(rules, RuleAffectedCountryAlias)
	}
	p.AffectedCountriesFirstOrder = affected

	tickers := canonicalTickers(p.Entities.Tickers)
	if !slices.Equal(tickers, p.Entities.Tickers) {
		rules = append(rules, RuleTicker)
	}
	p.Entities.Tickers = tickers

	orgs := canonicalTextList(p.Entities.Orgs)
	if !slices.Equal(orgs, p.Entities.Orgs) {
		rules = append(rules, RuleOrgText)
	}
	p.Entities.Orgs = orgs

	people := canonicalTextList(p.Entities.People)
	if !slices.Equal(people, p.Entities.People) {
		rules = append(rules, RulePersonText)
	}
	p.Entities.People = people

	if p.SourceClaimed != nil {
		cleaned := collapseSpaces(*p.SourceClaimed)
		if cleaned == "" {
			p.SourceClaimed = nil
			rules = append(rules, RuleSourceText)
		} else if cleaned != *p.SourceClaimed {
			p.SourceClaimed = &cleaned
			rules = append(rules, RuleSourceText)
		}
	}

	actor := bestActor(p)
	if rewritten, fired := disambiguatePronoun(p.Summary, actor); fired {
		p.Summary = rewritten
		rules = append(rules, RuleSummaryPronoun)
	}
	if rewritten, fired := rewriteAttribution(p.Summary, actor); fired {
		p.Summary = rewritten
		rules = append(rules, RuleSummaryAttribution)
	}

	stabilized := stabilizeFingerprint(p.EventFingerprint, countries)
	if stabilized != p.EventFingerprint {
		rules = append(rules, RuleFingerprintCountry)
	}
	p.EventFingerprint = stabilized

	return p, rules
}
