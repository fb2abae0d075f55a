package validation

import (
	"regexp"
	"strings"
)

const (
	descriptionMinLength = 10
	descriptionMaxLength = 500
)

// forbiddenConcepts are tooling and vendor references that must never leak
// into a suggested description.
var forbiddenConcepts = compileAll(
	`(?i)\bLLM\b`,
	`(?i)\bprompt\b`,
	`(?i)\bpipeline\b`,
	`(?i)\bsystem\b`,
	`(?i)\bmodel\b`,
	`(?i)\bAI\b`,
	`(?i)\bChatGPT\b`,
	`(?i)\bOpenAI\b`,
	`(?i)\bAzure\s+OpenAI\b`,
	`(?i)\bAnthropic\b`,
	`(?i)\bClaude\b`,
	`(?i)\bGPT\b`,
	`(?i)\borchestrator\b`,
)

// genericDescriptions match descriptions that carry no information.
var genericDescriptions = compileAll(
	`(?i)^\s*This asset contains data\.?\s*$`,
	`(?i)^\s*Contains data\.?\s*$`,
	`(?i)^\s*A report\.?\s*$`,
	`(?i)^\s*Report about something\.?\s*$`,
	`(?i)^\s*Dataset\s*(with)?\s*information\.?\s*$`,
)

// speculativeLanguage matches hedging that violates the grounding rules.
var speculativeLanguage = compileAll(
	`(?i)\bbased\s+on\s+my\s+knowledge\b`,
	`(?i)\bin\s+general\b`,
	`(?i)\btypically\b`,
	`(?i)\blikely\b`,
	`(?i)\bprobably\b`,
	`(?i)\bappears\s+to\b`,
	`(?i)\bmay\b`,
	`(?i)\bcould\b`,
)

var forbiddenSources = regexp.MustCompile(`(?i)general knowledge|training data|internet|wikipedia`)

var allowedConfidence = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// ValidateSemantic checks the content rules on a structurally valid output:
// the description must be substantive, grounded and free of tooling
// references, confidence must come from the closed set, and every source
// must be a concrete document identifier.
func ValidateSemantic(out Output) Result {
	result := NewResult()

	desc := out.SuggestedDescription
	if strings.TrimSpace(desc) == "" {
		result.AddSemantic("suggested_description must be a non-empty string")
	} else {
		if len(desc) < descriptionMinLength {
			result.AddSemantic("suggested_description is too short (min %d chars)", descriptionMinLength)
		}
		if len(desc) > descriptionMaxLength {
			result.AddSemantic("suggested_description is too long (max %d chars)", descriptionMaxLength)
		}
		if matchesAny(genericDescriptions, desc) {
			result.AddSemantic("suggested_description is trivially generic")
		}
		if matchesAny(forbiddenConcepts, desc) {
			result.AddSemantic("suggested_description references forbidden concepts")
		}
		if matchesAny(speculativeLanguage, desc) {
			result.AddSemantic("suggested_description uses speculative or disallowed phrasing")
		}
	}

	if !allowedConfidence[out.Confidence] {
		result.AddSemantic("confidence must be one of: low, medium, high")
	}

	if len(out.UsedSources) == 0 {
		result.AddSemantic("used_sources must be a non-empty array")
	}
	for i, src := range out.UsedSources {
		if strings.TrimSpace(src) == "" {
			result.AddSemantic("used_sources[%d] must be a non-empty string", i)
			continue
		}
		if forbiddenSources.MatchString(src) {
			result.AddSemantic("used_sources[%d] references forbidden source identifiers", i)
		}
	}

	return result
}
