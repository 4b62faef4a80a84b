package wizardengine

import (
	"regexp"
	"strings"
)

// A SpecifyTrigger decides, from option text alone, whether selecting the
// option opens a free-text detail field. The matching rule is business
// logic coupled to the wording of the option catalog; keeping it behind this
// seam lets the rule change without touching validation or navigation.
type SpecifyTrigger func(optionText string) bool

var specifyPhrasePattern = regexp.MustCompile(`(?i)\(please (specify|list|mention)`)

// BaseSpecifyTrigger matches only the explicit "(please specify)",
// "(please list)" and "(please mention ...)" markers. This is the rule used
// for validation and for seeding the specify-text entries on question load.
func BaseSpecifyTrigger(optionText string) bool {
	return specifyPhrasePattern.MatchString(optionText)
}

// ExtendedSpecifyTrigger additionally treats "yes", "other" and the
// free-text marker phrase "any actives" as triggering. This richer rule
// drives when the detail field is shown.
func ExtendedSpecifyTrigger(optionText string) bool {
	if BaseSpecifyTrigger(optionText) {
		return true
	}
	lower := strings.ToLower(optionText)
	return strings.Contains(lower, "yes") ||
		strings.Contains(lower, "other") ||
		strings.Contains(lower, "any actives")
}
