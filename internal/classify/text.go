package classify

import (
	"strings"

	"github.com/spec-kit/deskboard/internal/domain"
)

// categoryRules are checked in order; the first category with a keyword hit
// wins. Refund runs before Billing because refund requests routinely mention
// charges and payments.
var categoryRules = []struct {
	category domain.TicketCategory
	keywords []string
}{
	{domain.CategoryRefund, []string{"refund", "money back", "reimburse", "chargeback"}},
	{domain.CategoryBilling, []string{"billing", "invoice", "payment", "charge", "subscription"}},
	{domain.CategoryAccount, []string{"login", "log in", "sign in", "password", "account", "locked out"}},
	{domain.CategoryTechnical, []string{"crash", "error", "bug", "broken", "not working", "slow", "fail"}},
}

var highUrgencyKeywords = []string{"urgent", "critical", "emergency"}

var lowUrgencyKeywords = []string{"when you can", "no rush", "minor"}

// DetectCategory classifies free text into one of the five fixed categories
// by case-insensitive substring matching. Unmatched text falls back to
// General Query.
func DetectCategory(text string) domain.TicketCategory {
	lowered := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.category
			}
		}
	}
	return domain.CategoryGeneral
}

// DetectUrgency grades free text High, Medium or Low. Severity words win
// over de-escalation phrases when both appear.
func DetectUrgency(text string) domain.TicketUrgency {
	lowered := strings.ToLower(text)
	for _, keyword := range highUrgencyKeywords {
		if strings.Contains(lowered, keyword) {
			return domain.UrgencyHigh
		}
	}
	for _, keyword := range lowUrgencyKeywords {
		if strings.Contains(lowered, keyword) {
			return domain.UrgencyLow
		}
	}
	return domain.UrgencyMedium
}
