package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/deskboard/internal/domain"
)

func TestDetectCategory(t *testing.T) {
	cases := []struct {
		name string
		text string
		want domain.TicketCategory
	}{
		{"billing keyword", "Invoice discrepancy for last month", domain.CategoryBilling},
		{"billing mixed case", "This is an URGENT billing issue, please help", domain.CategoryBilling},
		{"account keyword", "Cannot reset my password", domain.CategoryAccount},
		{"technical keyword", "Application crashes on startup", domain.CategoryTechnical},
		{"refund keyword", "Request refund for unused subscription", domain.CategoryRefund},
		{"refund wins over billing terms", "Refund the payment charged to my card", domain.CategoryRefund},
		{"no match defaults to general", "How to upgrade my plan?", domain.CategoryGeneral},
		{"empty text", "", domain.CategoryGeneral},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectCategory(tc.text))
		})
	}
}

func TestDetectUrgency(t *testing.T) {
	cases := []struct {
		name string
		text string
		want domain.TicketUrgency
	}{
		{"urgent", "This is an URGENT billing issue, please help", domain.UrgencyHigh},
		{"critical", "critical outage affecting production", domain.UrgencyHigh},
		{"emergency", "Emergency: cannot access anything", domain.UrgencyHigh},
		{"no rush", "Please look at this when you get a chance, no rush", domain.UrgencyLow},
		{"minor", "A minor cosmetic problem on the settings page", domain.UrgencyLow},
		{"when you can", "Fix this when you can", domain.UrgencyLow},
		{"default medium", "Something looks off with my data", domain.UrgencyMedium},
		{"high beats low", "urgent but no rush really", domain.UrgencyHigh},
		{"empty text", "", domain.UrgencyMedium},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectUrgency(tc.text))
		})
	}
}
