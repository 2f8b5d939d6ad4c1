package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/deskboard/internal/domain"
)

func TestRouteCategoryExhaustive(t *testing.T) {
	want := map[domain.TicketCategory]domain.Team{
		domain.CategoryBilling:   domain.TeamBilling,
		domain.CategoryAccount:   domain.TeamAccountSupport,
		domain.CategoryTechnical: domain.TeamTechSupport,
		domain.CategoryRefund:    domain.TeamFinance,
		domain.CategoryGeneral:   domain.TeamGeneralSupport,
	}

	for _, category := range domain.TicketCategories {
		assert.Equal(t, want[category], RouteCategory(category), "category %q", category)
	}
}

func TestRouteCategoryUnknownFallsBack(t *testing.T) {
	assert.Equal(t, domain.TeamGeneralSupport, RouteCategory(domain.TicketCategory("Nonsense")))
}
