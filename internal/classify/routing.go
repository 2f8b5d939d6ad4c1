package classify

import "github.com/spec-kit/deskboard/internal/domain"

// categoryTeams is the static routing table: every category is owned by
// exactly one team.
var categoryTeams = map[domain.TicketCategory]domain.Team{
	domain.CategoryBilling:   domain.TeamBilling,
	domain.CategoryAccount:   domain.TeamAccountSupport,
	domain.CategoryTechnical: domain.TeamTechSupport,
	domain.CategoryRefund:    domain.TeamFinance,
	domain.CategoryGeneral:   domain.TeamGeneralSupport,
}

// RouteCategory returns the team that owns the given category. The mapping
// is exhaustive over the fixed categories; anything else lands on general
// support so the lookup is total.
func RouteCategory(category domain.TicketCategory) domain.Team {
	if team, ok := categoryTeams[category]; ok {
		return team
	}
	return domain.TeamGeneralSupport
}
