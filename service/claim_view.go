package service

import (
	"claimdesk/models"
	"sort"
	"strings"
	"time"
)

const recentClaimsLimit = 5

// VisibleClaims applies role scoping: analysts only see claims assigned to them
func VisibleClaims(claims []models.Claim, user *models.User) []models.Claim {
	out := make([]models.Claim, 0, len(claims))
	for i := range claims {
		if canSee(user, &claims[i]) {
			out = append(out, claims[i])
		}
	}
	return out
}

func canSee(user *models.User, c *models.Claim) bool {
	if user == nil {
		return false
	}
	if user.IsAnalyst() {
		return c.AssignedTo == user.Name
	}
	return true
}

// FilterClaims returns the visible claims matching every set predicate, in input order.
// now anchors the date presets; its location decides day boundaries.
func FilterClaims(claims []models.Claim, user *models.User, f models.ClaimFilter, now time.Time) []models.Claim {
	from, to := dateWindow(f, now)
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Claim, 0, len(claims))
	for _, c := range VisibleClaims(claims, user) {
		if search != "" && !matchesSearch(&c, search) {
			continue
		}
		if !matches(f.Status, string(c.Status)) ||
			!matches(f.Priority, string(c.Priority)) ||
			!matches(f.Country, string(c.Country)) ||
			!matches(f.ClaimType, string(c.ClaimType)) ||
			!matches(f.Organization, c.Organization) ||
			!matches(f.Reason, string(c.Reason)) ||
			!matches(f.SubReason, c.SubReason) {
			continue
		}
		switch f.AssignedTo {
		case "", models.FilterAll:
		case models.FilterUnassigned:
			if c.AssignedTo != "" {
				continue
			}
		default:
			if c.AssignedTo != f.AssignedTo {
				continue
			}
		}
		if from != nil && c.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !c.CreatedAt.Before(*to) {
			continue
		}
		if !matchesRoute(&c, f.Route) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(filter, value string) bool {
	return filter == "" || filter == models.FilterAll || filter == value
}

func matchesSearch(c *models.Claim, term string) bool {
	for _, field := range []string{
		c.ClaimNumber, c.EmailSubject, c.ClaimantName,
		c.CustomerClaimDetail, c.OrganizationClaimNumber, c.PNR,
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func matchesRoute(c *models.Claim, route models.RouteFilter) bool {
	switch route {
	case models.RouteOutbound:
		return c.OutboundFlightNumber != ""
	case models.RouteReturn:
		return c.ReturnFlightNumber != ""
	case models.RouteBoth:
		return c.OutboundFlightNumber != "" && c.ReturnFlightNumber != ""
	}
	return true
}

// dateWindow returns the half-open [from, to) createdAt window; nil bounds are open
func dateWindow(f models.ClaimFilter, now time.Time) (*time.Time, *time.Time) {
	today := startOfDay(now)
	var from, to time.Time
	switch f.DatePreset {
	case models.DateToday:
		from, to = today, today.AddDate(0, 0, 1)
	case models.DateThisWeek:
		// weeks start on Monday
		offset := (int(today.Weekday()) + 6) % 7
		from = today.AddDate(0, 0, -offset)
		to = from.AddDate(0, 0, 7)
	case models.DateThisMonth:
		from = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		to = from.AddDate(0, 1, 0)
	case models.DateThisYear:
		from = time.Date(today.Year(), 1, 1, 0, 0, 0, 0, today.Location())
		to = from.AddDate(1, 0, 0)
	case models.DateCustom:
		var fromPtr, toPtr *time.Time
		if f.DateFrom != nil {
			v := startOfDay(*f.DateFrom)
			fromPtr = &v
		}
		if f.DateTo != nil {
			v := startOfDay(*f.DateTo).AddDate(0, 0, 1)
			toPtr = &v
		}
		return fromPtr, toPtr
	default:
		return nil, nil
	}
	return &from, &to
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

var (
	statusRank   = rankOf(models.ClaimStatuses)
	priorityRank = rankOf(models.Priorities)
)

func rankOf[T comparable](order []T) map[T]int {
	m := make(map[T]int, len(order))
	for i, v := range order {
		m[v] = i
	}
	return m
}

// SortClaims orders claims in place by one column. Ties keep their input order.
// Status and priority sort by workflow order and severity; unknown fields leave the order unchanged.
func SortClaims(claims []models.Claim, field models.SortField, desc bool) {
	less := claimLess(field)
	if less == nil {
		return
	}
	sort.SliceStable(claims, func(i, j int) bool {
		if desc {
			return less(&claims[j], &claims[i])
		}
		return less(&claims[i], &claims[j])
	})
}

func claimLess(field models.SortField) func(a, b *models.Claim) bool {
	byString := func(get func(c *models.Claim) string) func(a, b *models.Claim) bool {
		return func(a, b *models.Claim) bool { return get(a) < get(b) }
	}
	switch field {
	case models.SortClaimNumber:
		return byString(func(c *models.Claim) string { return c.ClaimNumber })
	case models.SortCreatedAt:
		return func(a, b *models.Claim) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case models.SortUpdatedAt:
		return func(a, b *models.Claim) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case models.SortInitialDate:
		return func(a, b *models.Claim) bool { return a.InitialDate.Before(b.InitialDate) }
	case models.SortStatus:
		return func(a, b *models.Claim) bool { return statusRank[a.Status] < statusRank[b.Status] }
	case models.SortPriority:
		return func(a, b *models.Claim) bool { return priorityRank[a.Priority] < priorityRank[b.Priority] }
	case models.SortCountry:
		return byString(func(c *models.Claim) string { return string(c.Country) })
	case models.SortOrganization:
		return byString(func(c *models.Claim) string { return c.Organization })
	case models.SortAssignedTo:
		return byString(func(c *models.Claim) string { return c.AssignedTo })
	case models.SortEmailSubject:
		return byString(func(c *models.Claim) string { return strings.ToLower(c.EmailSubject) })
	case models.SortClaimantName:
		return byString(func(c *models.Claim) string { return strings.ToLower(c.ClaimantName) })
	}
	return nil
}

// Summarize builds the dashboard counters over the claims visible to user
func Summarize(claims []models.Claim, user *models.User) models.DashboardSummary {
	visible := VisibleClaims(claims, user)
	s := models.DashboardSummary{
		Total:         len(visible),
		ByStatus:      make(map[models.ClaimStatus]int, len(models.ClaimStatuses)),
		ByPriority:    make(map[models.Priority]int, len(models.Priorities)),
		ByFinalStatus: map[models.FinalStatus]int{models.FinalStatusPendiente: 0, models.FinalStatusCerrado: 0},
	}
	for _, st := range models.ClaimStatuses {
		s.ByStatus[st] = 0
	}
	for _, p := range models.Priorities {
		s.ByPriority[p] = 0
	}
	for _, c := range visible {
		s.ByStatus[c.Status]++
		s.ByPriority[c.Priority]++
		s.ByFinalStatus[c.FinalStatus]++
		if c.AssignedTo == "" {
			s.Unassigned++
		}
		if c.WasCompensated {
			s.Compensated++
		}
	}
	n := len(visible)
	if n > recentClaimsLimit {
		n = recentClaimsLimit
	}
	s.Recent = append([]models.Claim{}, visible[:n]...)
	return s
}
