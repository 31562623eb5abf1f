package models

import "time"

// Sentinels accepted by list filters
const (
	FilterAll        = "all"
	FilterUnassigned = "sin-asignar"
)

// DatePreset selects a createdAt window relative to now
type DatePreset string

const (
	DateToday     DatePreset = "today"
	DateThisWeek  DatePreset = "this-week"
	DateThisMonth DatePreset = "this-month"
	DateThisYear  DatePreset = "this-year"
	DateCustom    DatePreset = "custom"
)

// RouteFilter matches claims by which flight legs carry a flight number
type RouteFilter string

const (
	RouteOutbound RouteFilter = "ida"
	RouteReturn   RouteFilter = "vuelta"
	RouteBoth     RouteFilter = "ida-vuelta"
)

// ClaimFilter holds the list view filters. Empty or "all" values are not applied.
type ClaimFilter struct {
	Search       string
	Status       string
	Priority     string
	Country      string
	ClaimType    string
	Organization string
	AssignedTo   string
	Reason       string
	SubReason    string
	DatePreset   DatePreset
	DateFrom     *time.Time
	DateTo       *time.Time
	Route        RouteFilter
}

// SortField names a sortable claim column
type SortField string

const (
	SortClaimNumber  SortField = "claimNumber"
	SortCreatedAt    SortField = "createdAt"
	SortUpdatedAt    SortField = "updatedAt"
	SortInitialDate  SortField = "initialDate"
	SortStatus       SortField = "status"
	SortPriority     SortField = "priority"
	SortCountry      SortField = "country"
	SortOrganization SortField = "organization"
	SortAssignedTo   SortField = "assignedTo"
	SortEmailSubject SortField = "emailSubject"
	SortClaimantName SortField = "claimantName"
)

// DashboardSummary aggregates the visible claim set for the dashboard
type DashboardSummary struct {
	Total         int                 `json:"total"`
	ByStatus      map[ClaimStatus]int `json:"byStatus"`
	ByPriority    map[Priority]int    `json:"byPriority"`
	ByFinalStatus map[FinalStatus]int `json:"byFinalStatus"`
	Unassigned    int                 `json:"unassigned"`
	Compensated   int                 `json:"compensated"`
	Recent        []Claim             `json:"recent"`
}
