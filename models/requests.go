package models

import "time"

// CreateClaimRequest is the intake form payload
type CreateClaimRequest struct {
	Country                 Country     `json:"country"`
	ClaimType               ClaimType   `json:"claimType"`
	Organization            string      `json:"organization"`
	EmailSubject            string      `json:"emailSubject"`
	OrganizationClaimNumber string      `json:"organizationClaimNumber"`
	CustomerClaimDetail     string      `json:"customerClaimDetail"`
	InformationRequest      string      `json:"informationRequest"`
	Reason                  ClaimReason `json:"reason,omitempty"`
	SubReason               string      `json:"subReason,omitempty"`
	PNR                     string      `json:"pnr,omitempty"`
	InitialDate             *time.Time  `json:"initialDate,omitempty"`
	Status                  ClaimStatus `json:"status,omitempty"`
	Priority                Priority    `json:"priority,omitempty"`
	AssignedTo              string      `json:"assignedTo,omitempty"`
}

// ManagementForm is the full management view submitted on save
type ManagementForm struct {
	ClaimantName     string `json:"claimantName"`
	IdentityDocument string `json:"identityDocument"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`

	Reason    ClaimReason `json:"reason"`
	SubReason string      `json:"subReason"`

	PNR                  string         `json:"pnr"`
	InitialDate          *time.Time     `json:"initialDate,omitempty"`
	OutboundFlightDate   *time.Time     `json:"outboundFlightDate,omitempty"`
	OutboundFlightNumber string         `json:"outboundFlightNumber"`
	OutboundOperator     FlightOperator `json:"outboundOperator,omitempty"`
	OutboundRoute        string         `json:"outboundRoute"`
	ReturnFlightDate     *time.Time     `json:"returnFlightDate,omitempty"`
	ReturnFlightNumber   string         `json:"returnFlightNumber"`
	ReturnOperator       FlightOperator `json:"returnOperator,omitempty"`
	ReturnRoute          string         `json:"returnRoute"`
	AffectedFlight       AffectedFlight `json:"affectedFlight,omitempty"`

	Status   ClaimStatus `json:"status"`
	Priority Priority    `json:"priority"`

	EscalatedAreas      []string `json:"escalatedAreas"`
	OtherEscalationArea string   `json:"otherEscalationArea"`

	LawyerInfoRequested    bool `json:"lawyerInfoRequested"`
	LawyerPaymentSentence  bool `json:"lawyerPaymentSentence"`
	LawyerPaymentAgreement bool `json:"lawyerPaymentAgreement"`

	FinalStatus   FinalStatus   `json:"finalStatus"`
	ClosureReason ClosureReason `json:"closureReason,omitempty"`

	WasCompensated         bool        `json:"wasCompensated"`
	PaymentType            PaymentType `json:"paymentType,omitempty"`
	TransferAmount         string      `json:"transferAmount"`
	TransferCurrency       Currency    `json:"transferCurrency,omitempty"`
	TransferCustomCurrency string      `json:"transferCustomCurrency"`
	GCAmount               string      `json:"gcAmount"`
	GCCurrency             Currency    `json:"gcCurrency,omitempty"`
	GCCustomCurrency       string      `json:"gcCustomCurrency"`
}

// ManagementFormFromClaim prefills the management form with the stored claim
func ManagementFormFromClaim(c *Claim) ManagementForm {
	initial := c.InitialDate
	return ManagementForm{
		ClaimantName:           c.ClaimantName,
		IdentityDocument:       c.IdentityDocument,
		Email:                  c.Email,
		Phone:                  c.Phone,
		Reason:                 c.Reason,
		SubReason:              c.SubReason,
		PNR:                    c.PNR,
		InitialDate:            &initial,
		OutboundFlightDate:     cloneTime(c.OutboundFlightDate),
		OutboundFlightNumber:   c.OutboundFlightNumber,
		OutboundOperator:       c.OutboundOperator,
		OutboundRoute:          c.OutboundRoute,
		ReturnFlightDate:       cloneTime(c.ReturnFlightDate),
		ReturnFlightNumber:     c.ReturnFlightNumber,
		ReturnOperator:         c.ReturnOperator,
		ReturnRoute:            c.ReturnRoute,
		AffectedFlight:         c.AffectedFlight,
		Status:                 c.Status,
		Priority:               c.Priority,
		EscalatedAreas:         append([]string(nil), c.EscalatedAreas...),
		OtherEscalationArea:    c.OtherEscalationArea,
		LawyerInfoRequested:    c.LawyerInfoRequested,
		LawyerPaymentSentence:  c.LawyerPaymentSentence,
		LawyerPaymentAgreement: c.LawyerPaymentAgreement,
		FinalStatus:            c.FinalStatus,
		ClosureReason:          c.ClosureReason,
		WasCompensated:         c.WasCompensated,
		PaymentType:            c.PaymentType,
		TransferAmount:         c.TransferAmount,
		TransferCurrency:       c.TransferCurrency,
		TransferCustomCurrency: c.TransferCustomCurrency,
		GCAmount:               c.GCAmount,
		GCCurrency:             c.GCCurrency,
		GCCustomCurrency:       c.GCCustomCurrency,
	}
}

// ClaimUpdate is a partial update; nil fields are left untouched
type ClaimUpdate struct {
	Country                 *Country
	ClaimType               *ClaimType
	Organization            *string
	Reason                  *ClaimReason
	SubReason               *string
	EmailSubject            *string
	OrganizationClaimNumber *string
	CustomerClaimDetail     *string
	InformationRequest      *string

	ClaimantName     *string
	IdentityDocument *string
	Email            *string
	Phone            *string

	PNR                  *string
	InitialDate          *time.Time
	OutboundFlightDate   **time.Time
	OutboundFlightNumber *string
	OutboundOperator     *FlightOperator
	OutboundRoute        *string
	ReturnFlightDate     **time.Time
	ReturnFlightNumber   *string
	ReturnOperator       *FlightOperator
	ReturnRoute          *string
	AffectedFlight       *AffectedFlight

	Status     *ClaimStatus
	Priority   *Priority
	AssignedTo *string

	EscalatedAreas      *[]string
	OtherEscalationArea *string

	LawyerInfoRequested    *bool
	LawyerPaymentSentence  *bool
	LawyerPaymentAgreement *bool

	FinalStatus   *FinalStatus
	ClosureReason *ClosureReason

	WasCompensated         *bool
	PaymentType            *PaymentType
	TransferAmount         *string
	TransferCurrency       *Currency
	TransferCustomCurrency *string
	GCAmount               *string
	GCCurrency             *Currency
	GCCustomCurrency       *string
}

// AssignRequest is the mass-assignment payload
type AssignRequest struct {
	ClaimIDs []string `json:"claimIds"`
	Agent    string   `json:"agent"`
}

// AssignResponse reports how many claims were reassigned
type AssignResponse struct {
	Assigned int    `json:"assigned"`
	Agent    string `json:"agent"`
	Message  string `json:"message"`
}

// CommentRequest adds a free-text entry to a claim's history
type CommentRequest struct {
	Comment string `json:"comment"`
	Area    string `json:"area,omitempty"`
}

// LoginRequest represents an operator login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token bound to the new session
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
	Message string `json:"message"`
}

// SetActiveRequest toggles an operator account
type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// NextNumberResponse previews the next claim number
type NextNumberResponse struct {
	ClaimNumber string `json:"claimNumber"`
}

// ClaimListResponse is a filtered, sorted view of claims
type ClaimListResponse struct {
	Total  int     `json:"total"`
	Claims []Claim `json:"claims"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Code    int    `json:"code"`
}
