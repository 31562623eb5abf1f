package models

import (
	"time"
)

// Country is the country a claim was filed in
type Country string

const (
	CountryAR Country = "AR"
	CountryBR Country = "BR"
	CountryCL Country = "CL"
	CountryCO Country = "CO"
	CountryEC Country = "EC"
	CountryPE Country = "PE"
	CountryPY Country = "PY"
	CountryRD Country = "RD"
	CountryUY Country = "UY"
)

// Countries lists every supported country in display order
var Countries = []Country{
	CountryAR, CountryBR, CountryCL, CountryCO, CountryEC,
	CountryPE, CountryPY, CountryRD, CountryUY,
}

// Valid reports whether c is a supported country
func (c Country) Valid() bool {
	for _, known := range Countries {
		if c == known {
			return true
		}
	}
	return false
}

// ClaimType is the channel a claim arrived through
type ClaimType string

const (
	ClaimTypeEmpresa  ClaimType = "empresa"
	ClaimTypeLegal    ClaimType = "legal"
	ClaimTypeOfficial ClaimType = "official"
)

// ClaimTypes lists every claim type
var ClaimTypes = []ClaimType{ClaimTypeEmpresa, ClaimTypeLegal, ClaimTypeOfficial}

// Valid reports whether t is a known claim type
func (t ClaimType) Valid() bool {
	return t == ClaimTypeEmpresa || t == ClaimTypeLegal || t == ClaimTypeOfficial
}

// ClaimReason is the top-level categorization of a claim
type ClaimReason string

const (
	ReasonAeropuerto          ClaimReason = "Aeropuerto"
	ReasonCambioItinerario    ClaimReason = "Cambio_de_Itinerario_y_Atrasos"
	ReasonCesionRetracto      ClaimReason = "Cesion_y_Retracto"
	ReasonClubDescuento       ClaimReason = "Club_de_Descuento"
	ReasonCrisisSocial        ClaimReason = "Crisis_Social"
	ReasonDevoluciones        ClaimReason = "Devoluciones"
	ReasonEquipaje            ClaimReason = "Equipaje"
	ReasonErrorCompra         ClaimReason = "Error_en_Compra"
	ReasonGiftCard            ClaimReason = "Gift_Card"
	ReasonNorwegian           ClaimReason = "Norwegian"
	ReasonImpedimentoMedico   ClaimReason = "Impedimento_Médico"
	ReasonPVCSernac           ClaimReason = "PVC_SERNAC"
	ReasonServiciosOpcionales ClaimReason = "Servicios_Opcionales"
	ReasonSitioWeb            ClaimReason = "Sitio_Web"
	ReasonValidacionCompra    ClaimReason = "Validación_de_Compra"
	ReasonAmericanAirlines    ClaimReason = "American_Airlines"
)

// ClaimReasons lists every reason
var ClaimReasons = []ClaimReason{
	ReasonAeropuerto, ReasonCambioItinerario, ReasonCesionRetracto, ReasonClubDescuento,
	ReasonCrisisSocial, ReasonDevoluciones, ReasonEquipaje, ReasonErrorCompra,
	ReasonGiftCard, ReasonNorwegian, ReasonImpedimentoMedico, ReasonPVCSernac,
	ReasonServiciosOpcionales, ReasonSitioWeb, ReasonValidacionCompra, ReasonAmericanAirlines,
}

// Valid reports whether r is a known reason
func (r ClaimReason) Valid() bool {
	for _, known := range ClaimReasons {
		if r == known {
			return true
		}
	}
	return false
}

// ClaimStatus represents the workflow status of a claim.
// The graph is free-choice: any status may follow any other.
type ClaimStatus string

const (
	StatusNew             ClaimStatus = "new"
	StatusEnGestion       ClaimStatus = "en-gestion"
	StatusEscalado        ClaimStatus = "escalado"
	StatusEnviadoAbogados ClaimStatus = "enviado-abogados"
	StatusParaCierre      ClaimStatus = "para-cierre"
)

// ClaimStatuses lists every status in workflow order
var ClaimStatuses = []ClaimStatus{
	StatusNew, StatusEnGestion, StatusEscalado, StatusEnviadoAbogados, StatusParaCierre,
}

// Valid reports whether s is a known status
func (s ClaimStatus) Valid() bool {
	for _, known := range ClaimStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Priority represents claim priority levels
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Priorities lists every priority from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh || p == PriorityCritical
}

// FinalStatus is the closure flag, independent of ClaimStatus
type FinalStatus string

const (
	FinalStatusPendiente FinalStatus = "pendiente"
	FinalStatusCerrado   FinalStatus = "cerrado"
)

// Valid reports whether f is a known final status
func (f FinalStatus) Valid() bool {
	return f == FinalStatusPendiente || f == FinalStatusCerrado
}

// ClosureReason explains why a claim was closed
type ClosureReason string

const (
	ClosureConAcuerdo      ClosureReason = "con-acuerdo"
	ClosureSinAcuerdo      ClosureReason = "sin-acuerdo"
	ClosureIncomparecencia ClosureReason = "incomparecencia"
	ClosureAplica          ClosureReason = "aplica"
	ClosureAplicaParcial   ClosureReason = "aplica-parcial"
	ClosureNoAplica        ClosureReason = "no-aplica"
	ClosureDesistido       ClosureReason = "desistido"
)

// ClosureReasons lists every closure reason
var ClosureReasons = []ClosureReason{
	ClosureConAcuerdo, ClosureSinAcuerdo, ClosureIncomparecencia, ClosureAplica,
	ClosureAplicaParcial, ClosureNoAplica, ClosureDesistido,
}

// Valid reports whether r is a known closure reason
func (r ClosureReason) Valid() bool {
	for _, known := range ClosureReasons {
		if r == known {
			return true
		}
	}
	return false
}

// PaymentType is the compensation channel
type PaymentType string

const (
	PaymentTransferencia PaymentType = "transferencia"
	PaymentGiftCard      PaymentType = "gc"
	PaymentAmbas         PaymentType = "ambas"
)

// Valid reports whether p is a known payment type
func (p PaymentType) Valid() bool {
	return p == PaymentTransferencia || p == PaymentGiftCard || p == PaymentAmbas
}

// IncludesTransfer reports whether a bank transfer is part of the payment
func (p PaymentType) IncludesTransfer() bool {
	return p == PaymentTransferencia || p == PaymentAmbas
}

// IncludesGiftCard reports whether a gift card is part of the payment
func (p PaymentType) IncludesGiftCard() bool {
	return p == PaymentGiftCard || p == PaymentAmbas
}

// Currency of a compensation amount. CurrencyOther requires free text.
type Currency string

const (
	CurrencyCLP   Currency = "CLP"
	CurrencyARS   Currency = "ARS"
	CurrencyUSD   Currency = "USD"
	CurrencyBRL   Currency = "BRL"
	CurrencyCOP   Currency = "COP"
	CurrencyPEN   Currency = "PEN"
	CurrencyOther Currency = "OTRA"
)

// Currencies lists every selectable currency
var Currencies = []Currency{
	CurrencyCLP, CurrencyARS, CurrencyUSD, CurrencyBRL, CurrencyCOP, CurrencyPEN, CurrencyOther,
}

// FlightOperator is the operating carrier code
type FlightOperator string

const (
	OperatorJ6 FlightOperator = "J6"
	OperatorJA FlightOperator = "JA"
	OperatorJZ FlightOperator = "JZ"
	OperatorWJ FlightOperator = "WJ"
)

// AffectedFlight marks which leg of the trip the claim refers to
type AffectedFlight string

const (
	AffectedIda    AffectedFlight = "IDA"
	AffectedVuelta AffectedFlight = "VUELTA"
	AffectedAmbas  AffectedFlight = "AMBAS"
)

// Valid reports whether a is a known leg selection
func (a AffectedFlight) Valid() bool {
	return a == AffectedIda || a == AffectedVuelta || a == AffectedAmbas
}

// History actors and well-known actions
const (
	SystemActor         = "Sistema"
	ActionClaimCreated  = "Reclamo creado"
	OtherEscalationArea = "Otra"
)

// HistoryNote is a history entry before the store stamps id, date and author
type HistoryNote struct {
	Action  string
	Comment string
	Area    string
}

// HistoryEntry is one immutable audit record of a claim
type HistoryEntry struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Action  string    `json:"action"`
	User    string    `json:"user"`
	Comment string    `json:"comment,omitempty"`
	Area    string    `json:"area,omitempty"`
}

// Claim represents a customer complaint tracked from intake to closure
type Claim struct {
	ID          string `json:"id"`
	ClaimNumber string `json:"claimNumber"`

	Country      Country     `json:"country"`
	ClaimType    ClaimType   `json:"claimType"`
	Organization string      `json:"organization"`
	Reason       ClaimReason `json:"reason"`
	SubReason    string      `json:"subReason"`

	EmailSubject            string `json:"emailSubject"`
	OrganizationClaimNumber string `json:"organizationClaimNumber"`
	CustomerClaimDetail     string `json:"customerClaimDetail"`
	InformationRequest      string `json:"informationRequest"`

	// Completed during management
	ClaimantName     string `json:"claimantName,omitempty"`
	IdentityDocument string `json:"identityDocument,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`

	PNR                  string         `json:"pnr"`
	OutboundFlightDate   *time.Time     `json:"outboundFlightDate,omitempty"`
	OutboundFlightNumber string         `json:"outboundFlightNumber,omitempty"`
	OutboundOperator     FlightOperator `json:"outboundOperator,omitempty"`
	OutboundRoute        string         `json:"outboundRoute,omitempty"`
	ReturnFlightDate     *time.Time     `json:"returnFlightDate,omitempty"`
	ReturnFlightNumber   string         `json:"returnFlightNumber,omitempty"`
	ReturnOperator       FlightOperator `json:"returnOperator,omitempty"`
	ReturnRoute          string         `json:"returnRoute,omitempty"`
	AffectedFlight       AffectedFlight `json:"affectedFlight,omitempty"`

	Status     ClaimStatus `json:"status"`
	Priority   Priority    `json:"priority"`
	AssignedTo string      `json:"assignedTo,omitempty"`

	EscalatedAreas      []string `json:"escalatedAreas,omitempty"`
	OtherEscalationArea string   `json:"otherEscalationArea,omitempty"`

	LawyerInfoRequested    bool `json:"lawyerInfoRequested"`
	LawyerPaymentSentence  bool `json:"lawyerPaymentSentence"`
	LawyerPaymentAgreement bool `json:"lawyerPaymentAgreement"`

	FinalStatus   FinalStatus   `json:"finalStatus"`
	ClosureReason ClosureReason `json:"closureReason,omitempty"`

	WasCompensated         bool        `json:"wasCompensated"`
	PaymentType            PaymentType `json:"paymentType,omitempty"`
	TransferAmount         string      `json:"transferAmount,omitempty"`
	TransferCurrency       Currency    `json:"transferCurrency,omitempty"`
	TransferCustomCurrency string      `json:"transferCustomCurrency,omitempty"`
	GCAmount               string      `json:"gcAmount,omitempty"`
	GCCurrency             Currency    `json:"gcCurrency,omitempty"`
	GCCustomCurrency       string      `json:"gcCustomCurrency,omitempty"`

	InitialDate time.Time  `json:"initialDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`

	History []HistoryEntry `json:"history"`
}

// Clone returns a deep copy so callers never share slices or pointers with the store
func (c *Claim) Clone() *Claim {
	out := *c
	out.EscalatedAreas = append([]string(nil), c.EscalatedAreas...)
	out.History = append([]HistoryEntry(nil), c.History...)
	out.OutboundFlightDate = cloneTime(c.OutboundFlightDate)
	out.ReturnFlightDate = cloneTime(c.ReturnFlightDate)
	out.ResolvedAt = cloneTime(c.ResolvedAt)
	return &out
}

// IsClosed reports whether the claim reached the closed final status
func (c *Claim) IsClosed() bool {
	return c.FinalStatus == FinalStatusCerrado
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
