package service

import (
	"claimdesk/models"
	"fmt"
	"strings"
)

// ValidationError rejects a submission; Field names the offending form field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidPNR reports whether pnr is 6 alphanumeric characters starting and ending with a letter
func ValidPNR(pnr string) bool {
	if len(pnr) != 6 {
		return false
	}
	for i := 0; i < len(pnr); i++ {
		ch := pnr[i]
		letter := (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
		digit := ch >= '0' && ch <= '9'
		if !letter && !digit {
			return false
		}
		if (i == 0 || i == 5) && !letter {
			return false
		}
	}
	return true
}

// ValidateManagement checks the cross-field rules of a management save.
// Returns the first violated rule; nil means the form may be persisted.
func ValidateManagement(f *models.ManagementForm) *ValidationError {
	if strings.TrimSpace(f.ClaimantName) == "" || strings.TrimSpace(f.Email) == "" {
		field := "claimantName"
		if strings.TrimSpace(f.ClaimantName) != "" {
			field = "email"
		}
		return invalid(field, "El nombre del reclamante y el email son obligatorios")
	}

	if f.PNR != "" && !ValidPNR(f.PNR) {
		return invalid("pnr", "El PNR debe tener 6 caracteres alfanuméricos, comenzando y terminando con una letra")
	}

	if f.Status == models.StatusEscalado {
		if len(f.EscalatedAreas) == 0 {
			return invalid("escalatedAreas", "Debe seleccionar al menos un área de escalamiento")
		}
		if containsString(f.EscalatedAreas, models.OtherEscalationArea) && strings.TrimSpace(f.OtherEscalationArea) == "" {
			return invalid("otherEscalationArea", "Debe especificar el área personalizada")
		}
	}

	if f.FinalStatus == models.FinalStatusCerrado && f.ClosureReason == "" {
		return invalid("closureReason", "Debe seleccionar un motivo de cierre")
	}

	if f.WasCompensated {
		if f.PaymentType == "" {
			return invalid("paymentType", "Debe seleccionar el tipo de pago de la compensación")
		}
		if f.PaymentType.IncludesTransfer() {
			if strings.TrimSpace(f.TransferAmount) == "" || f.TransferCurrency == "" {
				return invalid("transferAmount", "Debe completar el monto y la moneda de la transferencia")
			}
			if f.TransferCurrency == models.CurrencyOther && strings.TrimSpace(f.TransferCustomCurrency) == "" {
				return invalid("transferCustomCurrency", "Debe especificar la moneda personalizada de la transferencia")
			}
		}
		if f.PaymentType.IncludesGiftCard() {
			if strings.TrimSpace(f.GCAmount) == "" || f.GCCurrency == "" {
				return invalid("gcAmount", "Debe completar el monto y la moneda del Gift Card")
			}
			if f.GCCurrency == models.CurrencyOther && strings.TrimSpace(f.GCCustomCurrency) == "" {
				return invalid("gcCustomCurrency", "Debe especificar la moneda personalizada del Gift Card")
			}
		}
	}
	return nil
}

// validateEnums rejects values outside the closed sets. Empty optional values pass.
func validateEnums(f *models.ManagementForm) *ValidationError {
	if f.Reason != "" && !f.Reason.Valid() {
		return invalid("reason", "Motivo inválido")
	}
	if !f.Status.Valid() {
		return invalid("status", "Estado inválido")
	}
	if !f.Priority.Valid() {
		return invalid("priority", "Prioridad inválida")
	}
	if !f.FinalStatus.Valid() {
		return invalid("finalStatus", "Estado final inválido")
	}
	if f.ClosureReason != "" && !f.ClosureReason.Valid() {
		return invalid("closureReason", "Motivo de cierre inválido")
	}
	if f.PaymentType != "" && !f.PaymentType.Valid() {
		return invalid("paymentType", "Tipo de pago inválido")
	}
	if f.AffectedFlight != "" && !f.AffectedFlight.Valid() {
		return invalid("affectedFlight", "Vuelo afectado inválido")
	}
	return nil
}

// validateAgainstCatalog checks the form values that come from the lookup tables
func validateAgainstCatalog(f *models.ManagementForm, catalog *models.Catalog) *ValidationError {
	if f.SubReason != "" && !catalog.HasSubReason(f.Reason, f.SubReason) {
		return invalid("subReason", "El sub motivo no corresponde al motivo seleccionado")
	}
	if f.Status == models.StatusEscalado {
		for _, area := range f.EscalatedAreas {
			if !catalog.IsEscalationArea(area) {
				return invalid("escalatedAreas", fmt.Sprintf("Área de escalamiento desconocida: %s", area))
			}
		}
	}
	if f.OutboundOperator != "" && !catalog.IsFlightOperator(f.OutboundOperator) {
		return invalid("outboundOperator", "Operador del vuelo de ida inválido")
	}
	if f.ReturnOperator != "" && !catalog.IsFlightOperator(f.ReturnOperator) {
		return invalid("returnOperator", "Operador del vuelo de vuelta inválido")
	}
	if f.TransferCurrency != "" && !catalog.IsCurrency(f.TransferCurrency) {
		return invalid("transferCurrency", "Moneda de la transferencia inválida")
	}
	if f.GCCurrency != "" && !catalog.IsCurrency(f.GCCurrency) {
		return invalid("gcCurrency", "Moneda del Gift Card inválida")
	}
	return nil
}

// validateIntake checks the intake form: subject, detail and a catalog-consistent organization
func validateIntake(req *models.CreateClaimRequest, catalog *models.Catalog) *ValidationError {
	if !req.Country.Valid() {
		return invalid("country", "Debe seleccionar un país válido")
	}
	if !req.ClaimType.Valid() {
		return invalid("claimType", "Debe seleccionar un tipo de reclamo válido")
	}
	if strings.TrimSpace(req.Organization) == "" ||
		strings.TrimSpace(req.EmailSubject) == "" ||
		strings.TrimSpace(req.CustomerClaimDetail) == "" {
		return invalid("organization", "El organismo, el asunto y el detalle del reclamo son obligatorios")
	}
	if !catalog.HasOrganization(req.Country, req.ClaimType, req.Organization) {
		return invalid("organization", "El organismo no corresponde al país y tipo de reclamo")
	}
	if req.Reason != "" && !req.Reason.Valid() {
		return invalid("reason", "Motivo inválido")
	}
	if req.SubReason != "" && !catalog.HasSubReason(req.Reason, req.SubReason) {
		return invalid("subReason", "El sub motivo no corresponde al motivo seleccionado")
	}
	if req.PNR != "" && !ValidPNR(req.PNR) {
		return invalid("pnr", "El PNR debe tener 6 caracteres alfanuméricos, comenzando y terminando con una letra")
	}
	if req.Status != "" && !req.Status.Valid() {
		return invalid("status", "Estado inválido")
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return invalid("priority", "Prioridad inválida")
	}
	if req.AssignedTo != "" && !catalog.IsAgent(req.AssignedTo) {
		return invalid("assignedTo", "El agente seleccionado no existe")
	}
	return nil
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
