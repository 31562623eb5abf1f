package repository

import (
	"claimdesk/models"
	"log"
)

// SeedMockClaims loads the demo claims used on every start. Returns how many were added.
func SeedMockClaims(repo *ClaimRepository) int {
	now := repo.now()
	seeds := []struct {
		claim  models.Claim
		update *models.ClaimUpdate
	}{
		{
			claim: models.Claim{
				Country:                 models.CountryCL,
				ClaimType:               models.ClaimTypeOfficial,
				Organization:            "SERNAC",
				Reason:                  models.ReasonEquipaje,
				SubReason:               "Equipaje Dañado",
				EmailSubject:            "Maleta dañada en vuelo SCL-ANF",
				OrganizationClaimNumber: "R2025S1234567",
				CustomerClaimDetail:     "La maleta llegó con una rueda rota y el cierre forzado.",
				Status:                  models.StatusEnGestion,
				Priority:                models.PriorityHigh,
				AssignedTo:              "Carlos Lopez",
				InitialDate:             now.AddDate(0, 0, -6),
			},
			update: &models.ClaimUpdate{
				ClaimantName: strPtr("Juan Pérez"),
				Email:        strPtr("juan.perez@email.com"),
				Phone:        strPtr("+56 9 1234 5678"),
				PNR:          strPtr("ABC12D"),
			},
		},
		{
			claim: models.Claim{
				Country:                 models.CountryAR,
				ClaimType:               models.ClaimTypeOfficial,
				Organization:            "ANAC",
				Reason:                  models.ReasonCambioItinerario,
				EmailSubject:            "Reprogramación sin aviso AEP-COR",
				OrganizationClaimNumber: "ANAC-2025-00871",
				CustomerClaimDetail:     "El pasajero denuncia un cambio de horario de 9 horas sin notificación.",
				Status:                  models.StatusNew,
				Priority:                models.PriorityCritical,
				InitialDate:             now.AddDate(0, 0, -2),
			},
		},
		{
			claim: models.Claim{
				Country:             models.CountryCO,
				ClaimType:           models.ClaimTypeEmpresa,
				Organization:        "DERECHO DE PETICIÓN",
				Reason:              models.ReasonDevoluciones,
				EmailSubject:        "Solicitud de reembolso por cancelación",
				CustomerClaimDetail: "Vuelo cancelado por la aerolínea, el cliente solicita devolución total.",
				Status:              models.StatusEscalado,
				Priority:            models.PriorityMedium,
				AssignedTo:          "Lina Serna",
				InitialDate:         now.AddDate(0, 0, -15),
			},
			update: &models.ClaimUpdate{
				ClaimantName:   strPtr("Ana Martínez"),
				Email:          strPtr("ana.martinez@email.com"),
				EscalatedAreas: &[]string{"Finanzas", "Tesorería"},
			},
		},
		{
			claim: models.Claim{
				Country:             models.CountryPE,
				ClaimType:           models.ClaimTypeLegal,
				Organization:        "JUICIO",
				Reason:              models.ReasonAeropuerto,
				EmailSubject:        "Demanda por denegación de embarque",
				CustomerClaimDetail: "Se deniega embarque por sobreventa; el pasajero inicia acción legal.",
				Status:              models.StatusParaCierre,
				Priority:            models.PriorityLow,
				InitialDate:         now.AddDate(0, -1, 0),
			},
		},
	}

	for _, s := range seeds {
		c := repo.AddClaim(s.claim)
		if s.update != nil {
			repo.UpdateClaim(c.ID, *s.update)
		}
	}
	log.Printf("[claims] Seeded %d mock claims", len(seeds))
	return len(seeds)
}

func strPtr(s string) *string {
	return &s
}
