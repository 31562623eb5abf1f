package service

import (
	"claimdesk/models"
	"testing"
)

func TestValidPNR(t *testing.T) {
	tests := []struct {
		pnr  string
		want bool
	}{
		{"ABC12D", true},
		{"abcdef", true},
		{"A1234Z", true},
		{"1BCDEF", false},
		{"ABCDE1", false},
		{"ABC1D", false},
		{"ABC12DE", false},
		{"AB-12D", false},
		{"ÁBC12D", false},
	}
	for _, tt := range tests {
		if got := ValidPNR(tt.pnr); got != tt.want {
			t.Errorf("ValidPNR(%q) = %v, want %v", tt.pnr, got, tt.want)
		}
	}
}

func TestValidateManagement(t *testing.T) {
	base := func() models.ManagementForm {
		return models.ManagementForm{
			ClaimantName: "Ana",
			Email:        "ana@example.com",
			Status:       models.StatusEnGestion,
			Priority:     models.PriorityMedium,
			FinalStatus:  models.FinalStatusPendiente,
		}
	}

	tests := []struct {
		name   string
		modify func(f *models.ManagementForm)
		field  string
	}{
		{"valid", func(f *models.ManagementForm) {}, ""},
		{"missing claimant", func(f *models.ManagementForm) { f.ClaimantName = "" }, "claimantName"},
		{"missing email", func(f *models.ManagementForm) { f.Email = " " }, "email"},
		{"bad pnr", func(f *models.ManagementForm) { f.PNR = "12345A" }, "pnr"},
		{"good pnr", func(f *models.ManagementForm) { f.PNR = "XYZ99Q" }, ""},
		{"escalado without areas", func(f *models.ManagementForm) { f.Status = models.StatusEscalado }, "escalatedAreas"},
		{"escalado with Otra and no text", func(f *models.ManagementForm) {
			f.Status = models.StatusEscalado
			f.EscalatedAreas = []string{"CC", models.OtherEscalationArea}
		}, "otherEscalationArea"},
		{"escalado with Otra and text", func(f *models.ManagementForm) {
			f.Status = models.StatusEscalado
			f.EscalatedAreas = []string{models.OtherEscalationArea}
			f.OtherEscalationArea = "Comercial"
		}, ""},
		{"areas ignored when not escalado", func(f *models.ManagementForm) {
			f.EscalatedAreas = []string{models.OtherEscalationArea}
		}, ""},
		{"cerrado without reason", func(f *models.ManagementForm) { f.FinalStatus = models.FinalStatusCerrado }, "closureReason"},
		{"compensated without type", func(f *models.ManagementForm) { f.WasCompensated = true }, "paymentType"},
		{"transfer without amount", func(f *models.ManagementForm) {
			f.WasCompensated = true
			f.PaymentType = models.PaymentTransferencia
			f.TransferCurrency = models.CurrencyCLP
		}, "transferAmount"},
		{"transfer OTRA without text", func(f *models.ManagementForm) {
			f.WasCompensated = true
			f.PaymentType = models.PaymentTransferencia
			f.TransferAmount = "100"
			f.TransferCurrency = models.CurrencyOther
		}, "transferCustomCurrency"},
		{"ambas without gc amount", func(f *models.ManagementForm) {
			f.WasCompensated = true
			f.PaymentType = models.PaymentAmbas
			f.TransferAmount = "100"
			f.TransferCurrency = models.CurrencyUSD
			f.GCCurrency = models.CurrencyUSD
		}, "gcAmount"},
		{"gc OTRA without text", func(f *models.ManagementForm) {
			f.WasCompensated = true
			f.PaymentType = models.PaymentGiftCard
			f.GCAmount = "50"
			f.GCCurrency = models.CurrencyOther
		}, "gcCustomCurrency"},
		{"ambas complete", func(f *models.ManagementForm) {
			f.WasCompensated = true
			f.PaymentType = models.PaymentAmbas
			f.TransferAmount = "100"
			f.TransferCurrency = models.CurrencyUSD
			f.GCAmount = "50"
			f.GCCurrency = models.CurrencyOther
			f.GCCustomCurrency = "EUR"
		}, ""},
		{"channel fields ignored when not compensated", func(f *models.ManagementForm) {
			f.PaymentType = models.PaymentAmbas
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := base()
			tt.modify(&f)
			err := ValidateManagement(&f)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error on %s", tt.field)
			}
			if err.Field != tt.field {
				t.Errorf("Field = %q, want %q (%s)", err.Field, tt.field, err.Message)
			}
			if err.Message == "" {
				t.Error("empty message")
			}
		})
	}
}

func TestValidateIntake(t *testing.T) {
	catalog := models.DefaultCatalog()
	tests := []struct {
		name   string
		modify func(r *models.CreateClaimRequest)
		field  string
	}{
		{"valid", func(r *models.CreateClaimRequest) {}, ""},
		{"missing subject", func(r *models.CreateClaimRequest) { r.EmailSubject = "" }, "organization"},
		{"organization from another country", func(r *models.CreateClaimRequest) { r.Organization = "SERNAC" }, "organization"},
		{"bad country", func(r *models.CreateClaimRequest) { r.Country = "XX" }, "country"},
		{"sub reason without matching reason", func(r *models.CreateClaimRequest) {
			r.Reason = models.ReasonGiftCard
			r.SubReason = "Equipaje Dañado"
		}, "subReason"},
		{"unknown agent", func(r *models.CreateClaimRequest) { r.AssignedTo = "Nadie" }, "assignedTo"},
		{"known agent", func(r *models.CreateClaimRequest) { r.AssignedTo = "Carlos Lopez" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := anacRequest()
			tt.modify(req)
			err := validateIntake(req, catalog)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Field != tt.field {
				t.Errorf("err = %v, want field %s", err, tt.field)
			}
		})
	}
}
