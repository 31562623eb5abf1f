package models

// FlightOperatorInfo pairs an operator code with its legal name
type FlightOperatorInfo struct {
	Code FlightOperator `yaml:"code" json:"code"`
	Name string         `yaml:"name" json:"name"`
}

// Catalog holds the lookup tables that constrain claim fields.
// Organizations are keyed by (country, claim type); sub-reasons by reason.
type Catalog struct {
	Organizations   map[Country]map[ClaimType][]string `yaml:"organizations" json:"organizations"`
	SubReasons      map[ClaimReason][]string           `yaml:"subReasons" json:"subReasons"`
	Agents          []string                           `yaml:"agents" json:"agents"`
	EscalationAreas []string                           `yaml:"escalationAreas" json:"escalationAreas"`
	Currencies      []Currency                         `yaml:"currencies" json:"currencies"`
	FlightOperators []FlightOperatorInfo               `yaml:"flightOperators" json:"flightOperators"`
}

// OrganizationsFor returns the organisms allowed for a country and claim type
func (c *Catalog) OrganizationsFor(country Country, claimType ClaimType) []string {
	byType, ok := c.Organizations[country]
	if !ok {
		return nil
	}
	return byType[claimType]
}

// HasOrganization reports whether org is valid for the (country, claimType) pair
func (c *Catalog) HasOrganization(country Country, claimType ClaimType, org string) bool {
	return contains(c.OrganizationsFor(country, claimType), org)
}

// SubReasonsFor returns the sub-reasons allowed under a reason
func (c *Catalog) SubReasonsFor(reason ClaimReason) []string {
	return c.SubReasons[reason]
}

// HasSubReason reports whether sub belongs to reason
func (c *Catalog) HasSubReason(reason ClaimReason, sub string) bool {
	return contains(c.SubReasonsFor(reason), sub)
}

// IsAgent reports whether name is a known agent
func (c *Catalog) IsAgent(name string) bool {
	return contains(c.Agents, name)
}

// IsEscalationArea reports whether area is one of the fixed escalation areas
func (c *Catalog) IsEscalationArea(area string) bool {
	return contains(c.EscalationAreas, area)
}

// IsCurrency reports whether cur is a selectable currency
func (c *Catalog) IsCurrency(cur Currency) bool {
	for _, known := range c.Currencies {
		if known == cur {
			return true
		}
	}
	return false
}

// IsFlightOperator reports whether op is a known operating carrier
func (c *Catalog) IsFlightOperator(op FlightOperator) bool {
	for _, known := range c.FlightOperators {
		if known.Code == op {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// DefaultCatalog returns the built-in lookup tables
func DefaultCatalog() *Catalog {
	standardEmpresa := []string{"ESCALAMIENTOS", "LINKEDIN", "OFICIOS"}
	legal := []string{"JUICIO"}

	return &Catalog{
		Organizations: map[Country]map[ClaimType][]string{
			CountryAR: {
				ClaimTypeEmpresa:  standardEmpresa,
				ClaimTypeLegal:    legal,
				ClaimTypeOfficial: {"ANAC", "COPREC", "DFCO", "MEDIACIONES"},
			},
			CountryBR: {
				ClaimTypeEmpresa:  {"ESCALAMIENTOS", "LINKEDIN", "OFICIOS", "RECLAME AQUI"},
				ClaimTypeLegal:    legal,
				ClaimTypeOfficial: {"PROCON"},
			},
			CountryCL: {
				ClaimTypeEmpresa:  standardEmpresa,
				ClaimTypeLegal:    legal,
				ClaimTypeOfficial: {"LINEA DIRECTA", "SERNAC"},
			},
			CountryCO: {
				ClaimTypeEmpresa:  {"DERECHO DE PETICIÓN", "ESCALAMIENTOS", "LINKEDIN", "OFICIOS"},
				ClaimTypeLegal:    legal,
				ClaimTypeOfficial: {"SIC", "SUPERTRANSPORTE"},
			},
			CountryEC: {
				ClaimTypeEmpresa:  standardEmpresa,
				ClaimTypeLegal:    legal,
				ClaimTypeOfficial: {"DFCO"},
			},
			CountryPE: {
				ClaimTypeEmpresa:  standardEmpresa,
				ClaimTypeLegal:    legal,
				ClaimTypeOfficial: {"INDECOPI", "INDECOPI ABG", "INDECOPI LR"},
			},
			CountryPY: {
				ClaimTypeEmpresa:  standardEmpresa,
				ClaimTypeLegal:    legal,
				ClaimTypeOfficial: {"SEDECO"},
			},
			CountryRD: {
				ClaimTypeEmpresa:  standardEmpresa,
				ClaimTypeLegal:    legal,
				ClaimTypeOfficial: {"PROCON"},
			},
			CountryUY: {
				ClaimTypeEmpresa:  standardEmpresa,
				ClaimTypeLegal:    legal,
				ClaimTypeOfficial: {"DFCO"},
			},
		},
		SubReasons: map[ClaimReason][]string{
			ReasonAeropuerto: {
				"Cobro de Equipaje (Error en Proceso)", "Hora de Cierre Counter", "Información de Aeropuerto",
				"Inspección SERNAC", "Leyes Migratorias", "Menor a Bordo", "Pasajero Disruptivo",
				"Problemas Check In ATO", "Problemas de Aeronave", "Problemas en Counter",
				"Puerta de Embarque", "Servicio Personal JetSMART", "Tiempo Cierre Puerta Embarque",
			},
			ReasonCambioItinerario: {
				"Cancelación Comercial", "Cancelación Operacional", "COVID19",
				"Reprogramación Comercial", "Reprogramación Operacional", "Vuelo Sobreventa",
			},
			ReasonCesionRetracto: {
				"Retracto demorado", "Solicitud de Cesión con Costo", "Solicitud de Cesión sin Costo", "Solicitud de Retracto",
			},
			ReasonClubDescuento: {"Club No Activado", "Condiciones Generales"},
			ReasonCrisisSocial:  {"COVID19", "Disturbios País", "Toque de Queda"},
			ReasonDevoluciones: {
				"Compensación Equipaje", "Devolucion Agencia", "Devolucion con Demora", "Solicitud Devolución",
			},
			ReasonEquipaje: {
				"Equipaje con Merma", "Equipaje Dañado", "Equipaje Demorado", "Equipaje Extraviado",
			},
			ReasonErrorCompra:       {"Doble Cobro", "Factura No Emitida", "Hold Canceled"},
			ReasonGiftCard:          {"Demora de Gift Card", "Problemas con Gift Card"},
			ReasonNorwegian:         {"Cambio de Fecha", "Devolución Dinero", "Devolución Gift Card"},
			ReasonImpedimentoMedico: {"Cambio x Impedimento Médico", "Devolución x Impedimento Médico"},
			ReasonPVCSernac: {
				"Cambio Fecha", "Devolución Dinero", "Devolución GC+10%", "Plazo de Implementación", "Redimir GC en Dinero",
			},
			ReasonServiciosOpcionales: {
				"Asientos para Menores", "Cambio de Fecha", "Cambio de Hora", "Cambio de Nombre",
				"Cambio de Tramo", "Cobro por Servicio", "Comida a Bordo", "Costo Cambio de Fecha",
				"Costo Cambio de Hora", "Costo Cambio de Nombre", "Costo Cambio de Tramo", "Costo Infante",
				"Costo Mascota a Bordo", "JetSMART GO", "Precio Equipaje", "Rango Cambio de Fecha",
				"Seguro Chubb", "Seguro de Viaje", "Selección de Asientos",
			},
			ReasonSitioWeb: {
				"FAQ", "Funcion Sitio Web", "Oferta Engañosa", "Precio de Pasajes", "Problemas Check In Web",
			},
			ReasonValidacionCompra: {"ADCK", "Contracargos", "Posible Fraude"},
			ReasonAmericanAirlines: {"Canjes de Millas", "Consultas sobre Millas", "Modificaciones N° AA"},
		},
		Agents: []string{
			"Carlos Lopez", "Diana Portilla", "Esteban Hernández", "Estefani Cossio", "Juan Bermudez",
			"Juan Melchor", "Lina Serna", "Lina Uchima", "Manuela Rodríguez", "Natalia Osorio",
			"Oscar Melo", "Rosa Rengifo", "Tatiana Atehortua",
		},
		EscalationAreas: []string{
			"Aeropuerto", "CC", "CC-Comprobantes", "CC-Equipajes", "Crew", "E-Commerce-Pagos",
			"E-Commerce-Web", "Finanzas", "Itinerarios", "Legal-JS", "Marketing", "SOC",
			"Soporte IT", "Supervisor-Backoffice", "Tesorería", OtherEscalationArea,
		},
		Currencies: append([]Currency(nil), Currencies...),
		FlightOperators: []FlightOperatorInfo{
			{Code: OperatorJ6, Name: "JETSMART AIRLINES S.A.S"},
			{Code: OperatorJA, Name: "JETSMART AIRLINES S.P.A."},
			{Code: OperatorJZ, Name: "JETSMART AIRLINES PERU S.A.C."},
			{Code: OperatorWJ, Name: "JETSMART AIRLINES S.A."},
		},
	}
}
