package service

import (
	"bufio"
	"bytes"
	"claimdesk/models"
	"fmt"
	"io"
	"strings"
	"time"
	_ "time/tzdata"
)

// ExportHeaders are the column titles of the claims CSV, in order
var ExportHeaders = []string{
	"N° Reclamo", "País", "Asunto", "N° Reclamo Organismo", "Tipo Claims", "Organismo",
	"Reclamante", "RUT/DNI", "Email", "Teléfono", "Motivo", "Sub Motivo", "PNR",
	"Estado", "Prioridad", "Asignado a", "Estado Final",
	"Fecha Inicial", "Fecha Creación", "Última Actualización",
}

const (
	exportDateLayout     = "2/1/2006"
	exportDateTimeLayout = "2/1/2006, 15:04:05"
)

// ExportService serializes claim views to CSV
type ExportService struct {
	loc *time.Location
}

// NewExportService creates an export service formatting dates in the named IANA zone
func NewExportService(timezone string) (*ExportService, error) {
	loc := time.UTC
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid export timezone %q: %w", timezone, err)
		}
		loc = l
	}
	return &ExportService{loc: loc}, nil
}

// ExportFileName returns the download name for an export taken at now
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("reclamos_%s.csv", now.UTC().Format("2006-01-02"))
}

// Render returns the CSV document for claims
func (s *ExportService) Render(claims []models.Claim) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.WriteCSV(&buf, claims); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV writes a bare header row and one row per claim. Every data cell is
// double-quoted with inner quotes doubled; rows are separated by "\n" with no
// trailing newline.
func (s *ExportService) WriteCSV(w io.Writer, claims []models.Claim) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(ExportHeaders, ","))
	for i := range claims {
		bw.WriteByte('\n')
		writeRow(bw, s.row(&claims[i]))
	}
	return bw.Flush()
}

func (s *ExportService) row(c *models.Claim) []string {
	return []string{
		c.ClaimNumber,
		string(c.Country),
		c.EmailSubject,
		c.OrganizationClaimNumber,
		string(c.ClaimType),
		c.Organization,
		c.ClaimantName,
		c.IdentityDocument,
		c.Email,
		c.Phone,
		string(c.Reason),
		c.SubReason,
		c.PNR,
		string(c.Status),
		string(c.Priority),
		c.AssignedTo,
		string(c.FinalStatus),
		c.InitialDate.In(s.loc).Format(exportDateLayout),
		c.CreatedAt.In(s.loc).Format(exportDateTimeLayout),
		c.UpdatedAt.In(s.loc).Format(exportDateTimeLayout),
	}
}

func writeRow(w *bufio.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		w.WriteByte('"')
	}
}
