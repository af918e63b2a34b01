package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
)

// Cabecera del CSV de postulaciones. El orden es parte del contrato de exportación.
var csvHeader = []string{"Full name", "Email", "Expected pay", "Linkedin", "Portfolio"}

// BuildApplicationsCSV serializa las postulaciones de una oferta como CSV.
// Sin postulaciones se devuelve solo la cabecera.
func BuildApplicationsCSV(applications []*entity.Application) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, a := range applications {
		row := []string{a.FullName(), a.Email, a.ExpectedPay.String(), a.Linkedin, a.Portfolio}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
