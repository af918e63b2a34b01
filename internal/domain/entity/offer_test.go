package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func TestSalary_AmbosExtremos(t *testing.T) {
	o := &Offer{SalaryFrom: dec(20000), SalaryTo: dec(25000)}
	assert.Equal(t, "20000 - 25000 PLN", o.Salary())
}

func TestSalary_SoloDesde(t *testing.T) {
	o := &Offer{SalaryFrom: dec(20000)}
	assert.Equal(t, "from 20000 PLN", o.Salary())
}

func TestSalary_SoloHasta(t *testing.T) {
	o := &Offer{SalaryTo: dec(25000)}
	assert.Equal(t, "up to 25000 PLN", o.Salary())
}

func TestSalary_SinRango(t *testing.T) {
	o := &Offer{}
	assert.Equal(t, SalaryUndefined, o.Salary())
}

func TestFullAddress(t *testing.T) {
	assert.Equal(t, "Warsaw, Zielona 4", FullAddress("Warsaw", "Zielona 4"))
	assert.Equal(t, "Warsaw", FullAddress("Warsaw", ""))
	assert.Equal(t, "Zielona 4", FullAddress("", "Zielona 4"))
}

func TestJoinContracts(t *testing.T) {
	assert.Equal(t, "B2B", JoinContracts([]string{"B2B"}))
	assert.Equal(t, "B2B, UoP", JoinContracts([]string{"B2B", "UoP"}))
	assert.Equal(t, "", JoinContracts(nil))
}

func TestSummarizeRequirements_UnRequisito(t *testing.T) {
	assert.Equal(t, "Git", SummarizeRequirements([]string{"Git"}))
}

func TestSummarizeRequirements_VariosRequisitos(t *testing.T) {
	// N es el total de requisitos, no el resto: con 3 elementos el resumen
	// dice "and 3 other requirement/s". Comportamiento histórico del listado.
	got := SummarizeRequirements([]string{"Git", "Docker", "Kubernetes"})
	assert.Equal(t, "Git and 3 other requirement/s", got)
}

func TestSummarizeRequirements_SinRequisitos(t *testing.T) {
	assert.Equal(t, "", SummarizeRequirements(nil))
}
