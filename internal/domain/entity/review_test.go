package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormattedRate(t *testing.T) {
	r := &CompanyReview{Rate: 5}
	assert.Equal(t, "5/5", r.FormattedRate())

	r.Rate = 1
	assert.Equal(t, "1/5", r.FormattedRate())
}

func TestFullName(t *testing.T) {
	a := &Application{FirstName: "Kacper", LastName: "Kowalski"}
	assert.Equal(t, "Kacper Kowalski", a.FullName())

	a = &Application{FirstName: "Kacper"}
	assert.Equal(t, "Kacper", a.FullName())
}
