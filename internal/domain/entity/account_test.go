package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CompanySinNombres(t *testing.T) {
	a := &Account{
		Role:      RoleCompany,
		Username:  "Nokia",
		FirstName: "Jan",
		LastName:  "Kowalski",
	}
	a.Normalize()

	assert.Empty(t, a.FirstName, "una company no debe tener first_name")
	assert.Empty(t, a.LastName, "una company no debe tener last_name")
}

func TestNormalize_UserConservaNombres(t *testing.T) {
	a := &Account{
		Role:      RoleUser,
		FirstName: "Jan",
		LastName:  "Kowalski",
	}
	a.Normalize()

	assert.Equal(t, "Jan", a.FirstName)
	assert.Equal(t, "Kowalski", a.LastName)
}
