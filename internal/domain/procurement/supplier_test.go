package procurement

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	supplier, err := NewSupplier("Andes Beverages SA", "M. Quispe", "ventas@andesbev.pe", "+51 1 555 0199", "Av. Industrial 123, Lima")
	require.NoError(t, err)
	assert.Equal(t, "Andes Beverages SA", supplier.Name)
	assert.Equal(t, "M. Quispe", supplier.ContactPerson)

	_, err = NewSupplier("", "", "", "", "")
	assert.Error(t, err)

	_, err = NewSupplier(strings.Repeat("x", 201), "", "", "", "")
	assert.Error(t, err)
}

func TestSupplierUpdate(t *testing.T) {
	supplier, err := NewSupplier("Andes Beverages SA", "", "", "", "")
	require.NoError(t, err)

	require.NoError(t, supplier.Update("Andes Beverages SAC", "J. Flores", "compras@andesbev.pe", "", ""))
	assert.Equal(t, "Andes Beverages SAC", supplier.Name)
	assert.Equal(t, "J. Flores", supplier.ContactPerson)

	assert.Error(t, supplier.Update("  ", "", "", "", ""))
}
