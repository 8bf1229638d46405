package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-bom/internal/domain"
	"github.com/jhoicas/inventario-bom/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestValidateSupplier(t *testing.T) {
	existing := []entity.Supplier{
		{ID: 1, Name: "Maderas del Sur", BusinessNumber: strPtr("1234567890")},
		{ID: 2, Name: "Ferretería Norte"},
	}

	tests := []struct {
		name      string
		candidate entity.Supplier
		want      error
	}{
		{"nombre vacío", entity.Supplier{Name: "  "}, domain.ErrEmptyName},
		{"nombre duplicado en alta", entity.Supplier{Name: "Ferretería Norte"}, domain.ErrDuplicateName},
		{"nombre repetido en edición es válido", entity.Supplier{ID: 2, Name: "Ferretería Norte"}, nil},
		{"número corto", entity.Supplier{Name: "Nuevo", BusinessNumber: strPtr("12345")}, domain.ErrBadFormat},
		{"número con letras", entity.Supplier{Name: "Nuevo", BusinessNumber: strPtr("12345abcde")}, domain.ErrBadFormat},
		{"número con signo", entity.Supplier{Name: "Nuevo", BusinessNumber: strPtr("+123456789")}, domain.ErrBadFormat},
		{"número válido", entity.Supplier{Name: "Nuevo", BusinessNumber: strPtr("0987654321")}, nil},
		{"número duplicado en alta", entity.Supplier{Name: "Nuevo", BusinessNumber: strPtr("1234567890")}, domain.ErrDuplicateBusinessNumber},
		{"número propio en edición", entity.Supplier{ID: 1, Name: "Maderas del Sur", BusinessNumber: strPtr("1234567890")}, nil},
		{"número de otro en edición", entity.Supplier{ID: 2, Name: "Ferretería Norte", BusinessNumber: strPtr("1234567890")}, domain.ErrDuplicateBusinessNumber},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSupplier(tc.candidate, existing)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestValidateSupplier_DosAltasMismoNombre(t *testing.T) {
	var existing []entity.Supplier
	first := entity.Supplier{Name: "Proveedor A"}
	assert.NoError(t, ValidateSupplier(first, existing))
	first.ID = 1
	existing = append(existing, first)

	assert.ErrorIs(t, ValidateSupplier(entity.Supplier{Name: "Proveedor A"}, existing), domain.ErrDuplicateName)
}

func TestValidateItem(t *testing.T) {
	existing := []entity.Item{
		{ID: 1, Name: "Tabla", ItemCode: strPtr("MAT-001")},
		{ID: 2, Name: "Tornillo"},
	}

	tests := []struct {
		name      string
		candidate entity.Item
		want      error
	}{
		{"nombre vacío", entity.Item{}, domain.ErrEmptyName},
		{"nombre duplicado", entity.Item{Name: "Tabla"}, domain.ErrDuplicateName},
		{"código duplicado", entity.Item{Name: "Nueva", ItemCode: strPtr("MAT-001")}, domain.ErrDuplicateItemCode},
		{"código propio en edición", entity.Item{ID: 1, Name: "Tabla", ItemCode: strPtr("MAT-001")}, nil},
		{"código de otro en edición", entity.Item{ID: 2, Name: "Tornillo", ItemCode: strPtr("MAT-001")}, domain.ErrDuplicateItemCode},
		{"sin código", entity.Item{Name: "Cola"}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateItem(tc.candidate, existing)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(""))
	assert.Nil(t, OptionalString("   "))
	assert.Equal(t, "abc", *OptionalString(" abc "))
}
