// Package validation contiene las reglas de alta/edición de proveedores e ítems.
// Se evalúan contra una instantánea recién cargada de la colección existente.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/inventario-bom/internal/domain"
	"github.com/jhoicas/inventario-bom/internal/domain/entity"
)

var validate = validator.New()

// businessNumberRule: exactamente 10 dígitos ASCII.
const businessNumberRule = "len=10,number"

// ValidateSupplier valida un proveedor candidato. ID == 0 indica alta (no edición).
func ValidateSupplier(candidate entity.Supplier, existing []entity.Supplier) error {
	if strings.TrimSpace(candidate.Name) == "" {
		return domain.ErrEmptyName
	}
	if candidate.ID == 0 {
		for _, s := range existing {
			if s.Name == candidate.Name {
				return domain.ErrDuplicateName
			}
		}
	}
	if candidate.BusinessNumber != nil {
		bn := *candidate.BusinessNumber
		if err := validate.Var(bn, businessNumberRule); err != nil {
			return domain.ErrBadFormat
		}
		for _, s := range existing {
			if candidate.ID != 0 && s.ID == candidate.ID {
				continue
			}
			if s.BusinessNumber != nil && *s.BusinessNumber == bn {
				return domain.ErrDuplicateBusinessNumber
			}
		}
	}
	return nil
}

// ValidateItem valida un ítem candidato. ID == 0 indica alta (no edición).
func ValidateItem(candidate entity.Item, existing []entity.Item) error {
	if strings.TrimSpace(candidate.Name) == "" {
		return domain.ErrEmptyName
	}
	if candidate.ID == 0 {
		for _, it := range existing {
			if it.Name == candidate.Name {
				return domain.ErrDuplicateName
			}
		}
	}
	if candidate.ItemCode != nil {
		code := *candidate.ItemCode
		for _, it := range existing {
			if candidate.ID != 0 && it.ID == candidate.ID {
				continue
			}
			if it.ItemCode != nil && *it.ItemCode == code {
				return domain.ErrDuplicateItemCode
			}
		}
	}
	return nil
}

// Struct valida las etiquetas `validate` de un DTO de entrada.
func Struct(s any) error {
	return validate.Struct(s)
}

// OptionalString convierte "" (o solo espacios) en nil; usado al normalizar campos opcionales.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
