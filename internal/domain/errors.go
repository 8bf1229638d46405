package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrInsufficientStock      = errors.New("stock insuficiente")
	ErrInvalidQuantity        = errors.New("la cantidad debe ser mayor que cero")
	ErrInvalidTransactionType = errors.New("tipo de movimiento inválido")
	ErrNoBOMDefined           = errors.New("el producto no tiene BOM definido")
	ErrInsufficientMaterials  = errors.New("materiales insuficientes para la producción")
	ErrSelfReference          = errors.New("un producto no puede ser material de sí mismo")
	ErrDuplicateMaterial      = errors.New("el material ya está en el BOM")
)

// Códigos de validación de proveedores e ítems.
const (
	CodeEmptyName               = "EMPTY_NAME"
	CodeDuplicateName           = "DUPLICATE_NAME"
	CodeDuplicateBusinessNumber = "DUPLICATE_BUSINESS_NUMBER"
	CodeBadFormat               = "BAD_FORMAT"
	CodeDuplicateItemCode       = "DUPLICATE_ITEM_CODE"
)

// ValidationError error de validación con código estable para la capa HTTP.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Errores de validación. Se comparan por identidad con errors.Is.
var (
	ErrEmptyName               = &ValidationError{Code: CodeEmptyName, Message: "el nombre es obligatorio"}
	ErrDuplicateName           = &ValidationError{Code: CodeDuplicateName, Message: "ya existe un registro con ese nombre"}
	ErrDuplicateBusinessNumber = &ValidationError{Code: CodeDuplicateBusinessNumber, Message: "el número de registro comercial ya está registrado"}
	ErrBadFormat               = &ValidationError{Code: CodeBadFormat, Message: "el número de registro comercial debe tener 10 dígitos"}
	ErrDuplicateItemCode       = &ValidationError{Code: CodeDuplicateItemCode, Message: "el código de ítem ya está registrado"}
)

// IsValidation indica si err (o algún error envuelto) es un ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Tipos de falla parcial durante la ejecución de una producción.
const (
	ProductionMaterialConsumptionFailed = "MATERIAL_CONSUMPTION_FAILED"
	ProductionProductCreditFailed       = "PRODUCT_CREDIT_FAILED"
)

// ProductionError falla parcial: los consumos ya aplicados en la corrida NO se revierten.
type ProductionError struct {
	Kind       string
	MaterialID int // 0 cuando Kind es ProductionProductCreditFailed
	Name       string
	Err        error
}

func (e *ProductionError) Error() string {
	if e.Kind == ProductionMaterialConsumptionFailed {
		return fmt.Sprintf("consumo del material '%s' (id %d) falló: %v", e.Name, e.MaterialID, e.Err)
	}
	return fmt.Sprintf("ingreso del producto '%s' falló: %v", e.Name, e.Err)
}

func (e *ProductionError) Unwrap() error { return e.Err }
