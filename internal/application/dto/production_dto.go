package dto

// PlanRequest body para POST /api/production/plan y /plan.pdf.
type PlanRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

// ExecuteRequest body para POST /api/production/execute. El plan se recalcula al ejecutar.
type ExecuteRequest struct {
	ProductID      int    `json:"product_id" validate:"required,gt=0"`
	Quantity       int    `json:"quantity" validate:"required,gt=0"`
	ProductionDate string `json:"production_date"`
	Note           string `json:"note"`
}
