package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-bom/internal/application/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain"
	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-bom/internal/domain/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

// ExecuteInput plan confirmado a ejecutar. ProductionDate cero = hoy.
type ExecuteInput struct {
	ProductID      int
	TargetQuantity int
	Materials      []domaininv.PlanLine
	ProductionDate entity.Date
	Note           string
}

// ConsumedMaterial material efectivamente descontado en la corrida.
type ConsumedMaterial struct {
	MaterialID int             `json:"material_id"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// FailureDetail detalle de una falla parcial.
type FailureDetail struct {
	Kind       string `json:"kind"`
	MaterialID int    `json:"material_id,omitempty"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

// ExecutionResult resultado de una corrida. Con falla parcial Completed es false y
// Consumed/TransactionIDs reflejan lo que sí se aplicó (no hay rollback).
type ExecutionResult struct {
	RunID          string             `json:"run_id"`
	ProductID      int                `json:"product_id"`
	ProductName    string             `json:"product_name"`
	Quantity       int                `json:"quantity"`
	Consumed       []ConsumedMaterial `json:"consumed"`
	TransactionIDs []int              `json:"transaction_ids"`
	Completed      bool               `json:"completed"`
	Failure        *FailureDetail     `json:"failure,omitempty"`
}

// Orchestrator ejecuta un plan: salida de cada material, entrada del producto y un único guardado del historial.
type Orchestrator struct {
	tx     inventory.TxRunner
	ledger *inventory.StockLedger
	log    *logger.Logger
	now    func() time.Time
	newID  func() string
}

// NewOrchestrator construye el orquestador.
func NewOrchestrator(tx inventory.TxRunner, ledger *inventory.StockLedger, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		tx:     tx,
		ledger: ledger,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.New().String() },
	}
}

// Execute aplica el plan. Rechaza sin modificar nada si alguna línea no es suficiente
// (ErrInsufficientMaterials). Si un movimiento falla a mitad de camino devuelve el
// resultado parcial junto con un *domain.ProductionError; lo ya aplicado no se revierte
// y el historial se guarda igualmente para que cada cambio de stock tenga su movimiento.
func (o *Orchestrator) Execute(ctx context.Context, in ExecuteInput) (*ExecutionResult, error) {
	if in.TargetQuantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if len(in.Materials) == 0 {
		return nil, fmt.Errorf("%w: el plan no tiene materiales", domain.ErrInvalidInput)
	}
	for _, line := range in.Materials {
		if !line.Sufficient {
			return nil, fmt.Errorf("%w: %s (faltan %s)", domain.ErrInsufficientMaterials, line.Name, line.Shortage)
		}
	}

	date := in.ProductionDate
	if date.IsZero() {
		date = entity.NewDate(o.now())
	}
	result := &ExecutionResult{
		RunID:          o.newID(),
		ProductID:      in.ProductID,
		Quantity:       in.TargetQuantity,
		Consumed:       []ConsumedMaterial{},
		TransactionIDs: []int{},
	}
	log := o.log.With().Str("run_id", result.RunID).Int("product_id", in.ProductID).Int("quantity", in.TargetQuantity).Logger()

	var partial *domain.ProductionError
	err := o.tx.Run(ctx, func(repos repository.Repositories) error {
		items, err := repos.Items.Load(ctx)
		if err != nil {
			return err
		}
		product, ok := domaininv.FindItem(items, in.ProductID)
		if !ok {
			return fmt.Errorf("producto %d: %w", in.ProductID, domain.ErrNotFound)
		}
		result.ProductName = product.Name
		log.Info().Str("product", product.Name).Int("materials", len(in.Materials)).Msg("inicio de producción")

		txs, err := repos.Transactions.Load(ctx)
		if err != nil {
			return err
		}
		appendTx := func(txType string, itemID int, qty decimal.Decimal, note string) {
			t := entity.Transaction{
				ID:              domaininv.NextID(txs),
				TransactionType: txType,
				ItemID:          itemID,
				Quantity:        qty,
				TransactionDate: date,
				Note:            note,
				CreatedAt:       o.now(),
			}
			txs = append(txs, t)
			result.TransactionIDs = append(result.TransactionIDs, t.ID)
		}

		for _, line := range in.Materials {
			if err := o.ledger.Apply(ctx, repos.Items, line.MaterialID, line.RequiredQuantity, entity.TransactionOutbound); err != nil {
				partial = &domain.ProductionError{
					Kind:       domain.ProductionMaterialConsumptionFailed,
					MaterialID: line.MaterialID,
					Name:       line.Name,
					Err:        err,
				}
				log.Error().Err(err).Int("material_id", line.MaterialID).Str("material", line.Name).
					Int("consumed", len(result.Consumed)).Msg("falló la salida de material; lo consumido no se revierte")
				break
			}
			appendTx(entity.TransactionOutbound, line.MaterialID, line.RequiredQuantity,
				fmt.Sprintf("Salida de material para producción de %s [%s]", product.Name, result.RunID))
			result.Consumed = append(result.Consumed, ConsumedMaterial{MaterialID: line.MaterialID, Name: line.Name, Quantity: line.RequiredQuantity})
		}

		if partial == nil {
			qty := decimal.NewFromInt(int64(in.TargetQuantity))
			if err := o.ledger.Apply(ctx, repos.Items, in.ProductID, qty, entity.TransactionInbound); err != nil {
				partial = &domain.ProductionError{
					Kind: domain.ProductionProductCreditFailed,
					Name: product.Name,
					Err:  err,
				}
				log.Error().Err(err).Msg("falló la entrada del producto terminado")
			} else {
				appendTx(entity.TransactionInbound, in.ProductID, qty, "Producción completada: "+in.Note)
			}
		}

		if len(result.TransactionIDs) == 0 {
			return nil
		}
		return repos.Transactions.Save(ctx, txs)
	})
	if err != nil {
		return nil, err
	}

	if partial != nil {
		result.Failure = &FailureDetail{
			Kind:       partial.Kind,
			MaterialID: partial.MaterialID,
			Name:       partial.Name,
			Message:    partial.Error(),
		}
		return result, partial
	}
	result.Completed = true
	log.Info().Ints("transaction_ids", result.TransactionIDs).Msg("producción completada")
	return result, nil
}
