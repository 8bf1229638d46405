// import carga un CSV de proveedores, ítems o movimientos en el almacenamiento configurado.
//
// Uso: go run ./cmd/import <suppliers|items|transactions> <archivo.csv>
// El CSV puede estar en UTF-8 (con o sin BOM) o EUC-KR, con cabeceras en coreano o inglés.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/application/inventory"
	"github.com/jhoicas/inventario-bom/internal/application/usecase"
	"github.com/jhoicas/inventario-bom/internal/infrastructure/csvimport"
	"github.com/jhoicas/inventario-bom/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-bom/pkg/config"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "uso: import <suppliers|items|transactions> <archivo.csv>")
		os.Exit(2)
	}
	kind, path := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr}).Component("import")

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	tx, closeStorage, err := storage.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacenamiento: %v\n", err)
		os.Exit(1)
	}
	defer closeStorage()

	report, err := run(ctx, kind, data, tx, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar %s: %v\n", kind, err)
		closeStorage()
		os.Exit(1)
	}

	fmt.Printf("Importados: %d\n", report.Imported)
	for _, e := range report.Errors {
		fmt.Printf("  línea %d: %s\n", e.Line, e.Message)
	}
	if len(report.Errors) > 0 {
		fmt.Printf("Rechazados: %d\n", len(report.Errors))
	}
}

func run(ctx context.Context, kind string, data []byte, tx inventory.TxRunner, log *logger.Logger) (*dto.ImportReport, error) {
	switch kind {
	case "suppliers":
		rows, err := csvimport.SupplierRows(data)
		if err != nil {
			return nil, err
		}
		return usecase.NewSupplierUseCase(tx, log).Import(ctx, rows)
	case "items":
		rows, err := csvimport.ItemRows(data)
		if err != nil {
			return nil, err
		}
		return usecase.NewItemUseCase(tx, log).Import(ctx, rows)
	case "transactions":
		rows, err := csvimport.TransactionRows(data)
		if err != nil {
			return nil, err
		}
		uc := inventory.NewTransactionUseCase(tx, inventory.NewStockLedger(log), log)
		return uc.Import(ctx, rows)
	}
	return nil, fmt.Errorf("tipo desconocido %q", kind)
}
