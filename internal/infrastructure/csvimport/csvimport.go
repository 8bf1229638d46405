// Package csvimport convierte archivos CSV de carga masiva en filas de importación.
// Acepta UTF-8 (con o sin BOM) y EUC-KR/CP949, con cabeceras en coreano o en inglés.
package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
)

// ErrMissingColumn falta una columna obligatoria en la cabecera.
var ErrMissingColumn = errors.New("columna obligatoria ausente")

// Columnas canónicas y sus alias aceptados en la cabecera.
const (
	colName           = "name"
	colBusinessNumber = "business_number"
	colAddress        = "address"
	colPhone          = "phone"
	colEmail          = "email"
	colNote           = "note"
	colItemCode       = "item_code"
	colCategory       = "category"
	colSupplierName   = "supplier_name"
	colUnit           = "unit"
	colStock          = "stock"
	colUnitPrice      = "unit_price"
	colDescription    = "description"
	colType           = "transaction_type"
	colItemName       = "item_name"
	colQuantity       = "quantity"
	colDate           = "transaction_date"
)

var supplierAliases = map[string]string{
	"거래처명": colName, "name": colName, "supplier_name": colName,
	"사업자번호": colBusinessNumber, "business_number": colBusinessNumber,
	"주소": colAddress, "address": colAddress,
	"연락처": colPhone, "phone": colPhone,
	"이메일": colEmail, "email": colEmail,
	"비고": colNote, "note": colNote,
}

var itemAliases = map[string]string{
	"물품명": colName, "name": colName, "item_name": colName,
	"품번": colItemCode, "item_code": colItemCode,
	"카테고리": colCategory, "category": colCategory,
	"거래처명": colSupplierName, "supplier_name": colSupplierName,
	"단위": colUnit, "unit": colUnit,
	"초기재고": colStock, "stock": colStock, "initial_stock": colStock,
	"단가": colUnitPrice, "unit_price": colUnitPrice,
	"설명": colDescription, "description": colDescription,
}

var transactionAliases = map[string]string{
	"거래유형": colType, "transaction_type": colType, "type": colType,
	"물품명": colItemName, "item_name": colItemName,
	"수량": colQuantity, "quantity": colQuantity,
	"거래처명": colSupplierName, "supplier_name": colSupplierName,
	"거래일자": colDate, "transaction_date": colDate, "date": colDate,
	"참고사항": colNote, "note": colNote,
}

// record fila de datos con su número de línea (la cabecera es la línea 1).
type record struct {
	line   int
	fields map[string]string
}

func (r record) get(col string) string { return strings.TrimSpace(r.fields[col]) }

// decoder elige la codificación: UTF-8 válido (BOM opcional) o EUC-KR en otro caso.
func decoder(data []byte) io.Reader {
	if utf8.Valid(data) {
		return transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	}
	return transform.NewReader(bytes.NewReader(data), korean.EUCKR.NewDecoder())
}

func readRecords(data []byte, aliases map[string]string, required ...string) ([]record, error) {
	r := csv.NewReader(decoder(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: archivo vacío", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("csv: leer cabecera: %w", err)
	}
	columns := make([]string, len(header))
	present := make(map[string]bool, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if canon, ok := aliases[key]; ok {
			columns[i] = canon
			present[canon] = true
		}
	}
	for _, col := range required {
		if !present[col] {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var out []record
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: línea %d: %w", line, err)
		}
		rec := record{line: line, fields: make(map[string]string, len(columns))}
		blank := true
		for i, v := range row {
			if i < len(columns) && columns[i] != "" {
				rec.fields[columns[i]] = v
				if strings.TrimSpace(v) != "" {
					blank = false
				}
			}
		}
		if blank {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// SupplierRows parsea un CSV de proveedores. Columna obligatoria: nombre.
func SupplierRows(data []byte) ([]dto.SupplierImportRow, error) {
	records, err := readRecords(data, supplierAliases, colName)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.SupplierImportRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, dto.SupplierImportRow{
			Line:           r.line,
			Name:           r.get(colName),
			BusinessNumber: r.get(colBusinessNumber),
			Address:        r.get(colAddress),
			Phone:          r.get(colPhone),
			Email:          r.get(colEmail),
			Note:           r.get(colNote),
		})
	}
	return rows, nil
}

// ItemRows parsea un CSV de ítems. Columna obligatoria: nombre.
func ItemRows(data []byte) ([]dto.ItemImportRow, error) {
	records, err := readRecords(data, itemAliases, colName)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ItemImportRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, dto.ItemImportRow{
			Line:         r.line,
			Name:         r.get(colName),
			ItemCode:     r.get(colItemCode),
			Category:     r.get(colCategory),
			SupplierName: r.get(colSupplierName),
			Unit:         r.get(colUnit),
			Stock:        r.get(colStock),
			UnitPrice:    r.get(colUnitPrice),
			Description:  r.get(colDescription),
		})
	}
	return rows, nil
}

// TransactionRows parsea un CSV de movimientos. Obligatorias: tipo, ítem y cantidad.
func TransactionRows(data []byte) ([]dto.TransactionImportRow, error) {
	records, err := readRecords(data, transactionAliases, colType, colItemName, colQuantity)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.TransactionImportRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, dto.TransactionImportRow{
			Line:         r.line,
			Type:         r.get(colType),
			ItemName:     r.get(colItemName),
			Quantity:     r.get(colQuantity),
			SupplierName: r.get(colSupplierName),
			Date:         r.get(colDate),
			Note:         r.get(colNote),
		})
	}
	return rows, nil
}
