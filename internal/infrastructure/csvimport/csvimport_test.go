package csvimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
)

func TestSupplierRows_CabeceraCoreanaConBOM(t *testing.T) {
	data := []byte("\ufeff거래처명,주소,연락처,이메일,비고\n대한목재,서울,02-123,a@b.kr,\n,,,,\n한성철물,,,,야간\n")

	rows, err := SupplierRows(data)
	require.NoError(t, err)
	require.Len(t, rows, 2, "las filas en blanco se ignoran")
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "대한목재", rows[0].Name)
	assert.Equal(t, "02-123", rows[0].Phone)
	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "야간", rows[1].Note)
}

func TestItemRows_CabeceraInglesa(t *testing.T) {
	data := []byte("name,item_code,supplier_name,stock,unit_price,extra\nTabla,MAT-1,Maderas,10,2.5,x\n")

	rows, err := ItemRows(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "MAT-1", rows[0].ItemCode)
	assert.Equal(t, "Maderas", rows[0].SupplierName)
	assert.Equal(t, "10", rows[0].Stock)
	assert.Equal(t, "2.5", rows[0].UnitPrice)
}

func TestTransactionRows_EUCKR(t *testing.T) {
	utf := "거래유형,물품명,수량,거래처명,거래일자,참고사항\n입고,볼트,5,,2024-05-01,\n"
	encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte(utf))
	require.NoError(t, err)

	rows, err := TransactionRows(encoded)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "입고", rows[0].Type)
	assert.Equal(t, "볼트", rows[0].ItemName)
	assert.Equal(t, "5", rows[0].Quantity)
	assert.Equal(t, "2024-05-01", rows[0].Date)
}

func TestTransactionRows_FaltaColumna(t *testing.T) {
	_, err := TransactionRows([]byte("transaction_type,item_name\nin,Tabla\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = SupplierRows(nil)
	assert.ErrorIs(t, err, ErrMissingColumn)
}
