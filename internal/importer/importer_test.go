package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardomaia/credo/internal/client"
)

func TestService_Import(t *testing.T) {
	statement := strings.Join([]string{
		"Account statement",
		"Generated;2024-06-15",
		"",
		"Date;Description;Amount",
		"2024-05-01;SALARY MAY;1.000,00",
		"2024-05-10;SUPERMARKET;-200,50",
		"2024-06-01;TRANSFER IN;150",
		";;",
	}, "\n")

	txs, err := NewService().Import(strings.NewReader(statement))
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, client.KindCredit, txs[0].Kind)
	assert.Equal(t, 1000.0, txs[0].Amount)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), txs[0].Date)

	assert.Equal(t, client.KindDebit, txs[1].Kind)
	assert.Equal(t, 200.5, txs[1].Amount)

	assert.Equal(t, client.KindCredit, txs[2].Kind)
	assert.Equal(t, 150.0, txs[2].Amount)
}

func TestService_Import_AlternateFormats(t *testing.T) {
	statement := strings.Join([]string{
		"Date;Description;Amount",
		"15/05/2024;COFFEE;-3.20",
		"16-05-2024;BOOKS;-1,234.56",
	}, "\n")

	txs, err := NewService().Import(strings.NewReader(statement))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, 3.2, txs[0].Amount)
	assert.Equal(t, client.KindDebit, txs[0].Kind)
	assert.Equal(t, 1234.56, txs[1].Amount)
}

func TestService_Import_NoHeader(t *testing.T) {
	_, err := NewService().Import(strings.NewReader("just;some;noise\n1;2;3"))
	assert.Error(t, err)
}

func TestService_Import_BadRowAborts(t *testing.T) {
	statement := strings.Join([]string{
		"Date;Description;Amount",
		"2024-05-01;OK;10",
		"2024-05-02;BROKEN;ten",
	}, "\n")

	_, err := NewService().Import(strings.NewReader(statement))
	assert.Error(t, err)
}
