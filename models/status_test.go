package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransactionStatusLabel(t *testing.T) {
	var tests = []struct {
		name     string
		status   TransactionStatus
		expected string
	}{
		{"unknown", StatusUnknown, "desconhecido"},
		{"awaiting payment", StatusAwaitingPayment, "Aguardando pagamento"},
		{"in analysis", StatusInAnalysis, "Em análise"},
		{"paid", StatusPaid, "Paga"},
		{"available", StatusAvailable, "Disponível"},
		{"in dispute", StatusInDispute, "Em disputa"},
		{"refunded", StatusRefunded, "Devolvida"},
		{"cancelled", StatusCancelled, "Cancelada"},
		{"out of range falls back", TransactionStatus(42), "desconhecido"},
		{"negative falls back", TransactionStatus(-1), "desconhecido"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, tt.status.Label())
		})
	}
}

func TestTransactionStatusIsValid(t *testing.T) {
	require.True(t, StatusPaid.IsValid())
	require.True(t, StatusUnknown.IsValid())
	require.False(t, TransactionStatus(8).IsValid())
	require.False(t, TransactionStatus(-1).IsValid())
}
