// models/status.go
package models

// TransactionStatus is the gateway's numeric transaction status.
type TransactionStatus int

const (
	StatusUnknown TransactionStatus = 0

	StatusAwaitingPayment TransactionStatus = 1

	StatusInAnalysis TransactionStatus = 2

	StatusPaid TransactionStatus = 3

	StatusAvailable TransactionStatus = 4

	StatusInDispute TransactionStatus = 5

	StatusRefunded TransactionStatus = 6

	StatusCancelled TransactionStatus = 7
)

// Label returns the fixed merchant-facing label for the status code.
// Codes outside the documented 0-7 range fall back to the unknown label,
// so the lookup is total and never fails a transaction read.
func (ts TransactionStatus) Label() string {
	switch ts {
	case StatusAwaitingPayment:
		return "Aguardando pagamento"
	case StatusInAnalysis:
		return "Em análise"
	case StatusPaid:
		return "Paga"
	case StatusAvailable:
		return "Disponível"
	case StatusInDispute:
		return "Em disputa"
	case StatusRefunded:
		return "Devolvida"
	case StatusCancelled:
		return "Cancelada"
	default:
		return "desconhecido"
	}
}

func (ts TransactionStatus) IsValid() bool {
	return ts >= StatusUnknown && ts <= StatusCancelled
}
