package contracts

import "context"

// ResponseStore appends one flat row per accepted submission. The header is
// written on first use when the store has none.
type ResponseStore interface {
	AppendRow(ctx context.Context, header, row []string) error
	Backend() string
}
