//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
)

// Messenger sends one piece of text through the program's output sink.
// Callers hold this contract, never a concrete variant, so variants stay
// interchangeable.
type Messenger interface {
	SendMessage(ctx context.Context, text string) error
}

// Notifier emits a short notification.
type Notifier interface {
	Notify(ctx context.Context) error
}

// Alerter raises an alert. No component of the composed program consumes it:
// clients that only need notifications are never forced to depend on alerting.
type Alerter interface {
	CreateAlert(ctx context.Context) error
}

// Sink is where every variant writes its visible output, one line at a time.
type Sink interface {
	WriteLine(ctx context.Context, line string) error
}
