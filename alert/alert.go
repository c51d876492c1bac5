// Package alert implements contract.Alerter. The composed program never
// uses it: keeping alerting in its own contract means messaging clients
// are not forced to depend on it.
package alert

import (
	"context"

	"solid-lab/contract"
	"solid-lab/errors"
)

// AlertToken is the fixed line written by Console.
const AlertToken = "Alert!"

type Console struct {
	sink contract.Sink
}

func NewConsole(sink contract.Sink) (*Console, error) {
	if sink == nil {
		return nil, errors.ErrNilSink
	}
	return &Console{sink: sink}, nil
}

func (a *Console) CreateAlert(ctx context.Context) error {
	return a.sink.WriteLine(ctx, AlertToken)
}
