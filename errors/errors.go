package errors

import "fmt"

var (
	ErrNilSink         = fmt.Errorf("nil sink")
	ErrNilBase         = fmt.Errorf("nil base messenger")
	ErrNilNotifier     = fmt.Errorf("nil notifier")
	ErrNilWrapped      = fmt.Errorf("nil wrapped notifier")
	ErrEmptyDictionary = fmt.Errorf("no censored words have been provided")
)
