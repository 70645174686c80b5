package api

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/bookmarkd/bookmarkd/internal/log"
)

// Notifier receives the user-visible message extracted from a rejected
// response. The gateway emits exactly one notification per rejected call.
type Notifier interface {
	Notify(message string)
}

// StderrNotifier is the default presentation helper: the message goes to
// the terminal and the structured log.
type StderrNotifier struct{}

func (StderrNotifier) Notify(message string) {
	fmt.Fprintln(os.Stderr, message)
	log.Warn("Request rejected", zap.String("message", message))
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }
