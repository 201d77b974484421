package client

import "log"

// Notifier receives the transient user-facing notifications (the toast
// equivalent). Every operation converts its own failure into one of these;
// nothing propagates to a top-level handler.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { log.Println(msg) }
func (LogNotifier) Error(msg string)   { log.Println("error:", msg) }
