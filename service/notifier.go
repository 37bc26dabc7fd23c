package service

import "log"

// Notifier is the injected capability used to surface user notices (the host
// platform shows these as toasts). Passed into the services instead of being
// reached as ambient global state.
type Notifier interface {
	Notify(message string, isError bool)
}

// LogNotifier writes notices to the application log
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the notice
func (n *LogNotifier) Notify(message string, isError bool) {
	if isError {
		log.Printf("❌ Notice: %s", message)
		return
	}
	log.Printf("📣 Notice: %s", message)
}

// Notice is one captured user notice
type Notice struct {
	Message string `json:"message"`
	IsError bool   `json:"isError"`
}

// RecordingNotifier captures notices so a controller can return them in the
// response body (and tests can assert on them)
type RecordingNotifier struct {
	Notices []Notice
}

// NewRecordingNotifier creates a new RecordingNotifier
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

// Notify records the notice
func (n *RecordingNotifier) Notify(message string, isError bool) {
	n.Notices = append(n.Notices, Notice{Message: message, IsError: isError})
}

// Last returns the most recent notice, if any
func (n *RecordingNotifier) Last() (Notice, bool) {
	if len(n.Notices) == 0 {
		return Notice{}, false
	}
	return n.Notices[len(n.Notices)-1], true
}
