package common

// discardServiceLog backs code paths that run without a configured
// service log, such as the request-logger fallback. A single shared
// drain goroutine swallows whatever lands here.
var discardServiceLog = newDiscardServiceLog()

func newDiscardServiceLog() chan ServiceLog {
	logs := make(chan ServiceLog, 16)
	go func() {
		for range logs {
		}
	}()
	return logs
}

// GetDiscardServiceLog returns a shared sink that drops every entry;
// it satisfies components that require a service log when the caller
// has nowhere to send one.
func GetDiscardServiceLog() chan ServiceLog {
	return discardServiceLog
}
