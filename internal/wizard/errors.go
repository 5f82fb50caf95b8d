package wizard

// InputError indicates a malformed request rejected before any upstream
// call.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}
