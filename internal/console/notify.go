package console

// Notifier is how the console core surfaces failures and confirmation gates
// to the user. Alert blocks until the user dismisses the message; Confirm
// blocks until the user answers. The core depends only on this contract, not
// on any particular UI modality.
type Notifier interface {
	Alert(msg string)
	Confirm(msg string) bool
}
