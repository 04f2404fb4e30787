package notifier

// Client delivers run summaries and failure notices to the operator's
// Telegram account. A no-op implementation is used when unconfigured.
type Client interface {
	SendMessageToUser(message string)
}
