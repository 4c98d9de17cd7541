package port

//go:generate mockgen -source=metrics.go -destination=mock/metrics.go -package=mock
type Metrics interface {
	OrderCreated()
	PaymentApplied(purpose string)
	DuplicateConfirmation()
	UntrustedCallback()
	OrderClosed(status string)
}
