package service

// Account represents a card account in the service layer.
type Account struct {
	Number  string
	Pin     string
	Balance int64
}
