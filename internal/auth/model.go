package auth

// User is the account owning receipts and scan jobs.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}
