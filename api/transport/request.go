package transport

// CredentialsRequest carries the email/password pair for both register and
// login. Both fields are required; the handler rejects blanks before any
// store call.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TaskRequest is the add/update payload. Keys are lowercase by contract;
// due_date is a "YYYY-MM-DD" string or empty.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}
