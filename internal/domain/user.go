package domain

// User is the demo session identity derived at login. There is no real
// account store behind it.
type User struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  ActorRole `json:"role"`
}
