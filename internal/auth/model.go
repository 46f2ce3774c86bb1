package auth

const (
	RoleNutritionist = "NUTRITIONIST"
	RoleAdmin        = "ADMIN"
)

// User is the account entity: a nutritionist or a platform admin.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
