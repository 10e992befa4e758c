package models

// Roles an identity can hold.
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
)

// Identity represents a registered user, customer or seller. Fields are set
// at registration and never change, except ShopName which a seller may fill
// in later.
type Identity struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Role         string `json:"role"`
	ShopName     string `json:"shopName,omitempty"`
}

// RegisteredUser is an Identity together with its password hash, as stored
// in the registered-users list. The hash never leaves the server.
type RegisteredUser struct {
	Identity
	PasswordHash string `json:"passwordHash"`
}
