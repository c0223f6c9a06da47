package models

// PrincipalType discriminates the two kinds of authenticated caller
type PrincipalType string

const (
	PrincipalAdmin PrincipalType = "admin"
	PrincipalUser  PrincipalType = "user"
)

// Valid reports whether t is a known principal type
func (t PrincipalType) Valid() bool {
	return t == PrincipalAdmin || t == PrincipalUser
}

// Principal is the resolved caller attached to a request.
// Only AdminPrincipal and UserPrincipal implement it.
type Principal interface {
	PrincipalType() PrincipalType
	PrincipalID() string
	isPrincipal()
}

// AdminPrincipal is the resolved admin caller
type AdminPrincipal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (p *AdminPrincipal) PrincipalType() PrincipalType { return PrincipalAdmin }
func (p *AdminPrincipal) PrincipalID() string          { return p.ID }
func (p *AdminPrincipal) isPrincipal()                 {}

// UserPrincipal is the resolved user caller
type UserPrincipal struct {
	ID           string `json:"id"`
	MobileNumber string `json:"mobileNumber"`
	IsVerified   bool   `json:"isVerified"`
}

func (p *UserPrincipal) PrincipalType() PrincipalType { return PrincipalUser }
func (p *UserPrincipal) PrincipalID() string          { return p.ID }
func (p *UserPrincipal) isPrincipal()                 {}
