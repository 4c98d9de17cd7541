package port

type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
)

type TokenPayload struct {
	UserID uint64
	Role   Role
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(payload TokenPayload) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
