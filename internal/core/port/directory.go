package port

import (
	"context"

	"github.com/govalues/decimal"
)

// Listing is the catalog view of a vehicle offer.
type Listing struct {
	ID              string
	SellerID        uint64
	Make            string
	Model           string
	Year            int
	Price           decimal.Decimal
	RegistrationFee decimal.Decimal
	DealerFee       decimal.Decimal
	TaxRate         decimal.Decimal
	ShippingFee     decimal.Decimal
	Showrooms       []Showroom
}

type Showroom struct {
	ID       string
	SellerID uint64
	Name     string
}

type Seller struct {
	ID      uint64
	Name    string
	Address string
	Phone   string
	Email   string
}

type UserProfile struct {
	ID      uint64
	Name    string
	Email   string
	Address string
	Phone   string
	Role    Role
}

// DirectoryClient looks up external collaborators: vehicle catalog,
// showroom/seller directory and buyer identity. The core only calls
// these services, it does not own them.
//
//go:generate mockgen -source=directory.go -destination=mock/directory.go -package=mock
type DirectoryClient interface {
	GetListing(ctx context.Context, listingID string) (*Listing, error)
	GetSeller(ctx context.Context, sellerID uint64) (*Seller, error)
	GetSellerForShowroom(ctx context.Context, showroomID string) (*Seller, error)
	GetUser(ctx context.Context, userID uint64) (*UserProfile, error)
	Authenticate(ctx context.Context, login string, password string) (*UserProfile, error)
}
