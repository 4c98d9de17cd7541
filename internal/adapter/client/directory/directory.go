// Package directory is the HTTP client for the externally-owned
// collaborators: vehicle catalog, showroom/seller directory and buyer
// identity.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MikeRez0/automarket/internal/adapter/config"
	"github.com/MikeRez0/automarket/internal/core/domain"
	"github.com/MikeRez0/automarket/internal/core/port"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type DirectoryClient struct {
	logger *zap.Logger
	host   string
}

func NewDirectoryClient(cfg *config.Directory, log *zap.Logger) (*DirectoryClient, error) {
	return &DirectoryClient{
		host:   cfg.HostString,
		logger: log,
	}, nil
}

type listingResponse struct {
	ID              string             `json:"id"`
	SellerID        uint64             `json:"seller_id"`
	Make            string             `json:"make"`
	Model           string             `json:"model"`
	Year            int                `json:"year"`
	Price           string             `json:"price"`
	RegistrationFee string             `json:"registration_fee"`
	DealerFee       string             `json:"dealer_fee"`
	TaxRate         string             `json:"tax_rate"`
	ShippingFee     string             `json:"shipping_fee"`
	Showrooms       []showroomResponse `json:"showrooms"`
}

type showroomResponse struct {
	ID       string `json:"id"`
	SellerID uint64 `json:"seller_id"`
	Name     string `json:"name"`
}

type sellerResponse struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type userResponse struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
}

func (c *DirectoryClient) get(ctx context.Context, path string, out any) error {
	requestStr := "http://" + c.host + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrDataNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("unexpected status for request",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error on response decode: %w", err)
	}
	return nil
}

func (c *DirectoryClient) GetListing(ctx context.Context, listingID string) (*port.Listing, error) {
	var resp listingResponse
	if err := c.get(ctx, "/api/listings/"+listingID, &resp); err != nil {
		return nil, err
	}

	listing := port.Listing{
		ID:       resp.ID,
		SellerID: resp.SellerID,
		Make:     resp.Make,
		Model:    resp.Model,
		Year:     resp.Year,
	}

	for _, pair := range []struct {
		src string
		dst *decimal.Decimal
	}{
		{resp.Price, &listing.Price},
		{resp.RegistrationFee, &listing.RegistrationFee},
		{resp.DealerFee, &listing.DealerFee},
		{resp.TaxRate, &listing.TaxRate},
		{resp.ShippingFee, &listing.ShippingFee},
	} {
		if pair.src == "" {
			*pair.dst = decimal.Zero
			continue
		}
		d, err := decimal.Parse(pair.src)
		if err != nil {
			return nil, fmt.Errorf("error on response decode: %w", err)
		}
		*pair.dst = d
	}

	for _, sr := range resp.Showrooms {
		listing.Showrooms = append(listing.Showrooms, port.Showroom{
			ID:       sr.ID,
			SellerID: sr.SellerID,
			Name:     sr.Name,
		})
	}

	return &listing, nil
}

func (c *DirectoryClient) GetSeller(ctx context.Context, sellerID uint64) (*port.Seller, error) {
	var resp sellerResponse
	if err := c.get(ctx, "/api/sellers/"+strconv.FormatUint(sellerID, 10), &resp); err != nil {
		return nil, err
	}
	return &port.Seller{
		ID:      resp.ID,
		Name:    resp.Name,
		Address: resp.Address,
		Phone:   resp.Phone,
		Email:   resp.Email,
	}, nil
}

func (c *DirectoryClient) GetSellerForShowroom(ctx context.Context, showroomID string) (*port.Seller, error) {
	var resp sellerResponse
	if err := c.get(ctx, "/api/showrooms/"+showroomID+"/seller", &resp); err != nil {
		return nil, err
	}
	return &port.Seller{
		ID:      resp.ID,
		Name:    resp.Name,
		Address: resp.Address,
		Phone:   resp.Phone,
		Email:   resp.Email,
	}, nil
}

func (c *DirectoryClient) GetUser(ctx context.Context, userID uint64) (*port.UserProfile, error) {
	var resp userResponse
	if err := c.get(ctx, "/api/users/"+strconv.FormatUint(userID, 10), &resp); err != nil {
		return nil, err
	}
	return &port.UserProfile{
		ID:      resp.ID,
		Name:    resp.Name,
		Email:   resp.Email,
		Address: resp.Address,
		Phone:   resp.Phone,
		Role:    port.Role(resp.Role),
	}, nil
}

func (c *DirectoryClient) Authenticate(ctx context.Context, login string, password string) (*port.UserProfile, error) {
	body, err := json.Marshal(map[string]string{"login": login, "password": password})
	if err != nil {
		return nil, err
	}

	requestStr := "http://" + c.host + "/api/auth/login"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}
	return &port.UserProfile{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Phone:   user.Phone,
		Role:    port.Role(user.Role),
	}, nil
}
