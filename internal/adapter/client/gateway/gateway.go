// Package gateway talks to the external payment provider and folds its
// two confirmation channels (browser redirect-return and server
// notification) into one normalized payment attempt.
package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MikeRez0/automarket/internal/adapter/cache"
	"github.com/MikeRez0/automarket/internal/adapter/config"
	"github.com/MikeRez0/automarket/internal/core/domain"
	"github.com/MikeRez0/automarket/internal/core/port"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const (
	resultCodeSuccess = "0"
	attemptTTL        = 15 * time.Minute
)

type GatewayClient struct {
	logger      *zap.Logger
	host        string
	partnerCode string
	secretKey   []byte
	returnURL   string
	attempts    cache.Cache
}

func NewGatewayClient(cfg *config.Gateway, attempts cache.Cache, log *zap.Logger) (*GatewayClient, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("gateway secret key is not configured")
	}
	return &GatewayClient{
		logger:      log,
		host:        cfg.HostString,
		partnerCode: cfg.PartnerCode,
		secretKey:   []byte(cfg.SecretKey),
		returnURL:   cfg.ReturnURL,
		attempts:    attempts,
	}, nil
}

// extraData is the opaque token round-tripped through the gateway so a
// callback can be routed back to its order and purpose.
type extraData struct {
	OrderID string `json:"order_id"`
	Purpose string `json:"purpose"`
}

type createResponse struct {
	ResultCode string `json:"result_code"`
	Message    string `json:"message"`
	PayURL     string `json:"pay_url"`
}

// Initiate registers a pending attempt for (order, purpose) and asks the
// gateway to open a payment. Network trouble is ErrGatewayUnavailable:
// retryable, never a payment failure.
func (c *GatewayClient) Initiate(ctx context.Context, req port.InitiateRequest) (string, error) {
	token, err := encodeExtraData(extraData{
		OrderID: req.OrderID.String(),
		Purpose: string(req.Purpose),
	})
	if err != nil {
		return "", err
	}

	requestRef := uuid.New().String()
	fields := map[string]string{
		"partner_code": c.partnerCode,
		"request_id":   requestRef,
		"order_ref":    req.OrderID.String(),
		"amount":       req.Amount.String(),
		"method":       req.Method,
		"description":  req.Description,
		"return_url":   c.returnURL,
		"extra_data":   token,
		"request_time": strconv.FormatInt(time.Now().Unix(), 10),
	}
	fields["signature"] = c.sign(fields)

	body, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}

	requestStr := "http://" + c.host + "/api/payment/create"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error on %s : %w", requestStr, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		c.logger.Error("gateway create request failed", zap.Error(err))
		return "", domain.ErrGatewayUnavailable
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("unexpected status from gateway",
			zap.String("order", req.OrderID.String()), zap.Int("status", resp.StatusCode))
		return "", domain.ErrGatewayUnavailable
	}

	var result createResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", domain.ErrGatewayUnavailable
	}
	if result.ResultCode != resultCodeSuccess {
		c.logger.Error("gateway refused payment request",
			zap.String("order", req.OrderID.String()),
			zap.String("result", result.ResultCode),
			zap.String("message", result.Message))
		return "", domain.ErrGatewayUnavailable
	}

	key := c.attemptKey(req.OrderID.String(), string(req.Purpose))
	if err := c.attempts.Set(ctx, key, requestRef, attemptTTL); err != nil {
		// the signature check still protects the callback path
		c.logger.Warn("pending attempt not cached", zap.Error(err))
	}

	return result.PayURL, nil
}

// DecodeReturn verifies the browser redirect-return parameters.
func (c *GatewayClient) DecodeReturn(ctx context.Context, params url.Values) (*domain.PaymentAttempt, error) {
	fields := make(map[string]string, len(params))
	for k := range params {
		fields[k] = params.Get(k)
	}
	return c.decode(ctx, fields)
}

// DecodeNotification verifies the server-to-server callback body. The
// gateway sends the same logical fields as the return channel.
func (c *GatewayClient) DecodeNotification(ctx context.Context, payload []byte) (*domain.PaymentAttempt, error) {
	fields := make(map[string]string)
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, domain.ErrUntrustedCallback
	}
	return c.decode(ctx, fields)
}

func (c *GatewayClient) decode(ctx context.Context, fields map[string]string) (*domain.PaymentAttempt, error) {
	signature := fields["signature"]
	delete(fields, "signature")
	if signature == "" || !hmac.Equal([]byte(signature), []byte(c.sign(fields))) {
		return nil, domain.ErrUntrustedCallback
	}

	extra, err := decodeExtraData(fields["extra_data"])
	if err != nil {
		return nil, domain.ErrUntrustedCallback
	}

	orderID, err := uuid.Parse(extra.OrderID)
	if err != nil {
		return nil, domain.ErrUntrustedCallback
	}
	purpose := domain.PaymentPurpose(extra.Purpose)
	if purpose != domain.PurposeDeposit && purpose != domain.PurposeFullPayment {
		return nil, domain.ErrUntrustedCallback
	}

	amount, err := decimal.Parse(fields["amount"])
	if err != nil {
		return nil, domain.ErrUntrustedCallback
	}

	key := c.attemptKey(extra.OrderID, extra.Purpose)
	if known, err := c.attempts.Get(ctx, key); err == nil && known == "" {
		// late notification, attempt record already expired
		c.logger.Info("callback for unknown pending attempt",
			zap.String("order", extra.OrderID), zap.String("purpose", extra.Purpose))
	}

	resultCode := fields["result_code"]
	if resultCode == resultCodeSuccess {
		// declined attempts keep the record so the buyer can retry
		if err := c.attempts.Delete(ctx, key); err != nil {
			c.logger.Warn("pending attempt not cleared", zap.Error(err))
		}
	}

	return &domain.PaymentAttempt{
		OrderID:       orderID,
		Purpose:       purpose,
		Amount:        amount,
		Method:        fields["method"],
		TransactionID: fields["transaction_id"],
		Succeeded:     resultCode == resultCodeSuccess,
		ResultCode:    resultCode,
	}, nil
}

// sign computes an HMAC-SHA256 tag over the fields in key order.
func (c *GatewayClient) sign(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fields[k])
	}

	mac := hmac.New(sha256.New, c.secretKey)
	mac.Write([]byte(b.String()))
	return hex.EncodeToString(mac.Sum(nil))
}

func (c *GatewayClient) attemptKey(orderID, purpose string) string {
	return c.attempts.GenerateKey("attempt", orderID+":"+purpose)
}

func encodeExtraData(d extraData) (string, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeExtraData(token string) (*extraData, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	var d extraData
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
