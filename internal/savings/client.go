package savings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avc/savings-relay/internal/domain"
)

// Путь метода GetSavings на шлюзе gRPC-web
const getSavingsPath = "/money_service.MoneyService/GetSavings"

// Client реализует domain.SavingsClient поверх HTTP-шлюза gRPC-web
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создает клиент сервиса экономии по указанному адресу шлюза
func NewClient(baseURL string) *Client {
	base := strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type getSavingsRequest struct {
	UserID int64 `json:"user_id"`
}

// GetSavings выполняет один удалённый вызов получения экономии.
// Любой сбой транспорта возвращается как *domain.TransportError
func (c *Client) GetSavings(ctx context.Context, userID domain.UserID) (*domain.RawSavingsResponse, error) {
	body, err := json.Marshal(getSavingsRequest{UserID: int64(userID)})
	if err != nil {
		return nil, domain.NewTransportError(domain.TransportInternal, fmt.Sprintf("encode request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+getSavingsPath, bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewTransportError(domain.TransportInternal, fmt.Sprintf("create request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, domain.NewTransportError(domain.TransportDeadlineExceeded, err.Error())
		}
		return nil, domain.NewTransportError(domain.TransportUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewTransportError(
			transportCodeForHTTP(resp.StatusCode),
			fmt.Sprintf("Http response at %d", resp.StatusCode),
		)
	}

	var raw domain.RawSavingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, domain.NewTransportError(domain.TransportInternal, fmt.Sprintf("decode response: %v", err))
	}

	return &raw, nil
}

// transportCodeForHTTP переводит статус HTTP в код транспортной ошибки
func transportCodeForHTTP(status int) domain.TransportCode {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.TransportPermissionDenied
	case status == http.StatusGatewayTimeout:
		return domain.TransportDeadlineExceeded
	case status == http.StatusBadGateway || status == http.StatusServiceUnavailable:
		return domain.TransportUnavailable
	case status >= http.StatusInternalServerError:
		return domain.TransportInternal
	default:
		return domain.TransportUnknown
	}
}
