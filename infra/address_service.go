package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/careerlink/company-service/config"
	"github.com/careerlink/company-service/entity"
	"github.com/careerlink/company-service/utils"
)

// tracerName identifies spans emitted around calls to sibling services.
const tracerName = "company-service/infra"

// AddressService fetches address records owned by the address microservice,
// forwarding the caller's bearer credential. The HTTP client is built once
// and shared.
type AddressService struct {
	AddressServiceURL string
	client            *http.Client
}

func InitAddressService(cfg *config.EnvConfig) *AddressService {
	url := cfg.ExternalService.AddressServiceURL
	if url == "" {
		panic("Address service URL is not configured")
	}

	return &AddressService{
		AddressServiceURL: url,
		client:            &http.Client{},
	}
}

// FetchByID retrieves one address record. A non-2xx answer from the address
// service is propagated with its original status, never translated.
func (s *AddressService) FetchByID(ctx context.Context, addressID uuid.UUID, token string) (*entity.Address, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "AddressService.FetchByID", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	url := fmt.Sprintf("%s/%s", s.AddressServiceURL, addressID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, utils.BadRequest("failed to create address request: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, utils.Remote(http.StatusBadGateway, "address service unreachable: "+err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, utils.Remote(resp.StatusCode, fmt.Sprintf("address service returned %d: %s", resp.StatusCode, raw))
	}

	var address entity.Address
	if err := json.NewDecoder(resp.Body).Decode(&address); err != nil {
		return nil, utils.Remote(http.StatusBadGateway, "failed to decode address response: "+err.Error())
	}

	return &address, nil
}
