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

// UserService fetches user records from the user microservice for membership
// checks, forwarding the caller's bearer credential.
type UserService struct {
	UserServiceURL string
	client         *http.Client
}

func InitUserService(cfg *config.EnvConfig) *UserService {
	url := cfg.ExternalService.UserServiceURL
	if url == "" {
		panic("User service URL is not configured")
	}

	return &UserService{
		UserServiceURL: url,
		client:         &http.Client{},
	}
}

// FetchByID retrieves one user record. Non-2xx answers keep their original
// status.
func (s *UserService) FetchByID(ctx context.Context, userID uuid.UUID, token string) (*entity.UserAccount, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "UserService.FetchByID", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	url := fmt.Sprintf("%s/%s", s.UserServiceURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, utils.BadRequest("failed to create user request: " + err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, utils.Remote(http.StatusBadGateway, "user service unreachable: "+err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, utils.Remote(resp.StatusCode, fmt.Sprintf("user service returned %d: %s", resp.StatusCode, raw))
	}

	var user entity.UserAccount
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, utils.Remote(http.StatusBadGateway, "failed to decode user response: "+err.Error())
	}

	return &user, nil
}
