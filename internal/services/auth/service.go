package auth

import (
	"context"

	"shramikadmin/internal/apiclient"
	"shramikadmin/internal/domain"
)

const loginPath = "/api/auth/login"

// Service calls the authentication endpoint.
type Service struct {
	client *apiclient.Client
}

// New returns an auth service using client.
func New(client *apiclient.Client) *Service { return &Service{client: client} }

// Login posts the credentials and returns the decoded reply. Non-2xx replies
// come back as *apiclient.HTTPError carrying the server message.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	resp, err := s.client.Post(ctx, loginPath, req)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	return apiclient.Decode[domain.LoginResponse](resp)
}

var _ domain.AuthGateway = (*Service)(nil)
