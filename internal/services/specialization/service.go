package specialization

import (
	"context"
	"net/url"

	"shramikadmin/internal/apiclient"
	"shramikadmin/internal/domain"
)

const (
	resource  = "specializations"
	fieldList = "specializations"
	fieldOne  = "specialization"
)

// Service is CRUD over specializations.
type Service struct {
	client *apiclient.Client
}

// New returns a specialization gateway using client.
func New(client *apiclient.Client) *Service { return &Service{client: client} }

// ListSpecializations returns all specializations, or only those with the
// given status when status is non-empty.
func (s *Service) ListSpecializations(
	ctx context.Context,
	status domain.SpecializationStatus,
) ([]domain.Specialization, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": {status.String()}}
	}
	resp, err := s.client.Get(ctx, apiclient.JoinPath("api", resource), q)
	if err != nil {
		return nil, err
	}
	return apiclient.Unwrap[[]domain.Specialization](resp, fieldList)
}

func (s *Service) GetSpecialization(ctx context.Context, id string) (domain.Specialization, error) {
	resp, err := s.client.Get(ctx, apiclient.JoinPath("api", resource, id), nil)
	if err != nil {
		return domain.Specialization{}, err
	}
	return apiclient.Unwrap[domain.Specialization](resp, fieldOne)
}

func (s *Service) CreateSpecialization(
	ctx context.Context,
	payload domain.SpecializationPayload,
) (domain.Specialization, error) {
	resp, err := s.client.Post(ctx, apiclient.JoinPath("api", resource), payload)
	if err != nil {
		return domain.Specialization{}, err
	}
	return apiclient.Unwrap[domain.Specialization](resp, fieldOne)
}

func (s *Service) UpdateSpecialization(
	ctx context.Context,
	id string,
	payload domain.SpecializationPayload,
) (domain.Specialization, error) {
	resp, err := s.client.Put(ctx, apiclient.JoinPath("api", resource, id), payload)
	if err != nil {
		return domain.Specialization{}, err
	}
	return apiclient.Unwrap[domain.Specialization](resp, fieldOne)
}

// DeleteSpecialization removes a specialization; the reply body is ignored.
func (s *Service) DeleteSpecialization(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, apiclient.JoinPath("api", resource, id))
	return err
}

var _ domain.SpecializationGateway = (*Service)(nil)
