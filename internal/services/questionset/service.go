package questionset

import (
	"context"

	"shramikadmin/internal/apiclient"
	"shramikadmin/internal/domain"
)

const (
	resource  = "question-sets"
	fieldList = "questionSets"
	fieldOne  = "questionSet"
)

// Service is CRUD over question sets.
type Service struct {
	client *apiclient.Client
}

// New returns a question-set gateway using client.
func New(client *apiclient.Client) *Service { return &Service{client: client} }

func (s *Service) ListQuestionSets(ctx context.Context) ([]domain.QuestionSet, error) {
	resp, err := s.client.Get(ctx, apiclient.JoinPath("api", resource), nil)
	if err != nil {
		return nil, err
	}
	return apiclient.Unwrap[[]domain.QuestionSet](resp, fieldList)
}

func (s *Service) GetQuestionSet(ctx context.Context, id string) (domain.QuestionSet, error) {
	resp, err := s.client.Get(ctx, apiclient.JoinPath("api", resource, id), nil)
	if err != nil {
		return domain.QuestionSet{}, err
	}
	return apiclient.Unwrap[domain.QuestionSet](resp, fieldOne)
}

func (s *Service) CreateQuestionSet(
	ctx context.Context,
	payload domain.QuestionSetPayload,
) (domain.QuestionSet, error) {
	resp, err := s.client.Post(ctx, apiclient.JoinPath("api", resource), payload)
	if err != nil {
		return domain.QuestionSet{}, err
	}
	return apiclient.Unwrap[domain.QuestionSet](resp, fieldOne)
}

func (s *Service) UpdateQuestionSet(
	ctx context.Context,
	id string,
	payload domain.QuestionSetPayload,
) (domain.QuestionSet, error) {
	resp, err := s.client.Put(ctx, apiclient.JoinPath("api", resource, id), payload)
	if err != nil {
		return domain.QuestionSet{}, err
	}
	return apiclient.Unwrap[domain.QuestionSet](resp, fieldOne)
}

func (s *Service) DeleteQuestionSet(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, apiclient.JoinPath("api", resource, id))
	return err
}

var _ domain.QuestionSetGateway = (*Service)(nil)
