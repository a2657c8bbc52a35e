package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadeline/booking-service/internal/domain"
	scheduleRepo "github.com/fadeline/booking-service/internal/infra/storage/schedule"
	directoryClient "github.com/fadeline/booking-service/internal/integrations/providerdirectory"
	"github.com/fadeline/booking-service/internal/service/schedule/models"
)

// Service handles provider schedule policies: working days, the daily
// window and the slot grid. A provider without a configured policy gets
// the default one, so slot generation never sees a missing policy.
type Service struct {
	policyRepo      PolicyRepository
	directoryClient ProviderDirectoryClient
	logger          Logger
}

// NewService creates the schedule service.
func NewService(
	policyRepo PolicyRepository,
	directoryClient ProviderDirectoryClient,
	logger Logger,
) *Service {
	return &Service{
		policyRepo:      policyRepo,
		directoryClient: directoryClient,
		logger:          logger,
	}
}

// GetPolicy returns the provider's schedule policy, falling back to the
// default when none is configured.
func (s *Service) GetPolicy(ctx context.Context, providerID int64) (*models.PolicyResponse, error) {
	s.logger.Info("GetPolicy: fetching policy for provider=%d", providerID)

	if _, err := s.directoryClient.GetProvider(ctx, providerID); err != nil {
		if errors.Is(err, directoryClient.ErrProviderNotFound) {
			s.logger.Warn("GetPolicy: provider id=%d not found", providerID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("GetPolicy: directory error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetPolicy - directory error: %v", ErrInternal, err)
	}

	policy, isDefault, err := s.policyForProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("GetPolicy: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetPolicy - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPolicy(policy, isDefault), nil
}

// UpdatePolicy replaces the provider's schedule policy. PUT semantics:
// the request carries the full policy, not a patch.
func (s *Service) UpdatePolicy(ctx context.Context, providerID int64, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("UpdatePolicy: updating policy for provider=%d", providerID)

	if _, err := s.directoryClient.GetProvider(ctx, providerID); err != nil {
		if errors.Is(err, directoryClient.ErrProviderNotFound) {
			s.logger.Warn("UpdatePolicy: provider id=%d not found", providerID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("UpdatePolicy: directory error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: UpdatePolicy - directory error: %v", ErrInternal, err)
	}

	policy, err := req.ToDomainPolicy(providerID)
	if err != nil {
		s.logger.Warn("UpdatePolicy: invalid policy for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := policy.Validate(); err != nil {
		s.logger.Warn("UpdatePolicy: validation failed for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.policyRepo.Upsert(ctx, policy)
	if err != nil {
		s.logger.Error("UpdatePolicy: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: UpdatePolicy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePolicy: updated policy id=%d for provider=%d", saved.ID, providerID)
	return models.FromDomainPolicy(saved, false), nil
}

// policyForProvider fetches the stored policy or falls back to the
// default one.
func (s *Service) policyForProvider(ctx context.Context, providerID int64) (*domain.SchedulePolicy, bool, error) {
	stored, err := s.policyRepo.GetByProviderID(ctx, providerID)
	if errors.Is(err, scheduleRepo.ErrPolicyNotFound) {
		return domain.DefaultSchedulePolicy(providerID), true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return stored, false, nil
}
