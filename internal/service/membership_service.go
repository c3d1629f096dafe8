package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/masterdu/masterdu-backend/internal/model"
	"github.com/masterdu/masterdu-backend/internal/repository"
	"github.com/masterdu/masterdu-backend/pkg/logger"
)

var (
	ErrMembershipNotFound = errors.New("membership application not found")
	ErrTierNotFound       = errors.New("membership tier not found")
)

// PaymentDetails is the payment-instructions view of an application.
type PaymentDetails struct {
	Application model.MembershipApplication
	Tier        model.MemberTier
	// AmountDisplay is the tier price formatted as HK$ currency.
	AmountDisplay string
}

type MembershipService interface {
	Tiers() []model.MemberTier
	Apply(name, email, phone, dob, birthTime, tierID string) (*model.MembershipApplication, error)
	GetAll() ([]model.MembershipApplication, error)
	SaveAll(apps []model.MembershipApplication) error
	SaveOne(app model.MembershipApplication) (*model.MembershipApplication, error)
	Delete(id string) error
	GetByID(id string) (*model.MembershipApplication, error)
	PaymentDetails(id string) (*PaymentDetails, error)
}

type membershipService struct {
	repo repository.MembershipRepository
}

func NewMembershipService(repo repository.MembershipRepository) MembershipService {
	return &membershipService{repo: repo}
}

func (s *membershipService) Tiers() []model.MemberTier {
	return model.MembershipTiers
}

// Apply creates a pending application. Status only advances later
// through a manual CMS edit; the payment page never writes.
func (s *membershipService) Apply(name, email, phone, dob, birthTime, tierID string) (*model.MembershipApplication, error) {
	if _, ok := model.FindTier(tierID); !ok {
		logger.Warn("Application rejected: unknown tier", map[string]interface{}{
			"tier": tierID,
		})
		return nil, ErrTierNotFound
	}

	now := time.Now().UTC().Format(time.RFC3339)
	app := model.MembershipApplication{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		DOB:       dob,
		Time:      birthTime,
		Tier:      tierID,
		Status:    model.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.SaveOne(app); err != nil {
		logger.Error("Failed to save membership application", err, map[string]interface{}{
			"tier": tierID,
		})
		return nil, err
	}

	logger.Info("Membership application created", map[string]interface{}{
		"application_id": app.ID,
		"tier":           tierID,
	})
	return &app, nil
}

func (s *membershipService) GetAll() ([]model.MembershipApplication, error) {
	return s.repo.GetAll()
}

func (s *membershipService) SaveAll(apps []model.MembershipApplication) error {
	return s.repo.SaveAll(apps)
}

// SaveOne applies a CMS edit. Setting status to paid stamps paidAt
// when the editor has not supplied one.
func (s *membershipService) SaveOne(app model.MembershipApplication) (*model.MembershipApplication, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	app.UpdatedAt = now
	if app.Status == model.StatusPaid && app.PaidAt == "" {
		app.PaidAt = now
	}

	if err := s.repo.SaveOne(app); err != nil {
		return nil, err
	}

	logger.Info("Membership application saved", map[string]interface{}{
		"application_id": app.ID,
		"status":         app.Status,
	})
	return &app, nil
}

func (s *membershipService) Delete(id string) error {
	return s.repo.DeleteOne(id)
}

func (s *membershipService) GetByID(id string) (*model.MembershipApplication, error) {
	app, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrMembershipNotFound
	}
	return app, nil
}

func (s *membershipService) PaymentDetails(id string) (*PaymentDetails, error) {
	app, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	tier, ok := model.FindTier(app.Tier)
	if !ok {
		return nil, ErrTierNotFound
	}

	return &PaymentDetails{
		Application:   *app,
		Tier:          tier,
		AmountDisplay: "HK$" + model.FormatAmount(tier.Price),
	}, nil
}
