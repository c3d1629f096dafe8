package service

import (
	"testing"

	"github.com/masterdu/masterdu-backend/internal/model"
	"github.com/masterdu/masterdu-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMembershipService(t *testing.T) MembershipService {
	repo := repository.NewMembershipRepository(t.TempDir())
	return NewMembershipService(repo)
}

func TestMembershipService_Tiers(t *testing.T) {
	svc := newTestMembershipService(t)

	tiers := svc.Tiers()
	require.Len(t, tiers, 4)
	assert.Equal(t, "love", tiers[0].ID)
	assert.Equal(t, "the-one", tiers[3].ID)
}

func TestMembershipService_Apply(t *testing.T) {
	svc := newTestMembershipService(t)

	app, err := svc.Apply("陳大文", "chan@example.com", "91234567", "1990-01-01", "子時", "love")
	require.NoError(t, err)

	assert.NotEmpty(t, app.ID)
	assert.Equal(t, model.StatusPending, app.Status)
	assert.Equal(t, "love", app.Tier)
	assert.NotEmpty(t, app.CreatedAt)
	assert.Equal(t, app.CreatedAt, app.UpdatedAt)
	assert.Empty(t, app.PaidAt)

	// The application must be readable back from the collection.
	loaded, err := svc.GetByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, loaded.ID)
}

func TestMembershipService_Apply_UnknownTier(t *testing.T) {
	svc := newTestMembershipService(t)

	app, err := svc.Apply("陳大文", "chan@example.com", "91234567", "1990-01-01", "", "platinum")
	assert.ErrorIs(t, err, ErrTierNotFound)
	assert.Nil(t, app)
}

func TestMembershipService_GetByID_NotFound(t *testing.T) {
	svc := newTestMembershipService(t)

	app, err := svc.GetByID("missing")
	assert.ErrorIs(t, err, ErrMembershipNotFound)
	assert.Nil(t, app)
}

func TestMembershipService_SaveOne_PaidStampsPaidAt(t *testing.T) {
	svc := newTestMembershipService(t)

	app, err := svc.Apply("陳大文", "chan@example.com", "91234567", "1990-01-01", "", "love")
	require.NoError(t, err)

	app.Status = model.StatusPaid
	saved, err := svc.SaveOne(*app)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.PaidAt)

	// A second edit must not move the original payment timestamp.
	saved.Notes = "已核對轉帳紀錄"
	again, err := svc.SaveOne(*saved)
	require.NoError(t, err)
	assert.Equal(t, saved.PaidAt, again.PaidAt)
}

func TestMembershipService_Delete(t *testing.T) {
	svc := newTestMembershipService(t)

	app, err := svc.Apply("陳大文", "chan@example.com", "91234567", "1990-01-01", "", "love")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(app.ID))

	_, err = svc.GetByID(app.ID)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestMembershipService_PaymentDetails(t *testing.T) {
	svc := newTestMembershipService(t)

	app, err := svc.Apply("陳大文", "chan@example.com", "91234567", "1990-01-01", "", "love")
	require.NoError(t, err)

	details, err := svc.PaymentDetails(app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, details.Application.ID)
	assert.Equal(t, "love", details.Tier.ID)
	assert.Equal(t, "HK$6,800", details.AmountDisplay)
}

func TestMembershipService_PaymentDetails_NotFound(t *testing.T) {
	svc := newTestMembershipService(t)

	details, err := svc.PaymentDetails("missing")
	assert.ErrorIs(t, err, ErrMembershipNotFound)
	assert.Nil(t, details)
}
