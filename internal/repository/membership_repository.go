package repository

import (
	"github.com/masterdu/masterdu-backend/internal/jsonstore"
	"github.com/masterdu/masterdu-backend/internal/model"
)

type MembershipRepository interface {
	GetAll() ([]model.MembershipApplication, error)
	SaveAll(apps []model.MembershipApplication) error
	SaveOne(app model.MembershipApplication) error
	DeleteOne(id string) error
	FindByID(id string) (*model.MembershipApplication, error)
}

type membershipRepository struct {
	apps *jsonstore.Collection[model.MembershipApplication]
}

func NewMembershipRepository(dataDir string) MembershipRepository {
	return &membershipRepository{
		apps: jsonstore.NewCollection[model.MembershipApplication](dataDir, "memberships.json"),
	}
}

func (r *membershipRepository) GetAll() ([]model.MembershipApplication, error) {
	return r.apps.Load()
}

func (r *membershipRepository) SaveAll(apps []model.MembershipApplication) error {
	return r.apps.Save(apps)
}

func (r *membershipRepository) SaveOne(app model.MembershipApplication) error {
	apps, err := r.apps.Load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range apps {
		if apps[i].ID == app.ID {
			apps[i] = app
			replaced = true
			break
		}
	}
	if !replaced {
		apps = append(apps, app)
	}
	return r.apps.Save(apps)
}

func (r *membershipRepository) DeleteOne(id string) error {
	apps, err := r.apps.Load()
	if err != nil {
		return err
	}
	filtered := apps[:0]
	for _, a := range apps {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	return r.apps.Save(filtered)
}

func (r *membershipRepository) FindByID(id string) (*model.MembershipApplication, error) {
	apps, err := r.apps.Load()
	if err != nil {
		return nil, err
	}
	for i := range apps {
		if apps[i].ID == id {
			return &apps[i], nil
		}
	}
	return nil, nil
}
