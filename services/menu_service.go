package services

import (
	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/money"
	"backend/repository"
)

type MenuService struct {
	Repo *repository.MenuItemRepository
}

func NewMenuService(repo *repository.MenuItemRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuItemIn struct {
	CategoryID  uint        `json:"category_id" binding:"required"`
	Name        string      `json:"name" binding:"required,min=2,max=100"`
	Description string      `json:"description" binding:"max=500"`
	Price       money.Money `json:"price" binding:"required"`
	ImageURL    string      `json:"image_url" binding:"max=500"`
	Available   *bool       `json:"available"`
}

type MenuItemUpdateIn struct {
	CategoryID  *uint        `json:"category_id"`
	Name        *string      `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string      `json:"description" binding:"omitempty,max=500"`
	Price       *money.Money `json:"price"`
	ImageURL    *string      `json:"image_url" binding:"omitempty,max=500"`
	Available   *bool        `json:"available"`
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if !in.Price.IsPositive() {
		return nil, apperr.Validation("price must be positive")
	}
	ok, err := s.Repo.CategoryExists(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("category not found")
	}

	m := &entity.MenuItem{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Available:   true,
	}
	if in.Available != nil {
		m.Available = *in.Available
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, err
	}
	return m, nil
}

func (s *MenuService) List(categoryID *uint, available *bool) ([]entity.MenuItem, error) {
	return s.Repo.List(categoryID, available)
}

// Update applies only the fields the caller provided.
func (s *MenuService) Update(id uint, in *MenuItemUpdateIn) (*entity.MenuItem, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		ok, err := s.Repo.CategoryExists(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.NotFound("category not found")
		}
		m.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, apperr.Validation("price must be positive")
		}
		m.Price = *in.Price
	}
	if in.ImageURL != nil {
		m.ImageURL = *in.ImageURL
	}
	if in.Available != nil {
		m.Available = *in.Available
	}
	if err := s.Repo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) SetAvailability(id uint, available bool) (*entity.MenuItem, error) {
	affected, err := s.Repo.SetAvailability(id, available)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperr.NotFound("menu item not found")
	}
	return s.Get(id)
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
