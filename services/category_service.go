package services

import (
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

type CategoryIn struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=500"`
	Active      *bool  `json:"active"`
}

func (s *CategoryService) Create(in *CategoryIn) (*entity.Category, error) {
	c := &entity.Category{Name: in.Name, Description: in.Description, Active: true}
	if in.Active != nil {
		c.Active = *in.Active
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) List(activeOnly bool) ([]entity.Category, error) {
	return s.Repo.List(activeOnly)
}

// Update applies only the fields the caller provided.
func (s *CategoryService) Update(id uint, in *CategoryUpdateIn) (*entity.Category, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	if err := s.Repo.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}

type CategoryUpdateIn struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Active      *bool   `json:"active"`
}

func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
