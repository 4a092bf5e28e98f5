package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"usedphoneshop/internal/model"
	"usedphoneshop/internal/repository"
)

var ErrPhoneNotFound = errors.New("phone not found")

// PhoneService provides catalog operations
type PhoneService interface {
	CreatePhone(ctx context.Context, req model.CreatePhoneRequest) (*model.Phone, error)
	GetPhoneByID(ctx context.Context, id int) (*model.Phone, error)
	ListPhones(ctx context.Context) ([]model.Phone, error)
	UpdatePhone(ctx context.Context, id int, req model.UpdatePhoneRequest) (*model.Phone, error)
	DeletePhone(ctx context.Context, id int) error
}

type phoneService struct {
	repo repository.PhoneRepository
}

// NewPhoneService creates a new PhoneService
func NewPhoneService(repo repository.PhoneRepository) PhoneService {
	return &phoneService{repo: repo}
}

func (s *phoneService) CreatePhone(ctx context.Context, req model.CreatePhoneRequest) (*model.Phone, error) {
	phone := &model.Phone{
		Brand:         req.Brand,
		Model:         req.Model,
		Price:         req.Price,
		Description:   req.Description,
		Condition:     req.Condition,
		StockQuantity: req.StockQuantity,
	}
	if err := s.repo.Create(ctx, phone); err != nil {
		return nil, fmt.Errorf("failed to create phone in repo: %w", err)
	}
	return phone, nil
}

func (s *phoneService) GetPhoneByID(ctx context.Context, id int) (*model.Phone, error) {
	phone, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find phone by ID: %w", err)
	}
	if phone == nil {
		return nil, ErrPhoneNotFound
	}
	return phone, nil
}

func (s *phoneService) ListPhones(ctx context.Context) ([]model.Phone, error) {
	phones, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list phones: %w", err)
	}
	return phones, nil
}

func (s *phoneService) UpdatePhone(ctx context.Context, id int, req model.UpdatePhoneRequest) (*model.Phone, error) {
	phone, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find phone for update: %w", err)
	}
	if phone == nil {
		return nil, ErrPhoneNotFound
	}

	if req.Brand != nil {
		phone.Brand = *req.Brand
	}
	if req.Model != nil {
		phone.Model = *req.Model
	}
	if req.Price != nil {
		phone.Price = *req.Price
	}
	if req.Description != nil {
		phone.Description = *req.Description
	}
	if req.Condition != nil {
		phone.Condition = *req.Condition
	}
	if req.StockQuantity != nil {
		phone.StockQuantity = *req.StockQuantity
	}

	if err := s.repo.Update(ctx, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPhoneNotFound
		}
		return nil, fmt.Errorf("failed to update phone in repo: %w", err)
	}
	return phone, nil
}

func (s *phoneService) DeletePhone(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPhoneNotFound
		}
		return fmt.Errorf("failed to delete phone in repo: %w", err)
	}
	return nil
}
