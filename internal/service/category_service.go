package service

import (
	"context"

	"github.com/alimikegami/e-bazaar/internal/domain"
	"github.com/alimikegami/e-bazaar/internal/dto"
	"github.com/alimikegami/e-bazaar/internal/repository"
	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/alimikegami/e-bazaar/pkg/utils"
)

type CategoryServiceImpl struct {
	repo repository.CategoryRepository
}

func CreateCategoryService(repo repository.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{repo: repo}
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) (res []dto.CategoryResponse, err error) {
	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	res = make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		res = append(res, dto.NewCategoryResponse(category))
	}

	return res, nil
}

func (s *CategoryServiceImpl) GetCategoryByID(ctx context.Context, id string) (res dto.CategoryResponse, err error) {
	categoryID, err := parseID(id, errs.ErrInvalidID)
	if err != nil {
		return
	}

	category, err := s.repo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return
	}

	return dto.NewCategoryResponse(category), nil
}

func (s *CategoryServiceImpl) AddCategory(ctx context.Context, req dto.CategoryRequest) (res dto.CategoryResponse, err error) {
	if err = utils.ValidateStruct(req); err != nil {
		return
	}

	category := domain.Category{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	}

	category.ID, err = s.repo.AddCategory(ctx, category)
	if err != nil {
		return
	}

	return dto.NewCategoryResponse(category), nil
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, id string, req dto.CategoryUpdateRequest) (res dto.CategoryResponse, err error) {
	if err = utils.ValidateStruct(req); err != nil {
		return
	}

	categoryID, err := parseID(id, errs.ErrInvalidID)
	if err != nil {
		return
	}

	category, err := s.repo.UpdateCategory(ctx, categoryID, domain.CategoryUpdate{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		return
	}

	return dto.NewCategoryResponse(category), nil
}

func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	categoryID, err := parseID(id, errs.ErrInvalidID)
	if err != nil {
		return
	}

	return s.repo.DeleteCategory(ctx, categoryID)
}
