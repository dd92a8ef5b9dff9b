package service

import (
	"strings"

	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/repository"
)

// CategoryService 商品分类服务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CategoryInput 创建/更新分类
type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=200"`
	Icon        string `json:"icon" validate:"max=100"`
	Color       string `json:"color" validate:"max=50"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

// List 分类列表，附带商品数
func (s *CategoryService) List() ([]models.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	counts, err := s.categoryRepo.ProductCounts()
	if err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].ProductCount = counts[categories[i].Name]
	}
	return categories, nil
}

// Create 创建分类
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	if err := s.validate(&input, 0); err != nil {
		return nil, err
	}
	category := &models.Category{IsActive: true}
	applyCategoryInput(category, input)
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	if !category.IsActive {
		// 零值布尔在创建时会被列默认值覆盖
		if err := s.categoryRepo.Update(category); err != nil {
			return nil, err
		}
	}
	return category, nil
}

// Update 更新分类
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	if err := s.validate(&input, id); err != nil {
		return nil, err
	}
	applyCategoryInput(category, input)
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类
func (s *CategoryService) Delete(id uint) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.Delete(id)
}

func (s *CategoryService) validate(input *CategoryInput, excludeID uint) error {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return err
	}
	count, err := s.categoryRepo.CountByName(input.Name, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryExists
	}
	return nil
}

func applyCategoryInput(category *models.Category, input CategoryInput) {
	category.Name = input.Name
	category.Description = strings.TrimSpace(input.Description)
	category.Icon = strings.TrimSpace(input.Icon)
	if color := strings.TrimSpace(input.Color); color != "" {
		category.Color = color
	}
	category.SortOrder = input.SortOrder
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
}
