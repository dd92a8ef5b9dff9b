package service

import (
	"strings"

	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/repository"
)

// BannerService 轮播图服务
type BannerService struct {
	bannerRepo repository.BannerRepository
}

// NewBannerService 创建轮播图服务
func NewBannerService(bannerRepo repository.BannerRepository) *BannerService {
	return &BannerService{bannerRepo: bannerRepo}
}

// BannerInput 创建/更新轮播图
type BannerInput struct {
	Title       string `json:"title" validate:"required,max=100"`
	ImageURL    string `json:"image_url" validate:"required"`
	Description string `json:"description"`
	LinkURL     string `json:"link_url" validate:"max=255"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

// List 按排序返回
func (s *BannerService) List() ([]models.Banner, error) {
	return s.bannerRepo.List()
}

// Create 创建轮播图
func (s *BannerService) Create(input BannerInput) (*models.Banner, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := validateStruct(&input); err != nil {
		return nil, err
	}
	banner := &models.Banner{IsActive: true}
	applyBannerInput(banner, input)
	if err := s.bannerRepo.Create(banner); err != nil {
		return nil, err
	}
	if !banner.IsActive {
		if err := s.bannerRepo.Update(banner); err != nil {
			return nil, err
		}
	}
	return banner, nil
}

// Update 更新轮播图
func (s *BannerService) Update(id uint, input BannerInput) (*models.Banner, error) {
	banner, err := s.bannerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrBannerNotFound
	}
	input.Title = strings.TrimSpace(input.Title)
	if err := validateStruct(&input); err != nil {
		return nil, err
	}
	applyBannerInput(banner, input)
	if err := s.bannerRepo.Update(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// Delete 删除轮播图
func (s *BannerService) Delete(id uint) error {
	banner, err := s.bannerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if banner == nil {
		return ErrBannerNotFound
	}
	return s.bannerRepo.Delete(id)
}

func applyBannerInput(banner *models.Banner, input BannerInput) {
	banner.Title = input.Title
	banner.ImageURL = strings.TrimSpace(input.ImageURL)
	banner.Description = input.Description
	banner.LinkURL = strings.TrimSpace(input.LinkURL)
	banner.SortOrder = input.SortOrder
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
}
