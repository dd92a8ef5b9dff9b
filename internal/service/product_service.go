package service

import (
	"fmt"
	"strings"

	"github.com/petmall-admin/internal/constants"
	"github.com/petmall-admin/internal/logger"
	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/repository"
)

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductInput 商品表单，同时用于批量导入的单行
type ProductInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Price       string `json:"price" validate:"required,numeric"`
	Category    string `json:"category" validate:"max=50"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Stock       int    `json:"stock" validate:"gte=0"`
	Status      string `json:"status" validate:"omitempty,oneof=上架 下架"`
}

// ProductListInput 商品列表查询
type ProductListInput struct {
	Skip     int
	Limit    int
	Search   string
	Category string
}

// ImportResult 批量导入结果，部分成功时 errors 非空
type ImportResult struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// BatchDeleteResult 批量删除结果
type BatchDeleteResult struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// List 商品列表
func (s *ProductService) List(input ProductListInput) ([]models.Product, int64, repository.Window, error) {
	category := strings.TrimSpace(input.Category)
	if isAllFilter(category) {
		category = ""
	}
	window := repository.Window{Skip: input.Skip, Limit: input.Limit}.Normalize()
	products, total, err := s.productRepo.List(repository.ProductListFilter{
		Window:   window,
		Search:   strings.TrimSpace(input.Search),
		Category: category,
	})
	if err != nil {
		return nil, 0, window, err
	}
	return products, total, window, nil
}

// Get 获取商品
func (s *ProductService) Get(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	product := &models.Product{}
	if err := applyProductInput(product, &input); err != nil {
		return nil, err
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 更新商品
func (s *ProductService) Update(id string, input ProductInput) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := applyProductInput(product, &input); err != nil {
		return nil, err
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}

// BatchDelete 批量删除，不存在的 ID 忽略
func (s *ProductService) BatchDelete(ids []string) (*BatchDeleteResult, error) {
	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil, &FieldError{Field: "product_ids", Message: "is required"}
	}
	deleted, err := s.productRepo.BatchDelete(cleaned)
	if err != nil {
		return nil, err
	}
	return &BatchDeleteResult{
		Message: fmt.Sprintf("Successfully deleted %d products", deleted),
		Deleted: deleted,
	}, nil
}

// Import 逐行导入：合法行单独落库，非法行记录 "Line N: 原因"（N 从 2 起，第 1 行为表头）
func (s *ProductService) Import(rows []ProductInput) *ImportResult {
	result := &ImportResult{Errors: []string{}}
	created := 0
	for i := range rows {
		line := i + 2
		product := &models.Product{}
		if err := applyProductInput(product, &rows[i]); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: %v", line, err))
			continue
		}
		if err := s.productRepo.Create(product); err != nil {
			logger.Warnw("product_import_row_failed", "line", line, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: %v", line, err))
			continue
		}
		created++
	}
	result.Message = fmt.Sprintf("Successfully uploaded %d products", created)
	return result
}

func applyProductInput(product *models.Product, input *ProductInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Price = strings.TrimSpace(input.Price)
	input.Status = strings.TrimSpace(input.Status)
	if err := validateStruct(input); err != nil {
		return err
	}
	price, err := models.ParseMoney(input.Price)
	if err != nil {
		return &FieldError{Field: "price", Message: "must be a number"}
	}
	if price.IsNegative() {
		return &FieldError{Field: "price", Message: "must be >= 0"}
	}
	product.Name = input.Name
	product.Price = price
	product.Category = strings.TrimSpace(input.Category)
	product.Image = strings.TrimSpace(input.Image)
	product.Description = input.Description
	product.Stock = input.Stock
	product.Status = input.Status
	if product.Status == "" {
		product.Status = constants.ProductStatusOnSale
	}
	return nil
}
