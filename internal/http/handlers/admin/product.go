package admin

import (
	handlershared "github.com/petmall-admin/internal/http/handlers/shared"
	"github.com/petmall-admin/internal/http/response"
	"github.com/petmall-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// BatchDeleteProductsRequest 批量删除
type BatchDeleteProductsRequest struct {
	ProductIDs []string `json:"product_ids" binding:"required"`
}

// ImportProductsRequest 批量导入，每行一个商品
type ImportProductsRequest struct {
	Rows []service.ProductInput `json:"rows" binding:"required"`
}

// GetProducts 商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	skip, limit := handlershared.ParseWindow(c)
	products, total, window, err := h.ProductService.List(service.ProductListInput{
		Skip:     skip,
		Limit:    limit,
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, products, total, window.Page(), window.Normalize().Limit)
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseStringParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	product, err := h.ProductService.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseStringParam(c, "id")
	if !ok {
		return
	}
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	product, err := h.ProductService.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseStringParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Message(c, "Product deleted successfully")
}

// BatchDeleteProducts 批量删除商品
func (h *Handler) BatchDeleteProducts(c *gin.Context) {
	var req BatchDeleteProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	result, err := h.ProductService.BatchDelete(req.ProductIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, result)
}

// ImportProducts 批量导入商品；逐行校验，失败行写入 errors，其余照常入库
func (h *Handler) ImportProducts(c *gin.Context) {
	var req ImportProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	result := h.ProductService.Import(req.Rows)
	if len(result.Errors) > 0 {
		requestLog(c).Infow("product_import_partial", "errors", len(result.Errors))
	}
	response.Success(c, result)
}
