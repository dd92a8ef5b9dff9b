package adminclient

import (
	"context"
	"fmt"
	"net/url"
)

// ProductQuery 商品列表查询
type ProductQuery struct {
	Skip     int
	Limit    int
	Search   string
	Category string
}

// ListProducts 商品列表
func (c *Client) ListProducts(ctx context.Context, q ProductQuery) (*Page[Product], error) {
	v := windowValues(q.Skip, q.Limit)
	setIf(v, "search", q.Search)
	setIf(v, "category", q.Category)
	var page Page[Product]
	if err := c.get(ctx, "/admin/products", v, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProduct 商品详情
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.get(ctx, "/admin/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct 创建商品
func (c *Client) CreateProduct(ctx context.Context, form ProductForm) (*Product, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	var product Product
	if err := c.post(ctx, "/admin/products", form, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct 更新商品
func (c *Client) UpdateProduct(ctx context.Context, id string, form ProductForm) (*Product, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	var product Product
	if err := c.put(ctx, "/admin/products/"+url.PathEscape(id), form, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct 删除商品
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/products/"+url.PathEscape(id), nil)
}

// BatchDeleteProducts 批量删除商品
func (c *Client) BatchDeleteProducts(ctx context.Context, ids []string) (*BatchDeleteResult, error) {
	if len(ids) == 0 {
		return nil, &ValidationError{Fields: map[string]string{"product_ids": "不能为空"}}
	}
	var result BatchDeleteResult
	if err := c.post(ctx, "/admin/products/batch-delete", map[string][]string{"product_ids": ids}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ImportProducts 批量导入；单行的校验由后端逐行完成并写入 errors
func (c *Client) ImportProducts(ctx context.Context, rows []ProductForm) (*ImportResult, error) {
	if len(rows) == 0 {
		return nil, &ValidationError{Fields: map[string]string{"rows": "不能为空"}}
	}
	var result ImportResult
	if err := c.post(ctx, "/admin/products/import", map[string][]ProductForm{"rows": rows}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListCategories 分类列表
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.get(ctx, "/admin/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory 创建分类
func (c *Client) CreateCategory(ctx context.Context, form CategoryForm) (*Category, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	var category Category
	if err := c.post(ctx, "/admin/categories", form, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory 更新分类
func (c *Client) UpdateCategory(ctx context.Context, id uint, form CategoryForm) (*Category, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	var category Category
	if err := c.put(ctx, fmt.Sprintf("/admin/categories/%d", id), form, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory 删除分类
func (c *Client) DeleteCategory(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/admin/categories/%d", id), nil)
}

// ListBanners 轮播图列表
func (c *Client) ListBanners(ctx context.Context) ([]Banner, error) {
	var banners []Banner
	if err := c.get(ctx, "/admin/banners", nil, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// CreateBanner 创建轮播图
func (c *Client) CreateBanner(ctx context.Context, form BannerForm) (*Banner, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	var banner Banner
	if err := c.post(ctx, "/admin/banners", form, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

// UpdateBanner 更新轮播图
func (c *Client) UpdateBanner(ctx context.Context, id uint, form BannerForm) (*Banner, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	var banner Banner
	if err := c.put(ctx, fmt.Sprintf("/admin/banners/%d", id), form, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

// DeleteBanner 删除轮播图
func (c *Client) DeleteBanner(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/admin/banners/%d", id), nil)
}
