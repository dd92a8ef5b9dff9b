package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/petmall-admin/internal/adminclient"
	"github.com/petmall-admin/internal/console"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newProductsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "商品管理",
	}

	var (
		query adminclient.ProductQuery
		page  int
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "商品列表",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			query.Limit = c.pageSize()
			if page > 1 {
				query.Skip = (page - 1) * query.Limit
			}
			result, err := client.ListProducts(cmd.Context(), query)
			if err != nil {
				return err
			}
			return c.render(result, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\t名称\t分类\t价格\t库存\t销量\t状态")
				for _, p := range result.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t¥%s\t%d\t%d\t%s\n",
						p.ID, p.Name, orDash(p.Category), p.Price.StringFixed(2), p.Stock, p.Sales, p.Status)
				}
				pageFooter(w, result.Total, result.Page, result.Size)
			})
		},
	}
	list.Flags().StringVar(&query.Search, "search", "", "名称关键字")
	list.Flags().StringVar(&query.Category, "category", "", "分类")
	list.Flags().IntVar(&page, "page", 1, "页码")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "从 YAML/JSON 文件批量导入商品",
		Long:  "文件内容为商品行数组，每行字段: name, price, category, image, description, stock, status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readProductRows(args[0])
			if err != nil {
				return err
			}
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			dialog := console.NewImportDialog(client, c, nil)
			dialog.Open()
			result, err := dialog.Submit(cmd.Context(), rows)
			if err != nil {
				return err
			}
			if !dialog.IsOpen() {
				return nil
			}
			if err := c.render(result, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "错误报告")
				for _, line := range dialog.Errors() {
					fmt.Fprintf(w, "  %s\n", line)
				}
			}); err != nil {
				return err
			}
			return errors.New("部分商品导入失败")
		},
	}

	remove := &cobra.Command{
		Use:   "delete <product-id>...",
		Short: "删除商品，可一次删除多个",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return deleteOneProduct(cmd.Context(), c, client, args[0])
			}
			_, err = console.BatchDeleteProducts(cmd.Context(), client, c, c, args)
			return err
		},
	}

	cmd.AddCommand(list, importCmd, remove)
	return cmd
}

func deleteOneProduct(ctx context.Context, c *cli, client *adminclient.Client, id string) error {
	ok, err := c.Confirm(ctx, "确定要删除这个商品吗？")
	if err != nil {
		return err
	}
	if !ok {
		return console.ErrDeclined
	}
	if err := client.DeleteProduct(ctx, id); err != nil {
		return err
	}
	c.Success("商品删除成功")
	return nil
}

// readProductRows YAML 是 JSON 的超集，两种格式都按 YAML 读，再经 JSON 标签映射到表单
func readProductRows(path string) ([]adminclient.ProductForm, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("解析导入文件失败: %w", err)
	}
	for _, row := range raw {
		// 价格统一按字符串提交，由后端逐行校验
		if price, ok := row["price"]; ok && price != nil {
			row["price"] = fmt.Sprint(price)
		}
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var rows []adminclient.ProductForm
	if err := json.Unmarshal(encoded, &rows); err != nil {
		return nil, fmt.Errorf("解析导入文件失败: %w", err)
	}
	return rows, nil
}

func newCategoriesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "商品分类",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "分类列表",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			categories, err := client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(categories, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\t名称\t商品数\t排序\t启用")
				for _, cat := range categories {
					fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%t\n", cat.ID, cat.Name, cat.ProductCount, cat.SortOrder, cat.IsActive)
				}
			})
		},
	})

	var form adminclient.CategoryForm
	create := &cobra.Command{
		Use:   "create",
		Short: "新增分类",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			category, err := client.CreateCategory(cmd.Context(), form)
			if err != nil {
				return err
			}
			c.Success(fmt.Sprintf("分类 %s 已创建", category.Name))
			return nil
		},
	}
	create.Flags().StringVar(&form.Name, "name", "", "分类名称")
	create.Flags().StringVar(&form.Description, "description", "", "描述")
	create.Flags().IntVar(&form.SortOrder, "sort", 0, "排序")
	cmd.AddCommand(create)
	return cmd
}

func newBannersCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "banners",
		Short: "首页轮播图",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "轮播图列表",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			banners, err := client.ListBanners(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(banners, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\t标题\t排序\t启用\t链接")
				for _, b := range banners {
					fmt.Fprintf(w, "%d\t%s\t%d\t%t\t%s\n", b.ID, b.Title, b.SortOrder, b.IsActive, orDash(b.LinkURL))
				}
			})
		},
	})
	return cmd
}
