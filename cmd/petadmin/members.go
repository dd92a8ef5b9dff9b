package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/petmall-admin/internal/adminclient"
	"github.com/petmall-admin/internal/console"
	"github.com/petmall-admin/internal/constants"

	"github.com/spf13/cobra"
)

func newVIPCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vip",
		Short: "会员等级管理",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "会员等级列表",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			panel := console.NewVIPPanel(client, c, c)
			if err := panel.Refresh(cmd.Context()); err != nil {
				return err
			}
			levels := panel.Levels()
			return c.render(levels, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\t名称\t等级\t折扣\t最低消费\t会员数\t本月营收")
				for _, l := range levels {
					fmt.Fprintf(w, "%s\t%s\t%d\t%d%%\t¥%s\t%d\t¥%s\n",
						l.ID, l.Name, l.Level, l.Discount, l.MinSpend.StringFixed(2),
						l.MemberCount, l.MonthlyRevenue.StringFixed(2))
				}
			})
		},
	}

	var form adminclient.VIPForm
	create := &cobra.Command{
		Use:   "create",
		Short: "新增会员等级",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			level, err := client.CreateVIPLevel(cmd.Context(), form)
			if err != nil {
				return err
			}
			c.Success("会员等级添加成功")
			return c.render(level, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "%s\t%s\tLv.%d\n", level.ID, level.Name, level.Level)
			})
		},
	}
	create.Flags().StringVar(&form.Name, "name", "", "等级名称")
	create.Flags().IntVar(&form.Level, "level", 0, "等级序号")
	create.Flags().IntVar(&form.Discount, "discount", 100, "折扣百分比")
	create.Flags().StringVar(&form.MinSpend, "min-spend", "", "最低消费")
	create.Flags().StringVar(&form.Color, "color", "", "展示颜色")
	create.Flags().StringSliceVar(&form.Benefits, "benefit", nil, "会员权益，可重复")

	remove := &cobra.Command{
		Use:   "delete <vip-level-id>",
		Short: "删除会员等级（仍有会员时拒绝）",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			panel := console.NewVIPPanel(client, c, c)
			if err := panel.Refresh(cmd.Context()); err != nil {
				return err
			}
			return panel.Delete(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, create, remove)
	return cmd
}

func newUsersCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "用户管理",
	}

	var (
		query adminclient.UserQuery
		page  int
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "用户列表",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			size := c.pageSize()
			query.Limit = size
			if page > 1 {
				query.Skip = (page - 1) * size
			}
			result, err := client.ListUsers(cmd.Context(), query)
			if err != nil {
				return err
			}
			return c.render(result, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\t用户名\t邮箱\t手机\t状态\t订单数\t累计消费")
				for _, u := range result.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t¥%s\n",
						u.ID, u.Username, u.Email, orDash(u.Phone), u.Status,
						u.OrdersCount, u.TotalSpent.StringFixed(2))
				}
				pageFooter(w, result.Total, result.Page, result.Size)
			})
		},
	}
	list.Flags().StringVar(&query.Search, "search", "", "用户名、邮箱或手机号")
	list.Flags().StringVar(&query.Status, "status", "", "状态: 活跃 / 非活跃")
	list.Flags().IntVar(&page, "page", 1, "页码")

	status := &cobra.Command{
		Use:   "status <user-id> <活跃|非活跃>",
		Short: "启用或停用用户",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(args[1])
			if target != constants.UserStatusActive && target != constants.UserStatusInactive {
				return fmt.Errorf("状态只能是 %s 或 %s", constants.UserStatusActive, constants.UserStatusInactive)
			}
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.confirmOrDecline(cmd, fmt.Sprintf("确定将用户状态改为 %s 吗？", target)); err != nil {
				return err
			}
			user, err := client.UpdateUserStatus(cmd.Context(), args[0], target)
			if err != nil {
				return err
			}
			verb := "停用"
			if user.IsActive {
				verb = "启用"
			}
			c.Success(fmt.Sprintf("用户 %s 已%s", user.Username, verb))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "delete <user-id>",
		Short: "删除用户",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.confirmOrDecline(cmd, "确定要删除这个用户吗？"); err != nil {
				return err
			}
			if err := client.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			c.Success("用户删除成功")
			return nil
		},
	}

	cmd.AddCommand(list, status, remove)
	return cmd
}

func (c *cli) confirmOrDecline(cmd *cobra.Command, prompt string) error {
	ok, err := c.Confirm(cmd.Context(), prompt)
	if err != nil {
		return err
	}
	if !ok {
		return console.ErrDeclined
	}
	return nil
}
