package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/petmall-admin/internal/adminclient"
	"github.com/petmall-admin/internal/console"
	"github.com/petmall-admin/internal/lifecycle"

	"github.com/spf13/cobra"
)

func newOrdersCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "订单管理",
	}
	cmd.AddCommand(newOrdersListCmd(c), newOrdersShowCmd(c), newOrdersTransitionCmd(c))
	return cmd
}

func (c *cli) orderBoard(cmd *cobra.Command) (*console.OrderBoard, error) {
	client, err := c.authedClient(cmd.Context())
	if err != nil {
		return nil, err
	}
	return console.NewOrderBoard(client, c, c, c.options()), nil
}

func newOrdersListCmd(c *cli) *cobra.Command {
	var (
		filter console.OrderFilter
		page   int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "订单列表",
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := c.orderBoard(cmd)
			if err != nil {
				return err
			}
			defer board.Close()
			ctx := cmd.Context()
			if err := board.Load(ctx, filter, page); err != nil {
				return err
			}
			state := board.State()
			result := adminclient.Page[adminclient.Order]{Items: state.Orders, Total: state.Total, Page: state.Page, Size: state.PageSize}
			return c.render(result, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\t订单号\t客户\t金额\t状态\t下单时间")
				for _, o := range state.Orders {
					fmt.Fprintf(w, "%s\t%s\t%s\t¥%s\t%s\t%s\n",
						o.ID, o.OrderNumber, orDash(o.Customer), o.TotalAmount.StringFixed(2),
						orDash(o.StatusLabel), formatTime(o.CreatedAt))
				}
				pageFooter(w, state.Total, state.Page, state.PageSize)
			})
		},
	}
	cmd.Flags().StringVar(&filter.Status, "status", "", "状态筛选: pending, paid, shipped, completed, cancelled")
	cmd.Flags().StringVar(&filter.OrderNumber, "search", "", "订单号关键字")
	cmd.Flags().StringVar(&filter.SortBy, "sort", "", "排序: amount_desc, amount_asc")
	cmd.Flags().IntVar(&page, "page", 1, "页码")
	return cmd
}

func newOrdersShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-id>",
		Short: "订单详情",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := c.orderBoard(cmd)
			if err != nil {
				return err
			}
			defer board.Close()
			detail, err := board.OpenDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.renderOrderDetail(detail)
		},
	}
}

func newOrdersTransitionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "transition <order-id> <action|status>",
		Short: "订单状态流转",
		Long: `按动作名或目标状态流转订单，执行前需要确认。

动作: mark_paid (确认收款), ship (立即发货), complete (完成订单), cancel (取消订单)`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := c.orderBoard(cmd)
			if err != nil {
				return err
			}
			defer board.Close()
			ctx := cmd.Context()
			id := args[0]
			if _, err := board.OpenDetail(ctx, id); err != nil {
				return err
			}
			target, err := resolveOrderTarget(board, id, args[1])
			if err != nil {
				return err
			}
			if err := board.Transition(ctx, id, target); err != nil {
				return err
			}
			return c.renderOrderDetail(board.State().Detail)
		},
	}
}

// resolveOrderTarget 参数既可以是动作名也可以是目标状态
func resolveOrderTarget(board *console.OrderBoard, id, arg string) (lifecycle.OrderStatus, error) {
	actions, err := board.Offered(id)
	if err != nil {
		return "", err
	}
	name := strings.ToLower(strings.TrimSpace(arg))
	for _, action := range actions {
		if string(action.Name) == name {
			return action.Target, nil
		}
	}
	target, err := lifecycle.ParseOrderStatus(arg)
	if err != nil {
		return "", fmt.Errorf("%w: %s", console.ErrNotOffered, arg)
	}
	return target, nil
}

func (c *cli) renderOrderDetail(detail *adminclient.OrderDetail) error {
	if detail == nil {
		return nil
	}
	return c.render(detail, func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "订单号\t%s\n", detail.OrderNumber)
		fmt.Fprintf(w, "状态\t%s\n", detail.StatusLabel)
		fmt.Fprintf(w, "客户\t%s\n", orDash(detail.Customer))
		fmt.Fprintf(w, "支付方式\t%s\n", orDash(detail.PaymentMethod))
		fmt.Fprintf(w, "金额\t¥%s\n", detail.TotalAmount.StringFixed(2))
		fmt.Fprintf(w, "收货地址\t%s\n", orDash(detail.AddressLine))
		fmt.Fprintf(w, "下单时间\t%s\n", formatTime(detail.CreatedAt))
		for _, item := range detail.Items {
			fmt.Fprintf(w, "商品\t%s x%d  ¥%s\n", item.ProductName, item.Quantity, item.Price.StringFixed(2))
		}
		if detail.Shipment != nil {
			fmt.Fprintf(w, "物流\t%s %s (%s)\n", orDash(detail.Shipment.Carrier), orDash(detail.Shipment.TrackingNumber), detail.Shipment.StatusLabel)
		}
		for _, log := range detail.Logs {
			fmt.Fprintf(w, "流水\t%s  %s → %s  %s\n", formatTime(log.CreatedAt),
				lifecycle.OrderLabel(log.From), lifecycle.OrderLabel(log.To), orDash(log.Operator))
		}
		if len(detail.Actions) > 0 {
			names := make([]string, 0, len(detail.Actions))
			for _, a := range detail.Actions {
				names = append(names, fmt.Sprintf("%s(%s)", a.Name, a.Label))
			}
			fmt.Fprintf(w, "可执行\t%s\n", strings.Join(names, "  "))
		}
	})
}
