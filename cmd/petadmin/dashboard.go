package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/petmall-admin/internal/adminclient"

	"github.com/spf13/cobra"
)

type dashboardView struct {
	Stats  *adminclient.DashboardStats `json:"stats"`
	Recent []adminclient.RecentOrder   `json:"recent_orders"`
}

func newDashboardCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "经营总览与最近订单",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			stats, err := client.DashboardStats(cmd.Context())
			if err != nil {
				return err
			}
			recent, err := client.RecentOrders(cmd.Context())
			if err != nil {
				return err
			}
			view := dashboardView{Stats: stats, Recent: recent}
			return c.render(view, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "总销售额\t¥%s\n", stats.TotalSales.StringFixed(2))
				fmt.Fprintf(w, "订单数\t%d\n", stats.TotalOrders)
				fmt.Fprintf(w, "用户数\t%d\n", stats.TotalUsers)
				fmt.Fprintf(w, "商品数\t%d\n", stats.TotalProducts)
				fmt.Fprintln(w)
				fmt.Fprintln(w, "订单\t客户\t商品\t金额\t状态")
				for _, o := range recent {
					fmt.Fprintf(w, "%s\t%s\t%s\t¥%s\t%s\n", o.ID, orDash(o.Customer), orDash(o.Product), o.Amount.StringFixed(2), o.StatusLabel)
				}
			})
		},
	}
}
