package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/petmall-admin/internal/adminclient"
	"github.com/petmall-admin/internal/console"

	"github.com/spf13/cobra"
)

func newShippingCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shipping",
		Aliases: []string{"shipments"},
		Short:   "物流管理",
	}
	cmd.AddCommand(
		newShippingListCmd(c),
		newShippingShowCmd(c),
		newShippingAdvanceCmd(c),
		newShippingCorrectCmd(c),
		newShippingCreateCmd(c),
	)
	return cmd
}

func (c *cli) shipmentBoard(cmd *cobra.Command) (*console.ShipmentBoard, *adminclient.Client, error) {
	client, err := c.authedClient(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return console.NewShipmentBoard(client, c, c, c.options()), client, nil
}

func parseShipmentID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("无效的物流 ID: %s", raw)
	}
	return uint(id), nil
}

func newShippingListCmd(c *cli) *cobra.Command {
	var (
		filter console.ShipmentFilter
		page   int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "物流列表",
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, _, err := c.shipmentBoard(cmd)
			if err != nil {
				return err
			}
			defer board.Close()
			ctx := cmd.Context()
			if err := board.Load(ctx, filter, page); err != nil {
				return err
			}
			state := board.State()
			result := adminclient.Page[adminclient.Shipment]{Items: state.Shipments, Total: state.Total, Page: state.Page, Size: state.PageSize}
			return c.render(result, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\t订单号\t收件人\t快递公司\t运单号\t状态\t预计送达")
				for _, s := range state.Shipments {
					eta := "-"
					if s.EstimatedDelivery != nil {
						eta = formatTime(*s.EstimatedDelivery)
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
						s.ID, s.OrderNumber, orDash(s.Customer), orDash(s.Carrier),
						orDash(s.TrackingNumber), s.StatusLabel, eta)
				}
				pageFooter(w, state.Total, state.Page, state.PageSize)
			})
		},
	}
	cmd.Flags().StringVar(&filter.Search, "search", "", "订单号、收件人或运单号")
	cmd.Flags().StringVar(&filter.Status, "status", "", "状态: awaiting_pickup, in_transit, out_for_delivery, delivered")
	cmd.Flags().IntVar(&page, "page", 1, "页码")
	return cmd
}

func newShippingShowCmd(c *cli) *cobra.Command {
	var byOrder bool
	cmd := &cobra.Command{
		Use:   "show <shipment-id|order-id>",
		Short: "物流详情与时间线",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, client, err := c.shipmentBoard(cmd)
			if err != nil {
				return err
			}
			defer board.Close()
			var shipment *adminclient.Shipment
			if byOrder {
				shipment, err = client.GetShipmentByOrder(cmd.Context(), args[0])
			} else {
				id, perr := parseShipmentID(args[0])
				if perr != nil {
					return perr
				}
				shipment, err = board.OpenDetail(cmd.Context(), id)
			}
			if err != nil {
				return err
			}
			return c.renderShipment(shipment)
		},
	}
	cmd.Flags().BoolVar(&byOrder, "order", false, "按订单 ID 查询")
	return cmd
}

func newShippingAdvanceCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "advance <shipment-id>",
		Short: "推进到下一物流阶段",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseShipmentID(args[0])
			if err != nil {
				return err
			}
			board, _, err := c.shipmentBoard(cmd)
			if err != nil {
				return err
			}
			defer board.Close()
			if _, err := board.OpenDetail(cmd.Context(), id); err != nil {
				return err
			}
			if err := board.Advance(cmd.Context(), id); err != nil {
				return err
			}
			return c.renderShipment(board.State().Detail)
		},
	}
}

func newShippingCorrectCmd(c *cli) *cobra.Command {
	var (
		carrier, tracking, status string
		eta                       string
	)
	cmd := &cobra.Command{
		Use:   "correct <shipment-id>",
		Short: "修正物流信息（快递公司、运单号、预计送达、状态）",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseShipmentID(args[0])
			if err != nil {
				return err
			}
			var form adminclient.ShipmentCorrection
			flags := cmd.Flags()
			if flags.Changed("carrier") {
				form.Carrier = &carrier
			}
			if flags.Changed("tracking") {
				form.TrackingNumber = &tracking
			}
			if flags.Changed("status") {
				form.Status = &status
			}
			if flags.Changed("eta") {
				at, err := time.ParseInLocation("2006-01-02", eta, time.Local)
				if err != nil {
					return fmt.Errorf("预计送达日期格式应为 YYYY-MM-DD: %w", err)
				}
				form.EstimatedDelivery = &at
			}
			board, _, err := c.shipmentBoard(cmd)
			if err != nil {
				return err
			}
			defer board.Close()
			if _, err := board.OpenDetail(cmd.Context(), id); err != nil {
				return err
			}
			if err := board.Correct(cmd.Context(), id, form); err != nil {
				return err
			}
			return c.renderShipment(board.State().Detail)
		},
	}
	cmd.Flags().StringVar(&carrier, "carrier", "", "快递公司")
	cmd.Flags().StringVar(&tracking, "tracking", "", "运单号")
	cmd.Flags().StringVar(&status, "status", "", "直接设置物流状态")
	cmd.Flags().StringVar(&eta, "eta", "", "预计送达日期 YYYY-MM-DD")
	return cmd
}

func newShippingCreateCmd(c *cli) *cobra.Command {
	var form adminclient.ShipmentForm
	cmd := &cobra.Command{
		Use:   "create",
		Short: "为订单补建物流记录",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			shipment, err := client.CreateShipment(cmd.Context(), form)
			if err != nil {
				return err
			}
			c.Success("物流记录已创建")
			return c.renderShipment(shipment)
		},
	}
	cmd.Flags().StringVar(&form.OrderID, "order", "", "订单 ID")
	cmd.Flags().StringVar(&form.Carrier, "carrier", "", "快递公司")
	cmd.Flags().StringVar(&form.TrackingNumber, "tracking", "", "运单号")
	_ = cmd.MarkFlagRequired("order")
	return cmd
}

func (c *cli) renderShipment(s *adminclient.Shipment) error {
	if s == nil {
		return nil
	}
	return c.render(s, func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "物流 ID\t%d\n", s.ID)
		fmt.Fprintf(w, "订单号\t%s\n", s.OrderNumber)
		fmt.Fprintf(w, "收件人\t%s\n", orDash(s.Customer))
		fmt.Fprintf(w, "快递公司\t%s\n", orDash(s.Carrier))
		fmt.Fprintf(w, "运单号\t%s\n", orDash(s.TrackingNumber))
		fmt.Fprintf(w, "状态\t%s\n", s.StatusLabel)
		fmt.Fprintf(w, "发货时间\t%s\n", formatTime(s.ShippedAt))
		if s.EstimatedDelivery != nil {
			fmt.Fprintf(w, "预计送达\t%s\n", formatTime(*s.EstimatedDelivery))
		}
		for _, step := range s.Timeline {
			mark := "○"
			if step.Done {
				mark = "●"
			}
			fmt.Fprintf(w, "时间线\t%s %s\n", mark, step.Label)
		}
		if s.Next != nil {
			fmt.Fprintf(w, "下一步\t%s → %s\n", s.Next.Label, s.Next.Target)
		}
	})
}
