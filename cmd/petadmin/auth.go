package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/petmall-admin/internal/adminclient"
	"github.com/petmall-admin/internal/console"

	"github.com/spf13/cobra"
)

func newLoginCmd(c *cli) *cobra.Command {
	var form adminclient.LoginForm
	cmd := &cobra.Command{
		Use:   "login",
		Short: "登录并保存会话",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if form.Password == "" {
				password, err := c.prompt("密码: ")
				if err != nil {
					return err
				}
				form.Password = password
			}
			session, err := console.Login(cmd.Context(), c.anonymousClient(), c.store, form)
			if err != nil {
				return err
			}
			c.Success(fmt.Sprintf("登录成功，欢迎 %s", session.Username()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&form.Identifier, "username", "u", "", "用户名或邮箱")
	cmd.Flags().StringVarP(&form.Password, "password", "p", "", "密码，留空则从标准输入读取")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "清除本地会话",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.store.Load(cmd.Context())
			if err != nil && !errors.Is(err, console.ErrNoSession) {
				return err
			}
			if err := console.Logout(cmd.Context(), c.store, session); err != nil {
				return err
			}
			c.Success("已退出登录")
			return nil
		},
	}
}

func newWhoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "当前登录的管理员",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.authedClient(cmd.Context())
			if err != nil {
				return err
			}
			admin, err := client.Me(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(admin, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "ID\t%d\n", admin.ID)
				fmt.Fprintf(w, "用户名\t%s\n", admin.Username)
				fmt.Fprintf(w, "邮箱\t%s\n", orDash(admin.Email))
				if admin.LastLoginAt != nil {
					fmt.Fprintf(w, "上次登录\t%s\n", formatTime(*admin.LastLoginAt))
				}
			})
		},
	}
}

func newRegisterCmd(c *cli) *cobra.Command {
	var form adminclient.RegisterForm
	cmd := &cobra.Command{
		Use:   "register",
		Short: "注册管理员账号",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if form.Password == "" {
				password, err := c.prompt("密码: ")
				if err != nil {
					return err
				}
				form.Password = password
			}
			admin, err := c.anonymousClient().Register(cmd.Context(), form)
			if err != nil {
				return err
			}
			c.Success(fmt.Sprintf("管理员 %s 注册成功", admin.Username))
			return nil
		},
	}
	cmd.Flags().StringVarP(&form.Username, "username", "u", "", "用户名")
	cmd.Flags().StringVar(&form.Email, "email", "", "邮箱")
	cmd.Flags().StringVarP(&form.Password, "password", "p", "", "密码，留空则从标准输入读取")
	return cmd
}

func (c *cli) prompt(label string) (string, error) {
	fmt.Fprint(c.errOut, label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
