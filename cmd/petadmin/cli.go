package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/petmall-admin/internal/adminclient"
	"github.com/petmall-admin/internal/cache"
	"github.com/petmall-admin/internal/config"
	"github.com/petmall-admin/internal/console"
	"github.com/petmall-admin/internal/constants"
	"github.com/petmall-admin/internal/logger"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// cli 命令共享的运行环境
type cli struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	baseURL    string
	output     string
	assumeYes  bool
	verbose    bool

	cfg   *config.Config
	store console.SessionStore
}

func newCLI(in io.Reader, out, errOut io.Writer) *cli {
	return &cli{in: bufio.NewReader(in), out: out, errOut: errOut}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "petadmin",
		Short:         "宠物商城运营控制台",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "配置文件路径，默认在 . ../ ./etc 下查找 config.yml")
	flags.StringVar(&c.baseURL, "base-url", "", "后端地址，覆盖 console.base_url")
	flags.StringVarP(&c.output, "output", "o", outputTable, "输出格式: table, json, yaml")
	flags.BoolVarP(&c.assumeYes, "yes", "y", false, "跳过确认提示")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "输出调试日志")

	root.AddCommand(
		newLoginCmd(c),
		newLogoutCmd(c),
		newWhoamiCmd(c),
		newRegisterCmd(c),
		newDashboardCmd(c),
		newOrdersCmd(c),
		newShippingCmd(c),
		newVIPCmd(c),
		newUsersCmd(c),
		newProductsCmd(c),
		newCategoriesCmd(c),
		newBannersCmd(c),
	)
	return root
}

func (c *cli) setup() error {
	logger.InitConsole(c.verbose)
	switch c.output {
	case outputTable, outputJSON, outputYAML:
	default:
		return fmt.Errorf("不支持的输出格式: %s", c.output)
	}
	if c.cfg != nil {
		return nil
	}
	cfg, err := config.LoadFrom(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if c.store == nil {
		store, err := newSessionStore(cfg)
		if err != nil {
			return err
		}
		c.store = store
	}
	return nil
}

func newSessionStore(cfg *config.Config) (console.SessionStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Console.SessionBackend)) {
	case "redis":
		client, prefix := cache.NewClient(&cfg.Redis)
		return console.NewRedisStore(client, prefix), nil
	case "", "file":
		return console.NewFileStore(cfg.Console.SessionDir)
	default:
		return nil, fmt.Errorf("不支持的会话存储: %s", cfg.Console.SessionBackend)
	}
}

func (c *cli) resolvedBaseURL() string {
	if strings.TrimSpace(c.baseURL) != "" {
		return c.baseURL
	}
	return c.cfg.Console.BaseURL
}

func (c *cli) clientOptions() []adminclient.Option {
	return []adminclient.Option{adminclient.WithTimeout(c.cfg.Console.RequestTimeout())}
}

// anonymousClient 未登录时使用
func (c *cli) anonymousClient() *adminclient.Client {
	return adminclient.New(c.resolvedBaseURL(), c.clientOptions()...)
}

// authedClient 从会话槽位恢复登录状态
func (c *cli) authedClient(ctx context.Context) (*adminclient.Client, error) {
	session, err := console.Restore(ctx, c.store, time.Now())
	if err != nil {
		return nil, err
	}
	return session.Client(c.baseURL, c.clientOptions()...), nil
}

func (c *cli) options() console.Options {
	return console.Options{
		PageSize: c.cfg.Console.PageSize,
		Debounce: c.cfg.Console.SearchDebounce(),
	}
}

func (c *cli) pageSize() int {
	if c.cfg.Console.PageSize <= 0 {
		return constants.DefaultPageSize
	}
	return c.cfg.Console.PageSize
}

// Confirm 从标准输入读取 y/N
func (c *cli) Confirm(_ context.Context, prompt string) (bool, error) {
	if c.assumeYes {
		return true, nil
	}
	fmt.Fprintf(c.errOut, "%s [y/N]: ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "是":
		return true, nil
	}
	return false, nil
}

// Success 实现 console.Notifier
func (c *cli) Success(message string) {
	if message != "" {
		fmt.Fprintln(c.errOut, "✓", message)
	}
}

// Warning 实现 console.Notifier
func (c *cli) Warning(message string) {
	fmt.Fprintln(c.errOut, "!", message)
}

// Error 实现 console.Notifier
func (c *cli) Error(message string) {
	fmt.Fprintln(c.errOut, "✗", message)
}

// render 按 --output 输出；table 模式调用 table 回调
func (c *cli) render(v interface{}, table func(w *tabwriter.Writer)) error {
	switch c.output {
	case outputJSON:
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(c.out)
		enc.SetIndent(2)
		if err := enc.Encode(toYAMLValue(v)); err != nil {
			return err
		}
		return enc.Close()
	default:
		w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
		table(w)
		return w.Flush()
	}
}

// toYAMLValue 经 JSON 中转，字段名与金额格式和 JSON 输出保持一致
func toYAMLValue(v interface{}) interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return v
	}
	return generic
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func pageFooter(w io.Writer, total int64, page, size int) {
	pages := int64(1)
	if size > 0 && total > 0 {
		pages = (total + int64(size) - 1) / int64(size)
	}
	fmt.Fprintf(w, "\n共 %d 条，第 %d/%d 页\n", total, page, pages)
}
