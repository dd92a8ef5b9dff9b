package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/petmall-admin/internal/config"
	"github.com/petmall-admin/internal/logger"
	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/provider"
	"github.com/petmall-admin/internal/service"
)

// 演示数据：宠物用品商城
func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "配置文件路径")
	flag.Parse()

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置解析失败: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	log := logger.S()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		log.Fatalw("seed_database_init_failed", "error", err)
	}
	if err := models.AutoMigrate(); err != nil {
		log.Fatalw("seed_database_migrate_failed", "error", err)
	}

	var existing int64
	if err := models.DB.Model(&models.Product{}).Count(&existing).Error; err != nil {
		log.Fatalw("seed_count_products_failed", "error", err)
	}
	if existing > 0 {
		log.Infow("seed_skipped", "reason", "products already present", "products", existing)
		return
	}

	c := provider.NewContainerWithDB(cfg, models.DB, nil)
	if err := seed(c, time.Now()); err != nil {
		log.Fatalw("seed_failed", "error", err)
	}
	log.Infow("seed_completed")
}

func seed(c *provider.Container, now time.Time) error {
	active := true
	categories := []service.CategoryInput{
		{Name: "狗狗主粮", Description: "全犬种干粮与湿粮", Icon: "🐶", Color: "orange", SortOrder: 1, IsActive: &active},
		{Name: "猫咪用品", Description: "猫砂、猫抓板与玩具", Icon: "🐱", Color: "pink", SortOrder: 2, IsActive: &active},
		{Name: "水族", Description: "鱼缸、鱼粮与造景", Icon: "🐠", Color: "blue", SortOrder: 3, IsActive: &active},
		{Name: "小宠", Description: "仓鼠、兔子用品", Icon: "🐹", Color: "green", SortOrder: 4, IsActive: &active},
	}
	for _, input := range categories {
		if _, err := c.CategoryService.Create(input); err != nil {
			return fmt.Errorf("create category %s: %w", input.Name, err)
		}
	}

	productInputs := []service.ProductInput{
		{Name: "成犬鸡肉粮 10kg", Price: "268.00", Category: "狗狗主粮", Stock: 120, Status: "上架"},
		{Name: "幼犬羊奶粮 2kg", Price: "89.90", Category: "狗狗主粮", Stock: 60, Status: "上架"},
		{Name: "豆腐猫砂 6L", Price: "39.90", Category: "猫咪用品", Stock: 300, Status: "上架"},
		{Name: "瓦楞纸猫抓板", Price: "25.00", Category: "猫咪用品", Stock: 80, Status: "上架"},
		{Name: "逗猫棒套装", Price: "19.90", Category: "猫咪用品", Stock: 0, Status: "下架"},
		{Name: "超白玻璃鱼缸 60cm", Price: "399.00", Category: "水族", Stock: 15, Status: "上架"},
		{Name: "仓鼠跑轮", Price: "45.00", Category: "小宠", Stock: 40, Status: "上架"},
	}
	products := make([]*models.Product, 0, len(productInputs))
	for _, input := range productInputs {
		product, err := c.ProductService.Create(input)
		if err != nil {
			return fmt.Errorf("create product %s: %w", input.Name, err)
		}
		products = append(products, product)
	}

	vipInputs := []service.VIPInput{
		{Name: "普通会员", Level: 0, Discount: 100, MinSpend: models.MustMoney("0"), Color: "gray", Icon: "🐾", Benefits: []string{"生日优惠券"}},
		{Name: "白银会员", Level: 1, Discount: 95, MinSpend: models.MustMoney("500"), Color: "silver", Icon: "🥈", Benefits: []string{"95 折", "免运费"}},
		{Name: "黄金会员", Level: 2, Discount: 90, MinSpend: models.MustMoney("2000"), Color: "gold", Icon: "🥇", Benefits: []string{"9 折", "免运费", "专属客服"}},
	}
	levels := make([]*models.VIPLevel, 0, len(vipInputs))
	for _, input := range vipInputs {
		level, err := c.VIPService.Create(input)
		if err != nil {
			return fmt.Errorf("create vip %s: %w", input.Name, err)
		}
		levels = append(levels, level)
	}

	userInputs := []service.UserInput{
		{Username: "zhangsan", Email: "zhangsan@petmall.test", Phone: "13800000001", Password: "petmall123", VIPLevelID: &levels[2].ID},
		{Username: "lisi", Email: "lisi@petmall.test", Phone: "13800000002", Password: "petmall123", VIPLevelID: &levels[1].ID},
		{Username: "wangwu", Email: "wangwu@petmall.test", Phone: "13800000003", Password: "petmall123"},
	}
	users := make([]*service.UserView, 0, len(userInputs))
	for _, input := range userInputs {
		user, err := c.UserService.Create(input)
		if err != nil {
			return fmt.Errorf("create user %s: %w", input.Username, err)
		}
		users = append(users, user)
	}

	addresses := []models.AddressSnapshot{
		{Name: "张三", Phone: "13800000001", Province: "浙江省", City: "杭州市", District: "西湖区", Detail: "文三路 90 号"},
		{Name: "李四", Phone: "13800000002", Province: "上海市", City: "上海市", District: "浦东新区", Detail: "世纪大道 100 号"},
		{Name: "王五", Phone: "13800000003", Province: "广东省", City: "深圳市", District: "南山区", Detail: "科技园南路 8 号"},
	}
	// 每单目标状态沿合法路径逐步推进
	paths := [][]string{
		{},
		{"paid"},
		{"paid", "shipped"},
		{"paid", "shipped", "completed"},
		{"cancelled"},
		{"paid", "shipped"},
	}
	for i, path := range paths {
		user := users[i%len(users)]
		product := products[i%len(products)]
		order, err := c.OrderService.Create(service.CreateOrderInput{
			UserID:        user.ID,
			PaymentMethod: []string{"微信支付", "支付宝"}[i%2],
			Address:       addresses[i%len(addresses)],
			Items:         []service.CreateOrderItem{{ProductID: product.ID, Quantity: i%3 + 1, Price: product.Price}},
			CreatedAt:     now.AddDate(0, -(i % 6), -i),
		})
		if err != nil {
			return fmt.Errorf("create order %d: %w", i, err)
		}
		for _, status := range path {
			if _, err := c.OrderService.UpdateOrderStatus(order.ID, status, "seed"); err != nil {
				return fmt.Errorf("move order %s to %s: %w", order.OrderNo, status, err)
			}
		}
		if len(path) > 0 && path[len(path)-1] == "shipped" && i == len(paths)-1 {
			shipment, err := c.ShipmentService.GetByOrder(order.ID)
			if err != nil {
				return err
			}
			if _, err := c.ShipmentService.Advance(shipment.ID, ""); err != nil {
				return err
			}
		}
	}

	banners := []service.BannerInput{
		{Title: "新客首单立减", ImageURL: "/static/banners/new-user.png", LinkURL: "/promotions/new", SortOrder: 1, IsActive: &active},
		{Title: "猫砂囤货节", ImageURL: "/static/banners/cat-litter.png", LinkURL: "/categories/猫咪用品", SortOrder: 2, IsActive: &active},
	}
	for _, input := range banners {
		if _, err := c.BannerService.Create(input); err != nil {
			return fmt.Errorf("create banner %s: %w", input.Title, err)
		}
	}
	return nil
}
