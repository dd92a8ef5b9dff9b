package provider

import (
	"github.com/petmall-admin/internal/cache"
	"github.com/petmall-admin/internal/config"
	"github.com/petmall-admin/internal/logger"
	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/queue"
	"github.com/petmall-admin/internal/repository"
	"github.com/petmall-admin/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo          repository.AdminRepository
	UserRepo           repository.UserRepository
	OrderRepo          repository.OrderRepository
	ShipmentRepo       repository.ShipmentRepository
	OrderStatusLogRepo repository.OrderStatusLogRepository
	VIPRepo            repository.VIPRepository
	ProductRepo        repository.ProductRepository
	CategoryRepo       repository.CategoryRepository
	BannerRepo         repository.BannerRepository
	DashboardRepo      repository.DashboardRepository

	// Services
	AuthService      *service.AuthService
	OrderService     *service.OrderService
	ShipmentService  *service.ShipmentService
	VIPService       *service.VIPService
	UserService      *service.UserService
	ProductService   *service.ProductService
	CategoryService  *service.CategoryService
	BannerService    *service.BannerService
	DashboardService *service.DashboardService
}

// NewContainer 初始化容器，使用全局数据库连接
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}
	return NewContainerWithDB(cfg, models.DB, queueClient)
}

// NewContainerWithDB 使用指定连接组装仓库与服务，测试中直接传入 sqlite 内存库
func NewContainerWithDB(cfg *config.Config, db *gorm.DB, queueClient *queue.Client) *Container {
	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories(db)

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ShipmentRepo = repository.NewShipmentRepository(db)
	c.OrderStatusLogRepo = repository.NewOrderStatusLogRepository(db)
	c.VIPRepo = repository.NewVIPRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.BannerRepo = repository.NewBannerRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	var publisher service.EventPublisher
	if c.QueueClient != nil {
		publisher = c.QueueClient
	}

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ShipmentRepo, c.OrderStatusLogRepo, publisher)
	c.ShipmentService = service.NewShipmentService(c.ShipmentRepo, c.OrderRepo, publisher)
	c.VIPService = service.NewVIPService(c.VIPRepo)
	c.UserService = service.NewUserService(c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.BannerService = service.NewBannerService(c.BannerRepo)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo, c.OrderRepo)
}

// Close 释放队列客户端
func (c *Container) Close() {
	if c == nil || c.QueueClient == nil {
		return
	}
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("provider_close_queue_client_failed", "error", err)
	}
}
