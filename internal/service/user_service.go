package service

import (
	"strings"

	"github.com/petmall-admin/internal/constants"
	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/repository"

	"github.com/shopspring/decimal"
)

const unknownAddress = "未知地址"

// UserService 商城用户管理
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UserView 管理端用户视图
type UserView struct {
	models.User
	Status      string       `json:"status"`
	OrdersCount int64        `json:"orders_count"`
	TotalSpent  models.Money `json:"total_spent"`
	Address     string       `json:"address"`
}

// UserListInput 用户列表查询
type UserListInput struct {
	Skip   int
	Limit  int
	Search string
	Status string
}

// UserInput 创建/更新用户
type UserInput struct {
	Username   string  `json:"username" validate:"required,max=50"`
	Email      string  `json:"email" validate:"required,email,max=100"`
	Phone      string  `json:"phone" validate:"max=20"`
	Avatar     string  `json:"avatar" validate:"max=255"`
	Password   string  `json:"password" validate:"omitempty,min=6"`
	VIPLevelID *string `json:"vip_level_id"`
}

// List 用户列表，附带订单数、消费总额与最近收货地址
func (s *UserService) List(input UserListInput) ([]UserView, int64, repository.Window, error) {
	active, err := parseUserStatusFilter(input.Status)
	if err != nil {
		return nil, 0, repository.Window{}, err
	}
	window := repository.Window{Skip: input.Skip, Limit: input.Limit}.Normalize()
	users, total, err := s.userRepo.List(repository.UserListFilter{
		Window:   window,
		Search:   strings.TrimSpace(input.Search),
		IsActive: active,
	})
	if err != nil {
		return nil, 0, window, err
	}
	views, err := s.buildViews(users)
	if err != nil {
		return nil, 0, window, err
	}
	return views, total, window, nil
}

// Get 获取用户
func (s *UserService) Get(id string) (*UserView, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	views, err := s.buildViews([]models.User{*user})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Create 创建用户
func (s *UserService) Create(input UserInput) (*UserView, error) {
	if err := s.validate(&input, ""); err != nil {
		return nil, err
	}
	user := &models.User{IsActive: true}
	applyUserInput(user, input)
	if input.Password != "" {
		hash, err := HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return s.Get(user.ID)
}

// Update 更新用户资料
func (s *UserService) Update(id string, input UserInput) (*UserView, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := s.validate(&input, id); err != nil {
		return nil, err
	}
	applyUserInput(user, input)
	if input.Password != "" {
		hash, err := HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// UpdateStatus 切换 活跃/非活跃
func (s *UserService) UpdateStatus(id string, status string) (*UserView, error) {
	var active bool
	switch strings.TrimSpace(status) {
	case constants.UserStatusActive, "active":
		active = true
	case constants.UserStatusInactive, "inactive":
		active = false
	default:
		return nil, ErrUserStatusInvalid
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := s.userRepo.UpdateActive(id, active); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete 删除用户
func (s *UserService) Delete(id string) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(id)
}

func (s *UserService) validate(input *UserInput, excludeID string) error {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if err := validateStruct(input); err != nil {
		return err
	}
	count, err := s.userRepo.CountByUsernameOrEmail(input.Username, input.Email, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrUserExists
	}
	return nil
}

func (s *UserService) buildViews(users []models.User) ([]UserView, error) {
	ids := make([]string, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}
	aggregates, err := s.userRepo.Aggregates(ids)
	if err != nil {
		return nil, err
	}
	addresses, err := s.userRepo.LatestAddresses(ids)
	if err != nil {
		return nil, err
	}
	views := make([]UserView, 0, len(users))
	for _, user := range users {
		view := UserView{User: user, Status: userStatusLabel(user.IsActive), Address: unknownAddress}
		if agg, ok := aggregates[user.ID]; ok {
			view.OrdersCount = agg.OrdersCount
			view.TotalSpent = models.NewMoneyFromDecimal(decimal.NewFromFloat(agg.TotalSpent))
		}
		if addr, ok := addresses[user.ID]; ok {
			view.Address = addr.Line()
		}
		views = append(views, view)
	}
	return views, nil
}

func applyUserInput(user *models.User, input UserInput) {
	user.Username = input.Username
	user.Email = input.Email
	user.Phone = strings.TrimSpace(input.Phone)
	user.Avatar = strings.TrimSpace(input.Avatar)
	if input.VIPLevelID != nil {
		id := strings.TrimSpace(*input.VIPLevelID)
		if id == "" {
			user.VIPLevelID = nil
		} else {
			user.VIPLevelID = &id
		}
		user.VIPLevel = nil
	}
}

func parseUserStatusFilter(raw string) (*bool, error) {
	switch strings.TrimSpace(raw) {
	case "", constants.FilterAll, constants.FilterAllZh, constants.FilterAllStatus:
		return nil, nil
	case constants.UserStatusActive, "active":
		active := true
		return &active, nil
	case constants.UserStatusInactive, "inactive":
		active := false
		return &active, nil
	}
	return nil, ErrUserStatusInvalid
}

func userStatusLabel(active bool) string {
	if active {
		return constants.UserStatusActive
	}
	return constants.UserStatusInactive
}
