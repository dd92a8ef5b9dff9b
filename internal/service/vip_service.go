package service

import (
	"strings"
	"time"

	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/repository"
)

// VIPService 会员等级服务
type VIPService struct {
	vipRepo repository.VIPRepository
	now     func() time.Time
}

// NewVIPService 创建会员等级服务
func NewVIPService(vipRepo repository.VIPRepository) *VIPService {
	return &VIPService{vipRepo: vipRepo, now: time.Now}
}

// VIPInput 创建/更新等级
type VIPInput struct {
	Name     string       `json:"name" validate:"required,max=50"`
	Level    int          `json:"level" validate:"gte=0"`
	Discount int          `json:"discount" validate:"gte=0,lte=100"`
	MinSpend models.Money `json:"min_spend"`
	Color    string       `json:"color" validate:"max=20"`
	Icon     string       `json:"icon" validate:"max=20"`
	Benefits []string     `json:"benefits"`
}

// List 按等级升序返回，附带会员数与本月营收
func (s *VIPService) List() ([]models.VIPLevel, error) {
	levels, err := s.vipRepo.List()
	if err != nil {
		return nil, err
	}
	monthStart := startOfMonth(s.now())
	for i := range levels {
		if err := s.fillStats(&levels[i], monthStart); err != nil {
			return nil, err
		}
	}
	return levels, nil
}

func (s *VIPService) fillStats(level *models.VIPLevel, monthStart time.Time) error {
	members, err := s.vipRepo.CountMembers(level.ID)
	if err != nil {
		return err
	}
	revenue, err := s.vipRepo.RevenueSince(level.ID, monthStart)
	if err != nil {
		return err
	}
	level.MemberCount = members
	level.MonthlyRevenue = models.NewMoneyFromDecimal(revenue)
	return nil
}

// Create 创建等级，名称与等级序号均唯一
func (s *VIPService) Create(input VIPInput) (*models.VIPLevel, error) {
	if err := s.validate(&input, ""); err != nil {
		return nil, err
	}
	level := &models.VIPLevel{}
	applyVIPInput(level, input)
	if err := s.vipRepo.Create(level); err != nil {
		return nil, err
	}
	return level, nil
}

// Update 更新等级
func (s *VIPService) Update(id string, input VIPInput) (*models.VIPLevel, error) {
	level, err := s.vipRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return nil, ErrVIPNotFound
	}
	if err := s.validate(&input, id); err != nil {
		return nil, err
	}
	applyVIPInput(level, input)
	if err := s.vipRepo.Update(level); err != nil {
		return nil, err
	}
	if err := s.fillStats(level, startOfMonth(s.now())); err != nil {
		return nil, err
	}
	return level, nil
}

// Delete 仍有会员时拒绝删除
func (s *VIPService) Delete(id string) error {
	level, err := s.vipRepo.GetByID(id)
	if err != nil {
		return err
	}
	if level == nil {
		return ErrVIPNotFound
	}
	members, err := s.vipRepo.CountMembers(id)
	if err != nil {
		return err
	}
	if members > 0 {
		return &VIPMembersError{Members: members}
	}
	return s.vipRepo.Delete(id)
}

func (s *VIPService) validate(input *VIPInput, excludeID string) error {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return err
	}
	if input.MinSpend.IsNegative() {
		return &FieldError{Field: "min_spend", Message: "must be >= 0"}
	}
	count, err := s.vipRepo.CountByName(input.Name, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrVIPNameExists
	}
	count, err = s.vipRepo.CountByLevel(input.Level, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrVIPLevelExists
	}
	return nil
}

func applyVIPInput(level *models.VIPLevel, input VIPInput) {
	level.Name = input.Name
	level.Level = input.Level
	level.Discount = input.Discount
	level.MinSpend = input.MinSpend
	level.Color = strings.TrimSpace(input.Color)
	level.Icon = strings.TrimSpace(input.Icon)
	level.Benefits = models.StringArray(input.Benefits)
}

func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
