package cache

import (
	"context"
	"time"

	"github.com/petmall-admin/internal/constants"
)

// DashboardTTL 仪表盘统计缓存时长
const DashboardTTL = 5 * time.Minute

// GetDashboard 读取仪表盘缓存，section 区分统计卡片与图表
func GetDashboard(ctx context.Context, section string, dest interface{}) (bool, error) {
	return GetJSON(ctx, dashboardKey(section), dest)
}

// SetDashboard 写入仪表盘缓存
func SetDashboard(ctx context.Context, section string, value interface{}) error {
	return SetJSON(ctx, dashboardKey(section), value, DashboardTTL)
}

// InvalidateDashboard 订单变化后清除全部仪表盘缓存
func InvalidateDashboard(ctx context.Context, sections ...string) error {
	if !Enabled() || len(sections) == 0 {
		return nil
	}
	keys := make([]string, 0, len(sections))
	for _, section := range sections {
		keys = append(keys, Key(dashboardKey(section)))
	}
	return redisClient.Del(ctx, keys...).Err()
}

func dashboardKey(section string) string {
	return constants.CacheKeyDashboard + ":" + section
}
