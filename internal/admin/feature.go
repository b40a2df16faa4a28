package admin

import (
	"context"
	"fmt"

	"github.com/fachebot/tech-daily-bot/internal/logger"
	"github.com/fachebot/tech-daily-bot/internal/model"
)

const featureKeyPrefix = "feature.daily_summary."

// settingStore 配置项存储（便于测试注入 mock）
type settingStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// FeatureGate 每日总结功能的按群开关，默认启用
type FeatureGate struct {
	settings settingStore
}

func NewFeatureGate(settings *model.SettingModel) *FeatureGate {
	return &FeatureGate{settings: settings}
}

func featureKey(chatID int64) string {
	return fmt.Sprintf("%s%d", featureKeyPrefix, chatID)
}

// Enabled 判断群组是否启用每日总结；未设置过视为启用，读取失败按启用处理
func (g *FeatureGate) Enabled(ctx context.Context, chatID int64) bool {
	value, err := g.settings.Get(ctx, featureKey(chatID))
	if err != nil {
		logger.Warnf("[Admin] 读取群组 %d 功能开关失败: %v", chatID, err)
		return true
	}
	return value != "off"
}

// SetEnabled 设置群组的每日总结开关
func (g *FeatureGate) SetEnabled(ctx context.Context, chatID int64, enabled bool) error {
	value := "on"
	if !enabled {
		value = "off"
	}
	return g.settings.Set(ctx, featureKey(chatID), value)
}
