package model

import (
	"context"

	"github.com/fachebot/tech-daily-bot/internal/ent"
	"github.com/fachebot/tech-daily-bot/internal/ent/setting"
)

type SettingModel struct {
	client *ent.SettingClient
}

func NewSettingModel(client *ent.SettingClient) *SettingModel {
	return &SettingModel{client: client}
}

// Get 读取配置值，键不存在时返回 ("", nil)
func (m *SettingModel) Get(ctx context.Context, key string) (string, error) {
	record, err := m.client.Query().
		Where(setting.KeyEQ(key)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return record.Value, nil
}

// Set 写入配置值，已存在则更新
func (m *SettingModel) Set(ctx context.Context, key, value string) error {
	existing, err := m.client.Query().
		Where(setting.KeyEQ(key)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return err
		}
		return m.client.Create().
			SetKey(key).
			SetValue(value).
			Exec(ctx)
	}
	return m.client.UpdateOneID(existing.ID).
		SetValue(value).
		Exec(ctx)
}
