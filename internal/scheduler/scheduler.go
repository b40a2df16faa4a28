package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fachebot/tech-daily-bot/internal/admin"
	"github.com/fachebot/tech-daily-bot/internal/config"
	"github.com/fachebot/tech-daily-bot/internal/logger"
	"github.com/fachebot/tech-daily-bot/internal/model"
	"github.com/fachebot/tech-daily-bot/internal/notify"
	"github.com/fachebot/tech-daily-bot/internal/summarizer"
	"github.com/robfig/cron/v3"
)

// reportGenerator 生成一个群组的日报（便于测试注入 mock）
// 与手动命令共用同一个契约，两条触发路径不重复业务逻辑
type reportGenerator interface {
	Generate(ctx context.Context, chatID int64, now time.Time) *summarizer.Report
}

// reportNotifier 把日报投递到群聊（便于测试注入 mock）
type reportNotifier interface {
	Notify(ctx context.Context, content string, chatID int64) error
}

// chatLister 枚举时间窗口内有消息的群组（便于测试注入 mock）
type chatLister interface {
	GetActiveChatIDs(ctx context.Context, startTime, endTime time.Time) ([]int64, error)
}

// featureGate 按群的功能开关（便于测试注入 mock）
type featureGate interface {
	Enabled(ctx context.Context, chatID int64) bool
}

// Scheduler 定时触发器，本身不持久化任何运行状态
type Scheduler struct {
	cron         *cron.Cron
	summarizer   reportGenerator
	notifier     reportNotifier
	messageModel chatLister
	gate         featureGate
	config       *config.Summary
	ctx          context.Context
	cancel       context.CancelFunc
	mu           sync.Mutex
}

func NewScheduler(
	summarizer *summarizer.Summarizer,
	notifier *notify.Notifier,
	messageModel *model.MessageModel,
	gate *admin.FeatureGate,
	cfg *config.Summary,
) *Scheduler {
	return &Scheduler{
		// 当日窗口按本地时间计算，cron 也使用本地时区
		cron:         cron.New(cron.WithLocation(time.Local)),
		summarizer:   summarizer,
		notifier:     notifier,
		messageModel: messageModel,
		gate:         gate,
		config:       cfg,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() error {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.mu.Unlock()

	// 注册每日总结任务
	_, err := s.cron.AddFunc(s.config.Cron, s.runDailySummary)
	if err != nil {
		return fmt.Errorf("注册每日总结任务失败: %w", err)
	}

	s.cron.Start()
	logger.Infof("[Scheduler] 调度器已启动，每日总结任务: %s", s.config.Cron)
	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Infof("[Scheduler] 调度器已停止")
}

// runDailySummary 执行每日总结任务（cron 触发）
func (s *Scheduler) runDailySummary() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	s.runBatch(ctx, time.Now())
}

// runBatch 对当日有消息的所有群组逐个生成并投递日报
// 单个群组的生成失败或投递失败只记录日志，不影响其余群组
func (s *Scheduler) runBatch(ctx context.Context, now time.Time) {
	select {
	case <-ctx.Done():
		logger.Infof("[Scheduler] 任务已取消，退出")
		return
	default:
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	logger.Infof("[Scheduler] 开始执行每日总结任务，日期: %s", now.Format("2006-01-02"))

	chatIDs, err := s.messageModel.GetActiveChatIDs(ctx, dayStart, now)
	if err != nil {
		logger.Errorf("[Scheduler] 查询活跃群组失败: %v", err)
		return
	}
	if len(chatIDs) == 0 {
		logger.Infof("[Scheduler] 今日无活跃群组，跳过总结")
		return
	}
	logger.Infof("[Scheduler] 找到 %d 个活跃群组", len(chatIDs))

	successCount := 0
	failCount := 0
	for _, chatID := range chatIDs {
		select {
		case <-ctx.Done():
			logger.Infof("[Scheduler] 任务已取消，退出")
			return
		default:
		}

		if !s.gate.Enabled(ctx, chatID) {
			logger.Debugf("[Scheduler] 群组 %d 未启用每日总结，跳过", chatID)
			continue
		}

		report := s.summarizer.Generate(ctx, chatID, now)
		if !report.Success {
			logger.Warnf("[Scheduler] 群组 %d 日报生成失败: %s", chatID, report.Err)
			failCount++
			continue
		}

		if err := s.notifier.Notify(ctx, report.Content, chatID); err != nil {
			// 投递失败不回滚已生成的日报
			logger.Errorf("[Scheduler] 群组 %d 日报投递失败: %v", chatID, err)
			failCount++
			continue
		}
		successCount++
	}

	logger.Infof("[Scheduler] 每日总结任务完成: 成功 %d 个，失败 %d 个", successCount, failCount)
}
