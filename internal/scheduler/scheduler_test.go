package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fachebot/tech-daily-bot/internal/summarizer"
	"github.com/stretchr/testify/assert"
)

// mockGenerator 用于测试的 reportGenerator mock
type mockGenerator struct {
	reports map[int64]*summarizer.Report
	calls   []int64
}

func (m *mockGenerator) Generate(ctx context.Context, chatID int64, now time.Time) *summarizer.Report {
	m.calls = append(m.calls, chatID)
	if report, ok := m.reports[chatID]; ok {
		return report
	}
	return &summarizer.Report{ChatID: chatID, Err: "今日无消息记录"}
}

// mockNotifier 用于测试的 reportNotifier mock
type mockNotifier struct {
	failFor   map[int64]error
	delivered []int64
}

func (m *mockNotifier) Notify(ctx context.Context, content string, chatID int64) error {
	if err, ok := m.failFor[chatID]; ok {
		return err
	}
	m.delivered = append(m.delivered, chatID)
	return nil
}

// mockChatLister 用于测试的 chatLister mock
type mockChatLister struct {
	chatIDs []int64
	err     error
}

func (m *mockChatLister) GetActiveChatIDs(ctx context.Context, startTime, endTime time.Time) ([]int64, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.chatIDs, nil
}

// mockGate 用于测试的 featureGate mock
type mockGate struct {
	disabled map[int64]bool
}

func (m *mockGate) Enabled(ctx context.Context, chatID int64) bool {
	return !m.disabled[chatID]
}

func newTestScheduler(lister *mockChatLister, generator *mockGenerator, notifier *mockNotifier, gate *mockGate) *Scheduler {
	if gate == nil {
		gate = &mockGate{}
	}
	return &Scheduler{
		summarizer:   generator,
		notifier:     notifier,
		messageModel: lister,
		gate:         gate,
	}
}

func okReport(chatID int64) *summarizer.Report {
	return &summarizer.Report{Success: true, Content: "日报内容", ChatID: chatID, Date: "2025-03-01"}
}

func TestRunBatch_OnlyActiveChatsGenerated(t *testing.T) {
	// G2 今日无消息，不在活跃列表里，不得为其调用 Generate
	lister := &mockChatLister{chatIDs: []int64{1}}
	generator := &mockGenerator{reports: map[int64]*summarizer.Report{1: okReport(1)}}
	notifier := &mockNotifier{}
	s := newTestScheduler(lister, generator, notifier, nil)

	s.runBatch(context.Background(), time.Now())

	assert.Equal(t, []int64{1}, generator.calls)
	assert.Equal(t, []int64{1}, notifier.delivered)
}

func TestRunBatch_FailureIsolation(t *testing.T) {
	// G1 的分析超时，G2 的日报仍须投递
	lister := &mockChatLister{chatIDs: []int64{1, 2}}
	generator := &mockGenerator{reports: map[int64]*summarizer.Report{
		1: {ChatID: 1, Err: "分析消息失败: 请求模型接口失败: 超时"},
		2: okReport(2),
	}}
	notifier := &mockNotifier{}
	s := newTestScheduler(lister, generator, notifier, nil)

	s.runBatch(context.Background(), time.Now())

	assert.Equal(t, []int64{1, 2}, generator.calls)
	assert.Equal(t, []int64{2}, notifier.delivered)
}

func TestRunBatch_DeliveryFailureIsolation(t *testing.T) {
	// G1 投递失败不影响 G2 的处理
	lister := &mockChatLister{chatIDs: []int64{1, 2}}
	generator := &mockGenerator{reports: map[int64]*summarizer.Report{
		1: okReport(1),
		2: okReport(2),
	}}
	notifier := &mockNotifier{failFor: map[int64]error{1: errors.New("network down")}}
	s := newTestScheduler(lister, generator, notifier, nil)

	s.runBatch(context.Background(), time.Now())

	assert.Equal(t, []int64{1, 2}, generator.calls)
	assert.Equal(t, []int64{2}, notifier.delivered)
}

func TestRunBatch_DisabledChatSkipped(t *testing.T) {
	lister := &mockChatLister{chatIDs: []int64{1, 2}}
	generator := &mockGenerator{reports: map[int64]*summarizer.Report{
		1: okReport(1),
		2: okReport(2),
	}}
	notifier := &mockNotifier{}
	gate := &mockGate{disabled: map[int64]bool{1: true}}
	s := newTestScheduler(lister, generator, notifier, gate)

	s.runBatch(context.Background(), time.Now())

	assert.Equal(t, []int64{2}, generator.calls)
	assert.Equal(t, []int64{2}, notifier.delivered)
}

func TestRunBatch_ListerError(t *testing.T) {
	lister := &mockChatLister{err: errors.New("db closed")}
	generator := &mockGenerator{}
	notifier := &mockNotifier{}
	s := newTestScheduler(lister, generator, notifier, nil)

	s.runBatch(context.Background(), time.Now())

	assert.Empty(t, generator.calls)
	assert.Empty(t, notifier.delivered)
}

func TestRunBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lister := &mockChatLister{chatIDs: []int64{1}}
	generator := &mockGenerator{}
	s := newTestScheduler(lister, generator, &mockNotifier{}, nil)

	s.runBatch(ctx, time.Now())
	assert.Empty(t, generator.calls)
}
