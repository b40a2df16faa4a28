package summarizer

// Report 一次日报生成的最终结果
// 要么完全成功（Content 为渲染后的日报文本），要么完全失败（Err 为错误描述），没有部分成功状态
type Report struct {
	Success bool
	Content string
	ChatID  int64
	Date    string // 日报日期，格式 2006-01-02
	Err     string
}
