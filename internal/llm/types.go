package llm

// TopicItem 一个技术话题的分析结果
type TopicItem struct {
	Name      string   `json:"name"`
	Heat      int      `json:"heat"` // 热度 1-5
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
}

// CodeSnippetItem 一段被分析的代码
type CodeSnippetItem struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Analysis string `json:"analysis"`
}

// IssueItem 一个技术难题
type IssueItem struct {
	Title       string `json:"title"`
	RaisedBy    string `json:"raised_by"`
	Status      string `json:"status"` // unsolved / in_progress / solved
	Description string `json:"description"`
}

// ResourceItem 一个学习资源
type ResourceItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// IdeaItem 一个创新想法
type IdeaItem struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// ContributorItem 一个主要贡献者
type ContributorItem struct {
	Name         string `json:"name"`
	Contribution string `json:"contribution"`
}

// AnalysisResult 模型返回的结构化分析结果
// 所有列表都允许为空，返回内容中缺失的字段按空列表处理
type AnalysisResult struct {
	Topics          []TopicItem       `json:"topics"`
	CodeSnippets    []CodeSnippetItem `json:"code_snippets"`
	Issues          []IssueItem       `json:"issues"`
	Resources       []ResourceItem    `json:"resources"`
	InnovativeIdeas []IdeaItem        `json:"innovative_ideas"`
	TopContributors []ContributorItem `json:"top_contributors"`
}
