package models

// schema.org FAQPage 结构化数据，供搜索引擎富结果使用

// FAQPageSchema FAQPage JSON-LD 文档
type FAQPageSchema struct {
	Context    string           `json:"@context"`
	Type       string           `json:"@type"`
	MainEntity []SchemaQuestion `json:"mainEntity"`
}

// SchemaQuestion 问题
type SchemaQuestion struct {
	Type           string       `json:"@type"`
	Name           string       `json:"name"`
	AcceptedAnswer SchemaAnswer `json:"acceptedAnswer"`
}

// SchemaAnswer 答案
type SchemaAnswer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}
