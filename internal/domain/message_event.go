package domain

// MessageEventKind 入站事件类别
type MessageEventKind int

const (
	MessageEventUnsupported MessageEventKind = iota
	MessageEventText
)

// MessageEvent 平台无关的入站消息事件
type MessageEvent struct {
	Kind        MessageEventKind
	EventID     string // webhookEventId，用于重投去重
	SenderID    string
	DisplayName string
	Text        string
	ReplyToken  string
	Redelivery  bool
}

// IsText 是否为文字消息
func (e MessageEvent) IsText() bool {
	return e.Kind == MessageEventText
}
