package report

// 固定回复文字
const (
	ReplyContentMismatch = "回報內容不符合現在回報的格式，請重新回報"
	ReplyWrongTime       = "現在不是回報時間\n 上午回報時間:1000-1300\n下午回報時間:1800-2100"
	ReplyWrongUserName   = "回報時請將三碼學號打在名字前面，再做回報\n範例：001-王大明"
	ReplyServerError     = "伺服器剛剛恍神，重新回報看看"
)
