package domain

// Audit 一条状态流转的审计记录
type Audit struct {
	From      string
	To        string
	ActorID   int64
	ActorRole string
	Note      string
	At        int64
}
