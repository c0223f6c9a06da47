package constants

// NSQ topics and channels
const (
	TopicAudit        = "docshare.audit"
	ChannelAuditWrite = "audit-writer"
)
