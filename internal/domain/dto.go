package domain

type FeedEntryType string

const (
	FeedEntrySale        FeedEntryType = "sale"
	FeedEntryAchievement FeedEntryType = "achievement"
	FeedEntryJoined      FeedEntryType = "joined"
)

const DefaultMessageType = "general"
