package repoargs

type RepositoryName string

const (
	UserRepoName          RepositoryName = "user"
	SaleRepoName          RepositoryName = "sale"
	DailyActivityRepoName RepositoryName = "daily_activity"
	AchievementRepoName   RepositoryName = "achievement"
	FeedRepoName          RepositoryName = "feed"
	MessageRepoName       RepositoryName = "message"
	LeaderboardRepoName   RepositoryName = "leaderboard"
	AdminRepoName         RepositoryName = "admin"
)
