package repoargs

type CreateUser struct {
	Email        string
	Name         string
	AvatarColor  string
	PasswordHash string
}
