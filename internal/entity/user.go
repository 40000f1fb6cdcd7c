package entity

// User is a registered participant who can be referenced when creating games.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
