package models

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Mobile       string
	Skills       string
	PostedJobs   IDList
	Applications IDList
	CreatedAt    time.Time
}

func NewUser(name, email, passwordHash, mobile string, skills []string) *User {
	return &User{
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		Mobile:       mobile,
		Skills:       JoinTags(skills),
	}
}

func (u *User) SkillsAsArray() []string {
	return splitTags(u.Skills)
}

// JoinTags folds a tag set into the comma-joined column form, dropping
// blanks and duplicates.
func JoinTags(tags []string) string {
	trimmed := lo.FilterMap(tags, func(tag string, _ int) (string, bool) {
		tag = strings.TrimSpace(tag)
		return tag, tag != ""
	})
	return strings.Join(lo.Uniq(trimmed), ",")
}

func splitTags(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ",")
}
