package model

import "time"

// User 用户结构体 (用于登录认证)
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt 加密后的密码
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
