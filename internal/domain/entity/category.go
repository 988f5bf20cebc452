package entity

import "time"

// Category groups study posts. Names are unique.
type Category struct {
	ID        int64
	LogoEmoji string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
