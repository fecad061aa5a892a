package entities

import "time"

// Lead is one waitlist submission. Rows are insert-only: there is no update
// or delete path anywhere in the API, so the entity carries no UpdatedAt.
type Lead struct {
	ID               uint      `gorm:"column:id;primary_key;not null" json:"id"`
	Name             string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email            string    `gorm:"column:email;type:varchar(100);uniqueIndex;not null" json:"email"`
	Phone            string    `gorm:"column:phone;type:varchar(20)" json:"phone,omitempty"`
	Company          string    `gorm:"column:company;type:varchar(100);not null" json:"company"`
	Plan             string    `gorm:"column:plan;type:varchar(50)" json:"plan,omitempty"`
	BiggestChallenge string    `gorm:"column:biggest_challenge;type:varchar(500);not null" json:"biggest_challenge"`
	CreatedAt        time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp;index;not null" json:"created_at"`
	IPAddress        string    `gorm:"column:ip_address;type:varchar(45)" json:"ip_address"`
	UserAgent        string    `gorm:"column:user_agent;type:varchar(255)" json:"user_agent"`
}
