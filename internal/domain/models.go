package domain

import (
	"time"

	"gorm.io/gorm"
)

// User represents the users table. It carries only the durable identity;
// display data and credentials live in their own tables.
type User struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Profile     *Profile     `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Credentials *Credentials `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Todos       []Todo       `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// Profile represents the user_profiles table (one-to-one).
// Email is the natural key used for login lookup.
type Profile struct {
	UserID    int64  `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relation
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "user_profiles"
}

// Credentials represents the user_auth table (one-to-one).
// PasswordHash is the self-describing argon2id encoded string; the
// plaintext password is never persisted.
type Credentials struct {
	UserID       int64  `gorm:"primaryKey"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relation
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Credentials model
func (Credentials) TableName() string {
	return "user_auth"
}

// Todo represents the todos table. Rows are soft deleted; the cleanup
// worker purges them after the retention window.
type Todo struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	UserID      int64   `gorm:"not null;index"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	IsCompleted bool    `gorm:"default:false;not null"`
	Priority    *int32
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// Relation
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Todo model
func (Todo) TableName() string {
	return "todos"
}

// AutoMigrate runs auto migrations (production schemas are managed
// manually; this is used by the SQLite-backed tests)
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Profile{},
		&Credentials{},
		&Todo{},
	)
}
