package sqlite

import "time"

type MemberModel struct {
	ID        int64  `gorm:"primaryKey"`
	Username  string `gorm:"not null;uniqueIndex"`
	Banned    bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (MemberModel) TableName() string { return "members" }

type IgnoreModel struct {
	MemberID  int64 `gorm:"primaryKey"`
	TargetID  int64 `gorm:"primaryKey"`
	CreatedAt time.Time
}

func (IgnoreModel) TableName() string { return "member_ignores" }

type CategoryModel struct {
	ID          int64  `gorm:"primaryKey"`
	AuthorID    int64  `gorm:"not null"`
	Name        string `gorm:"not null"`
	Description string
	Visible     bool `gorm:"not null;default:false"`
	Sort        int  `gorm:"not null;default:0"`
	Archived    bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoryModel) TableName() string { return "categories" }

type ForumModel struct {
	ID           int64  `gorm:"primaryKey"`
	CategoryID   int64  `gorm:"not null;index"`
	AuthorID     int64  `gorm:"not null"`
	Name         string `gorm:"not null"`
	Description  string
	Visible      bool `gorm:"not null;default:false"`
	Sort         int  `gorm:"not null;default:0"`
	Archived     bool `gorm:"not null;default:false"`
	ThreadsCount int  `gorm:"not null;default:0"`
	PostsCount   int  `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ForumModel) TableName() string { return "forums" }

type ThreadModel struct {
	ID         int64  `gorm:"primaryKey"`
	ForumID    int64  `gorm:"not null;index"`
	AuthorID   int64  `gorm:"not null"`
	Name       string `gorm:"not null"`
	Archived   bool   `gorm:"not null;default:false"`
	Pinned     bool   `gorm:"not null;default:false"`
	Locked     bool   `gorm:"not null;default:false"`
	PostsCount int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ThreadModel) TableName() string { return "threads" }

type PostModel struct {
	ID        int64  `gorm:"primaryKey"`
	ThreadID  int64  `gorm:"not null;index"`
	AuthorID  int64  `gorm:"not null"`
	Content   string `gorm:"not null"`
	Archived  bool   `gorm:"not null;default:false"`
	Pinned    bool   `gorm:"not null;default:false"`
	Likes     int    `gorm:"not null;default:0"`
	Dislikes  int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PostModel) TableName() string { return "posts" }

// ThumbModel stores a vote as +1 (up), -1 (down) or 0 (reset).
type ThumbModel struct {
	MemberID  int64 `gorm:"primaryKey"`
	PostID    int64 `gorm:"primaryKey"`
	Vote      int   `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (ThumbModel) TableName() string { return "thumbs" }

type BookmarkModel struct {
	MemberID int64 `gorm:"primaryKey"`
	ThreadID int64 `gorm:"primaryKey"`
	LastSeen time.Time
}

func (BookmarkModel) TableName() string { return "bookmarks" }

type SubscriptionModel struct {
	MemberID  int64 `gorm:"primaryKey"`
	ThreadID  int64 `gorm:"primaryKey"`
	CreatedAt time.Time
}

func (SubscriptionModel) TableName() string { return "subscriptions" }

type MessageModel struct {
	ID               int64 `gorm:"primaryKey"`
	SenderID         int64 `gorm:"not null;index"`
	ReceiverID       int64 `gorm:"not null;index"`
	ReplyToID        *int64
	Subject          string `gorm:"not null"`
	Content          string `gorm:"not null"`
	SenderArchived   bool   `gorm:"not null;default:false"`
	SenderDeleted    bool   `gorm:"not null;default:false"`
	ReceiverArchived bool   `gorm:"not null;default:false"`
	ReceiverDeleted  bool   `gorm:"not null;default:false"`
	SentAt           time.Time
}

func (MessageModel) TableName() string { return "messages" }
