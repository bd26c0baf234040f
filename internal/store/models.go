package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the user model
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash" json:"-"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// RevokedToken is a denylist row keyed by the literal token string.
// Insert only; rows are never removed while the token could still verify.
type RevokedToken struct {
	bun.BaseModel `bun:"table:jwt_denylist,alias:jwtd"`
	Token         string     `bun:"token,pk" json:"token"`
	RevokedAt     *time.Time `bun:"revoked_at,nullzero,default:current_timestamp" json:"revoked_at,omitempty"`
}

// Article is the article model
type Article struct {
	bun.BaseModel    `bun:"table:articles,alias:art"`
	ID               uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Title            string     `bun:"title,notnull" json:"title"`
	ShortDescription string     `bun:"short_description" json:"short_description,omitempty"`
	Description      string     `bun:"description" json:"description,omitempty"`
	CreatedAt        *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt        *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
	Comments         []*Comment `bun:"rel:has-many,join:id=article_id" json:"comments,omitempty"`
}

// Comment belongs to an article
type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:cmt"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	ArticleID     uuid.UUID  `bun:"article_id,notnull,type:uuid" json:"article_id,omitempty"`
	Content       string     `bun:"content,notnull" json:"content"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// LikeableArticle is the likeable_type discriminator for articles
const LikeableArticle = "Article"

// Like is a polymorphic counter row, unique per (likeable_type, likeable_id).
// A missing row reads as zero likes and zero dislikes.
type Like struct {
	bun.BaseModel `bun:"table:likes,alias:lk"`
	ID            uuid.UUID `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	LikeableType  string    `bun:"likeable_type,notnull" json:"likeable_type"`
	LikeableID    uuid.UUID `bun:"likeable_id,notnull,type:uuid" json:"likeable_id"`
	Likes         int       `bun:"likes,notnull,default:0" json:"likes"`
	Dislikes      int       `bun:"dislikes,notnull,default:0" json:"dislikes"`
}
