package store

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Articles interface {
	repository.Repository[*Article]

	GetWithComments(ctx context.Context, id uuid.UUID) (*Article, error)
	ListWithComments(ctx context.Context) ([]*Article, error)
	Save(ctx context.Context, record *Article) (*Article, error)
	Remove(ctx context.Context, id uuid.UUID) error

	AddComment(ctx context.Context, comment *Comment) (*Comment, error)

	LikeCounts(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]*Like, error)
	Rate(ctx context.Context, id uuid.UUID, likes, dislikes int) (*Like, error)
}

type articles struct {
	repository.Repository[*Article]
	db *bun.DB
}

var (
	_ Articles                        = (*articles)(nil)
	_ repository.Repository[*Article] = (*articles)(nil)
)

func NewArticlesRepository(db *bun.DB) Articles {
	repo := repository.NewRepository[*Article](db, repository.ModelHandlers[*Article]{
		NewRecord: func() *Article { return &Article{} },
		GetID: func(a *Article) uuid.UUID {
			if a == nil {
				return uuid.Nil
			}
			return a.ID
		},
		SetID: func(a *Article, id uuid.UUID) {
			if a != nil {
				a.ID = id
			}
		},
		GetIdentifier: func() string {
			return "id"
		},
	})

	return &articles{
		Repository: repo,
		db:         db,
	}
}

func (a *articles) GetWithComments(ctx context.Context, id uuid.UUID) (*Article, error) {
	record := &Article{}

	err := a.db.NewSelect().
		Model(record).
		Relation("Comments").
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"id": id.String(),
				})
		}
		return nil, err
	}

	return record, nil
}

func (a *articles) ListWithComments(ctx context.Context) ([]*Article, error) {
	var records []*Article

	err := a.db.NewSelect().
		Model(&records).
		Relation("Comments").
		Order("art.created_at ASC").
		Scan(ctx)

	if err != nil {
		return nil, err
	}

	return records, nil
}

// Save persists field changes on an existing article by primary key
func (a *articles) Save(ctx context.Context, record *Article) (*Article, error) {
	return a.Repository.Update(ctx, record, repository.UpdateByID(record.ID.String()))
}

func (a *articles) Remove(ctx context.Context, id uuid.UUID) error {
	_, err := a.db.NewDelete().
		Model((*Article)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (a *articles) AddComment(ctx context.Context, comment *Comment) (*Comment, error) {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}

	_, err := a.db.NewInsert().
		Model(comment).
		Exec(ctx)

	if err != nil {
		return nil, err
	}

	return comment, nil
}

// LikeCounts fetches the counter rows for the given articles. Articles with
// no row are simply absent from the map.
func (a *articles) LikeCounts(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]*Like, error) {
	counts := map[uuid.UUID]*Like{}
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []*Like
	err := a.db.NewSelect().
		Model(&rows).
		Where("likeable_type = ?", LikeableArticle).
		Where("likeable_id IN (?)", bun.In(ids)).
		Scan(ctx)

	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.LikeableID] = row
	}

	return counts, nil
}

// Rate increments the counter row for an article, creating it on first use.
func (a *articles) Rate(ctx context.Context, id uuid.UUID, likes, dislikes int) (*Like, error) {
	row := &Like{
		ID:           uuid.New(),
		LikeableType: LikeableArticle,
		LikeableID:   id,
		Likes:        likes,
		Dislikes:     dislikes,
	}

	_, err := a.db.NewInsert().
		Model(row).
		On("CONFLICT (likeable_type, likeable_id) DO UPDATE").
		Set("likes = lk.likes + EXCLUDED.likes").
		Set("dislikes = lk.dislikes + EXCLUDED.dislikes").
		Exec(ctx)

	if err != nil {
		return nil, err
	}

	current := &Like{}
	err = a.db.NewSelect().
		Model(current).
		Where("likeable_type = ?", LikeableArticle).
		Where("likeable_id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		return nil, err
	}

	return current, nil
}
