package server

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/sportshub/backend/internal/auth"
	"github.com/sportshub/backend/internal/store"
)

const (
	actionLike    = "like"
	actionDislike = "dislike"
)

// ArticlesController handles article CRUD, comments, and rating
type ArticlesController struct {
	Repo   store.RepositoryManager
	Logger auth.Logger
}

// ArticleRequest payload, shared by create and update
type ArticleRequest struct {
	Article struct {
		Title            string `json:"title"`
		ShortDescription string `json:"short_description"`
		Description      string `json:"description"`
	} `json:"article"`
}

// Validate will run validation rules
func (r ArticleRequest) Validate() error {
	return validation.ValidateStruct(&r.Article,
		validation.Field(
			&r.Article.Title,
			validation.Required,
			validation.Length(1, 255),
		),
	)
}

// CommentRequest payload
type CommentRequest struct {
	Comment struct {
		Content string `json:"content"`
	} `json:"comment"`
}

// Validate will run validation rules
func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r.Comment,
		validation.Field(
			&r.Comment.Content,
			validation.Required,
		),
	)
}

// RateRequest payload
type RateRequest struct {
	Action string `json:"action"`
}

// Validate will run validation rules
func (r RateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Action,
			validation.Required,
			validation.In(actionLike, actionDislike),
		),
	)
}

// CommentResponse is the comment shape returned to clients
type CommentResponse struct {
	ID        string     `json:"id"`
	ArticleID string     `json:"article_id"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ArticleResponse is the article shape returned to clients
type ArticleResponse struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	ShortDescription string            `json:"short_description,omitempty"`
	Description      string            `json:"description,omitempty"`
	CreatedAt        *time.Time        `json:"created_at,omitempty"`
	UpdatedAt        *time.Time        `json:"updated_at,omitempty"`
	Comments         []CommentResponse `json:"comments"`
	Likes            int               `json:"likes"`
	Dislikes         int               `json:"dislikes"`
}

func commentResponse(c *store.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID.String(),
		ArticleID: c.ArticleID.String(),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func articleResponse(a *store.Article, counts map[uuid.UUID]*store.Like) ArticleResponse {
	out := ArticleResponse{
		ID:               a.ID.String(),
		Title:            a.Title,
		ShortDescription: a.ShortDescription,
		Description:      a.Description,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
		Comments:         []CommentResponse{},
	}

	for _, c := range a.Comments {
		out.Comments = append(out.Comments, commentResponse(c))
	}

	if row, ok := counts[a.ID]; ok {
		out.Likes = row.Likes
		out.Dislikes = row.Dislikes
	}

	return out
}

func (a *ArticlesController) Create(c *fiber.Ctx) error {
	payload := new(ArticleRequest)

	if err := c.BodyParser(payload); err != nil {
		return respondError(c, errors.Wrap(err, errors.CategoryBadInput, "unable to parse request body"))
	}

	if err := payload.Validate(); err != nil {
		return respondError(c, errors.Wrap(err, errors.CategoryValidation, err.Error()))
	}

	record := &store.Article{
		ID:               uuid.New(),
		Title:            payload.Article.Title,
		ShortDescription: payload.Article.ShortDescription,
		Description:      payload.Article.Description,
	}

	created, err := a.Repo.Articles().Create(c.UserContext(), record)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(articleResponse(created, nil))
}

func (a *ArticlesController) List(c *fiber.Ctx) error {
	records, err := a.Repo.Articles().ListWithComments(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	ids := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}

	counts, err := a.Repo.Articles().LikeCounts(c.UserContext(), ids...)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]ArticleResponse, 0, len(records))
	for _, r := range records {
		out = append(out, articleResponse(r, counts))
	}

	return c.JSON(out)
}

func (a *ArticlesController) Show(c *fiber.Ctx) error {
	id, err := parseArticleID(c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := a.Repo.Articles().GetWithComments(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	counts, err := a.Repo.Articles().LikeCounts(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(articleResponse(record, counts))
}

func (a *ArticlesController) Update(c *fiber.Ctx) error {
	id, err := parseArticleID(c)
	if err != nil {
		return respondError(c, err)
	}

	payload := new(ArticleRequest)
	if err := c.BodyParser(payload); err != nil {
		return respondError(c, errors.Wrap(err, errors.CategoryBadInput, "unable to parse request body"))
	}

	if err := payload.Validate(); err != nil {
		return respondError(c, errors.Wrap(err, errors.CategoryValidation, err.Error()))
	}

	record, err := a.Repo.Articles().GetWithComments(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	record.Title = payload.Article.Title
	record.ShortDescription = payload.Article.ShortDescription
	record.Description = payload.Article.Description
	now := time.Now()
	record.UpdatedAt = &now

	updated, err := a.Repo.Articles().Save(c.UserContext(), record)
	if err != nil {
		return respondError(c, err)
	}

	updated.Comments = record.Comments

	counts, err := a.Repo.Articles().LikeCounts(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(articleResponse(updated, counts))
}

func (a *ArticlesController) Delete(c *fiber.Ctx) error {
	id, err := parseArticleID(c)
	if err != nil {
		return respondError(c, err)
	}

	if _, err := a.Repo.Articles().GetWithComments(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	if err := a.Repo.Articles().Remove(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (a *ArticlesController) CreateComment(c *fiber.Ctx) error {
	id, err := parseArticleID(c)
	if err != nil {
		return respondError(c, err)
	}

	payload := new(CommentRequest)
	if err := c.BodyParser(payload); err != nil {
		return respondError(c, errors.Wrap(err, errors.CategoryBadInput, "unable to parse request body"))
	}

	if err := payload.Validate(); err != nil {
		return respondError(c, errors.Wrap(err, errors.CategoryValidation, err.Error()))
	}

	if _, err := a.Repo.Articles().GetWithComments(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	comment, err := a.Repo.Articles().AddComment(c.UserContext(), &store.Comment{
		ArticleID: id,
		Content:   payload.Comment.Content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(commentResponse(comment))
}

func (a *ArticlesController) Rate(c *fiber.Ctx) error {
	id, err := parseArticleID(c)
	if err != nil {
		return respondError(c, err)
	}

	payload := new(RateRequest)
	if err := c.BodyParser(payload); err != nil {
		return respondError(c, errors.Wrap(err, errors.CategoryBadInput, "unable to parse request body"))
	}

	if err := payload.Validate(); err != nil {
		return respondError(c, errors.Wrap(err, errors.CategoryValidation, err.Error()))
	}

	if _, err := a.Repo.Articles().GetWithComments(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	likes, dislikes := 0, 0
	if payload.Action == actionLike {
		likes = 1
	} else {
		dislikes = 1
	}

	row, err := a.Repo.Articles().Rate(c.UserContext(), id, likes, dislikes)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":       id.String(),
		"likes":    row.Likes,
		"dislikes": row.Dislikes,
	})
}

func parseArticleID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, errors.CategoryBadInput, "invalid article id")
	}
	return id, nil
}
