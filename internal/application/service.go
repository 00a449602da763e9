package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/fgcplatform/identity/internal/domain/entity"
	repo "github.com/fgcplatform/identity/internal/domain/repository"
	"github.com/fgcplatform/identity/pkg/helpers"
)

const profileCacheTTL = 10 * time.Minute

// Service hosts the identity use cases. Each operation follows the same
// shape: validate input, load, authorize, mutate the aggregate, persist,
// publish drained domain events, clear them, return a projection.
type Service struct {
	Repo         repo.UserRepository
	Uniq         repo.UniquenessChecker
	Events       repo.EventSink
	Tokens       *helpers.TokenService
	Redis        *redis.Client
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESUsersIndex string
}

func NewService(r repo.UserRepository, uniq repo.UniquenessChecker, events repo.EventSink, tokens *helpers.TokenService, rdb *redis.Client, logger *logrus.Logger, es *elasticsearch.Client, esUsersIndex string) *Service {
	return &Service{
		Repo:         r,
		Uniq:         uniq,
		Events:       events,
		Tokens:       tokens,
		Redis:        rdb,
		Logger:       logger,
		ES:           es,
		ESUsersIndex: esUsersIndex,
	}
}

// UserProjection is the read-only view returned by every use case.
type UserProjection struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func project(u *entity.User) *UserProjection {
	return &UserProjection{
		ID:          u.ID,
		Email:       u.Email.Value(),
		Name:        u.Name,
		Role:        u.Role.String(),
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

// publishEvents forwards pending domain events to the sink and clears them.
// Sinks are best-effort; failures never surface to the caller.
func (s *Service) publishEvents(ctx context.Context, u *entity.User) {
	if s.Events != nil {
		for _, evt := range u.Events() {
			s.Events.Publish(ctx, evt)
		}
	}
	u.ClearEvents()
}

func profileCacheKey(id uuid.UUID) string {
	return "user:profile:" + id.String()
}

func (s *Service) cacheProfile(ctx context.Context, p *UserProjection) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisSetJSON(ctx, s.Redis, profileCacheKey(p.ID), p, profileCacheTTL); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", p.ID).Warn("profile cache write failed")
	}
}

func (s *Service) invalidateProfile(ctx context.Context, id uuid.UUID) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, profileCacheKey(id)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", id).Warn("profile cache invalidation failed")
	}
}

// indexUser mirrors the user into Elasticsearch for admin search. Optional;
// a nil client is a no-op.
func (s *Service) indexUser(ctx context.Context, u *entity.User) {
	if s.ES == nil || s.ESUsersIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         u.ID.String(),
		"email":      u.Email.Value(),
		"name":       u.Name,
		"role":       u.Role.String(),
		"is_active":  u.IsActive,
		"created_at": u.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESUsersIndex, DocumentID: u.ID.String(), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("user_id", u.ID).Warn("es index response error")
	}
}
