package repository

import (
	"github.com/BloggingApp/blog-service/internal/repository/docstore"
	"github.com/BloggingApp/blog-service/internal/repository/redisrepo"
	"github.com/BloggingApp/blog-service/internal/storage"
	"github.com/redis/go-redis/v9"
)

type Repository struct {
	Docstore *docstore.DocstoreRepository
	Redis    *redisrepo.RedisRepository
}

func New(store *storage.Store, rdb *redis.Client) *Repository {
	return &Repository{
		Docstore: docstore.New(store),
		Redis:    redisrepo.New(rdb),
	}
}
