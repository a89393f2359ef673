package service

import (
	"github.com/zlnvch/noteverse/cache"
	"github.com/zlnvch/noteverse/store"
)

type Service struct {
	Store     store.NoteverseStore
	Cache     cache.NoteverseCache
	JWTSecret []byte
}

func NewService(
	store store.NoteverseStore,
	cache cache.NoteverseCache,
	jwtSecret []byte,
) *Service {
	return &Service{
		Store:     store,
		Cache:     cache,
		JWTSecret: jwtSecret,
	}
}
