// File: internal/handler/warmup.go
package handler

import (
	"context"
	"time"

	"starwars-api/internal/api"
	"starwars-api/internal/cache"
	"starwars-api/internal/database"
	"starwars-api/internal/worker"

	log "github.com/sirupsen/logrus"
)

// WarmupTasks 預先載入星球與角色列表至快取
func WarmupTasks(ctx context.Context, db database.DB, cch cache.Cache, ttl time.Duration) []worker.Task {
	return []worker.Task{
		func() {
			planets, err := listPlanets(ctx, db)
			if err != nil {
				log.WithError(err).Warn("warm planets cache")
				return
			}
			if err := cache.SetJSON(ctx, cch, cache.KeyPlanets, api.NewPlanetsResponse(planets), ttl); err != nil {
				log.WithError(err).Warn("warm planets cache")
			}
		},
		func() {
			people, err := listPeople(ctx, db)
			if err != nil {
				log.WithError(err).Warn("warm people cache")
				return
			}
			if err := cache.SetJSON(ctx, cch, cache.KeyPeople, api.NewPeopleResponse(people), ttl); err != nil {
				log.WithError(err).Warn("warm people cache")
			}
		},
	}
}
