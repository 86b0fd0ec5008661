// Package seed 在空資料表中放入示範資料
package seed

import (
	"context"
	"fmt"

	"starwars-api/internal/database"
	"starwars-api/internal/model"
	"starwars-api/internal/service"
	"starwars-api/internal/store"

	log "github.com/sirupsen/logrus"
)

// DefaultUserEmail 為收藏功能預設的使用者
const DefaultUserEmail = "user@starwars.dev"

var (
	countUsers     = store.CountUsers
	countPlanets   = store.CountPlanets
	countPeople    = store.CountPeople
	createUser     = store.CreateUser
	createPlanet   = store.CreatePlanet
	createPerson   = store.CreatePerson
	hashPassword   = service.HashPassword
	randomPassword = service.RandomPassword
)

func str(s string) *string { return &s }

// Planets 示範星球
var Planets = []model.Planet{
	{Name: "Tatooine", Climate: str("arid"), Terrain: str("desert"), Population: str("200000")},
	{Name: "Alderaan", Climate: str("temperate"), Terrain: str("grasslands, mountains"), Population: str("2000000000")},
	{Name: "Yavin IV", Climate: str("temperate, tropical"), Terrain: str("jungle, rainforests"), Population: str("1000")},
	{Name: "Hoth", Climate: str("frozen"), Terrain: str("tundra, ice caves, mountain ranges"), Population: str("unknown")},
	{Name: "Dagobah", Climate: str("murky"), Terrain: str("swamp, jungles"), Population: str("unknown")},
}

// People 示範角色
var People = []model.Person{
	{Name: "Luke Skywalker", BirthYear: str("19BBY"), Gender: str("male")},
	{Name: "C-3PO", BirthYear: str("112BBY"), Gender: str("n/a")},
	{Name: "R2-D2", BirthYear: str("33BBY"), Gender: str("n/a")},
	{Name: "Darth Vader", BirthYear: str("41.9BBY"), Gender: str("male")},
	{Name: "Leia Organa", BirthYear: str("19BBY"), Gender: str("female")},
}

// Result 回報每個資料表新增的筆數
type Result struct {
	Users   int
	Planets int
	People  int
}

// Run 只填入空的資料表，可重複執行
func Run(ctx context.Context, db database.DB) (Result, error) {
	var res Result

	n, err := countUsers(ctx, db)
	if err != nil {
		return res, err
	}
	if n == 0 {
		if err := seedDefaultUser(ctx, db); err != nil {
			return res, err
		}
		res.Users = 1
	}

	if n, err = countPlanets(ctx, db); err != nil {
		return res, err
	}
	if n == 0 {
		for _, p := range Planets {
			p := p
			if _, err := createPlanet(ctx, db, &p); err != nil {
				return res, fmt.Errorf("seed planet %q: %w", p.Name, err)
			}
			res.Planets++
		}
	}

	if n, err = countPeople(ctx, db); err != nil {
		return res, err
	}
	if n == 0 {
		for _, p := range People {
			p := p
			if _, err := createPerson(ctx, db, &p); err != nil {
				return res, fmt.Errorf("seed person %q: %w", p.Name, err)
			}
			res.People++
		}
	}

	log.WithFields(log.Fields{
		"users":   res.Users,
		"planets": res.Planets,
		"people":  res.People,
	}).Info("seed finished")
	return res, nil
}

// seedDefaultUser 密碼隨機產生並只記錄一次
func seedDefaultUser(ctx context.Context, db database.DB) error {
	pwd, err := randomPassword(16)
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	hash, err := hashPassword(pwd)
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	u, err := createUser(ctx, db, &model.User{Email: DefaultUserEmail, Password: hash, IsActive: true})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	log.WithFields(log.Fields{"id": u.ID, "email": u.Email, "password": pwd}).Warn("default user created, change this password")
	return nil
}
