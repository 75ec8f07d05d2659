package main

import (
	"github.com/cr8s-io/cr8s/internal/apimachinery"
	apimachineryAuthn "github.com/cr8s-io/cr8s/internal/apimachinery/authn"
	"github.com/cr8s-io/cr8s/internal/authn"
	"github.com/cr8s-io/cr8s/internal/authn/sessions"
	sessionsRedis "github.com/cr8s-io/cr8s/internal/authn/sessions/redis"
	"github.com/cr8s-io/cr8s/internal/crates"
	cratesMongodb "github.com/cr8s-io/cr8s/internal/crates/mongodb"
	"github.com/cr8s-io/cr8s/internal/mongodb"
	"github.com/cr8s-io/cr8s/internal/redis"
	rolesMongodb "github.com/cr8s-io/cr8s/internal/roles/mongodb"
	"github.com/cr8s-io/cr8s/internal/rustaceans"
	rustaceansMongodb "github.com/cr8s-io/cr8s/internal/rustaceans/mongodb"
	"github.com/cr8s-io/cr8s/internal/users"
	usersMongodb "github.com/cr8s-io/cr8s/internal/users/mongodb"
)

func getAPIServerFromEnvironment() (apimachinery.Server, error) {

	// API server config
	apiConfig, err := apimachinery.GetConfigFromEnvironment()
	if err != nil {
		return nil, err
	}

	// Common
	database, err := mongodb.Database()
	if err != nil {
		return nil, err
	}
	redisClient, err := redis.Client()
	if err != nil {
		return nil, err
	}

	// Roles
	rolesStore, err := rolesMongodb.NewStore(database)
	if err != nil {
		return nil, err
	}
	authorizer := authn.NewAuthorizer(rolesStore)

	// Users
	usersStore, err := usersMongodb.NewStore(database)
	if err != nil {
		return nil, err
	}
	usersService := users.NewService(usersStore, rolesStore)

	// Sessions-- depends on users
	sessionsConfig, err := sessions.GetConfigFromEnvironment()
	if err != nil {
		return nil, err
	}
	sessionsService, err := sessions.NewService(
		sessionsRedis.NewStore(redisClient),
		usersStore,
		sessionsConfig,
	)
	if err != nil {
		return nil, err
	}

	// Rustaceans
	rustaceansStore, err := rustaceansMongodb.NewStore(database)
	if err != nil {
		return nil, err
	}
	rustaceansService := rustaceans.NewService(authorizer, rustaceansStore)

	// Crates-- depends on rustaceans
	cratesStore, err := cratesMongodb.NewStore(database)
	if err != nil {
		return nil, err
	}
	cratesService := crates.NewService(authorizer, cratesStore, rustaceansStore)

	baseEndpoints := &apimachinery.BaseEndpoints{
		TokenAuthFilter: apimachineryAuthn.NewTokenAuthFilter(
			sessionsService.GetUserIDByToken,
			usersService.Get,
		),
	}

	return apimachinery.NewServer(
		apiConfig,
		baseEndpoints,
		[]apimachinery.Endpoints{
			sessions.NewEndpoints(baseEndpoints, sessionsService),
			users.NewEndpoints(baseEndpoints, usersService),
			rustaceans.NewEndpoints(baseEndpoints, rustaceansService),
			crates.NewEndpoints(baseEndpoints, cratesService),
		},
	), nil
}
