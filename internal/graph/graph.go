// Package graph exposes the launch gateway's query surface. It composes
// field resolvers over the canonical entities produced by the spacex
// package, paginates list queries, and runs booking mutations against
// the user store.
package graph

import (
	"context"
	"launch-gateway/internal/models"
	"launch-gateway/internal/store"

	"github.com/graphql-go/graphql"
)

// LaunchSource is the upstream launch feed. The production implementation
// is *spacex.Client; tests inject an in-memory fake.
type LaunchSource interface {
	Launches(ctx context.Context) ([]models.Launch, error)
	Launch(ctx context.Context, id string) (*models.Launch, error)
	LaunchesByIDs(ctx context.Context, ids []string) ([]models.Launch, error)
}

// Resolver holds the built schema and the collaborators every resolver
// needs. Both are injected; resolvers keep no state of their own.
type Resolver struct {
	source LaunchSource
	users  store.Service
	schema graphql.Schema
}

func NewResolver(source LaunchSource, users store.Service) (*Resolver, error) {
	r := &Resolver{
		source: source,
		users:  users,
	}
	schema, err := r.buildSchema()
	if err != nil {
		return nil, err
	}
	r.schema = schema
	return r, nil
}

// Execute runs one GraphQL operation. The context must already carry the
// auth identity; it is shared read-only by every resolver in the
// operation.
func (r *Resolver) Execute(ctx context.Context, query string, variables map[string]interface{}, operationName string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         r.schema,
		RequestString:  query,
		VariableValues: variables,
		OperationName:  operationName,
		Context:        ctx,
	})
}
