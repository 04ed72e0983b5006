package graph

import (
	"launch-gateway/internal/models"

	"github.com/graphql-go/graphql"
)

const defaultPageSize = 20

func (r *Resolver) buildSchema() (graphql.Schema, error) {
	patchSizeEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "PatchSize",
		Values: graphql.EnumValueConfigMap{
			"SMALL": &graphql.EnumValueConfig{Value: string(models.PatchSizeSmall)},
			"LARGE": &graphql.EnumValueConfig{Value: string(models.PatchSizeLarge)},
		},
	})

	rocketType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Rocket",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.ID},
			"name": &graphql.Field{Type: graphql.String},
			"type": &graphql.Field{Type: graphql.String},
		},
	})

	missionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mission",
		Fields: graphql.Fields{
			"name": &graphql.Field{Type: graphql.String},
			"missionPatch": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"size": &graphql.ArgumentConfig{
						Type:         patchSizeEnum,
						DefaultValue: string(models.PatchSizeLarge),
					},
				},
				Resolve: r.resolveMissionPatch,
			},
		},
	})

	launchType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Launch",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"site":    &graphql.Field{Type: graphql.String},
			"mission": &graphql.Field{Type: missionType},
			"rocket":  &graphql.Field{Type: rocketType},
			"isBooked": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Resolve: r.resolveIsBooked,
			},
		},
	})

	launchConnectionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "LaunchConnection",
		Fields: graphql.Fields{
			"cursor":   &graphql.Field{Type: graphql.String},
			"hasMore":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"launches": &graphql.Field{Type: graphql.NewList(launchType)},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"email": &graphql.Field{Type: graphql.String},
			"trips": &graphql.Field{
				Type:    graphql.NewList(launchType),
				Resolve: r.resolveTrips,
			},
		},
	})

	tripUpdateType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TripUpdateResponse",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message": &graphql.Field{Type: graphql.String},
			"launches": &graphql.Field{
				Type:    graphql.NewList(launchType),
				Resolve: resolveTripLaunches,
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"launches": &graphql.Field{
				Type: launchConnectionType,
				Args: graphql.FieldConfigArgument{
					"pageSize": &graphql.ArgumentConfig{
						Type:         graphql.Int,
						DefaultValue: defaultPageSize,
					},
					"after": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
				},
				Resolve: r.resolveLaunches,
			},
			"launch": &graphql.Field{
				Type: launchType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
				},
				Resolve: r.resolveLaunch,
			},
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.resolveMe,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"bookTrips": &graphql.Field{
				Type: tripUpdateType,
				Args: graphql.FieldConfigArgument{
					"launchIds": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID))),
					},
				},
				Resolve: r.resolveBookTrips,
			},
			"cancelTrip": &graphql.Field{
				Type: tripUpdateType,
				Args: graphql.FieldConfigArgument{
					"launchId": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
				},
				Resolve: r.resolveCancelTrip,
			},
			"login": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
				},
				Resolve: r.resolveLogin,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
