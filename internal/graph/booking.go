package graph

import (
	"fmt"
	"launch-gateway/internal/auth"
	"launch-gateway/internal/models"
	"strings"

	"github.com/graphql-go/graphql"
)

// resolveBookTrips books a batch of launches for the current user.
// Success requires every id to book; on partial failure the message
// names the ids that did not, but the launches are resolved for the
// whole request regardless. Store and upstream failures abort the
// operation.
func (r *Resolver) resolveBookTrips(p graphql.ResolveParams) (interface{}, error) {
	user := auth.UserFrom(p.Context)
	if user == nil {
		return &models.TripUpdate{Message: "authentication required"}, nil
	}

	launchIDs := idArgs(p.Args["launchIds"])

	booked, err := r.users.BookTrips(p.Context, user.ID, launchIDs)
	if err != nil {
		return nil, err
	}

	bookedSet := make(map[string]bool, len(booked))
	for _, id := range booked {
		bookedSet[id] = true
	}
	var failed []string
	for _, id := range launchIDs {
		if !bookedSet[id] {
			failed = append(failed, id)
		}
	}

	message := "trips booked successfully"
	if len(failed) > 0 {
		message = fmt.Sprintf("the following launches couldn't be booked: %s", strings.Join(failed, ", "))
	}

	// Read-back is unconditional: resolve every requested id, booked or not.
	launches, err := r.source.LaunchesByIDs(p.Context, launchIDs)
	if err != nil {
		return nil, err
	}

	return &models.TripUpdate{
		Success:  len(failed) == 0,
		Message:  message,
		Launches: launches,
	}, nil
}

func (r *Resolver) resolveCancelTrip(p graphql.ResolveParams) (interface{}, error) {
	user := auth.UserFrom(p.Context)
	if user == nil {
		return &models.TripUpdate{Message: "authentication required"}, nil
	}

	launchID, _ := p.Args["launchId"].(string)

	ok, err := r.users.CancelTrip(p.Context, user.ID, launchID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &models.TripUpdate{
			Message: fmt.Sprintf("failed to cancel trip for launch %s", launchID),
		}, nil
	}

	launch, err := r.source.Launch(p.Context, launchID)
	if err != nil {
		return nil, err
	}
	launches := []models.Launch{}
	if launch != nil {
		launches = append(launches, *launch)
	}

	return &models.TripUpdate{
		Success:  true,
		Message:  fmt.Sprintf("trip for launch %s cancelled", launchID),
		Launches: launches,
	}, nil
}

// resolveTripLaunches keeps an unset launches list null on the wire; a
// nil slice would otherwise serialize as an empty list.
func resolveTripLaunches(p graphql.ResolveParams) (interface{}, error) {
	resp, ok := p.Source.(*models.TripUpdate)
	if !ok || resp.Launches == nil {
		return nil, nil
	}
	return resp.Launches, nil
}

// idArgs coerces a GraphQL list argument of IDs into strings.
func idArgs(arg interface{}) []string {
	raw, _ := arg.([]interface{})
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		ids = append(ids, fmt.Sprintf("%v", v))
	}
	return ids
}
