package graph

import (
	"launch-gateway/internal/auth"
	"launch-gateway/internal/models"
	"launch-gateway/internal/pagination"
	"sort"

	"github.com/graphql-go/graphql"
)

// resolveLaunches fetches the full upstream sequence, imposes the
// canonical reverse-chronological order, and cuts one page out of it.
func (r *Resolver) resolveLaunches(p graphql.ResolveParams) (interface{}, error) {
	pageSize, _ := p.Args["pageSize"].(int)
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	after, _ := p.Args["after"].(string)

	launches, err := r.source.Launches(p.Context)
	if err != nil {
		return nil, err
	}

	sort.Slice(launches, func(i, j int) bool {
		return launches[i].DateUnix > launches[j].DateUnix
	})

	page := pagination.Paginate(launches, after, pageSize)

	resp := models.Page{
		Launches: page.Items,
		HasMore:  page.HasMore,
	}
	if len(page.Items) > 0 {
		cursor := page.Cursor
		resp.Cursor = &cursor
	}
	return resp, nil
}

func (r *Resolver) resolveLaunch(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	launch, err := r.source.Launch(p.Context, id)
	if err != nil {
		return nil, err
	}
	if launch == nil {
		return nil, nil
	}
	return launch, nil
}

func (r *Resolver) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	user := auth.UserFrom(p.Context)
	if user == nil {
		return nil, nil
	}
	return user, nil
}

// resolveMissionPatch picks the patch slot matching the requested size;
// the schema defaults the argument to LARGE.
func (r *Resolver) resolveMissionPatch(p graphql.ResolveParams) (interface{}, error) {
	mission, ok := p.Source.(*models.Mission)
	if !ok || mission == nil {
		return nil, nil
	}
	size, _ := p.Args["size"].(string)
	patch := mission.Patch(models.PatchSize(size))
	if patch == "" {
		return nil, nil
	}
	return patch, nil
}

// resolveIsBooked reports whether the current user booked this launch.
// Anonymous requests resolve to false, never an error.
func (r *Resolver) resolveIsBooked(p graphql.ResolveParams) (interface{}, error) {
	launch, ok := launchFromSource(p.Source)
	if !ok {
		return false, nil
	}
	user := auth.UserFrom(p.Context)
	if user == nil {
		return false, nil
	}
	return r.users.IsBookedOnLaunch(p.Context, user.ID, launch.ID)
}

// resolveTrips resolves the user's booked launch ids through a batched
// upstream lookup. Ids the upstream no longer knows are dropped.
func (r *Resolver) resolveTrips(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(*models.User)
	if !ok || user == nil {
		return []models.Launch{}, nil
	}

	ids, err := r.users.LaunchIDsByUser(p.Context, user.ID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Launch{}, nil
	}
	return r.source.LaunchesByIDs(p.Context, ids)
}

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	token, ok := auth.MakeToken(email)
	if !ok {
		return nil, nil
	}
	return token, nil
}

func launchFromSource(source interface{}) (models.Launch, bool) {
	switch v := source.(type) {
	case models.Launch:
		return v, true
	case *models.Launch:
		if v != nil {
			return *v, true
		}
	}
	return models.Launch{}, false
}
