package spacex

import (
	"launch-gateway/internal/models"
	"strconv"
)

// record mirrors the subset of the upstream launch payload this gateway
// reads. Nested objects are optional and may be absent entirely.
type record struct {
	FlightNumber   int    `json:"flight_number"`
	LaunchDateUnix int64  `json:"launch_date_unix"`
	MissionName    string `json:"mission_name"`
	LaunchSite     *struct {
		SiteName string `json:"site_name"`
	} `json:"launch_site"`
	Links *struct {
		MissionPatchSmall string `json:"mission_patch_small"`
		MissionPatch      string `json:"mission_patch"`
	} `json:"links"`
	Rocket *struct {
		RocketID   string `json:"rocket_id"`
		RocketName string `json:"rocket_name"`
		RocketType string `json:"rocket_type"`
	} `json:"rocket"`
}

// normalize converts one raw upstream record into the canonical Launch.
// The cursor derives from the launch timestamp, so it is stable across
// repeated fetches and distinct across chronological positions. Missing
// nested objects become nil embedded entities, never errors.
func normalize(rec record) models.Launch {
	launch := models.Launch{
		ID:       strconv.Itoa(rec.FlightNumber),
		Cursor:   strconv.FormatInt(rec.LaunchDateUnix, 10),
		DateUnix: rec.LaunchDateUnix,
	}

	if rec.LaunchSite != nil {
		launch.Site = rec.LaunchSite.SiteName
	}

	if rec.MissionName != "" || rec.Links != nil {
		mission := &models.Mission{Name: rec.MissionName}
		if rec.Links != nil {
			mission.PatchSmall = rec.Links.MissionPatchSmall
			mission.PatchLarge = rec.Links.MissionPatch
		}
		launch.Mission = mission
	}

	if rec.Rocket != nil {
		launch.Rocket = &models.Rocket{
			ID:   rec.Rocket.RocketID,
			Name: rec.Rocket.RocketName,
			Type: rec.Rocket.RocketType,
		}
	}

	return launch
}
