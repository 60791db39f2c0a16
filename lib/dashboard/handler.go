package dashboardhandler

import (
	"broilink-backend/lib/analytics"
	farmshandler "broilink-backend/lib/farms"
	farmsstore "broilink-backend/lib/farms/store"
	reportshandler "broilink-backend/lib/reports"
	requestshandler "broilink-backend/lib/requests"
	sensorshandler "broilink-backend/lib/sensors"
	usershandler "broilink-backend/lib/users"
	initchecker "broilink-backend/lib/utils/init-checker"
	"broilink-backend/models"
	dashboardapimodels "broilink-backend/models/api/dashboard"
	dbmodels "broilink-backend/models/db"
)

const (
	recentRequestsLimit = 3
	recentReportsLimit  = 5
	summaryDays         = 7
)

type Provider interface {
	Admin() (*dashboardapimodels.AdminDashboard, error)
	Owner(ownerID string) (*dashboardapimodels.OwnerDashboard, error)
	Peternak(peternakID string) (*dashboardapimodels.PeternakDashboard, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"usersProvider", usershandler.Instance,
		"farmsProvider", farmshandler.Instance,
		"requestsProvider", requestshandler.Instance,
		"reportsProvider", reportshandler.Instance,
		"analyticsProvider", analytics.Instance,
	)
	Instance = NewInstance(usershandler.Instance, farmshandler.Instance, requestshandler.Instance,
		reportshandler.Instance, analytics.Instance)
}

func NewInstance(users usershandler.Provider, farms farmshandler.Provider, requests requestshandler.Provider,
	reports reportshandler.Provider, analyticsProvider analytics.Provider) Provider {
	return impl{
		users:     users,
		farms:     farms,
		requests:  requests,
		reports:   reports,
		analytics: analyticsProvider,
	}
}

type impl struct {
	users     usershandler.Provider
	farms     farmshandler.Provider
	requests  requestshandler.Provider
	reports   reportshandler.Provider
	analytics analytics.Provider
}

func (i impl) Admin() (*dashboardapimodels.AdminDashboard, error) {
	owners, err := i.users.CountByRole(models.OwnerRole)
	if err != nil {
		return nil, err
	}
	peternaks, err := i.users.CountByRole(models.PeternakRole)
	if err != nil {
		return nil, err
	}
	farms, err := i.farms.List(farmsstore.Filter{})
	if err != nil {
		return nil, err
	}
	pending, err := i.requests.CountPending()
	if err != nil {
		return nil, err
	}
	recent, err := i.requests.Recent(recentRequestsLimit)
	if err != nil {
		return nil, err
	}
	return &dashboardapimodels.AdminDashboard{
		TotalOwners:     owners,
		TotalPeternak:   peternaks,
		TotalFarms:      int64(len(farms)),
		PendingRequests: pending,
		RecentRequests:  recent,
	}, nil
}

func (i impl) Owner(ownerID string) (*dashboardapimodels.OwnerDashboard, error) {
	farms, err := i.farms.OwnedFarms(ownerID)
	if err != nil {
		return nil, err
	}
	peternaks, err := i.users.Peternaks(ownerID)
	if err != nil {
		return nil, err
	}
	result := &dashboardapimodels.OwnerDashboard{
		TotalFarms:    len(farms),
		TotalPeternak: len(peternaks),
		Farms:         make([]dashboardapimodels.FarmSummary, 0, len(farms)),
	}
	farmIDs := make([]string, 0, len(farms))
	for _, farm := range farms {
		summary, err := i.farmSummary(farm)
		if err != nil {
			return nil, err
		}
		if summary.Status == models.SensorStatusDanger {
			result.FarmsInDanger++
		}
		result.Farms = append(result.Farms, *summary)
		farmIDs = append(farmIDs, farm.ID)
	}
	names := map[string]string{}
	for _, farm := range farms {
		names[farm.ID] = farm.FarmName
	}
	result.RecentActivities, err = i.reports.Recent(farmIDs, recentReportsLimit)
	if err != nil {
		return nil, err
	}
	for idx := range result.RecentActivities {
		result.RecentActivities[idx].FarmName = names[result.RecentActivities[idx].FarmID]
	}
	return result, nil
}

func (i impl) Peternak(peternakID string) (*dashboardapimodels.PeternakDashboard, error) {
	farm, err := i.farms.AssignedFarm(peternakID)
	if err != nil {
		return nil, err
	}
	result := &dashboardapimodels.PeternakDashboard{}
	if farm == nil {
		return result, nil
	}
	if result.Farm, err = i.farmSummary(*farm); err != nil {
		return nil, err
	}
	summary, err := i.reports.Summary(farm.ID, summaryDays)
	if err != nil {
		return nil, err
	}
	result.Summary = *summary
	analyticsView, err := i.analytics.Analytics(*farm, models.Period1Week)
	if err != nil {
		return nil, err
	}
	result.Series = analyticsView.Series
	return result, nil
}

func (i impl) farmSummary(farm dbmodels.Farm) (*dashboardapimodels.FarmSummary, error) {
	current, err := i.analytics.CurrentReading(farm.ID)
	if err != nil {
		return nil, err
	}
	summary := &dashboardapimodels.FarmSummary{
		FarmID:   farm.ID,
		FarmName: farm.FarmName,
		Location: farm.Location,
		Status:   sensorshandler.StatusOf(current),
		Current:  current,
	}
	if farm.Peternak != nil {
		summary.PeternakName = farm.Peternak.Name
	}
	return summary, nil
}
