package services

import (
	"sort"
	"time"

	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/mover"
	"moveout/internal/pkg/errs"
)

const (
	// DefaultBaseMinutes is the fixed per-job overhead: parking, stairs,
	// paperwork.
	DefaultBaseMinutes = 30

	// DefaultMinutesPerUnitVolume is the loading time each unit of volume
	// adds to a job.
	DefaultMinutesPerUnitVolume = 5

	// DefaultMinutesPerCell converts grid distance into travel minutes.
	DefaultMinutesPerCell = 5
)

// TravelEstimator converts a hop between two locations into minutes. The
// geometry is injected so the greedy construction can be tested against a
// fixed model and swapped for a routing service later.
type TravelEstimator func(from, to kernel.Location) (int, error)

// ManhattanTravelEstimator estimates travel as grid distance times a fixed
// minutes-per-cell factor.
func ManhattanTravelEstimator(minutesPerCell int) TravelEstimator {
	return func(from, to kernel.Location) (int, error) {
		dist, err := from.Distance(to)
		if err != nil {
			return 0, err
		}
		return dist * minutesPerCell, nil
	}
}

// JobValue pairs a job with its earnings-per-service-minute score. Travel is
// deliberately excluded from the score so it stays a stable per-job metric
// independent of route order.
type JobValue struct {
	Job        *job.Job
	ValueScore float64
}

// JobInRoute is one leg of a suggested route.
type JobInRoute struct {
	Job                       *job.Job
	TravelMinutesFromPrevious int
	CumulativeMinutes         int
	CumulativeEarnings        float64
}

// SuggestedRoute is an ordered plan for one mover. It is ephemeral: nothing
// is reserved, and every referenced job remains acceptable by any other
// mover until this one accepts it.
type SuggestedRoute struct {
	Jobs          []JobInRoute
	TotalMinutes  int
	TotalEarnings float64
}

// RoutePlanner builds earning-maximizing routes with a greedy
// value-density heuristic. Job counts per planning request are small, so
// the simple explainable choice beats exact scheduling: the UI has to
// justify each pick to the mover.
type RoutePlanner struct {
	baseMinutes          int
	minutesPerUnitVolume int
	travel               TravelEstimator
}

// NewRoutePlanner creates a planner with an explicit duration model and
// travel estimator.
func NewRoutePlanner(baseMinutes, minutesPerUnitVolume int, travel TravelEstimator) (RoutePlanner, error) {
	if baseMinutes < 0 {
		return RoutePlanner{}, errs.NewValueIsInvalidError("baseMinutes")
	}
	if minutesPerUnitVolume < 0 {
		return RoutePlanner{}, errs.NewValueIsInvalidError("minutesPerUnitVolume")
	}
	if travel == nil {
		return RoutePlanner{}, errs.NewValueIsRequiredError("travel")
	}
	return RoutePlanner{
		baseMinutes:          baseMinutes,
		minutesPerUnitVolume: minutesPerUnitVolume,
		travel:               travel,
	}, nil
}

// NewDefaultRoutePlanner creates a planner with the default linear duration
// model and Manhattan travel.
func NewDefaultRoutePlanner() RoutePlanner {
	p, err := NewRoutePlanner(DefaultBaseMinutes, DefaultMinutesPerUnitVolume,
		ManhattanTravelEstimator(DefaultMinutesPerCell))
	if err != nil {
		panic(err) // constants, cannot fail
	}
	return p
}

// EstimateJobDuration is the service time of a job: a fixed base plus a
// linear per-volume loading cost. It drives both availability filtering and
// route budgeting.
func (p RoutePlanner) EstimateJobDuration(volume int) int {
	return p.baseMinutes + volume*p.minutesPerUnitVolume
}

// FilterJobsByAvailability keeps a job iff its whole service interval fits
// one of the mover's windows on the job's weekday. Order is preserved.
func (p RoutePlanner) FilterJobsByAvailability(jobs []*job.Job, availability mover.Availability) ([]*job.Job, error) {
	fitting := make([]*job.Job, 0, len(jobs))
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return nil, err
		}

		covered, err := availability.Covers(j.ScheduledTime(), p.EstimateJobDuration(j.Volume()))
		if err != nil {
			return nil, err
		}
		if covered {
			fitting = append(fitting, j)
		}
	}
	return fitting, nil
}

// CalculateJobValues scores each job as price per service minute.
func (p RoutePlanner) CalculateJobValues(jobs []*job.Job) []JobValue {
	values := make([]JobValue, 0, len(jobs))
	for _, j := range jobs {
		values = append(values, JobValue{
			Job:        j,
			ValueScore: j.Price() / float64(p.EstimateJobDuration(j.Volume())),
		})
	}
	return values
}

// BuildOptimalRoute greedily assembles a route from the available jobs. At
// each step it picks, among the jobs that still fit the remaining time
// budget and whose service interval still fits an availability window at
// the projected arrival time, the one with the highest value score; ties
// break by shorter travel, then earlier scheduled time, then job ID, so
// the plan is deterministic for a given snapshot. The route is anchored at
// the first pick: the mover leaves so as to reach it at its scheduled
// time, and every later arrival is projected from that anchor.
func (p RoutePlanner) BuildOptimalRoute(
	jobs []*job.Job,
	startLocation kernel.Location,
	availability mover.Availability,
	maxDurationMinutes int,
) (SuggestedRoute, error) {
	if err := startLocation.Validate(); err != nil {
		return SuggestedRoute{}, err
	}
	if maxDurationMinutes <= 0 {
		return SuggestedRoute{}, errs.NewValueIsInvalidError("maxDurationMinutes")
	}

	eligible, err := p.FilterJobsByAvailability(jobs, availability)
	if err != nil {
		return SuggestedRoute{}, err
	}
	remaining := p.CalculateJobValues(eligible)

	route := SuggestedRoute{}
	currentLocation := startLocation
	elapsed := 0
	earnings := 0.0
	var routeStart time.Time

	for len(remaining) > 0 {
		best, bestTravel, err := p.pickBest(
			remaining, currentLocation, elapsed, maxDurationMinutes, availability, routeStart)
		if err != nil {
			return SuggestedRoute{}, err
		}
		if best < 0 {
			break
		}

		chosen := remaining[best]
		if routeStart.IsZero() {
			routeStart = chosen.Job.ScheduledTime().Add(-time.Duration(bestTravel) * time.Minute)
		}
		service := p.EstimateJobDuration(chosen.Job.Volume())
		elapsed += bestTravel + service
		earnings += chosen.Job.Price()

		route.Jobs = append(route.Jobs, JobInRoute{
			Job:                       chosen.Job,
			TravelMinutesFromPrevious: bestTravel,
			CumulativeMinutes:         elapsed,
			CumulativeEarnings:        earnings,
		})

		currentLocation = chosen.Job.DropoffAddress().Location()
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	route.TotalMinutes = elapsed
	route.TotalEarnings = earnings
	return route, nil
}

// pickBest returns the index of the highest-value job that fits the budget
// and whose window is still reachable at the projected arrival, together
// with its travel time, or -1 when nothing fits. Before the first pick the
// route has no anchor yet; the pre-filter already checked each job's own
// scheduled interval, so only the budget applies.
func (p RoutePlanner) pickBest(
	candidates []JobValue,
	currentLocation kernel.Location,
	elapsed, maxDurationMinutes int,
	availability mover.Availability,
	routeStart time.Time,
) (int, int, error) {
	bestIdx := -1
	bestTravel := 0

	for i, c := range candidates {
		travel, err := p.travel(currentLocation, c.Job.PickupAddress().Location())
		if err != nil {
			return 0, 0, err
		}

		service := p.EstimateJobDuration(c.Job.Volume())
		if elapsed+travel+service > maxDurationMinutes {
			continue
		}

		if !routeStart.IsZero() {
			arrival := routeStart.Add(time.Duration(elapsed+travel) * time.Minute)
			covered, err := availability.Covers(arrival, service)
			if err != nil {
				return 0, 0, err
			}
			if !covered {
				continue
			}
		}

		if bestIdx < 0 || p.beats(c, travel, candidates[bestIdx], bestTravel) {
			bestIdx = i
			bestTravel = travel
		}
	}
	return bestIdx, bestTravel, nil
}

func (p RoutePlanner) beats(a JobValue, aTravel int, b JobValue, bTravel int) bool {
	if a.ValueScore != b.ValueScore {
		return a.ValueScore > b.ValueScore
	}
	if aTravel != bTravel {
		return aTravel < bTravel
	}
	if !a.Job.ScheduledTime().Equal(b.Job.ScheduledTime()) {
		return a.Job.ScheduledTime().Before(b.Job.ScheduledTime())
	}
	return a.Job.ID().String() < b.Job.ID().String()
}

// SortByValue orders job values by descending score, for display next to a
// suggested route. Stable so equal scores keep snapshot order.
func SortByValue(values []JobValue) {
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].ValueScore > values[j].ValueScore
	})
}
