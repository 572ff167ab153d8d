package course

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/cnam2653/canvas-assignment-calendar/core"
	"github.com/cnam2653/canvas-assignment-calendar/core/credential"
)

type (
	// Client is the remote LMS fetcher the service consumes; services/canvas
	// implements it against the Canvas REST API.
	Client interface {
		FetchCourses(ctx context.Context, token string) ([]Course, error)
		FetchAssignments(ctx context.Context, courseID int, token string) ([]RemoteAssignment, error)
	}

	// Service aggregates a user's active courses and their assignments into
	// a single calendar-ready result. It is a stateless pass-through: nothing
	// fetched is cached across requests, and no failed call is retried.
	Service struct {
		client     Client
		creds      credential.Repository
		selector   Selector
		logger     core.Logger
		maxFetches int
		timeout    time.Duration
	}
)

func NewService(conf *core.Config, client Client, creds credential.Repository, selector Selector, logger core.Logger) *Service {
	maxFetches := conf.Canvas.MaxCourseFetches
	if maxFetches < 1 {
		maxFetches = 1
	}
	return &Service{
		client:     client,
		creds:      creds,
		selector:   selector,
		logger:     logger,
		maxFetches: maxFetches,
		timeout:    conf.Canvas.AggregationTimeout,
	}
}

// GetCourses resolves uid's token, fetches and filters the course list, then
// fetches every selected course's assignments concurrently.
//
// The fan-out is fail-fast: the first failing course fetch cancels its
// siblings and fails the whole call; partial results are never returned.
// Result order follows selection order, not completion order.
func (svc *Service) GetCourses(ctx context.Context, uid string) ([]CourseAssignments, error) {
	token, err := svc.creds.GetToken(uid)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, svc.timeout)
	defer cancel()

	courses, err := svc.client.FetchCourses(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "fetching course list")
	}

	selected := svc.selector.Select(courses, time.Now())
	svc.logger.Debug("selected active courses", map[string]interface{}{
		"uid": uid, "fetched": len(courses), "selected": len(selected),
	})

	// Each task owns one slot; sharing only the slice header needs no lock.
	results := make([]CourseAssignments, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(svc.maxFetches)
	for i, c := range selected {
		i, c := i, c
		g.Go(func() error {
			raw, err := svc.client.FetchAssignments(gctx, c.ID, token)
			if err != nil {
				return errors.Wrapf(err, "fetching assignments for course %d", c.ID)
			}
			results[i] = NewCourseAssignments(c, raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
