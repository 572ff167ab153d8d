// Package canvas implements the outbound Canvas REST client. Collections are
// paginated: each response may carry a Link header whose rel="next" entry
// points at the following page, which the client follows until exhaustion or
// until the configured page ceiling.
package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cnam2653/canvas-assignment-calendar/core"
	"github.com/cnam2653/canvas-assignment-calendar/core/course"
)

type restClient struct {
	baseURL  string
	pageSize int
	maxPages int
	client   *http.Client
}

var _ course.Client = (*restClient)(nil)

func NewClient(conf *core.Config) course.Client {
	return &restClient{
		baseURL:  conf.Canvas.BaseURL,
		pageSize: conf.Canvas.PageSize,
		maxPages: conf.Canvas.MaxPages,
		client:   &http.Client{Timeout: conf.Canvas.RequestTimeout},
	}
}

func (c *restClient) FetchCourses(ctx context.Context, token string) ([]course.Course, error) {
	url := fmt.Sprintf("%s/courses?per_page=%d", c.baseURL, c.pageSize)
	return fetchAll[course.Course](ctx, c, url, token)
}

func (c *restClient) FetchAssignments(ctx context.Context, courseID int, token string) ([]course.RemoteAssignment, error) {
	url := fmt.Sprintf("%s/courses/%d/assignments?per_page=%d", c.baseURL, courseID, c.pageSize)
	return fetchAll[course.RemoteAssignment](ctx, c, url, token)
}

// fetchAll materializes a paginated collection starting at rawURL. Any page
// failing aborts the whole fetch; already accumulated pages are discarded.
func fetchAll[T any](ctx context.Context, c *restClient, rawURL, token string) ([]T, error) {
	items := make([]T, 0)
	url := rawURL
	for page := 0; url != ""; page++ {
		if page >= c.maxPages {
			return nil, ErrPaginationLimit
		}
		pageItems, next, err := fetchPage[T](ctx, c, url, token)
		if err != nil {
			return nil, err
		}
		items = append(items, pageItems...)
		url = next
	}
	return items, nil
}

func fetchPage[T any](ctx context.Context, c *restClient, url, token string) (items []T, next string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", &RemoteError{URL: url, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", &RemoteError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &RemoteError{URL: url, Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", &RemoteError{StatusCode: resp.StatusCode, URL: url}
	}
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, "", &RemoteError{URL: url, Err: err}
	}
	return items, nextPageURL(resp.Header.Get("Link")), nil
}
