// Package notion implements the TaskDatabase port over the Notion API.
package notion

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jomei/notionapi"

	apperrors "github.com/taskmill/taskmill/internal/errors"
	"github.com/taskmill/taskmill/internal/domain/model"
)

const defaultPageSize = 100

// databaseQuerier is the slice of the Notion client's database service
// used by this adapter. Narrowing the dependency keeps tests offline.
type databaseQuerier interface {
	Query(
		ctx context.Context,
		id notionapi.DatabaseID,
		req *notionapi.DatabaseQueryRequest,
	) (*notionapi.DatabaseQueryResponse, error)
}

// pageWriter is the slice of the Notion client's page service used by
// this adapter.
type pageWriter interface {
	Create(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error)
	Update(
		ctx context.Context,
		id notionapi.PageID,
		req *notionapi.PageUpdateRequest,
	) (*notionapi.Page, error)
}

// ClientOptions groups the settings for constructing a Client.
type ClientOptions struct {
	// Token is the Notion integration token. Required.
	Token string
	// DatabaseID identifies the todo database. Required.
	DatabaseID string
	// PageSize bounds query result pages; defaults to 100 (the API max).
	PageSize int
	// Logger is optional.
	Logger *slog.Logger
}

// Client adapts the Notion API to the core.TaskDatabase port. All
// transport, retry, and auth handshake behavior belongs to the
// underlying client library; this adapter only shapes requests and
// translates rows and errors.
type Client struct {
	db         databaseQuerier
	pages      pageWriter
	databaseID notionapi.DatabaseID
	pageSize   int
	logger     *slog.Logger
}

// NewClient validates the options and constructs a Client backed by the
// Notion API. Credential validity is not checked here; call Ping.
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Token == "" {
		return nil, apperrors.Config("notion token is required")
	}
	if opts.DatabaseID == "" {
		return nil, apperrors.Config("database id is required")
	}

	pageSize := opts.PageSize
	if pageSize <= 0 || pageSize > defaultPageSize {
		pageSize = defaultPageSize
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	api := notionapi.NewClient(notionapi.Token(opts.Token))

	return &Client{
		db:         api.Database,
		pages:      api.Page,
		databaseID: notionapi.DatabaseID(opts.DatabaseID),
		pageSize:   pageSize,
		logger:     logger.With("component", "notion_client"),
	}, nil
}

// Ping verifies the token and database id with a minimal query. A
// failure here is fatal at startup: a daemon with bad credentials must
// exit non-zero, not poll as a silent no-op.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.db.Query(ctx, c.databaseID, &notionapi.DatabaseQueryRequest{PageSize: 1})
	if err != nil {
		return classifyAPIError("ping database", err)
	}
	return nil
}

// QueryDue returns every row whose recurring-frequency select and due
// date are both set, following pagination cursors to exhaustion.
func (c *Client) QueryDue(ctx context.Context) ([]model.Task, error) {
	req := &notionapi.DatabaseQueryRequest{
		Filter: notionapi.AndCompoundFilter{
			notionapi.PropertyFilter{
				Property: model.PropRecurringFrequency,
				Select:   &notionapi.SelectFilterCondition{IsNotEmpty: true},
			},
			notionapi.PropertyFilter{
				Property: model.PropDueDate,
				Date:     &notionapi.DateFilterCondition{IsNotEmpty: true},
			},
		},
		PageSize: c.pageSize,
	}

	var tasks []model.Task
	for {
		resp, err := c.db.Query(ctx, c.databaseID, req)
		if err != nil {
			return nil, classifyAPIError("query database", err)
		}

		for i := range resp.Results {
			tasks = append(tasks, taskFromPage(resp.Results[i]))
		}

		if !resp.HasMore {
			return tasks, nil
		}
		req.StartCursor = resp.NextCursor
	}
}

// CreateNextOccurrence clones the source row with the due date advanced.
// The clone carries the source's properties and icon; its scheduled
// checkbox starts false.
func (c *Client) CreateNextOccurrence(
	ctx context.Context,
	source model.Task,
	due time.Time,
) (model.Task, error) {
	page, ok := source.Payload.(notionapi.Page)
	if !ok {
		return model.Task{}, apperrors.Malformedf("task %s has no source page payload", source.ID)
	}

	req := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: c.databaseID,
		},
		Properties: clonedProperties(page, due),
	}
	if page.Icon != nil {
		req.Icon = page.Icon
	}

	created, err := c.pages.Create(ctx, req)
	if err != nil {
		return model.Task{}, classifyAPIError("create page", err)
	}
	return taskFromPage(*created), nil
}

// MarkScheduled sets the scheduled checkbox on the source row.
func (c *Client) MarkScheduled(ctx context.Context, taskID string) error {
	_, err := c.pages.Update(ctx, notionapi.PageID(taskID), &notionapi.PageUpdateRequest{
		Properties: notionapi.Properties{
			model.PropRecurrenceScheduled: &notionapi.CheckboxProperty{Checkbox: true},
		},
	})
	if err != nil {
		return classifyAPIError("update page", err)
	}
	return nil
}

// classifyAPIError maps Notion API failures onto the application error
// taxonomy so the caller can tell fatal auth problems from per-cycle
// transients.
func classifyAPIError(op string, err error) error {
	var apiErr *notionapi.Error
	if !errors.As(err, &apiErr) {
		// Transport-level failure: DNS, timeout, connection reset.
		return apperrors.Wrapf(err, apperrors.ErrCodeUnavailable, "%s", op)
	}

	switch apiErr.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.Wrapf(err, apperrors.ErrCodeAuth, "%s", op)
	case http.StatusNotFound:
		return apperrors.Wrapf(err, apperrors.ErrCodeNotFound, "%s", op)
	case http.StatusTooManyRequests:
		return apperrors.Wrapf(err, apperrors.ErrCodeRateLimited, "%s", op)
	case http.StatusBadRequest:
		return apperrors.Wrapf(err, apperrors.ErrCodeMalformed, "%s", op)
	}
	if apiErr.Status >= http.StatusInternalServerError {
		return apperrors.Wrapf(err, apperrors.ErrCodeUnavailable, "%s", op)
	}
	return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "%s", op)
}
