package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/utils"
)

const (
	headerPrefer  = "Prefer"
	preferMinimal = "return=minimal"
)

// restClient implements [DataClient] against a hosted PostgREST-compatible
// data service (e.g. Supabase). Tables are resources under the REST path,
// filters are "column=eq.value" query parameters and errors come back as
// {code, message, details, hint} JSON objects.
type restClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewRESTClient creates a [DataClient] for the data service at cfg.URL.
func NewRESTClient(cfg config.Remote, log *logger.Logger) (DataClient, error) {
	baseURL, err := normalizeBaseURL(cfg.URL, cfg.RESTPath)
	if err != nil {
		log.Err(err).Str("func", "NewRESTClient").Msg("invalid data service URL")
		return nil, fmt.Errorf("invalid data service URL: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.Timeout).WithAPIKey(cfg.Key)

	return &restClient{
		client: client,
		logger: log,
	}, nil
}

func (c *restClient) Select(ctx context.Context, q *Query, dest any) error {
	data, err := c.selectRows(ctx, q, 0)
	if err != nil {
		return err
	}

	return decodeRows(data, dest)
}

func (c *restClient) SelectOne(ctx context.Context, q *Query, dest any) error {
	data, err := c.selectRows(ctx, q, singleRowProbe)
	if err != nil {
		return err
	}

	return decodeSingleRow(data, dest)
}

func (c *restClient) Insert(ctx context.Context, table string, record Record) error {
	if len(record) == 0 {
		return ErrEmptyRecord
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerPrefer, preferMinimal).
		SetBody([]Record{record}).
		Post(tablePath(table))

	return c.result("restClient.Insert", resp, err)
}

func (c *restClient) Update(ctx context.Context, q *Query, values Record) error {
	if len(q.Filters()) == 0 {
		return ErrMissingFilter
	}
	if len(values) == 0 {
		return ErrEmptyRecord
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerPrefer, preferMinimal).
		SetQueryParamsFromValues(filterParams(q)).
		SetBody(values).
		Patch(tablePath(q.Table()))

	return c.result("restClient.Update", resp, err)
}

func (c *restClient) Delete(ctx context.Context, q *Query) error {
	if len(q.Filters()) == 0 {
		return ErrMissingFilter
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader(headerPrefer, preferMinimal).
		SetQueryParamsFromValues(filterParams(q)).
		Delete(tablePath(q.Table()))

	return c.result("restClient.Delete", resp, err)
}

// Ping requests the service root, which describes the exposed schema.
func (c *restClient) Ping(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Get("/")
	return c.result("restClient.Ping", resp, err)
}

// Close is a no-op: the HTTP transport keeps no state worth releasing.
func (c *restClient) Close() error {
	return nil
}

func (c *restClient) selectRows(ctx context.Context, q *Query, limit int) ([]byte, error) {
	params := filterParams(q)
	params.Set("select", selectParam(q.Columns()))
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(tablePath(q.Table()))
	if err = c.result("restClient.selectRows", resp, err); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// result turns a transport error or a non-2xx response into an error.
func (c *restClient) result(funcName string, resp *resty.Response, err error) error {
	if err != nil {
		c.logger.Err(err).Str("func", funcName).Msg("error sending request to data service")
		return fmt.Errorf("%w: %w", ErrSendingRequest, err)
	}

	if err = mapResponseError(resp); err != nil {
		c.logger.Err(err).Str("func", funcName).Int("status", resp.StatusCode()).Msg("data service rejected request")
		return err
	}

	return nil
}

// mapResponseError decodes the data service's error body into a *DataError.
// Bodies that are not error objects keep the raw text as message.
func mapResponseError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
		Hint    string `json:"hint"`
	}
	raw := strings.TrimSpace(string(resp.Body()))
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Message == "" {
		body.Message = raw
	}
	if body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode())
	}

	dataErr := NewDataError(body.Code, body.Message, body.Details, body.Hint)
	dataErr.Status = resp.StatusCode()
	if body.Code == "" {
		dataErr.kind = classifyStatus(resp.StatusCode())
	}

	return dataErr
}

func classifyStatus(status int) error {
	switch status {
	case http.StatusConflict:
		return ErrUniqueViolation
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrPermissionDenied
	case http.StatusBadRequest, http.StatusNotFound:
		return ErrInvalidQuery
	}
	return ErrDataStoreFailure
}

func filterParams(q *Query) url.Values {
	params := url.Values{}
	for _, f := range q.Filters() {
		params.Add(f.Column, "eq."+fmt.Sprint(f.Value))
	}
	return params
}

func selectParam(columns []string) string {
	if len(columns) == 0 {
		return "*"
	}
	return strings.Join(columns, ",")
}

func tablePath(table string) string {
	return "/" + url.PathEscape(table)
}

// normalizeBaseURL validates raw and appends the REST path to it.
func normalizeBaseURL(raw, restPath string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	base := strings.TrimRight(u.String(), "/")
	if restPath = strings.Trim(restPath, "/"); restPath != "" {
		base += "/" + restPath
	}

	return base, nil
}
