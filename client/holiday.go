package client

import (
	"context"
	"net/http"
	"strings"
)

// Holiday is a leave day as the API returns it. Date keeps its wire form;
// the CLI only ever displays the YYYY-MM-DD prefix.
type Holiday struct {
	ID          string `json:"id"`
	User        string `json:"user"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Holidays lists recorded leave days.
func (c *Client) Holidays(ctx context.Context) ([]Holiday, error) {
	var resp struct {
		Leaves []Holiday `json:"leaves"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/leaves", nil, &resp); err != nil {
		return nil, err
	}
	for i := range resp.Leaves {
		resp.Leaves[i].Date = datePrefix(resp.Leaves[i].Date)
	}
	return resp.Leaves, nil
}

// CreateHoliday records a leave day. An empty user means the whole salon
// is closed that date.
func (c *Client) CreateHoliday(ctx context.Context, user, date, description string) (Holiday, error) {
	body := map[string]string{
		"user":        user,
		"date":        date,
		"description": description,
	}
	var resp struct {
		Leave Holiday `json:"leave"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/leaves/create", body, &resp); err != nil {
		return Holiday{}, err
	}
	resp.Leave.Date = datePrefix(resp.Leave.Date)
	return resp.Leave, nil
}

func (c *Client) DeleteHoliday(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/leaves/"+id, nil, nil)
}

// datePrefix trims an RFC 3339 timestamp down to its date part.
func datePrefix(s string) string {
	if i := strings.IndexByte(s, 'T'); i > 0 {
		return s[:i]
	}
	return s
}
