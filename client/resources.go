package client

import "context"

// Service as the API returns it.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Category    string  `json:"category"`
	IsActive    bool    `json:"isActive"`
}

func (s Service) RecordID() string { return s.ID }

// ServiceInput is the create/update payload. Duration and price arrive as
// text in the form and are coerced by the caller before this is built.
type ServiceInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Category    string  `json:"category"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c Category) RecordID() string { return c.ID }

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewServiceCollection(c *Client) *Collection[Service] {
	return NewCollection[Service](c, "/api/services")
}

func NewCategoryCollection(c *Client) *Collection[Category] {
	return NewCollection[Category](c, "/api/categories")
}

// CategoryNames fetches the category collection flattened to names, which
// is all the service form's selector needs. An empty slice (not nil) comes
// back when there are no categories, so the caller can show its explicit
// "no categories" placeholder.
func CategoryNames(ctx context.Context, c *Client) ([]string, error) {
	col := NewCategoryCollection(c)
	if err := col.Fetch(ctx); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(col.Items))
	for _, cat := range col.Items {
		names = append(names, cat.Name)
	}
	return names, nil
}
