package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var (
	errInvalidID  = errors.New("id must be a positive integer")
	errInvalidDay = errors.New("day must use the YYYY-MM-DD format")
)

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}

	return id, nil
}

// parseOptionalID reads a positive integer query parameter. An absent parameter yields nil.
func parseOptionalID(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.Errorf("%s must be a positive integer", name)
	}

	return &id, nil
}

// parseOptionalDay reads a YYYY-MM-DD query parameter as midnight UTC. An absent parameter yields nil.
func parseOptionalDay(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	day, err := time.Parse(dayLayout, raw)
	if err != nil {
		return nil, errInvalidDay
	}

	return &day, nil
}
