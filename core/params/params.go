package params

import (
	"strconv"

	"utsav-api/core/constants"

	"github.com/labstack/echo/v4"
)

type QueryParams struct {
	PageNumber int
	PageSize   int
}

func NewQueryParams(c echo.Context) *QueryParams {
	page := atoiWithDefault(c.QueryParam("page"), constants.DefaultPageNumber)
	size := atoiWithDefault(c.QueryParam("limit"), constants.DefaultPageSize)
	if page < 1 {
		page = constants.DefaultPageNumber
	}
	if size < 1 || size > constants.MaxPageSize {
		size = constants.DefaultPageSize
	}
	return &QueryParams{PageNumber: page, PageSize: size}
}

func atoiWithDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
