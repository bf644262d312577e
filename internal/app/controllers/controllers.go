package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/transferdesk/internal/app/services"
	"github.com/yigit/transferdesk/internal/pkg/apperrors"
	"github.com/yigit/transferdesk/internal/pkg/helpers"
)

// tableQuery reads the filter and paging parameters of a table request
func tableQuery(ctx *gin.Context, filterParam string) services.TableQuery {
	page, size := helpers.ParsePaginationParams(ctx)
	return services.TableQuery{
		Filter: ctx.Query(filterParam),
		Page:   page,
		Size:   size,
	}
}

// parseConfirm reads the confirm query parameter. A missing parameter
// yields nil so the caller is asked to confirm.
func parseConfirm(ctx *gin.Context) (*bool, error) {
	raw, ok := ctx.GetQuery("confirm")
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: confirm must be true or false", apperrors.ErrBadRequest)
	}
	return &v, nil
}
