package handler

import (
	"context"
	"errors"
	"net/http"

	"consultanit/cmd/internal/contract"
	"consultanit/cmd/internal/domain/entity"
	"consultanit/cmd/internal/domain/source"
	"consultanit/cmd/internal/service"
	"consultanit/cmd/internal/utils"
	"consultanit/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type NitService interface {
	Lookup(ctx context.Context, nit string) (*entity.Company, error)
}

type DefaultNitRoute struct {
	NitService NitService
	Validate   *validator.Validate
}

func NewNitRoute(nitService NitService, validate *validator.Validate) *DefaultNitRoute {
	return &DefaultNitRoute{
		NitService: nitService,
		Validate:   validate,
	}
}

// GetCompany answers GET /api/nit?nit=, GET /api/nit/:nit and POST /api/nit.
func (n *DefaultNitRoute) GetCompany(c echo.Context) error {
	var req contract.NitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	// echo only binds the query string on GET, DELETE and HEAD
	if req.NIT == "" {
		req.NIT = c.QueryParam("nit")
	}

	status, body := n.Resolve(c.Request().Context(), &req)
	return c.JSON(status, body)
}

// Resolve validates req, looks the NIT up and returns the status code and
// body to answer with. It is shared by every entry point.
func (n *DefaultNitRoute) Resolve(ctx context.Context, req *contract.NitRequest) (int, any) {
	utils.Sanitize(req)

	if err := n.Validate.Struct(req); err != nil {
		if apierr := apierror.FromValidationError(err); apierr != nil {
			return apierr.Code(), apierr
		}
		log.Errorf("failed to validate NIT request: %v", err)
		return apierror.InternalServerError.Code(), apierror.InternalServerError
	}

	log.Infof("looking up NIT %s", req.NIT)
	company, err := n.NitService.Lookup(ctx, req.NIT)
	if err != nil {
		apierr := toErrorResponse(err)
		return apierr.Code(), apierr
	}
	return http.StatusOK, company
}

func toErrorResponse(err error) *apierror.APIError {
	var notFound *service.NotFoundError
	switch {
	case errors.As(err, &notFound):
		log.Warn(notFound.Error())
		return apierror.NewNotFoundError(notFound.Error())
	case errors.Is(err, source.ErrUnavailable):
		log.Errorf("data source failed: %v", err)
		return apierror.SourceFailedError
	default:
		log.Errorf("unexpected error while looking up NIT: %v", err)
		return apierror.InternalServerError
	}
}
