package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/internhub/backend/core"
	"github.com/internhub/backend/core/feedback"
)

type feedbackApi struct {
	svc      *feedback.Service
	validate *validator.Validate
}

func registerFeedbackAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *feedback.Service, validate *validator.Validate) {
	api := feedbackApi{svc: svc, validate: validate}

	fg := g.Group("/feedbacks", jwt)
	fg.GET("", api.query)
	fg.POST("", api.create)
	fg.PUT("/:id", api.update)
	fg.DELETE("/:id", api.destroy)
}

func (api *feedbackApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	fbs, err := api.svc.Query(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying feedbacks")
	}
	if fbs == nil {
		fbs = []feedback.Feedback{}
	}
	return ctx.JSON(http.StatusOK, fbs)
}

func (api *feedbackApi) create(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	var data feedback.NewFeedback
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFeedback")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	fb, err := api.svc.Create(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "creating feedback")
	}
	return ctx.JSON(http.StatusCreated, fb)
}

func (api *feedbackApi) update(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	fb, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	if !core.Can(claims.Subject, core.ActionUpdate, fb) {
		return core.ErrPermissionDenied
	}

	var data feedback.UpdateFeedback
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateFeedback")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	fb, err = api.svc.Update(ctx.Request().Context(), fb, data)
	if err != nil {
		return errors.Wrap(err, "updating feedback")
	}
	return ctx.JSON(http.StatusOK, fb)
}

func (api *feedbackApi) destroy(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	fb, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	if !core.Can(claims.Subject, core.ActionDelete, fb) {
		return core.ErrPermissionDenied
	}

	if err = api.svc.Delete(ctx.Request().Context(), fb.ID); err != nil {
		return errors.Wrap(err, "deleting feedback")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Message: "Feedback deleted successfully"})
}
