package http

import (
	"jwt-builder/pkg/errors"
	"jwt-builder/pkg/response"

	"github.com/gin-gonic/gin"
)

// Assemble builds a claim set from the form content.
// @Summary Assemble a claim set
// @Description Builds the JWT claim set from standard and additional claims. Invalid dates become null and produce warnings.
// @Tags Claims
// @Accept json
// @Produce json
// @Param body body assembleReq true "Form content"
// @Success 200 {object} response.Resp{data=assembleResp}
// @Failure 400 {object} response.Resp "Bad request"
// @Router /api/v1/claims/assemble [POST]
func (h *Handler) Assemble(c *gin.Context) {
	ctx := c.Request.Context()

	var req assembleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.claim.delivery.http.Assemble.ShouldBindJSON: %v", err)
		response.Error(c, errors.NewBadRequestHTTPError(), h.discord)
		return
	}

	o, err := h.uc.Assemble(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.claim.delivery.http.Assemble: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.discord)
		return
	}

	response.OK(c, h.newAssembleResp(o))
}

// Defaults returns the state a new builder form starts with.
// @Summary Default form state
// @Tags Claims
// @Produce json
// @Success 200 {object} response.Resp{data=defaultsResp}
// @Router /api/v1/claims/defaults [GET]
func (h *Handler) Defaults(c *gin.Context) {
	response.OK(c, h.newDefaultsResp(h.uc.Defaults(c.Request.Context())))
}

// Presets lists the canned additional claims.
// @Summary Additional claim presets
// @Tags Claims
// @Produce json
// @Success 200 {object} response.Resp{data=[]presetResp}
// @Router /api/v1/claims/presets [GET]
func (h *Handler) Presets(c *gin.Context) {
	response.OK(c, h.newPresetsResp(h.uc.Presets(c.Request.Context())))
}

// Preset returns one canned additional claim.
// @Summary Additional claim preset
// @Tags Claims
// @Produce json
// @Param name path string true "Preset name"
// @Success 200 {object} response.Resp{data=presetResp}
// @Failure 404 {object} response.Resp "Preset not found"
// @Router /api/v1/claims/presets/{name} [GET]
func (h *Handler) Preset(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.Preset(ctx, c.Param("name"))
	if err != nil {
		h.l.Warnf(ctx, "internal.claim.delivery.http.Preset: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.discord)
		return
	}

	response.OK(c, h.newPresetResp(p))
}
