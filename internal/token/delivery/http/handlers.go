package http

import (
	"net/http"

	"jwt-builder/pkg/errors"
	"jwt-builder/pkg/response"

	"github.com/gin-gonic/gin"
)

// Sign signs a claim set.
// @Summary Sign a claim set
// @Description Signs the claims with the HMAC key. Success returns {"token": "..."} without the response envelope.
// @Tags Tokens
// @Accept json
// @Produce json
// @Param body body signReq true "Claims, key and algorithm"
// @Success 200 {object} tokenResp
// @Failure 400 {object} response.Resp "Unsupported algorithm, missing key or claims, claims not an object"
// @Router /tokens [POST]
func (h *Handler) Sign(c *gin.Context) {
	ctx := c.Request.Context()

	var req signReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.token.delivery.http.Sign.ShouldBindJSON: %v", err)
		response.Error(c, errors.NewBadRequestHTTPError(), h.discord)
		return
	}
	input, err := req.toInput()
	if err != nil {
		h.l.Warnf(ctx, "internal.token.delivery.http.Sign.toInput: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Sign(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "internal.token.delivery.http.Sign: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.JSON(http.StatusOK, tokenResp{Token: o.Token})
}

// Verify checks a token's signature.
// @Summary Verify a token
// @Description Checks the HMAC signature. Expiry and other time-based claims are not enforced.
// @Tags Tokens
// @Accept json
// @Produce json
// @Param body body verifyReq true "Token and key"
// @Success 200 {object} response.Resp{data=verifyResp}
// @Failure 400 {object} response.Resp "Validation error"
// @Failure 401 {object} response.Resp "Invalid token"
// @Router /tokens/verify [POST]
func (h *Handler) Verify(c *gin.Context) {
	ctx := c.Request.Context()

	var req verifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.token.delivery.http.Verify.ShouldBindJSON: %v", err)
		response.Error(c, errors.NewBadRequestHTTPError(), h.discord)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Verify(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newVerifyResp(o))
}

// GenerateKey returns a random symmetric key.
// @Summary Generate a signing key
// @Tags Keys
// @Produce json
// @Param length query int false "Key length, 1 to 512, default 32"
// @Success 200 {object} response.Resp{data=keyResp}
// @Failure 400 {object} response.Resp "Invalid length"
// @Router /api/v1/keys [GET]
func (h *Handler) GenerateKey(c *gin.Context) {
	ctx := c.Request.Context()

	var req keyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.token.delivery.http.GenerateKey.ShouldBindQuery: %v", err)
		response.Error(c, errors.NewBadRequestHTTPError(), h.discord)
		return
	}

	key, err := h.uc.GenerateKey(ctx, req.Length)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, keyResp{Key: key, Length: len(key)})
}

// Encode base64-encodes a byte-valued string.
// @Summary Base64 encode
// @Tags Base64
// @Accept json
// @Produce json
// @Param body body codecReq true "Value or argument list"
// @Success 200 {object} response.Resp{data=codecResp}
// @Failure 400 {object} response.Resp "Encoding or argument error"
// @Router /api/v1/base64/encode [POST]
func (h *Handler) Encode(c *gin.Context) {
	ctx := c.Request.Context()

	var req codecReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errors.NewBadRequestHTTPError(), h.discord)
		return
	}

	o, err := h.uc.Encode(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, codecResp{Value: o.Value})
}

// Decode reverses Encode.
// @Summary Base64 decode
// @Tags Base64
// @Accept json
// @Produce json
// @Param body body codecReq true "Value or argument list"
// @Success 200 {object} response.Resp{data=codecResp}
// @Failure 400 {object} response.Resp "Decode or argument error"
// @Router /api/v1/base64/decode [POST]
func (h *Handler) Decode(c *gin.Context) {
	ctx := c.Request.Context()

	var req codecReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errors.NewBadRequestHTTPError(), h.discord)
		return
	}

	o, err := h.uc.Decode(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, codecResp{Value: o.Value})
}
