// Package handlers implements the MechParse API endpoints.
package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MechParse/internal/application/kinetics"
	apperrors "github.com/turtacn/MechParse/pkg/errors"
)

// ParseHandler serves the mechanism and block parsing endpoints.
type ParseHandler struct {
	svc          kinetics.Service
	maxBodyBytes int64
}

// NewParseHandler constructs a ParseHandler. maxBodyBytes caps accepted
// request bodies; zero means no explicit cap.
func NewParseHandler(svc kinetics.Service, maxBodyBytes int64) *ParseHandler {
	return &ParseHandler{svc: svc, maxBodyBytes: maxBodyBytes}
}

// errorResponse is the uniform error body of the API.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func writeError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	code := apperrors.GetCode(err)
	status := code.HTTPStatus()
	resp := errorResponse{Code: string(code), Message: err.Error()}
	if e, ok := err.(*apperrors.AppError); ok {
		appErr = e
		resp.Message = appErr.Message
		resp.Detail = appErr.Detail
	}
	c.AbortWithStatusJSON(status, resp)
}

func (h *ParseHandler) readBody(c *gin.Context) (string, bool) {
	r := io.Reader(c.Request.Body)
	if h.maxBodyBytes > 0 {
		r = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		writeError(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "failed to read request body"))
		return "", false
	}
	if len(body) == 0 {
		writeError(c, apperrors.New(apperrors.ErrCodeBadRequest, "request body is empty"))
		return "", false
	}
	return string(body), true
}

// ParseMechanism handles POST /api/v1/mechanism/parse. The body is a full
// CHEMKIN mechanism file; the response is the parsed reaction records plus
// the declared rate units.
func (h *ParseHandler) ParseMechanism(c *gin.Context) {
	text, ok := h.readBody(c)
	if !ok {
		return
	}
	res, err := h.svc.ParseMechanism(c.Request.Context(), text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ParseBlock handles POST /api/v1/block/parse. The body is a bare reaction
// block without the REACTIONS/END wrapper.
func (h *ParseHandler) ParseBlock(c *gin.Context) {
	block, ok := h.readBody(c)
	if !ok {
		return
	}
	res, err := h.svc.ParseBlock(c.Request.Context(), block)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// KeyedEntries handles POST /api/v1/block/keyed. The response maps each
// reagent key to the raw text of its entry; duplicate reactions share a key.
func (h *ParseHandler) KeyedEntries(c *gin.Context) {
	block, ok := h.readBody(c)
	if !ok {
		return
	}
	keyed, err := h.svc.KeyedEntries(c.Request.Context(), block)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": keyed, "count": len(keyed)})
}
