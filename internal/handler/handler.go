package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/docs"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/dto"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/schema"
	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/service"
)

type Handler struct {
	planService service.PlanServicer
	router      *gin.Engine
	frameDelay  time.Duration
	log         *zap.Logger
}

// NewHandler wires the HTTP routes. frameDelay paces successive stream
// frames for progressive disclosure; zero disables the delay entirely.
func NewHandler(planService service.PlanServicer, frameDelay time.Duration, log *zap.Logger) *Handler {
	h := &Handler{
		planService: planService,
		router:      gin.Default(),
		frameDelay:  frameDelay,
		log:         log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.GET("/api/plan/stream", h.streamPlanQuery)
	h.router.POST("/api/plan/stream", h.streamPlanBody)
	h.router.POST("/api/plan", h.buildPlan)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// respondError converts a service error into the right status and payload.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: verr.Error(),
			Details: verr.Errors,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	})
}

// buildPlan handles POST /api/plan
// @Summary Build a campaign plan synchronously
// @Description Run the full planning pipeline and return the final plan as one document
// @Tags plan
// @Accept json
// @Produce json
// @Param request body dto.PlanRequest true "Planning request"
// @Success 200 {object} domain.CampaignPlan
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/plan [post]
func (h *Handler) buildPlan(c *gin.Context) {
	var req dto.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid plan request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	plan, err := h.planService.BuildPlan(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// streamPlanQuery handles GET /api/plan/stream
// @Summary Stream a campaign plan stage by stage
// @Description Run the planning pipeline, emitting status, partial and final frames over SSE
// @Tags plan
// @Produce text/event-stream
// @Param prompt query string true "Campaign prompt"
// @Param sources query string true "Comma-separated source ids"
// @Param channels query string true "Comma-separated channel ids"
// @Param timezone query string false "IANA timezone"
// @Success 200 {string} string "SSE frame stream"
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/plan/stream [get]
func (h *Handler) streamPlanQuery(c *gin.Context) {
	var query dto.PlanQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		h.log.Warn("Invalid stream request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.streamPlan(c, query.ToPlanRequest())
}

// streamPlanBody handles POST /api/plan/stream
// @Summary Stream a campaign plan stage by stage (JSON body)
// @Description Same as the GET variant but accepts a JSON request body
// @Tags plan
// @Accept json
// @Produce text/event-stream
// @Param request body dto.PlanRequest true "Planning request"
// @Success 200 {string} string "SSE frame stream"
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/plan/stream [post]
func (h *Handler) streamPlanBody(c *gin.Context) {
	var req dto.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid stream request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.streamPlan(c, &req)
}

// streamPlan drains the staged producer over SSE. Input validation failures
// surface as a 400 before any frame; pipeline failures become a terminal
// error frame. A client abort stops the producer without further frames.
func (h *Handler) streamPlan(c *gin.Context, req *dto.PlanRequest) {
	ctx := c.Request.Context()

	emitter, err := h.planService.StreamPlan(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")

	first := true
	for {
		event, ok := emitter.Next(ctx)
		if !ok {
			if ctx.Err() != nil {
				h.log.Info("Stream aborted by client")
			}
			return
		}

		// Pace frames for progressive disclosure, but stay cancellable.
		if !first && h.frameDelay > 0 {
			select {
			case <-ctx.Done():
				h.log.Info("Stream aborted by client during pacing delay")
				return
			case <-time.After(h.frameDelay):
			}
		}
		first = false

		frame := dto.StreamFrame{}
		switch {
		case event.Stage != "":
			frame.Status = &dto.StreamStatus{Stage: string(event.Stage)}
		case event.Partial != nil:
			frame.Partial = event.Partial
		case event.Final != nil:
			frame.Final = event.Final
		case event.Err != nil:
			frame.Error = &dto.StreamError{Message: event.Err.Error()}
		}

		if err := writeFrame(c, frame); err != nil {
			h.log.Warn("Failed to write stream frame", zap.Error(err))
			return
		}
	}
}

func writeFrame(c *gin.Context, frame dto.StreamFrame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", payload); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}
