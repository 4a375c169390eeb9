package api

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	config "github.com/ralfmy/itv-roombot/config"
	"github.com/ralfmy/itv-roombot/dialogflow"
	"github.com/ralfmy/itv-roombot/frontends"
	"github.com/ralfmy/itv-roombot/fulfillment"
	l "github.com/ralfmy/itv-roombot/logger"
	"github.com/ralfmy/itv-roombot/occupancy"
)

type Router interface {
	WebhookHandler(c *gin.Context)
	RecolorHandler(c *gin.Context)
	HealthcheckHandler(c *gin.Context)
	NotFoundHandler(c *gin.Context)
}

type RouterImpl struct {
	cfg      config.Config
	logger   l.Logger
	service  *fulfillment.Service
	callers  CallerResolver
	recolor  *occupancy.Recolorer
	timeFunc func() time.Time
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ResponseJSON struct {
	Message string `json:"message"`
}

func NewRouter(cfg config.Config, logger l.Logger, service *fulfillment.Service, callers CallerResolver, recolor *occupancy.Recolorer) Router {
	return &RouterImpl{
		cfg:      cfg,
		logger:   logger,
		service:  service,
		callers:  callers,
		recolor:  recolor,
		timeFunc: time.Now,
	}
}

func (router *RouterImpl) NotFoundHandler(c *gin.Context) {
	router.logger.Error("requested route is not found", nil)
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "Requested route is not found"})
}

func (router *RouterImpl) HealthcheckHandler(c *gin.Context) {
	router.logger.Debug("healthcheck")
	c.JSON(http.StatusOK, ResponseJSON{Message: "OK"})
}

// WebhookHandler is the Dialogflow fulfillment endpoint. Failures reply 200
// with an apology sentence: a non-200 makes Dialogflow surface its own
// webhook error to the user instead.
func (router *RouterImpl) WebhookHandler(c *gin.Context) {
	var req dialogflow.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		router.logger.Error("malformed webhook request", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Malformed webhook request"})
		return
	}

	caller := router.callers.Resolve(c.Request.Context(), &req)

	result, err := router.service.Handle(c.Request.Context(), &req, caller)
	if err != nil {
		router.logger.Error("intent fulfillment failed", err,
			"intent", req.QueryResult.Intent.DisplayName, "source", req.Source())
		c.JSON(http.StatusOK, &dialogflow.WebhookResponse{
			FulfillmentText: "Sorry, I'm having trouble reaching the calendar right now. Please try again in a moment.",
		})
		return
	}

	renderer := frontends.ForSource(req.Source())
	c.JSON(http.StatusOK, renderer.Render(&req, result))
}

type recolorRequest struct {
	Building string `json:"building"`
	Room     string `json:"room" binding:"required"`
}

// RecolorHandler is called by the sensor pipeline scheduler to repaint the
// current event of a room after fresh occupancy readings land.
func (router *RouterImpl) RecolorHandler(c *gin.Context) {
	if router.recolor == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Recoloring is not configured"})
		return
	}

	var req recolorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Malformed recolor request"})
		return
	}
	if req.Building == "" {
		req.Building = router.cfg.Workspace.PrimaryBuilding
	}

	if err := router.recolor.Recolor(c.Request.Context(), req.Building, req.Room, router.timeFunc()); err != nil {
		router.logger.Error("recoloring event", err, "room", req.Room)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Recoloring failed"})
		return
	}
	c.JSON(http.StatusOK, ResponseJSON{Message: "OK"})
}
