package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alexisjeriha/mission-config-contract-tests/internal/models"
	"github.com/alexisjeriha/mission-config-contract-tests/internal/store"
)

// Success messages returned in the data envelope of mutation responses.
const (
	MsgCreated = "Mission config created successfully"
	MsgUpdated = "Mission config updated successfully"
	MsgDeleted = "Mission config deleted successfully"
	MsgReset   = "Mission config store reset"
)

type APIHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewAPIHandler(st *store.Store, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		store:  st,
		logger: logger,
	}
}

// NewRouter builds the service's route table. Unknown routes fall through to
// PageNotFound so they still receive the standard envelope.
func NewRouter(h *APIHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	configs := r.Group("/configs")
	{
		configs.GET("", h.ListMissions)
		configs.POST("", h.CreateMission)
		configs.GET("/:id", h.GetMission)
		configs.PUT("/:id", h.UpdateMission)
		configs.DELETE("/:id", h.DeleteMission)
	}

	r.POST("/__admin/reset", h.ResetStore)
	r.NoRoute(h.PageNotFound)
	return r
}

func (h *APIHandler) ListMissions(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessEnvelope(h.store.List()))
}

func (h *APIHandler) GetMission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.missionNotFound(c)
		return
	}
	mission, ok := h.store.Get(id)
	if !ok {
		h.missionNotFound(c)
		return
	}
	c.JSON(http.StatusOK, models.SuccessEnvelope(mission))
}

func (h *APIHandler) CreateMission(c *gin.Context) {
	payload := h.bindPayload(c)
	if err := payload.Validate(); err != nil {
		h.invalidRequest(c, err)
		return
	}

	id, err := h.store.Insert(payload)
	if err != nil {
		h.invalidRequest(c, err)
		return
	}

	h.logger.Info("mission config created",
		zap.Int("id", id),
		zap.String("name", payload.Name),
		zap.String("type", payload.Type))
	c.JSON(http.StatusOK, models.MessageEnvelope(MsgCreated))
}

func (h *APIHandler) UpdateMission(c *gin.Context) {
	payload := h.bindPayload(c)
	if err := payload.Validate(); err != nil {
		h.invalidRequest(c, err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || !h.store.Replace(id, payload) {
		h.missionNotFound(c)
		return
	}

	h.logger.Info("mission config updated", zap.Int("id", id))
	c.JSON(http.StatusOK, models.MessageEnvelope(MsgUpdated))
}

func (h *APIHandler) DeleteMission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || !h.store.Delete(id) {
		h.missionNotFound(c)
		return
	}

	h.logger.Info("mission config deleted", zap.Int("id", id))
	c.JSON(http.StatusOK, models.MessageEnvelope(MsgDeleted))
}

// ResetStore empties the store and restarts id assignment. Test harnesses
// use it between scenarios; it is not part of the public contract.
func (h *APIHandler) ResetStore(c *gin.Context) {
	h.store.Reset()
	h.logger.Info("mission config store reset")
	c.JSON(http.StatusOK, models.MessageEnvelope(MsgReset))
}

func (h *APIHandler) PageNotFound(c *gin.Context) {
	path := c.Request.URL.Path
	message := fmt.Sprintf("'resource '%s' of type 'page'' does not exist", path)
	c.JSON(http.StatusNotFound, models.ErrorEnvelope(message, path))
}

// bindPayload decodes the request body. A missing or malformed body yields a
// zero payload, so the ordered validation rules report the first missing
// field instead of a generic parse error.
func (h *APIHandler) bindPayload(c *gin.Context) models.MissionPayload {
	var payload models.MissionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Debug("unparseable request body", zap.Error(err))
	}
	return payload
}

func (h *APIHandler) missionNotFound(c *gin.Context) {
	message := fmt.Sprintf("'resource '%s' of type 'Mission'' does not exist", c.Param("id"))
	c.JSON(http.StatusNotFound, models.ErrorEnvelope(message, c.Request.URL.Path))
}

func (h *APIHandler) invalidRequest(c *gin.Context, err error) {
	message := fmt.Sprintf("invalid request due to %s", err)
	h.logger.Debug("request rejected", zap.String("reason", err.Error()), zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusBadRequest, models.ErrorEnvelope(message, c.Request.URL.Path))
}
