package http

import (
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/blackteam/notas/internal/model"
	"github.com/blackteam/notas/internal/pricing"
	"github.com/blackteam/notas/internal/service"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	customers *service.CustomerService
	notas     *service.NotaService
	log       zerolog.Logger
}

func NewHandler(customers *service.CustomerService, notas *service.NotaService, log zerolog.Logger) *Handler {
	return &Handler{customers: customers, notas: notas, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	customers := router.Group("/customers")
	customers.GET("", h.listCustomers)
	customers.POST("", h.createCustomer)
	customers.GET("/:id", h.getCustomer)
	customers.PUT("/:id", h.updateCustomer)
	customers.DELETE("/:id", h.deleteCustomer)

	notas := router.Group("/notas")
	notas.GET("", h.listNotas)
	notas.POST("", h.createNota)
	notas.GET("/next-number", h.nextNumber)
	notas.GET("/export/xlsx", h.exportSpreadsheet)
	notas.POST("/preview", h.previewNota)
	notas.GET("/:id", h.getNota)
	notas.GET("/:id/pdf", h.notaPDF)
	notas.POST("/:id/export", h.exportNota)

	router.GET("/pricing/remaining", h.remaining)
}

func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) createCustomer(c *gin.Context) {
	var req model.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = 0

	customer, err := h.customers.Save(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *Handler) getCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customer, err := h.customers.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) updateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = id

	ctx := c.Request.Context()
	if _, err := h.customers.Get(ctx, id); err != nil {
		h.handleError(c, err)
		return
	}
	customer, err := h.customers.Save(ctx, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) deleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listNotas(c *gin.Context) {
	notas, err := h.notas.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, notas)
}

func (h *Handler) createNota(c *gin.Context) {
	var req notaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nota, err := h.notas.Create(c.Request.Context(), req.input())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, nota)
}

func (h *Handler) getNota(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	nota, err := h.notas.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, nota)
}

func (h *Handler) nextNumber(c *gin.Context) {
	number, err := h.notas.NextNumber(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"numero_nota": number})
}

func (h *Handler) notaPDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	content, fileName, err := h.notas.RenderPDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	attachment(c, contentTypePDF, fileName, content)
}

func (h *Handler) exportNota(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	path, err := h.notas.ExportPDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path})
}

func (h *Handler) previewNota(c *gin.Context) {
	var req notaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, fileName, err := h.notas.PreviewPDF(c.Request.Context(), req.input())
	if err != nil {
		h.handleError(c, err)
		return
	}
	attachment(c, contentTypePDF, fileName, content)
}

func (h *Handler) exportSpreadsheet(c *gin.Context) {
	content, fileName, err := h.notas.ExportSpreadsheet(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	attachment(c, contentTypeXLSX, fileName, content)
}

func (h *Handler) remaining(c *gin.Context) {
	remaining := pricing.RemainingFromText(c.Query("valor"), c.Query("sinal"))
	c.JSON(http.StatusOK, gin.H{
		"restante":           remaining,
		"restante_formatado": pricing.FormatBRL(remaining),
	})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().
			Err(err).
			Str("request_id", c.GetString(requestIDKey)).
			Str("path", c.FullPath()).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func attachment(c *gin.Context, contentType, fileName string, content []byte) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	c.Data(http.StatusOK, contentType, content)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
