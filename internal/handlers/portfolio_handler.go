package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	"github.com/BruksfildServices01/barber-marketplace/internal/usecase/portfolio"
)

// multipartSlack covers form boundaries and headers around the file part.
const multipartSlack = 64 << 10

type PortfolioHandler struct {
	upload   *portfolio.UploadPhoto
	list     *portfolio.ListPhotos
	maxBytes int64
}

func NewPortfolioHandler(
	upload *portfolio.UploadPhoto,
	list *portfolio.ListPhotos,
	maxBytes int64,
) *PortfolioHandler {
	return &PortfolioHandler{
		upload:   upload,
		list:     list,
		maxBytes: maxBytes,
	}
}

// GET /api/barbers/:id/photos
func (h *PortfolioHandler) List(c *gin.Context) {
	barberID, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	photos, err := h.list.Execute(c.Request.Context(), barberID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, photos)
}

// POST /api/barbers/:id/photos (multipart, field "file")
func (h *PortfolioHandler) Upload(c *gin.Context) {
	barberID, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartSlack)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.Respond(c, httperr.Validationf("file", "file must be at most %d bytes", h.maxBytes))
			return
		}
		httperr.Respond(c, httperr.Validation("file", "file is required"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	photo, err := h.upload.Execute(c.Request.Context(), barberID, middleware.UserID(c), data)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, photo)
}
