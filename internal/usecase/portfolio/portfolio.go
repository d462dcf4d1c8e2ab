package portfolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain"
	domaincat "github.com/BruksfildServices01/barber-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/infra/imaging"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// ======================================================
// UPLOAD
// ======================================================

type UploadPhoto struct {
	repo     domaincat.Repository
	objects  ObjectStore
	audit    *audit.Dispatcher
	maxBytes int64
}

func NewUploadPhoto(
	repo domaincat.Repository,
	objects ObjectStore,
	audit *audit.Dispatcher,
	maxBytes int64,
) *UploadPhoto {
	return &UploadPhoto{
		repo:     repo,
		objects:  objects,
		audit:    audit,
		maxBytes: maxBytes,
	}
}

func (uc *UploadPhoto) Execute(
	ctx context.Context,
	barberID uint,
	userID string,
	file []byte,
) (*models.PortfolioPhoto, error) {

	if userID == "" {
		return nil, httperr.Auth("unauthenticated", "Authentication required.")
	}

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound("barber_not_found", "Barber not found.")
	}
	if err != nil {
		return nil, httperr.Internal(err)
	}
	if barber.UserID != userID {
		return nil, httperr.Auth("not_barber_owner", "Only the barber can upload portfolio photos.")
	}

	if len(file) == 0 {
		return nil, httperr.Validation("file", "file is required")
	}
	if uc.maxBytes > 0 && int64(len(file)) > uc.maxBytes {
		return nil, httperr.Validationf("file", "file must be at most %d bytes", uc.maxBytes)
	}

	img, err := imaging.ToWebP(file)
	if errors.Is(err, imaging.ErrUnsupported) {
		return nil, httperr.Validation("file", "file must be a JPEG, PNG or WebP image")
	}
	if err != nil {
		return nil, httperr.Internal(err)
	}

	key := fmt.Sprintf("barbers/%d/portfolio/%s.webp", barber.ID, uuid.NewString())
	url, err := uc.objects.Put(ctx, key, imaging.ContentType, img.Data)
	if err != nil {
		return nil, httperr.Internal(err)
	}

	photo := &models.PortfolioPhoto{
		BarberID:    barber.ID,
		ObjectKey:   key,
		URL:         url,
		ContentType: imaging.ContentType,
		Width:       img.Width,
		Height:      img.Height,
	}
	if err := uc.repo.CreatePortfolioPhoto(ctx, photo); err != nil {
		return nil, httperr.Internal(err)
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: barber.ID,
		UserID:   &userID,
		Action:   audit.ActionPhotoUploaded,
		Entity:   "portfolio_photo",
		EntityID: &photo.ID,
	})

	return photo, nil
}

// ======================================================
// LIST
// ======================================================

type ListPhotos struct {
	repo domaincat.Repository
}

func NewListPhotos(repo domaincat.Repository) *ListPhotos {
	return &ListPhotos{repo: repo}
}

func (uc *ListPhotos) Execute(ctx context.Context, barberID uint) ([]models.PortfolioPhoto, error) {
	photos, err := uc.repo.ListPortfolioPhotos(ctx, barberID)
	if err != nil {
		return nil, httperr.Internal(err)
	}
	if photos == nil {
		photos = []models.PortfolioPhoto{}
	}
	return photos, nil
}
