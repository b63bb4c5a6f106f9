package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/alimikegami/e-bazaar/internal/domain"
	"github.com/alimikegami/e-bazaar/internal/dto"
	"github.com/alimikegami/e-bazaar/internal/repository"
	"github.com/alimikegami/e-bazaar/internal/upload"
	pkgdto "github.com/alimikegami/e-bazaar/pkg/dto"
	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/alimikegami/e-bazaar/pkg/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SellerServiceImpl struct {
	sellerRepo   repository.SellerRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	store        upload.Store
	publisher    EventPublisher
	now          func() time.Time
}

func CreateSellerService(sellerRepo repository.SellerRepository, categoryRepo repository.CategoryRepository, userRepo repository.UserRepository, store upload.Store, publisher EventPublisher) SellerService {
	return &SellerServiceImpl{
		sellerRepo:   sellerRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		store:        store,
		publisher:    publisher,
		now:          time.Now,
	}
}

func (s *SellerServiceImpl) GetSellers(ctx context.Context, filter pkgdto.Filter) (res []dto.SellerResponse, err error) {
	repoFilter := repository.SellerFilter{Limit: filter.Limit}
	for _, id := range filter.Categories {
		categoryID, err := parseID(id, errs.ErrInvalidCategory)
		if err != nil {
			return nil, err
		}
		repoFilter.Categories = append(repoFilter.Categories, categoryID)
	}

	if filter.UserID != "" {
		userID, err := parseID(filter.UserID, errs.ErrInvalidUser)
		if err != nil {
			return nil, err
		}
		repoFilter.User = &userID
	}

	sellers, err := s.sellerRepo.GetSellers(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	return dto.NewSellerResponses(sellers), nil
}

func (s *SellerServiceImpl) GetSellerByID(ctx context.Context, id string) (res dto.SellerResponse, err error) {
	sellerID, err := parseID(id, errs.ErrInvalidID)
	if err != nil {
		return
	}

	seller, err := s.sellerRepo.GetSellerByID(ctx, sellerID)
	if err != nil {
		return
	}

	return dto.NewSellerResponse(seller), nil
}

// AddSeller validates the payload, then the category and owner references,
// and only then stores the image, so a rejected request writes nothing.
func (s *SellerServiceImpl) AddSeller(ctx context.Context, req dto.SellerRequest, image *multipart.FileHeader, baseURL string) (res dto.SellerResponse, err error) {
	if err = utils.ValidateStruct(req); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddSeller").Msg("")
		return
	}

	categoryID, err := parseID(req.Category, errs.ErrInvalidCategory)
	if err != nil {
		return
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return res, resolveReference(err, errs.ErrInvalidCategory)
	}

	userID, err := parseID(req.User, errs.ErrInvalidUser)
	if err != nil {
		return
	}

	if _, err = s.userRepo.GetUserByID(ctx, userID); err != nil {
		return res, resolveReference(err, errs.ErrInvalidUser)
	}

	if image == nil {
		return res, errs.ErrMissingFile
	}

	imageURL, err := s.store.Save(ctx, baseURL, image)
	if err != nil {
		return
	}

	seller := newSeller(req, categoryID, userID, imageURL, s.now())

	seller.ID, err = s.sellerRepo.AddSeller(ctx, seller)
	if err != nil {
		return
	}

	seller.CategoryDetail = &category
	res = dto.NewSellerResponse(seller)
	publish(ctx, s.publisher, res.ID, dto.EventSellerCreated, res)

	return res, nil
}

func newSeller(req dto.SellerRequest, categoryID, userID primitive.ObjectID, imageURL string, now time.Time) domain.Seller {
	seller := domain.Seller{
		Name:             req.Name,
		Description:      req.Description,
		RichDescription:  req.RichDescription,
		Image:            imageURL,
		Images:           []string{},
		Brand:            req.Brand,
		Category:         categoryID,
		CountInStock:     *req.CountInStock,
		User:             userID,
		Status:           req.Status,
		IsFeatured:       req.IsFeatured,
		DateCreated:      now,
		PaymentAccountID: req.PaymentAccountID,
		VoterID:          req.VoterID,
	}

	if req.Price != nil {
		seller.Price = *req.Price
	}
	if req.Rating != nil {
		seller.Rating = *req.Rating
	}
	if req.NumReviews != nil {
		seller.NumReviews = *req.NumReviews
	}
	if seller.Status == "" {
		seller.Status = domain.DefaultSellerStatus
	}

	return seller
}

func (s *SellerServiceImpl) UpdateSellerStatus(ctx context.Context, id string, req dto.SellerStatusRequest) (res dto.SellerResponse, err error) {
	if err = utils.ValidateStruct(req); err != nil {
		return
	}

	sellerID, err := parseID(id, errs.ErrInvalidID)
	if err != nil {
		return
	}

	seller, err := s.sellerRepo.UpdateSellerStatus(ctx, sellerID, req.Status)
	if err != nil {
		return
	}

	res = dto.NewSellerResponse(seller)
	publish(ctx, s.publisher, res.ID, dto.EventSellerUpdated, res)

	return res, nil
}

// UpdateGalleryImages replaces the gallery of a listing. Files are written
// before the listing is updated; they stay on disk if that update fails.
func (s *SellerServiceImpl) UpdateGalleryImages(ctx context.Context, id string, images []*multipart.FileHeader, baseURL string) (res dto.SellerResponse, err error) {
	sellerID, err := parseID(id, errs.ErrInvalidSellerID)
	if err != nil {
		return
	}

	if len(images) > upload.MaxGallery {
		return res, errs.ErrTooManyFiles
	}

	urls := []string{}
	if len(images) > 0 {
		urls, err = s.store.SaveAll(ctx, baseURL, images)
		if err != nil {
			return
		}
	}

	seller, err := s.sellerRepo.UpdateSellerImages(ctx, sellerID, urls)
	if err != nil {
		return
	}

	res = dto.NewSellerResponse(seller)
	publish(ctx, s.publisher, res.ID, dto.EventSellerUpdated, res)

	return res, nil
}

func (s *SellerServiceImpl) DeleteSeller(ctx context.Context, id string) (err error) {
	sellerID, err := parseID(id, errs.ErrInvalidID)
	if err != nil {
		return
	}

	if err = s.sellerRepo.DeleteSeller(ctx, sellerID); err != nil {
		return
	}

	publish(ctx, s.publisher, id, dto.EventSellerDeleted, dto.DeletedResource{ID: id})

	return nil
}

func (s *SellerServiceImpl) CountSellers(ctx context.Context) (res dto.SellerCountResponse, err error) {
	count, err := s.sellerRepo.CountSellers(ctx)
	if err != nil {
		return
	}

	return dto.SellerCountResponse{SellerCount: count}, nil
}

func (s *SellerServiceImpl) GetFeaturedSellers(ctx context.Context, limit int64) (res []dto.SellerResponse, err error) {
	if limit < 0 {
		return nil, errs.ErrClient
	}

	sellers, err := s.sellerRepo.GetSellers(ctx, repository.SellerFilter{Featured: true, Limit: limit})
	if err != nil {
		return nil, err
	}

	return dto.NewSellerResponses(sellers), nil
}

func (s *SellerServiceImpl) GetSellersByUser(ctx context.Context, userID string) (res []dto.SellerResponse, err error) {
	return s.GetSellers(ctx, pkgdto.Filter{UserID: userID})
}
