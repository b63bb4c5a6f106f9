package service

import (
	"context"
	"errors"
	"time"

	"github.com/alimikegami/e-bazaar/config"
	"github.com/alimikegami/e-bazaar/internal/domain"
	"github.com/alimikegami/e-bazaar/internal/dto"
	"github.com/alimikegami/e-bazaar/internal/repository"
	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/alimikegami/e-bazaar/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	config config.Config
	now    func() time.Time
}

func CreateUserService(repo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config, now: time.Now}
}

func (s *UserServiceImpl) Register(ctx context.Context, req dto.UserRequest) (res dto.UserResponse, err error) {
	if err = utils.ValidateStruct(req); err != nil {
		return
	}

	_, err = s.repo.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return res, errs.ErrEmailAlreadyUsed
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Register").Msg("")
		return
	}

	user := domain.User{
		ExternalID:   ulid.Make().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		IsAdmin:      req.IsAdmin,
		Street:       req.Street,
		Apartment:    req.Apartment,
		Zip:          req.Zip,
		City:         req.City,
		Country:      req.Country,
		DateCreated:  s.now(),
	}

	user.ID, err = s.repo.AddUser(ctx, user)
	if err != nil {
		return
	}

	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	if err = utils.ValidateStruct(req); err != nil {
		return
	}

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, errs.ErrNotFound) {
		return res, errs.ErrAccountNotFound
	}
	if err != nil {
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return res, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(user.ID.Hex(), user.IsAdmin, s.config.JWTSecret)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return
	}

	return dto.LoginResponse{User: user.Email, Token: token}, nil
}

func (s *UserServiceImpl) GetUsers(ctx context.Context) (res []dto.UserResponse, err error) {
	users, err := s.repo.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewUserResponses(users), nil
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, id string) (res dto.UserResponse, err error) {
	userID, err := parseID(id, errs.ErrInvalidID)
	if err != nil {
		return
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id string, req dto.UserUpdateRequest) (res dto.UserResponse, err error) {
	if err = utils.ValidateStruct(req); err != nil {
		return
	}

	userID, err := parseID(id, errs.ErrInvalidID)
	if err != nil {
		return
	}

	if req.Email != nil {
		owner, err := s.repo.GetUserByEmail(ctx, *req.Email)
		if err == nil && owner.ID != userID {
			return res, errs.ErrEmailAlreadyUsed
		}
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return res, err
		}
	}

	update := domain.UserUpdate{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		IsAdmin:   req.IsAdmin,
		Street:    req.Street,
		Apartment: req.Apartment,
		Zip:       req.Zip,
		City:      req.City,
		Country:   req.Country,
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "UpdateUser").Msg("")
			return res, err
		}
		passwordHash := string(hash)
		update.PasswordHash = &passwordHash
	}

	user, err := s.repo.UpdateUser(ctx, userID, update)
	if err != nil {
		return
	}

	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) (err error) {
	userID, err := parseID(id, errs.ErrInvalidID)
	if err != nil {
		return
	}

	return s.repo.DeleteUser(ctx, userID)
}

func (s *UserServiceImpl) CountUsers(ctx context.Context) (res dto.UserCountResponse, err error) {
	count, err := s.repo.CountUsers(ctx)
	if err != nil {
		return
	}

	return dto.UserCountResponse{UserCount: count}, nil
}
