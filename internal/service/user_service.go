package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakfit/internal/error_values"
	"github.com/limbo/streakfit/internal/repository"
	"github.com/limbo/streakfit/pkg/entity"
)

// Compared against when the name is unknown, so both failure paths hash.
const dummyPIN = "0000"

type UserService struct {
	repo      repository.UsersRepositoryI
	hasher    PINHasher
	dummyHash string
}

func NewUserService(usersRepo repository.UsersRepositoryI, hasher PINHasher) *UserService {
	if usersRepo == nil || hasher == nil {
		log.Fatal("on user service provided nil repo or hasher")
	}
	dummyHash, err := hasher.Hash(dummyPIN)
	if err != nil {
		log.Fatal("hashing dummy pin error: " + err.Error())
	}
	return &UserService{
		repo:      usersRepo,
		hasher:    hasher,
		dummyHash: dummyHash,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	normalized := RegisterRequest{
		Name: strings.TrimSpace(req.Name),
		PIN:  req.PIN,
	}
	if err := validateStruct(normalized); err != nil {
		return nil, err
	}
	pinHash, err := us.hasher.Hash(normalized.PIN)
	if err != nil {
		return nil, errors.New("hashing pin error: " + err.Error())
	}
	user, err := us.repo.Create(ctx, &entity.User{
		Name:    normalized.Name,
		PINHash: pinHash,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Authenticate(ctx context.Context, name, pin string) (*entity.User, error) {
	if !IsValidPIN(pin) {
		return nil, errorvalues.ErrInvalidPIN
	}
	user, err := us.repo.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			us.hasher.Compare(us.dummyHash, pin)
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if !us.hasher.Compare(user.PINHash, pin) {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, pin string) error {
	if !IsValidPIN(pin) {
		return errorvalues.ErrInvalidPIN
	}
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository searching error: " + err.Error())
	}
	if !us.hasher.Compare(user.PINHash, pin) {
		return errorvalues.ErrWrongCredentials
	}
	err = us.repo.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}
