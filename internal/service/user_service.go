package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %w", err)
	}
	user := &entity.User{
		Name:         req.Name,
		PasswordHash: passwordHash,
	}
	if err = us.repo.Create(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("users repository error: %w", err)
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("users repository error: %w", err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
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
		return nil, fmt.Errorf("users repository error: %w", err)
	}
	return user, nil
}

func (us *UserService) GetByName(ctx context.Context, name string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("users repository error: %w", err)
	}
	return user, nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
