package auth

import (
	"errors"
	"time"

	"github.com/blockpress/core/internal/models"
	"github.com/blockpress/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 7 * 24 * time.Hour

var (
	errUserNotFound       = errors.New("user not found")
	errWrongPassword      = errors.New("wrong password")
	errOwnerAlreadyExists = errors.New("owner already registered")
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// GetOwner returns the site owner, or nil before registration.
func (s *Service) GetOwner() (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Login verifies the password and returns a signed token. A missing user is
// delayed before failing so probing and wrong-password attempts cost the same.
func (s *Service) Login(username, password string) (string, *models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			time.Sleep(3 * time.Second)
			return "", nil, errUserNotFound
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, errWrongPassword
	}

	now := time.Now()
	s.db.Model(&u).Update("last_login_time", now)
	u.LastLoginTime = &now

	token, err := jwt.Sign(u.ID, tokenTTL)
	return token, &u, err
}

// Register creates the owner account. Only the first registration succeeds.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	var count int64
	s.db.Model(&models.UserModel{}).Count(&count)
	if count > 0 {
		return nil, errOwnerAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := dto.Name
	if name == "" {
		name = dto.Username
	}
	u := models.UserModel{Username: dto.Username, PasswordHash: string(hash), Name: name}
	return &u, s.db.Create(&u).Error
}

// IsRegistered reports whether the owner account exists yet.
func (s *Service) IsRegistered() bool {
	var count int64
	s.db.Model(&models.UserModel{}).Count(&count)
	return count > 0
}

// GetByID returns the user or nil when absent.
func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
