package authhandler

import (
	"context"
	"time"

	"broilink-backend/config"
	"broilink-backend/db"
	"broilink-backend/lib/metrics"
	"broilink-backend/lib/rbac"
	"broilink-backend/lib/session"
	usersstore "broilink-backend/lib/users/store"
	authutils "broilink-backend/lib/utils/auth-utils"
	"broilink-backend/models"
	authapimodels "broilink-backend/models/api/auth"
	dbmodels "broilink-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const invalidCredentialsMsg = "Username atau Password salah"

type Provider interface {
	Login(ctx context.Context, payload authapimodels.LoginRequest) (*authapimodels.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	Me(userID string) (*authapimodels.MeResponse, error)
	// ValidateSession - token hanya berlaku selama sesinya masih ada
	ValidateSession(ctx context.Context, sessionID, userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(usersstore.NewInstance(db.DB), session.Instance, rbac.Instance,
		config.Conf.Auth.JWTSecret, config.Conf.JWTTTL())
}

func NewInstance(userStore usersstore.Provider, sessions session.Provider, rbacProvider rbac.Provider, secret string, ttl time.Duration) Provider {
	return impl{
		userStore: userStore,
		sessions:  sessions,
		rbac:      rbacProvider,
		secret:    secret,
		ttl:       ttl,
	}
}

type impl struct {
	userStore usersstore.Provider
	sessions  session.Provider
	rbac      rbac.Provider
	secret    string
	ttl       time.Duration
}

func (i impl) Login(ctx context.Context, payload authapimodels.LoginRequest) (*authapimodels.LoginResponse, error) {
	logger := log.WithField("username", payload.Username)
	user, err := i.userStore.FindByUsername(payload.Username)
	if err != nil {
		logger.WithError(err).Error("kesalahan mencari pengguna berdasarkan username")
		return nil, err
	}
	if user == nil {
		logger.Debug("pengguna tidak ditemukan")
		metrics.Logins.WithLabelValues(metrics.LoginFailed).Inc()
		return nil, models.UnauthorizedError(invalidCredentialsMsg)
	}
	if !authutils.CheckPassword(user.Password, payload.Password) {
		logger.Debug("password tidak cocok")
		metrics.Logins.WithLabelValues(metrics.LoginFailed).Inc()
		return nil, models.UnauthorizedError(invalidCredentialsMsg)
	}
	if !user.IsActive() {
		return nil, models.ForbiddenError("Akun Anda dinonaktifkan, hubungi admin")
	}
	sessionID := uuid.NewString()
	token, expiresAt, err := authutils.GetToken(i.secret, i.ttl, user.ID, user.Name, sessionID, user.Role)
	if err != nil {
		logger.WithError(err).Error("kesalahan membuat JWT")
		return nil, err
	}
	err = i.sessions.Create(ctx, sessionID, session.Data{
		UserID:    user.ID,
		Role:      string(user.Role),
		CreatedAt: time.Now(),
	}, i.ttl)
	if err != nil {
		return nil, errors.Wrap(err, "kesalahan menyimpan sesi")
	}
	now := time.Now()
	if err = i.userStore.Update(user.ID, map[string]interface{}{"last_login": now}); err != nil {
		logger.WithError(err).Error("kesalahan memperbarui waktu login terakhir")
	}
	metrics.Logins.WithLabelValues(metrics.LoginSuccess).Inc()
	logger.WithField("user_id", user.ID).Info("pengguna login")
	return &authapimodels.LoginResponse{
		User:          ToUserView(*user),
		Token:         token,
		ExpiresAt:     expiresAt.Unix(),
		DashboardPath: user.Role.DashboardPath(),
	}, nil
}

func (i impl) Logout(ctx context.Context, sessionID string) error {
	return i.sessions.Delete(ctx, sessionID)
}

func (i impl) Me(userID string) (*authapimodels.MeResponse, error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.UnauthorizedError("Sesi berakhir, silakan login kembali")
	}
	return &authapimodels.MeResponse{
		User:        ToUserView(*user),
		Permissions: i.rbac.GetPermissions(user.Role),
	}, nil
}

func (i impl) ValidateSession(ctx context.Context, sessionID, userID string) error {
	data, err := i.sessions.Get(ctx, sessionID)
	if err != nil {
		return errors.Wrap(err, "kesalahan membaca sesi")
	}
	if data == nil || data.UserID != userID {
		return models.UnauthorizedError("Sesi berakhir, silakan login kembali")
	}
	return nil
}

func ToUserView(rec dbmodels.User) authapimodels.UserView {
	view := authapimodels.UserView{
		ID:          rec.ID,
		Username:    rec.Username,
		Name:        rec.Name,
		Email:       rec.Email,
		PhoneNumber: rec.PhoneNumber,
		Role:        rec.Role,
		RoleName:    rec.Role.ToHuman(),
	}
	if rec.OwnerID != nil {
		view.OwnerID = *rec.OwnerID
	}
	return view
}
