package profilehandler

import (
	"context"
	"strings"
	"time"

	"broilink-backend/config"
	"broilink-backend/db"
	farmsstore "broilink-backend/lib/farms/store"
	filestorage "broilink-backend/lib/file-storage"
	"broilink-backend/lib/otp"
	usersstore "broilink-backend/lib/users/store"
	initchecker "broilink-backend/lib/utils/init-checker"
	"broilink-backend/lib/utils/kvstore"
	"broilink-backend/models"
	profileapimodels "broilink-backend/models/api/profile"
	usersapimodels "broilink-backend/models/api/users"
	dbmodels "broilink-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	otpPurposePhone = "phone-change"
	MaxPhotoSize    = 2 * 1024 * 1024
	PhotoURL        = "/api/peternak/profile/photo"
)

var photoTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

type Provider interface {
	Get(userID string) (*profileapimodels.ProfileView, error)
	// Update - perubahan nomor peternak ditahan sampai OTP ke nomor lama diverifikasi
	Update(ctx context.Context, userID string, data profileapimodels.ProfileEditData) (*profileapimodels.ProfileUpdateResult, error)
	OtpSend(ctx context.Context, userID string, data profileapimodels.OtpSendData) (*profileapimodels.OtpSendResult, error)
	OtpVerify(ctx context.Context, userID string, data profileapimodels.OtpVerifyData) (*profileapimodels.ProfileView, error)
	UploadPhoto(ctx context.Context, userID string, file []byte, contentType string) (*profileapimodels.ProfileView, error)
	GetPhoto(ctx context.Context, userID string) (*filestorage.Object, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"kvstore", kvstore.Instance,
		"otpProvider", otp.Instance,
		"fileStorage", filestorage.Instance,
	)
	Instance = NewInstance(db.DB, kvstore.Instance, otp.Instance, filestorage.Instance,
		time.Second*time.Duration(config.Conf.Otp.TTLInSec))
}

func NewInstance(DB *gorm.DB, store kvstore.Provider, otpProvider otp.Provider, storage filestorage.Provider, pendingTTL time.Duration) Provider {
	if pendingTTL <= 0 {
		pendingTTL = 5 * time.Minute
	}
	return impl{
		db:         DB,
		userStore:  usersstore.NewInstance(DB),
		farmStore:  farmsstore.NewInstance(DB),
		store:      store,
		otp:        otpProvider,
		storage:    storage,
		pendingTTL: pendingTTL,
	}
}

type impl struct {
	db         *gorm.DB
	userStore  usersstore.Provider
	farmStore  farmsstore.Provider
	store      kvstore.Provider
	otp        otp.Provider
	storage    filestorage.Provider
	pendingTTL time.Duration
}

// pendingProfile - profil baru yang menunggu verifikasi
type pendingProfile struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func pendingKey(userID string) string {
	return "profile:pending:" + userID
}

func (i impl) Get(userID string) (*profileapimodels.ProfileView, error) {
	rec, err := i.getUser(userID)
	if err != nil {
		return nil, err
	}
	view, err := i.toView(*rec)
	if err != nil {
		return nil, err
	}
	pending, err := i.getPending(context.Background(), userID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		view.PendingPhone = pending.PhoneNumber
	}
	return view, nil
}

func (i impl) Update(ctx context.Context, userID string, data profileapimodels.ProfileEditData) (*profileapimodels.ProfileUpdateResult, error) {
	rec, err := i.getUser(userID)
	if err != nil {
		return nil, err
	}
	logger := log.WithFields(log.Fields{"user_id": userID, "role": rec.Role})
	name := strings.TrimSpace(data.Name)
	email := rec.Email
	if data.Email != nil {
		email = strings.TrimSpace(*data.Email)
	}
	phone := usersapimodels.NormalizePhone(data.PhoneNumber)

	updMap := map[string]interface{}{
		"email": email,
	}
	if rec.Role == models.PeternakRole {
		if name != "" && name != rec.Name {
			return nil, models.ValidationError("Nama tidak dapat diubah")
		}
	} else if name != "" {
		updMap["name"] = name
	}

	phoneChanged := phone != usersapimodels.NormalizePhone(rec.PhoneNumber)
	if rec.Role != models.PeternakRole || !phoneChanged || rec.PhoneNumber == "" {
		updMap["phone_number"] = phone
		if err = i.userStore.Update(userID, updMap); err != nil {
			return nil, err
		}
		if rec.Role == models.PeternakRole {
			if err = i.clearPending(ctx, userID); err != nil {
				return nil, err
			}
		}
		logger.Info("profil diperbarui")
		view, err := i.Get(userID)
		if err != nil {
			return nil, err
		}
		return &profileapimodels.ProfileUpdateResult{Profile: *view}, nil
	}

	// kode dikirim lebih dulu; penolakan (cooldown) tidak boleh menyentuh perubahan tertunda
	sent, err := i.otp.Send(ctx, userID, otpPurposePhone, rec.PhoneNumber, phone)
	if err != nil {
		return nil, err
	}
	pending := pendingProfile{Email: email, PhoneNumber: phone}
	if err = kvstore.SetJSON(ctx, i.store, pendingKey(userID), pending, i.pendingTTL); err != nil {
		_ = i.otp.Cancel(ctx, userID, otpPurposePhone)
		return nil, err
	}
	logger.Info("perubahan nomor telepon menunggu verifikasi OTP")
	view, err := i.toView(*rec)
	if err != nil {
		return nil, err
	}
	view.PendingPhone = phone
	return &profileapimodels.ProfileUpdateResult{
		Profile:     *view,
		OtpRequired: true,
		SentTo:      sent.SentTo,
		ExpiresIn:   int(sent.ExpiresIn.Seconds()),
	}, nil
}

func (i impl) OtpSend(ctx context.Context, userID string, data profileapimodels.OtpSendData) (*profileapimodels.OtpSendResult, error) {
	rec, err := i.getUser(userID)
	if err != nil {
		return nil, err
	}
	pending, err := i.matchPending(ctx, userID, data.NewPhoneNumber)
	if err != nil {
		return nil, err
	}
	sent, err := i.otp.Send(ctx, userID, otpPurposePhone, rec.PhoneNumber, pending.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if err = kvstore.SetJSON(ctx, i.store, pendingKey(userID), pending, i.pendingTTL); err != nil {
		_ = i.otp.Cancel(ctx, userID, otpPurposePhone)
		return nil, err
	}
	return &profileapimodels.OtpSendResult{
		SentTo:    sent.SentTo,
		ExpiresIn: int(sent.ExpiresIn.Seconds()),
	}, nil
}

func (i impl) OtpVerify(ctx context.Context, userID string, data profileapimodels.OtpVerifyData) (*profileapimodels.ProfileView, error) {
	if _, err := i.getUser(userID); err != nil {
		return nil, err
	}
	pending, err := i.matchPending(ctx, userID, data.NewPhoneNumber)
	if err != nil {
		return nil, err
	}
	if err = i.otp.Verify(ctx, userID, otpPurposePhone, strings.TrimSpace(data.Otp), pending.PhoneNumber); err != nil {
		return nil, err
	}
	updMap := map[string]interface{}{
		"email":        pending.Email,
		"phone_number": pending.PhoneNumber,
	}
	if err = i.userStore.Update(userID, updMap); err != nil {
		return nil, err
	}
	if err = i.store.Delete(ctx, pendingKey(userID)); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("gagal menghapus perubahan profil yang tertunda")
	}
	log.WithField("user_id", userID).Info("nomor telepon diperbarui setelah verifikasi OTP")
	return i.Get(userID)
}

func (i impl) UploadPhoto(ctx context.Context, userID string, file []byte, contentType string) (*profileapimodels.ProfileView, error) {
	if _, err := i.getUser(userID); err != nil {
		return nil, err
	}
	if len(file) == 0 {
		return nil, models.ValidationError("file foto wajib diunggah")
	}
	if len(file) > MaxPhotoSize {
		return nil, models.ValidationError("ukuran foto maksimal 2 MB")
	}
	contentType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if !photoTypes[contentType] {
		return nil, models.ValidationError("format foto harus JPG atau PNG")
	}
	key := "profile/" + userID
	if err := i.storage.Upload(ctx, key, file, contentType); err != nil {
		return nil, err
	}
	if err := i.userStore.Update(userID, map[string]interface{}{"profile_photo": key}); err != nil {
		return nil, err
	}
	return i.Get(userID)
}

func (i impl) GetPhoto(ctx context.Context, userID string) (*filestorage.Object, error) {
	rec, err := i.getUser(userID)
	if err != nil {
		return nil, err
	}
	if rec.ProfilePhoto == "" {
		return nil, models.NotFoundError("Foto profil belum diunggah")
	}
	obj, err := i.storage.Get(ctx, rec.ProfilePhoto)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, models.NotFoundError("Foto profil tidak ditemukan")
	}
	return obj, nil
}

func (i impl) getUser(userID string) (*dbmodels.User, error) {
	rec, err := i.userStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NotFoundError("Pengguna tidak ditemukan")
	}
	return rec, nil
}

func (i impl) getPending(ctx context.Context, userID string) (*pendingProfile, error) {
	pending := pendingProfile{}
	found, err := kvstore.GetJSON(ctx, i.store, pendingKey(userID), &pending)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &pending, nil
}

func (i impl) matchPending(ctx context.Context, userID, newPhone string) (*pendingProfile, error) {
	pending, err := i.getPending(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending == nil || pending.PhoneNumber != usersapimodels.NormalizePhone(newPhone) {
		return nil, models.ValidationError("Tidak ada perubahan nomor telepon yang menunggu verifikasi")
	}
	return pending, nil
}

func (i impl) clearPending(ctx context.Context, userID string) error {
	if err := i.store.Delete(ctx, pendingKey(userID)); err != nil {
		return err
	}
	return i.otp.Cancel(ctx, userID, otpPurposePhone)
}

func (i impl) toView(rec dbmodels.User) (*profileapimodels.ProfileView, error) {
	view := profileapimodels.ProfileView{
		ID:          rec.ID,
		Username:    rec.Username,
		Name:        rec.Name,
		Email:       rec.Email,
		PhoneNumber: rec.PhoneNumber,
		Role:        string(rec.Role),
	}
	if rec.Role != models.PeternakRole {
		return &view, nil
	}
	if rec.ProfilePhoto != "" {
		view.PhotoURL = PhotoURL
	}
	if rec.Owner != nil {
		view.OwnerName = rec.Owner.Name
	}
	farms, err := i.farmStore.List(farmsstore.Filter{PeternakID: rec.ID})
	if err != nil {
		return nil, err
	}
	if len(farms) > 0 {
		view.FarmName = farms[0].FarmName
	}
	return &view, nil
}
