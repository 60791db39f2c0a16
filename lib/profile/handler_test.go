package profilehandler

import (
	"context"
	"regexp"
	"testing"
	"time"

	filestorage "broilink-backend/lib/file-storage"
	"broilink-backend/lib/otp"
	usersstore "broilink-backend/lib/users/store"
	authutils "broilink-backend/lib/utils/auth-utils"
	"broilink-backend/lib/utils/helpers"
	"broilink-backend/lib/utils/kvstore"
	"broilink-backend/lib/utils/testdb"
	"broilink-backend/models"
	profileapimodels "broilink-backend/models/api/profile"
	dbmodels "broilink-backend/models/db"

	"github.com/stretchr/testify/require"
)

const testCode = "123456"

type otpStub struct {
	sentTo []string
	target string
}

func (s *otpStub) Send(ctx context.Context, userID, purpose, phone, target string) (*otp.SendResult, error) {
	s.sentTo = append(s.sentTo, phone)
	s.target = target
	return &otp.SendResult{SentTo: helpers.MaskPhone(phone), ExpiresIn: 5 * time.Minute}, nil
}

func (s *otpStub) Verify(ctx context.Context, userID, purpose, code, target string) error {
	if code != testCode || target != s.target {
		return models.ValidationError("Kode OTP salah")
	}
	return nil
}

func (s *otpStub) Cancel(ctx context.Context, userID, purpose string) error {
	return nil
}

func strPtr(v string) *string {
	return &v
}

func TestProfileHandler(t *testing.T) {
	ctx := context.Background()
	conn := testdb.New(t)
	userStore := usersstore.NewInstance(conn)
	hash, err := authutils.HashPassword("rahasia1")
	require.NoError(t, err)
	ownerID, err := userStore.Create(dbmodels.User{Username: "budi", Name: "Budi", Role: models.OwnerRole, Password: hash})
	require.NoError(t, err)
	peternakID, err := userStore.Create(dbmodels.User{
		Username:    "siti",
		Name:        "Siti",
		Role:        models.PeternakRole,
		Password:    hash,
		PhoneNumber: "+6281111111111",
		OwnerID:     &ownerID,
	})
	require.NoError(t, err)

	stub := &otpStub{}
	provider := NewInstance(conn, kvstore.NewMemory(), stub, filestorage.NewMemory(), time.Minute)

	t.Run(`peternak view`, func(t *testing.T) {
		view, err := provider.Get(peternakID)
		require.NoError(t, err)
		require.Equal(t, "Budi", view.OwnerName)
		require.Equal(t, "+6281111111111", view.PhoneNumber)
		require.Empty(t, view.PhotoURL)
	})
	t.Run(`name is read only for peternak`, func(t *testing.T) {
		_, err := provider.Update(ctx, peternakID, profileapimodels.ProfileEditData{Name: "Siti Aminah", PhoneNumber: "+6281111111111"})
		require.ErrorIs(t, err, models.ErrValidation)
	})
	t.Run(`unchanged phone persists immediately`, func(t *testing.T) {
		result, err := provider.Update(ctx, peternakID, profileapimodels.ProfileEditData{
			Name:        "Siti",
			Email:       strPtr("siti@broilink.id"),
			PhoneNumber: "+62811-1111-1111",
		})
		require.NoError(t, err)
		require.False(t, result.OtpRequired)
		require.Equal(t, "siti@broilink.id", result.Profile.Email)
		require.Empty(t, stub.sentTo)
	})
	t.Run(`changed phone waits for otp`, func(t *testing.T) {
		result, err := provider.Update(ctx, peternakID, profileapimodels.ProfileEditData{
			Email:       strPtr("siti.baru@broilink.id"),
			PhoneNumber: "+6282222222222",
		})
		require.NoError(t, err)
		require.True(t, result.OtpRequired)
		require.Equal(t, "+62811****1111", result.SentTo)
		require.Equal(t, 300, result.ExpiresIn)
		require.Equal(t, []string{"+6281111111111"}, stub.sentTo)

		view, err := provider.Get(peternakID)
		require.NoError(t, err)
		require.Equal(t, "+6281111111111", view.PhoneNumber)
		require.Equal(t, "siti@broilink.id", view.Email)
		require.Equal(t, "+6282222222222", view.PendingPhone)

		_, err = provider.OtpSend(ctx, peternakID, profileapimodels.OtpSendData{NewPhoneNumber: "+6283333333333"})
		require.ErrorIs(t, err, models.ErrValidation)
		sent, err := provider.OtpSend(ctx, peternakID, profileapimodels.OtpSendData{NewPhoneNumber: "+6282222222222"})
		require.NoError(t, err)
		require.Equal(t, "+62811****1111", sent.SentTo)

		_, err = provider.OtpVerify(ctx, peternakID, profileapimodels.OtpVerifyData{Otp: "654321", NewPhoneNumber: "+6282222222222"})
		require.ErrorIs(t, err, models.ErrValidation)
		view, err = provider.Get(peternakID)
		require.NoError(t, err)
		require.Equal(t, "+6281111111111", view.PhoneNumber)

		view, err = provider.OtpVerify(ctx, peternakID, profileapimodels.OtpVerifyData{Otp: testCode, NewPhoneNumber: "+6282222222222"})
		require.NoError(t, err)
		require.Equal(t, "+6282222222222", view.PhoneNumber)
		require.Equal(t, "siti.baru@broilink.id", view.Email)
		require.Empty(t, view.PendingPhone)

		_, err = provider.OtpVerify(ctx, peternakID, profileapimodels.OtpVerifyData{Otp: testCode, NewPhoneNumber: "+6282222222222"})
		require.ErrorIs(t, err, models.ErrValidation)
	})
	t.Run(`owner edits without otp`, func(t *testing.T) {
		result, err := provider.Update(ctx, ownerID, profileapimodels.ProfileEditData{
			Name:        "Budi Santoso",
			PhoneNumber: "+6284444444444",
		})
		require.NoError(t, err)
		require.False(t, result.OtpRequired)
		require.Equal(t, "Budi Santoso", result.Profile.Name)
		require.Equal(t, "+6284444444444", result.Profile.PhoneNumber)
	})
	t.Run(`omitted email keeps stored email`, func(t *testing.T) {
		_, err := provider.Update(ctx, ownerID, profileapimodels.ProfileEditData{
			Email:       strPtr("budi@broilink.id"),
			PhoneNumber: "+6284444444444",
		})
		require.NoError(t, err)
		result, err := provider.Update(ctx, ownerID, profileapimodels.ProfileEditData{PhoneNumber: "+6284444444444"})
		require.NoError(t, err)
		require.Equal(t, "budi@broilink.id", result.Profile.Email)

		result, err = provider.Update(ctx, ownerID, profileapimodels.ProfileEditData{Email: strPtr(""), PhoneNumber: "+6284444444444"})
		require.NoError(t, err)
		require.Empty(t, result.Profile.Email)
	})
	t.Run(`photo`, func(t *testing.T) {
		_, err := provider.GetPhoto(ctx, peternakID)
		require.ErrorIs(t, err, models.ErrNotFound)
		_, err = provider.UploadPhoto(ctx, peternakID, []byte("gif"), "image/gif")
		require.ErrorIs(t, err, models.ErrValidation)
		_, err = provider.UploadPhoto(ctx, peternakID, make([]byte, MaxPhotoSize+1), "image/png")
		require.ErrorIs(t, err, models.ErrValidation)

		view, err := provider.UploadPhoto(ctx, peternakID, []byte("png-bytes"), "image/png")
		require.NoError(t, err)
		require.Equal(t, PhotoURL, view.PhotoURL)
		obj, err := provider.GetPhoto(ctx, peternakID)
		require.NoError(t, err)
		require.Equal(t, "image/png", obj.ContentType)
		require.Equal(t, []byte("png-bytes"), obj.Body)
	})
}

type codeSender struct {
	messages []string
}

func (s *codeSender) SendSMS(phone, message string) error {
	s.messages = append(s.messages, message)
	return nil
}

func (s *codeSender) lastCode(t *testing.T) string {
	require.NotEmpty(t, s.messages)
	code := codePattern.FindString(s.messages[len(s.messages)-1])
	require.Len(t, code, otp.CodeLength)
	return code
}

var codePattern = regexp.MustCompile(`\d{6}`)

func TestPhoneChangeDuringCooldown(t *testing.T) {
	ctx := context.Background()
	conn := testdb.New(t)
	hash, err := authutils.HashPassword("rahasia1")
	require.NoError(t, err)
	peternakID, err := usersstore.NewInstance(conn).Create(dbmodels.User{
		Username:    "siti",
		Name:        "Siti",
		Role:        models.PeternakRole,
		Password:    hash,
		PhoneNumber: "+6281111111111",
	})
	require.NoError(t, err)

	store := kvstore.NewMemory()
	sender := &codeSender{}
	otpProvider := otp.NewInstance(store, sender, otp.Config{TTL: 5 * time.Minute, ResendCooldown: time.Minute})
	provider := NewInstance(conn, store, otpProvider, filestorage.NewMemory(), 5*time.Minute)

	result, err := provider.Update(ctx, peternakID, profileapimodels.ProfileEditData{PhoneNumber: "+6282222222222"})
	require.NoError(t, err)
	require.True(t, result.OtpRequired)
	code := sender.lastCode(t)

	_, err = provider.Update(ctx, peternakID, profileapimodels.ProfileEditData{PhoneNumber: "+6283333333333"})
	require.ErrorIs(t, err, models.ErrValidation)
	require.Contains(t, err.Error(), "Tunggu")
	require.Len(t, sender.messages, 1)

	view, err := provider.Get(peternakID)
	require.NoError(t, err)
	require.Equal(t, "+6282222222222", view.PendingPhone)

	_, err = provider.OtpVerify(ctx, peternakID, profileapimodels.OtpVerifyData{Otp: code, NewPhoneNumber: "+6283333333333"})
	require.ErrorIs(t, err, models.ErrValidation)
	view, err = provider.Get(peternakID)
	require.NoError(t, err)
	require.Equal(t, "+6281111111111", view.PhoneNumber)

	view, err = provider.OtpVerify(ctx, peternakID, profileapimodels.OtpVerifyData{Otp: code, NewPhoneNumber: "+6282222222222"})
	require.NoError(t, err)
	require.Equal(t, "+6282222222222", view.PhoneNumber)
	require.Empty(t, view.PendingPhone)
}
