package client

import (
	"context"
	"mime"
	"net/http"
	"net/url"

	"broilink-backend/models"
	authapimodels "broilink-backend/models/api/auth"
	farmconfigapimodels "broilink-backend/models/api/farmconfig"
	profileapimodels "broilink-backend/models/api/profile"

	"github.com/pkg/errors"
)

// Login menyimpan token ke SessionStore
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	if err := c.sessions.Clear(); err != nil {
		return nil, err
	}
	var resp authapimodels.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/login", nil, authapimodels.LoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	session := Session{
		Token:         resp.Token,
		ExpiresAt:     resp.ExpiresAt,
		DashboardPath: resp.DashboardPath,
		User: User{
			ID:          resp.User.ID,
			Username:    resp.User.Username,
			Name:        resp.User.Name,
			Email:       resp.User.Email,
			PhoneNumber: resp.User.PhoneNumber,
			Role:        string(resp.User.Role),
			OwnerID:     resp.User.OwnerID,
		},
	}
	if err = c.sessions.Set(session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Logout - sesi lokal selalu dihapus, walaupun server gagal dihubungi
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil, nil)
	if clearErr := c.sessions.Clear(); clearErr != nil {
		return clearErr
	}
	if errors.Is(err, ErrSessionExpired) {
		return nil
	}
	return err
}

func (c *Client) Me(ctx context.Context) (*authapimodels.MeResponse, error) {
	var resp authapimodels.MeResponse
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) rolePrefix() (string, error) {
	session, err := c.sessions.Get()
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", ErrSessionExpired
	}
	switch models.UserRole(session.User.Role) {
	case models.OwnerRole:
		return "/api/owner", nil
	case models.PeternakRole:
		return "/api/peternak", nil
	case models.AdminRole:
		return "/api/admin", nil
	}
	return "", errors.Errorf("peran tidak dikenal: %v", session.User.Role)
}

func (c *Client) Profile(ctx context.Context) (*profileapimodels.ProfileView, error) {
	prefix, err := c.rolePrefix()
	if err != nil {
		return nil, err
	}
	var resp profileapimodels.ProfileView
	if err = c.do(ctx, http.MethodGet, prefix+"/profile", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile - OtpRequired=true bila nomor baru menunggu verifikasi
func (c *Client) UpdateProfile(ctx context.Context, payload profileapimodels.ProfileEditData) (*profileapimodels.ProfileUpdateResult, error) {
	prefix, err := c.rolePrefix()
	if err != nil {
		return nil, err
	}
	var resp profileapimodels.ProfileUpdateResult
	if err = c.do(ctx, http.MethodPut, prefix+"/profile", nil, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SendOtp(ctx context.Context, newPhone string) (*profileapimodels.OtpSendResult, error) {
	var resp profileapimodels.OtpSendResult
	err := c.do(ctx, http.MethodPost, "/api/peternak/otp/send", nil,
		profileapimodels.OtpSendData{NewPhoneNumber: newPhone}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) VerifyOtp(ctx context.Context, code, newPhone string) (*profileapimodels.ProfileView, error) {
	var resp profileapimodels.ProfileView
	err := c.do(ctx, http.MethodPost, "/api/peternak/otp/verify", nil,
		profileapimodels.OtpVerifyData{Otp: code, NewPhoneNumber: newPhone}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) FarmConfig(ctx context.Context, farmID string) (*farmconfigapimodels.FarmConfigView, error) {
	var resp farmconfigapimodels.FarmConfigView
	if err := c.do(ctx, http.MethodGet, "/api/admin/farms/"+url.PathEscape(farmID)+"/config", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SaveFarmConfig(ctx context.Context, farmID string, values map[string]float64) (*farmconfigapimodels.FarmConfigView, error) {
	var resp farmconfigapimodels.FarmConfigView
	if err := c.do(ctx, http.MethodPut, "/api/admin/farms/"+url.PathEscape(farmID)+"/config", nil, values, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ResetFarmConfig(ctx context.Context, farmID string) (*farmconfigapimodels.FarmConfigView, error) {
	var resp farmconfigapimodels.FarmConfigView
	if err := c.do(ctx, http.MethodPost, "/api/admin/farms/"+url.PathEscape(farmID)+"/config/reset", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type ExportFile struct {
	Name        string
	ContentType string
	Body        []byte
}

// Export - format csv|xlsx|pdf, period 1day|1week|1month|6months
func (c *Client) Export(ctx context.Context, farmID, format, period string) (*ExportFile, error) {
	query := url.Values{}
	if format != "" {
		query.Set("format", format)
	}
	if period != "" {
		query.Set("period", period)
	}
	resp, err := c.send(ctx, http.MethodGet, "/api/owner/export/"+url.PathEscape(farmID), query, "", nil)
	if err != nil {
		return nil, err
	}
	file := &ExportFile{
		ContentType: resp.header.Get("Content-Type"),
		Body:        resp.body,
	}
	if _, params, err := mime.ParseMediaType(resp.header.Get("Content-Disposition")); err == nil {
		file.Name = params["filename"]
	}
	return file, nil
}
