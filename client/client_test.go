package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"broilink-backend/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRequest(t *testing.T) {
	t.Run(`bentuk server`, func(t *testing.T) {
		rec, err := normalizeRequest(json.RawMessage(`{
			"id":"a1","requester":{"name":"Budi Santoso","role":"Owner","phone":"+6281234567890"},
			"request_type":"Tambah Kandang","detail":"Nama Kandang: Kandang D","status":"menunggu",
			"created_at":"2025-11-20T10:00:00+07:00"}`))
		require.NoError(t, err)
		require.Equal(t, "a1", rec.ID)
		require.Equal(t, "Budi Santoso", rec.Name)
		require.Equal(t, "Owner", rec.Role)
		require.Equal(t, "+6281234567890", rec.Phone)
		require.Equal(t, models.RequestTypeAddFarm, rec.Type)
		require.Equal(t, models.RequestStatusPending, rec.Status)
		require.Equal(t, models.RequestStatusPending.ToHuman(), rec.StatusLabel)
	})
	t.Run(`bentuk lama`, func(t *testing.T) {
		rec, err := normalizeRequest(json.RawMessage(`{
			"id":17,"user":{"name":"Siti Aminah","role":{"name":"Peternak"}},
			"type":"Lainnya","request_content":"Pakan habis","whatsapp":"0812","status":"arsip"}`))
		require.NoError(t, err)
		require.Equal(t, "17", rec.ID)
		require.Equal(t, "Siti Aminah", rec.Name)
		require.Equal(t, "Peternak", rec.Role)
		require.Equal(t, "0812", rec.Phone)
		require.Equal(t, "Lainnya", rec.Type)
		require.Equal(t, "Pakan habis", rec.Detail)
		require.Equal(t, "arsip", rec.StatusLabel)
		require.Equal(t, models.RequestStatusDefaultColor, rec.StatusColor)
	})
	t.Run(`role di tingkat atas`, func(t *testing.T) {
		rec, err := normalizeRequest(json.RawMessage(`{"id":"x","name":"Andi","role":"Guest","phone":"0813"}`))
		require.NoError(t, err)
		require.Equal(t, "Andi", rec.Name)
		require.Equal(t, "Guest", rec.Role)
	})
}

func TestNormalizeRequests(t *testing.T) {
	item := `{"id":"a1","name":"Andi","type":"Lainnya","status":"selesai"}`
	for name, body := range map[string]string{
		"envelope bersarang": `{"status":"success","data":{"requests":[` + item + `]}}`,
		"data array":         `{"data":[` + item + `]}`,
		"data.data":          `{"data":{"data":[` + item + `]}}`,
		"array polos":        `[` + item + `]`,
	} {
		t.Run(name, func(t *testing.T) {
			list, err := normalizeRequests(unwrapData([]byte(body)))
			require.NoError(t, err)
			require.Len(t, list, 1)
			require.Equal(t, "a1", list[0].ID)
			require.Equal(t, models.RequestStatusDone, list[0].Status)
		})
	}
	list, err := normalizeRequests(unwrapData([]byte(`{"data":null}`)))
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestFileSessionStore(t *testing.T) {
	store := NewFileSessionStore(filepath.Join(t.TempDir(), "broilink", "session.json"))
	session, err := store.Get()
	require.NoError(t, err)
	require.Nil(t, session)

	require.NoError(t, store.Set(Session{Token: "abc", User: User{Name: "Budi"}}))
	session, err = store.Get()
	require.NoError(t, err)
	require.Equal(t, "abc", session.Token)
	require.Equal(t, "Budi", session.User.Name)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	session, err = store.Get()
	require.NoError(t, err)
	require.Nil(t, session)
}

type fakeServer struct {
	token   string
	revoked atomic.Bool
}

func (f *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, body string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
	authorized := func(r *http.Request) bool {
		return !f.revoked.Load() && r.Header.Get("Authorization") == "Bearer "+f.token
	}
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if payload.Password != "rahasia123" {
			writeJSON(w, http.StatusUnauthorized, `{"status":"fail","message":"Username atau Password salah"}`)
			return
		}
		f.revoked.Store(false)
		writeJSON(w, http.StatusOK, `{"status":"success","data":{"token":"`+f.token+`","dashboard_path":"/admin",
			"user":{"id":"u1","username":"admin","name":"Administrator","role":"Admin"}}}`)
	})
	mux.HandleFunc("/api/logout", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, `{"status":"fail","message":"Sesi berakhir, silakan login kembali"}`)
			return
		}
		f.revoked.Store(true)
		writeJSON(w, http.StatusOK, `{"status":"success","message":"Berhasil logout"}`)
	})
	mux.HandleFunc("/api/admin/requests", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, `{"status":"fail","message":"Sesi berakhir, silakan login kembali"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"status":"success","data":{"requests":[
			{"id":"r2","requester":{"name":"Budi Santoso","role":"Owner"},"request_type":"Tambah Kandang","status":"menunggu"},
			{"id":"r1","name":"Andi","type":"Lainnya","status":"selesai"}],
			"sort":"`+r.URL.Query().Get("sort")+`","page":1,"page_size":6,"total":2,"total_pages":1}}`)
	})
	mux.HandleFunc("/api/admin/requests/r2/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"status":"fail","message":"status tidak dikenal"}`)
	})
	mux.HandleFunc("/api/owner/export/f1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="laporan_kandang-a_20251120-100000.csv"`)
		_, _ = w.Write([]byte("Tanggal\n"))
	})
	mux.HandleFunc("/api/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})
	return mux
}

func TestClient(t *testing.T) {
	fake := &fakeServer{token: "token-1"}
	server := httptest.NewServer(fake.handler())
	defer server.Close()
	ctx := context.Background()
	api := New(server.URL+"/", NewMemorySessionStore(), WithHTTPClient(server.Client()))

	t.Run(`login gagal`, func(t *testing.T) {
		_, err := api.Login(ctx, "admin", "salah")
		require.Error(t, err)
		require.Equal(t, http.StatusUnauthorized, StatusOf(err))
		require.Equal(t, "Username atau Password salah", err.(*APIError).Message)
		require.False(t, errors.Is(err, ErrSessionExpired))
	})
	t.Run(`login dan daftar permintaan`, func(t *testing.T) {
		session, err := api.Login(ctx, "admin", "rahasia123")
		require.NoError(t, err)
		require.Equal(t, "/admin", session.DashboardPath)
		require.Equal(t, "Admin", session.User.Role)

		page, err := api.ListRequests(ctx, "newest", 1)
		require.NoError(t, err)
		require.Len(t, page.Requests, 2)
		require.Equal(t, int64(2), page.Total)
		require.Equal(t, "Budi Santoso", page.Requests[0].Name)
		require.Equal(t, "Andi", page.Requests[1].Name)
	})
	t.Run(`pesan kesalahan dari server`, func(t *testing.T) {
		_, err := api.UpdateRequestStatus(ctx, "r2", "hilang")
		require.Equal(t, http.StatusBadRequest, StatusOf(err))
		require.Equal(t, "status tidak dikenal", err.(*APIError).Message)
	})
	t.Run(`pesan cadangan`, func(t *testing.T) {
		err := api.do(ctx, http.MethodGet, "/api/broken", nil, nil, nil)
		require.Equal(t, http.StatusBadGateway, StatusOf(err))
		require.Equal(t, FallbackErrorMessage, err.(*APIError).Message)
	})
	t.Run(`ekspor`, func(t *testing.T) {
		file, err := api.Export(ctx, "f1", "csv", "1week")
		require.NoError(t, err)
		require.Equal(t, "laporan_kandang-a_20251120-100000.csv", file.Name)
		require.Equal(t, "Tanggal\n", string(file.Body))
	})
	t.Run(`401 menghapus sesi`, func(t *testing.T) {
		fake.revoked.Store(true)
		_, err := api.ListRequests(ctx, "", 0)
		require.True(t, errors.Is(err, ErrSessionExpired))
		session, err := api.Sessions().Get()
		require.NoError(t, err)
		require.Nil(t, session)
	})
	t.Run(`logout`, func(t *testing.T) {
		_, err := api.Login(ctx, "admin", "rahasia123")
		require.NoError(t, err)
		require.NoError(t, api.Logout(ctx))
		session, err := api.Sessions().Get()
		require.NoError(t, err)
		require.Nil(t, session)
	})
}

func TestClientUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	api := New(url, nil)
	_, err := api.SubmitGuestRequest(context.Background(), GuestRequest{Name: "Andi"})
	require.Error(t, err)
	require.Equal(t, 0, StatusOf(err))
	require.Equal(t, FallbackErrorMessage, err.Error())
}
