package rues

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"consultanit/cmd/internal/domain/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRues struct {
	server *httptest.Server
	calls  atomic.Int32
	path   atomic.Value
}

func newFakeRues(t *testing.T, status int, body string) *fakeRues {
	t.Helper()
	f := &fakeRues{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.path.Store(r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func TestBuildKey(t *testing.T) {
	tests := []struct {
		chamber      string
		registration string
		want         string
	}{
		{chamber: "12", registration: "12345", want: "120000012345"},
		{chamber: "4", registration: "1", want: "400000000001"},
		{chamber: "55", registration: "1234567890", want: "551234567890"},
		{chamber: "55", registration: "12345678901", want: "5512345678901"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildKey(tt.chamber, tt.registration))
		})
	}
}

func TestClient_Query_Success(t *testing.T) {
	fake := newFakeRues(t, http.StatusOK, `{
		"codigo_error": "0000",
		"mensaje_error": "OK",
		"registros": {
			"razon_social": "EMPRESA MOCK RUES",
			"numero_identificacion": 900123456,
			"dv": "1",
			"camara": "BOGOTA",
			"matricula": "12345",
			"cod_ciiu_act_econ_pri": "A0112",
			"desc_ciiu_act_econ_pri": "Cultivo de arroz",
			"cod_ciiu_act_econ_sec": "B0810",
			"ciiu3": "C1011",
			"desc_ciiu4": "Fabricación de productos químicos básicos"
		}
	}`)

	client := NewClient(fake.server.URL + "/api/")
	result, err := client.Query(context.Background(), "900123456", source.Hints{
		ChamberCode:        "12",
		RegistrationNumber: "12345",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/120000012345", fake.path.Load())
	assert.Equal(t, "EMPRESA MOCK RUES", result.Get(KeyRazonSocial))
	assert.Equal(t, "900123456", result.Get(KeyNumeroIdentificacion))
	assert.Equal(t, "A0112", result.Get(KeyCodCIIUPrincipal))
	assert.Equal(t, "B0810", result.Get(KeyCodCIIUSecundario))
	assert.Equal(t, "C1011", result.Get(KeyCIIU3))
	assert.Equal(t, "Fabricación de productos químicos básicos", result.Get(KeyDescCIIU4))
}

func TestClient_Query_MissingHints(t *testing.T) {
	fake := newFakeRues(t, http.StatusOK, `{"codigo_error":"0000","registros":{"razon_social":"X"}}`)
	client := NewClient(fake.server.URL)

	hints := []source.Hints{
		{},
		{ChamberCode: "12"},
		{RegistrationNumber: "12345"},
		{ChamberCode: "  ", RegistrationNumber: "12345"},
	}
	for _, h := range hints {
		result, err := client.Query(context.Background(), "900123456", h)
		require.NoError(t, err)
		assert.Nil(t, result)
	}
	assert.Equal(t, int32(0), fake.calls.Load())
}

func TestClient_Query_BusinessError(t *testing.T) {
	fake := newFakeRues(t, http.StatusOK, `{
		"codigo_error": "1001",
		"mensaje_error": "No se encontró registro para los datos suministrados"
	}`)

	result, err := NewClient(fake.server.URL).Query(context.Background(), "900123456", source.Hints{
		ChamberCode:        "12",
		RegistrationNumber: "99999",
	})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "/120000099999", fake.path.Load())
}

func TestClient_Query_NoRecords(t *testing.T) {
	fake := newFakeRues(t, http.StatusOK, `{"codigo_error":"0000"}`)

	result, err := NewClient(fake.server.URL).Query(context.Background(), "900123456", source.Hints{
		ChamberCode:        "12",
		RegistrationNumber: "12345",
	})
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.IsEmpty())
}

func TestClient_Query_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: ``},
		{name: "bad gateway", status: http.StatusBadGateway, body: `{"codigo_error":"0000"}`},
		{name: "invalid json", status: http.StatusOK, body: `<html></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeRues(t, tt.status, tt.body)

			result, err := NewClient(fake.server.URL).Query(context.Background(), "900123456", source.Hints{
				ChamberCode:        "12",
				RegistrationNumber: "12345",
			})
			assert.Nil(t, result)

			var unavailable *source.UnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Equal(t, SourceName, unavailable.Source)
			assert.ErrorIs(t, err, source.ErrUnavailable)
		})
	}
}

func TestClient_Query_Canceled(t *testing.T) {
	fake := newFakeRues(t, http.StatusOK, `{"codigo_error":"0000"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(fake.server.URL).Query(ctx, "900123456", source.Hints{
		ChamberCode:        "12",
		RegistrationNumber: "12345",
	})
	assert.ErrorIs(t, err, source.ErrUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}
