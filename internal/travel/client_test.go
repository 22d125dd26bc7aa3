package travel

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestClient stands up one httptest server for every provider and points
// all base URLs at it. The mux carries the per-test endpoints; the Amadeus
// token endpoint is preinstalled so the oauth2 transport can authenticate.
func newTestClient(t *testing.T, mux *http.ServeMux) *APIClient {
	t.Helper()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"test-token","token_type":"Bearer","expires_in":1799}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := NewAPIClient(Config{
		WeatherAPIKey:       "w-key",
		AmadeusClientID:     "am-id",
		AmadeusClientSecret: "am-secret",
		GooglePlacesAPIKey:  "p-key",
		AviationStackAPIKey: "av-key",
		WeatherGeoBaseURL:   srv.URL,
		WeatherBaseURL:      srv.URL,
		AmadeusBaseURL:      srv.URL,
		AviationBaseURL:     srv.URL + "/v1",
		ExchangeBaseURL:     srv.URL + "/v4",
		PlacesBaseURL:       srv.URL,
		PlacesPhotoBaseURL:  "https://photos.example/api",
	})
	require.NoError(t, err)
	return c
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}

func TestTrimQuery(t *testing.T) {
	require.Equal(t, "http://x/y", trimQuery("http://x/y?appid=secret"))
	require.Equal(t, "http://x/y", trimQuery("http://x/y"))
}
