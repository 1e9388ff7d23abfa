package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aquispel/burnout-api/config"
	"github.com/aquispel/burnout-api/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMLClientFor(url string, timeout time.Duration) MLClient {
	return NewMLClient(&config.Config{
		MLService: config.MLService{URL: url, Timeout: timeout},
	})
}

func samplePredictionRequest() MLPredictionRequest {
	return MLPredictionRequest{Respuestas: QuestionPayload{
		Ciclo:           7,
		Genero:          "Femenino",
		Facultad:        "Ingeniería de Sistemas",
		Practicasprepro: "Sí",
		Pregunta1:       "Siempre",
		Pregunta19:      "Nunca",
	}}
}

func TestPredict_PostsPayloadAndParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		respuestas, ok := body["respuestas"]
		require.True(t, ok, "payload must be wrapped in a respuestas object")
		assert.EqualValues(t, 7, respuestas["ciclo"])
		assert.Equal(t, "Siempre", respuestas["pregunta1"])
		assert.Equal(t, "Nunca", respuestas["pregunta19"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(MLPredictionResponse{
			Resultado:    "SI",
			Probabilidad: 0.82,
			ModelVersion: "2024-01",
		})
	}))
	defer srv.Close()

	client := newMLClientFor(srv.URL, 2*time.Second)

	resp, err := client.Predict(context.Background(), samplePredictionRequest())
	require.NoError(t, err)
	assert.Equal(t, "SI", resp.Resultado)
	assert.InDelta(t, 0.82, resp.Probabilidad, 1e-9)
	assert.Equal(t, "2024-01", resp.ModelVersion)
}

func TestPredict_UpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newMLClientFor(srv.URL, 2*time.Second)

	_, err := client.Predict(context.Background(), samplePredictionRequest())
	require.Error(t, err)
	assert.Equal(t, apperror.KindUpstreamUnavailable, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "upstream status 500")
}

func TestPredict_TimeoutIsReportedAsSuch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newMLClientFor(srv.URL, 50*time.Millisecond)

	_, err := client.Predict(context.Background(), samplePredictionRequest())
	require.Error(t, err)
	assert.Equal(t, apperror.KindUpstreamTimeout, apperror.KindOf(err))
}

func TestPredict_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := newMLClientFor(url, 2*time.Second)

	_, err := client.Predict(context.Background(), samplePredictionRequest())
	require.Error(t, err)
	assert.Equal(t, apperror.KindUpstreamUnavailable, apperror.KindOf(err))
}

func TestPredict_MalformedResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("this is not json"))
	}))
	defer srv.Close()

	client := newMLClientFor(srv.URL, 2*time.Second)

	_, err := client.Predict(context.Background(), samplePredictionRequest())
	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}
