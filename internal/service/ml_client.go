package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aquispel/burnout-api/config"
	"github.com/aquispel/burnout-api/internal/apperror"
	"github.com/rs/zerolog/log"
)

// QuestionPayload is the flat record the ML model expects: the four
// demographic fields plus one field per questionnaire key. Field names are
// part of the wire contract and must not change.
type QuestionPayload struct {
	Ciclo           int    `json:"ciclo"`
	Genero          string `json:"genero"`
	Facultad        string `json:"facultad"`
	Practicasprepro string `json:"practicasprepro"`
	Pregunta1       string `json:"pregunta1"`
	Pregunta2       string `json:"pregunta2"`
	Pregunta3       string `json:"pregunta3"`
	Pregunta4       string `json:"pregunta4"`
	Pregunta5       string `json:"pregunta5"`
	Pregunta6       string `json:"pregunta6"`
	Pregunta7       string `json:"pregunta7"`
	Pregunta8       string `json:"pregunta8"`
	Pregunta9       string `json:"pregunta9"`
	Pregunta10      string `json:"pregunta10"`
	Pregunta11      string `json:"pregunta11"`
	Pregunta12      string `json:"pregunta12"`
	Pregunta13      string `json:"pregunta13"`
	Pregunta14      string `json:"pregunta14"`
	Pregunta15      string `json:"pregunta15"`
	Pregunta16      string `json:"pregunta16"`
	Pregunta17      string `json:"pregunta17"`
	Pregunta18      string `json:"pregunta18"`
	Pregunta19      string `json:"pregunta19"`
}

// MLPredictionRequest is the body POSTed to the prediction endpoint.
type MLPredictionRequest struct {
	Respuestas QuestionPayload `json:"respuestas"`
}

// MLPredictionResponse is what the model returns. Resultado is "SI" when the
// prediction is positive, anything else counts as negative.
type MLPredictionResponse struct {
	Resultado    string  `json:"resultado"`
	Probabilidad float64 `json:"probabilidad"`
	ModelVersion string  `json:"model_version"`
}

// MLClient talks to the external burnout prediction model. One synchronous
// call per test completion; retries, if ever wanted, belong to the caller.
type MLClient interface {
	Predict(ctx context.Context, req MLPredictionRequest) (*MLPredictionResponse, error)
}

type httpMLClient struct {
	endpoint string
	client   *http.Client
}

func NewMLClient(cfg *config.Config) MLClient {
	return &httpMLClient{
		endpoint: cfg.MLService.URL + "/predict",
		client:   &http.Client{Timeout: cfg.MLService.Timeout},
	}
}

func (c *httpMLClient) Predict(ctx context.Context, req MLPredictionRequest) (*MLPredictionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			log.Error().Err(err).Str("endpoint", c.endpoint).Msg("ML service did not respond in time")
			return nil, apperror.Wrap(apperror.KindUpstreamTimeout, "prediction service did not respond in time", err)
		}
		log.Error().Err(err).Str("endpoint", c.endpoint).Msg("Could not reach ML service")
		return nil, apperror.Wrap(apperror.KindUpstreamUnavailable, "could not reach prediction service", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error().Int("status", resp.StatusCode).Str("endpoint", c.endpoint).Msg("ML service returned an error status")
		return nil, apperror.New(apperror.KindUpstreamUnavailable,
			fmt.Sprintf("prediction service error: upstream status %d", resp.StatusCode))
	}

	var mlResp MLPredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&mlResp); err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "malformed prediction service response", err)
	}
	return &mlResp, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}
