package image

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/dmorgan81/fluxgate/internal/config"
	"github.com/dmorgan81/fluxgate/internal/log"
	"github.com/dmorgan81/fluxgate/internal/param"
	"github.com/samber/do"
	"github.com/samber/lo"
)

type HuggingFaceGenerator struct {
	Client  *http.Client
	BaseURL string
	Model   string
	Token   string
}

func NewHuggingFaceGenerator(i *do.Injector) (Generator, error) {
	cfg := do.MustInvoke[config.Config](i)
	return &HuggingFaceGenerator{
		Client:  do.MustInvoke[*http.Client](i),
		BaseURL: cfg.Gateway.BaseURL,
		Model:   cfg.Gateway.Model,
		Token:   do.MustInvokeNamed[string](i, "token"),
	}, nil
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (g *HuggingFaceGenerator) Generate(ctx context.Context, params Params) ([]byte, string, error) {
	token := lo.Ternary(params.Token != "", params.Token, g.Token)
	logger := log.FromContextOrDiscard(ctx).WithGroup("huggingface").
		With("model", g.Model, "params", params, "token", param.Hash(token))

	if token == "" {
		return nil, "", &GatewayError{
			Status:  http.StatusUnauthorized,
			Message: "no access token configured",
			Err:     ErrUnauthorized,
		}
	}

	body, err := json.Marshal(inferenceRequest{
		Inputs:     params.Prompt,
		Parameters: inferenceParameters{Width: params.Width, Height: params.Height},
	})
	if err != nil {
		return nil, "", err
	}

	url := g.BaseURL + "/models/" + g.Model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, "", err
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "image/png")
	req.Header.Add("Authorization", "Bearer "+token)

	logger.Info("generating image")
	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, "", newNetworkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", newNetworkError(err)
	}

	if resp.StatusCode >= 400 {
		logger.Info("generation failed", "status", resp.StatusCode)
		return nil, "", newGatewayError(resp.StatusCode, data)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	logger.Info("received image", "bytes", len(data), "content-type", contentType)
	return data, contentType, nil
}
