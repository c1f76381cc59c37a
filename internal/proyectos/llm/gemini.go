package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gestion-proyectos/proyectos-backend/config"
	"github.com/gestion-proyectos/proyectos-backend/internal/proyectos/domain"
)

// ErrSinCredencial is returned before any HTTP traffic when no API key is
// configured. The credential is soft: the caller degrades, the process keeps
// running.
var ErrSinCredencial = errors.New("falta la credencial de la IA (GEMINI_API_KEY)")

// Client talks to the Gemini generateContent endpoint. One synchronous
// request per call, no retry.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// NewClient creates a Gemini client from the AI configuration.
func NewClient(cfg config.AIConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Resultado is the normalized outcome of a portfolio summarization call.
// Descripciones maps project id to the generated note; ids the generator
// invented or malformed entries never appear here.
type Resultado struct {
	Resumen       string
	Descripciones map[string]string
}

// Request/response schema of the generateContent API. The response is
// matched against this single explicit shape; anything that does not fit is
// treated as uninterpretable rather than sniffed for alternatives.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Resumir sends the portfolio prompt as a single user turn and normalizes
// the reply into a Resultado.
func (c *Client) Resumir(ctx context.Context, proyectos []domain.ProyectoResumen) (*Resultado, error) {
	if c.apiKey == "" {
		return nil, ErrSinCredencial
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: BuildPrompt(proyectos)}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llamada al generador: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("el generador respondió estado %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return nil, fmt.Errorf("la respuesta no contiene texto interpretable")
	}

	text := extractText(gr)
	if text == "" {
		return nil, fmt.Errorf("la respuesta no contiene texto interpretable")
	}

	return parseResultado(stripFences(text), idSet(proyectos))
}

func extractText(gr generateResponse) string {
	if len(gr.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}

// stripFences removes a surrounding ``` or ```json markdown fence so the
// payload can be parsed as JSON. The language tag is trimmed whether or not
// the fence puts the payload on its own line.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	s = strings.TrimSpace(strings.TrimPrefix(s, "json"))
	s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	return s
}

func parseResultado(text string, ids map[string]struct{}) (*Resultado, error) {
	var reply struct {
		Resumen       any               `json:"resumen"`
		Descripciones []json.RawMessage `json:"descripciones"`
	}
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return nil, fmt.Errorf("la respuesta de la IA no es JSON válido")
	}

	res := &Resultado{Descripciones: filtrarDescripciones(reply.Descripciones, ids)}
	if s, ok := reply.Resumen.(string); ok {
		res.Resumen = strings.TrimSpace(s)
	}
	return res, nil
}

// filtrarDescripciones keeps only well-formed note entries addressed to a
// known project id. Malformed entries are dropped and processing continues:
// one bad entry must not void the value of the others.
func filtrarDescripciones(entries []json.RawMessage, ids map[string]struct{}) map[string]string {
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		var nota struct {
			ID          any    `json:"id"`
			Descripcion string `json:"descripcion"`
		}
		if err := json.Unmarshal(e, &nota); err != nil {
			continue
		}
		id := coerceID(nota.ID)
		if id == "" {
			continue
		}
		if _, ok := ids[id]; !ok {
			continue
		}
		desc := strings.TrimSpace(nota.Descripcion)
		if desc == "" {
			continue
		}
		out[id] = desc
	}
	return out
}

func coerceID(v any) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

func idSet(proyectos []domain.ProyectoResumen) map[string]struct{} {
	ids := make(map[string]struct{}, len(proyectos))
	for _, p := range proyectos {
		ids[p.ID] = struct{}{}
	}
	return ids
}
