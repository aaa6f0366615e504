// Package rest implementa el adaptador de salida hacia la API REST de
// supply-manager: una petición por operación, sin reintentos, con el fallo
// normalizado a *RemoteError.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// maxBodyBytes límite de lectura del cuerpo de respuesta.
const maxBodyBytes = 4 * 1024 * 1024

// TokenSource entrega el valor del header Authorization; vacío = sin sesión.
type TokenSource interface {
	AuthorizationValue() string
}

// Client cliente HTTP base compartido por todos los recursos de la API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient construye el cliente. El timeout es del transporte; no se impone
// ninguno adicional por operación. tokens puede ser nil (sin autenticación).
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// do emite una petición JSON y devuelve el cuerpo crudo de una respuesta 2xx.
// Una respuesta no-2xx se convierte en *RemoteError; un fallo de transporte se
// envuelve y se propaga de inmediato.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("api: serializar payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("api: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if auth := c.tokens.AuthorizationValue(); auth != "" {
			req.Header.Set("Authorization", auth)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("api: cancelado: %w", ctx.Err())
		}
		return nil, fmt.Errorf("api: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("api: leer respuesta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newRemoteError(resp.StatusCode, raw)
	}
	return raw, nil
}
