package rest

import (
	"encoding/json"
	"fmt"
)

// RemoteError rechazo remoto: respuesta no-2xx de la API. Message proviene del
// campo "message" del cuerpo de error estructurado cuando existe; si no, es un
// mensaje genérico basado en el estado.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// newRemoteError extrae el mensaje del cuerpo de error. Cualquier respuesta
// no-2xx es un fallo sin importar la forma del cuerpo.
func newRemoteError(statusCode int, raw []byte) *RemoteError {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return &RemoteError{StatusCode: statusCode, Message: body.Message}
	}
	return &RemoteError{StatusCode: statusCode, Message: fmt.Sprintf("error HTTP %d", statusCode)}
}
