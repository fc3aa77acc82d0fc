// Package respond padroniza as respostas JSON dos handlers.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"

	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/pkg/logger"
)

// MsgInvalidPayload é a mensagem de payload que não decodifica.
const MsgInvalidPayload = "Payload inválido. Verifique o formato JSON."

// JSON escreve data com successStatus quando err é nil; senão mapeia err para
// domain.ErrorResponse com o status do AppError.
func JSON(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				log.Error("Falha ao codificar JSON de resposta", jsonErr)
			}
		}
		return
	}

	// TRATAMENTO DE ERROS
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message})
}

// Error é JSON para o caminho de erro.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	JSON(w, r, log, nil, err, http.StatusOK)
}

// Decode lê o corpo JSON em dest. Corpo inválido vira ValidationError.
func Decode(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return apperror.NewValidationError(MsgInvalidPayload)
	}
	return nil
}
