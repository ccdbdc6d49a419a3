package reply

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"petgame/pkg/contextx"
	"petgame/pkg/errcodes"
	"petgame/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Coded реализуют доменные ошибки, несущие код ошибки.
type Coded interface {
	error
	ErrorCode() failure.ErrorCode
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	SupportID string `json:"supportId"`
}

// statusByCode фиксирует контракт API: занятый email, нехватка предмета
// и нехватка монет отдаются как 400 (не 409/402) ради совместимости с фронтом.
//
//nolint:gochecknoglobals
var statusByCode = map[failure.ErrorCode]int{
	errcodes.ValidationError:     http.StatusBadRequest,
	errcodes.UnknownAction:       http.StatusBadRequest,
	errcodes.EmailAlreadyInUse:   http.StatusBadRequest,
	errcodes.ItemNotInStock:      http.StatusBadRequest,
	errcodes.InsufficientFunds:   http.StatusBadRequest,
	errcodes.UnknownShopItem:     http.StatusBadRequest,
	errcodes.CredentialsMismatch: http.StatusUnauthorized,
	errcodes.SessionInvalid:      http.StatusUnauthorized,
	errcodes.SessionMismatch:     http.StatusUnauthorized,
	errcodes.NotOfferSeller:      http.StatusUnauthorized,
	errcodes.NotFound:            http.StatusNotFound,
	errcodes.PetNotFound:         http.StatusNotFound,
	errcodes.OfferNotFound:       http.StatusNotFound,
	errcodes.MethodNotAllowed:    http.StatusMethodNotAllowed,
}

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error пишет структурированный ответ об ошибке. Внутренние сбои логируются
// целиком, а наружу уходят непрозрачное сообщение и support id.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("request failed", logx.Error(err))

	var coded Coded
	if errors.As(err, &coded) {
		if status, ok := statusByCode[coded.ErrorCode()]; ok {
			JSON(ctx, w, status, errorResponse{
				Error:     coded.Error(),
				Code:      coded.ErrorCode().String(),
				SupportID: supportID(ctx),
			})

			return
		}
	}

	// Битый JSON и непрошедшая валидация полей приходят из req.Read
	// как invalid-argument ошибки failure.
	if failure.IsInvalidArgumentError(err) {
		JSON(ctx, w, http.StatusBadRequest, errorResponse{
			Error:     failure.Description(err),
			Code:      errcodes.ValidationError.String(),
			SupportID: supportID(ctx),
		})

		return
	}

	JSON(ctx, w, http.StatusInternalServerError, errorResponse{
		Error:     "internal server error",
		Code:      errcodes.InternalServerError.String(),
		SupportID: supportID(ctx),
	})
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
