package echoapi

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/cnam2653/canvas-assignment-calendar/core"
	"github.com/cnam2653/canvas-assignment-calendar/core/credential"
	"github.com/cnam2653/canvas-assignment-calendar/services/canvas"
)

// client-facing messages; the real cause is logged server-side only
const (
	noTokenMsg     = "No token for this user"
	fetchFailedMsg = "Failed to fetch courses"
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how
// to handle our errors. signalShutdown is called in order to gracefully
// shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		case *canvas.RemoteError:
			code = http.StatusInternalServerError
			message = fetchFailedMsg
			logger.Error(fetchFailedMsg, origErr)
		default:
			switch {
			case origErr == credential.ErrNotFound:
				code = http.StatusUnauthorized
				message = noTokenMsg
			case origErr == canvas.ErrPaginationLimit || origErr == context.DeadlineExceeded:
				code = http.StatusInternalServerError
				message = fetchFailedMsg
				logger.Error(fetchFailedMsg, errors.Wrap(err, fetchFailedMsg))
			default: // any other error is a server error
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				message = msg
				logger.Error(msg, errors.Wrap(err, msg))

				// shutting down...
				if core.IsShutdown(err) {
					signalShutdown()
				}
			}
		}

		message = echo.Map{"error": message}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
