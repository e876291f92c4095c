package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"runtime"
	"strings"

	"jwt-builder/pkg/discord"
	"jwt-builder/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	switch parsedErr := err.(type) {
	case *errors.ValidationError:
		return http.StatusBadRequest, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Error(),
		}
	case *errors.ValidationErrorCollector:
		return http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   ValidationErrorMsg,
			Errors:    parsedErr.Errors(),
		}
	case *errors.HTTPError:
		statusCode := parsedErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Message,
		}
	default:
		if d != nil && err != nil {
			stackTrace := captureStackTrace()
			sendDiscordMessageAsync(d, buildInternalServerErrorDataForReportBug(c, err.Error(), stackTrace))
		}
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error sends error response (status + JSON from parseError).
func Error(c *gin.Context, err error, d discord.IDiscord) {
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

// ErrorWithMap looks up err in eMap and sends corresponding HTTPError, else Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping, d discord.IDiscord) {
	if httpErr, ok := eMap[err]; ok {
		Error(c, httpErr, nil)
		return
	}
	Error(c, err, d)
}

// PanicError handles panic recovery and sends error response.
func PanicError(c *gin.Context, err any, d discord.IDiscord) {
	if errVal, ok := err.(error); ok {
		Error(c, errVal, d)
		return
	}
	Error(c, fmt.Errorf("%v", err), d)
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}
	var stackTrace []string
	for _, pc := range pcs[:n] {
		f := runtime.FuncForPC(pc)
		if f != nil {
			file, line := f.FileLine(pc)
			stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", file, line, f.Name()))
		}
	}
	return stackTrace
}

func sendDiscordMessageAsync(d discord.IDiscord, message string) {
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string
	lines := strings.Split(message, "\n")
	for _, line := range lines {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

// sensitiveFields never reach the bug report.
var sensitiveFields = []string{"key"}

func buildInternalServerErrorDataForReportBug(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString("================ JWT BUILDER ERROR ================\n")
	sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.Path))
	sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))
	sb.WriteString("---------------------------------------------------\n")

	if params := c.Request.URL.Query().Encode(); params != "" {
		sb.WriteString(fmt.Sprintf("Params  : %s\n", params))
	}

	if c.Request.Body != nil {
		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err == nil && len(bodyBytes) > 0 {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			sb.WriteString("Body    :\n")
			sb.WriteString("    " + redactBody(bodyBytes) + "\n")
			sb.WriteString("---------------------------------------------------\n")
		}
	}

	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))

	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}

	sb.WriteString("===================================================\n")
	return sb.String()
}

// redactBody blanks signing keys out of JSON bodies; non-JSON is dropped.
func redactBody(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "<non-JSON body omitted>"
	}
	for _, field := range sensitiveFields {
		if _, ok := payload[field]; ok {
			payload[field] = "[REDACTED]"
		}
	}
	out, err := json.MarshalIndent(payload, "    ", "  ")
	if err != nil {
		return "<unprintable body omitted>"
	}
	return string(out)
}
