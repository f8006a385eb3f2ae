package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/seisnet/waveform-backend-go/internal/extract"
	"github.com/seisnet/waveform-backend-go/internal/timeutil"
	"github.com/seisnet/waveform-backend-go/pkg/response"
)

// writeError maps the extraction error taxonomy onto HTTP statuses:
// request misconfiguration and unparsable times are client errors, archive
// read failures are server errors.
func writeError(c *gin.Context, err error) {
	var (
		cfgErr   *extract.ConfigError
		parseErr *timeutil.ParseError
		offErr   *extract.NoOffsetError
		readErr  *extract.ArchiveReadError
	)
	switch {
	case errors.As(err, &cfgErr), errors.As(err, &parseErr), errors.As(err, &offErr):
		response.BadRequest(c, err.Error())
	case errors.As(err, &readErr):
		response.InternalError(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
